package fa

// DFA is a deterministic finite automaton: exactly one transition per
// state/symbol pair. Immutable after construction.
type DFA struct {
	states      map[string]bool
	symbols     map[string]bool
	transitions map[string]map[string]string
	initial     string
	final       map[string]bool
}

// NewDFA builds a DFA from its formal parameters. The parameters are
// deep-copied and validated; on the first violated invariant the
// specific validation error is returned and nothing is constructed.
func NewDFA(def DFADef) (*DFA, error) {
	d := &DFA{
		states:      newStateSet(def.States),
		symbols:     newStateSet(def.InputSymbols),
		transitions: cloneDFATransitions(def.Transitions),
		initial:     def.Initial,
		final:       newStateSet(def.Final),
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}

// CopyDFA builds a DFA as an exact copy of an existing one.
func CopyDFA(d *DFA) (*DFA, error) {
	return NewDFA(DFADef{
		States:       d.States(),
		InputSymbols: d.InputSymbols(),
		Transitions:  d.Transitions(),
		Initial:      d.initial,
		Final:        d.FinalStates(),
	})
}

// Validate checks the automaton's six well-formedness invariants,
// including table totality, and returns the first violation found.
func (d *DFA) Validate() error {
	table := make(tableView, len(d.transitions))
	for state, paths := range d.transitions {
		view := make(map[string][]string, len(paths))
		for symbol, end := range paths {
			view[symbol] = []string{end}
		}
		table[state] = view
	}
	return validate(d.states, d.symbols, table, d.initial, d.final, true, false)
}

// States returns the state set, sorted.
func (d *DFA) States() []string { return sortedStates(d.states) }

// InputSymbols returns the alphabet, sorted.
func (d *DFA) InputSymbols() []string { return sortedStates(d.symbols) }

// Initial returns the initial state.
func (d *DFA) Initial() string { return d.initial }

// FinalStates returns the accepting states, sorted.
func (d *DFA) FinalStates() []string { return sortedStates(d.final) }

// Transitions returns a deep copy of the transition table.
func (d *DFA) Transitions() map[string]map[string]string {
	return cloneDFATransitions(d.transitions)
}

// Accept runs the input through the automaton and returns the state it
// stopped on. It fails with an InvalidSymbolError as soon as an input
// symbol falls outside the alphabet, or with a RejectionError naming the
// stop state when the walk ends on a non-final state. Accept never
// mutates the automaton, so concurrent calls are safe.
func (d *DFA) Accept(input []string) (string, error) {
	current := d.initial
	for _, symbol := range input {
		if !d.symbols[symbol] {
			return "", &InvalidSymbolError{Symbol: symbol}
		}
		current = d.transitions[current][symbol]
	}
	if !d.final[current] {
		return "", &RejectionError{StopStates: []string{current}}
	}
	return current, nil
}

// Accepts reports whether the automaton accepts the input.
func (d *DFA) Accepts(input []string) bool {
	_, err := d.Accept(input)
	return err == nil
}

func (d *DFA) start() map[string]bool {
	return map[string]bool{d.initial: true}
}

func (d *DFA) step(current map[string]bool, symbol string) map[string]bool {
	next := make(map[string]bool, len(current))
	for state := range current {
		next[d.transitions[state][symbol]] = true
	}
	return next
}

func (d *DFA) isSymbol(symbol string) bool { return d.symbols[symbol] }

func (d *DFA) isFinal(state string) bool { return d.final[state] }

func cloneDFATransitions(transitions map[string]map[string]string) map[string]map[string]string {
	clone := make(map[string]map[string]string, len(transitions))
	for state, paths := range transitions {
		p := make(map[string]string, len(paths))
		for symbol, end := range paths {
			p[symbol] = end
		}
		clone[state] = p
	}
	return clone
}
