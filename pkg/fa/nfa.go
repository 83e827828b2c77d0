package fa

// NFA is a nondeterministic finite automaton: zero, one, or many
// transitions per state/symbol pair, plus epsilon transitions consumable
// without reading input. Immutable after construction.
type NFA struct {
	states      map[string]bool
	symbols     map[string]bool
	transitions map[string]map[string]map[string]bool
	initial     string
	final       map[string]bool
}

// NewNFA builds an NFA from its formal parameters. Routing tables may be
// partial and may use the Epsilon key; everything else is validated the
// same way as for a DFA.
func NewNFA(def NFADef) (*NFA, error) {
	n := &NFA{
		states:      newStateSet(def.States),
		symbols:     newStateSet(def.InputSymbols),
		transitions: cloneNFATransitions(def.Transitions),
		initial:     def.Initial,
		final:       newStateSet(def.Final),
	}
	if err := n.Validate(); err != nil {
		return nil, err
	}
	return n, nil
}

// CopyNFA builds an NFA as an exact copy of an existing one.
func CopyNFA(n *NFA) (*NFA, error) {
	return NewNFA(NFADef{
		States:       n.States(),
		InputSymbols: n.InputSymbols(),
		Transitions:  n.Transitions(),
		Initial:      n.initial,
		Final:        n.FinalStates(),
	})
}

// FromDFA builds an NFA equivalent to the given DFA: each transition
// (state, symbol) -> end becomes (state, symbol) -> {end}. No epsilon
// transitions are introduced, so the result is always valid.
func FromDFA(d *DFA) *NFA {
	transitions := make(map[string]map[string]map[string]bool, len(d.transitions))
	for state, paths := range d.transitions {
		lifted := make(map[string]map[string]bool, len(paths))
		for symbol, end := range paths {
			lifted[symbol] = map[string]bool{end: true}
		}
		transitions[state] = lifted
	}
	return &NFA{
		states:      newStateSet(d.States()),
		symbols:     newStateSet(d.InputSymbols()),
		transitions: transitions,
		initial:     d.initial,
		final:       newStateSet(d.FinalStates()),
	}
}

// Validate checks the automaton's well-formedness invariants and returns
// the first violation found. Partial routing tables are legal.
func (n *NFA) Validate() error {
	table := make(tableView, len(n.transitions))
	for state, paths := range n.transitions {
		view := make(map[string][]string, len(paths))
		for symbol, ends := range paths {
			view[symbol] = sortedStates(ends)
		}
		table[state] = view
	}
	return validate(n.states, n.symbols, table, n.initial, n.final, false, true)
}

// States returns the state set, sorted.
func (n *NFA) States() []string { return sortedStates(n.states) }

// InputSymbols returns the alphabet, sorted. Epsilon is never part of
// the alphabet.
func (n *NFA) InputSymbols() []string { return sortedStates(n.symbols) }

// Initial returns the initial state.
func (n *NFA) Initial() string { return n.initial }

// FinalStates returns the accepting states, sorted.
func (n *NFA) FinalStates() []string { return sortedStates(n.final) }

// Transitions returns a deep copy of the transition table with sorted
// destination slices.
func (n *NFA) Transitions() map[string]map[string][]string {
	clone := make(map[string]map[string][]string, len(n.transitions))
	for state, paths := range n.transitions {
		p := make(map[string][]string, len(paths))
		for symbol, ends := range paths {
			p[symbol] = sortedStates(ends)
		}
		clone[state] = p
	}
	return clone
}

// EpsilonClosure returns the set of states reachable from the given
// states by following zero or more epsilon transitions, sorted.
func (n *NFA) EpsilonClosure(states []string) []string {
	return sortedStates(n.closure(newStateSet(states)))
}

// closure computes the epsilon closure as an iterative fixed point over
// the finite state set. The visited-set loop terminates on epsilon
// cycles where naive recursion would not.
func (n *NFA) closure(states map[string]bool) map[string]bool {
	closed := make(map[string]bool, len(states))
	for s := range states {
		closed[s] = true
	}
	changed := true
	for changed {
		changed = false
		for state := range closed {
			for end := range n.transitions[state][Epsilon] {
				if !closed[end] {
					closed[end] = true
					changed = true
				}
			}
		}
	}
	return closed
}

// next returns the epsilon-closed set of states reachable from the
// current set on the given symbol. Missing table entries contribute
// nothing; an empty result means every branch has died.
func (n *NFA) next(current map[string]bool, symbol string) map[string]bool {
	moved := make(map[string]bool)
	for state := range current {
		for end := range n.transitions[state][symbol] {
			moved[end] = true
		}
	}
	return n.closure(moved)
}

// Accept runs the input through the automaton, tracking every live
// branch as a state set, and returns the sorted set it stopped on. The
// walk starts at the epsilon closure of the initial state. A branch with
// no transition for a symbol simply dies; the empty set is carried
// forward, not treated as an error. Accept fails with an
// InvalidSymbolError on input outside the alphabet, or with a
// RejectionError carrying the stop set when no surviving state is final.
func (n *NFA) Accept(input []string) ([]string, error) {
	current := n.closure(map[string]bool{n.initial: true})
	for _, symbol := range input {
		if !n.symbols[symbol] {
			return nil, &InvalidSymbolError{Symbol: symbol}
		}
		current = n.next(current, symbol)
	}
	if !intersects(current, n.final) {
		return nil, &RejectionError{StopStates: sortedStates(current)}
	}
	return sortedStates(current), nil
}

// Accepts reports whether the automaton accepts the input.
func (n *NFA) Accepts(input []string) bool {
	_, err := n.Accept(input)
	return err == nil
}

func (n *NFA) start() map[string]bool {
	return n.closure(map[string]bool{n.initial: true})
}

func (n *NFA) step(current map[string]bool, symbol string) map[string]bool {
	return n.next(current, symbol)
}

func (n *NFA) isSymbol(symbol string) bool { return n.symbols[symbol] }

func (n *NFA) isFinal(state string) bool { return n.final[state] }

func cloneNFATransitions(transitions map[string]map[string][]string) map[string]map[string]map[string]bool {
	clone := make(map[string]map[string]map[string]bool, len(transitions))
	for state, paths := range transitions {
		p := make(map[string]map[string]bool, len(paths))
		for symbol, ends := range paths {
			p[symbol] = newStateSet(ends)
		}
		clone[state] = p
	}
	return clone
}
