package fa

import "strings"

// Runner executes an automaton step by step, tracking the live state set
// between inputs. For a DFA the set always holds exactly one state; for
// an NFA it holds every branch still alive, possibly none. The automaton
// itself is never mutated, so many runners can share one.
type Runner struct {
	fa      FA
	current map[string]bool
	history []RunStep
}

// RunStep records one step of execution.
type RunStep struct {
	From  []string
	Input string
	To    []string
}

// NewRunner creates a runner positioned at the automaton's start
// configuration: the initial state, epsilon-closed for an NFA.
func NewRunner(m FA) (*Runner, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &Runner{fa: m, current: m.start()}, nil
}

// Step consumes one input symbol. An input outside the alphabet fails
// with an InvalidSymbolError and leaves the runner unchanged. A step
// that kills every branch leaves the runner on the empty set; it is not
// an error, and the run may continue.
func (r *Runner) Step(input string) error {
	if !r.fa.isSymbol(input) {
		return &InvalidSymbolError{Symbol: input}
	}
	from := r.CurrentStates()
	r.current = r.fa.step(r.current, input)
	r.history = append(r.history, RunStep{
		From:  from,
		Input: input,
		To:    r.CurrentStates(),
	})
	return nil
}

// Run consumes a sequence of inputs, stopping at the first invalid one.
func (r *Runner) Run(inputs []string) error {
	for _, input := range inputs {
		if err := r.Step(input); err != nil {
			return err
		}
	}
	return nil
}

// CurrentStates returns the live state set, sorted.
func (r *Runner) CurrentStates() []string {
	return sortedStates(r.current)
}

// CurrentState returns the live state set as a display string: a bare
// name when a single state is live, a braced list otherwise.
func (r *Runner) CurrentState() string {
	states := r.CurrentStates()
	if len(states) == 1 {
		return states[0]
	}
	return "{" + strings.Join(states, ",") + "}"
}

// IsAccepting reports whether any live state is accepting.
func (r *Runner) IsAccepting() bool {
	for state := range r.current {
		if r.fa.isFinal(state) {
			return true
		}
	}
	return false
}

// Reset returns the runner to the start configuration and clears the
// history.
func (r *Runner) Reset() {
	r.current = r.fa.start()
	r.history = nil
}

// History returns the recorded steps.
func (r *Runner) History() []RunStep {
	return r.history
}
