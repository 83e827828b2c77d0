package fa

import (
	"fmt"
	"strings"
)

// MissingStateError reports a declared state with no transition entry.
type MissingStateError struct {
	State string
}

func (e *MissingStateError) Error() string {
	return fmt.Sprintf("transition start state %q is missing", e.State)
}

// MissingSymbolError reports a DFA state whose transition table omits a
// required alphabet symbol. NFA tables may legally be partial, so this
// error is raised for DFAs only.
type MissingSymbolError struct {
	State  string
	Symbol string
}

func (e *MissingSymbolError) Error() string {
	return fmt.Sprintf("state %q is missing a transition for symbol %q", e.State, e.Symbol)
}

// InvalidSymbolError reports a symbol outside the declared alphabet,
// either as a transition key at construction time or as an input symbol
// during simulation. State is empty in the simulation case.
type InvalidSymbolError struct {
	State  string
	Symbol string
}

func (e *InvalidSymbolError) Error() string {
	if e.State == "" {
		return fmt.Sprintf("%q is not a valid input symbol", e.Symbol)
	}
	return fmt.Sprintf("state %q has invalid transition symbol %q", e.State, e.Symbol)
}

// InvalidStateError reports a transition destination or an initial state
// that is not in the declared state set.
type InvalidStateError struct {
	State string
	From  string // start state of the offending transition, if any
}

func (e *InvalidStateError) Error() string {
	if e.From != "" {
		return fmt.Sprintf("end state %q for transition on %q is not valid", e.State, e.From)
	}
	return fmt.Sprintf("initial state %q is not valid", e.State)
}

// InvalidFinalStateError reports a final state that is not in the
// declared state set.
type InvalidFinalStateError struct {
	State string
}

func (e *InvalidFinalStateError) Error() string {
	return fmt.Sprintf("final state %q is not valid", e.State)
}

// RejectionError reports that a simulation consumed its whole input
// without reaching an accepting configuration. StopStates carries the
// configuration at which the automaton stopped: a single state for a
// DFA, the surviving state set (possibly empty) for an NFA.
type RejectionError struct {
	StopStates []string
}

func (e *RejectionError) Error() string {
	if len(e.StopStates) == 1 {
		return fmt.Sprintf("the automaton stopped on a non-final state (%s)", e.StopStates[0])
	}
	return fmt.Sprintf("the automaton stopped at all non-final states ({%s})",
		strings.Join(e.StopStates, ","))
}
