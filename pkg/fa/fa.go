// Package fa provides finite automata for recognizing formal languages:
// deterministic (DFA) and nondeterministic with epsilon transitions (NFA),
// plus conversion between the two kinds.
//
// Automata are immutable once constructed. Every constructor deep-copies
// its input and validates the result, so a returned automaton is always
// well-formed and safe to share between goroutines.
package fa

import "sort"

// Epsilon is the reserved empty symbol. It is only meaningful as an NFA
// transition key; it never belongs to an alphabet.
const Epsilon = ""

// DFADef holds the formal parameters of a deterministic automaton.
// Transitions maps each state to its per-symbol routing table; a valid
// table names every alphabet symbol exactly once.
type DFADef struct {
	States       []string
	InputSymbols []string
	Transitions  map[string]map[string]string
	Initial      string
	Final        []string
}

// NFADef holds the formal parameters of a nondeterministic automaton.
// Routing tables may omit symbols, destinations are sets, and the
// Epsilon key is legal alongside the alphabet.
type NFADef struct {
	States       []string
	InputSymbols []string
	Transitions  map[string]map[string][]string
	Initial      string
	Final        []string
}

// FA is the capability interface shared by both automaton kinds. Callers
// that only need to inspect, validate, or run an automaton can hold
// either kind behind it.
type FA interface {
	States() []string
	InputSymbols() []string
	Initial() string
	FinalStates() []string
	Validate() error
	Accepts(input []string) bool

	// sealed: the stepping primitives below keep Runner generic over
	// both kinds without exposing mutable internals.
	start() map[string]bool
	step(current map[string]bool, symbol string) map[string]bool
	isSymbol(symbol string) bool
	isFinal(state string) bool
}

// Symbols splits a string into single-rune symbols, the common case for
// automata whose alphabet is a set of characters.
func Symbols(s string) []string {
	syms := make([]string, 0, len(s))
	for _, r := range s {
		syms = append(syms, string(r))
	}
	return syms
}

func newStateSet(states []string) map[string]bool {
	set := make(map[string]bool, len(states))
	for _, s := range states {
		set[s] = true
	}
	return set
}

func sortedStates(set map[string]bool) []string {
	states := make([]string, 0, len(set))
	for s := range set {
		states = append(states, s)
	}
	sort.Strings(states)
	return states
}

func intersects(set, other map[string]bool) bool {
	for s := range set {
		if other[s] {
			return true
		}
	}
	return false
}
