package fa

import "sort"

// Shared validation primitives. Both automaton kinds run the same checks
// in the same order over a normalized view of their transition tables;
// the kind-specific differences (table totality, epsilon acceptance) are
// parameters. The first violated invariant wins.

// tableView is the normalized transition shape used during validation:
// state -> symbol -> destinations. A DFA builds it with one destination
// per symbol.
type tableView map[string]map[string][]string

// checkStartStates verifies that every declared state has a transition
// entry.
func checkStartStates(states map[string]bool, table tableView) error {
	for _, state := range sortedStates(states) {
		if _, ok := table[state]; !ok {
			return &MissingStateError{State: state}
		}
	}
	return nil
}

// checkSymbols verifies the per-state symbol tables. When total is set
// every alphabet symbol must be present (DFA); when allowEpsilon is set
// the Epsilon key is accepted alongside the alphabet (NFA).
func checkSymbols(symbols map[string]bool, table tableView, total, allowEpsilon bool) error {
	for _, state := range sortedTableStates(table) {
		paths := table[state]
		if total {
			for _, symbol := range sortedStates(symbols) {
				if _, ok := paths[symbol]; !ok {
					return &MissingSymbolError{State: state, Symbol: symbol}
				}
			}
		}
		for _, symbol := range sortedStates(newSymbolSet(paths)) {
			if symbols[symbol] || (allowEpsilon && symbol == Epsilon) {
				continue
			}
			return &InvalidSymbolError{State: state, Symbol: symbol}
		}
	}
	return nil
}

// checkEndStates verifies that every transition destination is a
// declared state.
func checkEndStates(states map[string]bool, table tableView) error {
	for _, state := range sortedTableStates(table) {
		paths := table[state]
		for _, symbol := range sortedStates(newSymbolSet(paths)) {
			for _, end := range paths[symbol] {
				if !states[end] {
					return &InvalidStateError{State: end, From: state}
				}
			}
		}
	}
	return nil
}

func checkInitialState(states map[string]bool, initial string) error {
	if !states[initial] {
		return &InvalidStateError{State: initial}
	}
	return nil
}

func checkFinalStates(states, final map[string]bool) error {
	for _, state := range sortedStates(final) {
		if !states[state] {
			return &InvalidFinalStateError{State: state}
		}
	}
	return nil
}

// validate runs all six invariant checks in order.
func validate(states, symbols map[string]bool, table tableView,
	initial string, final map[string]bool, total, allowEpsilon bool) error {

	if err := checkStartStates(states, table); err != nil {
		return err
	}
	if err := checkSymbols(symbols, table, total, allowEpsilon); err != nil {
		return err
	}
	if err := checkEndStates(states, table); err != nil {
		return err
	}
	if err := checkInitialState(states, initial); err != nil {
		return err
	}
	return checkFinalStates(states, final)
}

func sortedTableStates(table tableView) []string {
	states := make([]string, 0, len(table))
	for s := range table {
		states = append(states, s)
	}
	sort.Strings(states)
	return states
}

func newSymbolSet(paths map[string][]string) map[string]bool {
	set := make(map[string]bool, len(paths))
	for symbol := range paths {
		set[symbol] = true
	}
	return set
}
