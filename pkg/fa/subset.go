package fa

import (
	"sort"
	"strings"
)

// FromNFA builds a DFA equivalent to the given NFA using the subset
// (powerset) construction. Each DFA state stands for a set of NFA states
// and is labeled canonically, so set-equal subsets always collapse to
// the same DFA state regardless of discovery order.
//
// The construction is a breadth-first worklist seeded with the epsilon
// closure of the NFA's initial state. Every dequeued subset gets a
// transition for every alphabet symbol, including the empty subset,
// which becomes an ordinary dead state, so the resulting table is total
// and the DFA passes validation without repair. A seen-label guard makes
// revisiting a subset a no-op; at most 2^n distinct subsets exist, so
// the worklist always drains.
func FromNFA(n *NFA) *DFA {
	symbols := n.InputSymbols()
	initial := n.closure(map[string]bool{n.initial: true})

	d := &DFA{
		states:      make(map[string]bool),
		symbols:     newStateSet(symbols),
		transitions: make(map[string]map[string]string),
		initial:     SetLabel(sortedStates(initial)),
		final:       make(map[string]bool),
	}

	queue := []map[string]bool{initial}
	seen := map[string]bool{d.initial: true}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		label := SetLabel(sortedStates(current))

		d.states[label] = true
		d.transitions[label] = make(map[string]string, len(symbols))
		if intersects(current, n.final) {
			d.final[label] = true
		}

		for _, symbol := range symbols {
			next := n.next(current, symbol)
			nextLabel := SetLabel(sortedStates(next))
			d.transitions[label][symbol] = nextLabel
			if !seen[nextLabel] {
				seen[nextLabel] = true
				queue = append(queue, next)
			}
		}
	}

	return d
}

// SetLabel derives the canonical DFA state name for a set of NFA states:
// the sorted names joined by commas inside braces. The empty set labels
// the implicit dead state "{}".
func SetLabel(states []string) string {
	sorted := make([]string, len(states))
	copy(sorted, states)
	sort.Strings(sorted)
	return "{" + strings.Join(sorted, ",") + "}"
}
