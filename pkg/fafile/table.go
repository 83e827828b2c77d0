package fafile

import (
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/ha1tch/automata/pkg/fa"
)

// WriteTable renders an automaton's transition table as text. The
// initial state is marked with "->" and accepting states with "*". For
// an NFA an extra ε column appears when any state has epsilon
// transitions; cells with no transition show "-".
func WriteTable(w io.Writer, m fa.FA) {
	symbols := m.InputSymbols()

	var dfaTransitions map[string]map[string]string
	var nfaTransitions map[string]map[string][]string
	hasEpsilon := false
	switch a := m.(type) {
	case *fa.DFA:
		dfaTransitions = a.Transitions()
	case *fa.NFA:
		nfaTransitions = a.Transitions()
		for _, paths := range nfaTransitions {
			if len(paths[fa.Epsilon]) > 0 {
				hasEpsilon = true
				break
			}
		}
	}

	header := []string{"state"}
	header = append(header, symbols...)
	if hasEpsilon {
		header = append(header, "ε")
	}

	final := make(map[string]bool)
	for _, state := range m.FinalStates() {
		final[state] = true
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoFormatHeaders(false)

	for _, state := range m.States() {
		name := state
		if final[state] {
			name = "*" + name
		}
		if state == m.Initial() {
			name = "->" + name
		}
		row := []string{name}

		switch m.(type) {
		case *fa.DFA:
			for _, symbol := range symbols {
				row = append(row, dfaTransitions[state][symbol])
			}
		case *fa.NFA:
			for _, symbol := range symbols {
				row = append(row, formatEnds(nfaTransitions[state][symbol]))
			}
			if hasEpsilon {
				row = append(row, formatEnds(nfaTransitions[state][fa.Epsilon]))
			}
		}
		table.Append(row)
	}

	table.Render()
}

func formatEnds(ends []string) string {
	if len(ends) == 0 {
		return "-"
	}
	if len(ends) == 1 {
		return ends[0]
	}
	return "{" + strings.Join(ends, ",") + "}"
}
