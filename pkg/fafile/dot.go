package fafile

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ha1tch/automata/pkg/fa"
)

// GenerateDOT converts an automaton to Graphviz DOT format. Accepting
// states are drawn as double circles, the initial state gets an
// invisible entry arrow, and parallel edges between the same pair of
// states are collapsed into one edge with a comma-joined label.
func GenerateDOT(m fa.FA, title string) string {
	var sb strings.Builder

	sb.WriteString("digraph automaton {\n")
	sb.WriteString("    rankdir=LR;\n")
	sb.WriteString("    node [fontname=\"Helvetica\", fontsize=11];\n")
	sb.WriteString("    edge [fontname=\"Helvetica\", fontsize=10];\n")
	sb.WriteString("\n")

	if title != "" {
		sb.WriteString("    labelloc=\"t\";\n")
		sb.WriteString(fmt.Sprintf("    label=\"%s\";\n", escapeDOT(title)))
		sb.WriteString("\n")
	}

	// Invisible start node
	sb.WriteString("    __start [shape=none, label=\"\", width=0, height=0];\n")
	sb.WriteString(fmt.Sprintf("    __start -> \"%s\";\n", escapeDOT(m.Initial())))
	sb.WriteString("\n")

	final := make(map[string]bool)
	for _, state := range m.FinalStates() {
		final[state] = true
	}

	for _, state := range m.States() {
		shape := "circle"
		if final[state] {
			shape = "doublecircle"
		}
		sb.WriteString(fmt.Sprintf("    \"%s\" [shape=%s];\n", escapeDOT(state), shape))
	}
	sb.WriteString("\n")

	// Group transitions by (from, to)
	edgeLabels := make(map[[2]string][]string)
	for _, e := range Edges(m) {
		key := [2]string{e.From, e.To}
		edgeLabels[key] = append(edgeLabels[key], e.Label)
	}

	keys := make([][2]string, 0, len(edgeLabels))
	for key := range edgeLabels {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i][0] != keys[j][0] {
			return keys[i][0] < keys[j][0]
		}
		return keys[i][1] < keys[j][1]
	})

	for _, key := range keys {
		labels := edgeLabels[key]
		sort.Strings(labels)
		sb.WriteString(fmt.Sprintf("    \"%s\" -> \"%s\" [label=\"%s\"];\n",
			escapeDOT(key[0]), escapeDOT(key[1]), escapeDOT(strings.Join(labels, ", "))))
	}

	sb.WriteString("}\n")
	return sb.String()
}

// Edge is one rendered transition arrow. Epsilon transitions carry the
// label "ε".
type Edge struct {
	From  string
	Label string
	To    string
}

// Edges flattens an automaton's transition table into display edges.
func Edges(m fa.FA) []Edge {
	var edges []Edge
	switch a := m.(type) {
	case *fa.DFA:
		for state, paths := range a.Transitions() {
			for symbol, end := range paths {
				edges = append(edges, Edge{From: state, Label: symbol, To: end})
			}
		}
	case *fa.NFA:
		for state, paths := range a.Transitions() {
			for symbol, ends := range paths {
				label := symbol
				if symbol == fa.Epsilon {
					label = "ε"
				}
				for _, end := range ends {
					edges = append(edges, Edge{From: state, Label: label, To: end})
				}
			}
		}
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].From != edges[j].From {
			return edges[i].From < edges[j].From
		}
		if edges[i].To != edges[j].To {
			return edges[i].To < edges[j].To
		}
		return edges[i].Label < edges[j].Label
	})
	return edges
}

func escapeDOT(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\"", "\\\"")
	s = strings.ReplaceAll(s, "<", "\\<")
	s = strings.ReplaceAll(s, ">", "\\>")
	return s
}
