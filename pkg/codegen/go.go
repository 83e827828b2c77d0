// Package codegen emits standalone recognizers from automata. The
// generated code has no dependency on this module: it carries its own
// transition table and runs in linear time with no allocations, so it
// suits embedded targets as well as ordinary programs.
package codegen

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/ha1tch/automata/pkg/fa"
)

// GenerateGo emits Go source for a recognizer equivalent to the given
// automaton. An NFA is first converted to a DFA so the emitted matcher
// needs no state-set bookkeeping. State and symbol names are kept as
// runtime string tables rather than identifiers, since subset-construction
// labels like "{q0,q1}" make poor Go names.
func GenerateGo(m fa.FA, packageName, typeName string) string {
	var d *fa.DFA
	switch a := m.(type) {
	case *fa.DFA:
		d = a
	case *fa.NFA:
		d = fa.FromNFA(a)
	}

	if packageName == "" {
		packageName = "recognizer"
	}
	typeName = toPascalCase(typeName)
	if typeName == "" {
		typeName = "Recognizer"
	}
	lower := strings.ToLower(typeName)

	states := d.States()
	symbols := d.InputSymbols()
	transitions := d.Transitions()

	stateIndex := make(map[string]int, len(states))
	for i, s := range states {
		stateIndex[s] = i
	}
	symbolIndex := make(map[string]int, len(symbols))
	for i, s := range symbols {
		symbolIndex[s] = i
	}
	final := make(map[string]bool)
	for _, s := range d.FinalStates() {
		final[s] = true
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`// Code generated by automata. DO NOT EDIT.

package %s

`, packageName))

	// Symbol table
	sb.WriteString(fmt.Sprintf("var %sSymbols = [...]string{\n", lower))
	for _, s := range symbols {
		sb.WriteString(fmt.Sprintf("\t%q,\n", s))
	}
	sb.WriteString("}\n\n")

	// State names for diagnostics
	sb.WriteString(fmt.Sprintf("var %sStates = [...]string{\n", lower))
	for _, s := range states {
		sb.WriteString(fmt.Sprintf("\t%q,\n", s))
	}
	sb.WriteString("}\n\n")

	// Transition table indexed [state][symbol]
	sb.WriteString(fmt.Sprintf("var %sTransitions = [...][%d]uint16{\n", lower, len(symbols)))
	for _, s := range states {
		cells := make([]string, len(symbols))
		for i, sym := range symbols {
			cells[i] = fmt.Sprintf("%d", stateIndex[transitions[s][sym]])
		}
		sb.WriteString(fmt.Sprintf("\t{%s}, // %s\n", strings.Join(cells, ", "), s))
	}
	sb.WriteString("}\n\n")

	// Accepting states
	sb.WriteString(fmt.Sprintf("var %sAccepting = [...]bool{\n", lower))
	for _, s := range states {
		sb.WriteString(fmt.Sprintf("\t%v, // %s\n", final[s], s))
	}
	sb.WriteString("}\n\n")

	sb.WriteString(fmt.Sprintf("const %sInitial uint16 = %d\n\n", lower, stateIndex[d.Initial()]))

	// Symbol lookup
	sb.WriteString(fmt.Sprintf("func %sSymbolIndex(symbol string) int {\n", lower))
	sb.WriteString(fmt.Sprintf("\tfor i, s := range %sSymbols {\n", lower))
	sb.WriteString("\t\tif s == symbol {\n")
	sb.WriteString("\t\t\treturn i\n")
	sb.WriteString("\t\t}\n")
	sb.WriteString("\t}\n")
	sb.WriteString("\treturn -1\n")
	sb.WriteString("}\n\n")

	// Accepts
	sb.WriteString(fmt.Sprintf("// %sAccepts reports whether the input is in the recognized language.\n", typeName))
	sb.WriteString("// It returns false for any symbol outside the alphabet.\n")
	sb.WriteString(fmt.Sprintf("func %sAccepts(input []string) bool {\n", typeName))
	sb.WriteString(fmt.Sprintf("\tstate := %sInitial\n", lower))
	sb.WriteString("\tfor _, symbol := range input {\n")
	sb.WriteString(fmt.Sprintf("\t\ti := %sSymbolIndex(symbol)\n", lower))
	sb.WriteString("\t\tif i < 0 {\n")
	sb.WriteString("\t\t\treturn false\n")
	sb.WriteString("\t\t}\n")
	sb.WriteString(fmt.Sprintf("\t\tstate = %sTransitions[state][i]\n", lower))
	sb.WriteString("\t}\n")
	sb.WriteString(fmt.Sprintf("\treturn %sAccepting[state]\n", lower))
	sb.WriteString("}\n\n")

	// AcceptsString
	sb.WriteString(fmt.Sprintf("// %sAcceptsString treats each rune of the string as one input symbol.\n", typeName))
	sb.WriteString(fmt.Sprintf("func %sAcceptsString(input string) bool {\n", typeName))
	sb.WriteString(fmt.Sprintf("\tstate := %sInitial\n", lower))
	sb.WriteString("\tfor _, r := range input {\n")
	sb.WriteString(fmt.Sprintf("\t\ti := %sSymbolIndex(string(r))\n", lower))
	sb.WriteString("\t\tif i < 0 {\n")
	sb.WriteString("\t\t\treturn false\n")
	sb.WriteString("\t\t}\n")
	sb.WriteString(fmt.Sprintf("\t\tstate = %sTransitions[state][i]\n", lower))
	sb.WriteString("\t}\n")
	sb.WriteString(fmt.Sprintf("\treturn %sAccepting[state]\n", lower))
	sb.WriteString("}\n\n")

	// StateName for diagnostics
	sb.WriteString(fmt.Sprintf("// %sStateName returns the original automaton state label.\n", typeName))
	sb.WriteString(fmt.Sprintf("func %sStateName(state uint16) string {\n", typeName))
	sb.WriteString(fmt.Sprintf("\tif int(state) < len(%sStates) {\n", lower))
	sb.WriteString(fmt.Sprintf("\t\treturn %sStates[state]\n", lower))
	sb.WriteString("\t}\n")
	sb.WriteString("\treturn \"unknown\"\n")
	sb.WriteString("}\n")

	return sb.String()
}

func toPascalCase(s string) string {
	var result strings.Builder
	upper := true
	for _, r := range s {
		switch {
		case unicode.IsLetter(r):
			if upper {
				result.WriteRune(unicode.ToUpper(r))
				upper = false
			} else {
				result.WriteRune(r)
			}
		case unicode.IsDigit(r):
			if result.Len() > 0 {
				result.WriteRune(r)
			}
			upper = true
		default:
			upper = true
		}
	}
	return result.String()
}
