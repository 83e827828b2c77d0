// Package fafile reads, writes, and renders finite automaton
// definitions. It sits outside the core: every loader ends by handing
// the parsed formal parameters to a pkg/fa constructor, so nothing in
// here can produce an unvalidated automaton.
package fafile

import (
	"encoding/json"
	"os"

	"github.com/cockroachdb/errors"

	"github.com/ha1tch/automata/pkg/fa"
)

// Automaton kinds accepted in definition files.
const (
	KindDFA = "dfa"
	KindNFA = "nfa"
)

// jsonAutomaton is the JSON representation of an automaton definition.
// DFA transition values are single state names; NFA values are arrays of
// state names, with the "" key standing for epsilon.
type jsonAutomaton struct {
	Kind         string                            `json:"kind"`
	Name         string                            `json:"name,omitempty"`
	States       []string                          `json:"states"`
	InputSymbols []string                          `json:"input_symbols"`
	Transitions  map[string]map[string]interface{} `json:"transitions"`
	InitialState string                            `json:"initial_state"`
	FinalStates  []string                          `json:"final_states"`
}

// ParseJSON parses and validates an automaton definition.
func ParseJSON(data []byte) (fa.FA, error) {
	var j jsonAutomaton
	if err := json.Unmarshal(data, &j); err != nil {
		return nil, errors.Wrap(err, "parsing automaton definition")
	}

	switch j.Kind {
	case KindDFA:
		transitions := make(map[string]map[string]string, len(j.Transitions))
		for state, paths := range j.Transitions {
			p := make(map[string]string, len(paths))
			for symbol, to := range paths {
				end, ok := to.(string)
				if !ok {
					return nil, errors.Newf(
						"dfa transition %s/%s: destination must be a single state", state, symbol)
				}
				p[symbol] = end
			}
			transitions[state] = p
		}
		return fa.NewDFA(fa.DFADef{
			States:       j.States,
			InputSymbols: j.InputSymbols,
			Transitions:  transitions,
			Initial:      j.InitialState,
			Final:        j.FinalStates,
		})

	case KindNFA:
		transitions := make(map[string]map[string][]string, len(j.Transitions))
		for state, paths := range j.Transitions {
			p := make(map[string][]string, len(paths))
			for symbol, to := range paths {
				ends, err := destinationList(to)
				if err != nil {
					return nil, errors.Wrapf(err, "nfa transition %s/%s", state, symbol)
				}
				p[symbol] = ends
			}
			transitions[state] = p
		}
		return fa.NewNFA(fa.NFADef{
			States:       j.States,
			InputSymbols: j.InputSymbols,
			Transitions:  transitions,
			Initial:      j.InitialState,
			Final:        j.FinalStates,
		})

	default:
		return nil, errors.Newf("unknown automaton kind %q", j.Kind)
	}
}

// destinationList accepts either a single state name or an array of
// them, the same leniency the file format has always had for hand-written
// definitions.
func destinationList(to interface{}) ([]string, error) {
	switch v := to.(type) {
	case string:
		return []string{v}, nil
	case []interface{}:
		ends := make([]string, 0, len(v))
		for _, e := range v {
			s, ok := e.(string)
			if !ok {
				return nil, errors.Newf("destination %v is not a state name", e)
			}
			ends = append(ends, s)
		}
		return ends, nil
	default:
		return nil, errors.Newf("destination %v is not a state name or list", v)
	}
}

// ToJSON serializes an automaton definition.
func ToJSON(m fa.FA, pretty bool) ([]byte, error) {
	j := jsonAutomaton{
		States:       m.States(),
		InputSymbols: m.InputSymbols(),
		InitialState: m.Initial(),
		FinalStates:  m.FinalStates(),
		Transitions:  make(map[string]map[string]interface{}),
	}

	switch a := m.(type) {
	case *fa.DFA:
		j.Kind = KindDFA
		for state, paths := range a.Transitions() {
			p := make(map[string]interface{}, len(paths))
			for symbol, end := range paths {
				p[symbol] = end
			}
			j.Transitions[state] = p
		}
	case *fa.NFA:
		j.Kind = KindNFA
		for state, paths := range a.Transitions() {
			p := make(map[string]interface{}, len(paths))
			for symbol, ends := range paths {
				p[symbol] = ends
			}
			j.Transitions[state] = p
		}
	default:
		return nil, errors.Newf("unsupported automaton type %T", m)
	}

	if pretty {
		return json.MarshalIndent(j, "", "  ")
	}
	return json.Marshal(j)
}

// Load reads and validates an automaton definition file.
func Load(path string) (fa.FA, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	m, err := ParseJSON(data)
	if err != nil {
		return nil, errors.Wrapf(err, "loading %s", path)
	}
	return m, nil
}

// Save writes an automaton definition file.
func Save(path string, m fa.FA, pretty bool) error {
	data, err := ToJSON(m, pretty)
	if err != nil {
		return err
	}
	return errors.Wrapf(os.WriteFile(path, data, 0644), "writing %s", path)
}
