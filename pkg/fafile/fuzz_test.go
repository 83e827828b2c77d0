// Fuzz tests for the JSON parser.
// Run with: go test -fuzz=FuzzParseJSON -fuzztime=30s ./pkg/fafile/
package fafile

import (
	"testing"
)

// FuzzParseJSON tests the JSON parser with arbitrary input.
// Looking for panics, infinite loops, or memory issues.
func FuzzParseJSON(f *testing.F) {
	// Seed with valid definitions
	f.Add([]byte(dfaJSON))
	f.Add([]byte(nfaJSON))
	f.Add([]byte(`{"kind":"dfa","states":["s0"],"input_symbols":["a"],"transitions":{"s0":{"a":"s0"}},"initial_state":"s0","final_states":["s0"]}`))
	f.Add([]byte(`{"kind":"nfa","states":["s0"],"input_symbols":["a"],"transitions":{"s0":{}},"initial_state":"s0","final_states":[]}`))

	// Seed with edge cases
	f.Add([]byte(`{}`))
	f.Add([]byte(`[]`))
	f.Add([]byte(`null`))
	f.Add([]byte(``))
	f.Add([]byte(`{"kind":"dfa"}`))
	f.Add([]byte(`{"kind":"pda","states":["s0"],"initial_state":"s0"}`))

	// Seed with malformed shapes
	f.Add([]byte(`{"kind":"dfa","states":["s0"],"input_symbols":["a"],"transitions":{"s0":{"a":42}},"initial_state":"s0","final_states":[]}`))
	f.Add([]byte(`{"kind":"nfa","states":["s0"],"input_symbols":["a"],"transitions":{"s0":{"a":[1,2]}},"initial_state":"s0","final_states":[]}`))
	f.Add([]byte(`{"kind":"nfa","states":["s0"],"input_symbols":["a"],"transitions":{"s0":{"a":{"bad":"shape"}}},"initial_state":"s0","final_states":[]}`))
	f.Add([]byte(`{"kind":"dfa","states":null,"transitions":null,"final_states":null}`))

	f.Fuzz(func(t *testing.T, data []byte) {
		// Should not panic
		m, err := ParseJSON(data)

		if err == nil && m != nil {
			// If parsing succeeded, serialization should round-trip
			for _, pretty := range []bool{false, true} {
				out, err := ToJSON(m, pretty)
				if err != nil {
					t.Errorf("ToJSON(pretty=%v) failed for accepted input %q: %v", pretty, data, err)
					continue
				}
				if _, err := ParseJSON(out); err != nil {
					t.Errorf("re-parse failed for %q: %v", out, err)
				}
			}
		}
	})
}
