package fa

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetLabel(t *testing.T) {
	assert.Equal(t, "{q1,q2}", SetLabel([]string{"q2", "q1"}))
	assert.Equal(t, "{q1,q2}", SetLabel([]string{"q1", "q2"}))
	assert.Equal(t, "{}", SetLabel(nil))
}

func TestFromNFAEquivalence(t *testing.T) {
	n, err := NewNFA(aCountDef())
	require.NoError(t, err)
	d := FromNFA(n)

	input := []string{}
	for i := 0; i <= 12; i++ {
		assert.Equal(t, n.Accepts(input), d.Accepts(input), "a^%d", i)
		input = append(input, "a")
	}
}

func TestFromNFAResultIsValid(t *testing.T) {
	n, err := NewNFA(aCountDef())
	require.NoError(t, err)
	d := FromNFA(n)

	require.NoError(t, d.Validate())

	// Total by construction.
	transitions := d.Transitions()
	for _, state := range d.States() {
		for _, symbol := range d.InputSymbols() {
			_, ok := transitions[state][symbol]
			assert.True(t, ok, "state %s missing symbol %s", state, symbol)
		}
	}
}

func TestFromNFAInitialState(t *testing.T) {
	n, err := NewNFA(aCountDef())
	require.NoError(t, err)
	d := FromNFA(n)

	assert.Equal(t, SetLabel(n.EpsilonClosure([]string{n.Initial()})), d.Initial())
}

func TestFromNFADeadState(t *testing.T) {
	// A partial NFA forces the empty subset into the DFA as an ordinary
	// non-final dead state with self loops on every symbol.
	n, err := NewNFA(NFADef{
		States:       []string{"p", "q"},
		InputSymbols: []string{"a", "b"},
		Transitions: map[string]map[string][]string{
			"p": {"a": {"q"}},
			"q": {},
		},
		Initial: "p",
		Final:   []string{"q"},
	})
	require.NoError(t, err)
	d := FromNFA(n)

	transitions := d.Transitions()
	require.Contains(t, transitions, "{}")
	assert.Equal(t, "{}", transitions["{}"]["a"])
	assert.Equal(t, "{}", transitions["{}"]["b"])
	assert.NotContains(t, d.FinalStates(), "{}")

	assert.True(t, d.Accepts(Symbols("a")))
	assert.False(t, d.Accepts(Symbols("ab")))
	assert.False(t, d.Accepts(Symbols("aba")))
}

func TestFromNFAStateBound(t *testing.T) {
	n, err := NewNFA(aCountDef())
	require.NoError(t, err)
	d := FromNFA(n)

	bound := int(math.Pow(2, float64(len(n.States()))))
	assert.LessOrEqual(t, len(d.States()), bound)
}

func TestFromNFAEpsilonCycle(t *testing.T) {
	// Subset construction over an epsilon cycle terminates and folds the
	// cycle into a single DFA state.
	n, err := NewNFA(NFADef{
		States:       []string{"x", "y", "z"},
		InputSymbols: []string{"a"},
		Transitions: map[string]map[string][]string{
			"x": {Epsilon: {"y"}},
			"y": {Epsilon: {"x"}, "a": {"z"}},
			"z": {},
		},
		Initial: "x",
		Final:   []string{"z"},
	})
	require.NoError(t, err)
	d := FromNFA(n)

	assert.Equal(t, "{x,y}", d.Initial())
	assert.True(t, d.Accepts(Symbols("a")))
	assert.False(t, d.Accepts(Symbols("aa")))
}

func TestRoundTrip(t *testing.T) {
	// DFA -> NFA -> DFA preserves the language even though the state
	// labels change.
	d, err := NewDFA(parityDef())
	require.NoError(t, err)
	back := FromNFA(FromDFA(d))
	require.NoError(t, back.Validate())

	var walk func(prefix []string, depth int)
	walk = func(prefix []string, depth int) {
		assert.Equal(t, d.Accepts(prefix), back.Accepts(prefix), "input %v", prefix)
		if depth == 0 {
			return
		}
		for _, symbol := range d.InputSymbols() {
			walk(append(prefix, symbol), depth-1)
		}
	}
	walk(nil, 6)
}
