package fa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunnerDFA(t *testing.T) {
	d, err := NewDFA(parityDef())
	require.NoError(t, err)

	r, err := NewRunner(d)
	require.NoError(t, err)
	assert.Equal(t, []string{"S1"}, r.CurrentStates())
	assert.True(t, r.IsAccepting())

	require.NoError(t, r.Step("1"))
	assert.Equal(t, "S2", r.CurrentState())
	assert.False(t, r.IsAccepting())

	require.NoError(t, r.Step("1"))
	assert.True(t, r.IsAccepting())

	history := r.History()
	require.Len(t, history, 2)
	assert.Equal(t, []string{"S1"}, history[0].From)
	assert.Equal(t, "1", history[0].Input)
	assert.Equal(t, []string{"S2"}, history[0].To)
}

func TestRunnerNFAStartsAtClosure(t *testing.T) {
	n, err := NewNFA(NFADef{
		States:       []string{"s0", "s1", "s2"},
		InputSymbols: []string{"a"},
		Transitions: map[string]map[string][]string{
			"s0": {Epsilon: {"s1"}},
			"s1": {"a": {"s2"}},
			"s2": {},
		},
		Initial: "s0",
		Final:   []string{"s2"},
	})
	require.NoError(t, err)

	r, err := NewRunner(n)
	require.NoError(t, err)
	assert.Equal(t, []string{"s0", "s1"}, r.CurrentStates())
	assert.Equal(t, "{s0,s1}", r.CurrentState())

	require.NoError(t, r.Step("a"))
	assert.Equal(t, []string{"s2"}, r.CurrentStates())
	assert.True(t, r.IsAccepting())
}

func TestRunnerCarriesDeadSet(t *testing.T) {
	n, err := NewNFA(NFADef{
		States:       []string{"p", "q"},
		InputSymbols: []string{"a"},
		Transitions: map[string]map[string][]string{
			"p": {"a": {"q"}},
			"q": {},
		},
		Initial: "p",
		Final:   []string{"q"},
	})
	require.NoError(t, err)

	r, err := NewRunner(n)
	require.NoError(t, err)
	require.NoError(t, r.Step("a"))
	require.NoError(t, r.Step("a"))
	assert.Empty(t, r.CurrentStates())
	assert.False(t, r.IsAccepting())

	// A dead run keeps consuming input without error.
	require.NoError(t, r.Step("a"))
	assert.Empty(t, r.CurrentStates())
}

func TestRunnerInvalidSymbol(t *testing.T) {
	d, err := NewDFA(parityDef())
	require.NoError(t, err)

	r, err := NewRunner(d)
	require.NoError(t, err)

	err = r.Step("x")
	var inv *InvalidSymbolError
	require.ErrorAs(t, err, &inv)
	assert.Equal(t, []string{"S1"}, r.CurrentStates(), "failed step must not move the runner")
	assert.Empty(t, r.History())
}

func TestRunnerReset(t *testing.T) {
	d, err := NewDFA(parityDef())
	require.NoError(t, err)

	r, err := NewRunner(d)
	require.NoError(t, err)
	require.NoError(t, r.Run(Symbols("101")))
	assert.Equal(t, "S2", r.CurrentState())

	r.Reset()
	assert.Equal(t, "S1", r.CurrentState())
	assert.Empty(t, r.History())
}
