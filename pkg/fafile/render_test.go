package fafile

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateDOT(t *testing.T) {
	m, err := ParseJSON([]byte(dfaJSON))
	require.NoError(t, err)

	dot := GenerateDOT(m, "parity")
	assert.Contains(t, dot, "digraph automaton {")
	assert.Contains(t, dot, `label="parity"`)
	assert.Contains(t, dot, `"S1" [shape=doublecircle];`)
	assert.Contains(t, dot, `"S2" [shape=circle];`)
	assert.Contains(t, dot, `__start -> "S1";`)
	assert.Contains(t, dot, `"S1" -> "S2" [label="1"];`)
}

func TestGenerateDOTEpsilonLabel(t *testing.T) {
	m, err := ParseJSON([]byte(nfaJSON))
	require.NoError(t, err)

	dot := GenerateDOT(m, "")
	assert.Contains(t, dot, "ε")
	assert.NotContains(t, dot, `[label=""]`)
}

func TestEdgesGroupsEpsilon(t *testing.T) {
	m, err := ParseJSON([]byte(nfaJSON))
	require.NoError(t, err)

	edges := Edges(m)
	var labels []string
	for _, e := range edges {
		if e.From == "q0" && e.To == "q1" {
			labels = append(labels, e.Label)
		}
	}
	assert.Equal(t, []string{"a", "ε"}, labels)
}

func TestWriteTable(t *testing.T) {
	m, err := ParseJSON([]byte(nfaJSON))
	require.NoError(t, err)

	var buf bytes.Buffer
	WriteTable(&buf, m)
	out := buf.String()

	assert.Contains(t, out, "->q0")
	assert.Contains(t, out, "*q2")
	assert.Contains(t, out, "{q1,q2}")
	assert.Contains(t, out, "ε")
	assert.Contains(t, out, "-")
}

func TestRenderPNG(t *testing.T) {
	m, err := ParseJSON([]byte(dfaJSON))
	require.NoError(t, err)

	opts := DefaultPNGOptions()
	opts.Width = 200
	opts.Height = 150
	opts.Title = "parity"

	var buf bytes.Buffer
	require.NoError(t, RenderPNG(m, &buf, opts))

	// PNG signature
	assert.True(t, strings.HasPrefix(buf.String(), "\x89PNG\r\n\x1a\n"))
}
