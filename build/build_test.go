package build_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/npcover/build"
)

// TestBuild_SizeErrors verifies each constructor rejects undersized requests.
func TestBuild_SizeErrors(t *testing.T) {
	cases := []struct {
		name string
		fn   func() error
	}{
		{"EdgelessNegative", func() error { _, err := build.Edgeless(-1); return err }},
		{"CompleteNegative", func() error { _, err := build.Complete(-2); return err }},
		{"PathZero", func() error { _, err := build.Path(0); return err }},
		{"CycleTooShort", func() error { _, err := build.Cycle(2); return err }},
		{"BipartiteEmptyLeft", func() error { _, err := build.CompleteBipartite(0, 3); return err }},
		{"BipartiteEmptyRight", func() error { _, err := build.CompleteBipartite(2, 0); return err }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, tc.fn(), build.ErrTooFewVertices)
		})
	}
}

// TestComplete_K4 checks K_4 has all 6 edges and no loops.
func TestComplete_K4(t *testing.T) {
	g, err := build.Complete(4)
	require.NoError(t, err)

	assert.Equal(t, 4, g.Order())
	assert.Equal(t, 6, g.EdgeCount())
	for v := 0; v < 4; v++ {
		assert.False(t, g.HasEdge(v, v))
	}
}

// TestPathAndCycle checks the edge sets of P_4 and C_5.
func TestPathAndCycle(t *testing.T) {
	p, err := build.Path(4)
	require.NoError(t, err)
	assert.Equal(t, 3, p.EdgeCount())
	assert.True(t, p.HasEdge(1, 2))
	assert.False(t, p.HasEdge(0, 3), "path endpoints are not joined")

	c, err := build.Cycle(5)
	require.NoError(t, err)
	assert.Equal(t, 5, c.EdgeCount())
	assert.True(t, c.HasEdge(4, 0), "cycle closes back to vertex 0")
}

// TestCompleteBipartite_K23 checks K_{2,3}: 6 cross edges, no intra-side edges.
func TestCompleteBipartite_K23(t *testing.T) {
	g, err := build.CompleteBipartite(2, 3)
	require.NoError(t, err)

	assert.Equal(t, 5, g.Order())
	assert.Equal(t, 6, g.EdgeCount())
	assert.False(t, g.HasEdge(0, 1), "no edge inside the left side")
	assert.False(t, g.HasEdge(2, 4), "no edge inside the right side")
	for i := 0; i < 2; i++ {
		for j := 2; j < 5; j++ {
			assert.True(t, g.HasEdge(i, j), "cross edge (%d,%d) present", i, j)
		}
	}
}
