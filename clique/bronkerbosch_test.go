package clique_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/npcover/build"
	"github.com/katalvlaran/npcover/clique"
	"github.com/katalvlaran/npcover/core"
)

// assertMaximal fails if any vertex outside s is adjacent to all of s.
func assertMaximal(t *testing.T, g *core.Graph, s *core.VertexSet) {
	t.Helper()
	for v := 0; v < g.Order(); v++ {
		if s.Contains(v) {
			continue
		}
		extends := true
		for i := 0; i < s.Len(); i++ {
			if !g.HasEdge(v, s.At(i)) {
				extends = false
				break
			}
		}
		assert.False(t, extends, "vertex %d extends a supposedly maximal clique", v)
	}
}

// isSubset reports whether a ⊆ b (both sorted-free member slices).
func isSubset(a, b *core.VertexSet) bool {
	for i := 0; i < a.Len(); i++ {
		if !b.Contains(a.At(i)) {
			return false
		}
	}

	return true
}

// TestMaximal_Properties: soundness, maximality, and the no-subset-pairs
// guarantee on a graph with a mixed clique structure.
func TestMaximal_Properties(t *testing.T) {
	// Two triangles sharing vertex 2, plus a pendant vertex 5.
	g, err := build.Edgeless(6)
	require.NoError(t, err)
	for _, e := range [][2]int{{0, 1}, {0, 2}, {1, 2}, {2, 3}, {2, 4}, {3, 4}, {4, 5}} {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}

	cliques, err := clique.Maximal(g)
	require.NoError(t, err)
	require.NotEmpty(t, cliques)

	for _, c := range cliques {
		assertClique(t, g, c)
		assertMaximal(t, g, c)
	}
	for i, a := range cliques {
		for j, b := range cliques {
			if i == j {
				continue
			}
			assert.False(t, isSubset(a, b),
				"maximal output must contain no subset/superset pair (%v ⊆ %v)",
				sortedMembers(a), sortedMembers(b))
		}
	}

	var got [][]int
	for _, c := range cliques {
		got = append(got, sortedMembers(c))
	}
	assert.ElementsMatch(t, [][]int{{0, 1, 2}, {2, 3, 4}, {4, 5}}, got)
}

// TestMaximal_CanonicalTopologies pins the maximal-clique sets of the
// standard shapes.
func TestMaximal_CanonicalTopologies(t *testing.T) {
	k4, err := build.Complete(4)
	require.NoError(t, err)
	cliques, err := clique.Maximal(k4)
	require.NoError(t, err)
	require.Len(t, cliques, 1, "K_4 has a single maximal clique")
	assert.Equal(t, []int{0, 1, 2, 3}, sortedMembers(cliques[0]))

	p4, err := build.Path(4)
	require.NoError(t, err)
	cliques, err = clique.Maximal(p4)
	require.NoError(t, err)
	var got [][]int
	for _, c := range cliques {
		got = append(got, sortedMembers(c))
	}
	assert.ElementsMatch(t, [][]int{{0, 1}, {1, 2}, {2, 3}}, got,
		"a path's maximal cliques are its edges")

	bare, err := build.Edgeless(5)
	require.NoError(t, err)
	cliques, err = clique.Maximal(bare)
	require.NoError(t, err)
	assert.Len(t, cliques, 5, "every isolated vertex is its own maximal clique")

	c5, err := build.Cycle(5)
	require.NoError(t, err)
	cliques, err = clique.Maximal(c5)
	require.NoError(t, err)
	assert.Len(t, cliques, 5, "a 5-cycle's maximal cliques are its 5 edges")
	for _, c := range cliques {
		assert.Equal(t, 2, c.Len())
	}
}

// TestMaximum_Sizes pins the maximum-clique size of each scenario graph.
func TestMaximum_Sizes(t *testing.T) {
	cases := []struct {
		name  string
		graph func() (*core.Graph, error)
		size  int
	}{
		{"CompleteK4", func() (*core.Graph, error) { return build.Complete(4) }, 4},
		{"Path4", func() (*core.Graph, error) { return build.Path(4) }, 2},
		{"Edgeless5", func() (*core.Graph, error) { return build.Edgeless(5) }, 1},
		{"Cycle5", func() (*core.Graph, error) { return build.Cycle(5) }, 2},
		{"K23", func() (*core.Graph, error) { return build.CompleteBipartite(2, 3) }, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := tc.graph()
			require.NoError(t, err)

			best, err := clique.Maximum(g)
			require.NoError(t, err)
			assert.Equal(t, tc.size, best.Len())
			assertClique(t, g, best)
			assertMaximal(t, g, best)
		})
	}
}

// TestMaximum_EmptyGraph: the only absent result.
func TestMaximum_EmptyGraph(t *testing.T) {
	empty, err := build.Edgeless(0)
	require.NoError(t, err)

	_, err = clique.Maximum(empty)
	assert.ErrorIs(t, err, clique.ErrNoClique)
}

// TestMaximum_RejectsDirected: the shared validation boundary applies.
func TestMaximum_RejectsDirected(t *testing.T) {
	d, err := core.NewGraph(3, core.WithDirected(true))
	require.NoError(t, err)

	_, err = clique.Maximum(d)
	assert.ErrorIs(t, err, core.ErrDirectedGraph)
	_, err = clique.Maximal(nil)
	assert.ErrorIs(t, err, core.ErrGraphNil)
}
