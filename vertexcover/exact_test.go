package vertexcover_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/npcover/build"
	"github.com/katalvlaran/npcover/clique"
	"github.com/katalvlaran/npcover/core"
	"github.com/katalvlaran/npcover/indset"
	"github.com/katalvlaran/npcover/vertexcover"
)

// assertCover fails unless every edge of g has at least one endpoint in s.
func assertCover(t *testing.T, g *core.Graph, s *core.VertexSet) {
	t.Helper()
	for u := 0; u < g.Order(); u++ {
		for v := u + 1; v < g.Order(); v++ {
			if g.HasEdge(u, v) {
				assert.True(t, s.Contains(u) || s.Contains(v),
					"edge (%d,%d) is uncovered", u, v)
			}
		}
	}
}

// scenarioGraphs are the concrete shapes shared by the cover tests.
var scenarioGraphs = []struct {
	name      string
	graph     func() (*core.Graph, error)
	coverSize int
}{
	{"CompleteK4", func() (*core.Graph, error) { return build.Complete(4) }, 3},
	{"Path4", func() (*core.Graph, error) { return build.Path(4) }, 2},
	{"Edgeless5", func() (*core.Graph, error) { return build.Edgeless(5) }, 0},
	{"K23", func() (*core.Graph, error) { return build.CompleteBipartite(2, 3) }, 2},
	{"Cycle5", func() (*core.Graph, error) { return build.Cycle(5) }, 3},
}

// TestExact_ScenarioSizes pins minimum cover sizes and validates coverage.
func TestExact_ScenarioSizes(t *testing.T) {
	for _, tc := range scenarioGraphs {
		t.Run(tc.name, func(t *testing.T) {
			g, err := tc.graph()
			require.NoError(t, err)

			cover, err := vertexcover.Exact(g)
			require.NoError(t, err)
			assert.Equal(t, tc.coverSize, cover.Len())
			assertCover(t, g, cover)
		})
	}
}

// TestExact_ISDuality: |cover| == n − |MIS| on every scenario graph.
func TestExact_ISDuality(t *testing.T) {
	for _, tc := range scenarioGraphs {
		t.Run(tc.name, func(t *testing.T) {
			g, err := tc.graph()
			require.NoError(t, err)

			cover, err := vertexcover.Exact(g)
			require.NoError(t, err)
			mis, err := indset.Maximum(g)
			require.NoError(t, err)

			assert.Equal(t, g.Order()-mis.Len(), cover.Len())
			for i := 0; i < mis.Len(); i++ {
				assert.False(t, cover.Contains(mis.At(i)),
					"cover and MIS must be disjoint")
			}
		})
	}
}

// TestExact_Failures: directed input, nil, and the zero-vertex graph.
func TestExact_Failures(t *testing.T) {
	d, err := core.NewGraph(2, core.WithDirected(true))
	require.NoError(t, err)
	_, err = vertexcover.Exact(d)
	assert.ErrorIs(t, err, core.ErrDirectedGraph)

	_, err = vertexcover.Exact(nil)
	assert.ErrorIs(t, err, core.ErrGraphNil)

	empty, err := build.Edgeless(0)
	require.NoError(t, err)
	_, err = vertexcover.Exact(empty)
	assert.ErrorIs(t, err, clique.ErrNoClique)
}
