package vertexcover

import (
	"github.com/katalvlaran/npcover/clique"
	"github.com/katalvlaran/npcover/core"
	"github.com/katalvlaran/npcover/indset"
)

// Exact returns a minimum vertex cover of g: every vertex NOT in a maximum
// independent set. Membership is tested by linear scan per vertex —
// correctness over asymptotic polish, given the exponential independent-set
// search upstream dominates the cost anyway.
//
// Ownership of the result transfers to the caller. Options are forwarded
// to the underlying clique engine.
//
// Returns core.ErrGraphNil / core.ErrDirectedGraph for invalid input and
// clique.ErrNoClique for a zero-vertex graph.
func Exact(g *core.Graph, opts ...clique.Option) (*core.VertexSet, error) {
	if err := core.ValidateUndirected(g); err != nil {
		return nil, err
	}

	mis, err := indset.Maximum(g, opts...)
	if err != nil {
		return nil, err
	}

	cover := core.NewVertexSet(g.Order())
	for v := 0; v < g.Order(); v++ {
		if !mis.Contains(v) {
			cover.Push(v)
		}
	}

	return cover, nil
}
