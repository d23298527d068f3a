package indset

import (
	"github.com/katalvlaran/npcover/clique"
	"github.com/katalvlaran/npcover/core"
)

// Maximum returns a maximum independent set of g: the largest vertex set
// with no adjacent pair. Ownership of the result transfers to the caller.
//
// The set is found as a maximum clique of the complement graph; the
// complement is an internal throwaway and g itself is never mutated.
// Options (WithContext, WithOnClique) are forwarded to the clique engine.
//
// Returns core.ErrGraphNil / core.ErrDirectedGraph for invalid input and
// clique.ErrNoClique for a zero-vertex graph.
func Maximum(g *core.Graph, opts ...clique.Option) (*core.VertexSet, error) {
	if err := core.ValidateUndirected(g); err != nil {
		return nil, err
	}

	comp, err := g.Complement()
	if err != nil {
		return nil, err
	}

	// A clique of the complement is an independent set of g.
	return clique.Maximum(comp, opts...)
}
