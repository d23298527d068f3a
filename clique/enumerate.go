package clique

import "github.com/katalvlaran/npcover/core"

// EnumerateAll discovers every clique of g by plain backtracking search.
//
// On entry to each branch a non-empty Current is itself a valid (possibly
// non-maximal) clique and is recorded. Each candidate v then spawns a child
// branch with Candidates∩N(v) and Excluded∩N(v), after which v moves from
// Candidates to Excluded for its siblings. Non-maximal cliques and repeat
// discoveries of the same clique along different orders are expected output
// and are not deduplicated.
//
// Results are owned by the caller. With WithOnClique the cliques are
// streamed instead and the returned slice is nil.
//
// Returns core.ErrGraphNil / core.ErrDirectedGraph for invalid input, the
// context's error on cancellation, or any error from the OnClique hook.
func EnumerateAll(g *core.Graph, opts ...Option) ([]*core.VertexSet, error) {
	if err := core.ValidateUndirected(g); err != nil {
		return nil, err
	}

	e, cand, excl := newEngine(g, opts)
	if err := e.expandAll(cand, excl); err != nil {
		return nil, err
	}

	return e.found, nil
}

// expandAll is one branch of the exhaustive search. Candidates and Excluded
// arrive as value slices owned by this frame; Current is shared and left
// exactly as found on return.
func (e *engine) expandAll(cand, excl []int) error {
	if err := e.opts.Ctx.Err(); err != nil {
		return err
	}

	if e.current.Len() > 0 {
		if err := e.record(); err != nil {
			return err
		}
	}

	for len(cand) > 0 {
		v := cand[0]

		e.current.Push(v)
		err := e.expandAll(intersectAdjacent(e.g, v, cand), intersectAdjacent(e.g, v, excl))
		e.current.Pop()
		if err != nil {
			return err
		}

		// v is fully explored here: move it Candidates → Excluded so the
		// sibling branches cannot rediscover the same subtree.
		cand = cand[1:]
		excl = withVertex(excl, v)
	}

	return nil
}
