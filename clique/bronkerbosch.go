package clique

import "github.com/katalvlaran/npcover/core"

// Maximal enumerates the maximal cliques of g with the pivoted
// Bron–Kerbosch algorithm. Every maximal clique appears exactly once and
// the output contains no subset/superset pairs.
//
// A branch terminates when Candidates and Excluded are both empty: Current
// is then maximal and is recorded. Otherwise a pivot u ∈ Candidates∪Excluded
// maximizing |N(u)∩Candidates| prunes the branching to Candidates \ N(u);
// vertices adjacent to the pivot are reached through the pivot's own
// subtree, so skipping them loses nothing.
//
// Results are owned by the caller. With WithOnClique the cliques are
// streamed instead and the returned slice is nil.
//
// Returns core.ErrGraphNil / core.ErrDirectedGraph for invalid input, the
// context's error on cancellation, or any error from the OnClique hook.
// A zero-vertex graph yields no cliques.
func Maximal(g *core.Graph, opts ...Option) ([]*core.VertexSet, error) {
	if err := core.ValidateUndirected(g); err != nil {
		return nil, err
	}

	e, cand, excl := newEngine(g, opts)
	if err := e.expandPivoted(cand, excl); err != nil {
		return nil, err
	}

	return e.found, nil
}

// Maximum returns one largest clique of g: the first clique of maximum size
// in Maximal's enumeration order. Ties beyond that are not further broken.
//
// Returns ErrNoClique only for a graph with zero vertices; any graph with
// at least one vertex has at least a singleton maximal clique.
func Maximum(g *core.Graph, opts ...Option) (*core.VertexSet, error) {
	if err := core.ValidateUndirected(g); err != nil {
		return nil, err
	}

	e, cand, excl := newEngine(g, opts)

	// Intercept every recorded maximal clique and keep the first one of
	// maximum size, so the full enumeration is never held in memory.
	// A caller's own hook still sees each clique afterwards.
	var best *core.VertexSet
	userHook := e.opts.OnClique
	e.opts.OnClique = func(c *core.VertexSet) error {
		if best == nil || c.Len() > best.Len() {
			best = c.Clone()
		}
		if userHook != nil {
			return userHook(c)
		}

		return nil
	}

	if err := e.expandPivoted(cand, excl); err != nil {
		return nil, err
	}
	if best == nil {
		return nil, ErrNoClique
	}

	return best, nil
}

// expandPivoted is one branch of the pivoted search. Candidates and
// Excluded arrive as value slices owned by this frame; Current is shared
// and left exactly as found on return.
func (e *engine) expandPivoted(cand, excl []int) error {
	if err := e.opts.Ctx.Err(); err != nil {
		return err
	}

	if len(cand) == 0 && len(excl) == 0 {
		// Current is maximal. The empty Current (zero-vertex graph) is not
		// recorded: an empty graph has no cliques.
		if e.current.Len() == 0 {
			return nil
		}

		return e.record()
	}

	u := e.selectPivot(cand, excl)

	// Branch only over Candidates \ N(u); every other candidate is covered
	// by the subtree of some branch vertex it is adjacent to.
	branch := make([]int, 0, len(cand))
	for _, v := range cand {
		if u < 0 || !e.g.HasEdge(u, v) {
			branch = append(branch, v)
		}
	}

	for _, v := range branch {
		e.current.Push(v)
		err := e.expandPivoted(intersectAdjacent(e.g, v, cand), intersectAdjacent(e.g, v, excl))
		e.current.Pop()
		if err != nil {
			return err
		}

		cand = without(cand, v)
		excl = withVertex(excl, v)
	}

	return nil
}

// selectPivot picks u ∈ Candidates∪Excluded with the largest neighborhood
// inside Candidates. Ties break to the first vertex found: Candidates are
// scanned before Excluded, ascending within each, so enumeration order is
// deterministic. Returns -1 when both sets are empty.
func (e *engine) selectPivot(cand, excl []int) int {
	pivot, best := -1, -1
	for _, pool := range [2][]int{cand, excl} {
		for _, u := range pool {
			count := 0
			for _, w := range cand {
				if e.g.HasEdge(u, w) {
					count++
				}
			}
			if count > best {
				best, pivot = count, u
			}
		}
	}

	return pivot
}
