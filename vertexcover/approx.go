package vertexcover

import "github.com/katalvlaran/npcover/core"

// Approx returns a vertex cover at most twice the minimum size, built from
// a greedy maximal matching in a single pass.
//
// Vertices are scanned in ascending order; each still-uncovered vertex u
// takes its first uncovered neighbor v as a matching edge and both
// endpoints enter the cover. Every edge of g ends up with at least one
// covered endpoint: an edge with both endpoints uncovered would have been
// taken when its lower endpoint was scanned.
//
// Always succeeds on undirected input; an edgeless graph yields an empty
// set. Returns core.ErrGraphNil / core.ErrDirectedGraph otherwise.
// Complexity: O(V²), no recursion.
func Approx(g *core.Graph) (*core.VertexSet, error) {
	if err := core.ValidateUndirected(g); err != nil {
		return nil, err
	}

	n := g.Order()
	covered := make([]bool, n)
	cover := core.NewVertexSet(n)

	for u := 0; u < n; u++ {
		if covered[u] {
			continue
		}
		for v := 0; v < n; v++ {
			if g.HasEdge(u, v) && !covered[v] {
				covered[u], covered[v] = true, true
				cover.Push(u)
				cover.Push(v)

				break
			}
		}
	}

	return cover, nil
}
