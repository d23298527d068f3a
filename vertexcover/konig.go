package vertexcover

import (
	"github.com/katalvlaran/npcover/core"
	"github.com/katalvlaran/npcover/matching"
)

// Bipartite returns an exact minimum vertex cover of a bipartite graph in
// polynomial time, via König's theorem: after a maximum Hopcroft–Karp
// matching, one alternating BFS from all free left vertices (non-matching
// edges left→right, matching edges right→left) marks a set Z, and
// (Left \ Z) ∪ (Right ∩ Z) is a cover whose size equals the matching size
// — which is optimal.
//
// When either partition class is empty the graph is edgeless and the
// trivial cover of all nonzero-degree vertices (hence the empty set) is
// returned. There are no partial results: a non-bipartite graph yields
// matching.ErrNotBipartite and nothing else, directed or nil input yields
// the core sentinels. Options are forwarded to HopcroftKarp.
func Bipartite(g *core.Graph, opts ...matching.Option) (*core.VertexSet, error) {
	if err := core.ValidateUndirected(g); err != nil {
		return nil, err
	}

	part, err := matching.Bipartition(g)
	if err != nil {
		return nil, err
	}
	if len(part.Left) == 0 || len(part.Right) == 0 {
		return trivialCover(g)
	}

	m, err := matching.HopcroftKarp(g, part, opts...)
	if err != nil {
		return nil, err
	}

	return coverFromMatching(g, part, m), nil
}

// trivialCover collects every vertex with at least one incident edge.
// Reached only when one partition class is empty, which on an undirected
// graph forces an edgeless graph — kept as a guard rather than an
// assumption.
func trivialCover(g *core.Graph) (*core.VertexSet, error) {
	cover := core.NewVertexSet(g.Order())
	for v := 0; v < g.Order(); v++ {
		deg, err := g.Degree(v)
		if err != nil {
			return nil, err
		}
		if deg > 0 {
			cover.Push(v)
		}
	}

	return cover, nil
}

// coverFromMatching runs the alternating BFS of König's construction and
// assembles the cover. visited slots are side-local positions.
func coverFromMatching(g *core.Graph, part *matching.Partition, m *matching.Matching) *core.VertexSet {
	visitedLeft := make([]bool, len(part.Left))
	visitedRight := make([]bool, len(part.Right))

	// Seed with every free left vertex.
	queue := make([]leftRight, 0, len(part.Left)+len(part.Right))
	for i, j := range m.PairLeft {
		if j == matching.Unmatched {
			visitedLeft[i] = true
			queue = append(queue, leftRight{pos: i, left: true})
		}
	}

	for head := 0; head < len(queue); head++ {
		cur := queue[head]
		if cur.left {
			// Non-matching edges only, left→right.
			for j, v := range part.Right {
				if visitedRight[j] || !g.HasEdge(part.Left[cur.pos], v) || m.PairLeft[cur.pos] == j {
					continue
				}
				visitedRight[j] = true
				queue = append(queue, leftRight{pos: j})
			}

			continue
		}
		// Matching edge only, right→left.
		if i := m.PairRight[cur.pos]; i != matching.Unmatched && !visitedLeft[i] {
			visitedLeft[i] = true
			queue = append(queue, leftRight{pos: i, left: true})
		}
	}

	cover := core.NewVertexSet(m.Size)
	for i, v := range part.Left {
		if !visitedLeft[i] {
			cover.Push(v)
		}
	}
	for j, v := range part.Right {
		if visitedRight[j] {
			cover.Push(v)
		}
	}

	return cover
}

// leftRight addresses one side-local position during the alternating BFS.
type leftRight struct {
	pos  int
	left bool
}
