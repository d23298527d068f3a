package matching

import "github.com/katalvlaran/npcover/core"

// vertex colors during the BFS sweep.
const (
	uncolored = iota
	colorLeft
	colorRight
)

// Bipartition 2-colors g by BFS, one connected component at a time.
// The first vertex of each component — in particular every isolated
// vertex — defaults to Left. Detection is all-or-nothing: an edge between
// two same-colored vertices aborts with ErrNotBipartite and no partial
// partition escapes.
//
// Returns core.ErrGraphNil / core.ErrDirectedGraph for invalid input.
// Complexity: O(V²) on the dense adjacency matrix.
func Bipartition(g *core.Graph) (*Partition, error) {
	if err := core.ValidateUndirected(g); err != nil {
		return nil, err
	}

	n := g.Order()
	color := make([]int, n)
	queue := make([]int, 0, n)

	for root := 0; root < n; root++ {
		if color[root] != uncolored {
			continue
		}
		color[root] = colorLeft
		queue = append(queue[:0], root)

		for head := 0; head < len(queue); head++ {
			u := queue[head]
			for v := 0; v < n; v++ {
				if !g.HasEdge(u, v) {
					continue
				}
				switch color[v] {
				case uncolored:
					if color[u] == colorLeft {
						color[v] = colorRight
					} else {
						color[v] = colorLeft
					}
					queue = append(queue, v)
				case color[u]:
					return nil, ErrNotBipartite
				}
			}
		}
	}

	p := &Partition{left: make([]bool, n)}
	for v := 0; v < n; v++ {
		if color[v] == colorLeft {
			p.left[v] = true
			p.Left = append(p.Left, v)
		} else {
			p.Right = append(p.Right, v)
		}
	}

	return p, nil
}
