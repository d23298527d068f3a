package matching

import (
	"math"

	"github.com/katalvlaran/npcover/core"
)

// infDist marks a left vertex unreached by the current BFS layering.
const infDist = math.MaxInt

// hkState is the per-run state of one Hopcroft–Karp execution: side-local
// adjacency, the pair arrays under construction, and the layer distances
// rebuilt each phase. The virtual nilIdx slot (== len(left)) stands for
// "free right vertex", so the layered DFS can treat augmenting-path ends
// uniformly.
type hkState struct {
	adj       [][]int // adj[i]: right positions adjacent to Left[i]
	pairLeft  []int
	pairRight []int
	dist      []int // layer distance per left position, plus nilIdx slot
	nilIdx    int
}

// HopcroftKarp computes a maximum matching of g across the given partition
// in O(E·√V). Each phase BFS-layers all free left vertices outward through
// alternating non-matching/matching edges; if no free right vertex is
// reachable the matching is maximum, otherwise a layered DFS augments along
// vertex-disjoint shortest paths and flips the matched edges on each.
//
// The matching arrays never escape half-built: on cancellation only the
// context's error is returned.
//
// Returns core.ErrGraphNil / core.ErrDirectedGraph / ErrPartitionNil for
// invalid input.
func HopcroftKarp(g *core.Graph, part *Partition, opts ...Option) (*Matching, error) {
	if err := core.ValidateUndirected(g); err != nil {
		return nil, err
	}
	if part == nil {
		return nil, ErrPartitionNil
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	nLeft, nRight := len(part.Left), len(part.Right)
	st := &hkState{
		adj:       make([][]int, nLeft),
		pairLeft:  make([]int, nLeft),
		pairRight: make([]int, nRight),
		dist:      make([]int, nLeft+1),
		nilIdx:    nLeft,
	}
	for i, u := range part.Left {
		for j, v := range part.Right {
			if g.HasEdge(u, v) {
				st.adj[i] = append(st.adj[i], j)
			}
		}
		st.pairLeft[i] = Unmatched
	}
	for j := range st.pairRight {
		st.pairRight[j] = Unmatched
	}

	size := 0
	for {
		if err := o.Ctx.Err(); err != nil {
			return nil, err
		}
		if !st.layer() {
			break
		}
		for i := 0; i < nLeft; i++ {
			if st.pairLeft[i] == Unmatched && st.augment(i) {
				size++
			}
		}
	}

	return &Matching{PairLeft: st.pairLeft, PairRight: st.pairRight, Size: size}, nil
}

// layer runs the phase BFS: every free left vertex starts at distance 0
// and layers grow through (non-matching edge, matching edge) pairs.
// Reports whether any free right vertex — the virtual nilIdx slot — is
// reachable, i.e. whether at least one augmenting path exists.
func (st *hkState) layer() bool {
	queue := make([]int, 0, len(st.pairLeft))
	for i, j := range st.pairLeft {
		if j == Unmatched {
			st.dist[i] = 0
			queue = append(queue, i)
		} else {
			st.dist[i] = infDist
		}
	}
	st.dist[st.nilIdx] = infDist

	for head := 0; head < len(queue); head++ {
		u := queue[head]
		if st.dist[u] >= st.dist[st.nilIdx] {
			continue
		}
		for _, j := range st.adj[u] {
			next := st.pairRight[j]
			if next == Unmatched {
				next = st.nilIdx
			}
			if st.dist[next] == infDist {
				st.dist[next] = st.dist[u] + 1
				if next != st.nilIdx {
					queue = append(queue, next)
				}
			}
		}
	}

	return st.dist[st.nilIdx] != infDist
}

// augment searches depth-first from left position i for an augmenting path
// that follows the BFS layering, flipping the matching along it on success.
// A left vertex that fails is taken out of this phase's layer graph by
// setting its distance to infDist, which keeps the found paths
// vertex-disjoint.
func (st *hkState) augment(i int) bool {
	for _, j := range st.adj[i] {
		next := st.pairRight[j]
		if next == Unmatched {
			next = st.nilIdx
		}
		if st.dist[next] == st.dist[i]+1 && (next == st.nilIdx || st.augment(next)) {
			st.pairLeft[i] = j
			st.pairRight[j] = i

			return true
		}
	}
	st.dist[i] = infDist

	return false
}
