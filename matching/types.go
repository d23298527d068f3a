package matching

import (
	"context"
	"errors"
)

// Sentinel errors for the bipartite engine.
var (
	// ErrNotBipartite indicates an edge joining two same-colored vertices:
	// the graph contains an odd cycle. This is an infeasibility result, not
	// an input defect — distinguish it from core.ErrDirectedGraph.
	ErrNotBipartite = errors.New("matching: graph is not bipartite")

	// ErrPartitionNil indicates HopcroftKarp received a nil *Partition.
	ErrPartitionNil = errors.New("matching: partition is nil")
)

// Unmatched marks a side-local slot with no partner in a Matching.
const Unmatched = -1

// Partition is a 2-coloring of an undirected graph: every vertex carries
// exactly one of the Left/Right labels. Produced by Bipartition and
// consumed by HopcroftKarp; treat it as read-only.
type Partition struct {
	// Left and Right hold original vertex indices per class, ascending.
	Left  []int
	Right []int

	left []bool // left[v] reports v's class, indexed by original vertex
}

// InLeft reports whether original vertex v carries the Left label.
func (p *Partition) InLeft(v int) bool { return p.left[v] }

// Matching is a maximum matching over a Partition. Pair slots are
// side-local: PairLeft[i] is the position in Right matched to Left[i]
// (Unmatched if free), and symmetrically for PairRight.
type Matching struct {
	PairLeft  []int
	PairRight []int

	// Size is the number of matched edges.
	Size int
}

// Edges returns the matched pairs as original vertex indices (left, right),
// in ascending left order. The slice is owned by the caller.
func (m *Matching) Edges(p *Partition) [][2]int {
	edges := make([][2]int, 0, m.Size)
	for i, j := range m.PairLeft {
		if j != Unmatched {
			edges = append(edges, [2]int{p.Left[i], p.Right[j]})
		}
	}

	return edges
}

// Option configures HopcroftKarp via functional arguments.
type Option func(*Options)

// Options holds the tunable parameters of a matching run.
type Options struct {
	// Ctx allows cancellation and deadlines, checked between phases.
	Ctx context.Context
}

// DefaultOptions returns Options with a background context.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets a custom context for cancellation or deadlines.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}
