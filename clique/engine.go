package clique

import "github.com/katalvlaran/npcover/core"

// engine carries the state shared by one enumeration run: the graph, the
// resolved options, the Current set (push/pop per recursion level), and the
// accumulated result when no streaming hook is installed.
type engine struct {
	g       *core.Graph
	opts    Options
	current *core.VertexSet
	found   []*core.VertexSet
}

// newEngine resolves options and seeds the Current/Candidates/Excluded roles:
// Current empty, Candidates all of 0..n-1, Excluded empty.
func newEngine(g *core.Graph, opts []Option) (*engine, []int, []int) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	n := g.Order()
	cand := make([]int, n)
	for v := 0; v < n; v++ {
		cand[v] = v
	}

	e := &engine{g: g, opts: o, current: core.NewVertexSet(n)}

	return e, cand, nil
}

// record snapshots Current as an owned VertexSet and either streams it to
// the OnClique hook or appends it to the result list.
func (e *engine) record() error {
	snapshot := e.current.Clone()
	if e.opts.OnClique != nil {
		return e.opts.OnClique(snapshot)
	}
	e.found = append(e.found, snapshot)

	return nil
}

// intersectAdjacent returns a fresh slice holding vs ∩ N(v), in the order
// of vs. The input is never mutated.
func intersectAdjacent(g *core.Graph, v int, vs []int) []int {
	out := make([]int, 0, len(vs))
	for _, w := range vs {
		if g.HasEdge(v, w) {
			out = append(out, w)
		}
	}

	return out
}

// without returns a fresh copy of vs with v removed, preserving order.
func without(vs []int, v int) []int {
	out := make([]int, 0, len(vs))
	for _, w := range vs {
		if w != v {
			out = append(out, w)
		}
	}

	return out
}

// withVertex returns a fresh copy of vs with v appended.
func withVertex(vs []int, v int) []int {
	out := make([]int, 0, len(vs)+1)
	out = append(out, vs...)

	return append(out, v)
}
