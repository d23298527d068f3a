package core

// VertexSet is an ordered, stack-discipline container of vertex indices:
// the unit of exchange between all search routines in this module.
//
// It is deliberately minimal. Push appends, Pop removes from the end, and
// no deduplication is performed — callers that need set semantics must not
// push a vertex already present. The backing slice grows on demand, so a
// Push never drops data; the capacity passed to NewVertexSet is only a
// preallocation hint.
type VertexSet struct {
	vertices []int
}

// NewVertexSet creates an empty set preallocated for hint vertices.
// A non-positive hint is treated as zero.
func NewVertexSet(hint int) *VertexSet {
	if hint < 0 {
		hint = 0
	}

	return &VertexSet{vertices: make([]int, 0, hint)}
}

// Push appends v to the set. O(1) amortized.
func (s *VertexSet) Push(v int) {
	s.vertices = append(s.vertices, v)
}

// Pop removes the most recently pushed vertex.
// Popping an empty set is a no-op.
func (s *VertexSet) Pop() {
	if len(s.vertices) > 0 {
		s.vertices = s.vertices[:len(s.vertices)-1]
	}
}

// Len returns the number of vertices currently in the set.
func (s *VertexSet) Len() int { return len(s.vertices) }

// At returns the i-th vertex in insertion order.
// Callers must keep 0 ≤ i < Len.
func (s *VertexSet) At(i int) int { return s.vertices[i] }

// Contains reports whether v is a member, by linear scan.
// Complexity: O(Len) — acceptable at the call sites, which are dominated
// by exponential search upstream.
func (s *VertexSet) Contains(v int) bool {
	for _, u := range s.vertices {
		if u == v {
			return true
		}
	}

	return false
}

// Members returns a copy of the contents in insertion order.
// Mutating the returned slice does not affect the set.
func (s *VertexSet) Members() []int {
	out := make([]int, len(s.vertices))
	copy(out, s.vertices)

	return out
}

// Clone returns an independent copy with the same contents and order.
func (s *VertexSet) Clone() *VertexSet {
	cp := &VertexSet{vertices: make([]int, len(s.vertices), cap(s.vertices))}
	copy(cp.vertices, s.vertices)

	return cp
}
