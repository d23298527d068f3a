package core

import "errors"

// Sentinel errors for core graph operations.
// All solvers return these sentinels unchanged or wrapped with %w;
// callers match them via errors.Is. No routine panics on user input.
var (
	// ErrGraphNil indicates that a nil *Graph was passed in.
	ErrGraphNil = errors.New("core: graph is nil")

	// ErrNegativeOrder indicates that NewGraph was asked for n < 0 vertices.
	ErrNegativeOrder = errors.New("core: vertex count must be non-negative")

	// ErrVertexOutOfRange indicates an index outside 0..n-1.
	ErrVertexOutOfRange = errors.New("core: vertex index out of range")

	// ErrSelfLoop indicates an attempt to add or query an (i,i) edge.
	// Self-loops are structurally excluded from this core.
	ErrSelfLoop = errors.New("core: self-loops not allowed")

	// ErrAntiparallelEdge indicates an attempt to add the reverse of an
	// existing directed edge on a graph built without WithBidirectional.
	ErrAntiparallelEdge = errors.New("core: antiparallel edge not allowed")

	// ErrDirectedGraph indicates a directed graph reached a routine that
	// is defined for undirected graphs only.
	ErrDirectedGraph = errors.New("core: directed graphs not supported")
)
