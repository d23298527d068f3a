// Package build provides deterministic constructors for the standard
// topologies used throughout npcover's tests, benchmarks and examples.
//
// What:
//
//   - Complete(n):          the complete simple graph K_n.
//   - Edgeless(n):          n isolated vertices.
//   - Path(n):              the path 0−1−…−(n-1).
//   - Cycle(n):             the cycle on n ≥ 3 vertices.
//   - CompleteBipartite(a,b): K_{a,b}, left = 0..a-1, right = a..a+b-1.
//
// Why:
//
//	The solvers consume any undirected core.Graph; these constructors exist
//	so that callers (and this module's own tests) can produce the canonical
//	shapes — cliques, paths, odd cycles, bipartite blocks — without
//	hand-rolling edge loops.
//
// Determinism:
//
//	Vertices are indices in ascending order and edges are emitted in
//	lexicographic (i,j) order, i<j, so repeated builds are identical.
//
// Errors:
//
//   - ErrTooFewVertices: the requested size is below the topology's minimum.
package build
