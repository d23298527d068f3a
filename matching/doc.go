// Package matching provides the bipartite machinery behind the exact
// polynomial vertex-cover solver: partition detection and Hopcroft–Karp
// maximum matching.
//
// What:
//
//   - Bipartition: BFS 2-coloring per connected component. Component roots
//     (including isolated vertices) default to the Left class; an edge
//     joining two same-colored vertices aborts with ErrNotBipartite.
//   - HopcroftKarp: maximum matching over a detected Partition in O(E·√V):
//     repeated phases of BFS layering from all free left vertices through
//     alternating edges, followed by layered DFS augmentation that flips
//     every vertex-disjoint shortest augmenting path found.
//
// Why a separate package:
//
//	The matching state (pair arrays, layer distances) is its own small
//	domain with reusable value — König's construction in vertexcover is
//	one consumer, but a maximum matching is a meaningful answer on its own.
//
// Errors:
//
//   - core.ErrGraphNil, core.ErrDirectedGraph: invalid input.
//   - ErrNotBipartite: an odd cycle was found; no partial partition escapes.
//   - ErrPartitionNil: HopcroftKarp was handed a nil partition.
//
// Complexity:
//
//   - Bipartition: O(V²) on the dense matrix.
//   - HopcroftKarp: O(√V) phases, O(V²) per phase here (dense adjacency).
package matching
