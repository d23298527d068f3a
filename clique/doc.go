// Package clique enumerates cliques of a dense undirected core.Graph:
// exhaustively, maximally (Bron–Kerbosch with pivoting), and reduced to a
// single maximum clique.
//
// What:
//
//   - EnumerateAll: backtracking enumeration of every clique, including
//     non-maximal ones; the same clique may be discovered along several
//     recursion paths and duplicates are not removed.
//   - Maximal: pivot-pruned Bron–Kerbosch; every maximal clique is produced
//     exactly once, with no subset/superset pairs in the output.
//   - Maximum: runs Maximal and returns the first largest clique found.
//
// How:
//
//	Both engines carry three roles through the recursion: Current (the
//	clique being built, a shared VertexSet under strict push/pop
//	discipline), Candidates (vertices that can still extend Current), and
//	Excluded (vertices already fully explored from this branch, kept so an
//	already-covered branch is never re-entered). Candidates and Excluded
//	are value-semantics slices, freshly derived per branch, so a child
//	frame can never corrupt its parent's view.
//
//	The pivot u ∈ Candidates∪Excluded maximizes |N(u) ∩ Candidates|, ties
//	broken by first-found (Candidates scanned before Excluded, ascending
//	index), and branching is restricted to Candidates \ N(u) — the minimal
//	set that still reaches every maximal clique.
//
// Budgeting:
//
//	The search is unconditionally exhaustive once started. Callers who need
//	to bound runtime on large graphs pass WithContext; cancellation is
//	checked on every branch entry and aborts with the context's error.
//
// Errors:
//
//   - core.ErrGraphNil, core.ErrDirectedGraph: invalid input.
//   - ErrNoClique: Maximum on a zero-vertex graph.
//
// Complexity:
//
//	Worst case O(3^(V/3)) branches (Moon–Moser bound) for Maximal; strictly
//	larger for EnumerateAll. Recursion depth ≤ V.
package clique
