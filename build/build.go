package build

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/npcover/core"
)

// ErrTooFewVertices indicates a topology was requested below its minimum size.
var ErrTooFewVertices = errors.New("build: too few vertices for topology")

// Per-topology minima; no magic numbers at call sites.
const (
	minOrder          = 0
	minPathNodes      = 1
	minCycleNodes     = 3
	minPartitionNodes = 1
)

// Edgeless returns the graph of n isolated vertices, n ≥ 0.
// Complexity: O(n²) for the matrix allocation.
func Edgeless(n int) (*core.Graph, error) {
	if n < minOrder {
		return nil, fmt.Errorf("Edgeless: n=%d: %w", n, ErrTooFewVertices)
	}

	return core.NewGraph(n)
}

// Complete returns the complete simple graph K_n, n ≥ 0.
// Every unordered pair {i,j}, i<j, is emitted exactly once.
// Complexity: O(n²).
func Complete(n int) (*core.Graph, error) {
	g, err := Edgeless(n)
	if err != nil {
		return nil, fmt.Errorf("Complete: %w", err)
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if err = g.AddEdge(i, j); err != nil {
				return nil, fmt.Errorf("Complete: AddEdge(%d,%d): %w", i, j, err)
			}
		}
	}

	return g, nil
}

// Path returns the path graph 0−1−…−(n-1), n ≥ 1.
// Complexity: O(n²) allocation + O(n) edges.
func Path(n int) (*core.Graph, error) {
	if n < minPathNodes {
		return nil, fmt.Errorf("Path: n=%d < min=%d: %w", n, minPathNodes, ErrTooFewVertices)
	}

	g, err := core.NewGraph(n)
	if err != nil {
		return nil, fmt.Errorf("Path: %w", err)
	}
	for i := 0; i+1 < n; i++ {
		if err = g.AddEdge(i, i+1); err != nil {
			return nil, fmt.Errorf("Path: AddEdge(%d,%d): %w", i, i+1, err)
		}
	}

	return g, nil
}

// Cycle returns the cycle graph C_n, n ≥ 3: the path 0−…−(n-1) closed by
// the edge (n-1, 0). Odd n yields the canonical non-bipartite test graph.
// Complexity: O(n²) allocation + O(n) edges.
func Cycle(n int) (*core.Graph, error) {
	if n < minCycleNodes {
		return nil, fmt.Errorf("Cycle: n=%d < min=%d: %w", n, minCycleNodes, ErrTooFewVertices)
	}

	g, err := Path(n)
	if err != nil {
		return nil, fmt.Errorf("Cycle: %w", err)
	}
	if err = g.AddEdge(n-1, 0); err != nil {
		return nil, fmt.Errorf("Cycle: AddEdge(%d,%d): %w", n-1, 0, err)
	}

	return g, nil
}

// CompleteBipartite returns K_{a,b}: left partition 0..a-1, right partition
// a..a+b-1, every cross pair joined. Both sides must be non-empty.
// Complexity: O((a+b)²) allocation + O(a·b) edges.
func CompleteBipartite(a, b int) (*core.Graph, error) {
	if a < minPartitionNodes || b < minPartitionNodes {
		return nil, fmt.Errorf("CompleteBipartite: a=%d, b=%d (each must be ≥ %d): %w",
			a, b, minPartitionNodes, ErrTooFewVertices)
	}

	g, err := core.NewGraph(a + b)
	if err != nil {
		return nil, fmt.Errorf("CompleteBipartite: %w", err)
	}
	for i := 0; i < a; i++ {
		for j := a; j < a+b; j++ {
			if err = g.AddEdge(i, j); err != nil {
				return nil, fmt.Errorf("CompleteBipartite: AddEdge(%d,%d): %w", i, j, err)
			}
		}
	}

	return g, nil
}
