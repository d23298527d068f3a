package core

import "fmt"

// Graph is a dense boolean adjacency-matrix graph over vertices 0..n-1.
//
// The zero value is not usable; construct with NewGraph. Structural
// invariants maintained by every mutator:
//
//   - adj[i][i] is always false (no self-loops),
//   - adj[i][j] == adj[j][i] for undirected graphs,
//   - for directed graphs without WithBidirectional, at most one of
//     adj[i][j] / adj[j][i] is set.
type Graph struct {
	adj           [][]bool // n×n adjacency; adj[u][v] == true ⇔ edge u→v
	n             int      // vertex count
	directed      bool     // default false: undirected
	bidirectional bool     // directed only: permit antiparallel edge pairs
}

// GraphOption configures a Graph at construction time.
type GraphOption func(*Graph)

// WithDirected sets the directedness of the graph.
// The solvers in this module accept undirected graphs only; a directed
// Graph is still constructible so that collaborators can share the type.
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithBidirectional permits antiparallel edge pairs (u→v and v→u) on a
// directed graph. It has no effect on undirected graphs.
func WithBidirectional(allow bool) GraphOption {
	return func(g *Graph) { g.bidirectional = allow }
}

// NewGraph creates a graph with n isolated vertices.
// Returns ErrNegativeOrder when n < 0.
// Complexity: O(n²) allocation.
func NewGraph(n int, opts ...GraphOption) (*Graph, error) {
	if n < 0 {
		return nil, fmt.Errorf("NewGraph(%d): %w", n, ErrNegativeOrder)
	}

	g := &Graph{n: n}
	for _, opt := range opts {
		opt(g)
	}

	g.adj = make([][]bool, n)
	for i := range g.adj {
		g.adj[i] = make([]bool, n)
	}

	return g, nil
}

// Order returns the number of vertices.
func (g *Graph) Order() int { return g.n }

// Directed reports whether the graph is directed.
func (g *Graph) Directed() bool { return g.directed }

// Bidirectional reports whether antiparallel directed edges are permitted.
func (g *Graph) Bidirectional() bool { return g.bidirectional }

// checkVertex validates a single vertex index.
func (g *Graph) checkVertex(v int) error {
	if v < 0 || v >= g.n {
		return fmt.Errorf("vertex %d (order %d): %w", v, g.n, ErrVertexOutOfRange)
	}

	return nil
}

// AddEdge inserts the edge u→v (mirrored to v→u when undirected).
// Adding an existing edge is a no-op.
// Returns ErrVertexOutOfRange, ErrSelfLoop, or ErrAntiparallelEdge.
// Complexity: O(1).
func (g *Graph) AddEdge(u, v int) error {
	if err := g.checkVertex(u); err != nil {
		return err
	}
	if err := g.checkVertex(v); err != nil {
		return err
	}
	if u == v {
		return fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrSelfLoop)
	}
	if g.directed && !g.bidirectional && g.adj[v][u] {
		return fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrAntiparallelEdge)
	}

	g.adj[u][v] = true
	if !g.directed {
		g.adj[v][u] = true
	}

	return nil
}

// RemoveEdge deletes the edge u→v (and v→u when undirected).
// Removing an absent edge is a no-op.
// Complexity: O(1).
func (g *Graph) RemoveEdge(u, v int) error {
	if err := g.checkVertex(u); err != nil {
		return err
	}
	if err := g.checkVertex(v); err != nil {
		return err
	}

	g.adj[u][v] = false
	if !g.directed {
		g.adj[v][u] = false
	}

	return nil
}

// HasEdge reports whether the edge u→v exists.
// Out-of-range indices report false rather than erroring: the solvers probe
// adjacency in tight inner loops and indices there are already validated.
// Complexity: O(1).
func (g *Graph) HasEdge(u, v int) bool {
	if u < 0 || u >= g.n || v < 0 || v >= g.n {
		return false
	}

	return g.adj[u][v]
}

// Degree returns the number of neighbors of v
// (out-degree for directed graphs).
// Complexity: O(V).
func (g *Graph) Degree(v int) (int, error) {
	if err := g.checkVertex(v); err != nil {
		return 0, err
	}

	deg := 0
	for u := 0; u < g.n; u++ {
		if g.adj[v][u] {
			deg++
		}
	}

	return deg, nil
}

// Neighbors returns the vertices adjacent to v, in ascending index order.
// Complexity: O(V).
func (g *Graph) Neighbors(v int) ([]int, error) {
	if err := g.checkVertex(v); err != nil {
		return nil, err
	}

	nbrs := make([]int, 0, g.n)
	for u := 0; u < g.n; u++ {
		if g.adj[v][u] {
			nbrs = append(nbrs, u)
		}
	}

	return nbrs, nil
}

// EdgeCount returns the number of edges
// (each undirected edge counted once).
// Complexity: O(V²).
func (g *Graph) EdgeCount() int {
	count := 0
	for i := 0; i < g.n; i++ {
		for j := 0; j < g.n; j++ {
			if g.adj[i][j] {
				count++
			}
		}
	}
	if !g.directed {
		count /= 2
	}

	return count
}

// Clone returns a deep copy; the copy shares no storage with the original.
// Complexity: O(V²).
func (g *Graph) Clone() *Graph {
	cp := &Graph{
		n:             g.n,
		directed:      g.directed,
		bidirectional: g.bidirectional,
		adj:           make([][]bool, g.n),
	}
	for i := range g.adj {
		cp.adj[i] = make([]bool, g.n)
		copy(cp.adj[i], g.adj[i])
	}

	return cp
}

// Complement builds the edge-complement of an undirected graph: a new,
// independent Graph on the same vertices where edge (i,j), i≠j, exists iff
// it is absent in g. The diagonal stays empty and g itself is untouched.
//
// This is the structural bridge between clique search and independent-set
// search: a clique in the complement is an independent set in g.
//
// Returns ErrGraphNil or ErrDirectedGraph.
// Complexity: O(V²).
func (g *Graph) Complement() (*Graph, error) {
	if err := ValidateUndirected(g); err != nil {
		return nil, err
	}

	comp, err := NewGraph(g.n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < g.n; i++ {
		for j := 0; j < g.n; j++ {
			if i != j {
				comp.adj[i][j] = !g.adj[i][j]
			}
		}
	}

	return comp, nil
}

// ValidateUndirected is the single input boundary shared by every solver:
// it rejects nil and directed graphs so that individual algorithms never
// re-implement (or forget) the check.
func ValidateUndirected(g *Graph) error {
	if g == nil {
		return ErrGraphNil
	}
	if g.directed {
		return ErrDirectedGraph
	}

	return nil
}
