package network

// Arc is one direction of an undirected edge.
type Arc struct {
	To     int
	Weight float64
}

// Edge connects two interned cities.
type Edge struct {
	From     int
	To       int
	Distance float64
}

// Graph is an undirected weighted adjacency list over dense city ids.
// Parallel edges and self-loops are kept as given.
type Graph struct {
	adj   [][]Arc
	edges int
}

// NewGraph returns a graph with n isolated vertices.
func NewGraph(n int) *Graph {
	return &Graph{adj: make([][]Arc, n)}
}

// BuildGraph creates a graph over n cities from the given edges.
func BuildGraph(n int, edges []Edge) *Graph {
	g := NewGraph(n)
	for _, e := range edges {
		g.AddEdge(e.From, e.To, e.Distance)
	}
	return g
}

// AddEdge appends an arc in each direction, growing the vertex set if needed.
func (g *Graph) AddEdge(a, b int, w float64) {
	g.grow(max(a, b) + 1)
	g.adj[a] = append(g.adj[a], Arc{To: b, Weight: w})
	g.adj[b] = append(g.adj[b], Arc{To: a, Weight: w})
	g.edges++
}

func (g *Graph) grow(n int) {
	for len(g.adj) < n {
		g.adj = append(g.adj, nil)
	}
}

// Neighbors returns the arcs leaving id in insertion order.
func (g *Graph) Neighbors(id int) []Arc {
	if id < 0 || id >= len(g.adj) {
		return nil
	}
	return g.adj[id]
}

func (g *Graph) Len() int { return len(g.adj) }

// Edges returns the number of undirected edges added.
func (g *Graph) Edges() int { return g.edges }
