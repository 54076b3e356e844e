package network

// Unreachable is the sentinel distance of a city that cannot be reached.
// Any distance at or above it must be treated as "no route".
const Unreachable = 1e18

// Reachable reports whether d is a real distance.
func Reachable(d float64) bool { return d < Unreachable }

// ShortestPath runs Dijkstra from src and stops once dst is settled.
//
// The minimum unvisited vertex is found by a linear scan, which is O(V²) and
// fine for the city counts we handle. Ties go to the lowest id, and relaxation
// uses strict less-than, so the predecessor chain is the first shortest path
// discovered in neighbor insertion order.
//
// It returns the distance to dst (Unreachable if never reached) and the
// predecessor array, where prev[v] == -1 means v has no predecessor.
func (g *Graph) ShortestPath(src, dst int) (float64, []int) {
	n := len(g.adj)
	dist := make([]float64, n)
	prev := make([]int, n)
	used := make([]bool, n)
	for i := range n {
		dist[i] = Unreachable
		prev[i] = -1
	}
	if src < 0 || src >= n || dst < 0 || dst >= n {
		return Unreachable, prev
	}
	dist[src] = 0

	for range n {
		u := -1
		best := Unreachable
		for i := range n {
			if !used[i] && dist[i] < best {
				best = dist[i]
				u = i
			}
		}
		if u == -1 {
			break
		}
		used[u] = true
		if u == dst {
			break
		}

		for _, arc := range g.adj[u] {
			if d := dist[u] + arc.Weight; d < dist[arc.To] {
				dist[arc.To] = d
				prev[arc.To] = u
			}
		}
	}

	return dist[dst], prev
}

// Path rebuilds the src→dst path from a predecessor array.
// ok is false when the chain breaks before reaching src. A path from a city
// to itself has one element.
func Path(src, dst int, prev []int) (path []int, ok bool) {
	if dst < 0 || dst >= len(prev) {
		return nil, false
	}

	cur := dst
	for cur != -1 {
		path = append(path, cur)
		if cur == src {
			break
		}
		// A self-referencing chain longer than the vertex count cannot reach src.
		if len(path) > len(prev) {
			return nil, false
		}
		cur = prev[cur]
	}
	if cur == -1 {
		return nil, false
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, true
}
