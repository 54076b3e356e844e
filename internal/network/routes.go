package network

import (
	"fmt"
	"sync"

	"relief-allocation-service/internal/domain"
)

type pair struct{ src, dst int }

// RouteCache memoizes shortest routes over an immutable graph for one run.
// It is safe for concurrent use.
type RouteCache struct {
	g *Graph

	mu     sync.Mutex
	routes map[pair]domain.Route
	misses int
}

func NewRouteCache(g *Graph) *RouteCache {
	return &RouteCache{g: g, routes: make(map[pair]domain.Route)}
}

// Route returns the shortest route from src to dst, or ErrUnreachable.
func (c *RouteCache) Route(src, dst int) (domain.Route, error) {
	key := pair{src, dst}

	c.mu.Lock()
	r, ok := c.routes[key]
	c.mu.Unlock()
	if !ok {
		r = c.compute(src, dst)
		c.mu.Lock()
		c.routes[key] = r
		c.misses++
		c.mu.Unlock()
	}

	if !Reachable(r.Distance) {
		return domain.Route{}, fmt.Errorf("route %d -> %d: %w", src, dst, domain.ErrUnreachable)
	}
	return r, nil
}

func (c *RouteCache) compute(src, dst int) domain.Route {
	d, prev := c.g.ShortestPath(src, dst)
	if !Reachable(d) {
		return domain.Route{Distance: Unreachable}
	}
	path, ok := Path(src, dst, prev)
	if !ok {
		return domain.Route{Distance: Unreachable}
	}
	return domain.Route{Distance: d, Path: path}
}

// Computed reports how many shortest-path searches actually ran.
func (c *RouteCache) Computed() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.misses
}
