package ports

import (
	"context"
	"relief-allocation-service/internal/domain"
	"relief-allocation-service/internal/inventory"
)

// Contract for finding the shortest route between two interned cities.
type RouteFinder interface {
	// Return the route, or an error wrapping domain.ErrUnreachable.
	Route(src, dst int) (domain.Route, error)
}

// Contract for matching supply to demand.
// Requests arrive already in priority order. The strategy commits shipments
// through the store and returns them in commit order.
type AllocationStrategy interface {
	Allocate(
		ctx context.Context,
		requests []*domain.ReliefRequest,
		store *inventory.Store,
		routes RouteFinder,
	) ([]domain.Allocation, error)
}
