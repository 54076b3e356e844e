package services

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"log"
	"relief-allocation-service/internal/domain"
	"relief-allocation-service/internal/inventory"
	"relief-allocation-service/internal/platform/obs"
	"relief-allocation-service/internal/ports"
	"slices"

	"golang.org/x/sync/errgroup"
)

// GreedyAllocator matches supply to demand with a single-pass greedy heuristic.
//
// Requests are served strictly in the order given. Each request draws from the
// nearest reachable warehouses holding its resource until it is met or the
// candidates run dry. Stock committed to an earlier request is never reclaimed,
// so the plan is not globally optimal (no backtracking, no flow rebalancing).
type GreedyAllocator struct {
	// Workers bounds concurrent distance queries per request. Values below 2
	// query sequentially. Commits are always sequential.
	Workers int
}

func NewGreedyAllocator(workers int) *GreedyAllocator {
	return &GreedyAllocator{Workers: workers}
}

type candidate struct {
	stock *domain.WarehouseStock
	route domain.Route
}

func (a *GreedyAllocator) Allocate(
	ctx context.Context,
	requests []*domain.ReliefRequest,
	store *inventory.Store,
	routes ports.RouteFinder,
) ([]domain.Allocation, error) {
	if store == nil || routes == nil {
		return nil, errors.New("allocate: store and route finder must be non-nil")
	}

	var allocations []domain.Allocation
	for _, req := range requests {
		if req.Remaining <= 0 {
			continue
		}

		cands, err := a.reachableCandidates(ctx, req, store.Candidates(req.Resource), routes)
		if err != nil {
			return nil, fmt.Errorf("allocate: area %q: %w", req.Area, err)
		}
		if len(cands) == 0 {
			log.Printf("run_id=%s area=%q resource=%s no reachable stock", obs.RunID(ctx), req.Area, req.Resource)
			continue
		}

		// Stable: equally distant warehouses are tried in input order.
		slices.SortStableFunc(cands, func(x, y candidate) int {
			return cmp.Compare(x.route.Distance, y.route.Distance)
		})

		for _, c := range cands {
			if req.Remaining <= 0 {
				break
			}

			take := min(c.stock.Remaining, req.Remaining)
			if take <= 0 {
				continue
			}

			if err := store.Commit(c.stock, req, take); err != nil {
				return nil, fmt.Errorf("allocate: area %q: %w", req.Area, err)
			}
			allocations = append(allocations, domain.Allocation{
				Warehouse: c.stock,
				Request:   req,
				Quantity:  take,
				Distance:  c.route.Distance,
				Path:      c.route.Path,
			})
		}
	}

	return allocations, nil
}

// reachableCandidates resolves a route from every warehouse to the request and
// drops the unreachable ones, keeping the input order of the rest.
func (a *GreedyAllocator) reachableCandidates(
	ctx context.Context,
	req *domain.ReliefRequest,
	stock []*domain.WarehouseStock,
	routes ports.RouteFinder,
) ([]candidate, error) {
	found := make([]candidate, len(stock))
	ok := make([]bool, len(stock))

	query := func(i int) error {
		r, err := routes.Route(stock[i].CityID, req.CityID)
		if errors.Is(err, domain.ErrUnreachable) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("route from %q: %w", stock[i].Warehouse, err)
		}
		found[i] = candidate{stock: stock[i], route: r}
		ok[i] = true
		return nil
	}

	if a.Workers < 2 || len(stock) < 2 {
		for i := range stock {
			if err := query(i); err != nil {
				return nil, err
			}
		}
	} else {
		g, _ := errgroup.WithContext(ctx)
		g.SetLimit(a.Workers)
		for i := range stock {
			g.Go(func() error { return query(i) })
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	}

	out := found[:0]
	for i, c := range found {
		if ok[i] {
			out = append(out, c)
		}
	}
	return out, nil
}
