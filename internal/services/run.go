package services

import (
	"context"
	"errors"
	"fmt"
	"relief-allocation-service/internal/domain"
	"relief-allocation-service/internal/inventory"
	"relief-allocation-service/internal/network"
	"relief-allocation-service/internal/platform/obs"
)

// Limits bounds one allocation run. A zero field means unbounded.
type Limits struct {
	Cities     int
	Warehouses int
	Requests   int
	Routes     int
	Resources  int
}

// DefaultLimits mirrors the bounds the relief planner has always shipped with.
func DefaultLimits() Limits {
	return Limits{
		Cities:     256,
		Warehouses: 512,
		Requests:   512,
		Routes:     1024,
		Resources:  64,
	}
}

// Run owns all state of a single allocation: city registry, transport graph,
// supply/demand store. Nothing is shared between runs.
type Run struct {
	ID      string
	Cities  *network.Registry
	Graph   *network.Graph
	Store   *inventory.Store
	Dropped domain.DropCounts

	edges  []network.Edge
	limits Limits
}

func NewRun(id string, limits Limits) *Run {
	return &Run{
		ID:     id,
		Cities: network.NewRegistry(limits.Cities),
		Store: inventory.NewStore(inventory.Limits{
			Warehouses: limits.Warehouses,
			Requests:   limits.Requests,
			Resources:  limits.Resources,
		}),
		Dropped: domain.DropCounts{},
		limits:  limits,
	}
}

// Ingest accepts rows in load order (warehouses, relief, routes) and builds the
// graph. Rows hitting a capacity bound are dropped and counted next to the
// drops the source reported; any other failure aborts.
func (r *Run) Ingest(ctx context.Context, in domain.Inputs) (err error) {
	defer obs.Time(ctx, "run.ingest")(&err)

	r.Dropped.Merge(in.Dropped)

	for _, row := range in.Warehouses {
		if err := r.addWarehouse(row); err != nil {
			if err := r.drop(ctx, "warehouses", err); err != nil {
				return err
			}
		}
	}
	for _, row := range in.Relief {
		if err := r.addRequest(row); err != nil {
			if err := r.drop(ctx, "relief", err); err != nil {
				return err
			}
		}
	}
	for _, row := range in.Routes {
		if err := r.addRoute(row); err != nil {
			if err := r.drop(ctx, "routes", err); err != nil {
				return err
			}
		}
	}

	r.Graph = network.BuildGraph(r.Cities.Len(), r.edges)
	return nil
}

// Store bounds are checked before interning so a rejected row never takes a city id.
func (r *Run) addWarehouse(row domain.WarehouseRow) error {
	if err := r.Store.CheckWarehouse(row); err != nil {
		return err
	}
	city, err := r.Cities.Intern(row.City)
	if err != nil {
		return fmt.Errorf("warehouse %q: %w", row.Warehouse, err)
	}
	_, err = r.Store.AddWarehouse(row, city)
	return err
}

func (r *Run) addRequest(row domain.ReliefRow) error {
	if err := r.Store.CheckRequest(row); err != nil {
		return err
	}
	city, err := r.Cities.Intern(row.City)
	if err != nil {
		return fmt.Errorf("relief %q: %w", row.Area, err)
	}
	_, err = r.Store.AddRequest(row, city)
	return err
}

func (r *Run) addRoute(row domain.RouteRow) error {
	if r.limits.Routes > 0 && len(r.edges) >= r.limits.Routes {
		return fmt.Errorf("route %q-%q: limit %d: %w", row.From, row.To, r.limits.Routes, domain.ErrCapacityExceeded)
	}
	from, err := r.Cities.Intern(row.From)
	if err != nil {
		return fmt.Errorf("route %q-%q: %w", row.From, row.To, err)
	}
	to, err := r.Cities.Intern(row.To)
	if err != nil {
		return fmt.Errorf("route %q-%q: %w", row.From, row.To, err)
	}
	r.edges = append(r.edges, network.Edge{From: from, To: to, Distance: row.Distance})
	return nil
}

func (r *Run) drop(ctx context.Context, kind string, err error) error {
	if !errors.Is(err, domain.ErrCapacityExceeded) {
		return fmt.Errorf("ingest %s: %w", kind, err)
	}
	r.Dropped.Add(kind, domain.DropCapacity, 1)
	obs.DropRow(ctx, kind, domain.DropCapacity, err)
	return nil
}
