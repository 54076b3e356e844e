package services

import (
	"context"
	"fmt"
	"log"
	"relief-allocation-service/internal/domain"
	"relief-allocation-service/internal/network"
	"relief-allocation-service/internal/platform/obs"
	"relief-allocation-service/internal/ports"

	"github.com/google/uuid"
)

type PlanReliefRequest struct {
	Limits Limits
	// Strategy defaults to a sequential GreedyAllocator.
	Strategy ports.AllocationStrategy
}

// PlanRelief loads the inputs of one run and computes its allocation plan.
// Only an unreadable source fails the run; everything else surfaces as status
// and coverage in the result.
func PlanRelief(
	ctx context.Context,
	req PlanReliefRequest,
	source ports.InputSource,
) (_ *domain.Result, err error) {
	runID := uuid.New().String()
	ctx = obs.WithRunID(ctx, runID)
	defer obs.Time(ctx, "plan_relief")(&err)
	defer func() {
		outcome := "ok"
		if err != nil {
			outcome = "error"
		}
		obs.AllocationRuns.WithLabelValues(outcome).Inc()
	}()

	inputs, err := LoadInputs(ctx, source)
	if err != nil {
		return nil, fmt.Errorf("plan relief: %w", err)
	}

	return Allocate(ctx, runID, req, inputs)
}

// LoadInputs reads all three row sets, warehouses first.
func LoadInputs(ctx context.Context, source ports.InputSource) (_ domain.Inputs, err error) {
	defer obs.Time(ctx, "load")(&err)

	in := domain.Inputs{Dropped: domain.DropCounts{}}
	var dropped int
	if in.Warehouses, dropped, err = source.LoadWarehouses(ctx); err != nil {
		return domain.Inputs{}, fmt.Errorf("load warehouses: %w", err)
	}
	in.Dropped.Add("warehouses", domain.DropMalformed, dropped)
	if in.Relief, dropped, err = source.LoadRelief(ctx); err != nil {
		return domain.Inputs{}, fmt.Errorf("load relief: %w", err)
	}
	in.Dropped.Add("relief", domain.DropMalformed, dropped)
	if in.Routes, dropped, err = source.LoadRoutes(ctx); err != nil {
		return domain.Inputs{}, fmt.Errorf("load routes: %w", err)
	}
	in.Dropped.Add("routes", domain.DropMalformed, dropped)
	return in, nil
}

// Allocate runs the core over already loaded inputs.
func Allocate(ctx context.Context, runID string, req PlanReliefRequest, inputs domain.Inputs) (*domain.Result, error) {
	if obs.RunID(ctx) == "" {
		ctx = obs.WithRunID(ctx, runID)
	}

	run := NewRun(runID, req.Limits)
	if err := run.Ingest(ctx, inputs); err != nil {
		return nil, fmt.Errorf("plan relief: %w", err)
	}

	strategy := req.Strategy
	if strategy == nil {
		strategy = NewGreedyAllocator(1)
	}

	ordered := PrioritizeRequests(run.Store.Requests)
	routes := network.NewRouteCache(run.Graph)

	allocations, err := allocate(ctx, strategy, ordered, run, routes)
	if err != nil {
		return nil, fmt.Errorf("plan relief: %w", err)
	}

	outcomes, summary := Summarize(ordered, run.Store, allocations)
	summary.Dropped = run.Dropped

	for _, agg := range summary.Resources {
		obs.UnitsRequested.WithLabelValues(agg.Resource).Add(float64(agg.Requested))
		obs.UnitsAllocated.WithLabelValues(agg.Resource).Add(float64(agg.Allocated))
	}
	obs.CoveragePct.Set(float64(summary.CoveragePct))

	log.Printf(
		"run_id=%s cities=%d edges=%d warehouses=%d requests=%d allocations=%d searches=%d requested=%d allocated=%d coverage=%d%%",
		runID, run.Cities.Len(), run.Graph.Edges(), len(run.Store.Warehouses), len(run.Store.Requests),
		len(allocations), routes.Computed(), summary.TotalRequested, summary.TotalAllocated, summary.CoveragePct,
	)

	return &domain.Result{
		RunID:       runID,
		Allocations: allocations,
		Requests:    outcomes,
		Summary:     summary,
		CityNames:   run.Cities.Names(),
		Edges:       run.Graph.Edges(),
	}, nil
}

func allocate(
	ctx context.Context,
	strategy ports.AllocationStrategy,
	ordered []*domain.ReliefRequest,
	run *Run,
	routes ports.RouteFinder,
) (_ []domain.Allocation, err error) {
	defer obs.Time(ctx, "allocate")(&err)
	return strategy.Allocate(ctx, ordered, run.Store, routes)
}
