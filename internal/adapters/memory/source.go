package memory

import (
	"context"
	"fmt"
	"relief-allocation-service/internal/domain"
	"relief-allocation-service/internal/platform/obs"
)

// Source serves rows already held in memory, e.g. decoded from a request body.
// Rows go through the same normalization as file rows; invalid ones are
// dropped and counted when loaded.
type Source struct {
	Inputs domain.Inputs
}

func NewSource(in domain.Inputs) *Source {
	return &Source{Inputs: in}
}

func (s *Source) LoadWarehouses(ctx context.Context) ([]domain.WarehouseRow, int, error) {
	return normalizeAll(ctx, "warehouses", s.Inputs.Warehouses, domain.WarehouseRow.Normalize)
}

func (s *Source) LoadRelief(ctx context.Context) ([]domain.ReliefRow, int, error) {
	return normalizeAll(ctx, "relief", s.Inputs.Relief, domain.ReliefRow.Normalize)
}

func (s *Source) LoadRoutes(ctx context.Context) ([]domain.RouteRow, int, error) {
	return normalizeAll(ctx, "routes", s.Inputs.Routes, domain.RouteRow.Normalize)
}

func normalizeAll[T any](ctx context.Context, kind string, rows []T, normalize func(T) (T, error)) ([]T, int, error) {
	out := make([]T, 0, len(rows))
	dropped := 0
	for i, row := range rows {
		row, err := normalize(row)
		if err != nil {
			dropped++
			obs.DropRow(ctx, kind, domain.DropMalformed, fmt.Errorf("item %d: %w", i, err))
			continue
		}
		out = append(out, row)
	}
	return out, dropped, nil
}
