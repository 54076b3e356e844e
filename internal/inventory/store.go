// Package inventory holds the mutable supply and demand of one allocation run.
package inventory

import (
	"fmt"

	"relief-allocation-service/internal/domain"
)

// Limits bounds the store. A zero field means unbounded.
type Limits struct {
	Warehouses int
	Requests   int
	Resources  int
}

// Store owns warehouse stock, relief requests and per-resource aggregates.
// Only the allocation engine mutates quantities; everything else reads.
type Store struct {
	limits Limits

	Warehouses []*domain.WarehouseStock
	Requests   []*domain.ReliefRequest

	resources map[string]*domain.ResourceAggregate
	order     []string
}

func NewStore(limits Limits) *Store {
	return &Store{
		limits:    limits,
		resources: make(map[string]*domain.ResourceAggregate),
	}
}

// CheckWarehouse reports whether AddWarehouse would accept row, without
// changing the store.
func (s *Store) CheckWarehouse(row domain.WarehouseRow) error {
	if s.limits.Warehouses > 0 && len(s.Warehouses) >= s.limits.Warehouses {
		return fmt.Errorf("add warehouse %q: limit %d: %w", row.Warehouse, s.limits.Warehouses, domain.ErrCapacityExceeded)
	}
	return nil
}

// CheckRequest reports whether AddRequest would accept row, without changing
// the store.
func (s *Store) CheckRequest(row domain.ReliefRow) error {
	if s.limits.Requests > 0 && len(s.Requests) >= s.limits.Requests {
		return fmt.Errorf("add request %q: limit %d: %w", row.Area, s.limits.Requests, domain.ErrCapacityExceeded)
	}
	if _, ok := s.resources[row.Resource]; !ok && s.limits.Resources > 0 && len(s.order) >= s.limits.Resources {
		return fmt.Errorf("add request %q: resource %q: limit %d: %w", row.Area, row.Resource, s.limits.Resources, domain.ErrCapacityExceeded)
	}
	return nil
}

// AddWarehouse records a stock row located in cityID.
func (s *Store) AddWarehouse(row domain.WarehouseRow, cityID int) (*domain.WarehouseStock, error) {
	if err := s.CheckWarehouse(row); err != nil {
		return nil, err
	}

	w := &domain.WarehouseStock{
		Index:     len(s.Warehouses),
		Warehouse: row.Warehouse,
		City:      row.City,
		CityID:    cityID,
		Resource:  row.Resource,
		Original:  row.Quantity,
		Remaining: row.Quantity,
	}
	s.Warehouses = append(s.Warehouses, w)
	return w, nil
}

// AddRequest records a relief row located in cityID and counts its quantity
// towards the resource's requested total.
func (s *Store) AddRequest(row domain.ReliefRow, cityID int) (*domain.ReliefRequest, error) {
	if err := s.CheckRequest(row); err != nil {
		return nil, err
	}
	agg, err := s.aggregate(row.Resource)
	if err != nil {
		return nil, fmt.Errorf("add request %q: %w", row.Area, err)
	}

	r := &domain.ReliefRequest{
		Index:     len(s.Requests),
		Area:      row.Area,
		City:      row.City,
		CityID:    cityID,
		Resource:  row.Resource,
		Requested: row.Requested,
		Remaining: row.Requested,
		People:    row.People,
		Urgency:   row.Urgency,
	}
	s.Requests = append(s.Requests, r)
	agg.Requested += int64(row.Requested)
	return r, nil
}

func (s *Store) aggregate(resource string) (*domain.ResourceAggregate, error) {
	if agg, ok := s.resources[resource]; ok {
		return agg, nil
	}
	if s.limits.Resources > 0 && len(s.order) >= s.limits.Resources {
		return nil, fmt.Errorf("resource %q: limit %d: %w", resource, s.limits.Resources, domain.ErrCapacityExceeded)
	}

	agg := &domain.ResourceAggregate{Resource: resource}
	s.resources[resource] = agg
	s.order = append(s.order, resource)
	return agg, nil
}

// Candidates returns warehouses holding resource with stock left, in insertion order.
func (s *Store) Candidates(resource string) []*domain.WarehouseStock {
	var out []*domain.WarehouseStock
	for _, w := range s.Warehouses {
		if w.Resource == resource && w.Remaining > 0 {
			out = append(out, w)
		}
	}
	return out
}

// Commit moves qty units from w to r and counts them as allocated.
func (s *Store) Commit(w *domain.WarehouseStock, r *domain.ReliefRequest, qty int) error {
	if w.Resource != r.Resource {
		return fmt.Errorf("commit: warehouse %q holds %q, request %q needs %q", w.Warehouse, w.Resource, r.Area, r.Resource)
	}
	agg, ok := s.resources[r.Resource]
	if !ok {
		return fmt.Errorf("commit: no aggregate for resource %q", r.Resource)
	}
	if qty > r.Remaining {
		return fmt.Errorf("commit: request %q needs %d, got %d", r.Area, r.Remaining, qty)
	}
	if err := w.Take(qty); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	if err := r.Fulfil(qty); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	agg.Allocated += int64(qty)
	return nil
}

// Aggregates returns a snapshot of the per-resource counters in first-seen order.
func (s *Store) Aggregates() []domain.ResourceAggregate {
	out := make([]domain.ResourceAggregate, 0, len(s.order))
	for _, name := range s.order {
		out = append(out, *s.resources[name])
	}
	return out
}
