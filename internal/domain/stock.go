package domain

import "fmt"

// WarehouseStock is one warehouse's stock of one resource.
// Remaining only decreases during a run and never drops below zero.
type WarehouseStock struct {
	Index     int
	Warehouse string
	City      string
	CityID    int
	Resource  string
	Original  int
	Remaining int
}

// Take removes qty units from the remaining stock.
func (w *WarehouseStock) Take(qty int) error {
	if qty <= 0 {
		return fmt.Errorf("take stock: warehouse %q: quantity must be positive (got %d)", w.Warehouse, qty)
	}
	if qty > w.Remaining {
		return fmt.Errorf("take stock: warehouse %q %s: want %d, have %d: %w",
			w.Warehouse, w.Resource, qty, w.Remaining, ErrInsufficientStock)
	}
	w.Remaining -= qty
	return nil
}

// ReliefRequest is the demand of one relief area for one resource.
// Remaining starts at Requested and only decreases, never below zero.
type ReliefRequest struct {
	Index     int
	Area      string
	City      string
	CityID    int
	Resource  string
	Requested int
	Remaining int
	People    int
	Urgency   int
}

// Fulfil records qty units delivered to the request.
func (r *ReliefRequest) Fulfil(qty int) error {
	if qty <= 0 || qty > r.Remaining {
		return fmt.Errorf("fulfil request: area %q %s: quantity %d outside (0, %d]",
			r.Area, r.Resource, qty, r.Remaining)
	}
	r.Remaining -= qty
	return nil
}

// Status classifies the request by its unfulfilled quantity.
func (r *ReliefRequest) Status() Status {
	switch {
	case r.Remaining == 0:
		return StatusMet
	case r.Remaining < r.Requested:
		return StatusPartial
	default:
		return StatusUnmet
	}
}

type Status string

const (
	StatusMet     Status = "Met"
	StatusPartial Status = "Partial"
	StatusUnmet   Status = "Unmet"
)
