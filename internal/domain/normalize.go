package domain

import (
	"fmt"
	"math"
	"strings"
)

const (
	MinUrgency = 0
	MaxUrgency = 100
)

// ClampUrgency forces u into [MinUrgency, MaxUrgency].
func ClampUrgency(u int) int {
	return min(max(u, MinUrgency), MaxUrgency)
}

// Normalize trims names and clamps the quantity at zero.
// Rows with an empty name, city or resource are malformed.
func (r WarehouseRow) Normalize() (WarehouseRow, error) {
	r.Warehouse = strings.TrimSpace(r.Warehouse)
	r.City = strings.TrimSpace(r.City)
	r.Resource = strings.TrimSpace(r.Resource)
	if r.Warehouse == "" || r.City == "" || r.Resource == "" {
		return WarehouseRow{}, fmt.Errorf("warehouse: empty name, city or resource: %w", ErrMalformedRow)
	}
	r.Quantity = max(r.Quantity, 0)
	return r, nil
}

// Normalize trims names, clamps quantities at zero and urgency to [0, 100].
func (r ReliefRow) Normalize() (ReliefRow, error) {
	r.Area = strings.TrimSpace(r.Area)
	r.City = strings.TrimSpace(r.City)
	r.Resource = strings.TrimSpace(r.Resource)
	if r.Area == "" || r.City == "" || r.Resource == "" {
		return ReliefRow{}, fmt.Errorf("relief: empty area, city or resource: %w", ErrMalformedRow)
	}
	r.Requested = max(r.Requested, 0)
	r.People = max(r.People, 0)
	r.Urgency = ClampUrgency(r.Urgency)
	return r, nil
}

// Normalize trims endpoints. Negative or non-finite distances are malformed.
func (r RouteRow) Normalize() (RouteRow, error) {
	r.From = strings.TrimSpace(r.From)
	r.To = strings.TrimSpace(r.To)
	if r.From == "" || r.To == "" {
		return RouteRow{}, fmt.Errorf("route: empty endpoint: %w", ErrMalformedRow)
	}
	if math.IsNaN(r.Distance) || math.IsInf(r.Distance, 0) || r.Distance < 0 {
		return RouteRow{}, fmt.Errorf("route %q-%q: invalid distance %v: %w", r.From, r.To, r.Distance, ErrMalformedRow)
	}
	return r, nil
}
