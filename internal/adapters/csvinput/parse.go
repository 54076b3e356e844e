package csvinput

import (
	"fmt"
	"relief-allocation-service/internal/domain"
	"strconv"
	"strings"
)

func ParseWarehouse(rec []string) (domain.WarehouseRow, error) {
	if len(rec) < 4 {
		return domain.WarehouseRow{}, fmt.Errorf("warehouse: want 4 fields, got %d: %w", len(rec), domain.ErrMalformedRow)
	}

	qty, err := atoi(field(rec, 3))
	if err != nil {
		return domain.WarehouseRow{}, fmt.Errorf("warehouse %q: quantity: %w", field(rec, 0), err)
	}

	return domain.WarehouseRow{
		Warehouse: rec[0],
		City:      rec[1],
		Resource:  rec[2],
		Quantity:  qty,
	}.Normalize()
}

func ParseRelief(rec []string) (domain.ReliefRow, error) {
	if len(rec) < 4 {
		return domain.ReliefRow{}, fmt.Errorf("relief: want at least 4 fields, got %d: %w", len(rec), domain.ErrMalformedRow)
	}

	requested, err := atoi(field(rec, 3))
	if err != nil {
		return domain.ReliefRow{}, fmt.Errorf("relief %q: quantity: %w", field(rec, 0), err)
	}
	// People and urgency are optional and default to 0.
	people, err := optionalInt(rec, 4)
	if err != nil {
		return domain.ReliefRow{}, fmt.Errorf("relief %q: people: %w", field(rec, 0), err)
	}
	urgency, err := optionalInt(rec, 5)
	if err != nil {
		return domain.ReliefRow{}, fmt.Errorf("relief %q: urgency: %w", field(rec, 0), err)
	}

	return domain.ReliefRow{
		Area:      rec[0],
		City:      rec[1],
		Resource:  rec[2],
		Requested: requested,
		People:    people,
		Urgency:   urgency,
	}.Normalize()
}

func ParseRoute(rec []string) (domain.RouteRow, error) {
	if len(rec) < 3 {
		return domain.RouteRow{}, fmt.Errorf("route: want 3 fields, got %d: %w", len(rec), domain.ErrMalformedRow)
	}

	d, err := strconv.ParseFloat(field(rec, 2), 64)
	if err != nil {
		return domain.RouteRow{}, fmt.Errorf("route %q-%q: distance %q: %w", field(rec, 0), field(rec, 1), field(rec, 2), domain.ErrMalformedRow)
	}

	return domain.RouteRow{From: rec[0], To: rec[1], Distance: d}.Normalize()
}

func field(rec []string, i int) string {
	return strings.TrimSpace(rec[i])
}

func atoi(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%q is not an integer: %w", s, domain.ErrMalformedRow)
	}
	return n, nil
}

func optionalInt(rec []string, i int) (int, error) {
	if i >= len(rec) || field(rec, i) == "" {
		return 0, nil
	}
	return atoi(field(rec, i))
}
