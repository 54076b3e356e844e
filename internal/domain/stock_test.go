package domain

import (
	"errors"
	"testing"
)

func TestReliefRequestStatus(t *testing.T) {
	r := &ReliefRequest{Area: "North", Resource: "water", Requested: 10, Remaining: 10}
	if got := r.Status(); got != StatusUnmet {
		t.Fatalf("status = %q, want %q", got, StatusUnmet)
	}

	if err := r.Fulfil(4); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := r.Status(); got != StatusPartial {
		t.Fatalf("status = %q, want %q", got, StatusPartial)
	}

	if err := r.Fulfil(6); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := r.Status(); got != StatusMet {
		t.Fatalf("status = %q, want %q", got, StatusMet)
	}

	if err := r.Fulfil(1); err == nil {
		t.Fatalf("expected error fulfilling a met request")
	}
}

func TestZeroRequestIsMet(t *testing.T) {
	r := &ReliefRequest{Requested: 0, Remaining: 0}
	if got := r.Status(); got != StatusMet {
		t.Fatalf("status = %q, want %q", got, StatusMet)
	}
}

func TestWarehouseStockTake(t *testing.T) {
	w := &WarehouseStock{Warehouse: "W1", Resource: "food", Original: 5, Remaining: 5}

	if err := w.Take(3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w.Remaining != 2 {
		t.Fatalf("remaining = %d, want 2", w.Remaining)
	}

	err := w.Take(3)
	if !errors.Is(err, ErrInsufficientStock) {
		t.Fatalf("err = %v, want ErrInsufficientStock", err)
	}
	if w.Remaining != 2 {
		t.Fatalf("remaining changed on failed take: %d", w.Remaining)
	}

	if err := w.Take(0); err == nil {
		t.Fatalf("expected error for zero take")
	}
}

func TestClampUrgency(t *testing.T) {
	for in, want := range map[int]int{-5: 0, 0: 0, 42: 42, 100: 100, 101: 100} {
		if got := ClampUrgency(in); got != want {
			t.Errorf("ClampUrgency(%d) = %d, want %d", in, got, want)
		}
	}
}

func TestRouteRowNormalize(t *testing.T) {
	if _, err := (RouteRow{From: "A", To: "B", Distance: -1}).Normalize(); !errors.Is(err, ErrMalformedRow) {
		t.Fatalf("negative distance: err = %v, want ErrMalformedRow", err)
	}
	r, err := RouteRow{From: " A ", To: "B", Distance: 3}.Normalize()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.From != "A" {
		t.Fatalf("from = %q, want trimmed", r.From)
	}
}
