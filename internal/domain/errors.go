package domain

import "errors"

var (
	// ErrInputUnavailable means an input could not be opened or read. It aborts the run.
	ErrInputUnavailable = errors.New("input unavailable")

	// ErrMalformedRow classifies rows a loader drops before they reach the core.
	ErrMalformedRow = errors.New("malformed row")

	// ErrCapacityExceeded is returned when a configured registry or store bound is reached.
	ErrCapacityExceeded = errors.New("capacity exceeded")

	// ErrUnreachable means no path exists between two cities.
	ErrUnreachable = errors.New("destination unreachable")

	// ErrInsufficientStock is returned when a shipment would take more than a warehouse holds.
	ErrInsufficientStock = errors.New("insufficient stock")
)
