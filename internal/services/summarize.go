package services

import (
	"math"
	"relief-allocation-service/internal/domain"
	"relief-allocation-service/internal/inventory"
)

// Summarize derives per-request outcomes and global coverage from the final
// store state. Outcomes follow the order of requests.
func Summarize(
	requests []*domain.ReliefRequest,
	store *inventory.Store,
	allocations []domain.Allocation,
) ([]domain.RequestOutcome, domain.Summary) {
	allocated := make(map[*domain.ReliefRequest]int, len(requests))
	for _, a := range allocations {
		allocated[a.Request] += a.Quantity
	}

	outcomes := make([]domain.RequestOutcome, 0, len(requests))
	var totalRequested int64
	for _, r := range requests {
		totalRequested += int64(r.Requested)
		outcomes = append(outcomes, domain.RequestOutcome{
			Request:   r,
			Allocated: allocated[r],
			Status:    r.Status(),
		})
	}

	resources := store.Aggregates()
	var totalAllocated int64
	for _, agg := range resources {
		totalAllocated += agg.Allocated
	}

	return outcomes, domain.Summary{
		TotalRequested: totalRequested,
		TotalAllocated: totalAllocated,
		CoveragePct:    CoveragePct(totalAllocated, totalRequested),
		Resources:      resources,
	}
}

// CoveragePct returns allocated/requested as a whole percentage, halves to even,
// and 0 when nothing was requested.
func CoveragePct(allocated, requested int64) int {
	if requested <= 0 {
		return 0
	}
	return int(math.RoundToEven(float64(allocated) * 100 / float64(requested)))
}
