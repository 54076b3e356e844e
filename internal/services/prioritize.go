package services

import (
	"cmp"
	"relief-allocation-service/internal/domain"
	"slices"
)

// PrioritizeRequests returns the requests ordered for allocation:
// urgency descending, then people descending. The sort is stable, so requests
// with equal keys keep their input order. The order is computed once and never
// revisited after partial fulfillment.
func PrioritizeRequests(requests []*domain.ReliefRequest) []*domain.ReliefRequest {
	ordered := slices.Clone(requests)
	slices.SortStableFunc(ordered, func(a, b *domain.ReliefRequest) int {
		if c := cmp.Compare(b.Urgency, a.Urgency); c != 0 {
			return c
		}
		return cmp.Compare(b.People, a.People)
	})
	return ordered
}
