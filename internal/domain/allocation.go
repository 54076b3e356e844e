package domain

// Route is a shortest path between two cities.
// Path holds city ids from origin to destination inclusive.
type Route struct {
	Distance float64
	Path     []int
}

// Allocation is one committed shipment. It is never mutated after creation.
type Allocation struct {
	Warehouse *WarehouseStock
	Request   *ReliefRequest
	Quantity  int
	Distance  float64
	Path      []int
}

// ResourceAggregate accumulates requested and allocated units for one resource name.
type ResourceAggregate struct {
	Resource  string
	Requested int64
	Allocated int64
}

// RequestOutcome is the final state of one relief request.
type RequestOutcome struct {
	Request   *ReliefRequest
	Allocated int
	Status    Status
}

// Summary holds the global coverage figures of a run.
type Summary struct {
	TotalRequested int64
	TotalAllocated int64
	CoveragePct    int
	Resources      []ResourceAggregate
	Dropped        DropCounts
}

// Result is everything a formatter needs to report one allocation run.
type Result struct {
	RunID       string
	Allocations []Allocation
	Requests    []RequestOutcome
	Summary     Summary
	// Index: city id. Used to render paths.
	CityNames []string
	Edges     int
}

// PathNames resolves an allocation's path to city names.
func (r *Result) PathNames(a Allocation) []string {
	names := make([]string, 0, len(a.Path))
	for _, id := range a.Path {
		names = append(names, r.CityNames[id])
	}
	return names
}
