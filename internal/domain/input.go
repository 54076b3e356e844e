package domain

// Warehouse stock row as handed over by an input source.
// Names are trimmed and non-empty, Quantity is non-negative.
type WarehouseRow struct {
	Warehouse string
	City      string
	Resource  string
	Quantity  int
}

// Relief request row as handed over by an input source.
// Urgency is already clamped to [0, 100].
type ReliefRow struct {
	Area      string
	City      string
	Resource  string
	Requested int
	People    int
	Urgency   int
}

// Undirected route between two cities.
type RouteRow struct {
	From     string
	To       string
	Distance float64
}

// Inputs bundles the three row sets of one allocation run.
type Inputs struct {
	Warehouses []WarehouseRow
	Relief     []ReliefRow
	Routes     []RouteRow

	// Dropped counts rows the source rejected while loading.
	Dropped DropCounts
}

// Reasons an input row is dropped before allocation.
const (
	DropMalformed = "malformed"
	DropCapacity  = "capacity"
)

// DropCounts counts dropped input rows by kind (warehouses, relief, routes)
// and then by reason.
type DropCounts map[string]map[string]int

// Add counts n more rows of kind dropped for reason. Non-positive n is a no-op.
func (d DropCounts) Add(kind, reason string, n int) {
	if n <= 0 {
		return
	}
	if d[kind] == nil {
		d[kind] = make(map[string]int)
	}
	d[kind][reason] += n
}

// Merge adds every count of other to d.
func (d DropCounts) Merge(other DropCounts) {
	for kind, reasons := range other {
		for reason, n := range reasons {
			d.Add(kind, reason, n)
		}
	}
}

// Total is the number of dropped rows across kinds and reasons.
func (d DropCounts) Total() int {
	total := 0
	for _, reasons := range d {
		for _, n := range reasons {
			total += n
		}
	}
	return total
}
