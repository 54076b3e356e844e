package dto

import (
	"math"
	"relief-allocation-service/internal/domain"
)

type AllocationResponse struct {
	SourceType string   `json:"sourceType"`
	DestType   string   `json:"destType"`
	Center     string   `json:"center"`
	SourceCity string   `json:"sourceCity"`
	Area       string   `json:"area"`
	DestCity   string   `json:"destCity"`
	Resource   string   `json:"resource"`
	Requested  int      `json:"requested"`
	Allocated  int      `json:"allocated"`
	DistanceKm float64  `json:"distanceKm"`
	Status     string   `json:"status"`
	Path       []string `json:"path"`
}

type SummaryResponse struct {
	TotalRequested      int64            `json:"totalRequested"`
	TotalAllocated      int64            `json:"totalAllocated"`
	CoveragePct         int              `json:"coveragePct"`
	ByResourceRequested map[string]int64 `json:"byResourceRequested"`
	ByResourceAllocated map[string]int64 `json:"byResourceAllocated"`
}

type RequestStatusResponse struct {
	Area      string `json:"area"`
	City      string `json:"city"`
	Resource  string `json:"resource"`
	Requested int    `json:"requested"`
	Allocated int    `json:"allocated"`
	Urgency   int    `json:"urgency"`
	People    int    `json:"people"`
	Status    string `json:"status"`
}

type PlanResponse struct {
	RunID       string                  `json:"runId,omitempty"`
	Allocations []AllocationResponse    `json:"allocations"`
	Summary     SummaryResponse         `json:"summary"`
	Requests    []RequestStatusResponse `json:"requests,omitempty"`
	Dropped     domain.DropCounts       `json:"dropped,omitempty"`
}

// NewPlanResponse maps a run result to the reference output shape.
// Set withDetails to include per-request statuses and dropped-row counts.
func NewPlanResponse(res *domain.Result, withDetails bool) PlanResponse {
	out := PlanResponse{
		Allocations: make([]AllocationResponse, 0, len(res.Allocations)),
		Summary: SummaryResponse{
			TotalRequested:      res.Summary.TotalRequested,
			TotalAllocated:      res.Summary.TotalAllocated,
			CoveragePct:         res.Summary.CoveragePct,
			ByResourceRequested: make(map[string]int64, len(res.Summary.Resources)),
			ByResourceAllocated: make(map[string]int64, len(res.Summary.Resources)),
		},
	}

	for _, a := range res.Allocations {
		out.Allocations = append(out.Allocations, AllocationResponse{
			SourceType: "Warehouse",
			DestType:   "ReliefCenter",
			Center:     a.Warehouse.Warehouse,
			SourceCity: a.Warehouse.City,
			Area:       a.Request.Area,
			DestCity:   a.Request.City,
			Resource:   a.Request.Resource,
			Requested:  a.Request.Requested,
			Allocated:  a.Quantity,
			DistanceKm: math.Round(a.Distance*100) / 100,
			Status:     string(a.Request.Status()),
			Path:       res.PathNames(a),
		})
	}

	for _, agg := range res.Summary.Resources {
		out.Summary.ByResourceRequested[agg.Resource] = agg.Requested
		out.Summary.ByResourceAllocated[agg.Resource] = agg.Allocated
	}

	if withDetails {
		out.RunID = res.RunID
		out.Dropped = res.Summary.Dropped
		out.Requests = make([]RequestStatusResponse, 0, len(res.Requests))
		for _, o := range res.Requests {
			out.Requests = append(out.Requests, RequestStatusResponse{
				Area:      o.Request.Area,
				City:      o.Request.City,
				Resource:  o.Request.Resource,
				Requested: o.Request.Requested,
				Allocated: o.Allocated,
				Urgency:   o.Request.Urgency,
				People:    o.Request.People,
				Status:    string(o.Status),
			})
		}
	}

	return out
}

// Inline inputs accepted by POST /admin/allocate.
type AllocateRequest struct {
	Warehouses []WarehouseInput `json:"warehouses"`
	Relief     []ReliefInput    `json:"relief"`
	Routes     []RouteInput     `json:"routes"`
}

type WarehouseInput struct {
	Warehouse string `json:"warehouse"`
	City      string `json:"city"`
	Resource  string `json:"resource"`
	Quantity  int    `json:"quantity"`
}

type ReliefInput struct {
	Area     string `json:"area"`
	City     string `json:"city"`
	Resource string `json:"resource"`
	Quantity int    `json:"quantity"`
	People   int    `json:"people"`
	Urgency  int    `json:"urgency"`
}

type RouteInput struct {
	From     string  `json:"from"`
	To       string  `json:"to"`
	Distance float64 `json:"distance"`
}

// Rows maps the payload onto input rows as sent. Normalization and dropping of
// invalid rows happen when the rows are loaded, like file rows.
func (r AllocateRequest) Rows() domain.Inputs {
	var in domain.Inputs
	for _, w := range r.Warehouses {
		in.Warehouses = append(in.Warehouses, domain.WarehouseRow{
			Warehouse: w.Warehouse,
			City:      w.City,
			Resource:  w.Resource,
			Quantity:  w.Quantity,
		})
	}
	for _, rf := range r.Relief {
		in.Relief = append(in.Relief, domain.ReliefRow{
			Area:      rf.Area,
			City:      rf.City,
			Resource:  rf.Resource,
			Requested: rf.Quantity,
			People:    rf.People,
			Urgency:   rf.Urgency,
		})
	}
	for _, rt := range r.Routes {
		in.Routes = append(in.Routes, domain.RouteRow{From: rt.From, To: rt.To, Distance: rt.Distance})
	}
	return in
}
