package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"relief-allocation-service/internal/adapters/memory"
	"relief-allocation-service/internal/api/dto"
	"relief-allocation-service/internal/domain"
	"relief-allocation-service/internal/services"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingSource struct{}

func (failingSource) LoadWarehouses(ctx context.Context) ([]domain.WarehouseRow, int, error) {
	return nil, 0, domain.ErrInputUnavailable
}

func (failingSource) LoadRelief(ctx context.Context) ([]domain.ReliefRow, int, error) {
	return nil, 0, nil
}

func (failingSource) LoadRoutes(ctx context.Context) ([]domain.RouteRow, int, error) {
	return nil, 0, nil
}

func configuredSource() *memory.Source {
	return memory.NewSource(domain.Inputs{
		Warehouses: []domain.WarehouseRow{{Warehouse: "W1", City: "A", Resource: "water", Quantity: 100}},
		Relief:     []domain.ReliefRow{{Area: "R1", City: "B", Resource: "water", Requested: 30, People: 50, Urgency: 5}},
		Routes:     []domain.RouteRow{{From: "A", To: "B", Distance: 10}},
	})
}

func newHandler(src *memory.Source) *AllocationHandler {
	return NewAllocationHandler(src, services.PlanReliefRequest{Limits: services.DefaultLimits()})
}

func decodePlan(t *testing.T, rec *httptest.ResponseRecorder) dto.PlanResponse {
	t.Helper()
	var out dto.PlanResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestAllocateFromConfiguredSource(t *testing.T) {
	h := newHandler(configuredSource())

	rec := httptest.NewRecorder()
	h.Allocate(rec, httptest.NewRequest(http.MethodPost, "/admin/allocate", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	out := decodePlan(t, rec)
	assert.NotEmpty(t, out.RunID)
	require.Len(t, out.Allocations, 1)
	a := out.Allocations[0]
	assert.Equal(t, "W1", a.Center)
	assert.Equal(t, "R1", a.Area)
	assert.Equal(t, 30, a.Allocated)
	assert.Equal(t, 10.0, a.DistanceKm)
	assert.Equal(t, "Met", a.Status)
	assert.Equal(t, []string{"A", "B"}, a.Path)
	assert.Equal(t, 100, out.Summary.CoveragePct)
	require.Len(t, out.Requests, 1)
}

func TestAllocateFromInlineBody(t *testing.T) {
	h := newHandler(configuredSource())

	body := `{
		"warehouses": [{"warehouse": "Depot", "city": "X", "resource": "food", "quantity": 5}],
		"relief": [{"area": "Camp", "city": "Y", "resource": "food", "quantity": 8, "urgency": 9}],
		"routes": [{"from": "X", "to": "Y", "distance": 2.345}]
	}`
	rec := httptest.NewRecorder()
	h.Allocate(rec, httptest.NewRequest(http.MethodPost, "/admin/allocate?pretty=1", strings.NewReader(body)))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "\n  \"allocations\"")

	out := decodePlan(t, rec)
	require.Len(t, out.Allocations, 1)
	assert.Equal(t, "Depot", out.Allocations[0].Center)
	assert.Equal(t, 5, out.Allocations[0].Allocated)
	assert.Equal(t, 2.35, out.Allocations[0].DistanceKm)
	assert.Equal(t, "Partial", out.Allocations[0].Status)
	assert.Equal(t, 62, out.Summary.CoveragePct)
}

func TestAllocateInlineBodyReportsDroppedRows(t *testing.T) {
	h := newHandler(configuredSource())

	body := `{
		"warehouses": [{"warehouse": "Depot", "city": "X", "resource": "food", "quantity": 5},
		               {"warehouse": "", "city": "X", "resource": "food", "quantity": 5}],
		"relief": [{"area": "Camp", "city": "Y", "resource": "food", "quantity": 3}],
		"routes": [{"from": "X", "to": "Y", "distance": -4}, {"from": "X", "to": "Y", "distance": 1}]
	}`
	rec := httptest.NewRecorder()
	h.Allocate(rec, httptest.NewRequest(http.MethodPost, "/admin/allocate", strings.NewReader(body)))
	require.Equal(t, http.StatusOK, rec.Code)

	out := decodePlan(t, rec)
	assert.Equal(t, domain.DropCounts{
		"warehouses": {domain.DropMalformed: 1},
		"routes":     {domain.DropMalformed: 1},
	}, out.Dropped)
	require.Len(t, out.Allocations, 1)
	assert.Equal(t, 3, out.Allocations[0].Allocated)
}

func TestAllocateBodyReadErrors(t *testing.T) {
	h := newHandler(configuredSource())

	rec := httptest.NewRecorder()
	h.Allocate(rec, httptest.NewRequest(http.MethodPost, "/admin/allocate", iotest.ErrReader(errors.New("connection reset"))))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	big := strings.NewReader(strings.Repeat(" ", maxBodyBytes+1))
	h.Allocate(rec, httptest.NewRequest(http.MethodPost, "/admin/allocate", big))
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestAllocateRejectsBadBodies(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"malformed", `{"warehouses": [`},
		{"unknown field", `{"trucks": []}`},
		{"trailing object", `{} {}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := newHandler(configuredSource())
			rec := httptest.NewRecorder()
			h.Allocate(rec, httptest.NewRequest(http.MethodPost, "/admin/allocate", strings.NewReader(tc.body)))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestAllocateWrongMethod(t *testing.T) {
	h := newHandler(configuredSource())
	rec := httptest.NewRecorder()
	h.Allocate(rec, httptest.NewRequest(http.MethodGet, "/admin/allocate", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, http.MethodPost, rec.Header().Get("Allow"))
}

func TestAllocateSourceUnavailable(t *testing.T) {
	h := NewAllocationHandler(failingSource{}, services.PlanReliefRequest{})
	rec := httptest.NewRecorder()
	h.Allocate(rec, httptest.NewRequest(http.MethodPost, "/admin/allocate", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestLatestBeforeAndAfterAllocate(t *testing.T) {
	h := newHandler(configuredSource())

	rec := httptest.NewRecorder()
	h.Latest(rec, httptest.NewRequest(http.MethodGet, "/public/allocations", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	h.Allocate(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/admin/allocate", nil))

	rec = httptest.NewRecorder()
	h.Latest(rec, httptest.NewRequest(http.MethodGet, "/public/allocations", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	out := decodePlan(t, rec)
	assert.Empty(t, out.RunID)
	assert.Nil(t, out.Requests)
	require.Len(t, out.Allocations, 1)
	assert.Equal(t, int64(30), out.Summary.ByResourceAllocated["water"])
}

func TestHealth(t *testing.T) {
	rec := httptest.NewRecorder()
	Health(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok","service":"relief-allocation"}`, rec.Body.String())

	rec = httptest.NewRecorder()
	Health(rec, httptest.NewRequest(http.MethodPost, "/health", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
