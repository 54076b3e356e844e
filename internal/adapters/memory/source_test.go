package memory

import (
	"context"
	"testing"

	"relief-allocation-service/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSourceNormalizesAndCountsDrops(t *testing.T) {
	src := NewSource(domain.Inputs{
		Warehouses: []domain.WarehouseRow{
			{Warehouse: " W1 ", City: "A", Resource: "water", Quantity: -3},
			{Warehouse: "W2", City: "", Resource: "water", Quantity: 5},
		},
		Relief: []domain.ReliefRow{
			{Area: "Camp", City: "B", Resource: "water", Requested: 4, Urgency: 300},
		},
		Routes: []domain.RouteRow{
			{From: "A", To: "B", Distance: -1},
			{From: "A", To: "B", Distance: 2},
		},
	})
	ctx := context.Background()

	ws, dropped, err := src.LoadWarehouses(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, dropped)
	assert.Equal(t, []domain.WarehouseRow{{Warehouse: "W1", City: "A", Resource: "water"}}, ws)

	rs, dropped, err := src.LoadRelief(ctx)
	require.NoError(t, err)
	assert.Zero(t, dropped)
	assert.Equal(t, 100, rs[0].Urgency)

	routes, dropped, err := src.LoadRoutes(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, dropped)
	assert.Equal(t, []domain.RouteRow{{From: "A", To: "B", Distance: 2}}, routes)
}
