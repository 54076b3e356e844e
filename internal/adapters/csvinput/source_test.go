package csvinput

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"relief-allocation-service/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func TestSourceLoadsAllTables(t *testing.T) {
	dir := t.TempDir()
	src := NewSource(
		writeFile(t, dir, "warehouses.csv", "WarehouseName,City,Resource,Quantity\n W1 , Pune ,water, 100 \n\nW2,Nashik,food,-5\r\n"),
		writeFile(t, dir, "relief.csv", "AreaName,City,Resource,Qty,People,Urgency\nCamp,Mumbai,water,80,1200,150\nShelter,Thane,food,20\n"),
		writeFile(t, dir, "routes.csv", "From,To,Distance\nPune,Mumbai,148.5\nMumbai,Thane,25\n"),
	)

	ws, dropped, err := src.LoadWarehouses(context.Background())
	require.NoError(t, err)
	assert.Zero(t, dropped)
	assert.Equal(t, []domain.WarehouseRow{
		{Warehouse: "W1", City: "Pune", Resource: "water", Quantity: 100},
		{Warehouse: "W2", City: "Nashik", Resource: "food", Quantity: 0},
	}, ws)

	rs, dropped, err := src.LoadRelief(context.Background())
	require.NoError(t, err)
	assert.Zero(t, dropped)
	assert.Equal(t, []domain.ReliefRow{
		{Area: "Camp", City: "Mumbai", Resource: "water", Requested: 80, People: 1200, Urgency: 100},
		{Area: "Shelter", City: "Thane", Resource: "food", Requested: 20},
	}, rs)

	routes, dropped, err := src.LoadRoutes(context.Background())
	require.NoError(t, err)
	assert.Zero(t, dropped)
	assert.Equal(t, []domain.RouteRow{
		{From: "Pune", To: "Mumbai", Distance: 148.5},
		{From: "Mumbai", To: "Thane", Distance: 25},
	}, routes)
}

func TestSourceMissingFileIsFatal(t *testing.T) {
	src := NewSource(filepath.Join(t.TempDir(), "nope.csv"), "", "")

	_, _, err := src.LoadWarehouses(context.Background())
	require.ErrorIs(t, err, domain.ErrInputUnavailable)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestReadRowsDropsMalformedRows(t *testing.T) {
	body := strings.Join([]string{
		"From,To,Distance",
		"A,B,10",
		"A,,3",
		"A,C",
		"A,D,-1",
		"A,E,far",
		"B,C,2.5",
	}, "\n")

	rows, dropped, err := ReadRows(context.Background(), "routes", strings.NewReader(body), ParseRoute)
	require.NoError(t, err)
	assert.Equal(t, 4, dropped)
	assert.Equal(t, []domain.RouteRow{
		{From: "A", To: "B", Distance: 10},
		{From: "B", To: "C", Distance: 2.5},
	}, rows)
}

func TestReadRowsHeaderOnly(t *testing.T) {
	rows, dropped, err := ReadRows(context.Background(), "warehouses", strings.NewReader("WarehouseName,City,Resource,Quantity\n"), ParseWarehouse)
	require.NoError(t, err)
	assert.Zero(t, dropped)
	assert.Empty(t, rows)
}

func TestParseWarehouseRejectsEmptyFieldsAndBadNumbers(t *testing.T) {
	for _, rec := range [][]string{
		{"", "Pune", "water", "1"},
		{"W1", " ", "water", "1"},
		{"W1", "Pune", "", "1"},
		{"W1", "Pune", "water", "lots"},
		{"W1", "Pune", "water"},
	} {
		_, err := ParseWarehouse(rec)
		assert.ErrorIs(t, err, domain.ErrMalformedRow, "record %q", rec)
	}
}

func TestParseReliefClampsUrgency(t *testing.T) {
	row, err := ParseRelief([]string{"Camp", "Pune", "water", "-3", "-1", "-20"})
	require.NoError(t, err)
	assert.Equal(t, 0, row.Requested)
	assert.Equal(t, 0, row.Urgency)
	assert.Equal(t, 0, row.People)

	_, err = ParseRelief([]string{"Camp", "Pune", "water", "3", "many"})
	assert.ErrorIs(t, err, domain.ErrMalformedRow)
}

func TestParseRouteAcceptsZeroDistance(t *testing.T) {
	row, err := ParseRoute([]string{" A", "A ", "0"})
	require.NoError(t, err)
	assert.Equal(t, domain.RouteRow{From: "A", To: "A"}, row)
}
