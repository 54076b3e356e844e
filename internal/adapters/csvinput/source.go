package csvinput

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"relief-allocation-service/internal/domain"
	"relief-allocation-service/internal/platform/obs"
)

// Source loads the three input tables from CSV files with a header row.
//
//	warehouses: WarehouseName,City,Resource,Quantity
//	relief:     AreaName,City,Resource,Quantity[,People[,Urgency]]
//	routes:     From,To,Distance
type Source struct {
	WarehousesPath string
	ReliefPath     string
	RoutesPath     string
}

func NewSource(warehouses, relief, routes string) *Source {
	return &Source{WarehousesPath: warehouses, ReliefPath: relief, RoutesPath: routes}
}

func (s *Source) LoadWarehouses(ctx context.Context) ([]domain.WarehouseRow, int, error) {
	return loadFile(ctx, "warehouses", s.WarehousesPath, ParseWarehouse)
}

func (s *Source) LoadRelief(ctx context.Context) ([]domain.ReliefRow, int, error) {
	return loadFile(ctx, "relief", s.ReliefPath, ParseRelief)
}

func (s *Source) LoadRoutes(ctx context.Context) ([]domain.RouteRow, int, error) {
	return loadFile(ctx, "routes", s.RoutesPath, ParseRoute)
}

func loadFile[T any](ctx context.Context, kind, path string, parse func([]string) (T, error)) ([]T, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("open %s file %q: %w: %w", kind, path, domain.ErrInputUnavailable, err)
	}
	defer f.Close()

	rows, dropped, err := ReadRows(ctx, kind, f, parse)
	if err != nil {
		return nil, 0, fmt.Errorf("read %s file %q: %w", kind, path, err)
	}
	return rows, dropped, nil
}

// ReadRows parses every record after the header with parse. Records that fail
// to parse are logged, dropped and counted; only read failures are returned.
func ReadRows[T any](ctx context.Context, kind string, r io.Reader, parse func([]string) (T, error)) ([]T, int, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.TrimLeadingSpace = true

	var rows []T
	dropped := 0
	header := true
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		var perr *csv.ParseError
		if errors.As(err, &perr) {
			if !header {
				dropped++
				obs.DropRow(ctx, kind, domain.DropMalformed, fmt.Errorf("line %d: %w: %v", perr.Line, domain.ErrMalformedRow, perr.Err))
			}
			header = false
			continue
		}
		if err != nil {
			return nil, 0, fmt.Errorf("%w: %w", domain.ErrInputUnavailable, err)
		}

		if header {
			header = false
			continue
		}
		if blank(rec) {
			continue
		}

		row, err := parse(rec)
		if err != nil {
			line, _ := cr.FieldPos(0)
			dropped++
			obs.DropRow(ctx, kind, domain.DropMalformed, fmt.Errorf("line %d: %w", line, err))
			continue
		}
		rows = append(rows, row)
	}

	return rows, dropped, nil
}

func blank(rec []string) bool {
	for _, f := range rec {
		if f != "" {
			return false
		}
	}
	return true
}
