package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"relief-allocation-service/internal/domain"
	"relief-allocation-service/internal/platform/obs"
)

// SQL-backed implementation of the InputSource port. The queries use no bind
// parameters, so the same repository serves SQLite and Postgres.
type SQLInputRepository struct{ DB *sql.DB }

func NewSQLInputRepository(db *sql.DB) *SQLInputRepository {
	return &SQLInputRepository{DB: db}
}

func (s *SQLInputRepository) LoadWarehouses(ctx context.Context) ([]domain.WarehouseRow, int, error) {
	query := `
	SELECT
		warehouse,
		city,
		resource,
		quantity
	FROM warehouse_stock
	ORDER BY row_no;
	`
	return loadRows(ctx, s.DB, "warehouses", query, func(rows *sql.Rows) (domain.WarehouseRow, error) {
		var w domain.WarehouseRow
		err := rows.Scan(&w.Warehouse, &w.City, &w.Resource, &w.Quantity)
		return w, err
	}, domain.WarehouseRow.Normalize)
}

func (s *SQLInputRepository) LoadRelief(ctx context.Context) ([]domain.ReliefRow, int, error) {
	query := `
	SELECT
		area,
		city,
		resource,
		requested,
		people,
		urgency
	FROM relief_requests
	ORDER BY row_no;
	`
	return loadRows(ctx, s.DB, "relief", query, func(rows *sql.Rows) (domain.ReliefRow, error) {
		var r domain.ReliefRow
		err := rows.Scan(&r.Area, &r.City, &r.Resource, &r.Requested, &r.People, &r.Urgency)
		return r, err
	}, domain.ReliefRow.Normalize)
}

func (s *SQLInputRepository) LoadRoutes(ctx context.Context) ([]domain.RouteRow, int, error) {
	query := `
	SELECT
		from_city,
		to_city,
		distance
	FROM routes
	ORDER BY row_no;
	`
	return loadRows(ctx, s.DB, "routes", query, func(rows *sql.Rows) (domain.RouteRow, error) {
		var r domain.RouteRow
		err := rows.Scan(&r.From, &r.To, &r.Distance)
		return r, err
	}, domain.RouteRow.Normalize)
}

func loadRows[T any](
	ctx context.Context,
	db *sql.DB,
	kind string,
	query string,
	scan func(*sql.Rows) (T, error),
	normalize func(T) (T, error),
) (_ []T, dropped int, err error) {
	defer obs.Time(ctx, "sql.load."+kind)(&err)

	if db == nil {
		return nil, 0, errors.New("sql input repository: DB is nil")
	}

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("load %s: query: %w: %w", kind, domain.ErrInputUnavailable, err)
	}
	defer rows.Close()

	out := make([]T, 0, 64)
	for n := 1; rows.Next(); n++ {
		row, err := scan(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("load %s: scan row: %w", kind, err)
		}
		row, err = normalize(row)
		if err != nil {
			dropped++
			obs.DropRow(ctx, kind, domain.DropMalformed, fmt.Errorf("row %d: %w", n, err))
			continue
		}
		out = append(out, row)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("load %s: row iteration: %w", kind, err)
	}

	return out, dropped, nil
}
