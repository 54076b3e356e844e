package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"relief-allocation-service/internal/domain"
)

// Replace the stored input tables with the given rows, in one transaction.
func Seed(ctx context.Context, db *sql.DB, dialect Dialect, in domain.Inputs) error {
	if db == nil {
		return errors.New("seed inputs: DB is nil")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("seed inputs: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, table := range []string{"warehouse_stock", "relief_requests", "routes"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("seed inputs: clear %s: %w", table, err)
		}
	}

	if err := insertAll(ctx, tx, dialect,
		"warehouse_stock (row_no, warehouse, city, resource, quantity)", 5,
		len(in.Warehouses), func(i int) []any {
			w := in.Warehouses[i]
			return []any{i + 1, w.Warehouse, w.City, w.Resource, w.Quantity}
		}); err != nil {
		return fmt.Errorf("seed inputs: %w", err)
	}

	if err := insertAll(ctx, tx, dialect,
		"relief_requests (row_no, area, city, resource, requested, people, urgency)", 7,
		len(in.Relief), func(i int) []any {
			r := in.Relief[i]
			return []any{i + 1, r.Area, r.City, r.Resource, r.Requested, r.People, r.Urgency}
		}); err != nil {
		return fmt.Errorf("seed inputs: %w", err)
	}

	if err := insertAll(ctx, tx, dialect,
		"routes (row_no, from_city, to_city, distance)", 4,
		len(in.Routes), func(i int) []any {
			r := in.Routes[i]
			return []any{i + 1, r.From, r.To, r.Distance}
		}); err != nil {
		return fmt.Errorf("seed inputs: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed inputs: commit tx: %w", err)
	}

	return nil
}

func insertAll(
	ctx context.Context,
	tx *sql.Tx,
	dialect Dialect,
	target string,
	cols int,
	n int,
	args func(i int) []any,
) error {
	if n == 0 {
		return nil
	}

	stmt, err := tx.PrepareContext(ctx, fmt.Sprintf("INSERT INTO %s VALUES (%s);", target, dialect.placeholders(cols)))
	if err != nil {
		return fmt.Errorf("prepare insert %s: %w", target, err)
	}
	defer stmt.Close()

	for i := 0; i < n; i++ {
		if _, err := stmt.ExecContext(ctx, args(i)...); err != nil {
			return fmt.Errorf("insert %s row %d: %w", target, i+1, err)
		}
	}
	return nil
}
