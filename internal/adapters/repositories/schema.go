package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

// Dialect selects the bind-parameter syntax of the target database.
type Dialect string

const (
	DialectSqlite   Dialect = "sqlite"
	DialectPostgres Dialect = "pgx"
)

// placeholders returns n bind parameters, e.g. "?, ?" or "$1, $2".
func (d Dialect) placeholders(n int) string {
	ph := make([]string, n)
	for i := range ph {
		if d == DialectPostgres {
			ph[i] = fmt.Sprintf("$%d", i+1)
		} else {
			ph[i] = "?"
		}
	}
	return strings.Join(ph, ", ")
}

// Initialize the input tables. The DDL is valid for both SQLite and Postgres.
// row_no keeps the original file order, which decides city ids and tie-breaks.
func InitSchema(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createWarehousesQuery := `
	CREATE TABLE IF NOT EXISTS warehouse_stock (
		row_no INTEGER PRIMARY KEY,
		warehouse TEXT NOT NULL,
		city TEXT NOT NULL,
		resource TEXT NOT NULL,
		quantity INTEGER NOT NULL
	);
	`

	createReliefQuery := `
	CREATE TABLE IF NOT EXISTS relief_requests (
		row_no INTEGER PRIMARY KEY,
		area TEXT NOT NULL,
		city TEXT NOT NULL,
		resource TEXT NOT NULL,
		requested INTEGER NOT NULL,
		people INTEGER NOT NULL,
		urgency INTEGER NOT NULL
	);
	`

	createRoutesQuery := `
	CREATE TABLE IF NOT EXISTS routes (
		row_no INTEGER PRIMARY KEY,
		from_city TEXT NOT NULL,
		to_city TEXT NOT NULL,
		distance DOUBLE PRECISION NOT NULL
	);
	`

	statements := []string{
		createWarehousesQuery,
		createReliefQuery,
		createRoutesQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}
