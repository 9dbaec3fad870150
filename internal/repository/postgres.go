package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// Querier is the subset of *pgxpool.Pool used by the repositories
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// PostgresTable implements Repository on a PostgreSQL table
type PostgresTable[T any] struct {
	db        Querier
	table     Table[T]
	selectSQL string
	insertSQL string
}

// NewPostgresTable builds the list and insert statements for table once
func NewPostgresTable[T any](db Querier, table Table[T]) *PostgresTable[T] {
	return &PostgresTable[T]{
		db:        db,
		table:     table,
		selectSQL: selectQuery(table.Name, table.Columns),
		insertSQL: insertQuery(table.Name, table.Insert, table.Columns),
	}
}

// List returns every row of the table in store order
func (r *PostgresTable[T]) List(ctx context.Context) ([]T, error) {
	rows, err := r.db.Query(ctx, r.selectSQL)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", r.table.Name, err)
	}

	records, err := pgx.CollectRows(rows, pgx.RowToStructByName[T])
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", r.table.Name, err)
	}
	return records, nil
}

// Create inserts one row from fields and returns the stored row, generated
// fields included. Values are bound as text and cast by PostgreSQL.
func (r *PostgresTable[T]) Create(ctx context.Context, fields Fields) (T, error) {
	var zero T

	rows, err := r.db.Query(ctx, r.insertSQL, r.table.args(fields)...)
	if err != nil {
		return zero, fmt.Errorf("insert %s: %w", r.table.Name, err)
	}

	created, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[T])
	if err != nil {
		return zero, fmt.Errorf("insert %s: %w", r.table.Name, err)
	}
	return created, nil
}
