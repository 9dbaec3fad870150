package repository

import (
	"context"
	"sync"
)

// MemoryTable implements Repository with in-memory storage.
// Keys are assigned sequentially starting at 1. No constraints are enforced.
type MemoryTable[T any] struct {
	table  Table[T]
	mu     sync.RWMutex
	rows   []T
	nextID int64
}

// NewMemoryTable creates an empty in-memory table
func NewMemoryTable[T any](table Table[T]) *MemoryTable[T] {
	return &MemoryTable[T]{
		table: table,
		rows:  make([]T, 0),
	}
}

// List returns all rows in insertion order
func (r *MemoryTable[T]) List(ctx context.Context) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	rows := make([]T, len(r.rows))
	copy(rows, r.rows)
	return rows, nil
}

// Create stores a row built from fields, assigning the next key when the
// table has one
func (r *MemoryTable[T]) Create(ctx context.Context, fields Fields) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}

	record, err := r.table.decode(fields)
	if err != nil {
		return zero, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.table.SetID != nil {
		r.nextID++
		r.table.SetID(&record, r.nextID)
	}
	r.rows = append(r.rows, record)
	return record, nil
}
