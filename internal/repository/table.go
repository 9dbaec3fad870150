package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
)

var (
	ErrInvalidID = errors.New("invalid id")
)

// Fields holds client-supplied column values keyed by column name, as
// decoded from a JSON request body. Numbers are json.Number.
type Fields map[string]any

// Repository defines list and create access to one table
type Repository[T any] interface {
	List(ctx context.Context) ([]T, error)
	Create(ctx context.Context, fields Fields) (T, error)
}

// Table describes how a model type maps onto a database table.
// Columns is the full row returned by list and create; Insert is the
// subset supplied by clients. Keys of Fields outside Insert are ignored.
type Table[T any] struct {
	Name    string
	Columns []string
	Insert  []string
	// SetID assigns a generated key. Only the in-memory store uses it;
	// nil for tables without a generated key.
	SetID func(*T, int64)
}

// ParseID parses a numeric identifier taken from a request path
func ParseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, errors.Join(ErrInvalidID, err)
	}
	return id, nil
}

// args binds one parameter per insert column. A missing key binds NULL.
func (t Table[T]) args(fields Fields) []any {
	args := make([]any, len(t.Insert))
	for i, column := range t.Insert {
		args[i] = param(fields[column])
	}
	return args
}

// decode builds a row from the insert columns of fields. The in-memory
// store uses it in place of the casts PostgreSQL applies to text params.
func (t Table[T]) decode(fields Fields) (T, error) {
	var record T

	values := make(map[string]any, len(t.Insert))
	for _, column := range t.Insert {
		if v, ok := fields[column]; ok {
			values[column] = v
		}
	}

	data, err := json.Marshal(values)
	if err != nil {
		return record, fmt.Errorf("encode %s row: %w", t.Name, err)
	}
	if err := json.Unmarshal(data, &record); err != nil {
		return record, fmt.Errorf("decode %s row: %w", t.Name, err)
	}
	return record, nil
}

// param renders a client value as text so the column type decides how to
// read it. nil stays nil and is bound as NULL.
func param(v any) any {
	switch v := v.(type) {
	case nil:
		return nil
	case string:
		return v
	case json.Number:
		return v.String()
	case bool:
		return strconv.FormatBool(v)
	case int64:
		return strconv.FormatInt(v, 10)
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprint(v)
		}
		return string(data)
	}
}

func selectQuery(table string, columns []string) string {
	return "SELECT " + columnList(columns) + " FROM " + quote(table)
}

func insertQuery(table string, insert, returning []string) string {
	var b strings.Builder
	b.WriteString("INSERT INTO ")
	b.WriteString(quote(table))
	b.WriteString(" (")
	b.WriteString(columnList(insert))
	b.WriteString(") VALUES (")
	for i := range insert {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString("$")
		b.WriteString(strconv.Itoa(i + 1))
	}
	b.WriteString(") RETURNING ")
	b.WriteString(columnList(returning))
	return b.String()
}

func columnList(columns []string) string {
	quoted := make([]string, len(columns))
	for i, c := range columns {
		quoted[i] = quote(c)
	}
	return strings.Join(quoted, ", ")
}

func quote(name string) string {
	return pgx.Identifier{name}.Sanitize()
}
