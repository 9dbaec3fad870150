package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

// Money is a NUMERIC amount. It is written as a JSON string with the scale
// it was read with, so a NUMERIC(10,2) value of 25.00 is "25.00", not "25".
type Money struct {
	decimal.Decimal
}

// NewMoney parses s, keeping its number of decimal places
func NewMoney(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, err
	}
	return Money{Decimal: d}, nil
}

// String renders m with the scale it carries
func (m Money) String() string {
	places := int32(0)
	if exp := m.Exponent(); exp < 0 {
		places = -exp
	}
	return m.Decimal.StringFixed(places)
}

func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(m.String())), nil
}

// Int is an integer column value. Clients may send it as a JSON number or
// as a string holding one, the same text PostgreSQL would cast.
type Int int64

func (i *Int) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if unquoted, err := strconv.Unquote(raw); err == nil {
		raw = strings.TrimSpace(unquoted)
	}

	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return fmt.Errorf("integer %s: %w", data, err)
	}
	*i = Int(n)
	return nil
}

// Date is a DATE column value, written as "YYYY-MM-DD". Besides that form
// it reads RFC 3339 timestamps, keeping the calendar day as written.
type Date struct {
	pgtype.Date
}

// NewDate returns the valid date for the day of t
func NewDate(t time.Time) Date {
	return Date{pgtype.Date{
		Time:  time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC),
		Valid: true,
	}}
}

func (d *Date) UnmarshalJSON(data []byte) error {
	if err := d.Date.UnmarshalJSON(data); err == nil {
		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("date %s: %w", data, err)
	}

	t, err := time.Parse(time.RFC3339Nano, strings.TrimSpace(raw))
	if err != nil {
		return fmt.Errorf("date %q: %w", raw, err)
	}
	*d = NewDate(t)
	return nil
}
