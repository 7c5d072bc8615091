package projection

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/okian/insertion/internal/domain/format"
	"github.com/okian/insertion/internal/domain/metric"
)

// Column is the rendered header of a table column.
type Column struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// TableSpec is a fully formatted table.
type TableSpec struct {
	ID      string     `json:"id"`
	Title   string     `json:"title,omitempty"`
	Columns []Column   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// ColumnSpec describes how one column is extracted and formatted.
// A nil Formatter means Identity.
type ColumnSpec[R any] struct {
	Key       string
	Label     string
	Value     func(R) any
	Formatter func(any) string
}

// Field builds a typed ColumnSpec. formatter may be nil.
func Field[R, V any](key, label string, value func(R) V, formatter func(V) string) ColumnSpec[R] {
	c := ColumnSpec[R]{
		Key:   key,
		Label: label,
		Value: func(r R) any { return value(r) },
	}
	if formatter != nil {
		c.Formatter = func(v any) string {
			typed, ok := v.(V)
			if !ok {
				return format.Placeholder
			}
			return formatter(typed)
		}
	}
	return c
}

// Text is a label column rendered with Identity.
func Text[R any](key, label string, value func(R) string) ColumnSpec[R] {
	return Field[R, string](key, label, value, nil)
}

// Rate formats a stored fraction as a percentage.
func Rate[R any](key, label string, value func(R) metric.Float) ColumnSpec[R] {
	return Field(key, label, value, format.Rate)
}

// Currency formats a salary.
func Currency[R any](key, label string, value func(R) metric.Float) ColumnSpec[R] {
	return Field(key, label, value, format.Currency)
}

// Count formats a respondent count.
func Count[R any](key, label string, value func(R) metric.Int) ColumnSpec[R] {
	return Field(key, label, value, format.Count)
}

// BuildTable formats every record with every column, preserving record order.
func BuildTable[R any](id string, records []R, columns []ColumnSpec[R]) TableSpec {
	t := TableSpec{
		ID:      id,
		Columns: make([]Column, len(columns)),
		Rows:    make([][]string, len(records)),
	}
	for j, c := range columns {
		t.Columns[j] = Column{Key: c.Key, Label: c.Label}
	}
	for i, r := range records {
		row := make([]string, len(columns))
		for j, c := range columns {
			var v any
			if c.Value != nil {
				v = c.Value(r)
			}
			f := c.Formatter
			if f == nil {
				f = Identity
			}
			row[j] = f(v)
		}
		t.Rows[i] = row
	}
	return t
}

// Identity renders a value as text, with the placeholder for nil, blank or
// absent values.
func Identity(v any) string {
	switch t := v.(type) {
	case nil:
		return format.Placeholder
	case string:
		if strings.TrimSpace(t) == "" {
			return format.Placeholder
		}
		return t
	case metric.Float:
		if !t.Valid {
			return format.Placeholder
		}
		return strconv.FormatFloat(t.Value, 'f', -1, 64)
	case metric.Int:
		if !t.Valid {
			return format.Placeholder
		}
		return strconv.FormatInt(t.Value, 10)
	default:
		return fmt.Sprint(v)
	}
}
