// Package metric models optional survey statistics.
//
// A statistic that was not reported by the data service is absent, which is
// never the same thing as zero. Absent values survive every transform in this
// package and encode back to JSON null.
package metric

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

var jsonNull = []byte("null")

// Float is an optional floating point statistic (rate, share, salary).
type Float struct {
	Value float64
	Valid bool
}

// Of returns a defined Float.
func Of(v float64) Float {
	if math.IsNaN(v) {
		return Float{}
	}
	return Float{Value: v, Valid: true}
}

// None returns an absent Float.
func None() Float { return Float{} }

// Get returns the value and whether it is defined.
func (f Float) Get() (float64, bool) { return f.Value, f.Valid }

// Or returns f when defined, otherwise fallback.
func (f Float) Or(fallback Float) Float {
	if f.Valid {
		return f
	}
	return fallback
}

// Ptr returns nil for absent values.
func (f Float) Ptr() *float64 {
	if !f.Valid {
		return nil
	}
	v := f.Value
	return &v
}

// MarshalJSON encodes absent values as null.
func (f Float) MarshalJSON() ([]byte, error) {
	if !f.Valid {
		return jsonNull, nil
	}
	return strconv.AppendFloat(nil, f.Value, 'f', -1, 64), nil
}

// UnmarshalJSON decodes null (and NaN literals some exporters emit) as absent.
func (f *Float) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, jsonNull) || bytes.Equal(b, []byte("NaN")) {
		*f = Float{}
		return nil
	}
	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		return fmt.Errorf("metric: decode float %q: %w", b, err)
	}
	*f = Of(v)
	return nil
}

// Int is an optional integer statistic (year, respondent count).
type Int struct {
	Value int64
	Valid bool
}

// IntOf returns a defined Int.
func IntOf(v int64) Int { return Int{Value: v, Valid: true} }

// Get returns the value and whether it is defined.
func (i Int) Get() (int64, bool) { return i.Value, i.Valid }

// Float converts to a Float, keeping absence.
func (i Int) Float() Float {
	if !i.Valid {
		return Float{}
	}
	return Of(float64(i.Value))
}

// MarshalJSON encodes absent values as null.
func (i Int) MarshalJSON() ([]byte, error) {
	if !i.Valid {
		return jsonNull, nil
	}
	return strconv.AppendInt(nil, i.Value, 10), nil
}

// UnmarshalJSON accepts integral and fractional numbers; aggregated counts
// often arrive as floats (150.0) and are rounded.
func (i *Int) UnmarshalJSON(b []byte) error {
	var f Float
	if err := f.UnmarshalJSON(b); err != nil {
		return err
	}
	if !f.Valid {
		*i = Int{}
		return nil
	}
	*i = IntOf(int64(math.Round(f.Value)))
	return nil
}
