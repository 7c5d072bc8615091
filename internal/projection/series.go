// Package projection packages ranked and derived data into declarative
// payloads for the chart and table renderers. Nothing here draws: builders
// only return data.
package projection

import (
	"fmt"

	"github.com/okian/insertion/internal/domain/metric"
)

// Kind selects the chart trace type.
type Kind string

// Supported trace kinds.
const (
	KindLine       Kind = "line"
	KindBar        Kind = "bar"
	KindChoropleth Kind = "choropleth"
	KindScatter    Kind = "scatter"
)

// OrientationHorizontal draws bars from the y axis.
const OrientationHorizontal = "h"

// AxisSecondary binds a series to the right-hand y axis.
const AxisSecondary = "y2"

// AxisLabels names the axes a series is drawn against.
type AxisLabels struct {
	X string `json:"x,omitempty"`
	Y string `json:"y,omitempty"`
}

// SeriesSpec is one trace. Y, Color, Size, Detail and Counts are aligned
// index for index with X.
type SeriesSpec struct {
	Kind        Kind           `json:"kind"`
	X           []any          `json:"x"`
	Y           []any          `json:"y"`
	Color       []metric.Float `json:"color,omitempty"`
	Size        []metric.Float `json:"size,omitempty"`
	Detail      []string       `json:"detail,omitempty"`
	Counts      []string       `json:"counts,omitempty"`
	Orientation string         `json:"orientation,omitempty"`
	Axis        string         `json:"axis,omitempty"`
	AxisLabels  AxisLabels     `json:"axisLabels"`
	LegendLabel string         `json:"legendLabel,omitempty"`
	ColorLabel  string         `json:"colorLabel,omitempty"`
	// GeoKey is the boundary feature property matched by X on choropleths.
	GeoKey string `json:"geoKey,omitempty"`
}

// BuildSeries maps records to a trace. Records with absent values are kept;
// they encode as null so the renderer leaves a gap.
func BuildSeries[R, X, Y any](records []R, x func(R) X, y func(R) Y, opts ...Option) (SeriesSpec, error) {
	s := SeriesSpec{
		Kind: KindLine,
		X:    make([]any, len(records)),
		Y:    make([]any, len(records)),
	}
	for i, r := range records {
		s.X[i] = x(r)
		s.Y[i] = y(r)
	}
	for _, opt := range opts {
		opt(&s)
	}
	if err := s.validate(); err != nil {
		return SeriesSpec{}, err
	}
	return s, nil
}

// Len returns the number of points.
func (s SeriesSpec) Len() int { return len(s.X) }

func (s SeriesSpec) validate() error {
	n := len(s.X)
	check := func(name string, got int, set bool) error {
		if set && got != n {
			return fmt.Errorf("%w: %s has %d values, series has %d", ErrMisaligned, name, got, n)
		}
		return nil
	}
	for _, c := range []struct {
		name string
		got  int
		set  bool
	}{
		{"y", len(s.Y), true},
		{"color", len(s.Color), s.Color != nil},
		{"size", len(s.Size), s.Size != nil},
		{"detail", len(s.Detail), s.Detail != nil},
		{"counts", len(s.Counts), s.Counts != nil},
	} {
		if err := check(c.name, c.got, c.set); err != nil {
			return err
		}
	}
	return nil
}
