package projection

import "github.com/okian/insertion/internal/domain/metric"

// Option applies a configuration option to a SeriesSpec.
type Option func(*SeriesSpec)

// WithKind sets the trace type.
func WithKind(kind Kind) Option {
	return func(s *SeriesSpec) {
		if kind != "" {
			s.Kind = kind
		}
	}
}

// WithLegend sets the legend entry.
func WithLegend(label string) Option {
	return func(s *SeriesSpec) { s.LegendLabel = label }
}

// WithAxisLabels sets the axis titles.
func WithAxisLabels(x, y string) Option {
	return func(s *SeriesSpec) { s.AxisLabels = AxisLabels{X: x, Y: y} }
}

// WithHorizontal draws bars horizontally; X then carries the values and Y
// the categories.
func WithHorizontal() Option {
	return func(s *SeriesSpec) { s.Orientation = OrientationHorizontal }
}

// WithSecondaryAxis binds the series to the right-hand axis.
func WithSecondaryAxis() Option {
	return func(s *SeriesSpec) { s.Axis = AxisSecondary }
}

// WithColor binds a secondary metric to the marker color.
func WithColor(label string, values []metric.Float) Option {
	return func(s *SeriesSpec) {
		s.ColorLabel = label
		s.Color = values
	}
}

// WithSize binds a metric to the marker size.
func WithSize(values []metric.Float) Option {
	return func(s *SeriesSpec) { s.Size = values }
}

// WithDetail attaches preformatted hover text.
func WithDetail(detail []string) Option {
	return func(s *SeriesSpec) { s.Detail = detail }
}

// WithCounts attaches preformatted respondent counts used as tooltip
// denominators.
func WithCounts(counts []string) Option {
	return func(s *SeriesSpec) { s.Counts = counts }
}

// WithGeoKey sets the boundary property matched by a choropleth.
func WithGeoKey(key string) Option {
	return func(s *SeriesSpec) { s.GeoKey = key }
}
