// Package source retrieves the named datasets and geographic boundaries the
// dashboard is built from. Two adapters are provided: HTTPSource talks to the
// data service, DirSource reads its processed export from disk.
package source

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/okian/insertion/pkg/metrics"
)

// Source is the retrieval collaborator.
type Source interface {
	// FetchDataset returns the raw JSON array of a named dataset.
	FetchDataset(ctx context.Context, name string) (json.RawMessage, error)
	// FetchGeoBoundary returns a named boundary collection.
	FetchGeoBoundary(ctx context.Context, name string) (GeoCollection, error)
}

// GeoCollection is a GeoJSON FeatureCollection. Geometries are passed
// through untouched.
type GeoCollection struct {
	Type     string       `json:"type"`
	Features []GeoFeature `json:"features"`
}

// GeoFeature is a single boundary.
type GeoFeature struct {
	Type       string          `json:"type"`
	Properties map[string]any  `json:"properties"`
	Geometry   json.RawMessage `json:"geometry"`
}

// PropertyValues lists the string values of a feature property, e.g. "nom".
func (g GeoCollection) PropertyValues(key string) map[string]struct{} {
	out := make(map[string]struct{}, len(g.Features))
	for _, f := range g.Features {
		if v, ok := f.Properties[key].(string); ok {
			out[v] = struct{}{}
		}
	}
	return out
}

// Fetch retrieves a dataset and decodes it into typed records. A decode
// failure is a TransportError too: the view cannot be built either way.
func Fetch[T any](ctx context.Context, src Source, name string) ([]T, error) {
	if src == nil {
		return nil, ErrNoSource
	}
	start := time.Now()
	records, err := fetch[T](ctx, src, name)
	metrics.RecordDatasetFetch(name, float64(time.Since(start).Milliseconds()), err)
	if err != nil {
		return nil, err
	}
	metrics.UpdateDatasetRecords(name, len(records))
	return records, nil
}

func fetch[T any](ctx context.Context, src Source, name string) ([]T, error) {
	raw, err := src.FetchDataset(ctx, name)
	if err != nil {
		return nil, err
	}
	var records []T
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, &TransportError{Dataset: name, Err: fmt.Errorf("decode: %w", err)}
	}
	if records == nil {
		records = []T{}
	}
	return records, nil
}
