// Package sourcetest provides an in-memory source.Source for tests.
package sourcetest

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/okian/insertion/internal/adapters/source"
)

// Static serves fixed payloads. Unknown names fail with a TransportError,
// like a 404 from the data service.
type Static struct {
	mu       sync.Mutex
	datasets map[string]json.RawMessage
	geo      map[string]source.GeoCollection
	failures map[string]error
	calls    map[string]int
}

// New returns an empty Static source.
func New() *Static {
	return &Static{
		datasets: map[string]json.RawMessage{},
		geo:      map[string]source.GeoCollection{},
		failures: map[string]error{},
		calls:    map[string]int{},
	}
}

// WithDataset registers a raw JSON payload.
func (s *Static) WithDataset(name, payload string) *Static {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.datasets[name] = json.RawMessage(payload)
	return s
}

// WithGeo registers a boundary collection.
func (s *Static) WithGeo(name string, g source.GeoCollection) *Static {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.geo[name] = g
	return s
}

// WithFailure makes every retrieval of name fail with err.
func (s *Static) WithFailure(name string, err error) *Static {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[name] = err
	return s
}

// Calls reports how often name was requested.
func (s *Static) Calls(name string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[name]
}

// FetchDataset implements source.Source.
func (s *Static) FetchDataset(ctx context.Context, name string) (json.RawMessage, error) {
	if err := s.hit(ctx, name); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	raw, ok := s.datasets[name]
	if !ok {
		return nil, &source.TransportError{Dataset: name, Status: 404}
	}
	return raw, nil
}

// FetchGeoBoundary implements source.Source.
func (s *Static) FetchGeoBoundary(ctx context.Context, name string) (source.GeoCollection, error) {
	if err := s.hit(ctx, name); err != nil {
		return source.GeoCollection{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	g, ok := s.geo[name]
	if !ok {
		return source.GeoCollection{}, &source.TransportError{Dataset: name, Status: 404}
	}
	return g, nil
}

func (s *Static) hit(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return &source.TransportError{Dataset: name, Err: err}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls[name]++
	if err, ok := s.failures[name]; ok {
		if errors.Is(err, source.ErrTransport) {
			return err
		}
		return &source.TransportError{Dataset: name, Err: err}
	}
	return nil
}

// Region returns a boundary feature named nom.
func Region(nom string) source.GeoFeature {
	return source.GeoFeature{
		Type:       "Feature",
		Properties: map[string]any{"nom": nom},
		Geometry:   json.RawMessage(`{"type":"Point","coordinates":[2.35,48.85]}`),
	}
}

// Fixtures used across packages.
const (
	ByYear = `[
		{"annee": 2019, "taux_dinsertion_moy": 0.85, "taux_emploi_moy": 0.88, "salaire_median": 1900, "n": 1000},
		{"annee": 2021, "taux_dinsertion_moy": 0.87, "taux_emploi_moy": 0.9, "salaire_median": 2000, "n": 1100},
		{"annee": 2022, "taux_dinsertion_moy": 0.92, "taux_emploi_moy": 0.93, "salaire_median": 2100, "n": 1200}
	]`
	ByDomain = `[
		{"domaine": "Informatique", "taux_dinsertion_moy": 0.92, "salaire_moyen": 3200, "salaire_median": 3000, "n": 150},
		{"domaine": "Droit", "taux_dinsertion_moy": 0.80, "salaire_median": 2500, "n": 90},
		{"domaine": "Lettres", "taux_dinsertion_moy": null, "salaire_median": 1800, "n": 40},
		{"domaine": "Santé", "taux_dinsertion_moy": 0.95, "salaire_moyen": 2900, "n": 60}
	]`
	ByAcademy = `[
		{"academie": "Paris", "taux_dinsertion_moy": 0.9, "salaire_median": 2400, "n": 300},
		{"academie": "Lyon", "taux_dinsertion_moy": 0.88, "salaire_median": 2200, "n": 250},
		{"academie": "Lille", "taux_dinsertion_moy": 0.84, "n": 200}
	]`
	ByRegion = `[
		{"region": "Île-de-France", "taux_dinsertion_moy": 0.9, "n": 300},
		{"region": "Auvergne-Rhône-Alpes", "taux_dinsertion_moy": 0.88, "n": 250},
		{"region": "Atlantide", "taux_dinsertion_moy": 0.5, "n": 5}
	]`
	GenderByDomain = `[
		{"domaine": "Informatique", "taux_dinsertion_moy": 0.92, "part_femmes": 0.2, "salaire_moyen": 3200, "n": 150},
		{"domaine": "Lettres", "taux_dinsertion_moy": 0.78, "part_femmes": 0.75, "salaire_median": 1800, "n": 40}
	]`
	GenderByYear = `[
		{"annee": 2021, "part_femmes": 0.55, "taux_dinsertion_moy": 0.86},
		{"annee": 2022, "part_femmes": 0.56, "taux_dinsertion_moy": 0.9}
	]`
	EquityByDomain = `[
		{"domaine": "Informatique", "taux_dinsertion_moy": 0.92, "part_boursiers": 0.3, "n": 150},
		{"domaine": "Lettres", "taux_dinsertion_moy": 0.78, "part_boursiers": 0.45, "n": 40}
	]`
)

// Complete returns a source serving every dataset and the regions boundary.
func Complete() *Static {
	return New().
		WithDataset("by_year", ByYear).
		WithDataset("by_domaine", ByDomain).
		WithDataset("by_academie", ByAcademy).
		WithDataset("by_region", ByRegion).
		WithDataset("genre_by_domaine", GenderByDomain).
		WithDataset("genre_by_year", GenderByYear).
		WithDataset("equite_by_domaine", EquityByDomain).
		WithGeo("regions", source.GeoCollection{
			Type:     "FeatureCollection",
			Features: []source.GeoFeature{Region("Île-de-France"), Region("Auvergne-Rhône-Alpes")},
		})
}
