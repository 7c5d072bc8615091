// Package views maps each dashboard page to a builder returning its
// declarative output. The router decides which view to build; this package
// only knows how.
package views

import (
	"context"
	"fmt"
	"slices"

	"github.com/okian/insertion/internal/adapters/source"
	"github.com/okian/insertion/internal/narrative"
	"github.com/okian/insertion/internal/projection"
)

// View names.
const (
	ViewIndex      = "index"
	ViewDomains    = "domaines"
	ViewAcademies  = "academies"
	ViewGender     = "genre"
	ViewEquity     = "equite"
	ViewConclusion = "conclusion"
)

// View is everything a page needs to render.
type View struct {
	Name       string                          `json:"name"`
	Title      string                          `json:"title"`
	Charts     []projection.Chart              `json:"charts"`
	Tables     []projection.TableSpec          `json:"tables"`
	Insights   narrative.InsightMap            `json:"insights,omitempty"`
	Boundaries map[string]source.GeoCollection `json:"boundaries,omitempty"`
	// Notes lists data quality remarks, e.g. regions without a boundary.
	Notes []string `json:"notes,omitempty"`
}

// Table returns the table with the given id.
func (v View) Table(id string) (projection.TableSpec, bool) {
	for _, t := range v.Tables {
		if t.ID == id {
			return t, true
		}
	}
	return projection.TableSpec{}, false
}

// Settings tunes ranking sizes.
type Settings struct {
	TopDomains    int
	TopAcademies  int
	TopConclusion int
}

// DefaultSettings mirrors the sizes the dashboard pages were designed for.
func DefaultSettings() Settings {
	return Settings{TopDomains: 15, TopAcademies: 20, TopConclusion: 10}
}

// BuildFunc turns a complete snapshot into a view.
type BuildFunc func(snap *Snapshot, settings Settings) (View, error)

// Builder declares what a view needs and how to build it.
type Builder struct {
	Name       string
	Title      string
	Datasets   []string
	Boundaries []string
	Build      BuildFunc
}

// Registry maps view names to builders.
type Registry struct {
	builders map[string]Builder
	order    []string
}

// NewRegistry registers builders in order. A later builder with the same
// name replaces an earlier one.
func NewRegistry(builders ...Builder) *Registry {
	r := &Registry{builders: make(map[string]Builder, len(builders))}
	for _, b := range builders {
		if _, dup := r.builders[b.Name]; !dup {
			r.order = append(r.order, b.Name)
		}
		r.builders[b.Name] = b
	}
	return r
}

// Default returns the registry of every dashboard page.
func Default() *Registry {
	return NewRegistry(
		indexBuilder(),
		domainsBuilder(),
		academiesBuilder(),
		genderBuilder(),
		equityBuilder(),
		conclusionBuilder(),
	)
}

// Names returns the registered view names in registration order.
func (r *Registry) Names() []string { return slices.Clone(r.order) }

// Lookup returns the builder for name.
func (r *Registry) Lookup(name string) (Builder, bool) {
	b, ok := r.builders[name]
	return b, ok
}

// Build retrieves the view's datasets concurrently and builds it. Any
// retrieval failure fails the whole view.
func (r *Registry) Build(ctx context.Context, src source.Source, name string, settings Settings, fetchLimit int) (View, error) {
	b, ok := r.Lookup(name)
	if !ok {
		return View{}, fmt.Errorf("%w: %s", ErrUnknownView, name)
	}
	snap, err := Retrieve(ctx, src, b.Datasets, b.Boundaries, fetchLimit)
	if err != nil {
		return View{}, fmt.Errorf("view %s: %w", name, err)
	}
	v, err := b.Build(snap, settings)
	if err != nil {
		return View{}, fmt.Errorf("view %s: %w", name, err)
	}
	v.Name = b.Name
	if v.Title == "" {
		v.Title = b.Title
	}
	return v, nil
}
