package views

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/okian/insertion/internal/adapters/source"
	"github.com/okian/insertion/internal/domain/stats"
)

// Snapshot holds the datasets retrieved for one view build. Each field is
// filled by exactly one retrieval and read only after all have finished.
type Snapshot struct {
	ByYear         []stats.YearStat
	ByDomain       []stats.DomainStat
	ByAcademy      []stats.AcademyStat
	ByRegion       []stats.RegionStat
	GenderByDomain []stats.GenderDomainStat
	GenderByYear   []stats.GenderYearStat
	EquityByDomain []stats.EquityDomainStat
	Geo            map[string]source.GeoCollection
}

type loadFunc func(ctx context.Context, src source.Source) error

func into[T any](dst *[]T, name string) loadFunc {
	return func(ctx context.Context, src source.Source) error {
		records, err := source.Fetch[T](ctx, src, name)
		if err != nil {
			return err
		}
		*dst = records
		return nil
	}
}

func (s *Snapshot) loader(name string) (loadFunc, error) {
	switch name {
	case stats.DatasetByYear:
		return into(&s.ByYear, name), nil
	case stats.DatasetByDomain:
		return into(&s.ByDomain, name), nil
	case stats.DatasetByAcademy:
		return into(&s.ByAcademy, name), nil
	case stats.DatasetByRegion:
		return into(&s.ByRegion, name), nil
	case stats.DatasetGenderByDomain:
		return into(&s.GenderByDomain, name), nil
	case stats.DatasetGenderByYear:
		return into(&s.GenderByYear, name), nil
	case stats.DatasetEquityByDomain:
		return into(&s.EquityByDomain, name), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownDataset, name)
	}
}

// Retrieve fetches every dataset and boundary concurrently. The first
// failure cancels the others and is returned; there is no partial snapshot.
// limit <= 0 means no limit.
func Retrieve(ctx context.Context, src source.Source, datasets, boundaries []string, limit int) (*Snapshot, error) {
	snap := &Snapshot{}
	loads := make([]loadFunc, 0, len(datasets))
	seen := make(map[string]bool, len(datasets))
	for _, name := range datasets {
		if seen[name] {
			continue
		}
		seen[name] = true
		load, err := snap.loader(name)
		if err != nil {
			return nil, err
		}
		loads = append(loads, load)
	}
	geo := make([]source.GeoCollection, len(boundaries))

	g, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for _, load := range loads {
		g.Go(func() error { return load(gctx, src) })
	}
	for i, name := range boundaries {
		g.Go(func() error {
			collection, err := src.FetchGeoBoundary(gctx, name)
			if err != nil {
				return err
			}
			geo[i] = collection
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if len(boundaries) > 0 {
		snap.Geo = make(map[string]source.GeoCollection, len(boundaries))
		for i, name := range boundaries {
			snap.Geo[name] = geo[i]
		}
	}
	return snap, nil
}
