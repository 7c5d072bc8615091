// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/okian/insertion/internal/adapters/source"
	"github.com/okian/insertion/internal/projection"
	"github.com/okian/insertion/internal/views"
	"github.com/okian/insertion/pkg/logger"
	"github.com/okian/insertion/pkg/metrics"
)

// Service builds dashboard views from a dataset source.
type Service struct {
	mu sync.RWMutex

	// Core components
	source   source.Source
	registry *views.Registry

	// Configuration
	settings   views.Settings
	fetchLimit int

	// State
	started bool
	builds  atomic.Int64
	failed  atomic.Int64

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(logger logger.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithSource sets the dataset source.
func WithSource(src source.Source) Option {
	return func(s *Service) {
		s.source = src
	}
}

// WithSettings sets the ranking sizes used by the views.
func WithSettings(settings views.Settings) Option {
	return func(s *Service) {
		s.settings = settings
	}
}

// WithFetchLimit caps concurrent retrievals per view build. Zero means no cap.
func WithFetchLimit(limit int) Option {
	return func(s *Service) {
		if limit >= 0 {
			s.fetchLimit = limit
		}
	}
}

// WithRegistry replaces the default view registry.
func WithRegistry(r *views.Registry) Option {
	return func(s *Service) {
		if r != nil {
			s.registry = r
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		registry:   views.Default(),
		settings:   views.DefaultSettings(),
		fetchLimit: 4,
		logger:     nil, // Will be replaced when service starts
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start checks the collaborators and marks the service ready.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	if s.logger == nil {
		s.logger = logger.Get()
	}

	if s.source == nil {
		return source.ErrNoSource
	}

	s.started = true
	s.logger.Info(ctx, "insertion dashboard service started",
		logger.Strings("views", s.registry.Names()),
		logger.Int("fetchLimit", s.fetchLimit),
		logger.Int("topDomains", s.settings.TopDomains),
		logger.Int("topAcademies", s.settings.TopAcademies),
		logger.Int("topConclusion", s.settings.TopConclusion),
	)

	return nil
}

// Stop marks the service stopped. In-flight builds finish on their own.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}

	s.started = false
	s.logger.Info(context.Background(), "insertion dashboard service stopped")
}

// ViewNames lists the views the service can build.
func (s *Service) ViewNames() []string {
	return s.registry.Names()
}

// BuildView retrieves the datasets of a view and builds it. Every call
// re-reads the source; nothing is cached between calls.
func (s *Service) BuildView(ctx context.Context, name string) (views.View, error) {
	s.mu.RLock()
	started, src, log := s.started, s.source, s.logger
	s.mu.RUnlock()

	if !started {
		return views.View{}, ErrNotStarted
	}

	buildID := uuid.NewString()
	start := time.Now()
	v, err := s.registry.Build(ctx, src, name, s.settings, s.fetchLimit)
	elapsed := time.Since(start)

	s.builds.Add(1)
	metrics.RecordViewBuild(name, float64(elapsed.Milliseconds()), err)
	if err != nil {
		s.failed.Add(1)
		log.Warn(ctx, "view build failed",
			logger.String("buildID", buildID),
			logger.String("view", name),
			logger.Duration("elapsed", elapsed),
			logger.Error(err),
		)
		return views.View{}, err
	}

	absent := v.Insights.CountNeutral()
	metrics.RecordAbsentInsights(name, absent)
	log.Debug(ctx, "view built",
		logger.String("buildID", buildID),
		logger.String("view", name),
		logger.Int("charts", len(v.Charts)),
		logger.Int("tables", len(v.Tables)),
		logger.Int("absentInsights", absent),
		logger.Duration("elapsed", elapsed),
	)
	return v, nil
}

// Table builds a view and returns one of its tables.
func (s *Service) Table(ctx context.Context, viewName, tableID string) (projection.TableSpec, error) {
	v, err := s.BuildView(ctx, viewName)
	if err != nil {
		return projection.TableSpec{}, err
	}
	t, ok := v.Table(tableID)
	if !ok {
		return projection.TableSpec{}, fmt.Errorf("%w: %s/%s", ErrUnknownTable, viewName, tableID)
	}
	return t, nil
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return map[string]interface{}{
		"started":      s.started,
		"views":        len(s.registry.Names()),
		"fetchLimit":   s.fetchLimit,
		"builds":       s.builds.Load(),
		"failedBuilds": s.failed.Load(),
	}
}
