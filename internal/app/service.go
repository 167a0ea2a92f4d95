// Package service orchestrates catalog builds, trophy queries and card
// rendering for the HTTP API and the CLI.
package service

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/okian/trophy/internal/adapters/render"
	"github.com/okian/trophy/internal/domain/trophy"
	"github.com/okian/trophy/pkg/logger"
	"github.com/okian/trophy/pkg/metrics"
)

// Recorder receives domain measurements. *metrics.Manager satisfies it.
type Recorder interface {
	RecordTrophyResolved(group, tier string) error
	RecordCollectionBuilt()
	RecordBuildError()
	UpdateCatalogSize(n int)
	RecordCardRendered(panels int)
	RecordRenderLatency(latencyMs float64)
}

// Card is a rendered trophy card.
type Card struct {
	ID       string
	SVG      string
	Trophies int
}

// Service is safe for concurrent use; the catalog is read-only after New.
type Service struct {
	catalog      *trophy.Catalog
	cardDefaults render.CardOptions
	logger       logger.Logger
	recorder     Recorder
	newID        func() string

	builds   atomic.Int64
	cards    atomic.Int64
	failures atomic.Int64
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithCatalog replaces the built-in catalog.
func WithCatalog(c *trophy.Catalog) Option {
	return func(s *Service) {
		if c != nil {
			s.catalog = c
		}
	}
}

// WithCardDefaults sets the layout used when a request overrides nothing.
func WithCardDefaults(opts render.CardOptions) Option {
	return func(s *Service) {
		s.cardDefaults = opts
	}
}

// WithRecorder sets the metrics sink.
func WithRecorder(r Recorder) Option {
	return func(s *Service) {
		if r != nil {
			s.recorder = r
		}
	}
}

// WithIDGenerator sets the card id source.
func WithIDGenerator(gen func() string) Option {
	return func(s *Service) {
		if gen != nil {
			s.newID = gen
		}
	}
}

// New constructs a Service. Without WithCatalog the built-in catalog is
// loaded, and a catalog that fails validation is returned as an error.
func New(ctx context.Context, opts ...Option) (*Service, error) {
	s := &Service{
		cardDefaults: render.DefaultCardOptions(),
		recorder:     metrics.Global(),
		newID:        uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logger.Get().Named("service")
	}

	if s.catalog == nil {
		c, err := trophy.Default()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrCatalog, err)
		}
		s.catalog = c
	}

	defs := len(s.catalog.Definitions())
	s.recorder.UpdateCatalogSize(defs)
	s.logger.Info(ctx, "trophy catalog loaded", logger.Int("definitions", defs))
	return s, nil
}

// CardDefaults returns the configured card layout.
func (s *Service) CardDefaults() render.CardOptions {
	return s.cardDefaults
}

// Build resolves every catalog trophy for m.
func (s *Service) Build(ctx context.Context, m trophy.Metrics) (trophy.Collection, error) {
	c, err := s.catalog.Build(m)
	if err != nil {
		s.failures.Add(1)
		s.recorder.RecordBuildError()
		s.logger.Error(ctx, "catalog build failed", logger.Error(err))
		return trophy.Collection{}, err
	}
	s.builds.Add(1)
	s.recorder.RecordCollectionBuilt()

	for _, t := range c.Trophies() {
		if err := s.recorder.RecordTrophyResolved(t.Group().String(), t.Tier().String()); err != nil {
			s.logger.Warn(ctx, "trophy metric dropped", logger.String("key", t.Key()), logger.Error(err))
		}
	}
	s.logger.Debug(ctx, "catalog built", logger.Int("trophies", c.Len()))
	return c, nil
}

// Trophies builds the collection for m and runs the card pipeline for q.
func (s *Service) Trophies(ctx context.Context, m trophy.Metrics, q trophy.Query) (trophy.Collection, error) {
	c, err := s.Build(ctx, m)
	if err != nil {
		return trophy.Collection{}, err
	}
	return c.Apply(q), nil
}

// RenderCard selects trophies for q and lays them out with opts.
func (s *Service) RenderCard(ctx context.Context, m trophy.Metrics, q trophy.Query, opts render.CardOptions) (Card, error) {
	start := time.Now()

	c, err := s.Trophies(ctx, m, q)
	if err != nil {
		return Card{}, err
	}
	layout := render.Plan(c.Trophies(), opts)
	card := Card{
		ID:       s.newID(),
		SVG:      layout.SVG(),
		Trophies: len(layout.Panels),
	}

	s.cards.Add(1)
	s.recorder.RecordCardRendered(card.Trophies)
	s.recorder.RecordRenderLatency(float64(time.Since(start).Microseconds()) / 1000)
	s.logger.Debug(ctx, "card rendered",
		logger.String("render_id", card.ID),
		logger.Int("panels", card.Trophies),
		logger.Int("columns", layout.Columns),
		logger.Int("rows", layout.Rows),
	)
	return card, nil
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]any {
	return map[string]any{
		"definitions":  len(s.catalog.Definitions()),
		"builds":       s.builds.Load(),
		"cards":        s.cards.Load(),
		"build_errors": s.failures.Load(),
		"themes":       render.ThemeNames(),
	}
}
