// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	service "github.com/okian/trophy/internal/app"
	"github.com/okian/trophy/internal/adapters/render"
	"github.com/okian/trophy/internal/domain/trophy"
	"github.com/okian/trophy/pkg/logger"
)

// defaultMaxBodyBytes bounds a metrics body when no limit is configured.
const defaultMaxBodyBytes = 1 << 20

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	Trophies(ctx context.Context, m trophy.Metrics, q trophy.Query) (trophy.Collection, error)
	RenderCard(ctx context.Context, m trophy.Metrics, q trophy.Query, opts render.CardOptions) (service.Card, error)
	CardDefaults() render.CardOptions
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler  *HealthHandler
	statsHandler   *StatsHandler
	trophyHandler  *TrophyHandler
	cardHandler    *CardHandler
	metricsHandler http.Handler
	docs           func(chi.Router)
}

// Option applies a configuration option to the Server.
type Option func(*Server)

// WithMaxBodyBytes caps the size of metrics bodies.
func WithMaxBodyBytes(n int64) Option {
	return func(s *Server) {
		if n > 0 {
			s.trophyHandler.maxBody = n
			s.cardHandler.maxBody = n
		}
	}
}

// WithLogger sets the logger used for request failures.
func WithLogger(l logger.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.trophyHandler.logger = l
			s.cardHandler.logger = l
		}
	}
}

// WithDocs mounts API documentation routes.
func WithDocs(register func(chi.Router)) Option {
	return func(s *Server) {
		s.docs = register
	}
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider, opts ...Option) *Server {
	s := &Server{
		healthHandler:  NewHealthHandler(),
		statsHandler:   NewStatsHandler(statsProvider),
		trophyHandler:  NewTrophyHandler(deps),
		cardHandler:    NewCardHandler(deps),
		metricsHandler: NewMetricsHandler(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handler returns the chi router with all routes mounted.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	r.Handle("/metrics", s.metricsHandler)

	r.Route("/v1", func(r chi.Router) {
		r.Get("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
		r.Post("/trophies", MetricsMiddleware(s.trophyHandler.HandleTrophies, "trophies"))
		r.Post("/card", MetricsMiddleware(s.cardHandler.HandleCard, "card"))
	})

	if s.docs != nil {
		s.docs(r)
	}
	return r
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// decodeMetrics reads a JSON metrics body. An empty body is a zero profile.
func decodeMetrics(w http.ResponseWriter, r *http.Request, limit int64) (trophy.Metrics, error) {
	var m trophy.Metrics
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, limit))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&m); err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.Is(err, io.EOF):
			return m, nil
		case errors.As(err, &tooLarge):
			return m, ErrBodyTooLarge
		default:
			return m, errors.Join(ErrBadRequest, err)
		}
	}
	return m, nil
}

// writeFailure maps handler errors onto status codes.
func writeFailure(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrBodyTooLarge):
		writeError(w, http.StatusRequestEntityTooLarge, "body_too_large", err)
	case errors.Is(err, ErrInvalidParam):
		writeError(w, http.StatusBadRequest, "invalid_param", err)
	case errors.Is(err, ErrBadRequest):
		writeError(w, http.StatusBadRequest, "bad_request", err)
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", err)
	}
}
