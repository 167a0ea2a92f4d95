package api

import (
	"context"
	"net/http"

	service "github.com/okian/trophy/internal/app"
	"github.com/okian/trophy/internal/adapters/render"
	"github.com/okian/trophy/internal/domain/trophy"
	"github.com/okian/trophy/pkg/logger"
)

// HeaderRenderID carries the id of a rendered card.
const HeaderRenderID = "X-Render-ID"

// CardDependencies defines the interface for card rendering.
type CardDependencies interface {
	RenderCard(ctx context.Context, m trophy.Metrics, q trophy.Query, opts render.CardOptions) (service.Card, error)
	CardDefaults() render.CardOptions
}

// CardHandler handles card rendering requests.
type CardHandler struct {
	deps    CardDependencies
	logger  logger.Logger
	maxBody int64
}

// NewCardHandler creates a new card handler.
func NewCardHandler(deps CardDependencies) *CardHandler {
	return &CardHandler{deps: deps, logger: logger.Nop(), maxBody: defaultMaxBodyBytes}
}

// HandleCard handles POST /v1/card requests.
func (h *CardHandler) HandleCard(w http.ResponseWriter, r *http.Request) {
	const op = "card"

	values := r.URL.Query()
	opts, err := parseCardOptions(values, h.deps.CardDefaults())
	if err != nil {
		writeFailure(w, wrap(op, err))
		return
	}

	m, err := decodeMetrics(w, r, h.maxBody)
	if err != nil {
		writeFailure(w, wrap(op, err))
		return
	}

	card, err := h.deps.RenderCard(r.Context(), m, parseQuery(values), opts)
	if err != nil {
		h.logger.Error(r.Context(), "card render failed", logger.Error(err))
		writeFailure(w, wrap(op, err))
		return
	}

	w.Header().Set("Content-Type", "image/svg+xml; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set(HeaderRenderID, card.ID)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(card.SVG))
}
