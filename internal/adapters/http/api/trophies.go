package api

import (
	"context"
	"net/http"

	"github.com/okian/trophy/internal/domain/trophy"
	"github.com/okian/trophy/pkg/logger"
)

// TrophyDependencies defines the interface for trophy queries.
type TrophyDependencies interface {
	Trophies(ctx context.Context, m trophy.Metrics, q trophy.Query) (trophy.Collection, error)
}

// TrophyHandler handles trophy list requests.
type TrophyHandler struct {
	deps    TrophyDependencies
	logger  logger.Logger
	maxBody int64
}

// NewTrophyHandler creates a new trophy handler.
func NewTrophyHandler(deps TrophyDependencies) *TrophyHandler {
	return &TrophyHandler{deps: deps, logger: logger.Nop(), maxBody: defaultMaxBodyBytes}
}

type trophiesResponse struct {
	Count    int           `json:"count"`
	Trophies []trophy.View `json:"trophies"`
}

// HandleTrophies handles POST /v1/trophies requests.
func (h *TrophyHandler) HandleTrophies(w http.ResponseWriter, r *http.Request) {
	const op = "trophies"

	m, err := decodeMetrics(w, r, h.maxBody)
	if err != nil {
		writeFailure(w, wrap(op, err))
		return
	}

	c, err := h.deps.Trophies(r.Context(), m, parseQuery(r.URL.Query()))
	if err != nil {
		h.logger.Error(r.Context(), "trophy query failed", logger.Error(err))
		writeFailure(w, wrap(op, err))
		return
	}

	writeJSON(w, http.StatusOK, trophiesResponse{Count: c.Len(), Trophies: c.Views()})
}
