// Administrative HTTP handlers.
//
// This file exposes operator-only endpoints, always behind the strict API-key
// gate:
//   - POST /admin/prompts/refresh     (hot-reload the prompt catalog)
//   - GET  /admin/interactions/stats  (aggregate interaction telemetry)
package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nandi-platform/nandi-gateway/internal/repo"
	"github.com/nandi-platform/nandi-gateway/internal/utils"
)

// StatsProvider defines the telemetry aggregation operation consumed by the
// admin handlers.
type StatsProvider interface {
	// Stats aggregates interactions recorded since the cutoff; a zero cutoff
	// aggregates everything.
	Stats(ctx context.Context, since time.Time) (repo.InteractionStats, error)
}

// RefreshResponse acknowledges a successful prompt catalog reload.
type RefreshResponse struct {
	Status string `json:"status" example:"refreshed"`
}

// RefreshPrompts godoc
// @ID          refreshPrompts
// @Summary     Reload the prompt catalog
// @Description Re-reads the prompts file and atomically swaps the in-memory catalog. On failure the catalog is emptied and an error is returned.
// @Tags        Admin
// @Produce     json
//
// @Param       X-API-Key  header  string  true "API key"  example(development_key)
//
// @Success     200  {object}  handlers.RefreshResponse
// @Failure     403  {object}  handlers.ErrorResponse  "Invalid API key"
// @Failure     500  {object}  handlers.ErrorResponse  "Reload failed"
// @Router      /admin/prompts/refresh [post]
func (h *Handlers) RefreshPrompts(c *gin.Context) {
	if err := h.catalog.Refresh(); err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeRefreshFailed, err.Error())
		return
	}
	ok(c, http.StatusOK, RefreshResponse{Status: "refreshed"})
}

// GetInteractionStats godoc
// @ID          getInteractionStats
// @Summary     Interaction telemetry stats
// @Description Returns aggregate counts, fallback rate inputs, and per-persona volumes. The optional days parameter restricts the window; 0 or absent means all time.
// @Tags        Admin
// @Produce     json
//
// @Param       X-API-Key  header  string  true  "API key"  example(development_key)
// @Param       days       query   int     false "Window in days (0 = all time)"  example(7)
//
// @Success     200  {object}  repo.InteractionStats
// @Failure     403  {object}  handlers.ErrorResponse  "Invalid API key"
// @Failure     500  {object}  handlers.ErrorResponse  "Query failed"
// @Router      /admin/interactions/stats [get]
func (h *Handlers) GetInteractionStats(c *gin.Context) {
	days := utils.AtoiDefault(c.Query("days"), 0)

	var since time.Time
	if days > 0 {
		since = time.Now().UTC().AddDate(0, 0, -days)
	}

	stats, err := h.stats.Stats(c.Request.Context(), since)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeStatsFailed, err.Error())
		return
	}
	ok(c, http.StatusOK, stats)
}
