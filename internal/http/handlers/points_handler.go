// Points HTTP handlers.
//
// This file exposes the gamification endpoints:
//   - POST /session/metrics       (submit a finished session, get points)
//   - GET  /points/calculations   (static formula constants)
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nandi-platform/nandi-gateway/internal/domain"
)

// SubmitSessionMetrics godoc
// @ID          submitSessionMetrics
// @Summary     Submit session metrics
// @Description Converts a finished session's telemetry into a points breakdown.
// @Tags        Points
// @Accept      json
// @Produce     json
//
// @Param       X-API-Key  header  string  false "API key"  example(development_key)
// @Param       body       body    domain.SessionMetrics  true  "Session metrics payload"
//
// @Success     200  {object}  domain.PointsBreakdown
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     403  {object}  handlers.ErrorResponse  "Invalid API key"
// @Router      /session/metrics [post]
func (h *Handlers) SubmitSessionMetrics(c *gin.Context) {
	var metrics domain.SessionMetrics
	if err := c.ShouldBindJSON(&metrics); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}

	ok(c, http.StatusOK, h.pointsSvc.Calculate(c.Request.Context(), metrics))
}

// GetPointsCalculations godoc
// @ID          getPointsCalculations
// @Summary     Points formula constants
// @Description Returns the static constants behind the points formula so clients can render explanations.
// @Tags        Points
// @Produce     json
//
// @Param       X-API-Key  header  string  false "API key"  example(development_key)
//
// @Success     200  {object}  domain.PointsCalculations
// @Failure     403  {object}  handlers.ErrorResponse  "Invalid API key"
// @Router      /points/calculations [get]
func (h *Handlers) GetPointsCalculations(c *gin.Context) {
	ok(c, http.StatusOK, h.pointsSvc.Constants())
}
