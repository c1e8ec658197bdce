// Chat HTTP handlers.
//
// This file exposes the chat generation endpoint:
//   - POST /chat/generate
//
// Handlers are transport-thin: they validate input, call application services,
// and translate results into HTTP responses. Chat generation deliberately has
// no handler-visible failure mode beyond input validation: provider outages
// resolve to a persona fallback inside the service.
package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nandi-platform/nandi-gateway/internal/domain"
)

//
// Service contracts (context-aware)
//

// ChatGenerator defines the chat generation operation consumed by HTTP
// handlers.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type ChatGenerator interface {
	// Generate produces a persona reply for req. It never fails; provider
	// errors resolve to a fallback response.
	Generate(ctx context.Context, req domain.ChatRequest) domain.ChatResponse
}

// PointsCalculator defines the points operations consumed by HTTP handlers.
type PointsCalculator interface {
	// Calculate converts session telemetry into a points breakdown.
	Calculate(ctx context.Context, metrics domain.SessionMetrics) domain.PointsBreakdown
	// Constants returns the static values behind the formula.
	Constants() domain.PointsCalculations
}

// WisdomGenerator defines the companion-wisdom operation consumed by HTTP
// handlers.
type WisdomGenerator interface {
	// Generate produces a short piece of wisdom, or an error when the
	// provider fails.
	Generate(ctx context.Context, req domain.WisdomRequest) (domain.WisdomResponse, error)
}

// PromptRefresher reloads the prompt catalog from its backing file.
type PromptRefresher interface {
	Refresh() error
}

//
// Handler wiring
//

// Handlers groups HTTP endpoints for chat, points, wisdom, and administration.
// It depends on abstract service interfaces to keep transport concerns
// separate from business logic.
type Handlers struct {
	chatSvc   ChatGenerator
	pointsSvc PointsCalculator
	wisdomSvc WisdomGenerator
	catalog   PromptRefresher
	stats     StatsProvider
}

// New constructs and returns a Handlers instance bound to the given services.
func New(chatSvc ChatGenerator, pointsSvc PointsCalculator, wisdomSvc WisdomGenerator, catalog PromptRefresher, stats StatsProvider) *Handlers {
	return &Handlers{
		chatSvc:   chatSvc,
		pointsSvc: pointsSvc,
		wisdomSvc: wisdomSvc,
		catalog:   catalog,
		stats:     stats,
	}
}

//
// Handlers
//

// GenerateChat godoc
// @ID          generateChat
// @Summary     Generate a persona chat response
// @Description Produces an AI guide reply for the given persona. Unknown personas degrade to the default guide; provider outages resolve to a fallback reply rather than an error.
// @Tags        Chat
// @Accept      json
// @Produce     json
//
// @Param       X-API-Key  header  string  false "API key"  example(development_key)
// @Param       body       body    domain.ChatRequest  true  "Chat payload"
//
// @Success     200  {object}  domain.ChatResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     403  {object}  handlers.ErrorResponse  "Invalid API key"
// @Router      /chat/generate [post]
func (h *Handlers) GenerateChat(c *gin.Context) {
	var req domain.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}

	resp := h.chatSvc.Generate(c.Request.Context(), req)
	ok(c, http.StatusOK, resp)
}
