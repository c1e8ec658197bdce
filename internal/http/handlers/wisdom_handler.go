// Wisdom HTTP handlers.
//
// This file exposes the companion wisdom endpoint:
//   - POST /wisdom/generate
//
// Unlike chat, wisdom generation has no fallback catalog; provider failures
// surface as HTTP 500 with a stable error code.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nandi-platform/nandi-gateway/internal/domain"
)

// GenerateWisdom godoc
// @ID          generateWisdom
// @Summary     Generate companion wisdom
// @Description Produces a short piece of spiritual wisdom voiced by the user's virtual companion.
// @Tags        Wisdom
// @Accept      json
// @Produce     json
//
// @Param       X-API-Key  header  string  false "API key"  example(development_key)
// @Param       body       body    domain.WisdomRequest  true  "Wisdom payload"
//
// @Success     200  {object}  domain.WisdomResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     403  {object}  handlers.ErrorResponse  "Invalid API key"
// @Failure     500  {object}  handlers.ErrorResponse  "Provider failure"
// @Router      /wisdom/generate [post]
func (h *Handlers) GenerateWisdom(c *gin.Context) {
	var req domain.WisdomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}

	resp, err := h.wisdomSvc.Generate(c.Request.Context(), req)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeWisdomFailed, err.Error())
		return
	}
	ok(c, http.StatusOK, resp)
}
