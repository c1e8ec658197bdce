// Package middleware contains shared Gin middleware used by the HTTP layer.
//
// This file implements the shared-secret API-key gate used by the gateway.
// Clients authenticate with the X-API-Key header; the expected value comes
// from configuration. In development the gate can be relaxed so local
// frontends work without credentials, while administrative routes install a
// strict instance regardless of environment.
package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
)

// apiKeyHeader is the HTTP header carrying the client credential.
const apiKeyHeader = "X-API-Key"

// APIKeyAuth returns a Gin middleware that rejects requests whose X-API-Key
// header does not match key.
//
// When relaxed is true the check is skipped entirely; pass the development
// flag here for public routes and false for admin routes. Comparison is
// constant-time. Rejections emit the standard JSON error envelope:
//
//	HTTP/1.1 403 Forbidden
//	{
//	  "request_id": "<uuid>",
//	  "code":       "invalid_api_key",
//	  "message":    "invalid or missing API key"
//	}
func APIKeyAuth(key string, relaxed bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if relaxed {
			c.Next()
			return
		}

		got := c.GetHeader(apiKeyHeader)
		if got != "" && subtle.ConstantTimeCompare([]byte(got), []byte(key)) == 1 {
			c.Next()
			return
		}

		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"request_id": c.Writer.Header().Get("X-Request-ID"),
			"code":       "invalid_api_key",
			"message":    "invalid or missing API key",
		})
	}
}
