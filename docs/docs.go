// Package docs holds the generated OpenAPI document registered with swag.
// Regenerate with `swag init -g cmd/server/main.go` after changing handler
// annotations.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/chat/generate": {
            "post": {
                "description": "Produces an AI guide reply for the given persona. Unknown personas degrade to the default guide; provider outages resolve to a fallback reply rather than an error.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Chat"],
                "summary": "Generate a persona chat response",
                "operationId": "generateChat",
                "parameters": [
                    {"type": "string", "example": "development_key", "name": "X-API-Key", "in": "header"},
                    {"description": "Chat payload", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/domain.ChatRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.ChatResponse"}},
                    "400": {"description": "Bad request", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "403": {"description": "Invalid API key", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/session/metrics": {
            "post": {
                "description": "Converts a finished session's telemetry into a points breakdown.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Points"],
                "summary": "Submit session metrics",
                "operationId": "submitSessionMetrics",
                "parameters": [
                    {"type": "string", "example": "development_key", "name": "X-API-Key", "in": "header"},
                    {"description": "Session metrics payload", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/domain.SessionMetrics"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.PointsBreakdown"}},
                    "400": {"description": "Bad request", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "403": {"description": "Invalid API key", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/points/calculations": {
            "get": {
                "description": "Returns the static constants behind the points formula so clients can render explanations.",
                "produces": ["application/json"],
                "tags": ["Points"],
                "summary": "Points formula constants",
                "operationId": "getPointsCalculations",
                "parameters": [
                    {"type": "string", "example": "development_key", "name": "X-API-Key", "in": "header"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.PointsCalculations"}},
                    "403": {"description": "Invalid API key", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/wisdom/generate": {
            "post": {
                "description": "Produces a short piece of spiritual wisdom voiced by the user's virtual companion.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Wisdom"],
                "summary": "Generate companion wisdom",
                "operationId": "generateWisdom",
                "parameters": [
                    {"type": "string", "example": "development_key", "name": "X-API-Key", "in": "header"},
                    {"description": "Wisdom payload", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/domain.WisdomRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.WisdomResponse"}},
                    "400": {"description": "Bad request", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "403": {"description": "Invalid API key", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "500": {"description": "Provider failure", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/admin/prompts/refresh": {
            "post": {
                "description": "Re-reads the prompts file and atomically swaps the in-memory catalog. On failure the catalog is emptied and an error is returned.",
                "produces": ["application/json"],
                "tags": ["Admin"],
                "summary": "Reload the prompt catalog",
                "operationId": "refreshPrompts",
                "parameters": [
                    {"type": "string", "example": "development_key", "name": "X-API-Key", "in": "header", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.RefreshResponse"}},
                    "403": {"description": "Invalid API key", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "500": {"description": "Reload failed", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/admin/interactions/stats": {
            "get": {
                "description": "Returns aggregate counts, fallback rate inputs, and per-persona volumes. The optional days parameter restricts the window; 0 or absent means all time.",
                "produces": ["application/json"],
                "tags": ["Admin"],
                "summary": "Interaction telemetry stats",
                "operationId": "getInteractionStats",
                "parameters": [
                    {"type": "string", "example": "development_key", "name": "X-API-Key", "in": "header", "required": true},
                    {"type": "integer", "example": 7, "name": "days", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/repo.InteractionStats"}},
                    "403": {"description": "Invalid API key", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "500": {"description": "Query failed", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "domain.ChatRequest": {
            "type": "object",
            "required": ["message", "persona"],
            "properties": {
                "message": {"type": "string", "example": "How do my actions shape my future?"},
                "persona": {"type": "string", "example": "karma"},
                "sessionId": {"type": "string", "example": "a1b2c3"},
                "context": {"type": "array", "items": {"$ref": "#/definitions/domain.ConversationMessage"}}
            }
        },
        "domain.ConversationMessage": {
            "type": "object",
            "required": ["role", "content"],
            "properties": {
                "role": {"type": "string", "enum": ["user", "assistant"], "example": "user"},
                "content": {"type": "string", "example": "What is karma yoga?"}
            }
        },
        "domain.ChatResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "id": {"type": "string"},
                "timestamp": {"type": "string"},
                "qualityScore": {"type": "integer", "example": 8},
                "scoreReason": {"type": "string"},
                "persona": {"type": "string", "example": "karma"}
            }
        },
        "domain.SessionMetrics": {
            "type": "object",
            "required": ["persona"],
            "properties": {
                "persona": {"type": "string", "example": "dharma"},
                "durationSeconds": {"type": "integer", "example": 720},
                "messageCount": {"type": "integer", "example": 12}
            }
        },
        "domain.PointsBreakdown": {
            "type": "object",
            "properties": {
                "pointsEarned": {"type": "integer", "example": 77},
                "totalPoints": {"type": "integer", "example": 1077},
                "breakdown": {"type": "object", "additionalProperties": {"type": "integer"}}
            }
        },
        "domain.PointsCalculations": {
            "type": "object",
            "properties": {
                "base_points_per_question": {"type": "integer", "example": 5},
                "time_points_per_minute": {"type": "integer", "example": 1},
                "quality_multipliers": {"type": "object", "additionalProperties": {"type": "number"}},
                "streak_bonus": {"type": "integer", "example": 5},
                "milestone_bonuses": {"type": "object", "additionalProperties": {"type": "integer"}}
            }
        },
        "domain.WisdomRequest": {
            "type": "object",
            "required": ["pet_type", "interaction_type", "pet_name"],
            "properties": {
                "pet_type": {"type": "string", "example": "elephant"},
                "interaction_type": {"type": "string", "example": "feeding"},
                "pet_name": {"type": "string", "example": "Bodhi"}
            }
        },
        "domain.WisdomResponse": {
            "type": "object",
            "properties": {
                "wisdom": {"type": "string"}
            }
        },
        "handlers.ErrorResponse": {
            "type": "object",
            "properties": {
                "request_id": {"type": "string", "example": "123e4567-e89b-12d3-a456-426614174000"},
                "code": {"type": "string", "example": "bad_request"},
                "message": {"type": "string", "example": "invalid JSON body"}
            }
        },
        "handlers.RefreshResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string", "example": "refreshed"}
            }
        },
        "repo.InteractionStats": {
            "type": "object",
            "properties": {
                "total": {"type": "integer"},
                "fallbacks": {"type": "integer"},
                "average_score": {"type": "number"},
                "by_persona": {"type": "array", "items": {"$ref": "#/definitions/repo.PersonaCount"}}
            }
        },
        "repo.PersonaCount": {
            "type": "object",
            "properties": {
                "persona": {"type": "string"},
                "count": {"type": "integer"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Nandi AI Gateway API",
	Description:      "Persona chat orchestration, points, and companion wisdom for the Nandi spiritual wellness platform.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
