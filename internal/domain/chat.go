// Package domain defines the data types exchanged between the HTTP layer and
// the application services: chat requests and responses, session metrics,
// points breakdowns, and the persisted interaction telemetry model.
package domain

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Persona identifies one of the fixed AI guide personalities. Each persona
// selects a system prompt and a fallback string from the prompt catalog.
type Persona string

// The supported personas. Unknown values degrade to PersonaKarma at the
// orchestrator level; they are never a hard error.
const (
	PersonaKarma  Persona = "karma"
	PersonaDharma Persona = "dharma"
	PersonaAtma   Persona = "atma"
)

// DefaultPersona is the persona whose prompt and fallback text are used when
// the requested persona is unknown or its catalog entry is missing.
const DefaultPersona = PersonaKarma

// ParsePersona normalizes s to a Persona. The second return value reports
// whether s named one of the supported personas.
func ParsePersona(s string) (Persona, bool) {
	switch p := Persona(strings.ToLower(strings.TrimSpace(s))); p {
	case PersonaKarma, PersonaDharma, PersonaAtma:
		return p, true
	default:
		return p, false
	}
}

// DisplayName returns the user-facing capitalized persona name (e.g. "Karma").
func (p Persona) DisplayName() string {
	return cases.Title(language.English).String(string(p))
}

// Message roles accepted in conversation context.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ConversationMessage is a single prior turn supplied by the client. Context
// messages are owned by the request that carries them and are never persisted.
type ConversationMessage struct {
	Role    string `json:"role" binding:"required,oneof=user assistant" example:"user"`
	Content string `json:"content" binding:"required" example:"What is karma yoga?"`
}

// ChatRequest is the payload for the chat generation endpoint. Context, when
// present, is ordered oldest to newest; the current Message is appended as the
// final user turn before submission to the provider.
type ChatRequest struct {
	Message   string                `json:"message" binding:"required" example:"How do my actions shape my future?"`
	Persona   Persona               `json:"persona" binding:"required" example:"karma"`
	SessionID string                `json:"sessionId,omitempty" example:"a1b2c3"`
	Context   []ConversationMessage `json:"context,omitempty"`
}

// ChatResponse is the reply returned by the chat generation endpoint. ID and
// Timestamp are generated once, when the response is computed; a cache hit
// replays the originally generated values without mutation.
type ChatResponse struct {
	Message      string  `json:"message" example:"Every action plants a seed…"`
	ID           string  `json:"id" example:"141add05-4415-4938-b5a1-17e0d3171aff"`
	Timestamp    string  `json:"timestamp" example:"2025-04-02T10:41:55Z"`
	QualityScore int     `json:"qualityScore" example:"8"`
	ScoreReason  string  `json:"scoreReason" example:"Thoughtful question about cause and effect"`
	Persona      Persona `json:"persona,omitempty" example:"karma"`
}
