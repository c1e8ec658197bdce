// Package services – ChatService
//
// This file implements the ChatService, the orchestrator of the chat
// pipeline: it consults the response cache for context-free requests,
// assembles the provider request from the prompt catalog and any supplied
// conversation history, parses the embedded quality signal out of the raw
// reply, and resolves every provider failure to a persona fallback instead of
// an error. Generate never fails from the caller's perspective.
//
// Observability: public methods are OpenTelemetry-instrumented; spans carry
// the persona and cache outcome.
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/nandi-platform/nandi-gateway/internal/domain"
	"github.com/nandi-platform/nandi-gateway/internal/llm"
	"github.com/nandi-platform/nandi-gateway/internal/quality"
	"github.com/nandi-platform/nandi-gateway/internal/repo"
)

const (
	// chatTemperature is the fixed sampling temperature for chat requests.
	chatTemperature = 0.7
	// chatMaxTokens bounds the generated reply length.
	chatMaxTokens = 1024

	// fallbackScore is the neutral-to-positive score attached to fallback
	// responses; a provider failure never penalizes the user.
	fallbackScore = 7
	// fallbackReason is the fixed reason attached to fallback responses.
	fallbackReason = "Good question showing interest in spiritual growth"
)

// PromptCatalog is the prompt source consumed by ChatService. Lookups never
// fail; missing entries yield empty strings.
type PromptCatalog interface {
	// PersonaPrompt returns the system prompt for persona, or "".
	PersonaPrompt(persona domain.Persona) string
	// QualityPrompt returns the shared quality-evaluation instruction block.
	QualityPrompt() string
	// FallbackResponse returns the canned failure text for persona, or "".
	FallbackResponse(persona domain.Persona) string
}

// ResponseCache is the deterministic reply cache consumed by ChatService.
type ResponseCache interface {
	// Get returns a fresh cached response for (persona, message), if any.
	Get(persona domain.Persona, message string) (domain.ChatResponse, bool)
	// Put stores a freshly generated response for (persona, message).
	Put(persona domain.Persona, message string, value domain.ChatResponse)
}

// ChatService orchestrates chat generation. All collaborators are injected;
// the service holds no global state.
type ChatService struct {
	// Provider is the completion provider (possibly retry-decorated).
	Provider llm.Provider
	// Catalog supplies persona prompts, the quality block, and fallbacks.
	Catalog PromptCatalog
	// Cache is consulted and populated for context-free requests only.
	Cache ResponseCache
	// DB, when non-nil, receives best-effort interaction telemetry. A failed
	// insert is logged and never affects the response.
	DB *gorm.DB
}

// Generate runs the chat pipeline for req and always produces a well-formed
// response.
//
// Steps:
//  1. Context-free requests are answered from the cache when a fresh entry
//     exists; the replay keeps its originally generated ID and timestamp.
//  2. An unknown or unloaded persona degrades to the default persona's
//     prompt; it is never an error.
//  3. The provider receives one system instruction (persona prompt + quality
//     block), the context turns verbatim, and the current message as the
//     final user turn, at a fixed temperature and output bound.
//  4. On success the quality tag is parsed out of the raw text and a fresh
//     ID/UTC timestamp are minted; context-free results are then cached.
//  5. On any provider failure the persona's fallback text (default persona's
//     when absent) is returned with a short note about the cause and the
//     fixed neutral-positive score.
func (s *ChatService) Generate(ctx context.Context, req domain.ChatRequest) domain.ChatResponse {
	tr := otel.Tracer("services/ChatService")
	ctx, span := tr.Start(ctx, "Generate",
		trace.WithAttributes(
			attribute.String("chat.persona", string(req.Persona)),
			attribute.Bool("chat.has_context", len(req.Context) > 0),
		),
	)
	defer span.End()

	contextual := len(req.Context) > 0

	if !contextual {
		if cached, ok := s.Cache.Get(req.Persona, req.Message); ok {
			span.SetAttributes(attribute.Bool("chat.cache_hit", true))
			log.Debug().Str("response_id", cached.ID).Msg("serving cached chat response")
			return cached
		}
	}

	systemPrompt := s.Catalog.PersonaPrompt(req.Persona)
	if systemPrompt == "" {
		log.Warn().Str("persona", string(req.Persona)).Msg("persona prompt missing, using default persona")
		systemPrompt = s.Catalog.PersonaPrompt(domain.DefaultPersona)
	}

	messages := make([]domain.ConversationMessage, 0, len(req.Context)+1)
	messages = append(messages, req.Context...)
	messages = append(messages, domain.ConversationMessage{
		Role:    domain.RoleUser,
		Content: req.Message,
	})

	start := time.Now()
	raw, err := s.Provider.Complete(ctx, llm.CompletionRequest{
		SystemPrompt: systemPrompt + s.Catalog.QualityPrompt(),
		Messages:     messages,
		Temperature:  chatTemperature,
		MaxTokens:    chatMaxTokens,
	})
	latency := time.Since(start)

	var resp domain.ChatResponse
	if err != nil {
		resp = s.fallback(req.Persona, err)
		log.Error().Err(err).
			Str("persona", string(req.Persona)).
			Str("response_id", resp.ID).
			Dur("latency", latency).
			Msg("provider failure, serving fallback")
	} else {
		sig := quality.Parse(raw)
		resp = domain.ChatResponse{
			Message:      sig.CleanedText,
			ID:           uuid.NewString(),
			Timestamp:    time.Now().UTC().Format(time.RFC3339),
			QualityScore: sig.Score,
			ScoreReason:  sig.Reason,
			Persona:      req.Persona,
		}
	}

	s.record(ctx, resp, err != nil, latency)

	// Fallbacks are never cached; only fresh successful replies to
	// context-free requests are.
	if !contextual && err == nil {
		s.Cache.Put(req.Persona, req.Message, resp)
	}
	return resp
}

// fallback builds the provider-failure response for persona. The persona's
// fallback text is used when present, the default persona's otherwise, with
// a short machine-readable note about the cause appended.
func (s *ChatService) fallback(persona domain.Persona, cause error) domain.ChatResponse {
	text := s.Catalog.FallbackResponse(persona)
	if text == "" {
		text = s.Catalog.FallbackResponse(domain.DefaultPersona)
	}
	text = fmt.Sprintf("%s (Note: Using fallback response due to API error: %v)", text, cause)

	return domain.ChatResponse{
		Message:      text,
		ID:           uuid.NewString(),
		Timestamp:    time.Now().UTC().Format(time.RFC3339),
		QualityScore: fallbackScore,
		ScoreReason:  fallbackReason,
		Persona:      persona,
	}
}

// record writes best-effort interaction telemetry. Only score telemetry is
// stored; conversation content never reaches the database.
func (s *ChatService) record(ctx context.Context, resp domain.ChatResponse, fallback bool, latency time.Duration) {
	if s.DB == nil {
		return
	}
	rec := &domain.Interaction{
		ID:           resp.ID,
		Persona:      resp.Persona,
		QualityScore: resp.QualityScore,
		Fallback:     fallback,
		LatencyMS:    latency.Milliseconds(),
	}
	if err := repo.CreateInteraction(ctx, s.DB, rec); err != nil {
		log.Warn().Err(err).Str("response_id", resp.ID).Msg("interaction telemetry insert failed")
	}
}
