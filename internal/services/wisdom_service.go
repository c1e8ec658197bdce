// Package services – WisdomService
//
// This file implements companion-wisdom generation: a single short completion
// produced from a templated system instruction describing the user's virtual
// companion. Unlike chat, this path has no fallback catalog; provider errors
// are wrapped in ErrProviderFailure and propagated to the caller.
package services

import (
	"context"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/nandi-platform/nandi-gateway/internal/domain"
	"github.com/nandi-platform/nandi-gateway/internal/llm"
)

const (
	// wisdomTemperature is higher than chat's; short aphorisms benefit from
	// more varied sampling.
	wisdomTemperature = 0.8
	// wisdomMaxTokens bounds the 1-3 sentence reply.
	wisdomMaxTokens = 150

	wisdomUserTurn = "Please share your wisdom."
)

// WisdomService generates short companion wisdom via the completion provider.
type WisdomService struct {
	Provider llm.Provider
}

// Generate produces a short piece of wisdom voiced by the named companion.
// Provider failures are returned wrapped in ErrProviderFailure.
func (s *WisdomService) Generate(ctx context.Context, req domain.WisdomRequest) (domain.WisdomResponse, error) {
	tr := otel.Tracer("services/WisdomService")
	ctx, span := tr.Start(ctx, "Generate",
		trace.WithAttributes(
			attribute.String("wisdom.pet_type", req.PetType),
			attribute.String("wisdom.interaction_type", req.InteractionType),
		),
	)
	defer span.End()

	text, err := s.Provider.Complete(ctx, llm.CompletionRequest{
		SystemPrompt: wisdomPrompt(req),
		Messages: []domain.ConversationMessage{
			{Role: domain.RoleUser, Content: wisdomUserTurn},
		},
		Temperature: wisdomTemperature,
		MaxTokens:   wisdomMaxTokens,
	})
	if err != nil {
		return domain.WisdomResponse{}, fmt.Errorf("%w: %v", ErrProviderFailure, err)
	}

	return domain.WisdomResponse{Wisdom: strings.TrimSpace(text)}, nil
}

func wisdomPrompt(req domain.WisdomRequest) string {
	return fmt.Sprintf(
		"You are %s, a wise %s companion in the Nandi spiritual wellness platform. "+
			"A user has chosen to interact with you through '%s'. "+
			"Generate a short piece of spiritual wisdom or advice (1-3 sentences) that would resonate with this interaction. "+
			"The wisdom should incorporate Vedic principles and be gentle and insightful.",
		req.PetName, req.PetType, req.InteractionType,
	)
}
