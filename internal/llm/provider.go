// Package llm abstracts the external completion provider behind a small
// interface. The chat orchestrator treats the provider as opaque: any
// transport, auth, or retry policy lives here (or in a decorator), never in
// the orchestrator.
package llm

import (
	"context"

	"github.com/nandi-platform/nandi-gateway/internal/domain"
)

// CompletionRequest carries one fully assembled generation request. Messages
// is ordered oldest to newest and its final entry must be the current user
// turn; SystemPrompt is delivered as the provider's system instruction.
type CompletionRequest struct {
	SystemPrompt string
	Messages     []domain.ConversationMessage
	Temperature  float32
	MaxTokens    int32
}

// Provider is the single contract the rest of the service consumes.
// Implementations must honor ctx for cancellation and timeouts; the caller
// enforces no timeout of its own.
type Provider interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}

// ProviderFunc adapts a function to the Provider interface.
type ProviderFunc func(ctx context.Context, req CompletionRequest) (string, error)

// Complete implements Provider.
func (f ProviderFunc) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	return f(ctx, req)
}
