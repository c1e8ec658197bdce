package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/nandi-platform/nandi-gateway/internal/domain"
)

// ErrEmptyCompletion is returned when the provider answers without any text
// candidate. Callers treat it like any other provider failure.
var ErrEmptyCompletion = errors.New("provider returned no text candidates")

// Gemini is a Provider backed by the Google generative AI API.
type Gemini struct {
	client *genai.Client
	model  string
}

// NewGemini dials the generative AI API with the given key and model id.
func NewGemini(ctx context.Context, apiKey, model string) (*Gemini, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return &Gemini{client: client, model: model}, nil
}

// Close releases the underlying API client.
func (g *Gemini) Close() error {
	if g.client == nil {
		return nil
	}
	return g.client.Close()
}

// Complete sends the assembled request as a chat turn. Prior messages become
// session history (assistant turns map to the provider's "model" role) and
// the final user message is submitted for generation.
func (g *Gemini) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	if len(req.Messages) == 0 {
		return "", errors.New("completion request has no messages")
	}
	last := req.Messages[len(req.Messages)-1]
	if last.Role != domain.RoleUser {
		return "", errors.New("final completion message must be a user turn")
	}

	model := g.client.GenerativeModel(g.model)
	if req.SystemPrompt != "" {
		model.SystemInstruction = &genai.Content{
			Parts: []genai.Part{genai.Text(req.SystemPrompt)},
		}
	}
	temp := req.Temperature
	maxTokens := req.MaxTokens
	model.GenerationConfig = genai.GenerationConfig{
		Temperature:     &temp,
		MaxOutputTokens: &maxTokens,
	}

	session := model.StartChat()
	session.History = toHistory(req.Messages[:len(req.Messages)-1])

	resp, err := session.SendMessage(ctx, genai.Text(last.Content))
	if err != nil {
		return "", fmt.Errorf("gemini completion failed: %w", err)
	}
	return extractText(resp)
}

// toHistory converts prior conversation turns to provider content. Assistant
// turns use the provider's "model" role; everything else is a user turn.
func toHistory(msgs []domain.ConversationMessage) []*genai.Content {
	out := make([]*genai.Content, 0, len(msgs))
	for _, m := range msgs {
		role := "user"
		if m.Role == domain.RoleAssistant {
			role = "model"
		}
		out = append(out, &genai.Content{
			Role:  role,
			Parts: []genai.Part{genai.Text(m.Content)},
		})
	}
	return out
}

// extractText concatenates the text parts of the first candidate.
func extractText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", ErrEmptyCompletion
	}
	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			b.WriteString(string(txt))
		}
	}
	if b.Len() == 0 {
		return "", ErrEmptyCompletion
	}
	return b.String(), nil
}
