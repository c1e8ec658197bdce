package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/nandi-platform/nandi-gateway/internal/domain"
	"github.com/nandi-platform/nandi-gateway/internal/llm"
)

func TestWisdomService_Generate(t *testing.T) {
	var gotReq llm.CompletionRequest
	svc := &WisdomService{
		Provider: llm.ProviderFunc(func(_ context.Context, req llm.CompletionRequest) (string, error) {
			gotReq = req
			return "  Patience is the quiet river.  ", nil
		}),
	}

	got, err := svc.Generate(context.Background(), domain.WisdomRequest{
		PetType:         "cow",
		InteractionType: "feeding",
		PetName:         "Nandi",
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if got.Wisdom != "Patience is the quiet river." {
		t.Errorf("Wisdom = %q, want trimmed text", got.Wisdom)
	}

	if !strings.Contains(gotReq.SystemPrompt, "You are Nandi, a wise cow companion") {
		t.Errorf("SystemPrompt = %q", gotReq.SystemPrompt)
	}
	if !strings.Contains(gotReq.SystemPrompt, "'feeding'") {
		t.Errorf("SystemPrompt missing interaction type: %q", gotReq.SystemPrompt)
	}
	if len(gotReq.Messages) != 1 || gotReq.Messages[0].Content != "Please share your wisdom." {
		t.Errorf("Messages = %+v", gotReq.Messages)
	}
	if gotReq.Temperature != 0.8 || gotReq.MaxTokens != 150 {
		t.Errorf("sampling params = %v/%v", gotReq.Temperature, gotReq.MaxTokens)
	}
}

func TestWisdomService_Generate_ProviderError(t *testing.T) {
	svc := &WisdomService{
		Provider: llm.ProviderFunc(func(context.Context, llm.CompletionRequest) (string, error) {
			return "", errors.New("quota exceeded")
		}),
	}

	_, err := svc.Generate(context.Background(), domain.WisdomRequest{
		PetType: "cow", InteractionType: "play", PetName: "Nandi",
	})
	if !errors.Is(err, ErrProviderFailure) {
		t.Fatalf("err = %v, want ErrProviderFailure", err)
	}
	if !strings.Contains(err.Error(), "quota exceeded") {
		t.Errorf("err = %v, want wrapped cause", err)
	}
}
