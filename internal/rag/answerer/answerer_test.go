package answerer

import (
	"context"
	"errors"
	"strings"
	"testing"
)

type mockProvider struct {
	onGenerate func(ctx context.Context, system string, prompt string) (string, error)
}

func (m *mockProvider) Generate(ctx context.Context, system string, prompt string) (string, error) {
	return m.onGenerate(ctx, system, prompt)
}

func TestAnswer_Scenarios(t *testing.T) {
	longContext := strings.Repeat("0123456789", 60) //600 chars

	tests := []struct {
		name     string
		context  string
		generate func(ctx context.Context, system string, prompt string) (string, error)
		want     func(t *testing.T, got string)
	}{
		{
			name:    "Success_Uses_Generated_Answer",
			context: "Policy: refunds within 30 days.",
			generate: func(ctx context.Context, system string, prompt string) (string, error) {
				if !strings.Contains(prompt, "Policy: refunds within 30 days.") {
					t.Error("Prompt does not embed the retrieved context verbatim")
				}
				if !strings.Contains(prompt, "USER QUESTION: what is the refund policy?") {
					t.Error("Prompt does not embed the user query")
				}
				return "Refunds are accepted within 30 days.", nil
			},
			want: func(t *testing.T, got string) {
				if got != "Refunds are accepted within 30 days." {
					t.Errorf("Answer = %q, want generated text", got)
				}
			},
		},
		{
			name:    "Provider_Error_Falls_Back",
			context: longContext,
			generate: func(ctx context.Context, system string, prompt string) (string, error) {
				return "", errors.New("provider down")
			},
			want: func(t *testing.T, got string) {
				if got != Fallback(longContext, "what is the refund policy?") {
					t.Errorf("Answer != deterministic fallback:\n%s", got)
				}
			},
		},
		{
			name:    "Degenerate_Reply_Falls_Back",
			context: "Some context here.",
			generate: func(ctx context.Context, system string, prompt string) (string, error) {
				return "   ok   ", nil //under 10 chars after trim
			},
			want: func(t *testing.T, got string) {
				if !strings.Contains(got, "direct extract from your documents") {
					t.Errorf("Expected fallback template, got %q", got)
				}
			},
		},
		{
			name:    "Empty_Context_Short_Circuits",
			context: "   \n ",
			generate: func(ctx context.Context, system string, prompt string) (string, error) {
				t.Error("Provider must not be called with empty context")
				return "", nil
			},
			want: func(t *testing.T, got string) {
				if !strings.Contains(got, "couldn't find any relevant information") {
					t.Errorf("Expected no-context message, got %q", got)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := New(&mockProvider{onGenerate: tt.generate})
			got := a.Answer(context.Background(), tt.context, "what is the refund policy?")
			tt.want(t, got)
		})
	}
}

func TestFallback_Truncation(t *testing.T) {
	long := strings.Repeat("x", 700)
	got := Fallback(long, "q")

	if !strings.Contains(got, strings.Repeat("x", 500)+"...") {
		t.Error("Fallback should keep the first 500 chars followed by an ellipsis")
	}
	if strings.Contains(got, strings.Repeat("x", 501)) {
		t.Error("Fallback kept more than 500 context chars")
	}

	short := "short context"
	if !strings.Contains(Fallback(short, "q"), short) || strings.Contains(Fallback(short, "q"), short+"...") {
		t.Error("Short context must be embedded whole, without an ellipsis")
	}
}
