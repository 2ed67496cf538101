package llm

import "context"

type Provider interface {
	Generate(ctx context.Context, systemPrompt string, userPrompt string) (string, error)
}
