package groq

import (
	"context"
	"errors"
	"sync"

	"github.com/documind/ml-service/internal/config"
	"github.com/documind/ml-service/internal/rag/llm"
	"github.com/documind/ml-service/pkg/logger_i"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

type llmClient struct {
	client    openai.Client
	modelName string
}

var logger *logger_i.Logger
var groqClient *llmClient
var once sync.Once

// GetGroqClient lazily builds the process-wide Groq client. Groq speaks
// the OpenAI chat-completions wire format, so the openai client with a
// base URL override is the whole integration.
func GetGroqClient(ctx context.Context, apikey string, modelName string) llm.Provider {
	once.Do(func() {
		logger = logger_i.NewLogger("llm_groq")
		groqClient = &llmClient{
			client: openai.NewClient(
				option.WithAPIKey(apikey),
				option.WithBaseURL(config.GroqBaseURL),
			),
			modelName: modelName,
		}
		logger.Info("Groq client created", "model", modelName)
	})

	if groqClient == nil {
		return nil
	}
	return groqClient
}

func (c *llmClient) Generate(ctx context.Context, systemPrompt string, userPrompt string) (string, error) {
	result, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.modelName,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(userPrompt),
		},
		Temperature: openai.Float(config.ModelTemperature),
		TopP:        openai.Float(config.ModelTopP),
		MaxTokens:   openai.Int(config.ModelMaxTokens),
	})
	if err != nil {
		return "", err
	}
	if len(result.Choices) == 0 {
		return "", errors.New("groq: response has no choices")
	}
	return result.Choices[0].Message.Content, nil
}
