package answerer

import (
	"context"
	"fmt"
	"strings"

	"github.com/documind/ml-service/internal/config"
	"github.com/documind/ml-service/internal/rag/llm"
	"github.com/documind/ml-service/pkg/logger_i"
)

const systemPrompt = "You are a helpful assistant that provides clear, structured answers based on provided documents. Always format your responses for easy reading."

const promptTemplate = `You are a helpful AI assistant that answers questions based on provided documents.

CONTEXT FROM DOCUMENTS:
%s

USER QUESTION: %s

INSTRUCTIONS:
1. Read the context carefully and provide a clear, well-structured answer
2. Use ONLY information from the context provided
3. Format your response with:
   - A brief direct answer first
   - Key points in bullet format if applicable
   - Clear explanations
4. If the context doesn't contain enough information, say so clearly
5. Do NOT make up or hallucinate any information
6. Be concise but comprehensive

Please provide a well-formatted answer:`

const fallbackTemplate = `**Answer to: %s**

Based on the retrieved documents:

%s

*Note: This is a direct extract from your documents. For a more refined answer, please check the system logs.*`

// Answerer turns retrieved context plus a user query into a grounded
// answer. When generation fails or comes back degenerate it degrades
// to a deterministic extractive answer instead of failing.
type Answerer struct {
	provider llm.Provider
	logger   *logger_i.Logger
}

func New(provider llm.Provider) *Answerer {
	return &Answerer{
		provider: provider,
		logger:   logger_i.NewLogger("Answerer"),
	}
}

// Answer never returns an error; the fallback path cannot fail.
func (a *Answerer) Answer(ctx context.Context, contextText string, query string) string {
	if strings.TrimSpace(contextText) == "" {
		return "I couldn't find any relevant information in the documents to answer your question."
	}

	prompt := fmt.Sprintf(promptTemplate, contextText, query)
	generated, err := a.provider.Generate(ctx, systemPrompt, prompt)
	if err != nil {
		a.logger.Error("LLM generation failed, using extractive fallback", "error", err)
		return Fallback(contextText, query)
	}
	if len(strings.TrimSpace(generated)) < config.MinValidAnswerLength {
		a.logger.Warn("LLM returned a degenerate answer, using extractive fallback", "length", len(generated))
		return Fallback(contextText, query)
	}
	return generated
}

// Fallback is the deterministic extractive answer: the combined context
// truncated to the configured limit, wrapped in the direct-extract
// template.
func Fallback(contextText string, query string) string {
	summary := contextText
	if len(contextText) > config.FallbackContextLimit {
		summary = contextText[:config.FallbackContextLimit] + "..."
	}
	return fmt.Sprintf(fallbackTemplate, query, summary)
}
