package googleEmbedding

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/documind/ml-service/internal/config"
	"github.com/documind/ml-service/internal/rag/embedding"
	"github.com/documind/ml-service/pkg/logger_i"
	"google.golang.org/genai"
)

var logger *logger_i.Logger
var once sync.Once
var embeddingClient *client
var dimension = config.EmbeddingDimension

type client struct {
	genAi *genai.Client
	model string
}

// GetGoogleEmbeddingClient lazily builds the process-wide embedding
// client. Returns nil when initialization failed; the caller treats
// that as a startup error.
func GetGoogleEmbeddingClient(ctx context.Context, modelName string, apikey string) embedding.Embedder {
	once.Do(func() {
		logger = logger_i.NewLogger("google_embedding")
		newGoogleEmbedder(ctx, modelName, apikey)
	})

	if embeddingClient == nil {
		return nil
	}
	return embeddingClient
}

func newGoogleEmbedder(ctx context.Context, modelName string, apikey string) {
	c, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apikey})
	if err != nil {
		logger.Error("Error creating Google Embedding client:", "error", err)
		return
	}
	embeddingClient = &client{
		genAi: c,
		model: modelName,
	}
	logger.Info("Google Embedding client created", "model", modelName)
	go closeClient(ctx, embeddingClient)
}

func closeClient(ctx context.Context, embeddingClient *client) {
	<-ctx.Done()
	logger.Info("Closing Google Embedding client")
	embeddingClient.genAi = nil
	embeddingClient.model = ""
}

func (c *client) EmbedQuery(ctx context.Context, query string) ([]float32, error) {
	result, err := c.doCall(ctx, genai.Text(query), config.EmbedQueryTaskType)
	if err != nil {
		return nil, fmt.Errorf("query embedding: %w", err)
	}
	if len(result.Embeddings) == 0 {
		return nil, fmt.Errorf("query embedding: empty response")
	}
	return result.Embeddings[0].Values, nil
}

func (c *client) EmbedDocuments(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}
	log := logger.With("batch size", len(texts))

	res, err := c.doCall(ctx, getContent(texts), config.EmbedDocumentTaskType)
	if err != nil {
		if !doRetry(err, log) {
			return nil, fmt.Errorf("document embedding: %w", err)
		}
		log.Debug("Retrying in 5 seconds")
		time.Sleep(5 * time.Second)
		res, err = c.doCall(ctx, getContent(texts), config.EmbedDocumentTaskType)
		if err != nil {
			return nil, fmt.Errorf("document embedding after retry: %w", err)
		}
	}

	if len(res.Embeddings) != len(texts) {
		return nil, fmt.Errorf("document embedding: got %d vectors for %d texts", len(res.Embeddings), len(texts))
	}

	vectors := make([][]float32, 0, len(res.Embeddings))
	for _, r := range res.Embeddings {
		vectors = append(vectors, r.Values)
	}
	return vectors, nil
}

func (c *client) doCall(ctx context.Context, content []*genai.Content, taskType string) (*genai.EmbedContentResponse, error) {
	return c.genAi.Models.EmbedContent(ctx, c.model, content, &genai.EmbedContentConfig{
		OutputDimensionality: &dimension,
		TaskType:             taskType,
	})
}
