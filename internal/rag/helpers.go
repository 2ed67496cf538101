package rag

import (
	"context"
	"math"
	"time"

	"github.com/documind/ml-service/internal/config"
	"github.com/documind/ml-service/internal/domain/ragModel"
	"github.com/documind/ml-service/internal/metrics"
)

// Each step helper times one external dependency call so the latency
// histograms separate embedding, index and LLM cost.

func (s *service) executeEmbedDocumentsStep(ctx context.Context, texts []string) ([][]float32, error) {
	start := time.Now()
	vectors, err := s.embedder.EmbedDocuments(ctx, texts)
	metrics.CaptureExecutionMetrics("embedding", time.Since(start))
	return vectors, err
}

func (s *service) executeEmbedQueryStep(ctx context.Context, query string) ([]float32, error) {
	start := time.Now()
	vector, err := s.embedder.EmbedQuery(ctx, query)
	metrics.CaptureExecutionMetrics("embedding", time.Since(start))
	return vector, err
}

func (s *service) executeUpsertStep(ctx context.Context, chunks []ragModel.DocChunk, vectors [][]float32) error {
	start := time.Now()
	err := s.vectorDB.UpsertBatch(ctx, chunks, vectors)
	metrics.CaptureExecutionMetrics("vector_upsert", time.Since(start))
	return err
}

func (s *service) executeSearchStep(ctx context.Context, vector []float32, topK int) ([]ragModel.QueryMatch, error) {
	start := time.Now()
	matches, err := s.vectorDB.Search(ctx, vector, topK)
	metrics.CaptureExecutionMetrics("vector_search", time.Since(start))
	return matches, err
}

func (s *service) executeAnswerStep(ctx context.Context, contextText, query string) string {
	start := time.Now()
	text := s.answerer.Answer(ctx, contextText, query)
	metrics.CaptureExecutionMetrics("llm_generation", time.Since(start))
	return text
}

func traceID(ctx context.Context) string {
	if id, ok := ctx.Value(config.TRACE_ID_KEY).(string); ok {
		return id
	}
	return ""
}

// roundScore keeps response payloads readable without changing which
// matches pass the threshold.
func roundScore(score float32) float32 {
	return float32(math.Round(float64(score)*10000) / 10000)
}
