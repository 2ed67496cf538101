package embedding

import "context"

// Embedder produces fixed-dimension vectors. The dimension is a
// property of the configured model and must match the vector index.
type Embedder interface {
	EmbedQuery(ctx context.Context, query string) ([]float32, error)
	EmbedDocuments(ctx context.Context, texts []string) ([][]float32, error)
}
