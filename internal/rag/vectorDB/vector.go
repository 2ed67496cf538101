package vectorDB

import (
	"context"

	"github.com/documind/ml-service/internal/domain/ragModel"
)

// DataStore is the index-client contract both backends satisfy. Upserts
// are insert-or-update by record id; Search may return fewer than topK
// matches (or none), which is not an error.
type DataStore interface {
	EnsureCollection(ctx context.Context) error
	UpsertBatch(ctx context.Context, chunks []ragModel.DocChunk, vectors [][]float32) error
	Search(ctx context.Context, vector []float32, topK int) ([]ragModel.QueryMatch, error)
}
