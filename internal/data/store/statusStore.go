package store

import (
	"context"

	"github.com/documind/ml-service/internal/domain/ragModel"
)

// StatusStore keeps the last known ingest outcome per file so the
// backend (or an operator) can poll it. Writes are best-effort; the
// pipeline never fails because the status could not be recorded.
type StatusStore interface {
	SaveStatus(ctx context.Context, record ragModel.StatusRecord) error
	GetStatus(ctx context.Context, fileID string) (ragModel.StatusRecord, bool)
}
