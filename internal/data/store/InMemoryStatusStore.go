package store

import (
	"context"
	"sync"

	"github.com/documind/ml-service/internal/domain/ragModel"
)

type InMemoryStatusStore struct {
	mu      sync.RWMutex
	records map[string]ragModel.StatusRecord
}

func InitInMemoryStatusStore() *InMemoryStatusStore {
	return &InMemoryStatusStore{
		records: make(map[string]ragModel.StatusRecord),
	}
}

func (s *InMemoryStatusStore) SaveStatus(ctx context.Context, record ragModel.StatusRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[record.FileID] = record
	return nil
}

func (s *InMemoryStatusStore) GetStatus(ctx context.Context, fileID string) (ragModel.StatusRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	record, found := s.records[fileID]
	return record, found
}
