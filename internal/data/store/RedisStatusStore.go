package store

import (
	"context"
	"encoding/json"

	"github.com/documind/ml-service/internal/config"
	"github.com/documind/ml-service/internal/data/redisStore"
	"github.com/documind/ml-service/internal/domain/ragModel"
	"github.com/documind/ml-service/pkg/logger_i"
)

type RedisStatusStore struct {
	store  *redisStore.Store
	logger *logger_i.Logger
}

// GetRedisStatusStore returns nil when redis is offline; main falls
// back to the in-memory store.
func GetRedisStatusStore(ctx context.Context) *RedisStatusStore {
	inner := redisStore.GetRedisStore(ctx, config.RedisStatusStore)
	if inner == nil {
		return nil
	}
	return &RedisStatusStore{
		store:  inner,
		logger: logger_i.NewLogger("StatusStore"),
	}
}

func (s *RedisStatusStore) SaveStatus(ctx context.Context, record ragModel.StatusRecord) error {
	log := s.logger.With("fileId", record.FileID)
	data, err := json.Marshal(record)
	if err != nil {
		return err
	}

	err = s.store.Set(ctx, record.FileID, data, config.RedisStatusStoreTTL)
	if err == nil {
		log.Debug("Saved ingest status", "status", record.Status)
	}
	return err
}

func (s *RedisStatusStore) GetStatus(ctx context.Context, fileID string) (ragModel.StatusRecord, bool) {
	var record ragModel.StatusRecord

	val, err := s.store.Get(ctx, fileID)
	if s.store.IsNil(err) {
		return record, false
	} else if err != nil {
		s.logger.Error("Error reading ingest status", "fileId", fileID, "error", err)
		return record, false
	}

	if err := json.Unmarshal([]byte(val), &record); err != nil {
		s.logger.Error("Corrupt status record", "fileId", fileID, "error", err)
		return record, false
	}
	return record, true
}

// TestStatusStore exists so tests can wire a miniredis-backed client.
func TestStatusStore(store *redisStore.Store) *RedisStatusStore {
	return &RedisStatusStore{
		store:  store,
		logger: logger_i.NewLogger("test status store"),
	}
}
