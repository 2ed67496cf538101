package localDB

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"sort"
	"sync"

	"github.com/documind/ml-service/internal/domain/ragModel"
	"github.com/documind/ml-service/pkg/logger_i"
)

// Store is a file-backed brute-force cosine index. It exists so the
// service can run without a qdrant instance (local development, tests);
// it satisfies the same DataStore contract and is selected by
// VECTOR_BACKEND=local.
type Store struct {
	mu      sync.RWMutex
	path    string
	records map[string]record //keyed by record key, so upsert overwrites
	logger  *logger_i.Logger
}

type record struct {
	Key     string    `json:"key"`
	FileID  string    `json:"fileId"`
	ChunkID int       `json:"chunkId"`
	Text    string    `json:"text"`
	Source  string    `json:"source"`
	Vector  []float32 `json:"vector"`
}

func NewStore(path string) *Store {
	return &Store{
		path:    path,
		records: make(map[string]record),
		logger:  logger_i.NewLogger("LocalIndex"),
	}
}

// EnsureCollection loads the persisted index if one exists.
func (s *Store) EnsureCollection(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("reading local index: %w", err)
	}

	var loaded []record
	if err := json.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("parsing local index: %w", err)
	}
	for _, r := range loaded {
		s.records[r.Key] = r
	}
	s.logger.Info("Loaded local index", "records", len(s.records), "path", s.path)
	return nil
}

func (s *Store) UpsertBatch(ctx context.Context, chunks []ragModel.DocChunk, vectors [][]float32) error {
	if len(chunks) != len(vectors) {
		return fmt.Errorf("mismatch: got %d chunks but %d vectors", len(chunks), len(vectors))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, chunk := range chunks {
		s.records[chunk.Key()] = record{
			Key:     chunk.Key(),
			FileID:  chunk.FileID,
			ChunkID: chunk.ChunkID,
			Text:    chunk.Text,
			Source:  chunk.Source,
			Vector:  vectors[i],
		}
	}
	return s.save()
}

func (s *Store) Search(ctx context.Context, vector []float32, topK int) ([]ragModel.QueryMatch, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matches := make([]ragModel.QueryMatch, 0, len(s.records))
	for _, r := range s.records {
		score, ok := cosine(vector, r.Vector)
		if !ok {
			continue
		}
		matches = append(matches, ragModel.QueryMatch{
			FileID:  r.FileID,
			ChunkID: r.ChunkID,
			Text:    r.Text,
			Source:  r.Source,
			Score:   score,
		})
	}

	sort.Slice(matches, func(i, j int) bool { return matches[i].Score > matches[j].Score })
	if len(matches) > topK {
		matches = matches[:topK]
	}
	return matches, nil
}

// save persists the full record set; callers hold the write lock.
func (s *Store) save() error {
	all := make([]record, 0, len(s.records))
	for _, r := range s.records {
		all = append(all, r)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Key < all[j].Key })

	data, err := json.Marshal(all)
	if err != nil {
		return fmt.Errorf("encoding local index: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("writing local index: %w", err)
	}
	return nil
}

func cosine(a, b []float32) (float32, bool) {
	if len(a) == 0 || len(a) != len(b) {
		return 0, false
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0, false
	}
	return float32(dot / (math.Sqrt(normA) * math.Sqrt(normB))), true
}
