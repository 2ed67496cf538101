package rag_test

import (
	"context"
	"os"
	"sync"

	"github.com/documind/ml-service/internal/domain/ragModel"
)

// MockVectorDB implements vectorDB.DataStore
type MockVectorDB struct {
	// Control fields to simulate different behaviors
	OnEnsureCollection func(ctx context.Context) error
	OnUpsertBatch      func(ctx context.Context, chunks []ragModel.DocChunk, vectors [][]float32) error
	OnSearch           func(ctx context.Context, vector []float32, topK int) ([]ragModel.QueryMatch, error)

	UpsertedChunks []ragModel.DocChunk
}

func (m *MockVectorDB) EnsureCollection(ctx context.Context) error {
	if m.OnEnsureCollection != nil {
		return m.OnEnsureCollection(ctx)
	}
	return nil
}

func (m *MockVectorDB) UpsertBatch(ctx context.Context, chunks []ragModel.DocChunk, vectors [][]float32) error {
	if m.OnUpsertBatch != nil {
		return m.OnUpsertBatch(ctx, chunks, vectors)
	}
	m.UpsertedChunks = append(m.UpsertedChunks, chunks...)
	return nil
}

func (m *MockVectorDB) Search(ctx context.Context, vector []float32, topK int) ([]ragModel.QueryMatch, error) {
	if m.OnSearch != nil {
		return m.OnSearch(ctx, vector, topK)
	}
	return nil, nil
}

type MockEmbedder struct {
	OnEmbedQuery     func(ctx context.Context, query string) ([]float32, error)
	OnEmbedDocuments func(ctx context.Context, texts []string) ([][]float32, error)
}

func (m *MockEmbedder) EmbedQuery(ctx context.Context, query string) ([]float32, error) {
	if m.OnEmbedQuery != nil {
		return m.OnEmbedQuery(ctx, query)
	}
	return []float32{0.1}, nil
}

func (m *MockEmbedder) EmbedDocuments(ctx context.Context, texts []string) ([][]float32, error) {
	if m.OnEmbedDocuments != nil {
		return m.OnEmbedDocuments(ctx, texts)
	}
	// Return dummy vectors matching batch size
	return make([][]float32, len(texts)), nil
}

// MockLLM implements llm.Provider
type MockLLM struct {
	OnGenerate func(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

func (m *MockLLM) Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	if m.OnGenerate != nil {
		return m.OnGenerate(ctx, systemPrompt, userPrompt)
	}
	return "mocked llm response", nil
}

// MockLoader implements rag.DocumentLoader. Fetch hands back a real
// temp file because the pipeline removes it afterwards.
type MockLoader struct {
	OnFetchToTemp func(ctx context.Context, fileURL string) (string, error)
	Text          string
	ExtractErr    error
}

func (m *MockLoader) FetchToTemp(ctx context.Context, fileURL string) (string, error) {
	if m.OnFetchToTemp != nil {
		return m.OnFetchToTemp(ctx, fileURL)
	}
	tmp, err := os.CreateTemp("", "loader-mock-*.txt")
	if err != nil {
		return "", err
	}
	tmp.Close()
	return tmp.Name(), nil
}

func (m *MockLoader) ExtractText(path string) (string, error) {
	return m.Text, m.ExtractErr
}

type notification struct {
	FileID       string
	Status       ragModel.IngestStatus
	Pages        int
	ErrorMessage string
}

// MockNotifier records every callback so tests can assert exactly-once.
type MockNotifier struct {
	mu    sync.Mutex
	Calls []notification
}

func (m *MockNotifier) NotifyStatus(ctx context.Context, fileID string, status ragModel.IngestStatus, pages int, errorMessage string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls = append(m.Calls, notification{fileID, status, pages, errorMessage})
}
