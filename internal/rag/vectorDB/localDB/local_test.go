package localDB

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/documind/ml-service/internal/domain/ragModel"
)

func testChunks() ([]ragModel.DocChunk, [][]float32) {
	chunks := []ragModel.DocChunk{
		{FileID: "file-a", ChunkID: 0, Text: "alpha text", Source: "a.pdf"},
		{FileID: "file-a", ChunkID: 1, Text: "beta text", Source: "a.pdf"},
		{FileID: "file-b", ChunkID: 0, Text: "gamma text", Source: "b.pdf"},
	}
	vectors := [][]float32{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
	return chunks, vectors
}

func TestStore_UpsertSearchRoundtrip(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "index.json"))
	ctx := context.Background()

	if err := s.EnsureCollection(ctx); err != nil {
		t.Fatalf("EnsureCollection failed: %v", err)
	}

	chunks, vectors := testChunks()
	if err := s.UpsertBatch(ctx, chunks, vectors); err != nil {
		t.Fatalf("UpsertBatch failed: %v", err)
	}

	// Searching with an exact source vector returns that record first
	// with near-maximal similarity.
	matches, err := s.Search(ctx, []float32{0, 1, 0}, 2)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(matches) != 2 {
		t.Fatalf("Expected 2 matches, got %d", len(matches))
	}
	if matches[0].FileID != "file-a" || matches[0].ChunkID != 1 {
		t.Errorf("Top match is %s_%d, want file-a_1", matches[0].FileID, matches[0].ChunkID)
	}
	if matches[0].Score < 0.999 {
		t.Errorf("Exact-vector score = %f, want ~1.0", matches[0].Score)
	}
	if matches[0].Text != "beta text" || matches[0].Source != "a.pdf" {
		t.Errorf("Metadata not returned inline: %+v", matches[0])
	}
}

func TestStore_UpsertOverwritesByKey(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "index.json"))
	ctx := context.Background()

	chunks, vectors := testChunks()
	if err := s.UpsertBatch(ctx, chunks, vectors); err != nil {
		t.Fatalf("UpsertBatch failed: %v", err)
	}

	// Re-ingest of file-a chunk 0 with new text must replace, not add.
	updated := []ragModel.DocChunk{{FileID: "file-a", ChunkID: 0, Text: "alpha v2", Source: "a.pdf"}}
	if err := s.UpsertBatch(ctx, updated, [][]float32{{1, 0, 0}}); err != nil {
		t.Fatalf("UpsertBatch failed: %v", err)
	}

	matches, err := s.Search(ctx, []float32{1, 0, 0}, 10)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(matches) != 3 {
		t.Errorf("Expected 3 records after overwrite, got %d", len(matches))
	}
	if matches[0].Text != "alpha v2" {
		t.Errorf("Top match text = %q, want the overwritten value", matches[0].Text)
	}
}

func TestStore_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index.json")
	ctx := context.Background()

	first := NewStore(path)
	chunks, vectors := testChunks()
	if err := first.UpsertBatch(ctx, chunks, vectors); err != nil {
		t.Fatalf("UpsertBatch failed: %v", err)
	}

	reopened := NewStore(path)
	if err := reopened.EnsureCollection(ctx); err != nil {
		t.Fatalf("EnsureCollection failed: %v", err)
	}
	matches, err := reopened.Search(ctx, []float32{0, 0, 1}, 1)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(matches) != 1 || matches[0].FileID != "file-b" {
		t.Errorf("Reopened store lost data, got %+v", matches)
	}
}

func TestStore_SearchEmptyAndMismatched(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "index.json"))
	ctx := context.Background()

	matches, err := s.Search(ctx, []float32{1, 0}, 4)
	if err != nil {
		t.Fatalf("Search on empty store failed: %v", err)
	}
	if len(matches) != 0 {
		t.Errorf("Empty store returned %d matches", len(matches))
	}

	if err := s.UpsertBatch(ctx, []ragModel.DocChunk{{FileID: "x"}}, nil); err == nil {
		t.Error("Expected length-mismatch error, got nil")
	}
}
