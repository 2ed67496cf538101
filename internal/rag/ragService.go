package rag

import (
	"context"
	"errors"
	"os"
	"strings"
	"time"

	"github.com/documind/ml-service/internal/config"
	"github.com/documind/ml-service/internal/data/store"
	"github.com/documind/ml-service/internal/domain/ragModel"
	"github.com/documind/ml-service/internal/metrics"
	"github.com/documind/ml-service/internal/notify"
	"github.com/documind/ml-service/internal/rag/answerer"
	"github.com/documind/ml-service/internal/rag/chunker"
	"github.com/documind/ml-service/internal/rag/embedding"
	"github.com/documind/ml-service/internal/rag/llm"
	"github.com/documind/ml-service/internal/rag/vectorDB"
	"github.com/documind/ml-service/pkg/logger_i"
)

// ErrEmptyContent means extraction succeeded but the document has no
// usable text. It fails the ingest without being a crash.
var ErrEmptyContent = errors.New("no extractable text in document")

const (
	noMatchesMessage    = "I couldn't find any relevant information in your documents to answer this question. Please make sure documents are uploaded and indexed."
	lowRelevanceMessage = "The retrieved documents don't seem relevant enough to answer your question confidently."
	contextSeparator    = "\n\n---\n\n"
)

// DocumentLoader is the ingest-side file access the orchestrator needs;
// ingest.Loader is the production implementation.
type DocumentLoader interface {
	FetchToTemp(ctx context.Context, fileURL string) (string, error)
	ExtractText(path string) (string, error)
}

// Service is the public contract the handlers call. Both operations
// convert every internal failure into a structured result at this
// boundary; nothing escapes as a raw error.
type Service interface {
	ProcessIngest(ctx context.Context, doc ragModel.Document) ragModel.IngestResult
	ProcessAnswer(ctx context.Context, query string, topK int) ragModel.Answer
}

type service struct {
	vectorDB vectorDB.DataStore
	embedder embedding.Embedder
	answerer *answerer.Answerer
	loader   DocumentLoader
	notifier notify.Notifier
	statuses store.StatusStore
	logger   *logger_i.Logger
}

// NewService constructor; dependencies come in as interfaces so tests
// can swap in mocks without touching the pipeline.
func NewService(vector vectorDB.DataStore, provider llm.Provider, em embedding.Embedder, loader DocumentLoader, notifier notify.Notifier, statuses store.StatusStore) Service {
	return &service{
		vectorDB: vector,
		embedder: em,
		answerer: answerer.New(provider),
		loader:   loader,
		notifier: notifier,
		statuses: statuses,
		logger:   logger_i.NewLogger("RAG Service"),
	}
}

func (s *service) ProcessIngest(ctx context.Context, doc ragModel.Document) ragModel.IngestResult {
	start := time.Now()
	defer func() { metrics.CapturePipelineMetrics("ingest", time.Since(start)) }()

	log := s.logger.With("traceId", traceID(ctx), "fileId", doc.FileID)
	log.Info("Ingesting document", "name", doc.OriginalName)

	indexed, err := s.runIngest(ctx, log, doc)
	result := ragModel.IngestResult{Ok: true, IndexedChunks: indexed}
	if err != nil {
		result = ragModel.IngestResult{Ok: false, Reason: failureReason(err)}
	}

	// Exactly one notification per attempt, success or failure, and it
	// never fails the ingest itself.
	if result.Ok {
		metrics.CountIngestOutcome(string(ragModel.StatusIndexed))
		s.notifier.NotifyStatus(ctx, doc.FileID, ragModel.StatusIndexed, result.IndexedChunks, "")
	} else {
		metrics.CountIngestOutcome(string(ragModel.StatusFailed))
		s.notifier.NotifyStatus(ctx, doc.FileID, ragModel.StatusFailed, 0, result.Reason)
	}
	s.recordStatus(ctx, log, doc.FileID, result)

	return result
}

func (s *service) runIngest(ctx context.Context, log *logger_i.Logger, doc ragModel.Document) (int, error) {
	localPath, err := s.loader.FetchToTemp(ctx, doc.FileURL)
	if err != nil {
		log.Error("Download failed", "error", err)
		return 0, err
	}
	// The temp file goes away on every exit path, success or not.
	defer func() {
		if err := os.Remove(localPath); err != nil {
			log.Error("Error removing temp file", "path", localPath, "error", err)
		}
	}()

	text, err := s.loader.ExtractText(localPath)
	if err != nil {
		log.Error("Extraction failed", "error", err)
		return 0, err
	}
	if strings.TrimSpace(text) == "" {
		log.Warn("Document has no extractable text")
		return 0, ErrEmptyContent
	}

	pieces, err := chunker.Split(text, config.ChunkSize, config.ChunkOverlap)
	if err != nil {
		log.Error("Chunking failed", "error", err)
		return 0, err
	}

	chunks := make([]ragModel.DocChunk, len(pieces))
	for i, piece := range pieces {
		chunks[i] = ragModel.DocChunk{
			FileID:  doc.FileID,
			ChunkID: i,
			Text:    piece,
			Source:  doc.OriginalName,
		}
	}

	if err := s.vectorDB.EnsureCollection(ctx); err != nil {
		log.Error("Collection check failed", "error", err)
		return 0, err
	}

	if err := s.batchIngest(ctx, log, chunks); err != nil {
		log.Error("Batch ingest failed", "error", err)
		return 0, err
	}

	log.Info("Document indexed", "chunks", len(chunks))
	return len(chunks), nil
}

// failureReason is what goes into the response and the failure
// callback. The empty-content case keeps its short fixed reason so the
// backend can match on it.
func failureReason(err error) string {
	if errors.Is(err, ErrEmptyContent) {
		return "Empty text"
	}
	return err.Error()
}

// batchIngest embeds and upserts at most UpsertBatchSize records per
// network call, sequentially. A later batch failing leaves earlier
// batches committed; re-ingest overwrites them by id.
func (s *service) batchIngest(ctx context.Context, log *logger_i.Logger, chunks []ragModel.DocChunk) error {
	for i := 0; i < len(chunks); i += config.UpsertBatchSize {
		end := i + config.UpsertBatchSize
		if end > len(chunks) {
			end = len(chunks)
		}
		currentBatch := chunks[i:end]

		texts := make([]string, len(currentBatch))
		for j, c := range currentBatch {
			texts[j] = c.Text
		}

		vectors, err := s.executeEmbedDocumentsStep(ctx, texts)
		if err != nil {
			return err
		}

		if err := s.executeUpsertStep(ctx, currentBatch, vectors); err != nil {
			return err
		}
		metrics.CountIngestedChunks(len(currentBatch))
		log.Debug("Upserted batch", "from", i, "to", end)
	}
	return nil
}

func (s *service) ProcessAnswer(ctx context.Context, query string, topK int) ragModel.Answer {
	start := time.Now()
	defer func() { metrics.CapturePipelineMetrics("answer", time.Since(start)) }()

	log := s.logger.With("traceId", traceID(ctx))
	log.Debug("Processing query", "topK", topK)

	answer, err := s.runAnswer(ctx, log, query, topK)
	if err != nil {
		log.Error("Answer pipeline failed", "error", err)
		return ragModel.Answer{
			Text:    "An error occurred while processing your question: " + err.Error(),
			Error:   err.Error(),
			Sources: []ragModel.Source{},
		}
	}
	return answer
}

func (s *service) runAnswer(ctx context.Context, log *logger_i.Logger, query string, topK int) (ragModel.Answer, error) {
	queryVector, err := s.executeEmbedQueryStep(ctx, query)
	if err != nil {
		return ragModel.Answer{}, err
	}

	matches, err := s.executeSearchStep(ctx, queryVector, topK)
	if err != nil {
		return ragModel.Answer{}, err
	}

	if len(matches) == 0 {
		log.Debug("No matches in index")
		return ragModel.Answer{Text: noMatchesMessage, Sources: []ragModel.Source{}}, nil
	}

	// Only matches clearing the relevance threshold contribute context
	// or attribution.
	var contexts []string
	sources := []ragModel.Source{}
	for _, m := range matches {
		if m.Score <= config.RelevanceThreshold {
			continue
		}
		contexts = append(contexts, m.Text)
		sources = append(sources, ragModel.Source{
			FileID:  m.FileID,
			ChunkID: m.ChunkID,
			Score:   roundScore(m.Score),
			Source:  m.Source,
		})
	}

	if len(contexts) == 0 {
		log.Debug("All matches below relevance threshold", "matches", len(matches))
		return ragModel.Answer{Text: lowRelevanceMessage, Sources: sources}, nil
	}

	used := contexts
	if len(used) > config.MaxContextChunks {
		used = used[:config.MaxContextChunks]
	}
	combined := strings.Join(used, contextSeparator)

	text := s.executeAnswerStep(ctx, combined, query)
	return ragModel.Answer{
		Text:       text,
		Sources:    sources,
		ChunksUsed: len(contexts),
	}, nil
}

func (s *service) recordStatus(ctx context.Context, log *logger_i.Logger, fileID string, result ragModel.IngestResult) {
	if s.statuses == nil {
		return
	}
	record := ragModel.StatusRecord{FileID: fileID}
	if result.Ok {
		record.Status = ragModel.StatusIndexed
		record.Chunks = result.IndexedChunks
	} else {
		record.Status = ragModel.StatusFailed
		record.ErrorMessage = result.Reason
	}
	if err := s.statuses.SaveStatus(ctx, record); err != nil {
		log.Error("Could not record ingest status", "error", err)
	}
}
