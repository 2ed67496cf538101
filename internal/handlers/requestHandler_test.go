package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/documind/ml-service/internal/data/store"
	"github.com/documind/ml-service/internal/domain/ragModel"
)

type stubRagService struct {
	answer ragModel.Answer
	ingest ragModel.IngestResult
}

func (s *stubRagService) ProcessIngest(ctx context.Context, doc ragModel.Document) ragModel.IngestResult {
	return s.ingest
}

func (s *stubRagService) ProcessAnswer(ctx context.Context, query string, topK int) ragModel.Answer {
	return s.answer
}

func TestPostAnswerHandler_RequestValidation(t *testing.T) {
	InitHandlers(&stubRagService{answer: ragModel.Answer{Text: "a generated answer"}}, store.InitInMemoryStatusStore())

	tests := []struct {
		name        string
		body        string
		wantCode    int
		wantMessage string
	}{
		{
			name:        "Malformed_JSON",
			body:        "{not json",
			wantCode:    http.StatusBadRequest,
			wantMessage: "Bad Request",
		},
		{
			name:        "Missing_Query",
			body:        `{"top_k": 2}`,
			wantCode:    http.StatusBadRequest,
			wantMessage: "query is required",
		},
		{
			name:     "Valid_Request",
			body:     `{"query": "what is the policy?"}`,
			wantCode: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/answer", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			PostAnswerHandler(rec, req)

			if rec.Code != tt.wantCode {
				t.Fatalf("Status got %d, want %d", rec.Code, tt.wantCode)
			}

			var got map[string]any
			if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
				t.Fatalf("Response is not JSON: %v", err)
			}
			if tt.wantMessage != "" && got["message"] != tt.wantMessage {
				t.Errorf("message = %v, want %q", got["message"], tt.wantMessage)
			}
			if tt.wantCode == http.StatusOK && got["answer"] != "a generated answer" {
				t.Errorf("answer = %v, want the service result", got["answer"])
			}
		})
	}
}

func TestPostIngestHandler_RejectsIncompleteBody(t *testing.T) {
	InitHandlers(&stubRagService{}, store.InitInMemoryStatusStore())

	req := httptest.NewRequest(http.MethodPost, "/ingest", strings.NewReader(`{"fileId": "f1"}`))
	rec := httptest.NewRecorder()

	PostIngestHandler(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("Status got %d, want 400", rec.Code)
	}
}
