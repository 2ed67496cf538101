package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/documind/ml-service/internal/domain/ragModel"
)

func TestNotifyStatus_SendsExpectedPayload(t *testing.T) {
	var gotPath, gotToken string
	var gotBody map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotToken = r.Header.Get("x-service-token")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	n := NewNodeNotifier(srv.URL+"/", "secret-token")
	n.NotifyStatus(context.Background(), "file-1", ragModel.StatusIndexed, 3, "")

	if gotPath != "/api/upload/update-status" {
		t.Errorf("Posted to %s, want /api/upload/update-status", gotPath)
	}
	if gotToken != "secret-token" {
		t.Errorf("x-service-token = %q", gotToken)
	}
	if gotBody["fileId"] != "file-1" || gotBody["status"] != "indexed" {
		t.Errorf("Unexpected body: %v", gotBody)
	}
	if gotBody["pages"] != float64(3) {
		t.Errorf("pages = %v, want 3", gotBody["pages"])
	}
	if _, present := gotBody["errorMessage"]; present {
		t.Error("errorMessage should be omitted on success")
	}
}

func TestNotifyStatus_FailurePayload(t *testing.T) {
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
	}))
	defer srv.Close()

	n := NewNodeNotifier(srv.URL, "tok")
	n.NotifyStatus(context.Background(), "file-2", ragModel.StatusFailed, 0, "Empty text extracted")

	if gotBody["status"] != "failed" || gotBody["errorMessage"] != "Empty text extracted" {
		t.Errorf("Unexpected failure body: %v", gotBody)
	}
	if _, present := gotBody["pages"]; present {
		t.Error("pages should be omitted on failure")
	}
}

func TestNotifyStatus_SwallowsErrors(t *testing.T) {
	// Rejected by the backend: must not panic, must not propagate.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	n := NewNodeNotifier(srv.URL, "tok")
	n.NotifyStatus(context.Background(), "file-3", ragModel.StatusFailed, 0, "boom")
	srv.Close()

	// Backend unreachable: same contract.
	n.NotifyStatus(context.Background(), "file-3", ragModel.StatusFailed, 0, "boom")
}
