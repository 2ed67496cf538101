package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/documind/ml-service/internal/config"
	"github.com/documind/ml-service/internal/customHttpClient"
	"github.com/documind/ml-service/internal/domain/ragModel"
	"github.com/documind/ml-service/pkg/logger_i"
)

// Notifier tells the Node backend how an ingest attempt ended. Every
// call is best-effort: failures are logged and swallowed, never
// surfaced to the pipeline.
type Notifier interface {
	NotifyStatus(ctx context.Context, fileID string, status ragModel.IngestStatus, pages int, errorMessage string)
}

type nodeNotifier struct {
	baseURL      string
	serviceToken string
	client       *http.Client
	logger       *logger_i.Logger
}

type updateStatusBody struct {
	FileID       string `json:"fileId"`
	Status       string `json:"status"`
	Pages        int    `json:"pages,omitempty"`
	ErrorMessage string `json:"errorMessage,omitempty"`
}

func NewNodeNotifier(baseURL string, serviceToken string) Notifier {
	return &nodeNotifier{
		baseURL:      strings.TrimRight(baseURL, "/"),
		serviceToken: serviceToken,
		client:       customHttpClient.New(config.NotifyTimeout),
		logger:       logger_i.NewLogger("NodeNotifier"),
	}
}

func (n *nodeNotifier) NotifyStatus(ctx context.Context, fileID string, status ragModel.IngestStatus, pages int, errorMessage string) {
	log := n.logger.With("fileId", fileID, "status", status)

	body, err := json.Marshal(updateStatusBody{
		FileID:       fileID,
		Status:       string(status),
		Pages:        pages,
		ErrorMessage: errorMessage,
	})
	if err != nil {
		log.Error("Could not encode status payload", "error", err)
		return
	}

	url := n.baseURL + "/api/upload/update-status"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		log.Error("Could not build status request", "error", err)
		return
	}
	req.Header.Set("Content-Type", "application/json")
	if n.serviceToken != "" {
		req.Header.Set("x-service-token", n.serviceToken)
	}

	resp, err := n.client.Do(req)
	if err != nil {
		// Node might be temporarily down; ingest already succeeded or
		// failed on its own terms.
		log.Error("Status notification failed", "error", err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		log.Error("Status notification rejected", "error", fmt.Sprintf("unexpected status %d", resp.StatusCode))
		return
	}
	log.Debug("Status notification delivered")
}
