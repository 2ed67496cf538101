package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/documind/ml-service/internal/adapter"
	"github.com/documind/ml-service/internal/adapter/utils"
	"github.com/documind/ml-service/internal/api"
	"github.com/documind/ml-service/internal/config"
	"github.com/documind/ml-service/internal/data/store"
	"github.com/documind/ml-service/internal/domain/ragModel"
	"github.com/documind/ml-service/internal/rag"
	"github.com/documind/ml-service/pkg/logger_i"
)

var (
	logRH       *logger_i.Logger
	ragService  rag.Service
	statusStore store.StatusStore
)

// InitHandlers wires the pipeline into the HTTP surface. Must run
// before the server starts accepting requests.
func InitHandlers(service rag.Service, statuses store.StatusStore) {
	logRH = logger_i.NewLogger("Request Handler")
	ragService = service
	statusStore = statuses
}

// HomeHandler godoc
// @Summary      Service banner
// @Tags         Meta
// @Produce      json
// @Success      200  {object}  api.HomeResponse
// @Router       / [get]
func HomeHandler(w http.ResponseWriter, r *http.Request) {
	writeJsonResponse(w, http.StatusOK, api.HomeResponse{Message: "DocuMind ML service running"})
}

// HealthHandler godoc
// @Summary      Liveness probe
// @Tags         Meta
// @Produce      json
// @Success      200  {object}  api.HealthResponse
// @Router       /health [get]
func HealthHandler(w http.ResponseWriter, r *http.Request) {
	writeJsonResponse(w, http.StatusOK, api.HealthResponse{
		Status:  "healthy",
		Service: "DocuMind ML Service",
		Version: "1.0",
	})
}

// PostIngestHandler godoc
// @Summary      Ingest a document into the vector index
// @Description  Downloads the file, extracts and chunks its text, embeds the chunks and upserts them. Runs synchronously; the response carries the terminal outcome.
// @Tags         Pipeline
// @Accept       json
// @Produce      json
// @Param        request  body      api.IngestRequest  true  "File reference"
// @Success      200      {object}  api.IngestResponse "Terminal ingest outcome, ok or failed"
// @Failure      400      {object}  api.ErrorResponse  "Malformed or incomplete request body"
// @Router       /ingest [post]
func PostIngestHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context(), logRH) {
		logRH.Warn("Invalid Context by request", "IP", r.RemoteAddr)
		return
	}

	var requestData api.IngestRequest
	defer closeBody(r.Body)
	if err := json.NewDecoder(r.Body).Decode(&requestData); err != nil {
		logRH.Warn("Bad ingest request", "error", err)
		WriteErrorResponse(w, http.StatusBadRequest, "Bad Request")
		return
	}
	if requestData.FileID == "" || requestData.FileURL == "" || requestData.OriginalName == "" {
		WriteErrorResponse(w, http.StatusBadRequest, "fileId, fileUrl and originalName are required")
		return
	}

	result := ragService.ProcessIngest(r.Context(), ragModel.Document{
		FileID:       requestData.FileID,
		OriginalName: requestData.OriginalName,
		FileURL:      requestData.FileURL,
	})

	writeJsonResponse(w, http.StatusOK, adapter.ToIngestResponse(result))
}

// PostAnswerHandler godoc
// @Summary      Answer a question over indexed documents
// @Description  Embeds the query, searches the vector index and generates a grounded answer. Pipeline failures come back as an error-shaped answer with HTTP 200.
// @Tags         Pipeline
// @Accept       json
// @Produce      json
// @Param        request  body      api.AnswerRequest  true  "Question and optional top_k"
// @Success      200      {object}  api.AnswerResponse
// @Failure      400      {object}  api.ErrorResponse  "Missing query"
// @Router       /answer [post]
func PostAnswerHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context(), logRH) {
		logRH.Warn("Invalid Context by request", "IP", r.RemoteAddr)
		return
	}

	var requestData api.AnswerRequest
	defer closeBody(r.Body)
	if err := json.NewDecoder(r.Body).Decode(&requestData); err != nil {
		logRH.Warn("Bad answer request", "error", err)
		WriteErrorResponse(w, http.StatusBadRequest, "Bad Request")
		return
	}
	if requestData.Query == "" {
		WriteErrorResponse(w, http.StatusBadRequest, "query is required")
		return
	}

	topK := requestData.TopK
	if topK <= 0 {
		topK = config.TopK
	}

	answer := ragService.ProcessAnswer(r.Context(), requestData.Query, topK)
	writeJsonResponse(w, http.StatusOK, adapter.ToAnswerResponse(answer))
}

// GetStatusHandler godoc
// @Summary      Last ingest outcome for a file
// @Tags         Pipeline
// @Produce      json
// @Param        fileId  path      string  true  "File ID"
// @Success      200     {object}  api.StatusResponse
// @Failure      404     {object}  api.ErrorResponse  "No ingest recorded for this file"
// @Router       /status/{fileId} [get]
func GetStatusHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context(), logRH) {
		return
	}

	fileID := utils.GetChiURLParam(r, "fileId")
	record, found := statusStore.GetStatus(r.Context(), fileID)
	if !found {
		WriteErrorResponse(w, http.StatusNotFound, "No ingest recorded for file "+fileID)
		return
	}

	writeJsonResponse(w, http.StatusOK, adapter.ToStatusResponse(record))
}

func closeBody(body io.ReadCloser) {
	if err := body.Close(); err != nil {
		logRH.Error("Couldn't close the request body", "error", err)
	}
}
