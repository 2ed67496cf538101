package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/documind/ml-service/internal/adapter"
	"github.com/documind/ml-service/pkg/logger_i"
)

func writeJsonResponse(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Log the error but can't send a clean status code now
		logRH.Error("Error encoding response", "error", err)
	}
}

func WriteErrorResponse(w http.ResponseWriter, httpCode int, message string) {
	writeJsonResponse(w, httpCode, adapter.BadRequest(httpCode, message))
}

func validateContext(ctx context.Context, log *logger_i.Logger) bool {
	if ctx.Err() != nil {
		log.Warn("context error", "error", ctx.Err())
		return false
	}

	select {
	case <-ctx.Done():
		log.Warn("context cancelled")
		return false
	default:
		return true
	}
}
