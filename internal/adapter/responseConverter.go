package adapter

import (
	"github.com/documind/ml-service/internal/api"
	"github.com/documind/ml-service/internal/domain/ragModel"
)

func ToIngestResponse(result ragModel.IngestResult) api.IngestResponse {
	return api.IngestResponse{
		Ok:            result.Ok,
		IndexedChunks: result.IndexedChunks,
		Reason:        result.Reason,
	}
}

func ToAnswerResponse(answer ragModel.Answer) api.AnswerResponse {
	sources := make([]api.SourceRef, len(answer.Sources))
	for i, s := range answer.Sources {
		sources[i] = api.SourceRef{
			FileID:  s.FileID,
			ChunkID: s.ChunkID,
			Score:   s.Score,
			Source:  s.Source,
		}
	}

	return api.AnswerResponse{
		Answer:     answer.Text,
		Sources:    sources,
		ChunksUsed: answer.ChunksUsed,
		Error:      answer.Error,
	}
}

func ToStatusResponse(record ragModel.StatusRecord) api.StatusResponse {
	return api.StatusResponse{
		FileID:       record.FileID,
		Status:       string(record.Status),
		Chunks:       record.Chunks,
		ErrorMessage: record.ErrorMessage,
	}
}

func BadRequest(code int, message string) api.ErrorResponse {
	return api.ErrorResponse{
		Code:    code,
		Message: message,
	}
}
