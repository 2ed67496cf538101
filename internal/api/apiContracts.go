package api

// requests---------------------

type IngestRequest struct {
	FileID       string `json:"fileId" validate:"required" example:"file_8f2a"`
	FileURL      string `json:"fileUrl" validate:"required" example:"https://storage.example.com/signed/file_8f2a.pdf"`
	OriginalName string `json:"originalName" validate:"required" example:"handbook.pdf"`
}

type AnswerRequest struct {
	Query string `json:"query" validate:"required" example:"What is the refund policy?"`
	TopK  int    `json:"top_k,omitempty" example:"4"`
}

// responses--------------------

type IngestResponse struct {
	Ok            bool   `json:"ok"`
	IndexedChunks int    `json:"indexed_chunks,omitempty" example:"3"`
	Reason        string `json:"reason,omitempty" example:"Empty text"`
}

type SourceRef struct {
	FileID  string  `json:"fileId"`
	ChunkID int     `json:"chunkId"`
	Score   float32 `json:"score" example:"0.8123"`
	Source  string  `json:"source" example:"handbook.pdf"`
}

type AnswerResponse struct {
	Answer     string      `json:"answer"`
	Sources    []SourceRef `json:"sources"`
	ChunksUsed int         `json:"chunks_used,omitempty"`
	Error      string      `json:"error,omitempty"`
}

type StatusResponse struct {
	FileID       string `json:"fileId"`
	Status       string `json:"status" example:"indexed"`
	Chunks       int    `json:"chunks,omitempty"`
	ErrorMessage string `json:"errorMessage,omitempty"`
}

type ErrorResponse struct {
	Code    int    `json:"code" example:"400"`
	Message string `json:"message" example:"Bad Request"`
}

type HealthResponse struct {
	Status  string `json:"status" example:"healthy"`
	Service string `json:"service" example:"DocuMind ML Service"`
	Version string `json:"version" example:"1.0"`
}

type HomeResponse struct {
	Message string `json:"message" example:"DocuMind ML service running"`
}
