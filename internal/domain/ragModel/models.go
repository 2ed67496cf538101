package ragModel

import "strconv"

// Document is the ingest-time reference to an uploaded file. It lives
// only for the duration of one ingest attempt; the vector index is the
// sole long-term owner of anything derived from it.
type Document struct {
	FileID       string `json:"fileId"`
	OriginalName string `json:"originalName"`
	FileURL      string `json:"fileUrl"`
}

// DocChunk is a 0-indexed window of consecutive words from a document's
// extracted text. Consecutive chunks overlap by the configured word
// count unless the document is shorter than one window.
type DocChunk struct {
	FileID  string `json:"fileId"`
	ChunkID int    `json:"chunkId"`
	Text    string `json:"text"`
	Source  string `json:"source"`
}

// Key is the external record id stored alongside the vector.
func (c DocChunk) Key() string {
	return c.FileID + "_" + strconv.Itoa(c.ChunkID)
}

// QueryMatch is one similarity-search hit with its payload attached.
type QueryMatch struct {
	FileID  string
	ChunkID int
	Text    string
	Source  string
	Score   float32
}

// Source attributes part of an answer to an indexed chunk.
type Source struct {
	FileID  string  `json:"fileId"`
	ChunkID int     `json:"chunkId"`
	Score   float32 `json:"score"`
	Source  string  `json:"source"`
}

// Answer is the transient result of one query. Error is set when the
// pipeline failed and Text carries the error-shaped message instead of
// a generated answer.
type Answer struct {
	Text       string
	Sources    []Source
	ChunksUsed int
	Error      string
}

// IngestResult is the transient outcome of one ingest attempt.
type IngestResult struct {
	Ok            bool
	IndexedChunks int
	Reason        string
}

type IngestStatus string

const (
	StatusIndexed IngestStatus = "indexed"
	StatusFailed  IngestStatus = "failed"
)

// StatusRecord is what the status store keeps per file.
type StatusRecord struct {
	FileID       string       `json:"fileId"`
	Status       IngestStatus `json:"status"`
	Chunks       int          `json:"chunks,omitempty"`
	ErrorMessage string       `json:"errorMessage,omitempty"`
}
