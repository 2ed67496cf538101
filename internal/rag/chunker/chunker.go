package chunker

import (
	"errors"
	"strings"
)

// ErrInvalidChunkParams means the window configuration cannot make
// forward progress (overlap >= size would re-chunk the same window
// forever).
var ErrInvalidChunkParams = errors.New("chunker: overlap must be smaller than chunk size")

// Split cuts text into overlapping word windows. size is the number of
// words per window, overlap the number of words shared between
// consecutive windows. The last window may be shorter than size.
// Empty or all-whitespace input yields no chunks.
func Split(text string, size int, overlap int) ([]string, error) {
	if size <= 0 || overlap < 0 || overlap >= size {
		return nil, ErrInvalidChunkParams
	}

	tokens := strings.Fields(text)
	if len(tokens) == 0 {
		return nil, nil
	}

	stride := size - overlap
	var chunks []string
	for start := 0; start < len(tokens); start += stride {
		end := start + size
		if end > len(tokens) {
			end = len(tokens)
		}
		chunks = append(chunks, strings.Join(tokens[start:end], " "))
	}
	return chunks, nil
}
