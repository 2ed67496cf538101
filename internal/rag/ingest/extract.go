package ingest

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/documind/ml-service/internal/config"
	"github.com/documind/ml-service/pkg/logger_i"
	"github.com/dslipak/pdf"
	"github.com/lu4p/cat"
)

// ErrExtraction means the file could not be opened or parsed at all.
// A readable document with no extractable text is NOT this error; it
// comes back as an empty string and the caller decides what that means.
var ErrExtraction = errors.New("ingest: document extraction failed")

var logger = logger_i.NewLogger("Ingest")

// ExtractText pulls the plain text out of a downloaded document,
// dispatching on the file extension. Pages join with a newline; pages
// with nothing extractable are skipped.
func ExtractText(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return extractPDF(path)
	case ".docx", ".txt", ".rtf", ".odt":
		return extractWithCat(path)
	default:
		return "", fmt.Errorf("%w: unsupported file type %q", ErrExtraction, filepath.Ext(path))
	}
}

func extractPDF(path string) (string, error) {
	f, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("%w: opening pdf: %v", ErrExtraction, err)
	}

	var pages []string
	numPages := f.NumPage()
	for i := 1; i <= numPages; i++ {
		page := f.Page(i)
		if page.V.IsNull() {
			continue
		}

		content, err := protectExtract(page)
		if err != nil {
			// A single broken page doesn't fail the document.
			logger.Warn("Skipping unparseable page", "page", i, "error", err)
			continue
		}
		if strings.TrimSpace(content) == "" {
			continue
		}
		pages = append(pages, content)
	}
	return strings.Join(pages, "\n"), nil
}

// extractWithCat reads a .odt, .docx, .rtf or plaintext file as a
// single page.
func extractWithCat(path string) (string, error) {
	text, err := cat.File(path)
	if err != nil {
		return "", fmt.Errorf("%w: reading document: %v", ErrExtraction, err)
	}
	return text, nil
}

// protectExtract runs GetPlainText with a timeout; the parser can hang
// on malformed content streams.
func protectExtract(page pdf.Page) (string, error) {
	type result struct {
		content string
		err     error
	}
	resChan := make(chan result, 1)

	go func() {
		content, err := page.GetPlainText(nil)
		resChan <- result{content, err}
	}()
	select {
	case r := <-resChan:
		return r.content, r.err
	case <-time.After(config.PageExtractTimeout):
		return "", errors.New("page extraction timeout")
	}
}
