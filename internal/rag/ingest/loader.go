package ingest

import "context"

// Loader bundles the package functions behind a value the service can
// take as a dependency.
type Loader struct{}

func (Loader) FetchToTemp(ctx context.Context, fileURL string) (string, error) {
	return FetchToTemp(ctx, fileURL)
}

func (Loader) ExtractText(path string) (string, error) {
	return ExtractText(path)
}
