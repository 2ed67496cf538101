package customHttpClient

import (
	"net/http"
	"time"

	"github.com/documind/ml-service/internal/config"
)

// One pooled transport shared by the downloader and the notifier so
// repeated calls to the same hosts reuse connections.
var customTransport = &http.Transport{
	MaxIdleConns:        config.MaxIdleConns,
	MaxIdleConnsPerHost: config.MaxIdleConnsPerHost,
	IdleConnTimeout:     config.IdleConnTimeout,
}

func New(timeout time.Duration) *http.Client {
	return &http.Client{
		Transport: customTransport,
		Timeout:   timeout,
	}
}
