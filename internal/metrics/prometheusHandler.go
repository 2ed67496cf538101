package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var HttpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "http_requests_total",
	Help: "Total number of requests labelled by path and status",
}, []string{"path", "status"})

var ingestedChunksTotal = promauto.NewCounter(prometheus.CounterOpts{
	Name: "ingested_chunks_total",
	Help: "Number of chunks upserted into the vector index",
})

var ingestOutcomes = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "ingest_outcomes_total",
	Help: "Ingest attempts by terminal status",
}, []string{"status"})

var requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "pipeline_duration_seconds",
	Help:    "Total time spent in one ingest or answer pipeline run.",
	Buckets: []float64{.1, .5, 1, 2, 5, 10, 30, 60},
}, []string{"operation"})

var dependencyLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "dependency_latency_seconds",
	Help:    "Latency of external service calls.",
	Buckets: []float64{.05, .1, .25, .5, 1, 2, 5, 10},
}, []string{"service"})

type HttpStatusRecorder struct {
	http.ResponseWriter
	Status int
}

func (r *HttpStatusRecorder) WriteHeader(code int) {
	r.Status = code
	r.ResponseWriter.WriteHeader(code)
}

func CountIngestedChunks(n int) {
	ingestedChunksTotal.Add(float64(n))
}

func CountIngestOutcome(status string) {
	ingestOutcomes.WithLabelValues(status).Inc()
}

func CaptureExecutionMetrics(label string, timeElapsed time.Duration) {
	dependencyLatency.WithLabelValues(label).Observe(timeElapsed.Seconds())
}

func CapturePipelineMetrics(operation string, timeElapsed time.Duration) {
	requestDuration.WithLabelValues(operation).Observe(timeElapsed.Seconds())
}
