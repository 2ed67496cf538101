package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	IS_PROD        = false
	LOG_LEVEL_PROD = slog.LevelInfo
	TRACE_ID_KEY   = "traceId"

	RATE_LIMIT_PER_SECOND       = 2
	BURST_RATE_LIMIT_PER_SECOND = 5

	//retrieval policy
	RelevanceThreshold   float32 = 0.3
	MaxContextChunks             = 3
	FallbackContextLimit         = 500 //chars kept in the extractive fallback
	MinValidAnswerLength         = 10

	//ingest policy
	UpsertBatchSize = 100

	//serverTimeouts
	ReadTimeout            = 5 * time.Second
	WriteTimeout           = 120 * time.Second //ingest runs inside the request, embedding can be slow
	IdleTimeout            = 120 * time.Second
	ShutdownContextTimeout = 10 * time.Second

	//outbound calls
	DownloadTimeout     = 60 * time.Second
	NotifyTimeout       = 10 * time.Second
	PageExtractTimeout  = 10 * time.Second
	MaxIdleConns        = 50
	MaxIdleConnsPerHost = 25
	IdleConnTimeout     = 60 * time.Second

	//llm sampling - pinned, the fallback contract depends on them
	GroqBaseURL              = "https://api.groq.com/openai/v1"
	GroqModelName            = "llama-3.3-70b-versatile"
	ModelTemperature float64 = 0.3
	ModelTopP        float64 = 0.9
	ModelMaxTokens   int64   = 1000

	//vectorDB
	QdrantUseTLS          = false
	QdrantPoolSize        = 1
	BackendQdrant         = "qdrant"
	BackendLocal          = "local"
	EmbedQueryTaskType    = "RETRIEVAL_QUERY"
	EmbedDocumentTaskType = "RETRIEVAL_DOCUMENT"

	//redis
	RedisStatusStore    = 0
	RedisStatusStoreTTL = 24 * time.Hour
)

// Populated from the environment by Load. Anything not listed in
// required() keeps the default next to it.
var (
	ServerListenAddr = ":8000"

	NodeURL          string
	NodeServiceToken string
	AuthToken        string //empty disables inbound bearer auth

	GoogleEmbeddingAPIKey string
	GoogleEmbeddingModel  = "gemini-embedding-001"
	EmbeddingDimension    = int32(384)

	GroqAPIKey string

	ChunkSize    = 500
	ChunkOverlap = 50
	TopK         = 4

	VectorBackend    = BackendQdrant
	VectorCollection = "documind-index"
	QdrantHost       string
	QdrantGrpcPort   = 6334
	QdrantAPIKey     string
	LocalIndexPath   = "documind-index.json"

	RedisAddr     = "127.0.0.1:6379"
	RedisPassword = ""
)

func required() map[string]*string {
	return map[string]*string{
		"GOOGLE_API_KEY":     &GoogleEmbeddingAPIKey,
		"GROQ_API_KEY":       &GroqAPIKey,
		"NODE_URL":           &NodeURL,
		"NODE_SERVICE_TOKEN": &NodeServiceToken,
	}
}

// Load reads .env (if present) and then the process environment.
// A missing credential is a startup failure, not a runtime one.
func Load() error {
	_ = godotenv.Load() //absent .env is fine, the platform may set env directly

	var missing []string
	for name, target := range required() {
		value := os.Getenv(name)
		if value == "" {
			missing = append(missing, name)
			continue
		}
		*target = value
	}

	loadString("ML_LISTEN_ADDR", &ServerListenAddr)
	loadString("AUTH_TOKEN", &AuthToken)
	loadString("EMBEDDING_MODEL", &GoogleEmbeddingModel)
	loadInt32("EMBEDDING_DIMENSION", &EmbeddingDimension)
	loadInt("CHUNK_SIZE", &ChunkSize)
	loadInt("CHUNK_OVERLAP", &ChunkOverlap)
	loadInt("TOP_K", &TopK)
	loadString("VECTOR_BACKEND", &VectorBackend)
	loadString("VECTOR_COLLECTION", &VectorCollection)
	loadString("QDRANT_HOST", &QdrantHost)
	loadInt("QDRANT_GRPC_PORT", &QdrantGrpcPort)
	loadString("QDRANT_API_KEY", &QdrantAPIKey)
	loadString("LOCAL_INDEX_PATH", &LocalIndexPath)
	loadString("REDIS_ADDR", &RedisAddr)
	loadString("REDIS_PASSWORD", &RedisPassword)

	if VectorBackend == BackendQdrant && QdrantHost == "" {
		missing = append(missing, "QDRANT_HOST")
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	if ChunkSize <= 0 || ChunkOverlap < 0 || ChunkOverlap >= ChunkSize {
		return fmt.Errorf("invalid chunking config: CHUNK_SIZE=%d CHUNK_OVERLAP=%d", ChunkSize, ChunkOverlap)
	}
	if TopK <= 0 {
		return fmt.Errorf("invalid retrieval config: TOP_K=%d", TopK)
	}
	return nil
}

func loadString(name string, target *string) {
	if value := os.Getenv(name); value != "" {
		*target = value
	}
}

func loadInt(name string, target *int) {
	if value := os.Getenv(name); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			*target = parsed
		}
	}
}

func loadInt32(name string, target *int32) {
	if value := os.Getenv(name); value != "" {
		if parsed, err := strconv.ParseInt(value, 10, 32); err == nil {
			*target = int32(parsed)
		}
	}
}
