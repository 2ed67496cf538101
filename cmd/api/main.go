// @title           DocuMind ML Service
// @version         1.0
// @description     Document ingestion and retrieval-augmented question answering over a vector index.

// @license.name    Apache 2.0
// @license.url     http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8000
// @BasePath  /
// @schemes   http https
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/documind/ml-service/internal/config"
	"github.com/documind/ml-service/internal/data/store"
	"github.com/documind/ml-service/internal/handlers"
	"github.com/documind/ml-service/internal/notify"
	"github.com/documind/ml-service/internal/rag"
	"github.com/documind/ml-service/internal/rag/embedding/googleEmbedding"
	"github.com/documind/ml-service/internal/rag/ingest"
	"github.com/documind/ml-service/internal/rag/llm/groq"
	"github.com/documind/ml-service/internal/rag/vectorDB"
	"github.com/documind/ml-service/internal/rag/vectorDB/localDB"
	"github.com/documind/ml-service/internal/rag/vectorDB/qdrantDB"
	"github.com/documind/ml-service/internal/server"
	"github.com/documind/ml-service/pkg/logger_i"
)

var listenAddr string

func main() {

	logger_i.Init()
	var logger = logger_i.NewLogger("main")

	//config, a missing credential kills the process before any listener opens
	if err := config.Load(); err != nil {
		logger.Error("Configuration error", "error", err)
		os.Exit(1)
	}

	flag.StringVar(&listenAddr, "listen-addr", config.ServerListenAddr, "server listen address")
	flag.Parse()

	serviceContext, closeExternalServices := context.WithCancel(context.Background())
	defer closeExternalServices()

	var vector vectorDB.DataStore
	if config.VectorBackend == config.BackendLocal {
		vector = localDB.NewStore(config.LocalIndexPath)
	} else {
		holder := qdrantDB.GetQdrantClient(serviceContext)
		if holder == nil {
			logger.Error("Qdrant failed to initialize. Shutting down.")
			return
		}
		vector = holder
	}

	embeddingService := googleEmbedding.GetGoogleEmbeddingClient(serviceContext, config.GoogleEmbeddingModel, config.GoogleEmbeddingAPIKey)
	llmProvider := groq.GetGroqClient(serviceContext, config.GroqAPIKey, config.GroqModelName)

	if embeddingService == nil || llmProvider == nil {
		logger.Error("One or more external services failed to initialize. Shutting down.")
		logger.Debug("Available services : ", "EmbeddingService", embeddingService != nil, "LLMProvider", llmProvider != nil)
		return
	}

	var statusStore store.StatusStore
	if redisStatuses := store.GetRedisStatusStore(serviceContext); redisStatuses != nil {
		statusStore = redisStatuses
	} else {
		logger.Error("Redis is offline, ingest statuses will not survive restarts")
		statusStore = store.InitInMemoryStatusStore()
	}

	notifier := notify.NewNodeNotifier(config.NodeURL, config.NodeServiceToken)

	ragService := rag.NewService(vector, llmProvider, embeddingService, ingest.Loader{}, notifier, statusStore)
	handlers.InitHandlers(ragService, statusStore)

	//server handling
	gracefulShutdown := make(chan os.Signal, 1)
	signal.Notify(gracefulShutdown, syscall.SIGINT, syscall.SIGTERM)
	stopExecution := make(chan bool, 1)

	shutdownParams := server.ShutdownParams{
		GracefulShutdown: gracefulShutdown,
		StopExecution:    stopExecution,
		CloseServices:    closeExternalServices,
	}
	go server.ShutDownHandler(shutdownParams)
	go server.CreateServer(listenAddr)

	<-stopExecution
	logger.Info("Server stopped")
}
