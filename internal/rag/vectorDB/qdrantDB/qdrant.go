package qdrantDB

import (
	"context"
	"fmt"
	"sync"

	"github.com/documind/ml-service/internal/config"
	"github.com/documind/ml-service/internal/domain/ragModel"
	"github.com/documind/ml-service/pkg/logger_i"
	"github.com/google/uuid"
	"github.com/qdrant/go-client/qdrant"
)

var logger *logger_i.Logger
var qdrantInstance *qdrant.Client
var once sync.Once
var dimension = uint64(config.EmbeddingDimension)

type ClientHolder struct {
	QObj           *qdrant.Client
	collectionName string
}

// GetQdrantClient lazily builds the process-wide qdrant client.
// Returns nil when the connection could not be established.
func GetQdrantClient(ctx context.Context) *ClientHolder {
	once.Do(func() {
		logger = logger_i.NewLogger("Qdrant")
		res := newClient()
		if res != nil {
			qdrantInstance = res
			go closeQdrant(ctx, qdrantInstance)
		}
	})

	if qdrantInstance == nil {
		return nil
	}
	return &ClientHolder{
		QObj:           qdrantInstance,
		collectionName: config.VectorCollection,
	}
}

func newClient() *qdrant.Client {
	client, err := qdrant.NewClient(&qdrant.Config{
		Host:     config.QdrantHost,
		Port:     config.QdrantGrpcPort,
		APIKey:   config.QdrantAPIKey,
		UseTLS:   config.QdrantUseTLS,
		PoolSize: uint(config.QdrantPoolSize),
	})
	if err != nil {
		logger.Error("could not instantiate: ", "error:", err)
		return nil
	}
	return client
}

func closeQdrant(ctx context.Context, qi *qdrant.Client) {
	<-ctx.Done()
	logger.Info("Shutting down Qdrant")
	if err := qi.Close(); err != nil {
		logger.Error("could not close Qdrant: ", "error:", err)
	}
}

func (db *ClientHolder) EnsureCollection(ctx context.Context) error {
	exists, err := db.QObj.CollectionExists(ctx, db.collectionName)
	if err != nil {
		return fmt.Errorf("checking collection %q: %w", db.collectionName, err)
	}
	if exists {
		return nil
	}

	err = db.QObj.CreateCollection(ctx, &qdrant.CreateCollection{
		CollectionName: db.collectionName,
		VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
			Size:     dimension,
			Distance: qdrant.Distance_Cosine,
		}),
	})
	if err != nil {
		return fmt.Errorf("creating collection %q: %w", db.collectionName, err)
	}
	logger.Info("Created collection", "name", db.collectionName, "dimension", dimension)
	return nil
}

func (db *ClientHolder) UpsertBatch(ctx context.Context, chunks []ragModel.DocChunk, vectors [][]float32) error {
	if len(chunks) != len(vectors) {
		return fmt.Errorf("mismatch: got %d chunks but %d vectors", len(chunks), len(vectors))
	}

	qdrantPoints := make([]*qdrant.PointStruct, len(chunks))
	for i, chunk := range chunks {
		qdrantPoints[i] = &qdrant.PointStruct{
			Id:      qdrant.NewID(pointID(chunk)),
			Vectors: qdrant.NewVectors(vectors[i]...),
			Payload: qdrant.NewValueMap(map[string]any{
				"record_key": chunk.Key(),
				"fileId":     chunk.FileID,
				"chunkId":    chunk.ChunkID,
				"text":       chunk.Text,
				"source":     chunk.Source,
			}),
		}
	}

	_, err := db.QObj.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: db.collectionName,
		Points:         qdrantPoints,
		Wait:           qdrant.PtrOf(true),
	})
	if err != nil {
		return fmt.Errorf("qdrant upsert failed: %w", err)
	}
	return nil
}

func (db *ClientHolder) Search(ctx context.Context, vector []float32, topK int) ([]ragModel.QueryMatch, error) {
	result, err := db.QObj.Query(ctx, &qdrant.QueryPoints{
		CollectionName: db.collectionName,
		Query:          qdrant.NewQuery(vector...),
		Limit:          qdrant.PtrOf(uint64(topK)),
		WithPayload:    qdrant.NewWithPayload(true),
	})
	if err != nil {
		return nil, fmt.Errorf("qdrant query failed: %w", err)
	}

	matches := make([]ragModel.QueryMatch, 0, len(result))
	for _, hit := range result {
		matches = append(matches, ragModel.QueryMatch{
			FileID:  hit.Payload["fileId"].GetStringValue(),
			ChunkID: int(hit.Payload["chunkId"].GetIntegerValue()),
			Text:    hit.Payload["text"].GetStringValue(),
			Source:  hit.Payload["source"].GetStringValue(),
			Score:   hit.Score,
		})
	}
	return matches, nil
}

// pointID derives a stable UUID from the record key. Qdrant only takes
// UUID or integer ids, and a deterministic id makes re-ingesting the
// same file overwrite its old points instead of duplicating them.
func pointID(chunk ragModel.DocChunk) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(chunk.Key())).String()
}
