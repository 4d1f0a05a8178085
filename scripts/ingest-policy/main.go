package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"

	"bank-policy-assistant/config"
	"bank-policy-assistant/pkg/log"
	pkgQdrant "bank-policy-assistant/pkg/qdrant"
	"bank-policy-assistant/pkg/voyage"
)

// embedBatchSize keeps each Voyage request well under the API's input limit.
const embedBatchSize = 64

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: go run scripts/ingest-policy/main.go <path/to/config.yaml>")
		fmt.Println("Example: go run scripts/ingest-policy/main.go config/config.yaml")
		os.Exit(1)
	}
	configPath := os.Args[1]

	// Load config
	os.Setenv("CONFIG_PATH", configPath)
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize Logger
	logger := log.Init(log.ZapConfig{
		Level:        "info",
		Mode:         "development",
		ColorEnabled: true,
	})

	ctx := context.Background()

	// Read the policy manual
	raw, err := os.ReadFile(cfg.Ingest.SourcePath)
	if err != nil {
		logger.Fatalf(ctx, "Failed to read policy manual %q: %v", cfg.Ingest.SourcePath, err)
	}

	chunks := chunkText(string(raw), cfg.Ingest.ChunkSize, cfg.Ingest.ChunkOverlap)
	if len(chunks) == 0 {
		logger.Fatalf(ctx, "Policy manual %q produced no chunks", cfg.Ingest.SourcePath)
	}
	logger.Infof(ctx, "Split %q into %d chunks (size=%d overlap=%d)",
		cfg.Ingest.SourcePath, len(chunks), cfg.Ingest.ChunkSize, cfg.Ingest.ChunkOverlap)

	// Initialize clients
	embedder, err := voyage.New(cfg.Voyage.APIKey)
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize Voyage API: %v", err)
	}
	embedder.WithModel(cfg.Voyage.EmbedModel)

	qdrantClient := pkgQdrant.NewClient(cfg.Qdrant.URL)

	// Create the collection; an existing collection is fine for re-ingest
	err = qdrantClient.CreateCollection(ctx, pkgQdrant.CreateCollectionRequest{
		Name: cfg.Qdrant.CollectionName,
		Vectors: pkgQdrant.VectorConfig{
			Size:     cfg.Qdrant.VectorSize,
			Distance: "Cosine",
		},
	})
	if err != nil {
		if !strings.Contains(err.Error(), "already exists") {
			logger.Fatalf(ctx, "Failed to create collection: %v", err)
		}
		logger.Infof(ctx, "Collection %q already exists, re-ingesting", cfg.Qdrant.CollectionName)
	}

	logger.Info(ctx, "Starting ingest...")

	successCount := 0
	for start := 0; start < len(chunks); start += embedBatchSize {
		end := start + embedBatchSize
		if end > len(chunks) {
			end = len(chunks)
		}
		batch := chunks[start:end]

		vectors, err := embedder.Embed(ctx, batch)
		if err != nil {
			logger.Errorf(ctx, "Failed to embed chunks %d-%d: %v", start, end-1, err)
			continue
		}

		points := make([]pkgQdrant.Point, 0, len(batch))
		for i, vector := range vectors {
			chunkIndex := start + i
			points = append(points, pkgQdrant.Point{
				// Deterministic ID so re-ingest overwrites instead of duplicating
				ID:     chunkPointID(cfg.Ingest.SourcePath, chunkIndex),
				Vector: vector,
				Payload: map[string]interface{}{
					"text":        batch[i],
					"chunk_index": chunkIndex,
					"source":      cfg.Ingest.SourcePath,
				},
			})
		}

		err = qdrantClient.UpsertPoints(ctx, cfg.Qdrant.CollectionName, pkgQdrant.UpsertPointsRequest{
			Points: points,
		})
		if err != nil {
			logger.Errorf(ctx, "Failed to upsert chunks %d-%d: %v", start, end-1, err)
			continue
		}

		successCount += len(points)
		logger.Infof(ctx, "Ingested chunks %d-%d", start, end-1)
	}

	logger.Infof(ctx, "Ingest complete! %d/%d chunks successfully stored.", successCount, len(chunks))
}

// chunkPointID derives a stable UUID from the source path and chunk index.
func chunkPointID(source string, index int) string {
	return uuid.NewSHA1(uuid.NameSpaceDNS, []byte(fmt.Sprintf("%s#%d", source, index))).String()
}

// chunkText splits text into overlapping chunks, breaking on word
// boundaries so no chunk starts or ends mid-word.
func chunkText(text string, size, overlap int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	if size <= 0 {
		size = 500
	}
	if overlap < 0 || overlap >= size {
		overlap = 0
	}

	var chunks []string
	var current []string
	currentLen := 0
	freshWords := 0

	flush := func() {
		if len(current) == 0 {
			return
		}
		chunks = append(chunks, strings.Join(current, " "))

		// Carry the tail of this chunk into the next one
		carried := make([]string, 0)
		carriedLen := 0
		for i := len(current) - 1; i >= 0; i-- {
			wordLen := len(current[i]) + 1
			if carriedLen+wordLen > overlap {
				break
			}
			carried = append([]string{current[i]}, carried...)
			carriedLen += wordLen
		}
		current = carried
		currentLen = carriedLen
		freshWords = 0
	}

	for _, word := range words {
		wordLen := len(word) + 1
		if currentLen+wordLen > size && len(current) > 0 {
			flush()
		}
		current = append(current, word)
		currentLen += wordLen
		freshWords++
	}
	// The carried overlap alone is not a new chunk
	if freshWords > 0 {
		chunks = append(chunks, strings.Join(current, " "))
	}

	return chunks
}
