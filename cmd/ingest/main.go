package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"
	"time"

	"samvidhan-ai-be/internal/config"
	"samvidhan-ai-be/internal/entity"
	"samvidhan-ai-be/internal/repository/implementation"
	"samvidhan-ai-be/pkg/database"
	"samvidhan-ai-be/pkg/embedding"
	"samvidhan-ai-be/pkg/utils"

	"github.com/fatih/color"
	"github.com/google/uuid"
)

const (
	chunkSize    = 1500
	chunkOverlap = 200
)

// sectionRecord is one entry of the ingest file: a full statute section
// or judgment passage with its source metadata.
type sectionRecord struct {
	Act     string `json:"act"`
	Section string `json:"section"`
	Domain  string `json:"domain"`
	Text    string `json:"text"`
}

func main() {
	filePath := flag.String("file", "", "path to a JSON file of statute sections")
	flag.Parse()

	if *filePath == "" {
		log.Fatal("Usage: ingest -file <sections.json>")
	}

	cfg := config.Load()

	raw, err := os.ReadFile(*filePath)
	if err != nil {
		log.Fatalf("Error: Failed to read %s: %v", *filePath, err)
	}

	var records []sectionRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		log.Fatalf("Error: Failed to parse %s: %v", *filePath, err)
	}

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Fatalf("Error: Failed to connect to database: %v", err)
	}
	chunkRepo := implementation.NewStatuteChunkRepository(db)

	var provider embedding.EmbeddingProvider
	if cfg.Ai.EmbeddingProvider == "ollama" {
		provider = embedding.NewOllamaProvider(cfg.Ai.OllamaBaseURL, cfg.Ai.OllamaModel)
	} else {
		provider = embedding.NewMistralProvider(cfg.Ai.MistralAPIKey)
	}

	color.Cyan("=== Statute Ingestion ===")
	color.Cyan("File: %s (%d sections)", *filePath, len(records))

	ctx := context.Background()
	indexed, failed := 0, 0

	for _, record := range records {
		chunks := utils.SplitText(record.Text, chunkSize, chunkOverlap)

		newChunks := make([]*entity.StatuteChunk, 0, len(chunks))
		embedErr := false
		for i, chunk := range chunks {
			res, err := provider.Generate(chunk, "RETRIEVAL_DOCUMENT")
			if err != nil {
				color.Red("✗ %s s.%s chunk %d: %v", record.Act, record.Section, i, err)
				embedErr = true
				break
			}
			newChunks = append(newChunks, &entity.StatuteChunk{
				Id:         uuid.New(),
				Text:       chunk,
				Act:        record.Act,
				Section:    record.Section,
				Domain:     record.Domain,
				ChunkIndex: i,
				Embedding:  res.Embedding.Values,
				CreatedAt:  time.Now(),
			})
		}
		if embedErr {
			failed++
			continue
		}

		// Replace semantics: re-running the ingest never duplicates a section.
		if err := chunkRepo.DeleteBySection(ctx, record.Act, record.Section); err != nil {
			color.Red("✗ %s s.%s: failed to clear old chunks: %v", record.Act, record.Section, err)
			failed++
			continue
		}
		if err := chunkRepo.CreateBulk(ctx, newChunks); err != nil {
			color.Red("✗ %s s.%s: failed to insert chunks: %v", record.Act, record.Section, err)
			failed++
			continue
		}

		color.Green("✓ %s s.%s (%d chunks)", record.Act, record.Section, len(newChunks))
		indexed++
	}

	color.Cyan("Done: %d sections indexed, %d failed", indexed, failed)
	if failed > 0 {
		os.Exit(1)
	}
}
