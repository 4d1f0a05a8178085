package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bank-policy-assistant/config"
	_ "bank-policy-assistant/docs" // Swagger docs
	"bank-policy-assistant/internal/assistant"
	assistantHTTP "bank-policy-assistant/internal/assistant/delivery/http"
	"bank-policy-assistant/internal/assistant/repository"
	qdrantRepo "bank-policy-assistant/internal/assistant/repository/qdrant"
	sheetsRepo "bank-policy-assistant/internal/assistant/repository/sheets"
	voyageRepo "bank-policy-assistant/internal/assistant/repository/voyage"
	"bank-policy-assistant/internal/assistant/usecase"
	"bank-policy-assistant/internal/httpserver"
	"bank-policy-assistant/internal/middleware"
	"bank-policy-assistant/internal/router"
	"bank-policy-assistant/pkg/gsheets"
	"bank-policy-assistant/pkg/llmprovider"
	"bank-policy-assistant/pkg/log"
	"bank-policy-assistant/pkg/qdrant"
	"bank-policy-assistant/pkg/voyage"
)

// @title       Bank Policy Assistant API
// @description RAG-powered assistant for bank policy questions and leave management, backed by Qdrant, Voyage AI, Google Sheets, and a Gemini/Qwen provider chain.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Bank Policy Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Qdrant URL: %s", cfg.Qdrant.URL)

	// 3. Embeddings and vector store
	voyageClient, err := voyage.New(cfg.Voyage.APIKey)
	if err != nil {
		logger.Error(ctx, "Failed to initialize Voyage client: ", err)
		return
	}
	voyageClient.WithModel(cfg.Voyage.EmbedModel).WithRerankModel(cfg.Voyage.RerankModel)

	qdrantClient := qdrant.NewClient(cfg.Qdrant.URL)
	retriever := qdrantRepo.New(qdrantClient, voyageClient, cfg.Qdrant.CollectionName, logger)

	var reranker repository.Reranker
	if cfg.Assistant.RerankEnabled {
		reranker = voyageRepo.New(retriever, voyageClient, logger)
		logger.Info(ctx, "Reranking enabled")
	}

	// 4. Employee directory (Google Sheets)
	sheetsClient, err := gsheets.NewClientFromCredentialsFile(ctx, cfg.Sheets.CredentialsPath)
	if err != nil {
		logger.Error(ctx, "Failed to initialize Google Sheets client: ", err)
		return
	}
	directory := sheetsRepo.New(sheetsClient, cfg.Sheets.SpreadsheetID, cfg.Sheets.SheetName, logger)

	// 5. LLM provider chain
	providers, err := llmprovider.InitializeProviders(&cfg.LLM)
	if err != nil {
		logger.Error(ctx, "Failed to initialize LLM providers: ", err)
		return
	}

	llmManager := llmprovider.NewManager(providers, &llmprovider.Config{
		FallbackEnabled: cfg.LLM.FallbackEnabled,
		RetryAttempts:   cfg.LLM.RetryAttempts,
		RetryDelay:      parseDuration(cfg.LLM.RetryDelay, time.Second),
		MaxTotalTimeout: parseDuration(cfg.LLM.MaxTotalTimeout, 90*time.Second),
	}, logger)
	logger.Infof(ctx, "LLM provider chain initialized with %d provider(s)", len(providers))

	// 6. Assistant domain
	intentRouter := router.New(logger)

	assistantUC := usecase.New(logger, intentRouter, retriever, reranker, directory, llmManager, assistant.Config{
		HRContact:        cfg.Assistant.HRContact,
		SearchK:          cfg.Assistant.SearchK,
		MinLeaveDays:     cfg.Assistant.MinLeaveDays,
		MaxLeaveDays:     cfg.Assistant.MaxLeaveDays,
		RerankEnabled:    cfg.Assistant.RerankEnabled,
		LLMTemperature:   cfg.Assistant.LLMTemperature,
		DirectoryTimeout: parseDuration(cfg.Assistant.DirectoryTimeout, 10*time.Second),
		RetrievalTimeout: parseDuration(cfg.Assistant.RetrievalTimeout, 15*time.Second),
		LLMTimeout:       parseDuration(cfg.Assistant.LLMTimeout, 30*time.Second),
	})

	chatHandler := assistantHTTP.New(logger, assistantUC, directory)

	// 7. HTTP edge
	mw := middleware.New(logger, cfg.RateLimit)

	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		ChatHandler: chatHandler,
		Middleware:  mw,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

// parseDuration falls back to a default on malformed config values.
func parseDuration(raw string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
