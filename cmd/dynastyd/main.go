package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/Hustada/dynastylab/internal/common"
	"github.com/Hustada/dynastylab/internal/export"
	"github.com/Hustada/dynastylab/internal/llm"
	"github.com/Hustada/dynastylab/internal/llm/openai"
	"github.com/Hustada/dynastylab/internal/pipeline"
	"github.com/Hustada/dynastylab/internal/repository"
	"github.com/Hustada/dynastylab/internal/server"
	"github.com/Hustada/dynastylab/internal/vision"
)

func main() {
	configPath := flag.String("config", "", "path to TOML config file (optional)")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg, err := common.LoadConfigFile(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid config", "error", err)
		os.Exit(1)
	}

	db, err := repository.Open(ctx, cfg.Database, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Warn("database close failed", "error", err)
		}
	}()

	stores := pipeline.Stores{
		Seasons:  repository.NewSeasonRepository(db, logger),
		Games:    repository.NewGameRepository(db, logger),
		Players:  repository.NewPlayerRepository(db, logger),
		Recruits: repository.NewRecruitRepository(db, logger),
		Coaches:  repository.NewCoachRepository(db, logger),
		Teams:    repository.NewTeamRepository(db, logger),
	}

	// Vision client (graceful if missing: offline mode with mock data)
	var client llm.VisionClient
	if cfg.Offline() {
		logger.Warn("OpenAI API key not configured, running in offline mode")
	} else {
		client = openai.NewClient(openai.Config{
			APIKey:      cfg.LLM.APIKey,
			BaseURL:     cfg.LLM.BaseURL,
			Model:       cfg.LLM.Model,
			Temperature: cfg.LLM.Temperature,
			Timeout:     cfg.LLM.Timeout,
		}, logger)
		logger.Info("OpenAI client initialized", "model", cfg.LLM.Model)
	}

	orch := pipeline.NewOrchestrator(
		vision.NewClassifier(client, logger),
		vision.NewExtractor(client, logger),
		pipeline.NewRouter(stores, logger),
		logger,
	)
	exporter := export.NewService(stores, logger)

	srv := &http.Server{
		Addr:              cfg.Server.HTTPAddr,
		Handler:           server.New(orch, stores, exporter, logger).Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("http serving", "addr", cfg.Server.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http serve failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown failed", "error", err)
	}
	logger.Info("stopped")
}
