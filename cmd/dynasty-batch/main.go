package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/Hustada/dynastylab/internal/common"
	"github.com/Hustada/dynastylab/internal/export"
	"github.com/Hustada/dynastylab/internal/ingest"
	"github.com/Hustada/dynastylab/internal/llm"
	"github.com/Hustada/dynastylab/internal/llm/openai"
	"github.com/Hustada/dynastylab/internal/pipeline"
	"github.com/Hustada/dynastylab/internal/repository"
	"github.com/Hustada/dynastylab/internal/vision"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		dir        = flag.String("dir", "", "directory of screenshots to process (required)")
		inmem      = flag.Bool("inmem", false, "use in-memory SQLite database")
		dbPath     = flag.String("db", "", "SQLite database path (overrides config)")
		auto       = flag.Bool("auto", false, "auto-approve: commit extracted data without review")
		out        = flag.String("out", "", "output XLSX file path (optional)")
		configPath = flag.String("config", "", "path to TOML config file (optional)")
	)
	flag.Parse()

	if *dir == "" {
		printError("Error: --dir is required\n")
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()

	cfg, err := common.LoadConfigFile(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if *dbPath != "" {
		cfg.Database.Path = *dbPath
	}
	if *inmem {
		cfg.Database.InMemory = true
	}
	autoApprove := *auto || cfg.Pipeline.AutoApprove

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

	// Progress feed for the console
	unsubscribe := orch.Subscribe(func(ev pipeline.Event) {
		switch ev.Type {
		case pipeline.EventError:
			fmt.Printf("  ! %s\n", ev.Message)
		default:
			fmt.Printf("  - %s\n", ev.Message)
		}
	})
	defer unsubscribe()

	logger.Info("scanning directory", "dir", *dir)
	paths, dirStats, err := ingest.ScanDirectory(*dir, nil, true)
	if err != nil {
		logger.Error("failed to scan directory", "error", err)
		os.Exit(1)
	}
	logger.Info("scan complete",
		"scanned", dirStats.Scanned,
		"matched", dirStats.Matched,
		"skipped", dirStats.Skipped)

	runner := pipeline.NewBatchRunner(orch, logger)
	items, stats := runner.Run(ctx, paths, autoApprove)

	for _, item := range items {
		fmt.Printf("%s: %s\n", filepath.Base(item.Path), item.Status)
	}

	if *out != "" {
		exporter := export.NewService(stores, logger)
		raw, err := exporter.ExportDynastyXLSX(ctx)
		if err != nil {
			logger.Error("failed to export workbook", "error", err)
			os.Exit(1)
		}
		if err := os.WriteFile(*out, raw, 0644); err != nil {
			logger.Error("failed to write output file", "error", err)
			os.Exit(1)
		}
		logger.Info("workbook written", "output", *out)
	}

	fmt.Printf("Batch processing complete!\n")
	fmt.Printf("- Screenshots: %d\n", stats.Total)
	fmt.Printf("- Committed: %d\n", stats.Committed)
	fmt.Printf("- Awaiting review: %d\n", stats.AwaitingReview)
	fmt.Printf("- Failures: %d\n", stats.Failed)
}
