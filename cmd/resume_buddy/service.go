package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/dev-rohit-gupta/resume-buddy/internal/career"
	"github.com/dev-rohit-gupta/resume-buddy/internal/config"
	"github.com/dev-rohit-gupta/resume-buddy/internal/db"
	"github.com/dev-rohit-gupta/resume-buddy/internal/engine"
	"github.com/dev-rohit-gupta/resume-buddy/internal/llm"
	"github.com/dev-rohit-gupta/resume-buddy/internal/logger"
	"github.com/dev-rohit-gupta/resume-buddy/internal/storage"
)

// Global flags shared by every command that touches the backends.
var (
	configPath  string
	databaseURL string
	apiKey      string
	jsonLogs    bool
	verbose     bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to JSON config file")
	rootCmd.PersistentFlags().StringVar(&databaseURL, "db-url", "", "Database URL (overrides DATABASE_URL env var)")
	rootCmd.PersistentFlags().StringVar(&apiKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	rootCmd.PersistentFlags().BoolVar(&jsonLogs, "json-logs", false, "Emit JSON logs")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

func loadConfig() (*config.Config, error) {
	cfg := &config.Config{}
	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	// CLI flags win over file values, which win over the environment.
	if databaseURL != "" {
		cfg.DatabaseURL = databaseURL
	}
	if apiKey != "" {
		cfg.APIKey = apiKey
	}
	if verbose {
		cfg.Verbose = true
	}
	if jsonLogs {
		cfg.LogJSON = true
	}
	cfg.ApplyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// buildService wires the full pipeline: config, logger, database, object
// storage, AI client. The returned cleanup closes every connection.
func buildService(ctx context.Context) (*career.Service, *zap.Logger, func(), error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, nil, err
	}

	log, err := logger.New(cfg.LogJSON, cfg.Verbose)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to build logger: %w", err)
	}

	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	objects, err := storage.NewS3Store(ctx, cfg.AWSRegion, cfg.S3Bucket)
	if err != nil {
		database.Close()
		return nil, nil, nil, fmt.Errorf("failed to configure object storage: %w", err)
	}

	llmConfig := llm.DefaultConfig()
	llmConfig.Provider = llm.Provider(cfg.Provider)
	client, err := llm.NewClient(ctx, llmConfig, cfg.APIKey)
	if err != nil {
		database.Close()
		return nil, nil, nil, fmt.Errorf("failed to create AI client: %w", err)
	}

	cleanup := func() {
		_ = client.Close()
		database.Close()
		_ = log.Sync()
	}

	svc := career.NewService(database, objects, engine.New(client, log), log)
	return svc, log, cleanup, nil
}

// printJSON writes the value as indented JSON to stdout.
func printJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
