// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional in the file; missing values fall back to environment
// variables, and required fields are checked by Validate after the merge.
type Config struct {
	// Backends
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL
	AWSRegion   string `json:"aws_region,omitempty"`   // AWS region for object storage
	S3Bucket    string `json:"s3_bucket,omitempty"`    // Bucket holding raw resume files

	// AI
	APIKey   string `json:"api_key,omitempty"`  // Gemini API key
	Provider string `json:"provider,omitempty"` // AI provider (default "gemini")

	// Logging
	LogJSON bool `json:"log_json,omitempty"` // Emit JSON logs instead of console
	Verbose bool `json:"verbose,omitempty"`  // Enable debug-level logging
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// ApplyEnv fills empty string fields from the environment. File values win
// over environment values; CLI flags are merged by the caller before this.
func (c *Config) ApplyEnv() {
	if c.DatabaseURL == "" {
		c.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if c.APIKey == "" {
		c.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if c.AWSRegion == "" {
		c.AWSRegion = os.Getenv("AWS_REGION")
	}
	if c.S3Bucket == "" {
		c.S3Bucket = os.Getenv("S3_BUCKET")
	}
	if c.Provider == "" {
		c.Provider = "gemini"
	}
}

// Validate checks that every backend the pipeline touches is configured.
func (c *Config) Validate() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("config error: database URL is required (set DATABASE_URL or 'database_url')")
	}
	if c.APIKey == "" {
		return fmt.Errorf("config error: API key is required (set GEMINI_API_KEY or 'api_key')")
	}
	if c.S3Bucket == "" {
		return fmt.Errorf("config error: S3 bucket is required (set S3_BUCKET or 's3_bucket')")
	}
	return nil
}
