package common

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// PlaceholderAPIKey is the sentinel value shipped in sample configs. It must
// behave exactly like a missing key: offline mode, deterministic mocks.
const PlaceholderAPIKey = "your-api-key-here"

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	LLM      LLMConfig
	Pipeline PipelineConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Path     string
	InMemory bool
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	HTTPAddr string
}

// LLMConfig holds vision-model-related configuration
type LLMConfig struct {
	Model       string
	APIKey      string
	BaseURL     string
	Temperature float32
	Timeout     time.Duration
}

// PipelineConfig holds screenshot-pipeline configuration
type PipelineConfig struct {
	// AutoApprove commits extracted data without a review step.
	AutoApprove bool
	// ScreenshotDir is the default directory scanned by batch ingestion.
	ScreenshotDir string
}

// fileConfig mirrors Config for the optional TOML config file. Every field is
// optional; environment variables override whatever the file provides.
type fileConfig struct {
	Database struct {
		Path string `toml:"path"`
	} `toml:"database"`
	Server struct {
		HTTPAddr string `toml:"http_addr"`
	} `toml:"server"`
	LLM struct {
		Model          string  `toml:"model"`
		APIKey         string  `toml:"api_key"`
		BaseURL        string  `toml:"base_url"`
		Temperature    float32 `toml:"temperature"`
		TimeoutSeconds int     `toml:"timeout_seconds"`
	} `toml:"llm"`
	Pipeline struct {
		AutoApprove   bool   `toml:"auto_approve"`
		ScreenshotDir string `toml:"screenshot_dir"`
	} `toml:"pipeline"`
}

// LoadConfig loads configuration from environment variables.
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			Path:     getEnv("DYNASTYLAB_DB_PATH", "dynastylab.db"),
			InMemory: getEnvAsBool("DYNASTYLAB_DB_INMEM", false),
		},
		Server: ServerConfig{
			HTTPAddr: getEnv("DYNASTYLAB_HTTP_ADDR", ":8080"),
		},
		LLM: LLMConfig{
			Model:       getEnv("OPENAI_MODEL", "gpt-4o-mini"),
			APIKey:      getEnv("OPENAI_API_KEY", ""),
			BaseURL:     getEnv("OPENAI_BASE_URL", ""),
			Temperature: getEnvAsFloat32("OPENAI_TEMPERATURE", 0.0),
			Timeout:     getEnvAsDuration("OPENAI_TIMEOUT", 45*time.Second),
		},
		Pipeline: PipelineConfig{
			AutoApprove:   getEnvAsBool("DYNASTYLAB_AUTO_APPROVE", false),
			ScreenshotDir: getEnv("DYNASTYLAB_SCREENSHOT_DIR", ""),
		},
	}
}

// LoadConfigFile loads the TOML file at path, then applies environment
// overrides on top. A missing path just falls back to LoadConfig.
func LoadConfigFile(path string) (*Config, error) {
	if path == "" {
		return LoadConfig(), nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	var fc fileConfig
	if err := toml.Unmarshal(raw, &fc); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}

	cfg := &Config{
		Database: DatabaseConfig{
			Path: getEnv("DYNASTYLAB_DB_PATH", fallback(fc.Database.Path, "dynastylab.db")),
		},
		Server: ServerConfig{
			HTTPAddr: getEnv("DYNASTYLAB_HTTP_ADDR", fallback(fc.Server.HTTPAddr, ":8080")),
		},
		LLM: LLMConfig{
			Model:       getEnv("OPENAI_MODEL", fallback(fc.LLM.Model, "gpt-4o-mini")),
			APIKey:      getEnv("OPENAI_API_KEY", fc.LLM.APIKey),
			BaseURL:     getEnv("OPENAI_BASE_URL", fc.LLM.BaseURL),
			Temperature: getEnvAsFloat32("OPENAI_TEMPERATURE", fc.LLM.Temperature),
			Timeout:     getEnvAsDuration("OPENAI_TIMEOUT", secondsOrDefault(fc.LLM.TimeoutSeconds, 45*time.Second)),
		},
		Pipeline: PipelineConfig{
			AutoApprove:   getEnvAsBool("DYNASTYLAB_AUTO_APPROVE", fc.Pipeline.AutoApprove),
			ScreenshotDir: getEnv("DYNASTYLAB_SCREENSHOT_DIR", fc.Pipeline.ScreenshotDir),
		},
	}
	cfg.Database.InMemory = getEnvAsBool("DYNASTYLAB_DB_INMEM", false)
	return cfg, nil
}

// Offline reports whether the vision stages must run against deterministic
// mock data instead of a live model.
func (c *Config) Offline() bool {
	return c.LLM.APIKey == "" || c.LLM.APIKey == PlaceholderAPIKey
}

// Validate validates the loaded configuration.
func (c *Config) Validate() error {
	if c.Database.Path == "" && !c.Database.InMemory {
		return NewAppError("CONFIG_ERROR", "DYNASTYLAB_DB_PATH is required", ErrInvalidInput)
	}
	if c.Server.HTTPAddr == "" {
		return NewAppError("CONFIG_ERROR", "DYNASTYLAB_HTTP_ADDR is required", ErrInvalidInput)
	}
	return nil
}

func fallback(v, def string) string {
	if v != "" {
		return v
	}
	return def
}

func secondsOrDefault(s int, def time.Duration) time.Duration {
	if s > 0 {
		return time.Duration(s) * time.Second
	}
	return def
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvAsFloat32(key string, defaultValue float32) float32 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 32); err == nil {
			return float32(floatVal)
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
