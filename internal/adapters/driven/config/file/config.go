// Package file loads application configuration from a TOML file.
package file

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Config is the application configuration.
type Config struct {
	// DataDir is the directory holding the SQLite database.
	DataDir string `toml:"data_dir"`

	// ListenAddr is the HTTP API bind address.
	ListenAddr string `toml:"listen_addr"`

	Reddit     RedditConfig     `toml:"reddit"`
	Summarizer SummarizerConfig `toml:"summarizer"`
}

// RedditConfig configures the listing fetcher.
type RedditConfig struct {
	// BaseURL overrides the public Reddit endpoint.
	BaseURL string `toml:"base_url"`

	// UserAgent identifies the client to Reddit.
	UserAgent string `toml:"user_agent"`

	// Subreddit is the default subreddit for ingestion runs.
	Subreddit string `toml:"subreddit"`

	// Keywords filter fetched posts. Empty keeps everything.
	Keywords []string `toml:"keywords"`

	// FetchLimit is the default listing size per run.
	FetchLimit int `toml:"fetch_limit"`
}

// SummarizerConfig selects the summary provider.
type SummarizerConfig struct {
	// Provider is "anthropic" or "ollama".
	Provider string `toml:"provider"`

	// Model overrides the provider default.
	Model string `toml:"model"`

	// BaseURL overrides the provider endpoint.
	BaseURL string `toml:"base_url"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() Config {
	return Config{
		ListenAddr: ":8080",
		Reddit: RedditConfig{
			UserAgent:  "sentimark/1.0",
			Subreddit:  "technology",
			FetchLimit: 100,
		},
		Summarizer: SummarizerConfig{
			Provider: "ollama",
		},
	}
}

// LoadConfig reads config.toml from configDir, filling unset fields
// with defaults. If configDir is empty, defaults to ~/.sentimark.
// A missing file is not an error.
func LoadConfig(configDir string) (Config, error) {
	cfg := DefaultConfig()

	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return cfg, fmt.Errorf("getting home directory: %w", err)
		}
		configDir = filepath.Join(home, ".sentimark")
	}

	path := filepath.Join(configDir, "config.toml")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing %s: %w", path, err)
	}
	return cfg, nil
}

// APIKey returns the provider API key from the environment. Secrets
// stay out of the config file.
func APIKey(provider string) string {
	switch provider {
	case "anthropic":
		return os.Getenv("ANTHROPIC_API_KEY")
	default:
		return ""
	}
}
