// Package summarize provides factory functions for creating summarizer adapters.
package summarize

import (
	"fmt"

	"github.com/sentimark/sentimark/internal/adapters/driven/summarize/anthropic"
	"github.com/sentimark/sentimark/internal/adapters/driven/summarize/ollama"
	"github.com/sentimark/sentimark/internal/core/ports/driven"
)

// Provider names accepted by NewSummarizer.
const (
	ProviderAnthropic = "anthropic"
	ProviderOllama    = "ollama"
)

// Settings selects and configures a summarizer provider.
type Settings struct {
	// Provider is one of "anthropic" or "ollama".
	Provider string

	// Model overrides the provider's default model.
	Model string

	// BaseURL overrides the provider's default endpoint.
	BaseURL string

	// APIKey authenticates hosted providers. Ignored by ollama.
	APIKey string
}

// NewSummarizer creates a summarizer for the configured provider.
func NewSummarizer(settings Settings) (driven.Summarizer, error) {
	switch settings.Provider {
	case ProviderAnthropic:
		return anthropic.NewSummarizer(anthropic.Config{
			APIKey:  settings.APIKey,
			BaseURL: settings.BaseURL,
			Model:   settings.Model,
		})
	case ProviderOllama:
		return ollama.NewSummarizer(ollama.Config{
			BaseURL: settings.BaseURL,
			Model:   settings.Model,
		}), nil
	case "":
		return nil, fmt.Errorf("summarizer provider not configured")
	default:
		return nil, fmt.Errorf("unknown summarizer provider %q", settings.Provider)
	}
}
