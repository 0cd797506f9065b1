package mcp

import (
	"errors"

	"github.com/sentimark/sentimark/internal/core/ports/driving"
)

// ErrMissingInsights is returned when the insights port is not set.
var ErrMissingInsights = errors.New("mcp: insights service is required")

// Ports aggregates the driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Insights serves aggregate and per-post queries.
	Insights driving.Insights

	// Summaries serves lazy summary generation. Optional; when nil the
	// post_summaries tool is not registered.
	Summaries driving.SummaryService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Insights == nil {
		return ErrMissingInsights
	}
	return nil
}
