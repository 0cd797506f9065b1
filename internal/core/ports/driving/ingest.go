package driving

import "context"

// IngestReport summarises one batch ingestion run.
type IngestReport struct {
	// RunID identifies the run in log output.
	RunID string

	// Fetched is the number of raw posts returned by the fetcher.
	Fetched int

	// Matched is the number of posts that passed the keyword filter.
	Matched int

	// Written is the number of new rows actually stored.
	// Re-running with overlapping fetch results yields Written == 0.
	Written int

	// Skipped is the number of posts rejected as invalid.
	Skipped int
}

// Ingestor orchestrates fetch, filter, classify and store for one
// discrete batch run. Runs are idempotent: the store's
// ignore-on-conflict write guarantees overlapping runs never duplicate
// or corrupt rows.
type Ingestor interface {
	// Run fetches up to limit posts for query, keeps those matching at
	// least one keyword (case-insensitive substring over title and
	// body; an empty keyword list keeps everything), classifies them
	// and writes the batch. A fetch failure aborts the run with
	// nothing committed.
	Run(ctx context.Context, query string, keywords []string, limit int) (*IngestReport, error)
}
