// Package domain defines the core business entities for Sentimark.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Post: A scored social-media post with its comment thread
//   - RawPost: A post as returned by a fetcher, before classification
//   - Label: The three-way sentiment bucket derived from the score
//   - SentimentSummary, DailyCount: Aggregation result records
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
