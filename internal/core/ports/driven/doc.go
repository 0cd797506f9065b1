// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - PostStore: Post persistence, aggregation queries and summary writes
//   - Scorer: Sentiment scoring over arbitrary text
//
// # External-Boundary Interfaces
//
// These wrap slow or fallible collaborators; callers bound them with a
// context deadline:
//
//   - Fetcher: Retrieves raw posts from a source (network)
//   - Summarizer: Generates natural-language summaries (LLM)
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
