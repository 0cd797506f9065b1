package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested post does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidPost indicates a post is missing a required field.
	// Invalid posts are rejected before they reach storage.
	ErrInvalidPost = errors.New("invalid post")

	// ErrInvalidArgument indicates a malformed query parameter,
	// such as a negative window or an unknown label.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrStorageUnavailable indicates the backing store is unreachable.
	// Fatal for the current operation, not for the process.
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrUpstreamUnavailable indicates the fetcher or summarizer failed
	// or timed out. Transient - callers may retry on a future request.
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
)
