package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrCatalogEmpty indicates no course entries are available.
	// Course name matching degrades to always-empty.
	ErrCatalogEmpty = errors.New("course catalog empty")

	// ErrStoreUnavailable indicates the metadata store is not configured.
	ErrStoreUnavailable = errors.New("store unavailable")

	// Authentication Errors.

	// ErrAuthRequired indicates the crawler requires credentials but none are configured.
	ErrAuthRequired = errors.New("authentication required")

	// ErrAuthInvalid indicates the stored credentials could not be used.
	ErrAuthInvalid = errors.New("authentication invalid")

	// Crawler Errors.

	// ErrRootFolderRequired indicates no root folder was configured for a crawl.
	ErrRootFolderRequired = errors.New("root folder id required")

	// ErrRateLimited indicates the storage provider's rate limit was exceeded.
	ErrRateLimited = errors.New("rate limited")
)
