package storage

import "errors"

// Common client storage errors
var (
	// ErrCollectionNotFound indicates that no cached photo collection exists
	ErrCollectionNotFound = errors.New("cached photo collection not found")

	// ErrClientNameNotFound indicates that no client name has been persisted yet
	ErrClientNameNotFound = errors.New("client name not found")

	// ErrStorageClosed indicates that storage is closed
	ErrStorageClosed = errors.New("storage is closed")
)
