package storage

import (
	"context"
	"errors"

	"resumeforge/pkg/models"
)

// ErrNotFound is returned when no snapshot exists for a resume ID.
var ErrNotFound = errors.New("snapshot not found")

// Store persists resume snapshots keyed by resume ID. Implementations
// store the full record wholesale; there are no partial updates.
type Store interface {
	// Load returns the snapshot for the given resume ID. It returns
	// ErrNotFound when no snapshot exists and a distinct error when a
	// snapshot exists but cannot be decoded.
	Load(ctx context.Context, resumeID string) (*models.ResumeRecord, error)

	// Save replaces the snapshot for the given resume ID
	Save(ctx context.Context, resumeID string, record *models.ResumeRecord) error

	// Ping checks the backing store is reachable
	Ping(ctx context.Context) error

	// Close releases the store's resources
	Close() error
}

// ErrCorruptSnapshot is returned when a stored snapshot exists but cannot
// be decoded into a resume record.
var ErrCorruptSnapshot = errors.New("corrupt snapshot")
