package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"resumeforge/pkg/models"
)

// MemoryStore keeps snapshots in process memory. It backs single-node
// deployments and tests where Redis is not available.
type MemoryStore struct {
	mu        sync.RWMutex
	snapshots map[string][]byte
}

// NewMemoryStore creates an empty in-memory snapshot store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		snapshots: make(map[string][]byte),
	}
}

// Load retrieves and decodes the snapshot for the given resume ID
func (s *MemoryStore) Load(ctx context.Context, resumeID string) (*models.ResumeRecord, error) {
	s.mu.RLock()
	data, ok := s.snapshots[resumeID]
	s.mu.RUnlock()

	if !ok {
		return nil, ErrNotFound
	}

	var record models.ResumeRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptSnapshot, err)
	}

	return &record, nil
}

// Save encodes and stores the snapshot
func (s *MemoryStore) Save(ctx context.Context, resumeID string, record *models.ResumeRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot for %s: %w", resumeID, err)
	}

	s.mu.Lock()
	s.snapshots[resumeID] = data
	s.mu.Unlock()

	return nil
}

// Put stores raw bytes for a resume ID. Tests use it to stage corrupt
// snapshots.
func (s *MemoryStore) Put(resumeID string, data []byte) {
	s.mu.Lock()
	s.snapshots[resumeID] = append([]byte(nil), data...)
	s.mu.Unlock()
}

// Ping always succeeds for the in-memory store
func (s *MemoryStore) Ping(ctx context.Context) error {
	return nil
}

// Close is a no-op for the in-memory store
func (s *MemoryStore) Close() error {
	return nil
}
