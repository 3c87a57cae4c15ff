package session

import (
	"context"
	"errors"
	"sync"

	"resumeforge/internal/logging"
	"resumeforge/internal/storage"
	"resumeforge/pkg/models"
)

// Manager owns the live resume records. Each resume ID maps to one
// in-memory record loaded lazily from the store; every mutation replaces
// the record wholesale and is written through to the store before the
// call returns. Concurrent updates to the same resume serialize on its
// session lock, so the last applied update wins in full.
type Manager struct {
	store  storage.Store
	logger logging.Logger
	mu     sync.Mutex
	active map[string]*session
}

type session struct {
	mu     sync.Mutex
	record *models.ResumeRecord
}

// NewManager creates a session manager backed by the given store
func NewManager(store storage.Store) *Manager {
	return &Manager{
		store:  store,
		logger: logging.GetGlobalLogger(),
		active: make(map[string]*session),
	}
}

// Get returns a deep copy of the current record for the resume ID. A
// missing or unreadable snapshot resolves to the starter record rather
// than an error: the editor always has something to show.
func (m *Manager) Get(ctx context.Context, resumeID string) (*models.ResumeRecord, error) {
	s, err := m.load(ctx, resumeID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.record.Clone()
	return &out, nil
}

// Update applies a mutation to the record and writes the result through
// to the store. The apply function receives a private copy; the record it
// returns replaces the session's record wholesale. Returns a deep copy of
// the new record.
func (m *Manager) Update(ctx context.Context, resumeID string, apply func(*models.ResumeRecord) *models.ResumeRecord) (*models.ResumeRecord, error) {
	s, err := m.load(ctx, resumeID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current := s.record.Clone()
	next := apply(&current)
	if err := m.store.Save(ctx, resumeID, next); err != nil {
		return nil, err
	}
	s.record = next

	out := next.Clone()
	return &out, nil
}

// Replace swaps in a full record, bypassing the mutator layer. Used by
// the import endpoint.
func (m *Manager) Replace(ctx context.Context, resumeID string, record *models.ResumeRecord) (*models.ResumeRecord, error) {
	return m.Update(ctx, resumeID, func(*models.ResumeRecord) *models.ResumeRecord {
		incoming := record.Clone()
		return &incoming
	})
}

func (m *Manager) load(ctx context.Context, resumeID string) (*session, error) {
	m.mu.Lock()
	if s, ok := m.active[resumeID]; ok {
		m.mu.Unlock()
		return s, nil
	}
	m.mu.Unlock()

	record, err := m.store.Load(ctx, resumeID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			starter := models.DefaultResume()
			record = &starter
		} else if errors.Is(err, storage.ErrCorruptSnapshot) {
			m.logger.Warn("Discarding unreadable snapshot", map[string]interface{}{
				"resume_id": resumeID,
				"error":     err.Error(),
			})
			starter := models.DefaultResume()
			record = &starter
		} else {
			return nil, err
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	// Another goroutine may have loaded it while we were reading the store
	if s, ok := m.active[resumeID]; ok {
		return s, nil
	}
	s := &session{record: record}
	m.active[resumeID] = s
	return s, nil
}
