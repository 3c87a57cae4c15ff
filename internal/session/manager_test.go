package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumeforge/internal/storage"
	"resumeforge/pkg/models"
)

func TestGetMissingSnapshotReturnsDefault(t *testing.T) {
	m := NewManager(storage.NewMemoryStore())

	record, err := m.Get(context.Background(), "fresh-session")
	require.NoError(t, err)
	assert.Equal(t, models.DefaultResume(), *record)
}

func TestGetCorruptSnapshotReturnsDefault(t *testing.T) {
	store := storage.NewMemoryStore()
	store.Put("broken", []byte("{not valid json"))
	m := NewManager(store)

	record, err := m.Get(context.Background(), "broken")
	require.NoError(t, err)
	assert.Equal(t, models.DefaultResume(), *record)
}

func TestUpdateWritesThrough(t *testing.T) {
	store := storage.NewMemoryStore()
	m := NewManager(store)
	ctx := context.Background()

	updated, err := m.Update(ctx, "abc", func(r *models.ResumeRecord) *models.ResumeRecord {
		next := r.Clone()
		next.FullName = "Taylor Reyes"
		return &next
	})
	require.NoError(t, err)
	assert.Equal(t, "Taylor Reyes", updated.FullName)

	// The snapshot is durable before Update returns
	stored, err := store.Load(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, "Taylor Reyes", stored.FullName)
}

func TestUpdateSurvivesRestart(t *testing.T) {
	store := storage.NewMemoryStore()
	ctx := context.Background()

	m1 := NewManager(store)
	_, err := m1.Update(ctx, "abc", func(r *models.ResumeRecord) *models.ResumeRecord {
		next := r.Clone()
		next.Summary = "Updated summary."
		return &next
	})
	require.NoError(t, err)

	// A new manager over the same store sees the saved record
	m2 := NewManager(store)
	record, err := m2.Get(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, "Updated summary.", record.Summary)
}

func TestGetReturnsIsolatedCopy(t *testing.T) {
	m := NewManager(storage.NewMemoryStore())
	ctx := context.Background()

	first, err := m.Get(ctx, "abc")
	require.NoError(t, err)
	first.FullName = "Mutated Locally"
	if len(first.Skills) > 0 {
		first.Skills[0].Name = "Mutated Skill"
	}

	second, err := m.Get(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, models.DefaultResume().FullName, second.FullName)
	if len(second.Skills) > 0 {
		assert.Equal(t, models.DefaultResume().Skills[0].Name, second.Skills[0].Name)
	}
}

func TestUpdateReturnsIsolatedCopy(t *testing.T) {
	m := NewManager(storage.NewMemoryStore())
	ctx := context.Background()

	updated, err := m.Update(ctx, "abc", func(r *models.ResumeRecord) *models.ResumeRecord {
		next := r.Clone()
		next.FullName = "Taylor Reyes"
		return &next
	})
	require.NoError(t, err)

	// Mutating the returned record must not reach the session's state
	updated.FullName = "Mutated Locally"
	if len(updated.Skills) > 0 {
		updated.Skills[0].Name = "Mutated Skill"
	}

	record, err := m.Get(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, "Taylor Reyes", record.FullName)
	if len(record.Skills) > 0 {
		assert.Equal(t, models.DefaultResume().Skills[0].Name, record.Skills[0].Name)
	}
}

func TestReplaceSwapsWholeRecord(t *testing.T) {
	m := NewManager(storage.NewMemoryStore())
	ctx := context.Background()

	incoming := models.ResumeRecord{FullName: "Imported Person"}
	updated, err := m.Replace(ctx, "abc", &incoming)
	require.NoError(t, err)
	assert.Equal(t, "Imported Person", updated.FullName)
	assert.Empty(t, updated.Experience)
}

func TestConcurrentUpdatesAllPersist(t *testing.T) {
	m := NewManager(storage.NewMemoryStore())
	ctx := context.Background()

	done := make(chan struct{})
	for i := 0; i < 10; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			_, err := m.Update(ctx, "abc", func(r *models.ResumeRecord) *models.ResumeRecord {
				next := r.Clone()
				next.Skills = append(next.Skills, models.Skill{ID: "x", Name: "Extra"})
				return &next
			})
			assert.NoError(t, err)
		}()
	}
	for i := 0; i < 10; i++ {
		<-done
	}

	record, err := m.Get(ctx, "abc")
	require.NoError(t, err)
	assert.Len(t, record.Skills, len(models.DefaultResume().Skills)+10)
}
