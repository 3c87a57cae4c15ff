package storage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumeforge/internal/config"
)

func TestNewRedisStoreHonorsConfig(t *testing.T) {
	cfg, err := config.LoadConfig("")
	require.NoError(t, err)
	cfg.Redis.URL = "redis://redis-host:6380/1"
	cfg.Redis.Password = "hunter2"
	cfg.Redis.DB = 3
	cfg.Redis.Timeout = 9 * time.Second

	store := NewRedisStore(cfg)
	defer store.Close()

	opts := store.client.Options()
	assert.Equal(t, "redis-host:6380", opts.Addr)
	assert.Equal(t, "hunter2", opts.Password, "explicit password overrides the URL")
	assert.Equal(t, 3, opts.DB, "explicit db overrides the URL")
	assert.Equal(t, 9*time.Second, opts.DialTimeout)
}

func TestNewRedisStoreDefaults(t *testing.T) {
	cfg, err := config.LoadConfig("")
	require.NoError(t, err)
	cfg.Redis.URL = "not a url"
	cfg.Redis.Timeout = 0

	store := NewRedisStore(cfg)
	defer store.Close()

	opts := store.client.Options()
	assert.Equal(t, "localhost:6379", opts.Addr)
	assert.Equal(t, 5*time.Second, opts.DialTimeout)
}

func TestSnapshotKey(t *testing.T) {
	assert.Equal(t, "resume:snapshot:abc-123", snapshotKey("abc-123"))
}
