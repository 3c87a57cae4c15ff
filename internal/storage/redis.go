package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"resumeforge/internal/config"
	"resumeforge/internal/logging"
	"resumeforge/pkg/models"
)

const snapshotKeyPrefix = "resume:snapshot:"

// RedisStore persists resume snapshots as JSON values in Redis.
type RedisStore struct {
	client *redis.Client
	config *config.Config
	logger logging.Logger
}

// NewRedisStore creates a new Redis-backed snapshot store
func NewRedisStore(cfg *config.Config) *RedisStore {
	opts, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		// Fallback to default configuration
		opts = &redis.Options{
			Addr:     "localhost:6379",
			Password: "",
			DB:       0,
		}
	}

	// Explicit settings take precedence over what the URL carries
	if cfg.Redis.Password != "" {
		opts.Password = cfg.Redis.Password
	}
	if cfg.Redis.DB != 0 {
		opts.DB = cfg.Redis.DB
	}

	dialTimeout := cfg.Redis.Timeout
	if dialTimeout <= 0 {
		dialTimeout = 5 * time.Second
	}
	opts.DialTimeout = dialTimeout
	opts.ReadTimeout = 3 * time.Second
	opts.WriteTimeout = 3 * time.Second

	return &RedisStore{
		client: redis.NewClient(opts),
		config: cfg,
		logger: logging.GetGlobalLogger(),
	}
}

func snapshotKey(resumeID string) string {
	return snapshotKeyPrefix + resumeID
}

// Load retrieves and decodes the snapshot for the given resume ID
func (s *RedisStore) Load(ctx context.Context, resumeID string) (*models.ResumeRecord, error) {
	data, err := s.client.Get(ctx, snapshotKey(resumeID)).Result()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot for %s: %w", resumeID, err)
	}

	var record models.ResumeRecord
	if err := json.Unmarshal([]byte(data), &record); err != nil {
		s.logger.Warn("Stored snapshot could not be decoded", map[string]interface{}{
			"resume_id": resumeID,
			"error":     err.Error(),
		})
		return nil, fmt.Errorf("%w: %v", ErrCorruptSnapshot, err)
	}

	return &record, nil
}

// Save encodes and stores the snapshot, applying the configured TTL
func (s *RedisStore) Save(ctx context.Context, resumeID string, record *models.ResumeRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot for %s: %w", resumeID, err)
	}

	if err := s.client.Set(ctx, snapshotKey(resumeID), data, s.config.Session.SnapshotTTL).Err(); err != nil {
		return fmt.Errorf("failed to save snapshot for %s: %w", resumeID, err)
	}

	return nil
}

// Ping tests the Redis connection
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close closes the Redis connection
func (s *RedisStore) Close() error {
	return s.client.Close()
}
