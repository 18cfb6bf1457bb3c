package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dreschagin/vitals-dashboard/internal/application/dto"
	"github.com/redis/go-redis/v9"
)

// latestSnapshotKey is the single key holding the most recent snapshot.
// The feed is single-patient, so one key is enough
const latestSnapshotKey = "vitals:snapshot:latest"

// SnapshotCache mirrors the latest published snapshot into Redis.
// Implements port.SnapshotCache
type SnapshotCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSnapshotCache creates a new Redis-backed snapshot cache
func NewSnapshotCache(host, port, password string, db int, ttl time.Duration) (*SnapshotCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:       fmt.Sprintf("%s:%s", host, port),
		Password:   password,
		DB:         db,
		MaxRetries: 3,
	})

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &SnapshotCache{
		client: client,
		ttl:    ttl,
	}, nil
}

// SetLatest stores the most recent snapshot under a fixed key with TTL
func (c *SnapshotCache) SetLatest(ctx context.Context, snapshot *dto.VitalSnapshotDTO) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	if err := c.client.Set(ctx, latestSnapshotKey, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache snapshot: %w", err)
	}

	return nil
}

// GetLatest retrieves the most recent snapshot
func (c *SnapshotCache) GetLatest(ctx context.Context) (*dto.VitalSnapshotDTO, error) {
	val, err := c.client.Get(ctx, latestSnapshotKey).Result()
	if err == redis.Nil {
		return nil, fmt.Errorf("cache miss: no snapshot cached")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get snapshot from cache: %w", err)
	}

	var snapshot dto.VitalSnapshotDTO
	if err := json.Unmarshal([]byte(val), &snapshot); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached snapshot: %w", err)
	}

	return &snapshot, nil
}

// Close closes the Redis connection
func (c *SnapshotCache) Close() error {
	return c.client.Close()
}
