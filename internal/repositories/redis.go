package repositories

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/sandgren/gift-rates/internal/logger"
	"github.com/sandgren/gift-rates/internal/models"
)

const redisKeyPrefix = "rate_snapshot:"

// RedisStore keeps rate snapshots in Redis for the long-running serve mode,
// one whole-snapshot JSON value per base currency. Staleness is still
// decided by the conversion engine from the stored timestamp, so entries
// are written without a Redis expiry and the TTL policy stays in one place.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore creates a store backed by the given Redis client.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func redisKey(base string) string {
	return redisKeyPrefix + base
}

// ReadSnapshot returns the snapshot for a base currency, or absent when the
// key is missing, Redis is unreachable, or the value does not parse.
func (s *RedisStore) ReadSnapshot(ctx context.Context, base string) (models.RateSnapshot, bool) {
	val, err := s.client.Get(ctx, redisKey(base)).Result()
	if err != nil {
		if err != redis.Nil {
			logger.Log.Warnw("rate cache read failed, treating as empty", "base", base, "error", err)
		}
		return models.RateSnapshot{}, false
	}
	var snap models.RateSnapshot
	if err := json.Unmarshal([]byte(val), &snap); err != nil {
		logger.Log.Warnw("rate cache entry corrupted, treating as empty", "base", base, "error", err)
		return models.RateSnapshot{}, false
	}
	if snap.Rates == nil {
		return models.RateSnapshot{}, false
	}
	return snap, true
}

// WriteSnapshot replaces the snapshot for one base currency. Other bases'
// entries are separate keys and are untouched.
func (s *RedisStore) WriteSnapshot(ctx context.Context, base string, snap models.RateSnapshot) error {
	payload, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode rate snapshot: %w", err)
	}
	if err := s.client.Set(ctx, redisKey(base), payload, 0).Err(); err != nil {
		return fmt.Errorf("write rate snapshot: %w", err)
	}
	return nil
}

// Clear deletes every cached snapshot.
func (s *RedisStore) Clear(ctx context.Context) error {
	keys, err := s.client.Keys(ctx, redisKeyPrefix+"*").Result()
	if err != nil {
		return fmt.Errorf("list rate snapshots: %w", err)
	}
	if len(keys) == 0 {
		return nil
	}
	if err := s.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("delete rate snapshots: %w", err)
	}
	return nil
}

// Status inspects the snapshot for a base currency without modifying it.
func (s *RedisStore) Status(ctx context.Context, base string, ttlHours int) models.CacheStatus {
	val, err := s.client.Get(ctx, redisKey(base)).Result()
	if err != nil {
		st := models.CacheStatus{Expired: true, TTLHours: ttlHours}
		if err != redis.Nil {
			st.Error = err.Error()
		}
		return st
	}
	var snap models.RateSnapshot
	if err := json.Unmarshal([]byte(val), &snap); err != nil {
		return models.CacheStatus{
			Expired:  true,
			TTLHours: ttlHours,
			Error:    fmt.Sprintf("cache entry for %s is corrupted: %v", base, err),
		}
	}
	if snap.Rates == nil {
		return models.CacheStatus{Expired: true, TTLHours: ttlHours}
	}
	return snapshotStatus(snap, ttlHours)
}
