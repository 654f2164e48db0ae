package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ndudarev/campus-lostfound/internal/logger"
	"github.com/ndudarev/campus-lostfound/internal/models"
)

const statsCacheKey = "lostfound:stats"

// StatsCacheRepository caches the dashboard counters in Redis.
type StatsCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration for cached stats
}

// NewStatsCacheRepository creates a new repository instance with the given TTL.
func NewStatsCacheRepository(client *redis.Client, expiration time.Duration) *StatsCacheRepository {
	return &StatsCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// Get fetches the cached stats. Returns an error on a cache miss.
func (r *StatsCacheRepository) Get(ctx context.Context) (*models.Stats, error) {
	val, err := r.client.Get(ctx, statsCacheKey).Result()
	if err != nil {
		logger.Log.Infow(
			"key", statsCacheKey,
			"result", val,
			"error", err,
		)
		if err == redis.Nil {
			return nil, fmt.Errorf("stats not found in cache")
		}
		return nil, err
	}

	var stats models.Stats
	if err := json.Unmarshal([]byte(val), &stats); err != nil {
		logger.Log.Infow(
			"key", statsCacheKey,
			"value", val,
			"error", err,
		)
		return nil, err
	}

	logger.Log.Infow(
		"key", statsCacheKey,
		"result", stats,
		"error", nil,
	)

	return &stats, nil
}

// Set caches the stats with the configured expiration.
func (r *StatsCacheRepository) Set(ctx context.Context, stats *models.Stats) error {
	data, err := json.Marshal(stats)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, statsCacheKey, data, r.exp).Err()

	logger.Log.Infow(
		"key", statsCacheKey,
		"stats", stats,
		"result", "ok",
		"error", err,
	)

	return err
}

// Drop removes the cached stats. Called after every item write.
func (r *StatsCacheRepository) Drop(ctx context.Context) error {
	err := r.client.Del(ctx, statsCacheKey).Err()

	logger.Log.Infow(
		"key", statsCacheKey,
		"result", "dropped",
		"error", err,
	)

	return err
}
