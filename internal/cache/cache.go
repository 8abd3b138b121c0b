// Package cache provides a Redis read-through cache for raw chain samples.
// Only raw query results are cached; computed indicator series are always
// recomputed and never stored.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/omarwaleed/optionlens/internal/config"
	"github.com/omarwaleed/optionlens/internal/metrics"
	"github.com/omarwaleed/optionlens/internal/storage"
	"github.com/omarwaleed/optionlens/pkg/logger"
	"github.com/omarwaleed/optionlens/pkg/series"
)

// SampleCache caches raw metric samples keyed by their query. A nil
// *SampleCache is valid and behaves as a pass-through.
type SampleCache struct {
	client *redis.Client
	ttl    time.Duration
}

// New connects to Redis and verifies connectivity.
func New(cfg config.RedisConfig) (*SampleCache, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     cfg.PoolSize,
		MinIdleConns: cfg.MinIdleConns,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logger.Info("Connected to Redis",
		logger.String("host", cfg.Host),
		logger.Int("port", cfg.Port),
	)

	return &SampleCache{client: rdb, ttl: cfg.CacheTTL}, nil
}

// Get returns the cached samples for a query, if present.
func (c *SampleCache) Get(ctx context.Context, q storage.SampleQuery) ([]series.Sample, bool) {
	if c == nil {
		return nil, false
	}

	data, err := c.client.Get(ctx, sampleKey(q)).Bytes()
	if err != nil {
		if err != redis.Nil {
			logger.Warn("Sample cache read failed", logger.ErrorField(err))
		}
		metrics.CacheMisses.Inc()
		return nil, false
	}

	var samples []series.Sample
	if err := json.Unmarshal(data, &samples); err != nil {
		logger.Warn("Sample cache entry corrupt", logger.ErrorField(err))
		metrics.CacheMisses.Inc()
		return nil, false
	}

	metrics.CacheHits.Inc()
	return samples, true
}

// Set stores the samples for a query. Failures are logged, not propagated;
// the cache is best-effort.
func (c *SampleCache) Set(ctx context.Context, q storage.SampleQuery, samples []series.Sample) {
	if c == nil {
		return
	}

	data, err := json.Marshal(samples)
	if err != nil {
		logger.Warn("Failed to marshal samples for cache", logger.ErrorField(err))
		return
	}
	if err := c.client.Set(ctx, sampleKey(q), data, c.ttl).Err(); err != nil {
		logger.Warn("Sample cache write failed", logger.ErrorField(err))
	}
}

// Close closes the Redis connection.
func (c *SampleCache) Close() error {
	if c == nil {
		return nil
	}
	return c.client.Close()
}

// sampleKey builds the cache key for a query.
func sampleKey(q storage.SampleQuery) string {
	return fmt.Sprintf("chain:samples:%s:%s:%s:%s:%s:%s",
		q.Symbol, q.Expiration, q.Metric, q.Side, q.StartDate, q.EndDate)
}
