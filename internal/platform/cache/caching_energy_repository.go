// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"energy_backend/internal/feature/analytics/usecase"
)

// CachingEnergyRepository decorates an EnergyRepository with Redis caching.
// It implements the decorator pattern, transparently adding caching without
// modifying the underlying repository. Reads are cache-first with a
// best-effort fill; a nil Redis client bypasses the cache entirely.
//
// Only the analytics readouts are decorated. Device states are live
// toggles and must never be served stale.
type CachingEnergyRepository struct {
	inner     usecase.EnergyRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

var _ usecase.EnergyRepository = (*CachingEnergyRepository)(nil)

// NewCachingEnergyRepository decorates an EnergyRepository with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses "energy".
func NewCachingEnergyRepository(rdb *redis.Client, ttl time.Duration, inner usecase.EnergyRepository, namespace string) *CachingEnergyRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "energy"
	}
	return &CachingEnergyRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// Recommendations retrieves the recommendations value, checking cache first.
func (c *CachingEnergyRepository) Recommendations(ctx context.Context) (any, error) {
	if c.rdb == nil {
		return c.inner.Recommendations(ctx)
	}

	key := c.namespace + ":recommendations"

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out any
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to the realtime store
	out, err := c.inner.Recommendations(ctx)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// Forecast retrieves the forecast figure, checking cache first.
func (c *CachingEnergyRepository) Forecast(ctx context.Context) (*float64, error) {
	if c.rdb == nil {
		return c.inner.Forecast(ctx)
	}

	key := c.namespace + ":forecast"

	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out *float64
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		_ = c.rdb.Del(ctx, key).Err()
	}

	out, err := c.inner.Forecast(ctx)
	if err != nil {
		return nil, err
	}

	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// MonthlyConsumption retrieves the monthly consumption value, checking cache first.
func (c *CachingEnergyRepository) MonthlyConsumption(ctx context.Context) (any, error) {
	if c.rdb == nil {
		return c.inner.MonthlyConsumption(ctx)
	}

	key := c.namespace + ":monthly_consumption"

	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out any
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		_ = c.rdb.Del(ctx, key).Err()
	}

	out, err := c.inner.MonthlyConsumption(ctx)
	if err != nil {
		return nil, err
	}

	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// Alerts retrieves the alerts map, checking cache first.
func (c *CachingEnergyRepository) Alerts(ctx context.Context) (map[string]map[string]any, error) {
	if c.rdb == nil {
		return c.inner.Alerts(ctx)
	}

	key := c.namespace + ":alerts"

	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out map[string]map[string]any
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		_ = c.rdb.Del(ctx, key).Err()
	}

	out, err := c.inner.Alerts(ctx)
	if err != nil {
		return nil, err
	}

	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}
