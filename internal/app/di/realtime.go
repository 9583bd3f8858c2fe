// Package di provides dependency injection factories for creating application components.
package di

import (
	"context"
	"time"

	firebasedb "firebase.google.com/go/v4/db"
	"github.com/redis/go-redis/v9"

	"energy_backend/internal/config"
	analyticsadapters "energy_backend/internal/feature/analytics/adapters"
	"energy_backend/internal/feature/analytics/usecase"
	"energy_backend/internal/platform/cache"
	"energy_backend/internal/platform/firebase"
)

// NewRealtimeClient creates the realtime-database client from the
// service-account configuration.
func NewRealtimeClient(ctx context.Context, cfg *config.Config) (*firebasedb.Client, error) {
	return firebase.NewDatabaseClient(ctx, cfg.Firebase)
}

// NewEnergyRepository creates the analytics EnergyRepository.
// When Redis is available the realtime reads are wrapped in a short-lived
// cache; with a nil client the repository hits the store directly.
func NewEnergyRepository(client *firebasedb.Client, rdb *redis.Client) usecase.EnergyRepository {
	inner := analyticsadapters.NewEnergyFirebase(client)
	return cache.NewCachingEnergyRepository(rdb, 5*time.Minute, inner, "energy")
}
