package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lmittmann/tint"
	redisv9 "github.com/redis/go-redis/v9"

	"energy_backend/internal/app/di"
	"energy_backend/internal/app/router"
	"energy_backend/internal/config"
	analyticsadapters "energy_backend/internal/feature/analytics/adapters"
	analyticshandler "energy_backend/internal/feature/analytics/transport/handler"
	analyticsusecase "energy_backend/internal/feature/analytics/usecase"
	authadapters "energy_backend/internal/feature/auth/adapters"
	authhandler "energy_backend/internal/feature/auth/transport/handler"
	authusecase "energy_backend/internal/feature/auth/usecase"
	devicesadapters "energy_backend/internal/feature/devices/adapters"
	deviceshandler "energy_backend/internal/feature/devices/transport/handler"
	devicesusecase "energy_backend/internal/feature/devices/usecase"
	"energy_backend/internal/metrics"
	infradb "energy_backend/internal/platform/db"
	infraredis "energy_backend/internal/platform/redis"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	slog.SetDefault(newLogger(cfg.Env))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// リレーショナルストア
	db := infradb.OpenDB(cfg)

	// リアルタイムストア
	rtdb, err := di.NewRealtimeClient(ctx, cfg)
	if err != nil {
		log.Fatalf("realtime database: %v", err)
	}

	// Redis（任意。未接続ならキャッシュなしで稼働する）
	var rdb *redisv9.Client
	if cfg.RedisHost == "" {
		slog.Warn("REDIS_HOST not set, running without cache")
	} else if tmp, err := infraredis.NewRedisClient(cfg); err != nil {
		slog.Warn("Redis unavailable, running without cache")
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				slog.Error("failed to close Redis client", "error", err)
			}
		}()
	}

	metrics.Register()

	// Repository
	userRepo := authadapters.NewUserGorm(db)
	consumptionRepo := analyticsadapters.NewConsumptionGorm(db)
	deviceRepo := devicesadapters.NewDeviceFirebase(rtdb)
	energyRepo := di.NewEnergyRepository(rtdb, rdb)

	// Usecase
	authUC := authusecase.NewAuthUsecase(userRepo)
	devicesUC := devicesusecase.NewDeviceUsecase(deviceRepo)
	analyticsUC := analyticsusecase.NewAnalyticsUsecase(consumptionRepo, energyRepo)

	// Handler
	authH := authhandler.NewAuthHandler(authUC)
	devicesH := deviceshandler.NewDeviceHandler(devicesUC)
	analyticsH := analyticshandler.NewAnalyticsHandler(analyticsUC)

	// ルータ生成
	r := router.NewRouter(authH, devicesH, analyticsH)

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r}
	go func() {
		slog.Info("server started", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown", "error", err)
	}

	slog.Info("server shut down")
}

func newLogger(env string) *slog.Logger {
	var h slog.Handler
	if env == "local" {
		h = tint.NewHandler(os.Stdout, &tint.Options{
			Level:      slog.LevelDebug,
			TimeFormat: time.Kitchen,
		})
	} else {
		h = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return slog.New(h)
}
