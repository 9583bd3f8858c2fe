package router

import (
	"log/slog"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	sloggin "github.com/samber/slog-gin"

	analyticshandler "energy_backend/internal/feature/analytics/transport/handler"
	authhandler "energy_backend/internal/feature/auth/transport/handler"
	deviceshandler "energy_backend/internal/feature/devices/transport/handler"
	"energy_backend/internal/metrics"
	platformhandler "energy_backend/internal/platform/http/handler"
)

func NewRouter(auth *authhandler.AuthHandler, devices *deviceshandler.DeviceHandler,
	analytics *analyticshandler.AnalyticsHandler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(sloggin.New(slog.Default()))
	r.Use(metrics.Middleware())
	// ダッシュボードのフロントエンドは別オリジンから配信されるためCORSを許可
	r.Use(cors.Default())

	// 導通確認用
	r.GET("/healthz", platformhandler.Health)
	r.HEAD("/healthz", platformhandler.Health)
	r.OPTIONS("/healthz", platformhandler.Health)
	r.GET("/metrics", metrics.Handler())

	// 認証（セッションやトークンは発行しない）
	r.POST("/register", auth.Register)
	r.POST("/login", auth.Login)
	r.POST("/profile", auth.Profile)
	r.POST("/auth/send-otp", auth.SendOTP)
	r.POST("/auth/verify-otp", auth.VerifyOTP)

	// デバイス制御
	r.GET("/devices", devices.List)
	r.GET("/devices/:id", devices.Get)
	r.POST("/devices/:id/toggle", devices.Toggle)
	r.POST("/devices/toggleAll", devices.ToggleAll)

	// 分析リードアウト
	api := r.Group("/api")
	{
		api.GET("/consumption", analytics.Consumption)
		api.GET("/recommendations", analytics.Recommendations)
		api.GET("/forecast", analytics.Forecast)
		api.GET("/dashboard-data", analytics.Dashboard)
		api.GET("/alerts", analytics.Alerts)
	}

	return r
}
