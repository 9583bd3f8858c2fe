// Package handler provides HTTP handlers for the analytics feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"energy_backend/internal/feature/analytics/domain/entity"
	"energy_backend/internal/feature/analytics/transport/http/dto"
	"energy_backend/internal/feature/analytics/usecase"
)

// AnalyticsUsecase defines the usecase for the analytics readouts.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type AnalyticsUsecase interface {
	Consumption(ctx context.Context) ([]entity.Consumption, error)
	Recommendations(ctx context.Context) (any, error)
	Forecast(ctx context.Context) (float64, error)
	DashboardData(ctx context.Context) (*usecase.Dashboard, error)
	Alerts(ctx context.Context) ([]usecase.Alert, error)
}

// AnalyticsHandler handles HTTP requests for the analytics readouts.
type AnalyticsHandler struct {
	uc AnalyticsUsecase
}

// NewAnalyticsHandler creates a new AnalyticsHandler.
func NewAnalyticsHandler(uc AnalyticsUsecase) *AnalyticsHandler {
	return &AnalyticsHandler{uc: uc}
}

// Consumption serves the consumption rows ordered by ascending id.
func (h *AnalyticsHandler) Consumption(c *gin.Context) {
	rows, err := h.uc.Consumption(c.Request.Context())
	if err != nil {
		slog.Error("list consumption failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error while fetching consumption"})
		return
	}
	out := make([]dto.ConsumptionRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.ConsumptionRow{ID: r.ID, Month: r.Month, KWh: r.KWh})
	}
	c.JSON(http.StatusOK, out)
}

// Recommendations serves the stored recommendations value.
// - 404 when the store holds no recommendations
// - 500 on store failure
func (h *AnalyticsHandler) Recommendations(c *gin.Context) {
	recs, err := h.uc.Recommendations(c.Request.Context())
	if err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no recommendations found"})
			return
		}
		slog.Error("fetch recommendations failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error while fetching recommendations"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"recommendations": recs})
}

// Forecast serves the predicted next-month kWh figure.
func (h *AnalyticsHandler) Forecast(c *gin.Context) {
	forecast, err := h.uc.Forecast(c.Request.Context())
	if err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no forecast value found"})
			return
		}
		slog.Error("fetch forecast failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error while fetching forecast"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "predicted_next_month_kwh": forecast})
}

// Dashboard serves the combined monthly consumption and forecast snapshot.
// A missing forecast renders as null; a missing monthly value is a 404.
func (h *AnalyticsHandler) Dashboard(c *gin.Context) {
	data, err := h.uc.DashboardData(c.Request.Context())
	if err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no monthly data found"})
			return
		}
		slog.Error("fetch dashboard data failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error while fetching dashboard data"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":                  true,
		"monthly_consumption_kwh":  data.MonthlyConsumption,
		"predicted_next_month_kwh": data.Forecast,
	})
}

// Alerts serves the alerts listing, the store key flattened into each entry as id.
func (h *AnalyticsHandler) Alerts(c *gin.Context) {
	alerts, err := h.uc.Alerts(c.Request.Context())
	if err != nil {
		slog.Error("fetch alerts failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch alerts"})
		return
	}
	out := make([]map[string]any, 0, len(alerts))
	for _, a := range alerts {
		entry := make(map[string]any, len(a.Fields)+1)
		for k, v := range a.Fields {
			entry[k] = v
		}
		// the store key wins over any id field the producer wrote
		entry["id"] = a.ID
		out = append(out, entry)
	}
	c.JSON(http.StatusOK, gin.H{"alerts": out})
}
