package usecase

import (
	"context"
	"sort"

	"energy_backend/internal/feature/analytics/domain/entity"
)

// ConsumptionRepository abstracts the relational store holding consumption rows.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type ConsumptionRepository interface {
	// ListByID returns every consumption row ordered by ascending id.
	ListByID(ctx context.Context) ([]entity.Consumption, error)
}

// EnergyRepository abstracts the realtime-store paths holding precomputed
// analytics. The values are schemaless, the store pass-through keeps
// whatever shape the producer wrote.
type EnergyRepository interface {
	// Recommendations returns the value under the recommendations path, nil when absent.
	Recommendations(ctx context.Context) (any, error)

	// Forecast returns the predicted next-month kWh figure, nil when absent.
	Forecast(ctx context.Context) (*float64, error)

	// MonthlyConsumption returns the monthly consumption value, nil when absent.
	MonthlyConsumption(ctx context.Context) (any, error)

	// Alerts returns the alerts node as a key-to-fields map, empty when absent.
	Alerts(ctx context.Context) (map[string]map[string]any, error)
}

// Dashboard is the combined snapshot served by the dashboard endpoint.
// Forecast stays a pointer: a missing forecast renders as null rather than
// failing the whole snapshot.
type Dashboard struct {
	MonthlyConsumption any
	Forecast           *float64
}

// Alert is one flattened alerts entry, the store key exposed as ID.
type Alert struct {
	ID     string
	Fields map[string]any
}

// AnalyticsUsecase provides business logic for the analytics readouts.
type AnalyticsUsecase struct {
	consumption ConsumptionRepository
	energy      EnergyRepository
}

// NewAnalyticsUsecase creates a new AnalyticsUsecase with the given repositories.
func NewAnalyticsUsecase(c ConsumptionRepository, e EnergyRepository) *AnalyticsUsecase {
	return &AnalyticsUsecase{consumption: c, energy: e}
}

// Consumption returns every consumption row ordered by ascending id.
func (u *AnalyticsUsecase) Consumption(ctx context.Context) ([]entity.Consumption, error) {
	rows, err := u.consumption.ListByID(ctx)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []entity.Consumption{}
	}
	return rows, nil
}

// Recommendations returns the stored recommendations value.
// Returns ErrNotFound when the path holds nothing.
func (u *AnalyticsUsecase) Recommendations(ctx context.Context) (any, error) {
	recs, err := u.energy.Recommendations(ctx)
	if err != nil {
		return nil, err
	}
	if recs == nil {
		return nil, ErrNotFound
	}
	return recs, nil
}

// Forecast returns the predicted next-month kWh figure.
// Returns ErrNotFound when the path holds nothing.
func (u *AnalyticsUsecase) Forecast(ctx context.Context) (float64, error) {
	forecast, err := u.energy.Forecast(ctx)
	if err != nil {
		return 0, err
	}
	if forecast == nil {
		return 0, ErrNotFound
	}
	return *forecast, nil
}

// DashboardData returns the combined monthly consumption and forecast
// snapshot. A missing monthly value is ErrNotFound; a missing forecast is
// tolerated and stays nil.
func (u *AnalyticsUsecase) DashboardData(ctx context.Context) (*Dashboard, error) {
	monthly, err := u.energy.MonthlyConsumption(ctx)
	if err != nil {
		return nil, err
	}
	if monthly == nil {
		return nil, ErrNotFound
	}
	forecast, err := u.energy.Forecast(ctx)
	if err != nil {
		return nil, err
	}
	return &Dashboard{MonthlyConsumption: monthly, Forecast: forecast}, nil
}

// Alerts flattens the alerts map into a slice with the store key as ID.
// Keys embed their creation timestamp, so the ascending sort is
// chronological and keeps the output deterministic.
func (u *AnalyticsUsecase) Alerts(ctx context.Context) ([]Alert, error) {
	raw, err := u.energy.Alerts(ctx)
	if err != nil {
		return nil, err
	}
	alerts := make([]Alert, 0, len(raw))
	for id, fields := range raw {
		alerts = append(alerts, Alert{ID: id, Fields: fields})
	}
	sort.Slice(alerts, func(i, j int) bool { return alerts[i].ID < alerts[j].ID })
	return alerts, nil
}
