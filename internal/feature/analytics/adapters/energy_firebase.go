package adapters

import (
	"context"

	firebasedb "firebase.google.com/go/v4/db"

	"energy_backend/internal/feature/analytics/usecase"
)

// Realtime-store paths for the precomputed analytics values.
const (
	recommendationsPath = "ac_data/recommendations"
	forecastPath        = "ac_data/predicted_next_month_kwh"
	monthlyPath         = "ac_data/monthly_consumption_kwh"
	alertsPath          = "alerts"
)

// energyFirebase implements EnergyRepository against the realtime store.
type energyFirebase struct {
	client *firebasedb.Client
}

var _ usecase.EnergyRepository = (*energyFirebase)(nil)

// NewEnergyFirebase creates an energyFirebase on the given database client.
func NewEnergyFirebase(client *firebasedb.Client) *energyFirebase {
	return &energyFirebase{client: client}
}

// Recommendations reads the recommendations value, nil when the path is empty.
func (r *energyFirebase) Recommendations(ctx context.Context) (any, error) {
	var recs any
	if err := r.client.NewRef(recommendationsPath).Get(ctx, &recs); err != nil {
		return nil, err
	}
	return recs, nil
}

// Forecast reads the predicted next-month kWh figure, nil when the path is empty.
func (r *energyFirebase) Forecast(ctx context.Context) (*float64, error) {
	var forecast *float64
	if err := r.client.NewRef(forecastPath).Get(ctx, &forecast); err != nil {
		return nil, err
	}
	return forecast, nil
}

// MonthlyConsumption reads the monthly consumption value, nil when the path is empty.
func (r *energyFirebase) MonthlyConsumption(ctx context.Context) (any, error) {
	var monthly any
	if err := r.client.NewRef(monthlyPath).Get(ctx, &monthly); err != nil {
		return nil, err
	}
	return monthly, nil
}

// Alerts reads the alerts node as a key-to-fields map, nil when the node is empty.
func (r *energyFirebase) Alerts(ctx context.Context) (map[string]map[string]any, error) {
	var alerts map[string]map[string]any
	if err := r.client.NewRef(alertsPath).Get(ctx, &alerts); err != nil {
		return nil, err
	}
	return alerts, nil
}
