// Package firebase initializes the realtime-store client from the
// service-account configuration.
package firebase

import (
	"context"
	"fmt"
	"log/slog"

	firebase "firebase.google.com/go/v4"
	firebasedb "firebase.google.com/go/v4/db"
	"google.golang.org/api/option"

	"energy_backend/internal/config"
)

// NewDatabaseClient builds the realtime-database client from the
// service-account fields and database URL in cfg.
func NewDatabaseClient(ctx context.Context, cfg config.FirebaseConfig) (*firebasedb.Client, error) {
	sa, err := cfg.ServiceAccountJSON()
	if err != nil {
		return nil, err
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{
		DatabaseURL: cfg.DatabaseURL,
	}, option.WithCredentialsJSON(sa))
	if err != nil {
		return nil, fmt.Errorf("init firebase app: %w", err)
	}

	client, err := app.Database(ctx)
	if err != nil {
		return nil, fmt.Errorf("init realtime database client: %w", err)
	}

	slog.Info("realtime database client ready", "project_id", cfg.ProjectID)
	return client, nil
}
