// Package config loads and validates the process configuration from
// environment variables.
package config

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
)

// Config holds every environment-driven setting the server needs.
type Config struct {
	Env  string `env:"ENV" envDefault:"local" validate:"required,oneof=local staging production"`
	Port string `env:"PORT" envDefault:"5000" validate:"required"`

	DBHost     string `env:"DB_HOST" envDefault:"localhost"`
	DBPort     string `env:"DB_PORT" envDefault:"5432"`
	DBUser     string `env:"DB_USER,required" validate:"required"`
	DBPassword string `env:"DB_PASSWORD,required" validate:"required"`
	DBName     string `env:"DB_NAME,required" validate:"required"`

	RedisHost     string `env:"REDIS_HOST"`
	RedisPort     string `env:"REDIS_PORT" envDefault:"6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`

	Firebase FirebaseConfig
}

// FirebaseConfig carries the service-account fields and database URL for
// the realtime store. The fields mirror a standard service-account JSON so
// deployments can keep injecting them individually.
type FirebaseConfig struct {
	Type                string `env:"FIREBASE_TYPE" envDefault:"service_account"`
	ProjectID           string `env:"FIREBASE_PROJECT_ID,required" validate:"required"`
	PrivateKeyID        string `env:"FIREBASE_PRIVATE_KEY_ID,required" validate:"required"`
	PrivateKey          string `env:"FIREBASE_PRIVATE_KEY,required" validate:"required"`
	ClientEmail         string `env:"FIREBASE_CLIENT_EMAIL,required" validate:"required,email"`
	ClientID            string `env:"FIREBASE_CLIENT_ID"`
	AuthURI             string `env:"FIREBASE_AUTH_URI" envDefault:"https://accounts.google.com/o/oauth2/auth"`
	TokenURI            string `env:"FIREBASE_TOKEN_URI" envDefault:"https://oauth2.googleapis.com/token"`
	AuthProviderCertURL string `env:"FIREBASE_AUTH_PROVIDER_CERT_URL"`
	ClientCertURL       string `env:"FIREBASE_CLIENT_CERT_URL"`
	UniverseDomain      string `env:"FIREBASE_UNIVERSE_DOMAIN" envDefault:"googleapis.com"`
	DatabaseURL         string `env:"FIREBASE_DB_URL,required" validate:"required,url"`
}

// Load parses the environment into a Config and validates it.
func Load() (*Config, error) {
	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// ServiceAccountJSON reassembles the service-account fields into the JSON
// document the realtime-store client expects. Escaped newlines in the
// private key are unescaped, matching how the key survives env injection.
func (f FirebaseConfig) ServiceAccountJSON() ([]byte, error) {
	sa := map[string]string{
		"type":                        f.Type,
		"project_id":                  f.ProjectID,
		"private_key_id":              f.PrivateKeyID,
		"private_key":                 strings.ReplaceAll(f.PrivateKey, `\n`, "\n"),
		"client_email":                f.ClientEmail,
		"client_id":                   f.ClientID,
		"auth_uri":                    f.AuthURI,
		"token_uri":                   f.TokenURI,
		"auth_provider_x509_cert_url": f.AuthProviderCertURL,
		"client_x509_cert_url":        f.ClientCertURL,
		"universe_domain":             f.UniverseDomain,
	}
	b, err := json.Marshal(sa)
	if err != nil {
		return nil, fmt.Errorf("marshal service account: %w", err)
	}
	return b, nil
}
