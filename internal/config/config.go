// Package config loads process configuration once at startup. Required
// credentials fail fast here so no batch work ever begins half-configured.
package config

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	awsclient "github.com/aharewards/aha-api/internal/client/aws"
	"github.com/aharewards/aha-api/internal/helpers"
	"github.com/aharewards/aha-api/internal/logger"
)

// Config holds everything the process needs. It is built once in main and
// injected into clients and services; nothing reads the environment after
// startup.
type Config struct {
	Stage string
	Port  string

	DatabaseURL string

	StripeAPIKey        string
	StripeWebhookSecret string

	SupabaseJWTSecret string

	// GoHighLevel credentials are optional. When absent the CRM endpoints
	// report the integration as unconfigured instead of failing the boot.
	GHLToken      string
	GHLLocationID string
	GHLBaseURL    string

	// Resend credentials are optional; reward notifications are skipped
	// without them.
	ResendAPIKey string
	EmailFrom    string

	AppBaseURL string

	SyncPageSize  int
	SyncPageDelay time.Duration
}

// CRMConfigured reports whether GoHighLevel credentials are present.
func (c *Config) CRMConfigured() bool {
	return c.GHLToken != "" && c.GHLLocationID != ""
}

// EmailConfigured reports whether reward notification email can be sent.
func (c *Config) EmailConfigured() bool {
	return c.ResendAPIKey != "" && c.EmailFrom != ""
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
		logger.Warn("Ignoring non-positive or malformed integer env var", zap.String("key", key), zap.String("value", v))
	}
	return fallback
}

// secret resolves a credential through Secrets Manager when available,
// falling back to the plain environment variable.
func secret(ctx context.Context, sm *awsclient.SecretsManagerClient, arnEnvVar, envVar string) string {
	if sm != nil {
		if v, err := sm.GetSecretString(ctx, arnEnvVar, envVar); err == nil {
			return v
		}
	}
	return os.Getenv(envVar)
}

// Load reads the environment (and .env in development) into a Config.
// Missing required credentials are reported together.
func Load(ctx context.Context) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Debug("No .env file loaded", zap.Error(err))
	}

	// Secrets Manager is best-effort: without AWS credentials every secret
	// resolves from the environment.
	sm, err := awsclient.NewSecretsManagerClient(ctx)
	if err != nil {
		logger.Debug("Secrets Manager unavailable, using environment variables only", zap.Error(err))
		sm = nil
	}

	cfg := &Config{
		Stage:               getEnv("STAGE", helpers.StageLocal),
		Port:                getEnv("PORT", "8000"),
		DatabaseURL:         secret(ctx, sm, "DATABASE_URL_SECRET_ARN", "DATABASE_URL"),
		StripeAPIKey:        secret(ctx, sm, "STRIPE_SECRET_KEY_SECRET_ARN", "STRIPE_SECRET_KEY"),
		StripeWebhookSecret: secret(ctx, sm, "STRIPE_WEBHOOK_SECRET_SECRET_ARN", "STRIPE_WEBHOOK_SECRET"),
		SupabaseJWTSecret:   secret(ctx, sm, "SUPABASE_JWT_SECRET_SECRET_ARN", "SUPABASE_JWT_SECRET"),
		GHLToken:            secret(ctx, sm, "GHL_API_TOKEN_SECRET_ARN", "GHL_API_TOKEN"),
		GHLLocationID:       os.Getenv("GHL_LOCATION_ID"),
		GHLBaseURL:          os.Getenv("GHL_BASE_URL"),
		ResendAPIKey:        secret(ctx, sm, "RESEND_API_KEY_SECRET_ARN", "RESEND_API_KEY"),
		EmailFrom:           os.Getenv("EMAIL_FROM"),
		AppBaseURL:          getEnv("APP_BASE_URL", "http://localhost:3000"),
		SyncPageSize:        getEnvInt("SYNC_PAGE_SIZE", 50),
		SyncPageDelay:       time.Duration(getEnvInt("SYNC_PAGE_DELAY_MS", 1000)) * time.Millisecond,
	}

	if !helpers.IsValidStage(cfg.Stage) {
		return nil, fmt.Errorf("invalid STAGE %q", cfg.Stage)
	}

	var missing []string
	if cfg.DatabaseURL == "" {
		missing = append(missing, "DATABASE_URL")
	}
	if cfg.StripeAPIKey == "" {
		missing = append(missing, "STRIPE_SECRET_KEY")
	}
	if cfg.StripeWebhookSecret == "" {
		missing = append(missing, "STRIPE_WEBHOOK_SECRET")
	}
	if cfg.SupabaseJWTSecret == "" {
		missing = append(missing, "SUPABASE_JWT_SECRET")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required environment variables: %v", missing)
	}

	return cfg, nil
}
