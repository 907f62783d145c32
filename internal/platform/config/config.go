package config

import (
	"fmt"
	"log"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/agency_ledger_app/internal/core/domain"
	"github.com/SscSPs/agency_ledger_app/internal/utils"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL       string // Optional; the in-memory store serves the ledgers when empty
	RunMigrations     bool
	MigrationsPath    string
	Port              string
	IsProduction      bool
	LogLevel          slog.Level
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	LoginRateLimit     string // ulule limiter format, e.g. "5-M"
	CORSAllowedOrigins []string

	PosthogAPIKey   string
	PosthogEndpoint string

	ProjectDeletePolicy   domain.ProjectDeletePolicy
	DefaultReportCurrency domain.Currency
	SeedDemoData          bool
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("RUN_MIGRATIONS", true)
	viper.SetDefault("MIGRATIONS_PATH", "file://migrations")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("JWT_SECRET", "")
	viper.SetDefault("JWT_EXPIRY_DURATION", "8h")
	viper.SetDefault("JWT_ISSUER", "agency-ledger-app")
	viper.SetDefault("LOGIN_RATE_LIMIT", "5-M")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:5173")
	viper.SetDefault("POSTHOG_API_KEY", "")
	viper.SetDefault("POSTHOG_ENDPOINT", "https://eu.i.posthog.com")
	viper.SetDefault("PROJECT_DELETE_POLICY", string(domain.DeleteRestrict))
	viper.SetDefault("DEFAULT_REPORT_CURRENCY", string(domain.USD))
	viper.SetDefault("SEED_DEMO_DATA", true)

	viper.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:     viper.GetString("PGSQL_URL"),
		RunMigrations:   viper.GetBool("RUN_MIGRATIONS"),
		MigrationsPath:  viper.GetString("MIGRATIONS_PATH"),
		Port:            viper.GetString("PORT"),
		IsProduction:    viper.GetBool("IS_PRODUCTION"),
		JWTIssuer:       viper.GetString("JWT_ISSUER"),
		LoginRateLimit:  viper.GetString("LOGIN_RATE_LIMIT"),
		PosthogAPIKey:   viper.GetString("POSTHOG_API_KEY"),
		PosthogEndpoint: viper.GetString("POSTHOG_ENDPOINT"),
		SeedDemoData:    viper.GetBool("SEED_DEMO_DATA"),
	}

	if cfg.DatabaseURL == "" {
		log.Println("Info: PGSQL_URL not set, ledgers are kept in memory.")
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(viper.GetString("LOG_LEVEL"))); err != nil {
		log.Printf("Warning: Invalid LOG_LEVEL ('%s'). Defaulting to info.\n", viper.GetString("LOG_LEVEL"))
		cfg.LogLevel = slog.LevelInfo
	}

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "" {
		if cfg.IsProduction {
			return nil, fmt.Errorf("JWT_SECRET must be set in production")
		}
		secret, err := utils.GenerateSecureRandomString(32)
		if err != nil {
			return nil, fmt.Errorf("failed to generate development JWT secret: %w", err)
		}
		log.Println("Warning: JWT_SECRET not set. Using a random secret, sessions will not survive a restart.")
		cfg.JWTSecret = secret
	}

	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil || jwtExpiryDuration <= 0 {
		jwtExpiryDuration = 8 * time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration.String())
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration

	for _, origin := range strings.Split(viper.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	policy := viper.GetString("PROJECT_DELETE_POLICY")
	cfg.ProjectDeletePolicy = domain.ParseDeletePolicy(strings.ToLower(policy))
	if string(cfg.ProjectDeletePolicy) != strings.ToLower(policy) {
		log.Printf("Warning: Unknown PROJECT_DELETE_POLICY ('%s'). Defaulting to %s.\n", policy, cfg.ProjectDeletePolicy)
	}

	currency, ok := domain.ParseCurrency(viper.GetString("DEFAULT_REPORT_CURRENCY"), domain.USD)
	if !ok {
		return nil, fmt.Errorf("unsupported DEFAULT_REPORT_CURRENCY %q", viper.GetString("DEFAULT_REPORT_CURRENCY"))
	}
	cfg.DefaultReportCurrency = currency

	return cfg, nil
}
