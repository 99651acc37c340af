package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/payment_recon_app/internal/core/domain"
	"github.com/SscSPs/payment_recon_app/internal/core/services"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Store drivers accepted by STORE_DRIVER.
const (
	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"
)

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool

	// Ledger Store
	StoreDriver        string
	DatabaseURL        string
	DBMaxConns         int32
	StoreTimeout       time.Duration
	BreakerMaxFailures uint32
	BreakerOpenTimeout time.Duration
	MigrationsPath     string

	// Idempotent response cache; disabled when RedisAddr is empty
	RedisAddr      string
	RedisPassword  string
	RedisDB        int
	IdempotencyTTL time.Duration

	JWTSecret string
	JWTIssuer string

	RateLimit          string // ulule formatted rate, e.g. "100-M"
	CORSAllowedOrigins []string

	// Business rules
	ComplianceMethods   []domain.PaymentMethod
	AutoClearMethods    []domain.PaymentMethod
	SourceAccounts      []string
	DestinationAccounts []string
	OverrideRoles       []domain.Role
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	return fromViper(v)
}

func setDefaults(v *viper.Viper) {
	registry := domain.DefaultAccountRegistry()

	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("STORE_DRIVER", StoreDriverPostgres)
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("STORE_TIMEOUT", "5s")
	v.SetDefault("BREAKER_MAX_FAILURES", 5)
	v.SetDefault("BREAKER_OPEN_TIMEOUT", "30s")
	v.SetDefault("MIGRATIONS_PATH", "migrations")
	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("IDEMPOTENCY_TTL", "24h")
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("JWT_ISSUER", "payment-recon-app")
	v.SetDefault("RATE_LIMIT", "100-M")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("COMPLIANCE_METHODS", string(domain.MethodCash))
	v.SetDefault("AUTO_CLEAR_METHODS", string(domain.MethodCard))
	v.SetDefault("TREASURY_SOURCE_ACCOUNTS", strings.Join(registry.SourceAccounts, ","))
	v.SetDefault("TREASURY_DESTINATION_ACCOUNTS", strings.Join(registry.DestinationAccounts, ","))
	v.SetDefault("OVERRIDE_ROLES", string(domain.RoleAdmin))
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Port:               v.GetString("PORT"),
		IsProduction:       v.GetBool("IS_PRODUCTION"),
		StoreDriver:        strings.ToLower(strings.TrimSpace(v.GetString("STORE_DRIVER"))),
		DatabaseURL:        v.GetString("PGSQL_URL"),
		DBMaxConns:         v.GetInt32("DB_MAX_CONNS"),
		StoreTimeout:       v.GetDuration("STORE_TIMEOUT"),
		BreakerMaxFailures: v.GetUint32("BREAKER_MAX_FAILURES"),
		BreakerOpenTimeout: v.GetDuration("BREAKER_OPEN_TIMEOUT"),
		MigrationsPath:     v.GetString("MIGRATIONS_PATH"),
		RedisAddr:          v.GetString("REDIS_ADDR"),
		RedisPassword:      v.GetString("REDIS_PASSWORD"),
		RedisDB:            v.GetInt("REDIS_DB"),
		IdempotencyTTL:     v.GetDuration("IDEMPOTENCY_TTL"),
		JWTSecret:          v.GetString("JWT_SECRET"),
		JWTIssuer:          v.GetString("JWT_ISSUER"),
		RateLimit:          v.GetString("RATE_LIMIT"),
		CORSAllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
	}
	cfg.SourceAccounts = splitList(v.GetString("TREASURY_SOURCE_ACCOUNTS"))
	cfg.DestinationAccounts = splitList(v.GetString("TREASURY_DESTINATION_ACCOUNTS"))

	if cfg.Port == "" {
		cfg.Port = "8080"
		slog.Warn("PORT environment variable not set, using default", slog.String("port", cfg.Port))
	}

	switch cfg.StoreDriver {
	case StoreDriverPostgres:
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("PGSQL_URL is required when STORE_DRIVER=%s", StoreDriverPostgres)
		}
	case StoreDriverMemory:
		slog.Warn("Using the in-memory ledger store; data is lost on restart")
	default:
		return nil, fmt.Errorf("invalid STORE_DRIVER %q: must be %s or %s", cfg.StoreDriver, StoreDriverPostgres, StoreDriverMemory)
	}

	if cfg.StoreTimeout <= 0 {
		return nil, fmt.Errorf("invalid STORE_TIMEOUT: must be a positive duration")
	}

	if cfg.JWTSecret == "" {
		if cfg.IsProduction {
			return nil, fmt.Errorf("JWT_SECRET must be set in production")
		}
		cfg.JWTSecret = "a-very-secret-key-should-be-longer-and-random" // !! CHANGE IN PRODUCTION !!
		slog.Warn("JWT_SECRET environment variable not set. Using default insecure key.")
	}

	var err error
	if cfg.ComplianceMethods, err = parseMethods("COMPLIANCE_METHODS", v.GetString("COMPLIANCE_METHODS")); err != nil {
		return nil, err
	}
	if cfg.AutoClearMethods, err = parseMethods("AUTO_CLEAR_METHODS", v.GetString("AUTO_CLEAR_METHODS")); err != nil {
		return nil, err
	}
	for _, m := range cfg.ComplianceMethods {
		if (domain.MethodPolicy{AutoClearMethods: cfg.AutoClearMethods}).AutoClears(m) {
			return nil, fmt.Errorf("payment method %s cannot both require compliance and auto-clear", m)
		}
	}

	for _, name := range splitList(v.GetString("OVERRIDE_ROLES")) {
		role := domain.ParseRole(name)
		if !role.IsValid() {
			return nil, fmt.Errorf("invalid role %q in OVERRIDE_ROLES", name)
		}
		cfg.OverrideRoles = append(cfg.OverrideRoles, role)
	}

	if len(cfg.SourceAccounts) == 0 || len(cfg.DestinationAccounts) == 0 {
		return nil, fmt.Errorf("TREASURY_SOURCE_ACCOUNTS and TREASURY_DESTINATION_ACCOUNTS must not be empty")
	}

	return cfg, nil
}

// ServiceRules returns the business rules the core services are built with.
func (c *Config) ServiceRules() services.ContainerConfig {
	return services.ContainerConfig{
		Methods:       domain.MethodPolicy{ComplianceMethods: c.ComplianceMethods, AutoClearMethods: c.AutoClearMethods},
		Accounts:      domain.AccountRegistry{SourceAccounts: c.SourceAccounts, DestinationAccounts: c.DestinationAccounts},
		OverrideRoles: c.OverrideRoles,
	}
}

func parseMethods(key, raw string) ([]domain.PaymentMethod, error) {
	var methods []domain.PaymentMethod
	for _, name := range splitList(raw) {
		m := domain.PaymentMethod(strings.ToUpper(name))
		if !m.IsValid() {
			return nil, fmt.Errorf("invalid payment method %q in %s", name, key)
		}
		methods = append(methods, m)
	}
	return methods, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
