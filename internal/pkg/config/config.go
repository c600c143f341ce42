package config

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Backend names accepted by SESSION_BACKEND and CATALOG_BACKEND.
const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
	BackendMongo  = "mongo"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// JWTSecret signs session tokens. Outside production an empty secret is
	// replaced by a development default.
	JWTSecret string `env:"JWT_SECRET"`

	Session SessionConfig
	Auth    AuthConfig
	Catalog CatalogConfig
	Devices DeviceConfig

	Mongo MongoConfig
	Redis RedisConfig
}

type SessionConfig struct {
	Backend      string        `env:"SESSION_BACKEND,       default=memory"`
	TTL          time.Duration `env:"SESSION_TTL,           default=24h"`
	CookieName   string        `env:"SESSION_COOKIE,        default=sh_session"`
	CookieSecure bool          `env:"SESSION_COOKIE_SECURE, default=false"`
}

type AuthConfig struct {
	LoginDelay         time.Duration `env:"LOGIN_DELAY,           default=500ms"`
	LoginRatePerMinute int           `env:"LOGIN_RATE_PER_MINUTE, default=30"`
	LoginBurst         int           `env:"LOGIN_BURST,           default=5"`
	RoleSwitch         bool          `env:"DEMO_ROLE_SWITCH,      default=true"`

	AdminPasswordHash       string `env:"AUTH_ADMIN_PASSWORD_HASH"`
	HomeownerPasswordHash   string `env:"AUTH_HOMEOWNER_PASSWORD_HASH"`
	MaintenancePasswordHash string `env:"AUTH_MAINTENANCE_PASSWORD_HASH"`
}

type CatalogConfig struct {
	Backend string `env:"CATALOG_BACKEND, default=memory"`
}

type DeviceConfig struct {
	Workers        int           `env:"DEVICE_WORKERS,         default=4"`
	CommandLatency time.Duration `env:"DEVICE_COMMAND_LATENCY, default=300ms"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=building_dashboard"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR, default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,   default=0"`
}

const devJWTSecret = "development-only-session-secret"

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	cfg, err := LoadWith(context.Background(), envconfig.OsLookuper())
	if err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return cfg
}

// LoadWith reads and validates configuration from l.
func LoadWith(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: l}); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = devJWTSecret
	}
	return &cfg, nil
}

// IsProduction reports whether ENV is "production".
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Validate rejects settings the server cannot run with.
func (c *Config) Validate() error {
	var errs []error

	switch c.Session.Backend {
	case BackendMemory, BackendRedis:
	default:
		errs = append(errs, fmt.Errorf("SESSION_BACKEND must be %q or %q, got %q", BackendMemory, BackendRedis, c.Session.Backend))
	}
	switch c.Catalog.Backend {
	case BackendMemory, BackendMongo:
	default:
		errs = append(errs, fmt.Errorf("CATALOG_BACKEND must be %q or %q, got %q", BackendMemory, BackendMongo, c.Catalog.Backend))
	}
	if c.IsProduction() && c.JWTSecret == "" {
		errs = append(errs, errors.New("JWT_SECRET is required in production"))
	}
	if c.Auth.LoginDelay < 0 {
		errs = append(errs, errors.New("LOGIN_DELAY must not be negative"))
	}
	if c.Auth.LoginRatePerMinute <= 0 || c.Auth.LoginBurst <= 0 {
		errs = append(errs, errors.New("LOGIN_RATE_PER_MINUTE and LOGIN_BURST must be positive"))
	}
	if c.Session.CookieName == "" {
		errs = append(errs, errors.New("SESSION_COOKIE must not be empty"))
	}

	return errors.Join(errs...)
}
