package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	defaultPort     = "8080"
	defaultTokenTTL = 30 * 24 * time.Hour
)

// Config holds every setting the API reads at startup.
type Config struct {
	Port        string
	DBDriver    string
	DatabaseURL string
	SecretKey   string
	TokenTTL    time.Duration
	CORSOrigins string
	LogLevel    string
	LogFormat   string
	Admin       AdminSeed
}

// AdminSeed describes the optional administrator created on startup.
type AdminSeed struct {
	Username string
	Email    string
	Password string
}

// Enabled reports whether all three seed values were provided.
func (a AdminSeed) Enabled() bool {
	return a.Username != "" && a.Email != "" && a.Password != ""
}

// LoadDotEnv loads a .env file when one exists. It reports whether a file
// was loaded so the caller can log it.
func LoadDotEnv(files ...string) bool {
	return godotenv.Load(files...) == nil
}

// Load reads the configuration from the environment. SECRET_KEY and
// DATABASE_URL are mandatory; there is no fallback secret.
func Load() (Config, error) {
	return FromLookup(os.LookupEnv)
}

// FromLookup builds a Config from an arbitrary key lookup.
func FromLookup(lookup func(string) (string, bool)) (Config, error) {
	get := func(key, def string) string {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
		return def
	}

	cfg := Config{
		Port:        get("PORT", defaultPort),
		DBDriver:    strings.ToLower(get("DB_DRIVER", DriverPostgres)),
		DatabaseURL: get("DATABASE_URL", ""),
		SecretKey:   get("SECRET_KEY", ""),
		CORSOrigins: get("CORS_ORIGINS", "http://localhost:5173"),
		LogLevel:    get("LOG_LEVEL", "info"),
		LogFormat:   get("LOG_FORMAT", "text"),
		Admin: AdminSeed{
			Username: get("ADMIN_USERNAME", ""),
			Email:    get("ADMIN_EMAIL", ""),
			Password: get("ADMIN_PASSWORD", ""),
		},
	}

	var missing []string
	if cfg.SecretKey == "" {
		missing = append(missing, "SECRET_KEY")
	}
	if cfg.DatabaseURL == "" {
		missing = append(missing, "DATABASE_URL")
	}
	if len(missing) > 0 {
		return Config{}, fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	if cfg.DBDriver != DriverPostgres && cfg.DBDriver != DriverSQLite {
		return Config{}, fmt.Errorf("unsupported DB_DRIVER %q (want %s or %s)", cfg.DBDriver, DriverPostgres, DriverSQLite)
	}

	cfg.TokenTTL = defaultTokenTTL
	if raw := get("TOKEN_TTL", ""); raw != "" {
		ttl, err := time.ParseDuration(raw)
		if err != nil || ttl <= 0 {
			return Config{}, fmt.Errorf("invalid TOKEN_TTL %q", raw)
		}
		cfg.TokenTTL = ttl
	}

	return cfg, nil
}

// Addr is the listen address for the HTTP server.
func (c Config) Addr() string {
	return ":" + c.Port
}
