// Package config reads server settings from an optional .env file, the
// environment and command-line flags, in increasing order of precedence.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// DevJWTSecret is used when JWT_SECRET is unset. Never deploy with it.
const DevJWTSecret = "kasir-dev-secret"

// Config holds everything cmd/server needs to start.
type Config struct {
	Addr            string
	DBPath          string
	DatabaseURL     string
	LogLevel        string
	JWTSecret       string
	TokenTTL        time.Duration
	ProcessingDelay time.Duration
	SuccessDelay    time.Duration
	TillIdleTimeout time.Duration
	Locale          string
	CurrencyPrefix  string
}

// UsePostgres reports whether DatabaseURL selects the Postgres backend.
func (c *Config) UsePostgres() bool {
	return c.DatabaseURL != ""
}

// DevSecret reports whether the built-in JWT secret is in use.
func (c *Config) DevSecret() bool {
	return c.JWTSecret == DevJWTSecret
}

// Load loads envFile (missing files are ignored), then parses args.
// Variables already set in the environment win over the file.
func Load(envFile string, args []string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
			}
			slog.Debug("No .env file found, proceeding without it", "path", envFile)
		} else {
			slog.Debug(".env file loaded", "path", envFile)
		}
	}
	return Parse(args, os.Getenv)
}

// Parse builds a Config from getenv defaults overridden by args.
func Parse(args []string, getenv func(string) string) (*Config, error) {
	env := func(key, fallback string) string {
		if v := getenv(key); v != "" {
			return v
		}
		return fallback
	}

	cfg := &Config{}
	var tokenTTL, processing, success, idle string

	fs := flag.NewFlagSet("kasir", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&cfg.Addr, "addr", env("ADDR", ":8080"), "address to listen on")
	fs.StringVar(&cfg.DBPath, "db", env("DB_PATH", "./data/kasir.db"), "SQLite database path")
	fs.StringVar(&cfg.DatabaseURL, "database-url", env("DATABASE_URL", ""), "Postgres connection string; selects Postgres when set")
	fs.StringVar(&cfg.LogLevel, "log-level", env("LOG_LEVEL", "info"), "log level (debug, info, warn, error)")
	fs.StringVar(&cfg.JWTSecret, "jwt-secret", env("JWT_SECRET", DevJWTSecret), "secret for signing cashier tokens")
	fs.StringVar(&tokenTTL, "token-ttl", env("TOKEN_TTL", "12h"), "cashier token lifetime")
	fs.StringVar(&processing, "processing-delay", env("PROCESSING_DELAY", "2s"), "simulated settlement latency")
	fs.StringVar(&success, "success-delay", env("SUCCESS_DELAY", "2s"), "how long a receipt stays on screen")
	fs.StringVar(&idle, "till-idle-timeout", env("TILL_IDLE_TIMEOUT", "8h"), "close tills unused for this long; 0 keeps them")
	fs.StringVar(&cfg.Locale, "locale", env("LOCALE", "id-ID"), "locale for amount formatting")
	fs.StringVar(&cfg.CurrencyPrefix, "currency-prefix", env("CURRENCY_PREFIX", "Rp"), "currency prefix for amounts")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("failed to parse flags: %w", err)
	}

	var err error
	if cfg.TokenTTL, err = parseDuration("token ttl", tokenTTL); err != nil {
		return nil, err
	}
	if cfg.ProcessingDelay, err = parseDuration("processing delay", processing); err != nil {
		return nil, err
	}
	if cfg.SuccessDelay, err = parseDuration("success delay", success); err != nil {
		return nil, err
	}
	if cfg.TillIdleTimeout, err = parseDuration("till idle timeout", idle); err != nil {
		return nil, err
	}
	if cfg.TokenTTL == 0 {
		return nil, errors.New("token ttl must be positive")
	}
	if cfg.JWTSecret == "" {
		return nil, errors.New("jwt secret must not be empty")
	}
	return cfg, nil
}

func parseDuration(name, s string) (time.Duration, error) {
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", name, s, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("invalid %s %q: must not be negative", name, s)
	}
	return d, nil
}
