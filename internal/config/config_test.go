package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func envMap(m map[string]string) func(string) string {
	return func(key string) string { return m[key] }
}

func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse(nil, envMap(nil))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if cfg.Addr != ":8080" || cfg.DBPath != "./data/kasir.db" || cfg.LogLevel != "info" {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if cfg.TokenTTL != 12*time.Hour || cfg.ProcessingDelay != 2*time.Second || cfg.SuccessDelay != 2*time.Second {
		t.Errorf("unexpected durations: %+v", cfg)
	}
	if cfg.TillIdleTimeout != 8*time.Hour {
		t.Errorf("till idle timeout: expected 8h, got %v", cfg.TillIdleTimeout)
	}
	if cfg.Locale != "id-ID" || cfg.CurrencyPrefix != "Rp" {
		t.Errorf("unexpected formatting defaults: %+v", cfg)
	}
	if cfg.UsePostgres() || !cfg.DevSecret() {
		t.Errorf("expected sqlite with dev secret, got %+v", cfg)
	}
}

func TestParse_Precedence(t *testing.T) {
	env := envMap(map[string]string{
		"ADDR":             ":9000",
		"DATABASE_URL":     "postgres://kasir@localhost/kasir",
		"JWT_SECRET":       "s3cret",
		"PROCESSING_DELAY": "500ms",
	})

	cfg, err := Parse([]string{"-addr", ":7000", "-success-delay", "0s", "-till-idle-timeout", "0"}, env)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if cfg.Addr != ":7000" {
		t.Errorf("flag should win over env: got %q", cfg.Addr)
	}
	if cfg.ProcessingDelay != 500*time.Millisecond || cfg.SuccessDelay != 0 {
		t.Errorf("unexpected delays: %v %v", cfg.ProcessingDelay, cfg.SuccessDelay)
	}
	if cfg.TillIdleTimeout != 0 {
		t.Errorf("idle sweeping should be disabled, got %v", cfg.TillIdleTimeout)
	}
	if !cfg.UsePostgres() || cfg.DevSecret() {
		t.Errorf("expected postgres with custom secret, got %+v", cfg)
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		env  map[string]string
	}{
		{name: "bad duration", env: map[string]string{"TOKEN_TTL": "forever"}},
		{name: "negative delay", args: []string{"-processing-delay", "-1s"}},
		{name: "zero ttl", args: []string{"-token-ttl", "0s"}},
		{name: "unknown flag", args: []string{"-port", "80"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse(tt.args, envMap(tt.env)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestLoad_EnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("CURRENCY_PREFIX=IDR\n"), 0o600); err != nil {
		t.Fatalf("failed to write env file: %v", err)
	}
	t.Setenv("CURRENCY_PREFIX", "")
	os.Unsetenv("CURRENCY_PREFIX")

	cfg, err := Load(path, nil)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.CurrencyPrefix != "IDR" {
		t.Errorf("expected prefix from .env, got %q", cfg.CurrencyPrefix)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.env"), nil); err != nil {
		t.Errorf("missing .env should be ignored, got %v", err)
	}
}
