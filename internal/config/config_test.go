package config

import (
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "DATA_BACKEND", "EXPENSES_FILE", "READ_TIMEOUT"} {
		t.Setenv(key, "")
	}
	cfg := Load()
	if cfg.Port != "8080" {
		t.Fatalf("expected default port 8080, got %s", cfg.Port)
	}
	if cfg.DataBackend != "csv" {
		t.Fatalf("expected default backend csv, got %s", cfg.DataBackend)
	}
	if cfg.ExpensesFile != "expenses.csv" {
		t.Fatalf("expected default file expenses.csv, got %s", cfg.ExpensesFile)
	}
	if cfg.ReadTimeout != 10*time.Second {
		t.Fatalf("expected 10s read timeout, got %v", cfg.ReadTimeout)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("DATA_BACKEND", "memory")
	t.Setenv("EXPENSES_FILE", "/tmp/somewhere.csv")
	t.Setenv("READ_TIMEOUT", "5s")

	cfg := Load()
	if cfg.Port != "9000" || cfg.DataBackend != "memory" || cfg.ExpensesFile != "/tmp/somewhere.csv" {
		t.Fatalf("env not applied: %+v", cfg)
	}
	if cfg.ReadTimeout != 5*time.Second {
		t.Fatalf("expected 5s, got %v", cfg.ReadTimeout)
	}
}

func TestLoadIgnoresBadDuration(t *testing.T) {
	t.Setenv("READ_TIMEOUT", "soon")
	if cfg := Load(); cfg.ReadTimeout != 10*time.Second {
		t.Fatalf("expected default on bad duration, got %v", cfg.ReadTimeout)
	}
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{
			Port:         "8080",
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  time.Minute,
			DataBackend:  "memory",
		}
	}

	if err := base().Validate(); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"bad port", func(c *Config) { c.Port = "abc" }, "invalid port"},
		{"port out of range", func(c *Config) { c.Port = "70000" }, "invalid port"},
		{"bad backend", func(c *Config) { c.DataBackend = "sqlite" }, "invalid data backend"},
		{"csv without path", func(c *Config) { c.DataBackend = "csv"; c.ExpensesFile = "" }, "expense file path"},
		{"short read timeout", func(c *Config) { c.ReadTimeout = time.Millisecond }, "read timeout"},
	}
	for _, tc := range cases {
		cfg := base()
		tc.mutate(cfg)
		err := cfg.Validate()
		if err == nil {
			t.Fatalf("%s: expected error", tc.name)
		}
		if !strings.Contains(err.Error(), tc.want) {
			t.Fatalf("%s: expected %q in error, got %v", tc.name, tc.want, err)
		}
	}
}

func TestValidateCreatesExpenseFileDir(t *testing.T) {
	dir := t.TempDir()
	cfg := &Config{
		Port:         "8080",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		DataBackend:  "csv",
		ExpensesFile: filepath.Join(dir, "data", "expenses.csv"),
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
}
