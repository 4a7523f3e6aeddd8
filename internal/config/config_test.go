package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	envVars := []string{
		"RANKD_PORT", "RANKD_METRICS_PORT", "RANKD_ADMIN_TOKEN",
		"RANKD_EVENTS_URL", "RANKD_POPULATION_SIZE", "RANKD_SEED",
		"RANKD_RESAMPLE", "RANKD_DEFAULT_SCHEME", "RANKD_LOG_LEVEL",
	}
	for _, k := range envVars {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != 8700 {
		t.Errorf("expected port 8700, got %d", cfg.Server.Port)
	}
	if cfg.Server.MetricsPort != 8701 {
		t.Errorf("expected metrics port 8701, got %d", cfg.Server.MetricsPort)
	}
	if cfg.Events.URL != "" {
		t.Errorf("expected events disabled by default, got %q", cfg.Events.URL)
	}
	if cfg.Scoring.PopulationSize != 1000 {
		t.Errorf("expected population 1000, got %d", cfg.Scoring.PopulationSize)
	}
	if cfg.Scoring.Seed != 42 {
		t.Errorf("expected seed 42, got %d", cfg.Scoring.Seed)
	}
	if cfg.Scoring.Resample {
		t.Error("expected resample disabled by default")
	}
	if cfg.Scoring.DefaultScheme != "default" {
		t.Errorf("expected scheme 'default', got %q", cfg.Scoring.DefaultScheme)
	}
	cw := cfg.Scoring.CustomWeights
	if cw.QTF+cw.TM+cw.PS+cw.CC+cw.RO != 100 {
		t.Errorf("default custom weights should sum to 100, got %+v", cw)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "json" {
		t.Errorf("unexpected logging defaults: %+v", cfg.Logging)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("RANKD_PORT", "9100")
	t.Setenv("RANKD_METRICS_PORT", "9101")
	t.Setenv("RANKD_ADMIN_TOKEN", "secret-token")
	t.Setenv("RANKD_EVENTS_URL", "nats://nats:4222")
	t.Setenv("RANKD_POPULATION_SIZE", "500")
	t.Setenv("RANKD_SEED", "7")
	t.Setenv("RANKD_RESAMPLE", "true")
	t.Setenv("RANKD_DEFAULT_SCHEME", "research")
	t.Setenv("RANKD_LOG_LEVEL", "debug")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != 9100 {
		t.Errorf("expected port 9100, got %d", cfg.Server.Port)
	}
	if cfg.Server.MetricsPort != 9101 {
		t.Errorf("expected metrics port 9101, got %d", cfg.Server.MetricsPort)
	}
	if cfg.Server.AdminToken != "secret-token" {
		t.Errorf("expected admin token, got %q", cfg.Server.AdminToken)
	}
	if cfg.Events.URL != "nats://nats:4222" {
		t.Errorf("expected events URL, got %q", cfg.Events.URL)
	}
	if cfg.Scoring.PopulationSize != 500 {
		t.Errorf("expected population 500, got %d", cfg.Scoring.PopulationSize)
	}
	if cfg.Scoring.Seed != 7 {
		t.Errorf("expected seed 7, got %d", cfg.Scoring.Seed)
	}
	if !cfg.Scoring.Resample {
		t.Error("expected resample enabled")
	}
	if cfg.Scoring.DefaultScheme != "research" {
		t.Errorf("expected scheme 'research', got %q", cfg.Scoring.DefaultScheme)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %q", cfg.Logging.Level)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rankd.yaml")
	data := []byte(`
server:
  port: 8800
  admin_token: file-token
scoring:
  population_size: 250
  seed: 99
  default_scheme: teaching
  custom_weights:
    qtf: 40
    tm: 30
    ps: 10
    cc: 10
    ro: 10
logging:
  level: warn
`)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != 8800 {
		t.Errorf("expected port 8800, got %d", cfg.Server.Port)
	}
	// Unset keys keep their defaults.
	if cfg.Server.MetricsPort != 8701 {
		t.Errorf("expected default metrics port, got %d", cfg.Server.MetricsPort)
	}
	if cfg.Scoring.PopulationSize != 250 || cfg.Scoring.Seed != 99 {
		t.Errorf("unexpected scoring config: %+v", cfg.Scoring)
	}
	if cfg.Scoring.CustomWeights.QTF != 40 {
		t.Errorf("expected custom qtf 40, got %d", cfg.Scoring.CustomWeights.QTF)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("expected log level warn, got %q", cfg.Logging.Level)
	}
}

func TestLoadRejectsBadPopulation(t *testing.T) {
	t.Setenv("RANKD_POPULATION_SIZE", "0")
	if _, err := Load(""); err == nil {
		t.Error("expected error for zero population size")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/rankd.yaml"); err == nil {
		t.Error("expected error for missing config file")
	}
}
