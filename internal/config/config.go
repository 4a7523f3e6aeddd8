package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Events  EventsConfig  `yaml:"events"`
	Scoring ScoringConfig `yaml:"scoring"`
	Logging LoggingConfig `yaml:"logging"`
}

type ServerConfig struct {
	Port        int    `yaml:"port"`
	MetricsPort int    `yaml:"metrics_port"`
	AdminToken  string `yaml:"admin_token"`
}

// EventsConfig points at the NATS server for evaluation events.
// An empty URL disables publishing.
type EventsConfig struct {
	URL string `yaml:"url"`
}

type ScoringConfig struct {
	PopulationSize int           `yaml:"population_size"`
	Seed           int64         `yaml:"seed"`
	Resample       bool          `yaml:"resample"`
	DefaultScheme  string        `yaml:"default_scheme"`
	CustomWeights  CustomWeights `yaml:"custom_weights"`
}

// CustomWeights are integer percentages for the custom scheme. They need not
// sum to 100; the scoring layer renormalizes and warns.
type CustomWeights struct {
	QTF int `yaml:"qtf"`
	TM  int `yaml:"tm"`
	PS  int `yaml:"ps"`
	CC  int `yaml:"cc"`
	RO  int `yaml:"ro"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

func Load(path string) (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:        8700,
			MetricsPort: 8701,
		},
		Scoring: ScoringConfig{
			PopulationSize: 1000,
			Seed:           42,
			Resample:       false,
			DefaultScheme:  "default",
			CustomWeights:  CustomWeights{QTF: 25, TM: 20, PS: 20, CC: 15, RO: 20},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	applyEnv(cfg)

	if cfg.Scoring.PopulationSize <= 0 {
		return nil, fmt.Errorf("scoring.population_size must be positive, got %d", cfg.Scoring.PopulationSize)
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("RANKD_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = n
		}
	}
	if v := os.Getenv("RANKD_METRICS_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Server.MetricsPort = n
		}
	}
	if v := os.Getenv("RANKD_ADMIN_TOKEN"); v != "" {
		cfg.Server.AdminToken = v
	}
	if v := os.Getenv("RANKD_EVENTS_URL"); v != "" {
		cfg.Events.URL = v
	}
	if v := os.Getenv("RANKD_POPULATION_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Scoring.PopulationSize = n
		}
	}
	if v := os.Getenv("RANKD_SEED"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.Scoring.Seed = n
		}
	}
	if v := os.Getenv("RANKD_RESAMPLE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Scoring.Resample = b
		}
	}
	if v := os.Getenv("RANKD_DEFAULT_SCHEME"); v != "" {
		cfg.Scoring.DefaultScheme = v
	}
	if v := os.Getenv("RANKD_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
}
