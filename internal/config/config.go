package config

import (
	"fmt"
	"log/slog"
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

type EventsConfig struct {
	URL string `yaml:"url"`
}

type ScoringConfig struct {
	Weights    ScoringWeights `yaml:"weights"`
	Thresholds Thresholds     `yaml:"thresholds"`
}

// ScoringWeights mirrors the six GSAIF criteria.
type ScoringWeights struct {
	BusinessValue        float64 `yaml:"business_value"`
	StrategicAlignment   float64 `yaml:"strategic_alignment"`
	TechnicalFeasibility float64 `yaml:"technical_feasibility"`
	ImplementationEffort float64 `yaml:"implementation_effort"`
	ChangeImpact         float64 `yaml:"change_impact"`
	EthicalRisk          float64 `yaml:"ethical_risk"`
}

type Thresholds struct {
	Immediate float64 `yaml:"immediate"`
	Strong    float64 `yaml:"strong"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// SlogLevel parses the configured level. Unknown or empty values fall back to
// info rather than failing startup.
func (l LoggingConfig) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return slog.LevelInfo
	}
	return level
}

func Load(path string) (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:        8700,
			MetricsPort: 8701,
		},
		Scoring: ScoringConfig{
			Weights: ScoringWeights{
				BusinessValue:        0.25,
				StrategicAlignment:   0.20,
				TechnicalFeasibility: 0.20,
				ImplementationEffort: 0.15,
				ChangeImpact:         0.10,
				EthicalRisk:          0.10,
			},
			Thresholds: Thresholds{
				Immediate: 7.5,
				Strong:    5.5,
			},
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
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("COMPASS_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = n
		}
	}
	if v := os.Getenv("COMPASS_METRICS_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Server.MetricsPort = n
		}
	}
	if v := os.Getenv("COMPASS_ADMIN_TOKEN"); v != "" {
		cfg.Server.AdminToken = v
	}
	if v := os.Getenv("COMPASS_EVENTS_URL"); v != "" {
		cfg.Events.URL = v
	}
	if v := os.Getenv("COMPASS_THRESHOLD_IMMEDIATE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Scoring.Thresholds.Immediate = f
		}
	}
	if v := os.Getenv("COMPASS_THRESHOLD_STRONG"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Scoring.Thresholds.Strong = f
		}
	}
	if v := os.Getenv("COMPASS_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
}
