package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DefaultTimeout       = 60 * time.Second
	DefaultScenarioAgent = "scenario-parser"
	DefaultCalcAgent     = "credit-calculator"

	// Fallback pricing used by the simulated agent.
	DefaultCreditPriceUSD = 0.01
	DefaultLegacyCostUSD  = 0.50
)

// Config holds everything the gateway and the simulated agent need.
type Config struct {
	BaseURL            string        `yaml:"base_url"`
	APIKey             string        `yaml:"api_key"`
	UserID             string        `yaml:"user_id"`
	ScenarioAgentID    string        `yaml:"scenario_agent_id"`
	CalculationAgentID string        `yaml:"calculation_agent_id"`
	Provider           string        `yaml:"provider"`
	Timeout            time.Duration `yaml:"timeout"`
	CreditPriceUSD     float64       `yaml:"credit_price_usd"`
	LegacyCostUSD      float64       `yaml:"legacy_cost_usd"`
}

// Dir returns the per-user directory holding the config file and the
// wizard's snapshot files.
func Dir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(base, "credit-wizard"), nil
}

// Load builds the configuration from defaults, the optional YAML config
// file, and environment variables, in increasing order of precedence. A
// .env file in the working directory is honored if present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		ScenarioAgentID:    DefaultScenarioAgent,
		CalculationAgentID: DefaultCalcAgent,
		Timeout:            DefaultTimeout,
		CreditPriceUSD:     DefaultCreditPriceUSD,
		LegacyCostUSD:      DefaultLegacyCostUSD,
	}

	if dir, err := Dir(); err == nil {
		if raw, err := os.ReadFile(filepath.Join(dir, "config.yaml")); err == nil {
			if err := yaml.Unmarshal(raw, cfg); err != nil {
				return nil, fmt.Errorf("parse config.yaml: %w", err)
			}
		}
	}

	applyEnv(cfg)

	if cfg.Provider == "" {
		if cfg.APIKey != "" && cfg.BaseURL != "" {
			cfg.Provider = "remote"
		} else {
			cfg.Provider = "mock"
		}
	}
	if cfg.UserID == "" {
		cfg.UserID = "local-user"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("AGENT_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("AGENT_API_KEY"); v != "" {
		cfg.APIKey = v
	}
	if v := os.Getenv("AGENT_USER_ID"); v != "" {
		cfg.UserID = v
	}
	if v := os.Getenv("AGENT_PROVIDER"); v != "" {
		cfg.Provider = v
	}
	if v := os.Getenv("SCENARIO_AGENT_ID"); v != "" {
		cfg.ScenarioAgentID = v
	}
	if v := os.Getenv("CALCULATION_AGENT_ID"); v != "" {
		cfg.CalculationAgentID = v
	}
	if v := os.Getenv("AGENT_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.Timeout = d
		}
	}
	if v := os.Getenv("CREDIT_PRICE_USD"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			cfg.CreditPriceUSD = f
		}
	}
	if v := os.Getenv("LEGACY_COST_USD"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			cfg.LegacyCostUSD = f
		}
	}
}
