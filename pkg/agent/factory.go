package agent

import (
	"fmt"
	"strings"

	"github.com/creditpilot/credit-wizard/pkg/config"
)

// Provider selects the agent transport.
type Provider string

const (
	ProviderRemote Provider = "remote"
	ProviderMock   Provider = "mock"
)

// New creates an Agent for the configured provider. An explicit override
// wins over the configuration; an empty provider falls back to the mock so
// the wizard works out of the box.
func New(cfg *config.Config, override string) (Agent, error) {
	provider := cfg.Provider
	if override != "" {
		provider = override
	}

	switch Provider(strings.ToLower(provider)) {
	case ProviderRemote:
		if cfg.BaseURL == "" {
			return nil, fmt.Errorf("remote provider requires AGENT_BASE_URL")
		}
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("remote provider requires AGENT_API_KEY")
		}
		return NewClient(cfg.BaseURL, cfg.APIKey, cfg.UserID, cfg.Timeout), nil

	case ProviderMock, "":
		return NewMock(cfg.ScenarioAgentID, cfg.CalculationAgentID, cfg.CreditPriceUSD, cfg.LegacyCostUSD), nil

	default:
		return nil, fmt.Errorf("unsupported agent provider: %s (supported: remote, mock)", provider)
	}
}
