package model

import "encoding/json"

// ScenarioData is what the scenario-parsing agent returns for a business idea.
type ScenarioData struct {
	ScenarioSummary string         `json:"scenario_summary"`
	QuestionsAsked  []string       `json:"questions_asked"`
	UserResponses   []string       `json:"user_responses"`
	DefaultsApplied map[string]any `json:"defaults_applied"`
}

// CreditCalculation is the credit-usage estimate returned by the calculation
// agent. Light and heavy bound the same inputs from below and above.
type CreditCalculation struct {
	Summary     Summary      `json:"summary"`
	Calcs       Calculations `json:"calculations"`
	Assumptions []string     `json:"assumptions"`
	Warnings    []string     `json:"warnings"`
}

type Summary struct {
	LightScenario string `json:"light_scenario"`
	HeavyScenario string `json:"heavy_scenario"`
}

type Calculations struct {
	PerUnitCredits        float64 `json:"per_unit_credits"`
	MonthlyTotalLight     float64 `json:"monthly_total_light"`
	MonthlyTotalHeavy     float64 `json:"monthly_total_heavy"`
	DollarCostLight       float64 `json:"dollar_cost_light"`
	DollarCostHeavy       float64 `json:"dollar_cost_heavy"`
	LegacyComparisonLight float64 `json:"legacy_comparison_light"`
	LegacyComparisonHeavy float64 `json:"legacy_comparison_heavy"`
}

// AgentResponse is the normalized envelope every agent call produces,
// regardless of transport. Result carries a ScenarioData or a
// CreditCalculation depending on which agent was invoked.
type AgentResponse struct {
	Result     json.RawMessage `json:"result"`
	Confidence float64         `json:"confidence"`
	Metadata   map[string]any  `json:"metadata"`
}
