package prompts

import (
	"encoding/json"
	"fmt"
)

func BuildCalculationMessage(idea, unit string, count int, defaults map[string]any) (string, error) {
	defaultsJSON := []byte("{}")
	if len(defaults) > 0 {
		var err error
		defaultsJSON, err = json.MarshalIndent(defaults, "", "  ")
		if err != nil {
			return "", fmt.Errorf("marshal defaults: %w", err)
		}
	}

	return fmt.Sprintf(`You are a pricing analyst estimating AI agent credit usage.

Business Idea: %s
Unit of Work: %s
Monthly Volume: %d units per month

Defaults already applied to this scenario:
%s

Estimate credits per unit of work, then monthly totals for a light (efficient)
and a heavy (inefficient) usage scenario, dollar costs for both, and how each
compares against a legacy manual process.

Respond in JSON format with this structure:
{
  "summary": {
    "light_scenario": "one sentence describing the light estimate",
    "heavy_scenario": "one sentence describing the heavy estimate"
  },
  "calculations": {
    "per_unit_credits": 0,
    "monthly_total_light": 0,
    "monthly_total_heavy": 0,
    "dollar_cost_light": 0,
    "dollar_cost_heavy": 0,
    "legacy_comparison_light": 0,
    "legacy_comparison_heavy": 0
  },
  "assumptions": ["assumptions behind the numbers"],
  "warnings": ["caveats the user should know about"]
}

All numbers must be plain numerics, not strings. monthly_total_light must not
exceed monthly_total_heavy.`, idea, unit, count, string(defaultsJSON)), nil
}
