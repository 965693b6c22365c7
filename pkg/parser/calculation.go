package parser

import (
	"encoding/json"
	"fmt"

	"github.com/creditpilot/credit-wizard/pkg/model"
)

// DecodeCalculation validates recovered JSON against the CreditCalculation
// shape.
func DecodeCalculation(raw json.RawMessage) (*model.CreditCalculation, error) {
	var calc model.CreditCalculation
	if err := json.Unmarshal(raw, &calc); err != nil {
		return nil, fmt.Errorf("calculation payload: %w", err)
	}

	c := calc.Calcs
	for _, v := range []struct {
		name  string
		value float64
	}{
		{"per_unit_credits", c.PerUnitCredits},
		{"monthly_total_light", c.MonthlyTotalLight},
		{"monthly_total_heavy", c.MonthlyTotalHeavy},
		{"dollar_cost_light", c.DollarCostLight},
		{"dollar_cost_heavy", c.DollarCostHeavy},
	} {
		if v.value < 0 {
			return nil, fmt.Errorf("calculation payload: negative %s", v.name)
		}
	}
	if c.MonthlyTotalLight == 0 && c.MonthlyTotalHeavy == 0 && c.PerUnitCredits == 0 {
		return nil, fmt.Errorf("calculation payload: no calculations present")
	}
	return &calc, nil
}
