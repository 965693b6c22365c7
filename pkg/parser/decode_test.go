package parser

import (
	"encoding/json"
	"testing"
)

func TestDecodeScenario(t *testing.T) {
	raw := json.RawMessage(`{
		"scenario_summary": "Automated email responder for a support inbox",
		"questions_asked": ["What volume do you expect?"],
		"user_responses": ["About 10000 a month"],
		"defaults_applied": {"language": "en"}
	}`)
	data, err := DecodeScenario(raw)
	if err != nil {
		t.Fatalf("decode scenario: %v", err)
	}
	if data.ScenarioSummary == "" || len(data.QuestionsAsked) != 1 {
		t.Fatalf("unexpected scenario: %+v", data)
	}
	if data.DefaultsApplied["language"] != "en" {
		t.Fatalf("defaults lost: %v", data.DefaultsApplied)
	}
}

func TestDecodeScenarioMissingSummary(t *testing.T) {
	if _, err := DecodeScenario(json.RawMessage(`{"questions_asked":[]}`)); err == nil {
		t.Fatal("expected error for missing scenario_summary")
	}
}

func TestDecodeScenarioWrongShape(t *testing.T) {
	if _, err := DecodeScenario(json.RawMessage(`[1,2,3]`)); err == nil {
		t.Fatal("expected error for non-object payload")
	}
}

func TestDecodeScenarioNilDefaults(t *testing.T) {
	data, err := DecodeScenario(json.RawMessage(`{"scenario_summary":"s"}`))
	if err != nil {
		t.Fatalf("decode scenario: %v", err)
	}
	if data.DefaultsApplied == nil {
		t.Fatal("defaults_applied should never be nil after decode")
	}
}

func TestDecodeCalculation(t *testing.T) {
	raw := json.RawMessage(`{
		"summary": {"light_scenario": "low usage", "heavy_scenario": "high usage"},
		"calculations": {
			"per_unit_credits": 2,
			"monthly_total_light": 20000,
			"monthly_total_heavy": 50000,
			"dollar_cost_light": 200,
			"dollar_cost_heavy": 500,
			"legacy_comparison_light": 12.5,
			"legacy_comparison_heavy": 5
		},
		"assumptions": ["one agent action per email"],
		"warnings": []
	}`)
	calc, err := DecodeCalculation(raw)
	if err != nil {
		t.Fatalf("decode calculation: %v", err)
	}
	if calc.Calcs.MonthlyTotalLight > calc.Calcs.MonthlyTotalHeavy {
		t.Fatalf("light exceeds heavy: %+v", calc.Calcs)
	}
}

func TestDecodeCalculationNegative(t *testing.T) {
	raw := json.RawMessage(`{"calculations":{"per_unit_credits":-1,"monthly_total_light":10}}`)
	if _, err := DecodeCalculation(raw); err == nil {
		t.Fatal("expected error for negative credits")
	}
}

func TestDecodeCalculationEmpty(t *testing.T) {
	if _, err := DecodeCalculation(json.RawMessage(`{}`)); err == nil {
		t.Fatal("expected error for empty calculations")
	}
}
