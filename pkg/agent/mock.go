package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/creditpilot/credit-wizard/pkg/model"
)

// Mock is a deterministic offline stand-in for the remote agent service.
// It answers scenario requests with a canned summary and calculation
// requests with a fixed arithmetic formula, so the wizard can be exercised
// without network access or an API key.
type Mock struct {
	scenarioAgentID string
	calcAgentID     string
	creditPriceUSD  float64
	legacyCostUSD   float64
}

func NewMock(scenarioAgentID, calcAgentID string, creditPriceUSD, legacyCostUSD float64) *Mock {
	if creditPriceUSD <= 0 {
		creditPriceUSD = 0.01
	}
	if legacyCostUSD <= 0 {
		legacyCostUSD = 0.50
	}
	return &Mock{
		scenarioAgentID: scenarioAgentID,
		calcAgentID:     calcAgentID,
		creditPriceUSD:  creditPriceUSD,
		legacyCostUSD:   legacyCostUSD,
	}
}

func (m *Mock) Invoke(_ context.Context, agentID, message string) (*model.AgentResponse, error) {
	var result any
	switch agentID {
	case m.calcAgentID:
		result = m.calculate(message)
	case m.scenarioAgentID:
		result = m.scenario(message)
	default:
		return nil, fmt.Errorf("%w: unknown agent %q", ErrContactFailed, agentID)
	}

	raw, err := json.Marshal(result)
	if err != nil {
		return nil, err
	}
	return &model.AgentResponse{
		Result:     raw,
		Confidence: 1,
		Metadata:   map[string]any{"simulated": true},
	}, nil
}

func (m *Mock) scenario(message string) *model.ScenarioData {
	summary := firstLineOf(message)
	if summary == "" {
		summary = "General-purpose AI agent workload"
	}
	return &model.ScenarioData{
		ScenarioSummary: summary,
		QuestionsAsked:  []string{"How many units of work do you expect per month?"},
		UserResponses:   []string{},
		DefaultsApplied: map[string]any{
			"automation_level": "full",
			"working_hours":    "24/7",
		},
	}
}

// calculate derives the estimate from numbers embedded in the composed
// message: the first positive number is taken as the monthly count and the
// second, when present, as a per-unit credit hint. This is a best-effort
// heuristic against a templated message, not a parsing contract.
func (m *Mock) calculate(message string) *model.CreditCalculation {
	nums := positiveNumbers(message, 2)

	count := 1.0
	if len(nums) > 0 {
		count = nums[0]
	}
	perUnit := creditsPerUnit(message)
	if len(nums) > 1 && nums[1] <= 8 && nums[1] < count {
		perUnit = nums[1]
	}

	light := count * perUnit
	heavy := light * 2.5
	dollarLight := light * m.creditPriceUSD
	dollarHeavy := heavy * m.creditPriceUSD
	legacyTotal := count * m.legacyCostUSD

	calc := &model.CreditCalculation{
		Summary: model.Summary{
			LightScenario: fmt.Sprintf("%.0f units/month at %.1f credits each under efficient usage", count, perUnit),
			HeavyScenario: fmt.Sprintf("%.0f units/month with a 2.5x overhead under heavy usage", count),
		},
		Calcs: model.Calculations{
			PerUnitCredits:    perUnit,
			MonthlyTotalLight: light,
			MonthlyTotalHeavy: heavy,
			DollarCostLight:   dollarLight,
			DollarCostHeavy:   dollarHeavy,
		},
		Assumptions: []string{
			fmt.Sprintf("credit price of $%.3f", m.creditPriceUSD),
			fmt.Sprintf("legacy cost of $%.2f per unit", m.legacyCostUSD),
			"heavy scenario applies a 2.5x multiplier to the light total",
		},
		Warnings: []string{"simulated estimate, not based on observed usage"},
	}
	if dollarLight > 0 {
		calc.Calcs.LegacyComparisonLight = legacyTotal / dollarLight
	}
	if dollarHeavy > 0 {
		calc.Calcs.LegacyComparisonHeavy = legacyTotal / dollarHeavy
	}
	return calc
}

// creditsPerUnit bands the scenario text length into 1..4 credits.
func creditsPerUnit(message string) float64 {
	words := len(strings.Fields(message))
	switch {
	case words > 300:
		return 4
	case words > 150:
		return 3
	case words > 60:
		return 2
	default:
		return 1
	}
}

var numberPattern = regexp.MustCompile(`\d+(?:\.\d+)?`)

func positiveNumbers(s string, max int) []float64 {
	var out []float64
	for _, match := range numberPattern.FindAllString(s, -1) {
		f, err := strconv.ParseFloat(match, 64)
		if err != nil || f <= 0 {
			continue
		}
		out = append(out, f)
		if len(out) == max {
			break
		}
	}
	return out
}

func firstLineOf(message string) string {
	for _, line := range strings.Split(message, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		// Composed messages label the idea; strip the label when present.
		if _, after, found := strings.Cut(line, "Business Idea:"); found {
			return strings.TrimSpace(after)
		}
	}
	for _, line := range strings.Split(message, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			return trimmed
		}
	}
	return ""
}
