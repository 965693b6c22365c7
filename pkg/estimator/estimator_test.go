package estimator

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/creditpilot/credit-wizard/pkg/agent"
	"github.com/creditpilot/credit-wizard/pkg/config"
	"github.com/creditpilot/credit-wizard/pkg/model"
)

type stubAgent struct {
	lastAgentID string
	lastMessage string
	resp        *model.AgentResponse
	err         error
}

func (s *stubAgent) Invoke(_ context.Context, agentID, message string) (*model.AgentResponse, error) {
	s.lastAgentID = agentID
	s.lastMessage = message
	return s.resp, s.err
}

func testConfig() *config.Config {
	return &config.Config{
		ScenarioAgentID:    "scenario-parser",
		CalculationAgentID: "credit-calculator",
	}
}

func TestParseScenarioRoutesToScenarioAgent(t *testing.T) {
	stub := &stubAgent{resp: &model.AgentResponse{
		Result: []byte(`{"scenario_summary":"summary"}`),
	}}
	e := New(stub, testConfig())

	data, err := e.ParseScenario(context.Background(), "AI email responder")
	if err != nil {
		t.Fatalf("parse scenario: %v", err)
	}
	if stub.lastAgentID != "scenario-parser" {
		t.Fatalf("wrong agent id: %s", stub.lastAgentID)
	}
	if data.ScenarioSummary != "summary" {
		t.Fatalf("unexpected data: %+v", data)
	}
}

func TestCalculateEmbedsInputs(t *testing.T) {
	stub := &stubAgent{resp: &model.AgentResponse{
		Result: []byte(`{"calculations":{"per_unit_credits":1,"monthly_total_light":10,"monthly_total_heavy":25}}`),
	}}
	e := New(stub, testConfig())

	scenario := &model.ScenarioData{
		ScenarioSummary: "s",
		DefaultsApplied: map[string]any{"language": "en"},
	}
	calc, err := e.Calculate(context.Background(), "idea", "one email", 10000, scenario)
	if err != nil {
		t.Fatalf("calculate: %v", err)
	}
	if stub.lastAgentID != "credit-calculator" {
		t.Fatalf("wrong agent id: %s", stub.lastAgentID)
	}
	for _, want := range []string{"idea", "one email", "10000", "language"} {
		if !strings.Contains(stub.lastMessage, want) {
			t.Fatalf("composed message missing %q", want)
		}
	}
	if calc.Calcs.MonthlyTotalHeavy != 25 {
		t.Fatalf("unexpected calc: %+v", calc.Calcs)
	}
}

func TestAgentFailurePropagates(t *testing.T) {
	stub := &stubAgent{err: agent.ErrContactFailed}
	e := New(stub, testConfig())
	if _, err := e.ParseScenario(context.Background(), "idea"); !errors.Is(err, agent.ErrContactFailed) {
		t.Fatalf("expected ErrContactFailed, got %v", err)
	}
}

func TestBadShapeBecomesBadPayload(t *testing.T) {
	stub := &stubAgent{resp: &model.AgentResponse{Result: []byte(`[1,2,3]`)}}
	e := New(stub, testConfig())
	if _, err := e.ParseScenario(context.Background(), "idea"); !errors.Is(err, agent.ErrBadPayload) {
		t.Fatalf("expected ErrBadPayload, got %v", err)
	}
}
