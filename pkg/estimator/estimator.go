package estimator

import (
	"context"
	"fmt"

	"github.com/creditpilot/credit-wizard/pkg/agent"
	"github.com/creditpilot/credit-wizard/pkg/config"
	"github.com/creditpilot/credit-wizard/pkg/model"
	"github.com/creditpilot/credit-wizard/pkg/parser"
	"github.com/creditpilot/credit-wizard/pkg/prompts"
)

// Estimator drives the two agent calls of a wizard run: scenario parsing
// and credit calculation. It composes the message, invokes the gateway and
// decodes the recovered payload into the typed record.
type Estimator struct {
	agent           agent.Agent
	scenarioAgentID string
	calcAgentID     string
}

func New(a agent.Agent, cfg *config.Config) *Estimator {
	return &Estimator{
		agent:           a,
		scenarioAgentID: cfg.ScenarioAgentID,
		calcAgentID:     cfg.CalculationAgentID,
	}
}

func (e *Estimator) ParseScenario(ctx context.Context, idea string) (*model.ScenarioData, error) {
	msg := prompts.BuildScenarioMessage(idea)

	resp, err := e.agent.Invoke(ctx, e.scenarioAgentID, msg)
	if err != nil {
		return nil, fmt.Errorf("scenario agent: %w", err)
	}

	data, err := parser.DecodeScenario(resp.Result)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", agent.ErrBadPayload, err)
	}
	return data, nil
}

func (e *Estimator) Calculate(ctx context.Context, idea, unit string, count int, scenario *model.ScenarioData) (*model.CreditCalculation, error) {
	var defaults map[string]any
	if scenario != nil {
		defaults = scenario.DefaultsApplied
	}
	msg, err := prompts.BuildCalculationMessage(idea, unit, count, defaults)
	if err != nil {
		return nil, err
	}

	resp, err := e.agent.Invoke(ctx, e.calcAgentID, msg)
	if err != nil {
		return nil, fmt.Errorf("calculation agent: %w", err)
	}

	calc, err := parser.DecodeCalculation(resp.Result)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", agent.ErrBadPayload, err)
	}
	return calc, nil
}
