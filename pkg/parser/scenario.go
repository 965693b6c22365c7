package parser

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/creditpilot/credit-wizard/pkg/model"
)

// DecodeScenario validates recovered JSON against the ScenarioData shape.
// Unexpected shapes become an error here instead of leaking untyped maps
// into the wizard.
func DecodeScenario(raw json.RawMessage) (*model.ScenarioData, error) {
	var data model.ScenarioData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("scenario payload: %w", err)
	}
	if strings.TrimSpace(data.ScenarioSummary) == "" {
		return nil, fmt.Errorf("scenario payload: missing scenario_summary")
	}
	if data.DefaultsApplied == nil {
		data.DefaultsApplied = map[string]any{}
	}
	return &data, nil
}
