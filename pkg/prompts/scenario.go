package prompts

import "fmt"

func BuildScenarioMessage(idea string) string {
	return fmt.Sprintf(`You are a business analyst helping to size AI agent usage.

Business Idea: %s

Summarize the usage scenario for this business and note any defaults you had
to assume (volume, language, working hours, automation level).

Respond in JSON format with this structure:
{
  "scenario_summary": "one paragraph describing the usage scenario",
  "questions_asked": ["clarifying questions you would ask"],
  "user_responses": [],
  "defaults_applied": {"assumption_name": "assumed value"}
}

Be concise. Do not include anything outside the JSON.`, idea)
}
