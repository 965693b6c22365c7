package wizard

import (
	"fmt"
	"strings"

	"github.com/creditpilot/credit-wizard/pkg/formatter"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("💳 Credit Usage Wizard"))
	b.WriteString("\n\n")

	switch m.step {
	case StepIdea:
		b.WriteString(stepStyle.Render("Step 1 of 3"))
		b.WriteString("\n")
		b.WriteString(promptStyle.Render("What does your business do?"))
		b.WriteString("\n\n")
		b.WriteString(m.ideaInput.View())
		b.WriteString("\n\n")
		b.WriteString(hintStyle.Render("enter: next • ctrl+c: quit"))

	case StepProcessing:
		fmt.Fprintf(&b, "%s Contacting agent...", m.spin.View())
		b.WriteString("\n\n")
		b.WriteString(hintStyle.Render("ctrl+c: quit"))

	case StepUnit:
		b.WriteString(stepStyle.Render("Step 2 of 3"))
		b.WriteString("\n")
		b.WriteString(promptStyle.Render("What is one unit of work?"))
		b.WriteString("\n\n")
		b.WriteString(m.unitInput.View())
		b.WriteString("\n\n")
		b.WriteString(hintStyle.Render("enter: next • ctrl+c: quit"))

	case StepCount:
		b.WriteString(stepStyle.Render("Step 3 of 3"))
		b.WriteString("\n")
		b.WriteString(promptStyle.Render("How many units per month?"))
		b.WriteString("\n\n")
		b.WriteString(m.countInput.View())
		b.WriteString("\n\n")
		b.WriteString(hintStyle.Render("enter: estimate • ctrl+c: quit"))

	case StepResults:
		if m.calc != nil {
			b.WriteString(formatter.Render(m.calc, formatter.Options{
				ShowLightDetails: m.showLightDetails,
				ShowHeavyDetails: m.showHeavyDetails,
				ShowComparison:   m.showComparison,
			}))
		}
		b.WriteString("\n")
		b.WriteString(hintStyle.Render("l: light • h: heavy • c: comparison • r: start over • q: quit"))
	}

	if m.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(errorStyle.Render("✗ " + m.errMsg))
	}
	b.WriteString("\n")
	return b.String()
}
