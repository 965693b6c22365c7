package formatter

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"github.com/creditpilot/credit-wizard/pkg/model"
)

// Options are the disclosure toggles the wizard owns; the renderer itself
// is stateless.
type Options struct {
	ShowLightDetails bool
	ShowHeavyDetails bool
	ShowComparison   bool
}

// AllSections is used by the non-interactive command, which has no toggles.
var AllSections = Options{ShowLightDetails: true, ShowHeavyDetails: true, ShowComparison: true}

// DisplayResults formats and prints the calculation in the requested format.
func DisplayResults(calc *model.CreditCalculation, format string, opts Options) error {
	switch format {
	case "json":
		out, err := json.MarshalIndent(calc, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
	case "yaml":
		out, err := yaml.Marshal(calc)
		if err != nil {
			return err
		}
		fmt.Println(string(out))
	case "human":
		fallthrough
	default:
		fmt.Print(Render(calc, opts))
	}
	return nil
}

// Render produces the human-readable report.
func Render(calc *model.CreditCalculation, opts Options) string {
	cyan := color.New(color.FgCyan, color.Bold)
	green := color.New(color.FgGreen, color.Bold)
	yellow := color.New(color.FgYellow, color.Bold)
	red := color.New(color.FgRed, color.Bold)

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(cyan.Sprint("💳 CREDIT USAGE ESTIMATE"))
	b.WriteString("\n\n")

	c := calc.Calcs
	fmt.Fprintf(&b, "   Per unit:      %s credits\n", formatNumber(c.PerUnitCredits))
	fmt.Fprintf(&b, "   Monthly light: %s credits (%s)\n", formatNumber(c.MonthlyTotalLight), formatDollars(c.DollarCostLight))
	fmt.Fprintf(&b, "   Monthly heavy: %s credits (%s)\n\n", formatNumber(c.MonthlyTotalHeavy), formatDollars(c.DollarCostHeavy))

	if opts.ShowLightDetails && calc.Summary.LightScenario != "" {
		b.WriteString(green.Sprint("🟢 LIGHT SCENARIO:"))
		fmt.Fprintf(&b, "\n   %s\n\n", calc.Summary.LightScenario)
	}
	if opts.ShowHeavyDetails && calc.Summary.HeavyScenario != "" {
		b.WriteString(red.Sprint("🔴 HEAVY SCENARIO:"))
		fmt.Fprintf(&b, "\n   %s\n\n", calc.Summary.HeavyScenario)
	}
	if opts.ShowComparison && (c.LegacyComparisonLight > 0 || c.LegacyComparisonHeavy > 0) {
		b.WriteString(cyan.Sprint("⚖️  LEGACY COMPARISON:"))
		fmt.Fprintf(&b, "\n   Light: %.1fx the legacy cost advantage\n", c.LegacyComparisonLight)
		fmt.Fprintf(&b, "   Heavy: %.1fx the legacy cost advantage\n\n", c.LegacyComparisonHeavy)
	}

	if len(calc.Assumptions) > 0 {
		yellow.Fprint(&b, "📋 ASSUMPTIONS:")
		b.WriteString("\n")
		for i, a := range calc.Assumptions {
			fmt.Fprintf(&b, "   %d. %s\n", i+1, a)
		}
		b.WriteString("\n")
	}
	if len(calc.Warnings) > 0 {
		yellow.Fprint(&b, "⚠️  WARNINGS:")
		b.WriteString("\n")
		for _, w := range calc.Warnings {
			fmt.Fprintf(&b, "   • %s\n", w)
		}
		b.WriteString("\n")
	}

	b.WriteString(strings.Repeat("─", 60))
	b.WriteString("\n")
	fmt.Fprintf(&b, "💡 %s\n", color.HiBlackString("Run with -o json or -o yaml for machine-readable output"))
	return b.String()
}

func formatNumber(v float64) string {
	if v == float64(int64(v)) && v < 1e15 {
		return addThousands(fmt.Sprintf("%d", int64(v)))
	}
	return fmt.Sprintf("%.2f", v)
}

func formatDollars(v float64) string {
	if v < 0.005 && v > 0 {
		return "<$0.01"
	}
	return fmt.Sprintf("$%.2f", v)
}

func addThousands(s string) string {
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	out := strings.Join(parts, ",")
	if neg {
		return "-" + out
	}
	return out
}
