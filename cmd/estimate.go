package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/creditpilot/credit-wizard/pkg/agent"
	"github.com/creditpilot/credit-wizard/pkg/config"
	"github.com/creditpilot/credit-wizard/pkg/estimator"
	"github.com/creditpilot/credit-wizard/pkg/formatter"
	"github.com/creditpilot/credit-wizard/pkg/store"
)

var (
	estimateUnit     string
	estimateCount    int
	estimateProvider string
	outputFormat     string
)

func NewEstimateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "estimate IDEA",
		Short: "One-shot credit-usage estimate",
		Long: `Run both agent steps without the interactive wizard.

Examples:
  # Estimate with the offline simulated agent
  credit-wizard estimate "AI email responder" --unit "one email" --count 10000

  # Estimate against the remote agent service
  credit-wizard estimate "invoice processing bot" -u "one invoice" -c 2500 --provider remote

  # Machine-readable output
  credit-wizard estimate "AI email responder" -u "one email" -c 10000 -o json`,
		Args: cobra.ExactArgs(1),
		RunE: runEstimate,
	}

	cmd.Flags().StringVarP(&estimateUnit, "unit", "u", "", "Unit of work (e.g. \"one support email\")")
	cmd.Flags().IntVarP(&estimateCount, "count", "c", 0, "Units per month")
	cmd.Flags().StringVar(&estimateProvider, "provider", "", "Agent provider (remote, mock)")
	cmd.Flags().StringVarP(&outputFormat, "output", "o", "human", "Output format (human, json, yaml)")

	return cmd
}

func runEstimate(cmd *cobra.Command, args []string) error {
	idea := args[0]
	if estimateUnit == "" {
		return fmt.Errorf("--unit is required")
	}
	if estimateCount <= 0 {
		return fmt.Errorf("--count must be a positive number")
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	ag, err := agent.New(cfg, estimateProvider)
	if err != nil {
		return err
	}
	est := estimator.New(ag, cfg)

	ctx, cancel := context.WithTimeout(context.Background(), 2*cfg.Timeout)
	defer cancel()

	s := spinner.New(spinner.CharSets[11], 100*time.Millisecond)
	s.Suffix = " Parsing scenario..."
	s.Start()

	scenario, err := est.ParseScenario(ctx, idea)
	if err != nil {
		s.Stop()
		return fmt.Errorf("scenario step failed: %w", err)
	}
	s.Stop()
	printSuccess("Scenario parsed")

	s.Suffix = " Calculating credits..."
	s.Start()

	calc, err := est.Calculate(ctx, idea, estimateUnit, estimateCount, scenario)
	if err != nil {
		s.Stop()
		return fmt.Errorf("calculation step failed: %w", err)
	}
	s.Stop()
	printSuccess("Calculation complete")

	if st, err := store.New(); err == nil {
		st.SaveCalculation(calc)
		st.SaveFormData(store.FormData{
			BusinessIdea: idea,
			UnitOfWork:   estimateUnit,
			MonthlyCount: fmt.Sprintf("%d", estimateCount),
		})
	}

	return formatter.DisplayResults(calc, outputFormat, formatter.AllSections)
}

func printSuccess(msg string) {
	green := color.New(color.FgGreen)
	green.Printf("✓ %s\n", msg)
}
