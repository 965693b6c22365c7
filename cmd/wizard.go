package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/creditpilot/credit-wizard/pkg/agent"
	"github.com/creditpilot/credit-wizard/pkg/config"
	"github.com/creditpilot/credit-wizard/pkg/estimator"
	"github.com/creditpilot/credit-wizard/pkg/store"
	"github.com/creditpilot/credit-wizard/pkg/wizard"
)

var (
	wizardProvider string
	wizardFresh    bool
)

func NewWizardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wizard",
		Short: "Interactive credit-usage wizard",
		Long: `Walk through the three wizard steps (business idea, unit of work,
monthly volume) and get a credit-usage estimate from the configured agent.

The last result is kept on disk and restored on the next start;
use --fresh to skip it.`,
		RunE: runWizard,
	}

	cmd.Flags().StringVar(&wizardProvider, "provider", "", "Agent provider (remote, mock)")
	cmd.Flags().BoolVar(&wizardFresh, "fresh", false, "Ignore the persisted snapshot")

	return cmd
}

func runWizard(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ag, err := agent.New(cfg, wizardProvider)
	if err != nil {
		return err
	}

	st, err := store.New()
	if err != nil {
		return err
	}

	m := wizard.New(estimator.New(ag, cfg), st, cfg.Timeout, wizardFresh)
	if _, err := tea.NewProgram(m).Run(); err != nil {
		return fmt.Errorf("wizard: %w", err)
	}
	return nil
}
