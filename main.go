package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/creditpilot/credit-wizard/cmd"
)

var (
	version = "v0.1.0" // Overwritten at build time
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "credit-wizard",
		Short: "AI agent credit-usage estimator",
		Long: `credit-wizard collects a business description and usage volume, sends them
to a scenario-parsing and a credit-calculation agent, and renders the returned
credit-usage estimate.`,
		SilenceUsage: true,
	}

	// Disable automatic 'completion' command added by cobra
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	// Add subcommands
	rootCmd.AddCommand(
		cmd.NewWizardCmd(),
		cmd.NewEstimateCmd(),
		cmd.NewResetCmd(),
		newVersionCmd(),
	)

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("credit-wizard version %s\n", version)
		},
	}
}
