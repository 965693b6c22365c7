package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/creditpilot/credit-wizard/pkg/store"
)

func NewResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Clear the persisted snapshot",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := store.New()
			if err != nil {
				return err
			}
			if err := st.Clear(); err != nil {
				return err
			}
			fmt.Println("Snapshot cleared.")
			return nil
		},
	}
}
