package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/saulo-duarte/clubhouse/internal/container"
	"github.com/saulo-duarte/clubhouse/internal/goal"
)

func NewGoalsCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goals",
		Short: "Work with club goals",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "clear-completed",
		Short: "Remove every completed goal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			stores, err := container.OpenStores(rootOpts.DataDir)
			if err != nil {
				return err
			}
			removed, err := goal.NewContainer(stores["goals"]).Service.ClearCompleted(cmd.Context())
			if err != nil {
				return err
			}

			if rootOpts.Format == "json" {
				return writeJSON(cmd.OutOrStdout(), goal.ClearCompletedResponse{Removed: removed})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %d completed goal(s)\n", removed)
			return nil
		},
	})

	return cmd
}
