package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/saulo-duarte/clubhouse/internal/container"
)

func NewExportCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "export <store>",
		Short: "Write a store's CSV file to stdout",
		Long:  fmt.Sprintf("Write a store's CSV file to stdout. Stores: %v.", storeNames()),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			if _, ok := container.Stores[name]; !ok {
				return fmt.Errorf("unknown store %q: must be one of %v", name, storeNames())
			}

			stores, err := container.OpenStores(rootOpts.DataDir)
			if err != nil {
				return err
			}
			_, err = stores[name].WriteTo(cmd.OutOrStdout())
			return err
		},
	}
}

func storeNames() []string {
	names := make([]string, 0, len(container.Stores))
	for name := range container.Stores {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
