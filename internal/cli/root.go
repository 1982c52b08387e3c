package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"

	"github.com/spf13/cobra"

	"github.com/saulo-duarte/clubhouse/internal/config"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	DataDir  string
	Format   string // "json" | "text"
	LogLevel string
}

var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the clubctl root command.
func NewRootCommand() *cobra.Command {
	defaults := config.Load()
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "clubctl",
		Short: "Manage the club record stores",
		Long:  "Serve the club API or work on the CSV record stores directly.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			config.InitLogger(opts.LogLevel, "text")
			config.Logger.SetOutput(cmd.ErrOrStderr())
			return nil
		},
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&opts.DataDir, "data-dir", defaults.DataDir, "directory holding the CSV stores")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", defaults.LogLevel, "log level")

	cmd.AddCommand(NewServeCommand(opts))
	cmd.AddCommand(NewSummaryCommand(opts))
	cmd.AddCommand(NewExportCommand(opts))
	cmd.AddCommand(NewGoalsCommand(opts))

	return cmd
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
