package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// RootOptions holds global flags shared by every job command.
type RootOptions struct {
	Verbose bool
	Company string
}

// NewRootCommand creates the opsync root command with one subcommand
// per sync job.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "opsync",
		Short: "opsync - internal automation sync runner",
		Long: `opsync pulls operational records (assets, swag, repos, shipments,
expenses, trips) from each company's record store into Postgres,
generates barcode artifacts where the entity calls for them, and
writes canonical ids back to the source.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			configureLogging(opts.Verbose)
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Company, "company", "", "run for a single company instead of all")

	for _, spec := range jobSpecs(nil) {
		cmd.AddCommand(newJobCommand(opts, spec.Name, spec.Short))
	}

	return cmd
}

// configureLogging installs the process-wide structured logger.
func configureLogging(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
}

// newJobCommand creates the subcommand for a single sync job. The full
// dependency graph is only built when the command actually runs.
func newJobCommand(opts *RootOptions, name, short string) *cobra.Command {
	return &cobra.Command{
		Use:           name,
		Short:         short,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			dispatcher, cleanup, err := buildDispatcher()
			if err != nil {
				return err
			}
			defer cleanup()
			return dispatcher.Run(cmd.Context(), name, opts.Company)
		},
	}
}
