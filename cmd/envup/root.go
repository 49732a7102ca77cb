package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/riverbend-labs/envup/internal/bootstrap"
	"github.com/riverbend-labs/envup/internal/config"
	"github.com/riverbend-labs/envup/internal/logging"
	"github.com/riverbend-labs/envup/internal/messages"
	"github.com/riverbend-labs/envup/internal/terminal"
)

// Seams for tests.
var (
	getwd        = os.Getwd
	isTerminal   = terminal.IsInteractive
	bootstrapRun = bootstrap.Run
)

// newRootCmd builds the envup command tree. The root command itself performs
// the full bootstrap sequence; it takes no arguments.
func newRootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:           messages.RootUse,
		Short:         messages.RootShort,
		Long:          messages.RootLong,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := getwd()
			if err != nil {
				return err
			}
			cfg, _, err := config.Load(cwd)
			if err != nil {
				return err
			}

			logger := logging.New(verbose, cmd.ErrOrStderr())
			defer func() { _ = logger.Sync() }()

			return bootstrapRun(cmd.Context(), bootstrap.Options{
				Dir:    cwd,
				Config: cfg,
				Stdout: cmd.OutOrStdout(),
				Stderr: cmd.ErrOrStderr(),
				Logger: logger,
			})
		},
	}

	cmd.PersistentFlags().BoolVar(&verbose, "verbose", false, messages.RootVerboseFlag)

	cmd.AddCommand(newDoctorCmd())
	cmd.AddCommand(newInitCmd())
	cmd.AddCommand(newCompletionCmd())
	return cmd
}
