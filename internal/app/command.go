package app

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/agbru/fetchsim/internal/config"
	apperrors "github.com/agbru/fetchsim/internal/errors"
)

// RootCommand returns the fetchsim root command. Running it resolves the
// configuration, performs one run and stores the run's exit code in exitCode.
func RootCommand(stdout, stderr io.Writer, exitCode *int, opts ...AppOption) *cobra.Command {
	cfg := config.Default()

	cmd := &cobra.Command{
		Use:   "fetchsim",
		Short: "Simulate concurrent fetches of a list of endpoints",
		Long: `fetchsim launches one simulated fetch per endpoint, all running concurrently.
Each fetch sleeps for a random delay and then succeeds with its payload or fails
with a simulated network or server error. Outcomes are printed as they are
collected, followed by a success/failed summary.`,
		Version:       VersionString(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			resolved, err := config.Resolve(cfg, cmd.Flags())
			if err != nil {
				return err
			}
			*exitCode = New(resolved, stdout, stderr, opts...).Run(cmd.Context())
			return nil
		},
	}
	cmd.SetVersionTemplate("{{.Version}}\n")
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	config.RegisterFlags(cmd.Flags(), &cfg)
	cmd.AddCommand(versionCommand())

	return cmd
}

// Execute runs the command line args and returns the process exit code.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer, opts ...AppOption) int {
	exitCode := apperrors.ExitSuccess
	cmd := RootCommand(stdout, stderr, &exitCode, opts...)
	cmd.SetArgs(args)

	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCodeForError(err)
	}
	return exitCode
}

// exitCodeForError maps a command error to an exit code. Everything that
// fails before a run starts is a usage or configuration problem.
func exitCodeForError(err error) int {
	if apperrors.IsContextError(err) {
		return apperrors.ExitErrorCanceled
	}
	return apperrors.ExitErrorConfig
}
