package app

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// Build information, overridden at link time through SetVersionInfo.
var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

// SetVersionInfo sets the version information from main.
func SetVersionInfo(v, c, d string) {
	Version = v
	Commit = c
	BuildDate = d
}

// VersionString renders the multi-line version banner.
func VersionString() string {
	return fmt.Sprintf("fetchsim %s\n  commit: %s\n  built:  %s", Version, Commit, BuildDate)
}

// PrintVersion writes the version banner to out.
func PrintVersion(out io.Writer) {
	fmt.Fprintln(out, VersionString())
}

// versionCommand returns the version subcommand.
func versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			PrintVersion(cmd.OutOrStdout())
		},
	}
}
