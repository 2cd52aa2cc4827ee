package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// RunVersion cmd to print build info
func RunVersion(version string, commit string, date string) *cobra.Command {
	command := &cobra.Command{
		Use:   "version",
		Short: "Print the version",
	}

	command.Run = func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "Version: %s\nCommit: %s\nDate: %s\n", version, commit, date)
	}

	return command
}
