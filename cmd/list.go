package cmd

import (
	"github.com/kjeldgaard/qbitctl/internal/app"
	"github.com/kjeldgaard/qbitctl/internal/config"
	"github.com/kjeldgaard/qbitctl/internal/domain"

	"github.com/spf13/cobra"
)

// RunList cmd to list torrents
func RunList() *cobra.Command {
	var (
		all        bool
		outputJson bool
	)

	command := &cobra.Command{
		Use:     "list",
		Short:   "List torrents",
		Long:    `List active torrents, or all torrents with --all. Active means not yet complete or currently transferring`,
		Example: `  qbitctl list --all`,
	}

	command.Flags().BoolVarP(&all, "all", "a", false, "Include completed idle torrents")
	command.Flags().BoolVar(&outputJson, "json", false, "Print as json")

	command.RunE = func(cmd *cobra.Command, args []string) error {
		settings := config.Resolve(config.Overrides, config.Load(config.CfgFile))

		return app.Run(cmd.Context(), settings, domain.List{All: all, JSON: outputJson}, cmd.OutOrStdout())
	}

	return command
}
