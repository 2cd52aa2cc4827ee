package cmd

import (
	"strings"

	"github.com/kjeldgaard/qbitctl/internal/app"
	"github.com/kjeldgaard/qbitctl/internal/config"
	"github.com/kjeldgaard/qbitctl/internal/domain"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// RunAdd cmd to add a torrent from file or magnet
func RunAdd() *cobra.Command {
	var dest string

	command := &cobra.Command{
		Use:   "add <file-or-magnet>",
		Short: "Add torrent",
		Long:  `Add a new torrent to qBittorrent from a .torrent file or a magnet link`,
		Example: `  qbitctl add my-file.torrent --dest /data/downloads
  qbitctl add magnet:?xt=urn:btih:5dee65101db281ac9c46344cd6b175cdcad53426`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a torrent file or magnet as first argument")
			}

			return nil
		},
	}

	command.Flags().StringVarP(&dest, "dest", "d", "", "Destination folder for the torrent content")

	command.RunE = func(cmd *cobra.Command, args []string) error {
		settings := config.Resolve(config.Overrides, config.Load(config.CfgFile))

		input := args[0]

		var intent domain.RequestIntent
		if strings.HasPrefix(input, "magnet:") {
			intent = domain.AddMagnet{URI: input, Dest: dest}
		} else {
			intent = domain.AddFile{Path: input, Dest: dest}
		}

		return app.Run(cmd.Context(), settings, intent, cmd.OutOrStdout())
	}

	return command
}
