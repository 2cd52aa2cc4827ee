package app

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/kjeldgaard/qbitctl/internal/display"
	"github.com/kjeldgaard/qbitctl/internal/domain"
	"github.com/kjeldgaard/qbitctl/pkg/qbittorrent"

	"github.com/pkg/errors"
)

// Run performs the single operation selected for this invocation:
// build one client, log in when the settings carry credentials, then
// dispatch on the intent. All output goes to out.
func Run(ctx context.Context, settings domain.Settings, intent domain.RequestIntent, out io.Writer) error {
	client := qbittorrent.NewClient(qbittorrent.Settings{
		Host:     settings.Host,
		Username: settings.Username,
		Password: settings.Password,
		DryRun:   settings.DryRun,
		Verbose:  settings.Verbose,
		Output:   out,
	})

	switch in := intent.(type) {
	case domain.AddMagnet:
		savePath, err := resolveSavePath(in.Dest, settings)
		if err != nil {
			return err
		}

		if !settings.DryRun {
			if err := client.LoginCtx(ctx); err != nil {
				return err
			}
		}

		hash, err := client.AddTorrentFromMagnetCtx(ctx, in.URI, savePath)
		if err != nil {
			return errors.Wrapf(err, "adding torrent from magnet failed")
		}

		reportAdded(out, settings, savePath, hash)

	case domain.AddFile:
		savePath, err := resolveSavePath(in.Dest, settings)
		if err != nil {
			return err
		}

		if !settings.DryRun {
			if err := client.LoginCtx(ctx); err != nil {
				return err
			}
		}

		hash, err := client.AddTorrentFromFileCtx(ctx, in.Path, savePath)
		if err != nil {
			return errors.Wrapf(err, "adding torrent file failed")
		}

		reportAdded(out, settings, savePath, hash)

	case domain.List:
		if err := client.LoginCtx(ctx); err != nil {
			return err
		}

		torrents, err := client.GetTorrentsCtx(ctx)
		if err != nil {
			return errors.Wrap(err, "could not get torrents")
		}

		if !in.All {
			torrents = qbittorrent.FilterActive(torrents)
		}

		if len(torrents) == 0 {
			fmt.Fprintln(out, "No torrents found")
			return nil
		}

		if in.JSON {
			res, err := json.Marshal(torrents)
			if err != nil {
				return errors.Wrap(err, "could not marshal torrents to json")
			}

			fmt.Fprintln(out, string(res))
			return nil
		}

		display.Render(out, torrents)

	default:
		return errors.Errorf("unknown request intent: %T", intent)
	}

	return nil
}

// resolveSavePath picks the destination for an add: the --dest flag,
// then the config file's default_save_path, then the current working
// directory.
func resolveSavePath(dest string, settings domain.Settings) (string, error) {
	if dest != "" {
		return dest, nil
	}

	if settings.DefaultSavePath != "" {
		return settings.DefaultSavePath, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", errors.Wrap(err, "could not determine working directory")
	}

	return wd, nil
}

func reportAdded(out io.Writer, settings domain.Settings, savePath, hash string) {
	if settings.Verbose && hash != "" {
		fmt.Fprintf(out, "[verbose] torrent hash: %s\n", hash)
	}

	fmt.Fprintf(out, "Added to qBittorrent (destination: %s)\n", savePath)
}
