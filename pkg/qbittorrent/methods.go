package qbittorrent

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"

	"github.com/anacrolix/torrent/metainfo"
	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
)

// LoginCtx authenticates against auth/login and stores the session
// cookie in the jar. With either credential missing the daemon is
// treated as unauthenticated and no request is made. The daemon
// answers the literal body "Ok." on success; any other body, whatever
// the status, is an authentication failure.
func (c *Client) LoginCtx(ctx context.Context) error {
	if c.settings.Username == "" || c.settings.Password == "" {
		return nil
	}

	reqUrl := c.buildUrl("auth/login")

	form := url.Values{
		"username": {c.settings.Username},
		"password": {c.settings.Password},
	}

	resp, err := c.postFormCtx(ctx, reqUrl, form)
	if err != nil {
		return err
	}

	body, err := c.readBody(resp, http.MethodPost, reqUrl)
	if err != nil {
		return err
	}

	if body != "Ok." {
		return &AuthError{Body: body}
	}

	return nil
}

// AddTorrentFromMagnetCtx submits a magnet link to torrents/add with
// the given save path. It returns the info hash when the magnet link
// carries one. In dry-run mode it prints the request that would be
// sent and succeeds without any network I/O.
func (c *Client) AddTorrentFromMagnetCtx(ctx context.Context, magnet string, savePath string) (string, error) {
	reqUrl := c.buildUrl("torrents/add")

	if c.settings.DryRun {
		fmt.Fprintf(c.out, "[dry-run] POST %s\n", reqUrl)
		fmt.Fprintf(c.out, "[dry-run] form params: urls=%s, savepath=%s\n", magnet, savePath)

		return magnetHash(magnet), nil
	}

	form := url.Values{
		"urls":     {magnet},
		"savepath": {savePath},
	}

	resp, err := c.postFormCtx(ctx, reqUrl, form)
	if err != nil {
		return "", err
	}

	body, err := c.readBody(resp, http.MethodPost, reqUrl)
	if err != nil {
		return "", err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &APIError{Status: resp.StatusCode, Body: body}
	}

	return magnetHash(magnet), nil
}

// AddTorrentFromFileCtx uploads a local .torrent file to torrents/add
// as a multipart form with the save path as a text field. The file is
// opened before the dry-run check, so a missing or unreadable file is
// an error even in dry-run mode.
func (c *Client) AddTorrentFromFileCtx(ctx context.Context, file string, savePath string) (string, error) {
	reqUrl := c.buildUrl("torrents/add")

	f, err := os.Open(file)
	if err != nil {
		return "", errors.Wrapf(err, "could not open torrent file: %s", file)
	}
	defer f.Close()

	fileName := filepath.Base(file)
	if fileName == "." || fileName == string(filepath.Separator) {
		fileName = "upload.torrent"
	}

	if c.settings.Verbose {
		if fi, err := f.Stat(); err == nil {
			fmt.Fprintf(c.out, "[verbose] torrent file: %s (%s)\n", fileName, humanize.Bytes(uint64(fi.Size())))
		}
	}

	if c.settings.DryRun {
		fmt.Fprintf(c.out, "[dry-run] POST %s\n", reqUrl)
		fmt.Fprintf(c.out, "[dry-run] file: %s\n", file)
		fmt.Fprintf(c.out, "[dry-run] savepath: %s\n", savePath)

		return fileHash(file), nil
	}

	var requestBody bytes.Buffer

	multiPartWriter := multipart.NewWriter(&requestBody)

	fileWriter, err := multiPartWriter.CreateFormFile("torrents", fileName)
	if err != nil {
		return "", errors.Wrap(err, "could not create torrents field")
	}

	if _, err := io.Copy(fileWriter, f); err != nil {
		return "", errors.Wrapf(err, "could not read torrent file: %s", file)
	}

	if err := multiPartWriter.WriteField("savepath", savePath); err != nil {
		return "", errors.Wrap(err, "could not write savepath field")
	}

	if err := multiPartWriter.Close(); err != nil {
		return "", errors.Wrap(err, "could not finalize multipart body")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqUrl, &requestBody)
	if err != nil {
		return "", errors.Wrap(err, "could not build request")
	}

	req.Header.Set("Content-Type", multiPartWriter.FormDataContentType())

	resp, err := c.http.Do(req)
	if err != nil {
		return "", errors.Wrapf(err, "could not reach %s", reqUrl)
	}

	body, err := c.readBody(resp, http.MethodPost, reqUrl)
	if err != nil {
		return "", err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &APIError{Status: resp.StatusCode, Body: body}
	}

	return fileHash(file), nil
}

// GetTorrentsCtx fetches a fresh snapshot of all torrents from
// torrents/info. A body that does not decode as a torrent list is
// fatal.
func (c *Client) GetTorrentsCtx(ctx context.Context) ([]Torrent, error) {
	reqUrl := c.buildUrl("torrents/info") + "?filter=all"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqUrl, nil)
	if err != nil {
		return nil, errors.Wrap(err, "could not build request")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "could not reach %s", reqUrl)
	}

	body, err := c.readBody(resp, http.MethodGet, reqUrl)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &APIError{Status: resp.StatusCode, Body: body}
	}

	var torrents []Torrent
	if err := json.Unmarshal([]byte(body), &torrents); err != nil {
		return nil, errors.Wrap(err, "could not unmarshal torrent list")
	}

	return torrents, nil
}

// FilterActive retains torrents that are not both fully complete and
// idle: progress below 1.0, or transferring in either direction. A
// record without a progress value counts as incomplete.
func FilterActive(torrents []Torrent) []Torrent {
	var active []Torrent

	for _, torrent := range torrents {
		if torrent.Progress == nil || *torrent.Progress < 1.0 || torrent.DlSpeed > 0 || torrent.UpSpeed > 0 {
			active = append(active, torrent)
		}
	}

	return active
}

// magnetHash extracts the info hash from a magnet link, best effort.
func magnetHash(magnet string) string {
	m, err := metainfo.ParseMagnetUri(magnet)
	if err != nil {
		return ""
	}

	return m.InfoHash.HexString()
}

// fileHash derives the info hash from a .torrent file, best effort.
func fileHash(file string) string {
	t, err := metainfo.LoadFromFile(file)
	if err != nil {
		return ""
	}

	return t.HashInfoBytes().HexString()
}
