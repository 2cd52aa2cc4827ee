package qbittorrent

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"os"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/net/publicsuffix"
)

// Client talks to one qBittorrent Web API daemon. The embedded HTTP
// client keeps the session cookie from auth/login in its jar, so every
// later request is authenticated automatically. A Client lives for one
// invocation and is never shared.
type Client struct {
	settings Settings

	http *http.Client
	out  io.Writer
}

type Settings struct {
	// Host is the daemon base URL without a trailing slash, e.g.
	// http://127.0.0.1:8080.
	Host     string
	Username string
	Password string

	// DryRun makes the add methods print what would be sent and skip
	// all network I/O.
	DryRun bool

	// Verbose echoes every request/response pair.
	Verbose bool

	// Output receives [dry-run] and [verbose] diagnostics. Defaults to
	// os.Stdout.
	Output io.Writer
}

func NewClient(settings Settings) *Client {
	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		// cookiejar.New cannot fail with these options
		panic(err)
	}

	out := settings.Output
	if out == nil {
		out = os.Stdout
	}

	return &Client{
		settings: settings,
		http:     &http.Client{Jar: jar},
		out:      out,
	}
}

func (c *Client) buildUrl(endpoint string) string {
	return c.settings.Host + "/api/v2/" + endpoint
}

func (c *Client) postFormCtx(ctx context.Context, reqUrl string, form url.Values) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqUrl, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, errors.Wrap(err, "could not build request")
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "could not reach %s", reqUrl)
	}

	return resp, nil
}

// readBody drains and closes the response body and, in verbose mode,
// echoes the request/response pair before the caller evaluates it.
func (c *Client) readBody(resp *http.Response, method, reqUrl string) (string, error) {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.Wrapf(err, "could not read response from %s", reqUrl)
	}

	c.echo(method, reqUrl, resp.StatusCode, string(body))

	return string(body), nil
}

func (c *Client) echo(method, reqUrl string, status int, body string) {
	if !c.settings.Verbose {
		return
	}

	fmt.Fprintf(c.out, "[verbose] %s %s -> %d\n", method, reqUrl, status)
	fmt.Fprintf(c.out, "[verbose] response: %s\n", body)
}
