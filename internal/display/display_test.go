package display

import (
	"bytes"
	"strings"
	"testing"

	"github.com/kjeldgaard/qbitctl/pkg/qbittorrent"
)

func TestFormatRate(t *testing.T) {
	tests := []struct {
		name        string
		bytesPerSec int64
		want        string
	}{
		{name: "zero", bytesPerSec: 0, want: "0 B/s"},
		{name: "bytes", bytesPerSec: 500, want: "500 B/s"},
		{name: "just_below_kb", bytesPerSec: 1023, want: "1023 B/s"},
		{name: "kilobytes", bytesPerSec: 2048, want: "2.00 KB/s"},
		{name: "fractional_kb", bytesPerSec: 1536, want: "1.50 KB/s"},
		{name: "megabytes", bytesPerSec: 1048576, want: "1.00 MB/s"},
		{name: "gigabytes", bytesPerSec: 1073741824, want: "1.00 GB/s"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatRate(tt.bytesPerSec); got != tt.want {
				t.Errorf("FormatRate(%d) = %q, want %q", tt.bytesPerSec, got, tt.want)
			}
		})
	}
}

func TestTruncateName(t *testing.T) {
	tests := []struct {
		name    string
		torrent string
		want    string
	}{
		{name: "short", torrent: "ubuntu.iso", want: "ubuntu.iso"},
		{name: "exactly_40", torrent: strings.Repeat("a", 40), want: strings.Repeat("a", 40)},
		{name: "41_chars", torrent: strings.Repeat("a", 41), want: strings.Repeat("a", 40) + "..."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TruncateName(tt.torrent); got != tt.want {
				t.Errorf("TruncateName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestShortHash(t *testing.T) {
	tests := []struct {
		name string
		hash string
		want string
	}{
		{name: "full_hash", hash: "6957bf5272f5b994132458a557864e3ea747489f", want: "6957bf52"},
		{name: "short_hash", hash: "abc", want: "abc"},
		{name: "empty", hash: "", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ShortHash(tt.hash); got != tt.want {
				t.Errorf("ShortHash(%q) = %q, want %q", tt.hash, got, tt.want)
			}
		})
	}
}

func TestFormatProgress(t *testing.T) {
	half := 0.5
	done := 1.0

	tests := []struct {
		name     string
		progress *float64
		want     string
	}{
		{name: "absent", progress: nil, want: "-"},
		{name: "half", progress: &half, want: "50.0%"},
		{name: "complete", progress: &done, want: "100.0%"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatProgress(tt.progress); got != tt.want {
				t.Errorf("FormatProgress() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRender(t *testing.T) {
	progress := 0.421

	var buf bytes.Buffer
	Render(&buf, []qbittorrent.Torrent{
		{
			Name:     "debian-12.5.0-amd64-netinst.iso",
			Hash:     "6957bf5272f5b994132458a557864e3ea747489f",
			State:    qbittorrent.TorrentStateDownloading,
			Progress: &progress,
			DlSpeed:  2048,
			UpSpeed:  0,
		},
	})

	out := buf.String()

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("Render() produced %d lines, want header + 1 row:\n%s", len(lines), out)
	}

	for _, want := range []string{"ID", "NAME", "STATE", "PROGRESS"} {
		if !strings.Contains(lines[0], want) {
			t.Errorf("header %q missing column %q", lines[0], want)
		}
	}

	for _, want := range []string{"6957bf52", "debian-12.5.0-amd64-netinst.iso", "downloading", "42.1%", "2.00 KB/s", "0 B/s"} {
		if !strings.Contains(lines[1], want) {
			t.Errorf("row %q missing %q", lines[1], want)
		}
	}
}
