package display

import (
	"fmt"
	"io"

	"github.com/kjeldgaard/qbitctl/pkg/qbittorrent"
)

const (
	kb = 1024
	mb = 1024 * 1024
	gb = 1024 * 1024 * 1024
)

const maxNameLen = 40

// Render writes the torrent list as a fixed-column table with a header
// row. Column order: short id, name, status, progress, download rate,
// upload rate.
func Render(w io.Writer, torrents []qbittorrent.Torrent) {
	const rowFormat = "%-8s  %-43s  %-18s  %8s  %12s  %12s\n"

	fmt.Fprintf(w, rowFormat, "ID", "NAME", "STATE", "PROGRESS", "DL", "UP")

	for _, torrent := range torrents {
		fmt.Fprintf(w, rowFormat,
			ShortHash(torrent.Hash),
			TruncateName(torrent.Name),
			string(torrent.State),
			FormatProgress(torrent.Progress),
			FormatRate(torrent.DlSpeed),
			FormatRate(torrent.UpSpeed),
		)
	}
}

// ShortHash returns the first 8 characters of the hash, or the whole
// hash when shorter.
func ShortHash(hash string) string {
	if len(hash) > 8 {
		return hash[:8]
	}

	return hash
}

// TruncateName cuts names longer than 40 characters and marks the cut
// with a literal "...".
func TruncateName(name string) string {
	if len(name) > maxNameLen {
		return name[:maxNameLen] + "..."
	}

	return name
}

// FormatProgress renders a 0.0-1.0 progress value as a percentage with
// one decimal, or "-" when the daemon reported none.
func FormatProgress(progress *float64) string {
	if progress == nil {
		return "-"
	}

	return fmt.Sprintf("%.1f%%", *progress*100)
}

// FormatRate renders bytes/sec in the largest unit the value reaches,
// integer for B/s and two decimals from KB/s up.
func FormatRate(bytesPerSec int64) string {
	switch {
	case bytesPerSec >= gb:
		return fmt.Sprintf("%.2f GB/s", float64(bytesPerSec)/gb)
	case bytesPerSec >= mb:
		return fmt.Sprintf("%.2f MB/s", float64(bytesPerSec)/mb)
	case bytesPerSec >= kb:
		return fmt.Sprintf("%.2f KB/s", float64(bytesPerSec)/kb)
	default:
		return fmt.Sprintf("%d B/s", bytesPerSec)
	}
}
