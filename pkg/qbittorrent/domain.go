package qbittorrent

// Torrent is one entry from torrents/info. Only the fields this client
// reads are decoded; progress is a pointer because older daemons omit
// it for metadata-less magnets.
type Torrent struct {
	Name     string       `json:"name"`
	Hash     string       `json:"hash"`
	State    TorrentState `json:"state"`
	Progress *float64     `json:"progress"`
	DlSpeed  int64        `json:"dlspeed"`
	UpSpeed  int64        `json:"upspeed"`
}

type TorrentState string

const (
	// Some error occurred, applies to paused torrents
	TorrentStateError TorrentState = "error"

	// Torrent data files is missing
	TorrentStateMissingFiles TorrentState = "missingFiles"

	// Torrent is being seeded and data is being transferred
	TorrentStateUploading TorrentState = "uploading"

	// Torrent is being seeded, but no connection were made
	TorrentStateStalledUp TorrentState = "stalledUP"

	// Torrent is being downloaded and data is being transferred
	TorrentStateDownloading TorrentState = "downloading"

	// Torrent has just started downloading and is fetching metadata
	TorrentStateMetaDl TorrentState = "metaDL"

	// Torrent is being downloaded, but no connection were made
	TorrentStateStalledDl TorrentState = "stalledDL"

	// Unknown status
	TorrentStateUnknown TorrentState = "unknown"
)
