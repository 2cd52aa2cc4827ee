package domain

// RequestIntent is the single operation selected for this invocation.
// Exactly one variant is constructed per run.
type RequestIntent interface {
	intent()
}

// AddMagnet adds a torrent from a magnet link. Dest is the raw --dest
// flag value, empty when not given.
type AddMagnet struct {
	URI  string
	Dest string
}

// AddFile adds a torrent from a local .torrent file.
type AddFile struct {
	Path string
	Dest string
}

// List fetches torrents. All includes completed idle torrents.
type List struct {
	All  bool
	JSON bool
}

func (AddMagnet) intent() {}
func (AddFile) intent()   {}
func (List) intent()      {}
