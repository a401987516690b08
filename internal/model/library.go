package model

// Album is one album directory in the host library catalog.
type Album struct {
	Encoding  string   `json:"encoding"`
	TotalSecs string   `json:"totalsecs,omitempty"`
	Tracks    []string `json:"tracks"`
}

// Catalog is the host library document produced by the library scraper:
// recorded audio nested artist -> album, plus the playlists found under the
// player configuration directory.
type Catalog struct {
	Library   map[string]map[string]Album `json:"library"`
	Playlists map[string]any              `json:"playlists"`
}
