package packets

// VersionsResponse lists the known schedule versions, newest first.
type VersionsResponse struct {
	Status   string   `json:"status"`
	Versions []string `json:"versions"`
	Message  string   `json:"message,omitempty"`
}

// DefaultResourceResponse seeds the source dialog with the first extant
// recording from the host library.
type DefaultResourceResponse struct {
	Artist   string `json:"artist"`
	Album    string `json:"album"`
	Track    string `json:"track"`
	Encoding string `json:"encoding"`
}

// ArchiveEntryResponse is one archived schedule version.
type ArchiveEntryResponse struct {
	ID         int    `json:"id"`
	Version    string `json:"version"`
	ReceivedAt string `json:"received_at"`
}
