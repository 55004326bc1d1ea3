package domain

// Flow is a standard automation rule.
type Flow struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Enabled bool   `json:"enabled"`
	Folder  string `json:"folder,omitempty"`
}

// AdvancedFlow is a canvas-style automation rule. It lives in its own
// collection and is triggered through a separate entry point.
type AdvancedFlow struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Enabled bool   `json:"enabled"`
	Folder  string `json:"folder,omitempty"`
}

// LogEntry describes one insights log. Values are not included.
type LogEntry struct {
	ID        string `json:"id"`
	URI       string `json:"uri,omitempty"`
	OwnerName string `json:"ownerName,omitempty"`
	Title     string `json:"title,omitempty"`
	Type      string `json:"type,omitempty"`
	Units     string `json:"units,omitempty"`
}
