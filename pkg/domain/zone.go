package domain

// Zone is a grouping of devices. Hierarchy is expressed by Parent only;
// the bridge never assembles a tree.
type Zone struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Parent *string `json:"parent"`
}
