package domain

// Snapshot is a full export of the taxonomy store, used by export/import.
// Collections are arrays, not maps, so the wire format is order-stable.
type Snapshot struct {
	Tags        []*Tag        `json:"tags"`
	Categories  []*Category   `json:"categories"`
	Assignments []*Assignment `json:"assignments"`
}
