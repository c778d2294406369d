package entity

import "time"

// Snapshot is one stored copy of the editable catalog state. Document holds
// the serialized SnapshotDocument; list endpoints return only the metadata.
type Snapshot struct {
	ID        string    `json:"id"`
	Label     string    `json:"label"`
	Document  string    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

// SnapshotDocument is what gets serialized into a snapshot and written back
// on restore.
type SnapshotDocument struct {
	MenuItems     []MenuItem     `json:"menu_items"`
	Ingredients   []Ingredient   `json:"ingredients"`
	ContentBlocks []ContentBlock `json:"content_blocks"`
}
