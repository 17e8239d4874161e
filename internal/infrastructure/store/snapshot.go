package store

import "context"

// SnapshotEntry is one persisted cart line. Display fields are denormalized
// into the snapshot for compatibility with earlier snapshot layouts;
// reconciliation trusts only ID, Quantity and AddedToCart (catalog data wins
// for the rest).
type SnapshotEntry struct {
	ProductID   string `json:"id"`
	Name        string `json:"name"`
	Price       int    `json:"price"`
	ImageURL    string `json:"image,omitempty"`
	Quantity    int    `json:"quantity"`
	AddedToCart bool   `json:"added_to_cart"`
}

// SnapshotStoreInterface holds the serialized cart-line list under a single
// key. Save overwrites the whole value; Load is read once at initialization.
type SnapshotStoreInterface interface {
	Load(ctx context.Context) ([]SnapshotEntry, error)
	Save(ctx context.Context, entries []SnapshotEntry) error
}
