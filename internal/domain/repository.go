package domain

import "context"

// AreaRepository is the read-only location catalog.
// Implementations must be safe for concurrent reads.
type AreaRepository interface {
	// Get returns the area with the given id, or ErrAreaNotFound
	Get(id string) (Area, error)

	// List returns areas in catalog order, filtered by a case-insensitive
	// substring match on name, localized name, region or category when
	// search is non-empty
	List(search string) []Area

	// IDs returns every area id in catalog order
	IDs() []string
}

// AreaSource loads catalog entries from an external store at startup
type AreaSource interface {
	LoadAreas(ctx context.Context) ([]Area, error)

	// Health checks store connectivity
	Health(ctx context.Context) error
}
