package amenity

import "context"

// Repository persists restaurant amenity records keyed by place id.
type Repository interface {
	// Get returns nil with no error when no record exists for the place —
	// absence is valid data, not a failure.
	Get(ctx context.Context, placeID string) (*Record, error)

	// GetMany fetches the records that exist for the given ids; ids with
	// no record simply produce no row.
	GetMany(ctx context.Context, placeIDs []string) ([]*Record, error)

	// Upsert creates or replaces the record for its place id in a single
	// statement. created_at is assigned by the store on first insert and
	// never rewritten.
	Upsert(ctx context.Context, rec *Record) error
}
