package places

import "context"

// Client is the external places provider this app consumes. Implementations
// return provider candidates only; community amenity data is merged in by the
// restaurant layer.
type Client interface {
	// Nearby lists restaurant candidates around a point. Radius is meters.
	Nearby(ctx context.Context, lat, lng float64, radiusMeters int) ([]Place, error)

	// Search runs a free-text query, optionally biased toward a point.
	Search(ctx context.Context, query string, bias *LatLng) ([]Place, error)

	// Photo fetches one provider photo by reference, returning the image
	// bytes and their content type.
	Photo(ctx context.Context, ref string, maxWidth int) ([]byte, string, error)
}

type LatLng struct {
	Lat float64
	Lng float64
}

// Place is one provider candidate, mapped out of the provider's wire shape.
type Place struct {
	ID         string
	Name       string
	Address    string
	Lat        float64
	Lng        float64
	Rating     float64
	PriceLevel int
	OpenNow    *bool
	Types      []string
	PhotoRef   string
}
