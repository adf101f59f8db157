package core

import "context"

// AmenityStat is the read-side view of one amenity: the community's majority
// verdict plus the counters behind it. Status is nil on a tie (including the
// no-opinions case); Total counts every report received, "don't know" answers
// included.
type AmenityStat struct {
	Status *bool `json:"status"`
	Yes    int   `json:"yes"`
	No     int   `json:"no"`
	Total  int   `json:"total"`
}

// AmenitySet bundles the four tracked amenities for one restaurant.
type AmenitySet struct {
	FreeRefills AmenityStat `json:"free_refills"`
	BreadBasket AmenityStat `json:"bread_basket"`
	PayAtTable  AmenityStat `json:"pay_at_table"`
	Attendant   AmenityStat `json:"attendant"`
}

// CommunityData is one restaurant's aggregated community data as consumed by
// the merge layer.
type CommunityData struct {
	Amenities AmenitySet `json:"amenities"`
	Score     float64    `json:"score"`
}

// AmenityReader is the read-only boundary to the amenity aggregation store.
// Both methods absorb their own failures: a nil set / missing key means "no
// community data", whether because nobody reported yet or because the lookup
// failed. Callers never see an error from this interface.
type AmenityReader interface {
	GetAmenities(ctx context.Context, placeID string) *AmenitySet

	// GetMultipleAmenities returns data keyed by place id; ids with no
	// stored record are simply absent. Duplicate ids never double-count.
	GetMultipleAmenities(ctx context.Context, placeIDs []string) map[string]CommunityData
}
