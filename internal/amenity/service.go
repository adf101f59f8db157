package amenity

import (
	"context"
	"log"

	"github.com/michaeliryami/Refill/internal/core"
	"github.com/michaeliryami/Refill/internal/score"
)

// Service is the aggregation boundary the app talks to. Lookup and
// persistence failures are absorbed here and logged; callers only ever see
// safe defaults (nil, empty map, false) and never an error value.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// --------------------------------------------------
// Read one restaurant's amenity data
// --------------------------------------------------
func (s *Service) GetAmenities(ctx context.Context, placeID string) *core.AmenitySet {
	rec, err := s.repo.Get(ctx, placeID)
	if err != nil {
		log.Printf("[AMENITY] get failed place=%s: %v", placeID, err)
		return nil
	}
	if rec == nil {
		// No reports yet — the caller must show "no data", not "all unknown".
		return nil
	}

	set := rec.AmenitySet()
	return &set
}

// --------------------------------------------------
// Batch read for search results
// --------------------------------------------------
func (s *Service) GetMultipleAmenities(ctx context.Context, placeIDs []string) map[string]core.CommunityData {
	result := make(map[string]core.CommunityData)
	if len(placeIDs) == 0 {
		return result
	}

	records, err := s.repo.GetMany(ctx, placeIDs)
	if err != nil {
		log.Printf("[AMENITY] batch get failed (%d ids): %v", len(placeIDs), err)
		return result
	}

	// Keyed by place id, so duplicate input ids cannot double-count.
	for _, rec := range records {
		result[rec.PlaceID] = core.CommunityData{
			Amenities: rec.AmenitySet(),
			Score:     rec.Score,
		}
	}

	return result
}

// --------------------------------------------------
// Submit one report (read-modify-write)
// --------------------------------------------------

// SubmitReport folds one user's report into the restaurant's stored record
// and reports success as a boolean. At most one attempt; on failure nothing
// is retried and no partial state is surfaced.
//
// The read and the write are two independent round trips with no concurrency
// token: two simultaneous submissions for the same place can both read the
// same prior record, and the second write wins. The shared row is
// best-effort, not linearizable.
func (s *Service) SubmitReport(ctx context.Context, placeID string, rep score.Report) bool {
	rec, err := s.repo.Get(ctx, placeID)
	if err != nil {
		log.Printf("[AMENITY] submit lookup failed place=%s: %v", placeID, err)
		return false
	}

	if rec == nil {
		rec = &Record{PlaceID: placeID}
	}
	rec.Apply(rep)

	if err := s.repo.Upsert(ctx, rec); err != nil {
		log.Printf("[AMENITY] submit persist failed place=%s: %v", placeID, err)
		return false
	}

	return true
}
