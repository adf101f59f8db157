package restaurant

import (
	"context"
	"net/url"

	"github.com/michaeliryami/Refill/internal/core"
	"github.com/michaeliryami/Refill/internal/places"
	"github.com/michaeliryami/Refill/internal/score"
)

// Service merges provider place candidates with stored community data. The
// provider is the source of truth for place metadata; the amenity reader
// degrades to "no data" on its own, so a merge never fails because of it.
type Service struct {
	places  places.Client
	amenity core.AmenityReader
}

func NewService(placesClient places.Client, amenity core.AmenityReader) *Service {
	return &Service{
		places:  placesClient,
		amenity: amenity,
	}
}

// --------------------------------------------------
// Nearby restaurants (point + radius)
// --------------------------------------------------
func (s *Service) Nearby(ctx context.Context, lat, lng float64, radiusMeters int) ([]*Restaurant, error) {
	candidates, err := s.places.Nearby(ctx, lat, lng, radiusMeters)
	if err != nil {
		return nil, err
	}

	return s.merge(ctx, candidates, &places.LatLng{Lat: lat, Lng: lng}), nil
}

// --------------------------------------------------
// Text search (optional location bias)
// --------------------------------------------------
func (s *Service) Search(ctx context.Context, query string, bias *places.LatLng) ([]*Restaurant, error) {
	candidates, err := s.places.Search(ctx, query, bias)
	if err != nil {
		return nil, err
	}

	// Distance only makes sense when the caller told us where they are.
	return s.merge(ctx, candidates, bias), nil
}

// merge attaches community amenity data to each candidate, by place id. Ids
// with no stored record keep null amenities and score.
func (s *Service) merge(ctx context.Context, candidates []places.Place, origin *places.LatLng) []*Restaurant {
	ids := make([]string, 0, len(candidates))
	for _, p := range candidates {
		ids = append(ids, p.ID)
	}

	community := s.amenity.GetMultipleAmenities(ctx, ids)

	restaurants := make([]*Restaurant, 0, len(candidates))
	for _, p := range candidates {
		r := &Restaurant{
			PlaceID:    p.ID,
			Name:       p.Name,
			Address:    p.Address,
			Cuisine:    places.Cuisine(p.Types),
			Lat:        p.Lat,
			Lng:        p.Lng,
			Rating:     p.Rating,
			PriceLevel: p.PriceLevel,
			OpenNow:    p.OpenNow,
		}

		if origin != nil {
			d := distanceMiles(origin.Lat, origin.Lng, p.Lat, p.Lng)
			r.Distance = &d
		}

		// Photos go through the in-app proxy so the provider key stays
		// server-side.
		if p.PhotoRef != "" {
			r.PhotoURL = "/photos/" + url.PathEscape(p.PhotoRef)
		}

		if data, ok := community[p.ID]; ok {
			amenities := data.Amenities
			communityScore := data.Score

			r.Amenities = &amenities
			r.Score = &communityScore
			r.ScoreColor = score.Color(communityScore)
			r.ScoreLabel = score.Label(communityScore)
		}

		restaurants = append(restaurants, r)
	}

	return restaurants
}
