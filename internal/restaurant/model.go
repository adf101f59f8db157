package restaurant

import "github.com/michaeliryami/Refill/internal/core"

// Restaurant is the view model the app consumes: provider place metadata
// merged with the community's amenity data. Amenities and Score are null
// until somebody reports — the client must show "no data", not "all unknown".
type Restaurant struct {
	PlaceID    string           `json:"place_id"`
	Name       string           `json:"name"`
	Address    string           `json:"address"`
	Cuisine    string           `json:"cuisine"`
	Lat        float64          `json:"lat"`
	Lng        float64          `json:"lng"`
	Distance   *float64         `json:"distance,omitempty"`
	Rating     float64          `json:"rating"`
	PriceLevel int              `json:"price_level"`
	OpenNow    *bool            `json:"open_now"`
	PhotoURL   string           `json:"photo_url,omitempty"`
	Amenities  *core.AmenitySet `json:"amenities"`
	Score      *float64         `json:"score"`
	ScoreColor string           `json:"score_color,omitempty"`
	ScoreLabel string           `json:"score_label,omitempty"`
}
