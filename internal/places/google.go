package places

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"time"
)

const defaultBaseURL = "https://maps.googleapis.com/maps/api/place"

// GoogleClient implements Client against the Google Places web service.
type GoogleClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewGoogleClient() *GoogleClient {
	return &GoogleClient{
		apiKey:     os.Getenv("GOOGLE_PLACES_API_KEY"),
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// searchResponse is the provider's wire shape for both nearby and text search.
type searchResponse struct {
	Results []struct {
		PlaceID          string `json:"place_id"`
		Name             string `json:"name"`
		Vicinity         string `json:"vicinity"`
		FormattedAddress string `json:"formatted_address"`
		Geometry         struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
		Rating       float64 `json:"rating"`
		PriceLevel   int     `json:"price_level"`
		OpeningHours *struct {
			OpenNow bool `json:"open_now"`
		} `json:"opening_hours"`
		Types  []string `json:"types"`
		Photos []struct {
			PhotoReference string `json:"photo_reference"`
		} `json:"photos"`
	} `json:"results"`
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
}

// --------------------------------------------------
// Nearby search (point + radius)
// --------------------------------------------------
func (g *GoogleClient) Nearby(ctx context.Context, lat, lng float64, radiusMeters int) ([]Place, error) {
	params := url.Values{}
	params.Set("location", fmt.Sprintf("%f,%f", lat, lng))
	params.Set("radius", strconv.Itoa(radiusMeters))
	params.Set("type", "restaurant")
	params.Set("key", g.apiKey)

	return g.search(ctx, g.baseURL+"/nearbysearch/json?"+params.Encode())
}

// --------------------------------------------------
// Text search (query + optional location bias)
// --------------------------------------------------
func (g *GoogleClient) Search(ctx context.Context, query string, bias *LatLng) ([]Place, error) {
	params := url.Values{}
	params.Set("query", query)
	if bias != nil {
		params.Set("location", fmt.Sprintf("%f,%f", bias.Lat, bias.Lng))
		params.Set("radius", "50000")
	}
	params.Set("key", g.apiKey)

	return g.search(ctx, g.baseURL+"/textsearch/json?"+params.Encode())
}

func (g *GoogleClient) search(ctx context.Context, requestURL string) ([]Place, error) {
	if g.apiKey == "" {
		return nil, errors.New("missing GOOGLE_PLACES_API_KEY")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("places api error: %s", string(raw))
	}

	var result searchResponse
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, err
	}

	if result.Status != "OK" && result.Status != "ZERO_RESULTS" {
		return nil, fmt.Errorf("places api status %s: %s", result.Status, result.ErrorMessage)
	}

	places := make([]Place, 0, len(result.Results))
	for _, r := range result.Results {
		p := Place{
			ID:         r.PlaceID,
			Name:       r.Name,
			Address:    r.Vicinity,
			Lat:        r.Geometry.Location.Lat,
			Lng:        r.Geometry.Location.Lng,
			Rating:     r.Rating,
			PriceLevel: r.PriceLevel,
			Types:      r.Types,
		}
		// Nearby results carry vicinity, text search carries the full
		// formatted address.
		if p.Address == "" {
			p.Address = r.FormattedAddress
		}
		if r.OpeningHours != nil {
			open := r.OpeningHours.OpenNow
			p.OpenNow = &open
		}
		if len(r.Photos) > 0 {
			p.PhotoRef = r.Photos[0].PhotoReference
		}
		places = append(places, p)
	}

	return places, nil
}

// --------------------------------------------------
// Photo fetch (keeps the API key server-side)
// --------------------------------------------------
func (g *GoogleClient) Photo(ctx context.Context, ref string, maxWidth int) ([]byte, string, error) {
	if g.apiKey == "" {
		return nil, "", errors.New("missing GOOGLE_PLACES_API_KEY")
	}
	if ref == "" {
		return nil, "", errors.New("empty photo reference")
	}

	params := url.Values{}
	params.Set("photoreference", ref)
	params.Set("maxwidth", strconv.Itoa(maxWidth))
	params.Set("key", g.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"/photo?"+params.Encode(), nil)
	if err != nil {
		return nil, "", err
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("places photo error: status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", err
	}

	return data, resp.Header.Get("Content-Type"), nil
}
