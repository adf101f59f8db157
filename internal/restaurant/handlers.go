package restaurant

import (
	"net/http"
	"strconv"

	"github.com/michaeliryami/Refill/internal/places"

	"github.com/gin-gonic/gin"
)

const defaultRadiusMeters = 1500

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// GET /restaurants/nearby?lat&lng[&radius]
// --------------------------------------------------
func (h *Handler) Nearby(c *gin.Context) {
	lat, errLat := strconv.ParseFloat(c.Query("lat"), 64)
	lng, errLng := strconv.ParseFloat(c.Query("lng"), 64)
	if errLat != nil || errLng != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "lat and lng are required"})
		return
	}

	radius := defaultRadiusMeters
	if raw := c.Query("radius"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid radius"})
			return
		}
		radius = parsed
	}

	restaurants, err := h.service.Nearby(c.Request.Context(), lat, lng, radius)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "places lookup failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"restaurants": restaurants})
}

// --------------------------------------------------
// GET /restaurants/search?q[&lat&lng]
// --------------------------------------------------
func (h *Handler) Search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "q is required"})
		return
	}

	var bias *places.LatLng
	if c.Query("lat") != "" || c.Query("lng") != "" {
		lat, errLat := strconv.ParseFloat(c.Query("lat"), 64)
		lng, errLng := strconv.ParseFloat(c.Query("lng"), 64)
		if errLat != nil || errLng != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "lat and lng must both be valid numbers"})
			return
		}
		bias = &places.LatLng{Lat: lat, Lng: lng}
	}

	restaurants, err := h.service.Search(c.Request.Context(), query, bias)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "places lookup failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"restaurants": restaurants})
}
