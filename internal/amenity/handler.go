package amenity

import (
	"net/http"

	"github.com/michaeliryami/Refill/internal/score"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// GET /restaurants/:place_id/amenities
// --------------------------------------------------
func (h *Handler) GetAmenities(c *gin.Context) {
	placeID := c.Param("place_id")

	amenities := h.service.GetAmenities(c.Request.Context(), placeID)

	// A nil set serializes as null: no community reports yet.
	c.JSON(http.StatusOK, gin.H{
		"place_id":  placeID,
		"amenities": amenities,
	})
}

// --------------------------------------------------
// POST /restaurants/:place_id/reports
// --------------------------------------------------
func (h *Handler) SubmitReport(c *gin.Context) {
	placeID := c.Param("place_id")

	var rep score.Report
	if err := c.ShouldBindJSON(&rep); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	ok := h.service.SubmitReport(c.Request.Context(), placeID, rep)

	c.JSON(http.StatusOK, gin.H{"success": ok})
}
