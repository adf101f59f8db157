package photos

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// GET /photos/:ref
// --------------------------------------------------
func (h *Handler) Get(c *gin.Context) {
	publicURL, err := h.service.Resolve(c.Request.Context(), c.Param("ref"))
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "photo unavailable"})
		return
	}

	c.Redirect(http.StatusFound, publicURL)
}
