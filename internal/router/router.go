package router

import (
	"time"

	"github.com/michaeliryami/Refill/internal/amenity"
	"github.com/michaeliryami/Refill/internal/middleware"
	"github.com/michaeliryami/Refill/internal/photos"
	"github.com/michaeliryami/Refill/internal/restaurant"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func New(
	amenityHandler *amenity.Handler,
	restaurantHandler *restaurant.Handler,
	photoHandler *photos.Handler,
) *gin.Engine {
	r := gin.Default()

	// Expo dev clients
	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{"http://localhost:8081", "http://localhost:19006"},
		AllowMethods: []string{"GET", "POST"},
		AllowHeaders: []string{"Origin", "Content-Type", "X-Request-ID"},
		MaxAge:       12 * time.Hour,
	}))
	r.Use(middleware.RequestID())

	// Health check route
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	restaurants := r.Group("/restaurants")
	{
		restaurants.GET("/nearby", restaurantHandler.Nearby)
		restaurants.GET("/search", restaurantHandler.Search)
		restaurants.GET("/:place_id/amenities", amenityHandler.GetAmenities)
		restaurants.POST("/:place_id/reports", amenityHandler.SubmitReport)
	}

	r.GET("/photos/:ref", photoHandler.Get)

	return r
}
