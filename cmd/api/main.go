package main

import (
	"context"
	"log"
	"os"

	"github.com/michaeliryami/Refill/internal/amenity"
	"github.com/michaeliryami/Refill/internal/db"
	"github.com/michaeliryami/Refill/internal/photos"
	"github.com/michaeliryami/Refill/internal/places"
	"github.com/michaeliryami/Refill/internal/restaurant"
	"github.com/michaeliryami/Refill/internal/router"
	"github.com/michaeliryami/Refill/internal/storage"

	"github.com/joho/godotenv"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	required := []string{
		"DATABASE_URL",
		"GOOGLE_PLACES_API_KEY",
		"R2_ACCESS_KEY",
		"R2_SECRET_KEY",
		"R2_BUCKET_NAME",
		"R2_ENDPOINT",
		"R2_PUBLIC_BASE_URL",
	}

	for _, k := range required {
		if os.Getenv(k) == "" {
			log.Fatalf("❌ Missing env var: %s", k)
		}
	}

	// ───────────────────────── DB ─────────────────────────
	pgDB := db.ConnectPostgres()
	defer pgDB.Close()

	// ───────────────────────── STORAGE ─────────────────────────
	r2Client, err := storage.NewR2Client(context.Background())
	if err != nil {
		log.Fatal("❌ R2 init failed:", err)
	}

	// ───────────────────────── SERVICES ─────────────────────────
	placesClient := places.NewGoogleClient()

	amenityRepo := amenity.NewPostgresRepository(pgDB)
	amenityService := amenity.NewService(amenityRepo)

	restaurantService := restaurant.NewService(placesClient, amenityService)
	photoService := photos.NewService(placesClient, r2Client)

	// ───────────────────────── HANDLERS + ROUTES ─────────────────────────
	r := router.New(
		amenity.NewHandler(amenityService),
		restaurant.NewHandler(restaurantService),
		photos.NewHandler(photoService),
	)

	// ───────────────────────── START ─────────────────────────
	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	log.Println("🚀 API running at http://localhost:" + port)
	r.Run(":" + port)
}
