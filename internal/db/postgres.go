package db

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

func ConnectPostgres() *pgxpool.Pool {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}

	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		log.Fatal(err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	db, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		log.Fatal(err)
	}

	if err := db.Ping(context.Background()); err != nil {
		log.Fatal("Postgres connection failed:", err)
	}

	log.Println("✅ Connected to PostgreSQL")

	// Initialize schema
	if err := initSchema(db); err != nil {
		log.Fatal("Failed to initialize schema:", err)
	}

	return db
}

// initSchema creates or updates the database schema
func initSchema(db *pgxpool.Pool) error {
	ctx := context.Background()

	// -------------------------------
	// RESTAURANTS (one row per place, amenity tallies + running score)
	// -------------------------------
	restaurantsSQL := `
		CREATE TABLE IF NOT EXISTS restaurants (
			place_id TEXT PRIMARY KEY,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			refill_yes INT NOT NULL DEFAULT 0,
			refill_no INT NOT NULL DEFAULT 0,
			refill_idk INT NOT NULL DEFAULT 0,
			bread_yes INT NOT NULL DEFAULT 0,
			bread_no INT NOT NULL DEFAULT 0,
			bread_idk INT NOT NULL DEFAULT 0,
			pay_yes INT NOT NULL DEFAULT 0,
			pay_no INT NOT NULL DEFAULT 0,
			pay_idk INT NOT NULL DEFAULT 0,
			attendant_yes INT NOT NULL DEFAULT 0,
			attendant_no INT NOT NULL DEFAULT 0,
			attendant_idk INT NOT NULL DEFAULT 0,
			score DOUBLE PRECISION NOT NULL DEFAULT 0
		)
	`
	if _, err := db.Exec(ctx, restaurantsSQL); err != nil {
		return err
	}

	log.Println("✅ Schema initialized successfully")
	return nil
}
