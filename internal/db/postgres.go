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

	log.Println("Connected to PostgreSQL")

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
	// MENUS
	// -------------------------------
	menusSQL := `
		CREATE TABLE IF NOT EXISTS menus (
			id UUID PRIMARY KEY,
			dish_name VARCHAR(255) NOT NULL,
			price VARCHAR(50) NOT NULL,
			price_low NUMERIC(8,2) NOT NULL,
			price_high NUMERIC(8,2) NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			category VARCHAR(255) NOT NULL DEFAULT '',
			subcategory VARCHAR(255) NOT NULL DEFAULT '',
			allergens TEXT[] NOT NULL DEFAULT '{}',
			special_notes TEXT NOT NULL DEFAULT '',
			discount VARCHAR(255) NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`
	if _, err := db.Exec(ctx, menusSQL); err != nil {
		return err
	}

	// -------------------------------
	// USER PREFERENCES
	// -------------------------------
	prefsSQL := `
		CREATE TABLE IF NOT EXISTS user_preferences (
			user_id VARCHAR(255) PRIMARY KEY,
			dietary_restrictions TEXT[] NOT NULL DEFAULT '{}',
			favorite_tags TEXT[] NOT NULL DEFAULT '{}',
			order_history TEXT[] NOT NULL DEFAULT '{}',
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`
	if _, err := db.Exec(ctx, prefsSQL); err != nil {
		return err
	}

	// -------------------------------
	// RATINGS
	// -------------------------------
	ratingsSQL := `
		CREATE TABLE IF NOT EXISTS ratings (
			user_id VARCHAR(255) NOT NULL,
			dish_id UUID NOT NULL REFERENCES menus(id) ON DELETE CASCADE,
			rating INT NOT NULL CHECK (rating BETWEEN 1 AND 5),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			PRIMARY KEY (user_id, dish_id)
		)
	`
	if _, err := db.Exec(ctx, ratingsSQL); err != nil {
		return err
	}

	// -------------------------------
	// DISH VIEWS
	// -------------------------------
	viewsSQL := `
		CREATE TABLE IF NOT EXISTS dish_views (
			id BIGSERIAL PRIMARY KEY,
			dish_id UUID NOT NULL REFERENCES menus(id) ON DELETE CASCADE,
			user_id VARCHAR(255),
			viewed_at TIMESTAMPTZ NOT NULL
		)
	`
	if _, err := db.Exec(ctx, viewsSQL); err != nil {
		return err
	}

	viewsIndexSQL := `
		CREATE INDEX IF NOT EXISTS dish_views_viewed_at_idx
		ON dish_views (viewed_at)
	`
	if _, err := db.Exec(ctx, viewsIndexSQL); err != nil {
		return err
	}

	return nil
}
