package views

import (
	"context"
	"time"
)

// PopularDish is one row of the most-viewed ranking.
type PopularDish struct {
	DishID   string `json:"dish_id"`
	DishName string `json:"dish_name,omitempty"`
	Views    int    `json:"views"`
}

// Repository defines all database operations for dish view tracking
type Repository interface {
	// Record stores one view event. userID may be empty for anonymous
	// views.
	Record(ctx context.Context, dishID, userID string, viewedAt time.Time) error

	// MostViewed returns up to limit dishes ranked by view count over
	// the trailing window.
	MostViewed(ctx context.Context, limit int, window time.Duration) ([]PopularDish, error)
}
