package ratings

import (
	"context"
	"errors"
)

// ErrInvalidRating rejects ratings outside the 1..5 scale.
var ErrInvalidRating = errors.New("rating must be between 1 and 5")

// Summary aggregates all ratings for one dish.
type Summary struct {
	DishID  string  `json:"dish_id"`
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}

// Repository defines all database operations for dish ratings
type Repository interface {
	// Rate stores one user's rating for a dish, replacing any previous
	// rating by the same user.
	Rate(ctx context.Context, userID, dishID string, rating int) error

	// GetSummary returns the aggregate for a dish; zero values when it
	// has never been rated.
	GetSummary(ctx context.Context, dishID string) (*Summary, error)
}
