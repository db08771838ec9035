package menu

import (
	"context"

	"github.com/JonathanSerafinCM/OCR/internal/llm"
)

// Repository defines all database operations for menu items
type Repository interface {
	// CreateMenuItem persists one structured dish, assigning its
	// identifier and timestamp.
	CreateMenuItem(ctx context.Context, dish llm.Dish) (*Item, error)

	// QueryMenuItems returns items matching the filter, in insertion order.
	QueryMenuItems(ctx context.Context, f Filter) ([]Item, error)

	// GetMenuItem returns nil when the id is unknown.
	GetMenuItem(ctx context.Context, id string) (*Item, error)
}
