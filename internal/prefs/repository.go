package prefs

import "context"

// Repository defines all database operations for user preferences
type Repository interface {
	// Get returns nil (not an error) when the user has no snapshot yet.
	Get(ctx context.Context, userID string) (*Preferences, error)

	// Upsert replaces the user's snapshot.
	Upsert(ctx context.Context, p *Preferences) error

	// AppendOrderHistory adds a dish name to the user's history.
	// Idempotent: appending an existing name is a no-op.
	AppendOrderHistory(ctx context.Context, userID, dishName string) error
}
