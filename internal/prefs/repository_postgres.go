package prefs

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Get(ctx context.Context, userID string) (*Preferences, error) {
	p := &Preferences{UserID: userID}

	err := r.db.QueryRow(ctx, `
		SELECT dietary_restrictions, favorite_tags, order_history
		FROM user_preferences
		WHERE user_id = $1
	`, userID).Scan(&p.DietaryRestrictions, &p.FavoriteTags, &p.OrderHistory)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *PostgresRepository) Upsert(ctx context.Context, p *Preferences) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO user_preferences (user_id, dietary_restrictions, favorite_tags, order_history, updated_at)
		VALUES ($1, $2, $3, $4, now())
		ON CONFLICT (user_id) DO UPDATE
		SET dietary_restrictions = EXCLUDED.dietary_restrictions,
		    favorite_tags = EXCLUDED.favorite_tags,
		    order_history = EXCLUDED.order_history,
		    updated_at = now()
	`, p.UserID, p.DietaryRestrictions, p.FavoriteTags, p.OrderHistory)

	return err
}

func (r *PostgresRepository) AppendOrderHistory(ctx context.Context, userID, dishName string) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO user_preferences (user_id, dietary_restrictions, favorite_tags, order_history, updated_at)
		VALUES ($1, '{}', '{}', ARRAY[$2], now())
		ON CONFLICT (user_id) DO UPDATE
		SET order_history = CASE
		        WHEN user_preferences.order_history @> ARRAY[$2]
		        THEN user_preferences.order_history
		        ELSE array_append(user_preferences.order_history, $2)
		    END,
		    updated_at = now()
	`, userID, dishName)

	return err
}
