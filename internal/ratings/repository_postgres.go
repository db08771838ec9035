package ratings

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Rate(ctx context.Context, userID, dishID string, rating int) error {
	if rating < 1 || rating > 5 {
		return ErrInvalidRating
	}

	_, err := r.db.Exec(ctx, `
		INSERT INTO ratings (user_id, dish_id, rating, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (user_id, dish_id) DO UPDATE
		SET rating = EXCLUDED.rating,
		    updated_at = now()
	`, userID, dishID, rating)

	return err
}

func (r *PostgresRepository) GetSummary(ctx context.Context, dishID string) (*Summary, error) {
	s := &Summary{DishID: dishID}

	err := r.db.QueryRow(ctx, `
		SELECT COALESCE(AVG(rating), 0), COUNT(*)
		FROM ratings
		WHERE dish_id = $1
	`, dishID).Scan(&s.Average, &s.Count)
	if err != nil {
		return nil, err
	}
	return s, nil
}
