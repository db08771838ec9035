package views

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Record(ctx context.Context, dishID, userID string, viewedAt time.Time) error {
	var user *string
	if userID != "" {
		user = &userID
	}

	_, err := r.db.Exec(ctx, `
		INSERT INTO dish_views (dish_id, user_id, viewed_at)
		VALUES ($1, $2, $3)
	`, dishID, user, viewedAt)

	return err
}

func (r *PostgresRepository) MostViewed(ctx context.Context, limit int, window time.Duration) ([]PopularDish, error) {
	rows, err := r.db.Query(ctx, `
		SELECT v.dish_id, COALESCE(m.dish_name, ''), COUNT(*) AS views
		FROM dish_views v
		LEFT JOIN menus m ON m.id = v.dish_id
		WHERE v.viewed_at >= $1
		GROUP BY v.dish_id, m.dish_name
		ORDER BY views DESC, v.dish_id
		LIMIT $2
	`, time.Now().UTC().Add(-window), limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []PopularDish
	for rows.Next() {
		var p PopularDish
		if err := rows.Scan(&p.DishID, &p.DishName, &p.Views); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
