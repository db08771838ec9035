package menu

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/JonathanSerafinCM/OCR/internal/llm"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) CreateMenuItem(ctx context.Context, dish llm.Dish) (*Item, error) {
	low, high, err := PriceBounds(dish.Price)
	if err != nil {
		return nil, err
	}

	item := &Item{
		ID:           uuid.New().String(),
		DishName:     dish.Name,
		Price:        dish.Price,
		Description:  dish.Description,
		Category:     dish.Category,
		Subcategory:  dish.Subcategory,
		Allergens:    dish.Allergens,
		SpecialNotes: dish.SpecialNotes,
		Discount:     dish.Discount,
		CreatedAt:    time.Now().UTC(),
	}
	if item.Allergens == nil {
		item.Allergens = []string{}
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO menus (
			id, dish_name, price, price_low, price_high,
			description, category, subcategory, allergens,
			special_notes, discount, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`,
		item.ID, item.DishName, item.Price, low, high,
		item.Description, item.Category, item.Subcategory, item.Allergens,
		item.SpecialNotes, item.Discount, item.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return item, nil
}

func (r *PostgresRepository) QueryMenuItems(ctx context.Context, f Filter) ([]Item, error) {
	query := strings.Builder{}
	query.WriteString(`
		SELECT id, dish_name, price, description, category, subcategory,
		       allergens, special_notes, discount, created_at
		FROM menus
		WHERE 1=1
	`)

	args := []any{}
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if f.Category != "" {
		query.WriteString(" AND category = " + arg(f.Category))
	}
	if f.MinPrice != nil {
		query.WriteString(" AND price_high >= " + arg(*f.MinPrice))
	}
	if f.MaxPrice != nil {
		query.WriteString(" AND price_low <= " + arg(*f.MaxPrice))
	}
	if len(f.ExcludeAllergens) > 0 {
		query.WriteString(" AND NOT (allergens && " + arg(f.ExcludeAllergens) + ")")
	}

	query.WriteString(" ORDER BY created_at, id")

	rows, err := r.db.Query(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Item
	for rows.Next() {
		var it Item
		if err := rows.Scan(
			&it.ID, &it.DishName, &it.Price, &it.Description, &it.Category,
			&it.Subcategory, &it.Allergens, &it.SpecialNotes, &it.Discount,
			&it.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r *PostgresRepository) GetMenuItem(ctx context.Context, id string) (*Item, error) {
	var it Item
	err := r.db.QueryRow(ctx, `
		SELECT id, dish_name, price, description, category, subcategory,
		       allergens, special_notes, discount, created_at
		FROM menus
		WHERE id = $1
	`, id).Scan(
		&it.ID, &it.DishName, &it.Price, &it.Description, &it.Category,
		&it.Subcategory, &it.Allergens, &it.SpecialNotes, &it.Discount,
		&it.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &it, nil
}
