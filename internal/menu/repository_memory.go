package menu

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/JonathanSerafinCM/OCR/internal/llm"
)

type InMemoryRepository struct {
	mu    sync.Mutex
	items []Item
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{}
}

func (r *InMemoryRepository) CreateMenuItem(ctx context.Context, dish llm.Dish) (*Item, error) {
	if _, _, err := PriceBounds(dish.Price); err != nil {
		return nil, err
	}

	item := Item{
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

	r.mu.Lock()
	r.items = append(r.items, item)
	r.mu.Unlock()

	return &item, nil
}

func (r *InMemoryRepository) QueryMenuItems(ctx context.Context, f Filter) ([]Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []Item
	for _, it := range r.items {
		if f.Category != "" && it.Category != f.Category {
			continue
		}
		low, high, err := PriceBounds(it.Price)
		if err != nil {
			continue
		}
		if f.MinPrice != nil && high < *f.MinPrice {
			continue
		}
		if f.MaxPrice != nil && low > *f.MaxPrice {
			continue
		}
		if intersects(it.Allergens, f.ExcludeAllergens) {
			continue
		}
		out = append(out, it)
	}
	return out, nil
}

func (r *InMemoryRepository) GetMenuItem(ctx context.Context, id string) (*Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.items {
		if r.items[i].ID == id {
			it := r.items[i]
			return &it, nil
		}
	}
	return nil, nil
}

func intersects(a, b []string) bool {
	for _, x := range a {
		for _, y := range b {
			if strings.EqualFold(x, y) {
				return true
			}
		}
	}
	return false
}
