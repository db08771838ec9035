package ratings

import (
	"context"
	"sync"
)

type InMemoryRepository struct {
	mu     sync.Mutex
	byDish map[string]map[string]int
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{byDish: make(map[string]map[string]int)}
}

func (r *InMemoryRepository) Rate(ctx context.Context, userID, dishID string, rating int) error {
	if rating < 1 || rating > 5 {
		return ErrInvalidRating
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.byDish[dishID] == nil {
		r.byDish[dishID] = make(map[string]int)
	}
	r.byDish[dishID][userID] = rating
	return nil
}

func (r *InMemoryRepository) GetSummary(ctx context.Context, dishID string) (*Summary, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := &Summary{DishID: dishID}
	total := 0
	for _, rating := range r.byDish[dishID] {
		total += rating
		s.Count++
	}
	if s.Count > 0 {
		s.Average = float64(total) / float64(s.Count)
	}
	return s, nil
}
