package views

import (
	"context"
	"sort"
	"sync"
	"time"
)

type viewEvent struct {
	dishID   string
	viewedAt time.Time
}

type InMemoryRepository struct {
	mu     sync.Mutex
	events []viewEvent
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{}
}

func (r *InMemoryRepository) Record(ctx context.Context, dishID, userID string, viewedAt time.Time) error {
	r.mu.Lock()
	r.events = append(r.events, viewEvent{dishID: dishID, viewedAt: viewedAt})
	r.mu.Unlock()
	return nil
}

func (r *InMemoryRepository) MostViewed(ctx context.Context, limit int, window time.Duration) ([]PopularDish, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cutoff := time.Now().UTC().Add(-window)
	counts := make(map[string]int)
	for _, ev := range r.events {
		if ev.viewedAt.After(cutoff) {
			counts[ev.dishID]++
		}
	}

	out := make([]PopularDish, 0, len(counts))
	for id, n := range counts {
		out = append(out, PopularDish{DishID: id, Views: n})
	}
	sort.Slice(out, func(a, b int) bool {
		if out[a].Views != out[b].Views {
			return out[a].Views > out[b].Views
		}
		return out[a].DishID < out[b].DishID
	})

	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
