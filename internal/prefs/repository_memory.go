package prefs

import (
	"context"
	"sync"
)

type InMemoryRepository struct {
	mu        sync.Mutex
	snapshots map[string]*Preferences
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{snapshots: make(map[string]*Preferences)}
}

func (r *InMemoryRepository) Get(ctx context.Context, userID string) (*Preferences, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.snapshots[userID]
	if !ok {
		return nil, nil
	}
	copied := *p
	return &copied, nil
}

func (r *InMemoryRepository) Upsert(ctx context.Context, p *Preferences) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	copied := *p
	r.snapshots[p.UserID] = &copied
	return nil
}

func (r *InMemoryRepository) AppendOrderHistory(ctx context.Context, userID, dishName string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.snapshots[userID]
	if !ok {
		p = &Preferences{UserID: userID}
		r.snapshots[userID] = p
	}
	for _, name := range p.OrderHistory {
		if name == dishName {
			return nil
		}
	}
	p.OrderHistory = append(p.OrderHistory, dishName)
	return nil
}
