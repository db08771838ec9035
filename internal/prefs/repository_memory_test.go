package prefs

import (
	"context"
	"testing"
)

func TestGetMissingUser(t *testing.T) {
	repo := NewInMemoryRepository()
	p, err := repo.Get(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p != nil {
		t.Fatalf("missing snapshot must be nil, got %+v", p)
	}
}

func TestUpsertThenGet(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()

	in := &Preferences{
		UserID:              "u1",
		DietaryRestrictions: []string{"seafood"},
		FavoriteTags:        []string{"desserts"},
	}
	if err := repo.Upsert(ctx, in); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	out, err := repo.Get(ctx, "u1")
	if err != nil || out == nil {
		t.Fatalf("get: %v, %v", out, err)
	}
	if len(out.DietaryRestrictions) != 1 || out.DietaryRestrictions[0] != "seafood" {
		t.Fatalf("got %+v", out)
	}
}

func TestAppendOrderHistoryIdempotent(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if err := repo.AppendOrderHistory(ctx, "u1", "Paella"); err != nil {
			t.Fatalf("append: %v", err)
		}
	}
	if err := repo.AppendOrderHistory(ctx, "u1", "Flan"); err != nil {
		t.Fatalf("append: %v", err)
	}

	p, err := repo.Get(ctx, "u1")
	if err != nil || p == nil {
		t.Fatalf("get: %v, %v", p, err)
	}
	if len(p.OrderHistory) != 2 || p.OrderHistory[0] != "Paella" || p.OrderHistory[1] != "Flan" {
		t.Fatalf("history = %v", p.OrderHistory)
	}
}
