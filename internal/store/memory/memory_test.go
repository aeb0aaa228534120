package memory

import (
	"context"
	"errors"
	"testing"

	"pennywise/internal/core"
	"pennywise/internal/store"
)

func TestEmptyStoreIsNoData(t *testing.T) {
	_, err := New().Load(context.Background())
	if !errors.Is(err, store.ErrNoData) {
		t.Fatalf("expected ErrNoData, got %v", err)
	}
}

func TestAppendAndLoad(t *testing.T) {
	s := New()
	ctx := context.Background()

	records := []core.Record{
		{Date: "2025-01-01", Amount: "1.00", Category: "Food"},
		{Date: "2025-01-02", Amount: "2.00", Category: "Rent"},
	}
	for _, r := range records {
		if err := s.Append(ctx, r); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	got, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != 2 || got[0] != records[0] || got[1] != records[1] {
		t.Fatalf("unexpected records: %+v", got)
	}

	// Mutating the returned slice must not affect the store
	got[0].Category = "mutated"
	again, _ := s.Load(ctx)
	if again[0].Category != "Food" {
		t.Fatalf("Load returned shared backing slice")
	}
}

func TestSeed(t *testing.T) {
	s := Seed(core.Record{Date: "2025-01-01", Amount: "1", Category: "Food"})
	got, err := s.Load(context.Background())
	if err != nil || len(got) != 1 {
		t.Fatalf("expected 1 seeded record, got %d (err=%v)", len(got), err)
	}
}
