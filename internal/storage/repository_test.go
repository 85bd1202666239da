package storage

import (
	"context"
	"path/filepath"
	"testing"

	"fintrack/internal/core"
)

func newTestRepo(t *testing.T) *SQLiteRepository {
	t.Helper()
	repo, err := NewSQLiteRepository(filepath.Join(t.TempDir(), "ledger.db"))
	if err != nil {
		t.Fatalf("open repository: %v", err)
	}
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func TestAppendAndList(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	created, err := repo.Append(ctx, core.Transaction{
		Date:        core.NewDate(2024, 1, 5),
		Category:    "Salary",
		Type:        core.Credit,
		Amount:      core.Money{Cents: 200000},
		Description: "january pay",
	})
	if err != nil {
		t.Fatalf("append failed: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("expected assigned ID")
	}

	all, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected 1 transaction, got %d", len(all))
	}
	got := all[0]
	if got.ID != created.ID || got.Category != "Salary" || got.Type != core.Credit ||
		got.Amount.Cents != 200000 || got.Description != "january pay" ||
		got.Date.String() != "2024-01-05" {
		t.Fatalf("round trip mismatch: %+v", got)
	}
}

func TestAppendRejectsInvalid(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	_, err := repo.Append(ctx, core.Transaction{
		Date: core.NewDate(2024, 1, 5), Type: "invalid", Amount: core.Money{Cents: 100},
	})
	if err == nil || !core.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}

	all, _ := repo.List(ctx)
	if len(all) != 0 {
		t.Fatalf("failed append must not alter the store")
	}
}

func TestListPreservesInsertionOrder(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	// Deliberately out of date order
	dates := []core.Date{
		core.NewDate(2024, 3, 1),
		core.NewDate(2024, 1, 1),
		core.NewDate(2024, 2, 1),
	}
	var ids []string
	for _, d := range dates {
		tx, err := repo.Append(ctx, core.Transaction{Date: d, Type: core.Debit, Amount: core.Money{Cents: 100}})
		if err != nil {
			t.Fatalf("append failed: %v", err)
		}
		ids = append(ids, tx.ID)
	}

	all, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 transactions, got %d", len(all))
	}
	for i := range ids {
		if all[i].ID != ids[i] {
			t.Fatalf("insertion order not preserved at %d: %+v", i, all)
		}
	}
}

func TestListMonth(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	for _, d := range []core.Date{
		core.NewDate(2024, 1, 5),
		core.NewDate(2024, 2, 1),
		core.NewDate(2024, 1, 28),
	} {
		if _, err := repo.Append(ctx, core.Transaction{Date: d, Type: core.Debit, Amount: core.Money{Cents: 100}}); err != nil {
			t.Fatalf("append failed: %v", err)
		}
	}

	jan, err := repo.ListMonth(ctx, 2024, 1)
	if err != nil {
		t.Fatalf("list month failed: %v", err)
	}
	if len(jan) != 2 {
		t.Fatalf("expected 2 january transactions, got %d", len(jan))
	}
	empty, err := repo.ListMonth(ctx, 2025, 6)
	if err != nil {
		t.Fatalf("list month failed: %v", err)
	}
	if len(empty) != 0 {
		t.Fatalf("expected empty month")
	}
}
