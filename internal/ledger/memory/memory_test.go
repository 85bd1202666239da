package memory

import (
	"context"
	"testing"

	"fintrack/internal/core"
)

func TestAppendAssignsIDAndPreservesOrder(t *testing.T) {
	s := New()
	ctx := context.Background()

	first, err := s.Append(ctx, core.Transaction{
		Date: core.NewDate(2024, 1, 5), Category: "Salary", Type: core.Credit, Amount: core.Money{Cents: 200000},
	})
	if err != nil {
		t.Fatalf("append failed: %v", err)
	}
	if first.ID == "" {
		t.Fatalf("expected assigned ID")
	}

	second, err := s.Append(ctx, core.Transaction{
		Date: core.NewDate(2024, 1, 10), Category: "Groceries", Type: core.Debit, Amount: core.Money{Cents: 15000},
	})
	if err != nil {
		t.Fatalf("append failed: %v", err)
	}
	if second.ID == first.ID {
		t.Fatalf("IDs must be unique, both %q", first.ID)
	}

	all, err := s.List(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 transactions, got %d", len(all))
	}
	if all[len(all)-1].ID != second.ID {
		t.Fatalf("last element should be the most recent append")
	}
}

func TestAppendRejectsInvalidAndLeavesStoreUntouched(t *testing.T) {
	s := New()
	ctx := context.Background()

	cases := []core.Transaction{
		{Date: core.NewDate(2024, 1, 1), Type: "invalid", Amount: core.Money{Cents: 100}},
		{Date: core.NewDate(2024, 1, 1), Type: core.Debit, Amount: core.Money{Cents: -5}},
		{Type: core.Debit, Amount: core.Money{Cents: 100}}, // zero date
	}
	for i, draft := range cases {
		if _, err := s.Append(ctx, draft); err == nil {
			t.Fatalf("case %d expected validation error", i)
		} else if !core.IsValidation(err) {
			t.Fatalf("case %d: %v not a validation error", i, err)
		}
	}
	if s.Len() != 0 {
		t.Fatalf("failed appends must not alter the store, len=%d", s.Len())
	}
}

func TestListReturnsCopy(t *testing.T) {
	s := New()
	ctx := context.Background()
	if _, err := s.Append(ctx, core.Transaction{
		Date: core.NewDate(2024, 1, 1), Category: "A", Type: core.Debit, Amount: core.Money{Cents: 100},
	}); err != nil {
		t.Fatalf("append failed: %v", err)
	}

	got, _ := s.List(ctx)
	got[0].Category = "mutated"

	again, _ := s.List(ctx)
	if again[0].Category != "A" {
		t.Fatalf("caller mutation leaked into the store")
	}
}

func TestListMonth(t *testing.T) {
	s := New()
	ctx := context.Background()
	dates := []core.Date{
		core.NewDate(2024, 1, 5),
		core.NewDate(2024, 2, 1),
		core.NewDate(2024, 1, 28),
	}
	for _, d := range dates {
		if _, err := s.Append(ctx, core.Transaction{Date: d, Type: core.Debit, Amount: core.Money{Cents: 100}}); err != nil {
			t.Fatalf("append failed: %v", err)
		}
	}
	jan, err := s.ListMonth(ctx, 2024, 1)
	if err != nil {
		t.Fatalf("list month failed: %v", err)
	}
	if len(jan) != 2 {
		t.Fatalf("expected 2 january transactions, got %d", len(jan))
	}
	empty, _ := s.ListMonth(ctx, 2025, 1)
	if len(empty) != 0 {
		t.Fatalf("expected no transactions for 2025-01")
	}
}
