package ledger

import (
	"testing"

	"fintrack/internal/core"
)

func sample() []core.Transaction {
	return []core.Transaction{
		{ID: "1", Date: core.NewDate(2024, 1, 5), Category: "Salary", Type: core.Credit, Amount: core.Money{Cents: 200000}},
		{ID: "2", Date: core.NewDate(2024, 1, 10), Category: "Groceries", Type: core.Debit, Amount: core.Money{Cents: 15000}},
		{ID: "3", Date: core.NewDate(2024, 2, 2), Category: "Groceries", Type: core.Debit, Amount: core.Money{Cents: 7000}},
	}
}

func TestFilterByCategory(t *testing.T) {
	got := Filter(sample(), ByCategory("Groceries"))
	if len(got) != 2 || got[0].ID != "2" || got[1].ID != "3" {
		t.Fatalf("unexpected result: %v", got)
	}
}

func TestFilterByTypeAndMonth(t *testing.T) {
	got := Filter(sample(), All(ByType(core.Debit), InMonth(2024, 1)))
	if len(got) != 1 || got[0].ID != "2" {
		t.Fatalf("unexpected result: %v", got)
	}
}

func TestFilterNoMatchesAndNoMutation(t *testing.T) {
	in := sample()
	got := Filter(in, ByCategory("missing"))
	if len(got) != 0 {
		t.Fatalf("expected empty result, got %v", got)
	}
	if len(in) != 3 {
		t.Fatalf("input mutated: %v", in)
	}
}
