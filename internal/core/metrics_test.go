package core

import "testing"

func tx(date Date, category string, kind Type, cents int64) Transaction {
	return Transaction{Date: date, Category: category, Type: kind, Amount: Money{Cents: cents}}
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	if s.Balance.Cents != 0 || s.Debits.Cents != 0 || s.Credits.Cents != 0 || s.Count != 0 {
		t.Fatalf("expected all-zero summary, got %+v", s)
	}
	if len(NetByCategory(nil)) != 0 {
		t.Fatalf("expected empty category mapping")
	}
	if len(MonthlySeries(nil, Debit)) != 0 {
		t.Fatalf("expected empty monthly series")
	}
	if len(BalanceSeries(nil)) != 0 {
		t.Fatalf("expected empty balance series")
	}
}

func TestSummarizeExampleScenario(t *testing.T) {
	txns := []Transaction{
		tx(NewDate(2024, 1, 5), "Salary", Credit, 200000),
		tx(NewDate(2024, 1, 10), "Groceries", Debit, 15000),
	}

	s := Summarize(txns)
	if s.Balance.Cents != 185000 {
		t.Fatalf("balance expected 185000, got %d", s.Balance.Cents)
	}
	if s.Debits.Cents != 15000 {
		t.Fatalf("debits expected 15000, got %d", s.Debits.Cents)
	}
	if s.Credits.Cents != 200000 {
		t.Fatalf("credits expected 200000, got %d", s.Credits.Cents)
	}

	net := NetByCategory(txns)
	if net["Salary"].Cents != 200000 || net["Groceries"].Cents != -15000 {
		t.Fatalf("unexpected net by category: %v", net)
	}

	exp := DebitsByCategory(txns)
	if len(exp) != 1 || exp["Groceries"].Cents != 15000 {
		t.Fatalf("unexpected debits by category: %v", exp)
	}
}

func TestTotalsIdentities(t *testing.T) {
	sets := [][]Transaction{
		nil,
		{tx(NewDate(2024, 3, 1), "A", Debit, 100)},
		{
			tx(NewDate(2024, 1, 1), "A", Credit, 5000),
			tx(NewDate(2024, 2, 1), "B", Debit, 1200),
			tx(NewDate(2024, 2, 3), "B", Debit, 800),
			tx(NewDate(2024, 3, 1), "", Credit, 0),
		},
	}
	for i, txns := range sets {
		balance := TotalBalance(txns).Cents
		debits := TotalDebits(txns).Cents
		credits := TotalCredits(txns).Cents
		if balance != credits-debits {
			t.Fatalf("set %d: balance %d != credits %d - debits %d", i, balance, credits, debits)
		}
		var sum int64
		for _, x := range txns {
			sum += x.Amount.Cents
		}
		if debits+credits != sum {
			t.Fatalf("set %d: debits+credits %d != sum of amounts %d", i, debits+credits, sum)
		}
	}
}

func TestNetByCategoryUncategorized(t *testing.T) {
	txns := []Transaction{
		tx(NewDate(2024, 1, 1), "", Debit, 300),
		tx(NewDate(2024, 1, 2), "", Credit, 500),
	}
	net := NetByCategory(txns)
	if len(net) != 1 || net[Uncategorized].Cents != 200 {
		t.Fatalf("unexpected mapping: %v", net)
	}
}

func TestCategoryRowsOrdering(t *testing.T) {
	rows := CategoryRows(map[string]Money{
		"B": {Cents: 100},
		"A": {Cents: 100},
		"C": {Cents: 900},
	})
	if len(rows) != 3 || rows[0].Name != "C" || rows[1].Name != "A" || rows[2].Name != "B" {
		t.Fatalf("unexpected ordering: %v", rows)
	}
}

func TestMonthlySeriesGroupsAndSorts(t *testing.T) {
	txns := []Transaction{
		tx(NewDate(2024, 2, 20), "A", Debit, 100),
		tx(NewDate(2024, 1, 5), "A", Debit, 250),
		tx(NewDate(2024, 1, 28), "B", Debit, 750),
		tx(NewDate(2023, 12, 31), "B", Debit, 40),
		tx(NewDate(2024, 1, 15), "C", Credit, 9999), // wrong kind, excluded
	}
	series := MonthlySeries(txns, Debit)
	if len(series) != 3 {
		t.Fatalf("expected 3 months, got %d: %v", len(series), series)
	}
	if series[0].Label() != "2023-12" || series[0].Amount.Cents != 40 {
		t.Fatalf("unexpected first entry: %+v", series[0])
	}
	// Two same-month transactions collapse into one combined entry
	if series[1].Label() != "2024-01" || series[1].Amount.Cents != 1000 {
		t.Fatalf("unexpected second entry: %+v", series[1])
	}
	if series[2].Label() != "2024-02" || series[2].Amount.Cents != 100 {
		t.Fatalf("unexpected third entry: %+v", series[2])
	}
}

func TestMonthlyTrends(t *testing.T) {
	txns := []Transaction{
		tx(NewDate(2024, 1, 5), "Salary", Credit, 200000),
		tx(NewDate(2024, 1, 10), "Groceries", Debit, 15000),
		tx(NewDate(2024, 2, 1), "Rent", Debit, 90000),
	}
	trends := MonthlyTrends(txns)
	if len(trends) != 2 {
		t.Fatalf("expected 2 months, got %v", trends)
	}
	jan := trends[0]
	if jan.Label() != "2024-01" || jan.Debits.Cents != 15000 || jan.Credits.Cents != 200000 {
		t.Fatalf("unexpected january trend: %+v", jan)
	}
	feb := trends[1]
	if feb.Label() != "2024-02" || feb.Debits.Cents != 90000 || feb.Credits.Cents != 0 {
		t.Fatalf("unexpected february trend: %+v", feb)
	}
}

func TestBalanceSeriesRunningSum(t *testing.T) {
	txns := []Transaction{
		tx(NewDate(2024, 1, 10), "Groceries", Debit, 15000),
		tx(NewDate(2024, 1, 5), "Salary", Credit, 200000),
		tx(NewDate(2024, 1, 10), "Fuel", Debit, 5000),
	}
	series := BalanceSeries(txns)
	if len(series) != 3 {
		t.Fatalf("expected 3 points, got %d", len(series))
	}
	// Date-ordered, same-date points keep insertion order
	if series[0].Balance.Cents != 200000 {
		t.Fatalf("first point expected 200000, got %d", series[0].Balance.Cents)
	}
	if series[1].Balance.Cents != 185000 {
		t.Fatalf("second point expected 185000, got %d", series[1].Balance.Cents)
	}
	if series[2].Balance.Cents != 180000 {
		t.Fatalf("third point expected 180000, got %d", series[2].Balance.Cents)
	}
}
