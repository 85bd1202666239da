package core

import (
	"fmt"
	"sort"
)

// Uncategorized is the sentinel label used when a transaction carries no
// category.
const Uncategorized = "Uncategorized"

type (
	// CategoryAmount represents an amount aggregated by category name.
	CategoryAmount struct {
		Name   string
		Amount Money
	}

	// Summary holds the headline totals for a set of transactions.
	Summary struct {
		Balance Money
		Debits  Money
		Credits Money
		Count   int
	}

	// MonthAmount is an aggregate for a single calendar month.
	MonthAmount struct {
		Year   int
		Month  int // 1-12
		Amount Money
	}

	// MonthTrend pairs debit and credit totals for a single calendar month.
	MonthTrend struct {
		Year    int
		Month   int // 1-12
		Debits  Money
		Credits Money
	}

	// BalancePoint is the running balance after a transaction, in date order.
	BalancePoint struct {
		Date    Date
		Balance Money
	}
)

// Label returns the month in YYYY-MM form.
func (m MonthAmount) Label() string { return monthLabel(m.Year, m.Month) }

// Label returns the month in YYYY-MM form.
func (m MonthTrend) Label() string { return monthLabel(m.Year, m.Month) }

func monthLabel(year, month int) string {
	return fmt.Sprintf("%04d-%02d", year, month)
}

// Summarize computes the headline totals in one pass. An empty input yields
// all-zero totals.
func Summarize(txns []Transaction) Summary {
	s := Summary{Count: len(txns)}
	for _, t := range txns {
		switch t.Type {
		case Debit:
			s.Debits.Cents += t.Amount.Cents
		case Credit:
			s.Credits.Cents += t.Amount.Cents
		}
	}
	s.Balance.Cents = s.Credits.Cents - s.Debits.Cents
	return s
}

// TotalBalance returns credits minus debits over all transactions.
func TotalBalance(txns []Transaction) Money {
	return Summarize(txns).Balance
}

// TotalDebits returns the sum of debit amounts.
func TotalDebits(txns []Transaction) Money {
	return Summarize(txns).Debits
}

// TotalCredits returns the sum of credit amounts.
func TotalCredits(txns []Transaction) Money {
	return Summarize(txns).Credits
}

// NetByCategory groups signed amounts (credit positive, debit negative) by
// category. Transactions without a category fall under Uncategorized.
func NetByCategory(txns []Transaction) map[string]Money {
	out := make(map[string]Money, len(txns))
	for _, t := range txns {
		name := categoryOf(t)
		m := out[name]
		m.Cents += t.SignedCents()
		out[name] = m
	}
	return out
}

// DebitsByCategory groups unsigned debit magnitudes by category, for the
// expense-breakdown report. Credits are ignored.
func DebitsByCategory(txns []Transaction) map[string]Money {
	out := make(map[string]Money, len(txns))
	for _, t := range txns {
		if t.Type != Debit {
			continue
		}
		name := categoryOf(t)
		m := out[name]
		m.Cents += t.Amount.Cents
		out[name] = m
	}
	return out
}

// CategoryRows converts a category aggregate into rows ordered by amount,
// largest first, with names breaking ties. Maps have no stable iteration
// order, so reports go through this.
func CategoryRows(byCategory map[string]Money) []CategoryAmount {
	rows := make([]CategoryAmount, 0, len(byCategory))
	for name, amount := range byCategory {
		rows = append(rows, CategoryAmount{Name: name, Amount: amount})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Amount.Cents != rows[j].Amount.Cents {
			return rows[i].Amount.Cents > rows[j].Amount.Cents
		}
		return rows[i].Name < rows[j].Name
	})
	return rows
}

// MonthlySeries sums amounts of the given kind grouped by calendar month,
// ordered chronologically. An empty input yields an empty series.
func MonthlySeries(txns []Transaction, kind Type) []MonthAmount {
	sums := make(map[[2]int]int64)
	for _, t := range txns {
		if t.Type != kind {
			continue
		}
		key := [2]int{t.Date.Year(), t.Date.Month()}
		sums[key] += t.Amount.Cents
	}
	out := make([]MonthAmount, 0, len(sums))
	for key, cents := range sums {
		out = append(out, MonthAmount{Year: key[0], Month: key[1], Amount: Money{Cents: cents}})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Year != out[j].Year {
			return out[i].Year < out[j].Year
		}
		return out[i].Month < out[j].Month
	})
	return out
}

// MonthlyTrends sums debits and credits per calendar month, ordered
// chronologically. This feeds the monthly debit-vs-credit report.
func MonthlyTrends(txns []Transaction) []MonthTrend {
	sums := make(map[[2]int]*MonthTrend)
	for _, t := range txns {
		key := [2]int{t.Date.Year(), t.Date.Month()}
		mt, ok := sums[key]
		if !ok {
			mt = &MonthTrend{Year: key[0], Month: key[1]}
			sums[key] = mt
		}
		switch t.Type {
		case Debit:
			mt.Debits.Cents += t.Amount.Cents
		case Credit:
			mt.Credits.Cents += t.Amount.Cents
		}
	}
	out := make([]MonthTrend, 0, len(sums))
	for _, mt := range sums {
		out = append(out, *mt)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Year != out[j].Year {
			return out[i].Year < out[j].Year
		}
		return out[i].Month < out[j].Month
	})
	return out
}

// BalanceSeries returns the cumulative signed balance in date order, one
// point per transaction. Transactions on the same date keep their insertion
// order.
func BalanceSeries(txns []Transaction) []BalancePoint {
	ordered := make([]Transaction, len(txns))
	copy(ordered, txns)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Date.Before(ordered[j].Date.Time)
	})
	out := make([]BalancePoint, 0, len(ordered))
	var running int64
	for _, t := range ordered {
		running += t.SignedCents()
		out = append(out, BalancePoint{Date: t.Date, Balance: Money{Cents: running}})
	}
	return out
}

func categoryOf(t Transaction) string {
	if t.Category == "" {
		return Uncategorized
	}
	return t.Category
}
