package ledger

import "fintrack/internal/core"

// Predicate selects transactions for Filter.
type Predicate func(core.Transaction) bool

// Filter returns the subsequence of txns satisfying pred, preserving order.
// The input is never mutated.
func Filter(txns []core.Transaction, pred Predicate) []core.Transaction {
	var out []core.Transaction
	for _, t := range txns {
		if pred(t) {
			out = append(out, t)
		}
	}
	return out
}

// ByCategory matches transactions with the given category label.
func ByCategory(category string) Predicate {
	return func(t core.Transaction) bool { return t.Category == category }
}

// ByType matches transactions of the given kind.
func ByType(kind core.Type) Predicate {
	return func(t core.Transaction) bool { return t.Type == kind }
}

// InMonth matches transactions dated within the given calendar month.
func InMonth(year, month int) Predicate {
	return func(t core.Transaction) bool {
		return t.Date.Year() == year && t.Date.Month() == month
	}
}

// All combines predicates; every one must match.
func All(preds ...Predicate) Predicate {
	return func(t core.Transaction) bool {
		for _, p := range preds {
			if !p(t) {
				return false
			}
		}
		return true
	}
}
