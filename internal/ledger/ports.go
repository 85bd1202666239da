package ledger

import (
	"context"

	"fintrack/internal/core"
)

// Ports for transaction store backends.
type (
	// TransactionWriter appends a validated transaction to the store.
	TransactionWriter interface {
		// Append validates the draft, assigns a fresh unique ID and stores
		// the record, returning it. The store is unchanged on error.
		Append(ctx context.Context, draft core.Transaction) (core.Transaction, error)
	}

	// TransactionLister returns the full ordered sequence of transactions.
	TransactionLister interface {
		// List returns all transactions in insertion order. Callers own the
		// returned slice and may not reach the store's internal state
		// through it.
		List(ctx context.Context) ([]core.Transaction, error)
	}

	// MonthLister returns the transactions of one calendar month.
	MonthLister interface {
		ListMonth(ctx context.Context, year int, month int) ([]core.Transaction, error)
	}
)
