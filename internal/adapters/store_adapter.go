package adapters

import (
	"context"

	"fintrack/internal/core"
	"fintrack/internal/ledger"
	"fintrack/internal/services"
)

// backingStore is what a concrete store must provide for reads.
type backingStore interface {
	ledger.TransactionLister
	ledger.MonthLister
}

// StoreAdapter routes writes through the TransactionService (store + event
// publishing) while reads hit the store directly. HTTP handlers only see
// the ledger ports.
type StoreAdapter struct {
	store   backingStore
	service *services.TransactionService
}

func NewStoreAdapter(store backingStore, service *services.TransactionService) *StoreAdapter {
	return &StoreAdapter{
		store:   store,
		service: service,
	}
}

// Append implements ledger.TransactionWriter.
func (a *StoreAdapter) Append(ctx context.Context, draft core.Transaction) (core.Transaction, error) {
	return a.service.Record(ctx, draft)
}

// List implements ledger.TransactionLister.
func (a *StoreAdapter) List(ctx context.Context) ([]core.Transaction, error) {
	return a.store.List(ctx)
}

// ListMonth implements ledger.MonthLister.
func (a *StoreAdapter) ListMonth(ctx context.Context, year, month int) ([]core.Transaction, error) {
	return a.store.ListMonth(ctx, year, month)
}
