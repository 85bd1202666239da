package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"fintrack/internal/core"
	"fintrack/internal/ledger"
)

// EventPublisher announces stored transactions to interested consumers.
type EventPublisher interface {
	PublishTransactionRecorded(ctx context.Context, t core.Transaction) error
}

// TransactionService records transactions: it appends to the store and then
// publishes an event. Publishing is best-effort; the record is already
// durable in the session store and a failed publish never fails the request.
type TransactionService struct {
	store     ledger.TransactionWriter
	publisher EventPublisher
}

func NewTransactionService(store ledger.TransactionWriter, publisher EventPublisher) *TransactionService {
	return &TransactionService{
		store:     store,
		publisher: publisher,
	}
}

// Record appends the draft to the store and publishes the created record.
func (s *TransactionService) Record(ctx context.Context, draft core.Transaction) (core.Transaction, error) {
	created, err := s.store.Append(ctx, draft)
	if err != nil {
		return core.Transaction{}, fmt.Errorf("append transaction: %w", err)
	}

	if s.publisher == nil {
		return created, nil
	}
	if err := s.publisher.PublishTransactionRecorded(ctx, created); err != nil {
		slog.ErrorContext(ctx, "Failed to publish transaction event",
			"id", created.ID, "error", err)
	}

	return created, nil
}

// Close releases the store and publisher if they hold resources.
func (s *TransactionService) Close() error {
	var errs []error

	if c, ok := s.store.(io.Closer); ok {
		if err := c.Close(); err != nil {
			errs = append(errs, fmt.Errorf("store: %w", err))
		}
	}
	if c, ok := s.publisher.(io.Closer); ok {
		if err := c.Close(); err != nil {
			errs = append(errs, fmt.Errorf("publisher: %w", err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("close transaction service: %v", errs)
	}
	return nil
}
