package amqp

import (
	"testing"

	"fintrack/internal/core"
)

func TestNewTransactionRecordedMessage(t *testing.T) {
	msg := NewTransactionRecordedMessage(core.Transaction{
		ID:       "abc",
		Date:     core.NewDate(2024, 1, 10),
		Category: "Groceries",
		Type:     core.Debit,
		Amount:   core.Money{Cents: 15000},
	})
	if msg.ID != "abc" || msg.Date != "2024-01-10" || msg.Type != "debit" || msg.AmountCents != 15000 {
		t.Fatalf("unexpected message: %+v", msg)
	}
	if msg.SignedCents() != -15000 {
		t.Fatalf("debit event expected -15000, got %d", msg.SignedCents())
	}
}

func TestTransactionRecordedMessageFromJSON(t *testing.T) {
	if _, err := TransactionRecordedMessageFromJSON([]byte(`not json`)); err == nil {
		t.Fatalf("expected error for malformed payload")
	}
	msg, err := TransactionRecordedMessageFromJSON([]byte(`{"id":"x","type":"credit","amount_cents":2000}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if msg.SignedCents() != 2000 {
		t.Fatalf("credit event expected 2000, got %d", msg.SignedCents())
	}
}
