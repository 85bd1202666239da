package amqp

import (
	"encoding/json"
	"time"

	"fintrack/internal/core"
)

// TransactionRecordedMessage announces a newly appended ledger record.
// It carries the full record so consumers never need store access.
type TransactionRecordedMessage struct {
	ID          string    `json:"id"`
	Date        string    `json:"date"` // YYYY-MM-DD
	Category    string    `json:"category"`
	Type        string    `json:"type"`
	AmountCents int64     `json:"amount_cents"`
	Description string    `json:"description,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
}

// NewTransactionRecordedMessage builds the event for a stored transaction.
func NewTransactionRecordedMessage(t core.Transaction) *TransactionRecordedMessage {
	return &TransactionRecordedMessage{
		ID:          t.ID,
		Date:        t.Date.String(),
		Category:    t.Category,
		Type:        string(t.Type),
		AmountCents: t.Amount.Cents,
		Description: t.Description,
		Timestamp:   time.Now(),
	}
}

// SignedCents returns the amount with the sign implied by the type.
func (m *TransactionRecordedMessage) SignedCents() int64 {
	if m.Type == string(core.Debit) {
		return -m.AmountCents
	}
	return m.AmountCents
}

// ToJSON converts the message to JSON bytes.
func (m *TransactionRecordedMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// TransactionRecordedMessageFromJSON creates a message from JSON bytes.
func TransactionRecordedMessageFromJSON(data []byte) (*TransactionRecordedMessage, error) {
	var msg TransactionRecordedMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
