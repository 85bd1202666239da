package core

import (
	"errors"
	"strings"
	"time"
)

const (
	Debit  Type = "debit"
	Credit Type = "credit"
)

type (
	// Type is the direction of a transaction: debit (outflow) or credit (inflow).
	Type string

	Date struct {
		time.Time
	}

	Money struct {
		Cents int64
	}

	// Transaction is a single ledger record. The ID is assigned by the
	// store at creation and never changes afterwards.
	Transaction struct {
		ID          string
		Date        Date
		Category    string
		Type        Type
		Amount      Money
		Description string
	}
)

var (
	ErrInvalidDate     = errors.New("invalid date")
	ErrInvalidType     = errors.New("invalid transaction type")
	ErrInvalidAmount   = errors.New("invalid amount")
	ErrLongDescription = errors.New("description too long (max 200 characters)")
)

// validationErrs lists every error Transaction.Validate can return.
var validationErrs = []error{ErrInvalidDate, ErrInvalidType, ErrInvalidAmount, ErrLongDescription}

// IsValidation reports whether err is one of the domain validation errors.
func IsValidation(err error) bool {
	for _, v := range validationErrs {
		if errors.Is(err, v) {
			return true
		}
	}
	return false
}

// ParseType normalizes a user-supplied type label.
func ParseType(s string) (Type, error) {
	t := Type(strings.ToLower(strings.TrimSpace(s)))
	if err := t.Validate(); err != nil {
		return "", err
	}
	return t, nil
}

func (t Type) Validate() error {
	switch t {
	case Debit, Credit:
		return nil
	default:
		return ErrInvalidType
	}
}

func (d Date) Validate() error {
	if d.IsZero() {
		return ErrInvalidDate
	}
	return nil
}

// NewDate creates a new Date from year, month, day (UTC, day precision).
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a date in YYYY-MM-DD format.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", strings.TrimSpace(s))
	if err != nil {
		return Date{}, ErrInvalidDate
	}
	return Date{Time: t}, nil
}

func (d Date) String() string {
	return d.Format("2006-01-02")
}

// Year returns the year.
func (d Date) Year() int {
	return d.Time.Year()
}

// Month returns the month as 1-12.
func (d Date) Month() int {
	return int(d.Time.Month())
}

func (m Money) Validate() error {
	if m.Cents < 0 {
		return ErrInvalidAmount
	}
	return nil
}

func (t Transaction) Validate() error {
	if err := t.Date.Validate(); err != nil {
		return err
	}
	if err := t.Type.Validate(); err != nil {
		return err
	}
	if err := t.Amount.Validate(); err != nil {
		return err
	}
	if len(t.Description) > 200 {
		return ErrLongDescription
	}
	return nil
}

// SignedCents returns the amount in cents with the sign implied by the
// type: positive for credits, negative for debits.
func (t Transaction) SignedCents() int64 {
	if t.Type == Debit {
		return -t.Amount.Cents
	}
	return t.Amount.Cents
}
