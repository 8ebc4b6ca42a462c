package core

import (
	"errors"
	"strings"
)

const (
	DirectionIncome  Direction = "income"
	DirectionExpense Direction = "expense"
)

const (
	SectionDashboard Section = "Dashboard"
	SectionIncome    Section = "Income"
	SectionExpenses  Section = "Expenses"
)

type (
	// Direction is the side of the ledger a transaction belongs to.
	// The sign of the amount is the canonical encoding; Direction names
	// the form that produced the record and the default display glyph.
	Direction string

	// Section is the view selector of the tracker UI.
	Section string

	// Transaction is the sole domain entity: one income or expense record.
	Transaction struct {
		ID       string  `json:"id"`
		Source   string  `json:"source"`
		Amount   float64 `json:"amount"` // signed: positive income, negative expense
		Date     string  `json:"date"`   // ISO 8601 YYYY-MM-DD
		Icon     string  `json:"icon"`
		Category string  `json:"category"` // informational tag ("income"/"expense"); not cross-checked against the sign
	}

	// Profile is the session-scoped user identity. Read-only from the core's
	// perspective; it is supplied by the auth collaborator.
	Profile struct {
		Email  string `json:"email"`
		Name   string `json:"name"`
		Avatar string `json:"avatar"`
	}
)

var (
	ErrEmptySource   = errors.New("empty source")
	ErrInvalidAmount = errors.New("invalid amount")
	ErrEmptyDate     = errors.New("empty date")
)

// DefaultIcon returns the direction-specific placeholder glyph.
func (d Direction) DefaultIcon() string {
	if d == DirectionExpense {
		return "💸"
	}
	return "💰"
}

// Matches reports whether a signed amount belongs to this direction.
func (d Direction) Matches(amount float64) bool {
	if d == DirectionExpense {
		return amount < 0
	}
	return amount > 0
}

// Normalize forces the sign of amount to this direction.
func (d Direction) Normalize(amount float64) float64 {
	abs := amount
	if abs < 0 {
		abs = -abs
	}
	if d == DirectionExpense {
		return -abs
	}
	return abs
}

func (s Section) IsValid() bool {
	switch s {
	case SectionDashboard, SectionIncome, SectionExpenses:
		return true
	default:
		return false
	}
}

// Validate checks the persistence invariants: non-empty source, non-empty
// date and a non-zero amount. The category tag and the sign are allowed to
// disagree; no cross-check happens here.
func (t Transaction) Validate() error {
	if strings.TrimSpace(t.Source) == "" {
		return ErrEmptySource
	}
	if t.Amount == 0 {
		return ErrInvalidAmount
	}
	if strings.TrimSpace(t.Date) == "" {
		return ErrEmptyDate
	}
	return nil
}

// Label returns the display name of a transaction, falling back to the
// category tag when the source is empty.
func (t Transaction) Label() string {
	if strings.TrimSpace(t.Source) != "" {
		return t.Source
	}
	return t.Category
}
