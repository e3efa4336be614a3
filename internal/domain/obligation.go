package domain

import (
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	MinDueDay = 1
	MaxDueDay = 31
)

// Obligation is the shape the planner schedules against: something named
// that must be paid in full on a given day of every month.
type Obligation struct {
	Name   string
	DueDay int
	Amount decimal.Decimal
}

// CreditCard represents a credit card whose full balance is paid on its due day
type CreditCard struct {
	ID               uuid.UUID
	Name             string
	DueDay           int // Day of month (1-31)
	StatementDay     int // Optional statement closing day (0 = unknown)
	Balance          decimal.Decimal
	PaymentAccountID *uuid.UUID // Account the card is paid from, informational only
}

// Validate ensures the credit card adheres to domain rules
func (c *CreditCard) Validate() error {
	if c.Name == "" {
		return errors.New("credit card name cannot be empty")
	}

	if err := validateDueDay(c.DueDay); err != nil {
		return err
	}

	if c.StatementDay < 0 || c.StatementDay > MaxDueDay {
		return errors.New("credit card statement day must be between 0 and 31")
	}

	if c.Balance.LessThan(decimal.Zero) {
		return errors.New("credit card balance must be non-negative")
	}

	return nil
}

// Obligation converts the card into a schedulable obligation.
// The whole current balance is assumed to be paid.
func (c *CreditCard) Obligation() Obligation {
	return Obligation{Name: c.Name, DueDay: c.DueDay, Amount: c.Balance}
}

// RecurringExpense represents a fixed monthly bill (rent, subscriptions)
type RecurringExpense struct {
	ID               uuid.UUID
	Name             string
	Amount           decimal.Decimal
	DueDay           int // Day of month (1-31)
	PaymentAccountID *uuid.UUID
}

// Validate ensures the recurring expense adheres to domain rules
func (e *RecurringExpense) Validate() error {
	if e.Name == "" {
		return errors.New("recurring expense name cannot be empty")
	}

	if err := validateDueDay(e.DueDay); err != nil {
		return err
	}

	if e.Amount.LessThan(decimal.Zero) {
		return errors.New("recurring expense amount must be non-negative")
	}

	return nil
}

// Obligation converts the expense into a schedulable obligation
func (e *RecurringExpense) Obligation() Obligation {
	return Obligation{Name: e.Name, DueDay: e.DueDay, Amount: e.Amount}
}

func validateDueDay(day int) error {
	if day < MinDueDay || day > MaxDueDay {
		return errors.New("due day must be between 1 and 31")
	}
	return nil
}
