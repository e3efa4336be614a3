package domain

import (
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Account represents a cash-holding account (checking, savings, money market)
type Account struct {
	ID           uuid.UUID
	Name         string
	APY          decimal.Decimal // Annual percentage yield as a fraction (0.036 = 3.6%)
	TransferTime int             // Whole days for money to land in the primary account
	IsMain       bool            // Primary/spending account bills are paid from
	Balance      decimal.Decimal // Signed; may carry fractional cents
}

// Validate ensures the account adheres to domain rules
func (a *Account) Validate() error {
	if a.Name == "" {
		return errors.New("account name cannot be empty")
	}

	if a.APY.LessThan(decimal.Zero) {
		return errors.New("account APY must be non-negative")
	}

	if a.TransferTime < 0 {
		return errors.New("account transfer time must be non-negative")
	}

	return nil
}

// DaysPerYear is the simple-interest day count convention
var DaysPerYear = decimal.NewFromInt(365)
