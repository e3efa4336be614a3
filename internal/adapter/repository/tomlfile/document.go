package tomlfile

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/simaogato/sweep-backend/internal/domain"
)

// document is the on-disk layout of a snapshot file
type document struct {
	Accounts          []accountRecord `toml:"accounts"`
	CreditCards       []cardRecord    `toml:"credit_cards"`
	RecurringExpenses []expenseRecord `toml:"recurring_expenses"`
}

type accountRecord struct {
	ID           string `toml:"id"`
	Name         string `toml:"name"`
	APY          string `toml:"apy"`
	TransferTime int    `toml:"transfer_time"`
	IsMain       bool   `toml:"is_main"`
	Balance      string `toml:"balance"`
}

type cardRecord struct {
	ID               string `toml:"id"`
	Name             string `toml:"name"`
	DueDay           int    `toml:"due_day"`
	StatementDay     int    `toml:"statement_day,omitempty"`
	Balance          string `toml:"balance"`
	PaymentAccountID string `toml:"payment_account_id,omitempty"`
}

type expenseRecord struct {
	ID               string `toml:"id"`
	Name             string `toml:"name"`
	Amount           string `toml:"amount"`
	DueDay           int    `toml:"due_day"`
	PaymentAccountID string `toml:"payment_account_id,omitempty"`
}

func accountToRecord(a *domain.Account) accountRecord {
	return accountRecord{
		ID:           a.ID.String(),
		Name:         a.Name,
		APY:          a.APY.String(),
		TransferTime: a.TransferTime,
		IsMain:       a.IsMain,
		Balance:      a.Balance.String(),
	}
}

func (r accountRecord) toDomain() (*domain.Account, error) {
	id, err := uuid.Parse(r.ID)
	if err != nil {
		return nil, fmt.Errorf("account %q: invalid id: %w", r.Name, err)
	}
	apy, err := parseAmount(r.APY)
	if err != nil {
		return nil, fmt.Errorf("account %q: invalid apy: %w", r.Name, err)
	}
	balance, err := parseAmount(r.Balance)
	if err != nil {
		return nil, fmt.Errorf("account %q: invalid balance: %w", r.Name, err)
	}
	return &domain.Account{
		ID:           id,
		Name:         r.Name,
		APY:          apy,
		TransferTime: r.TransferTime,
		IsMain:       r.IsMain,
		Balance:      balance,
	}, nil
}

func cardToRecord(c *domain.CreditCard) cardRecord {
	return cardRecord{
		ID:               c.ID.String(),
		Name:             c.Name,
		DueDay:           c.DueDay,
		StatementDay:     c.StatementDay,
		Balance:          c.Balance.String(),
		PaymentAccountID: formatOptionalID(c.PaymentAccountID),
	}
}

func (r cardRecord) toDomain() (*domain.CreditCard, error) {
	id, err := uuid.Parse(r.ID)
	if err != nil {
		return nil, fmt.Errorf("credit card %q: invalid id: %w", r.Name, err)
	}
	balance, err := parseAmount(r.Balance)
	if err != nil {
		return nil, fmt.Errorf("credit card %q: invalid balance: %w", r.Name, err)
	}
	paymentAccountID, err := parseOptionalID(r.PaymentAccountID)
	if err != nil {
		return nil, fmt.Errorf("credit card %q: invalid payment_account_id: %w", r.Name, err)
	}
	return &domain.CreditCard{
		ID:               id,
		Name:             r.Name,
		DueDay:           r.DueDay,
		StatementDay:     r.StatementDay,
		Balance:          balance,
		PaymentAccountID: paymentAccountID,
	}, nil
}

func expenseToRecord(e *domain.RecurringExpense) expenseRecord {
	return expenseRecord{
		ID:               e.ID.String(),
		Name:             e.Name,
		Amount:           e.Amount.String(),
		DueDay:           e.DueDay,
		PaymentAccountID: formatOptionalID(e.PaymentAccountID),
	}
}

func (r expenseRecord) toDomain() (*domain.RecurringExpense, error) {
	id, err := uuid.Parse(r.ID)
	if err != nil {
		return nil, fmt.Errorf("recurring expense %q: invalid id: %w", r.Name, err)
	}
	amount, err := parseAmount(r.Amount)
	if err != nil {
		return nil, fmt.Errorf("recurring expense %q: invalid amount: %w", r.Name, err)
	}
	paymentAccountID, err := parseOptionalID(r.PaymentAccountID)
	if err != nil {
		return nil, fmt.Errorf("recurring expense %q: invalid payment_account_id: %w", r.Name, err)
	}
	return &domain.RecurringExpense{
		ID:               id,
		Name:             r.Name,
		Amount:           amount,
		DueDay:           r.DueDay,
		PaymentAccountID: paymentAccountID,
	}, nil
}

// parseAmount treats a missing value as zero
func parseAmount(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(s)
}

func formatOptionalID(id *uuid.UUID) string {
	if id == nil {
		return ""
	}
	return id.String()
}

func parseOptionalID(s string) (*uuid.UUID, error) {
	if s == "" {
		return nil, nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
