package domain

import (
	"context"

	"github.com/google/uuid"
)

// AccountRepository defines the interface for account persistence operations
type AccountRepository interface {
	// List retrieves all accounts in insertion order
	// Order matters: the planner breaks APY ties by position
	List(ctx context.Context) ([]*Account, error)

	// GetByID retrieves an account by its ID
	// Returns an error wrapping ErrNotFound if it does not exist
	GetByID(ctx context.Context, id uuid.UUID) (*Account, error)

	// Save creates the account or replaces an existing one with the same ID
	// An existing account keeps its position
	Save(ctx context.Context, account *Account) error

	// Delete removes an account
	// Returns an error wrapping ErrNotFound if it does not exist
	Delete(ctx context.Context, id uuid.UUID) error
}

// CreditCardRepository defines the interface for credit card persistence operations
type CreditCardRepository interface {
	// List retrieves all credit cards in insertion order
	List(ctx context.Context) ([]*CreditCard, error)

	// GetByID retrieves a credit card by its ID
	GetByID(ctx context.Context, id uuid.UUID) (*CreditCard, error)

	// Save creates or replaces a credit card
	Save(ctx context.Context, card *CreditCard) error

	// Delete removes a credit card
	Delete(ctx context.Context, id uuid.UUID) error
}

// RecurringExpenseRepository defines the interface for recurring expense persistence operations
type RecurringExpenseRepository interface {
	// List retrieves all recurring expenses in insertion order
	List(ctx context.Context) ([]*RecurringExpense, error)

	// GetByID retrieves a recurring expense by its ID
	GetByID(ctx context.Context, id uuid.UUID) (*RecurringExpense, error)

	// Save creates or replaces a recurring expense
	Save(ctx context.Context, expense *RecurringExpense) error

	// Delete removes a recurring expense
	Delete(ctx context.Context, id uuid.UUID) error
}
