package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/simaogato/sweep-backend/internal/domain"
)

// recurringExpenseRepository implements domain.RecurringExpenseRepository
type recurringExpenseRepository struct {
	db *DB
}

// NewRecurringExpenseRepository creates a new recurring expense repository
func NewRecurringExpenseRepository(db *DB) domain.RecurringExpenseRepository {
	return &recurringExpenseRepository{db: db}
}

// List retrieves all recurring expenses in insertion order
func (r *recurringExpenseRepository) List(ctx context.Context) ([]*domain.RecurringExpense, error) {
	query := `
		SELECT id, name, amount, due_day, payment_account_id
		FROM recurring_expenses
		ORDER BY position ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query recurring expenses: %w", err)
	}
	defer rows.Close()

	expenses := make([]*domain.RecurringExpense, 0)
	for rows.Next() {
		expense, err := scanRecurringExpense(rows)
		if err != nil {
			return nil, err
		}
		expenses = append(expenses, expense)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating recurring expenses: %w", err)
	}

	return expenses, nil
}

// GetByID retrieves a recurring expense by its ID
func (r *recurringExpenseRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.RecurringExpense, error) {
	query := `
		SELECT id, name, amount, due_day, payment_account_id
		FROM recurring_expenses
		WHERE id = $1
	`

	expense, err := scanRecurringExpense(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("recurring expense %s %w", id, domain.ErrNotFound)
		}
		return nil, err
	}

	return expense, nil
}

// Save inserts the recurring expense or updates it in place
func (r *recurringExpenseRepository) Save(ctx context.Context, expense *domain.RecurringExpense) error {
	query := `
		INSERT INTO recurring_expenses (id, name, amount, due_day, payment_account_id)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			amount = EXCLUDED.amount,
			due_day = EXCLUDED.due_day,
			payment_account_id = EXCLUDED.payment_account_id
	`

	_, err := r.db.ExecContext(ctx, query,
		expense.ID,
		expense.Name,
		expense.Amount.String(),
		expense.DueDay,
		nullableUUID(expense.PaymentAccountID),
	)
	if err != nil {
		return fmt.Errorf("failed to save recurring expense: %w", err)
	}

	return nil
}

// Delete removes a recurring expense
func (r *recurringExpenseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM recurring_expenses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete recurring expense: %w", err)
	}

	return expectOneRow(result, "recurring expense", id)
}

func scanRecurringExpense(row rowScanner) (*domain.RecurringExpense, error) {
	var expense domain.RecurringExpense
	var amountStr string
	var paymentAccountID sql.NullString

	err := row.Scan(
		&expense.ID,
		&expense.Name,
		&amountStr,
		&expense.DueDay,
		&paymentAccountID,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan recurring expense: %w", err)
	}

	expense.Amount, err = decimal.NewFromString(amountStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse amount: %w", err)
	}

	expense.PaymentAccountID, err = parseNullableUUID(paymentAccountID)
	if err != nil {
		return nil, fmt.Errorf("failed to parse payment_account_id: %w", err)
	}

	return &expense, nil
}
