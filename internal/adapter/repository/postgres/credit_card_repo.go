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

// creditCardRepository implements domain.CreditCardRepository
type creditCardRepository struct {
	db *DB
}

// NewCreditCardRepository creates a new credit card repository
func NewCreditCardRepository(db *DB) domain.CreditCardRepository {
	return &creditCardRepository{db: db}
}

// List retrieves all credit cards in insertion order
func (r *creditCardRepository) List(ctx context.Context) ([]*domain.CreditCard, error) {
	query := `
		SELECT id, name, due_day, statement_day, balance, payment_account_id
		FROM credit_cards
		ORDER BY position ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query credit cards: %w", err)
	}
	defer rows.Close()

	cards := make([]*domain.CreditCard, 0)
	for rows.Next() {
		card, err := scanCreditCard(rows)
		if err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating credit cards: %w", err)
	}

	return cards, nil
}

// GetByID retrieves a credit card by its ID
func (r *creditCardRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.CreditCard, error) {
	query := `
		SELECT id, name, due_day, statement_day, balance, payment_account_id
		FROM credit_cards
		WHERE id = $1
	`

	card, err := scanCreditCard(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("credit card %s %w", id, domain.ErrNotFound)
		}
		return nil, err
	}

	return card, nil
}

// Save inserts the credit card or updates it in place
func (r *creditCardRepository) Save(ctx context.Context, card *domain.CreditCard) error {
	query := `
		INSERT INTO credit_cards (id, name, due_day, statement_day, balance, payment_account_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			due_day = EXCLUDED.due_day,
			statement_day = EXCLUDED.statement_day,
			balance = EXCLUDED.balance,
			payment_account_id = EXCLUDED.payment_account_id
	`

	_, err := r.db.ExecContext(ctx, query,
		card.ID,
		card.Name,
		card.DueDay,
		card.StatementDay,
		card.Balance.String(),
		nullableUUID(card.PaymentAccountID),
	)
	if err != nil {
		return fmt.Errorf("failed to save credit card: %w", err)
	}

	return nil
}

// Delete removes a credit card
func (r *creditCardRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM credit_cards WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete credit card: %w", err)
	}

	return expectOneRow(result, "credit card", id)
}

func scanCreditCard(row rowScanner) (*domain.CreditCard, error) {
	var card domain.CreditCard
	var balanceStr string
	var paymentAccountID sql.NullString

	err := row.Scan(
		&card.ID,
		&card.Name,
		&card.DueDay,
		&card.StatementDay,
		&balanceStr,
		&paymentAccountID,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan credit card: %w", err)
	}

	card.Balance, err = decimal.NewFromString(balanceStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse balance: %w", err)
	}

	card.PaymentAccountID, err = parseNullableUUID(paymentAccountID)
	if err != nil {
		return nil, fmt.Errorf("failed to parse payment_account_id: %w", err)
	}

	return &card, nil
}
