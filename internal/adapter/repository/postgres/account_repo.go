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

// accountRepository implements domain.AccountRepository
type accountRepository struct {
	db *DB
}

// NewAccountRepository creates a new account repository
func NewAccountRepository(db *DB) domain.AccountRepository {
	return &accountRepository{db: db}
}

// List retrieves all accounts in insertion order
func (r *accountRepository) List(ctx context.Context) ([]*domain.Account, error) {
	query := `
		SELECT id, name, apy, transfer_time, is_main, balance
		FROM accounts
		ORDER BY position ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", err)
	}
	defer rows.Close()

	accounts := make([]*domain.Account, 0)
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, account)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating accounts: %w", err)
	}

	return accounts, nil
}

// GetByID retrieves an account by its ID
func (r *accountRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	query := `
		SELECT id, name, apy, transfer_time, is_main, balance
		FROM accounts
		WHERE id = $1
	`

	account, err := scanAccount(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("account %s %w", id, domain.ErrNotFound)
		}
		return nil, err
	}

	return account, nil
}

// Save inserts the account or updates it in place
func (r *accountRepository) Save(ctx context.Context, account *domain.Account) error {
	query := `
		INSERT INTO accounts (id, name, apy, transfer_time, is_main, balance)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			apy = EXCLUDED.apy,
			transfer_time = EXCLUDED.transfer_time,
			is_main = EXCLUDED.is_main,
			balance = EXCLUDED.balance
	`

	_, err := r.db.ExecContext(ctx, query,
		account.ID,
		account.Name,
		account.APY.String(),
		account.TransferTime,
		account.IsMain,
		account.Balance.String(),
	)
	if err != nil {
		return fmt.Errorf("failed to save account: %w", err)
	}

	return nil
}

// Delete removes an account
func (r *accountRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM accounts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}

	return expectOneRow(result, "account", id)
}

func scanAccount(row rowScanner) (*domain.Account, error) {
	var account domain.Account
	var apyStr, balanceStr string

	err := row.Scan(
		&account.ID,
		&account.Name,
		&apyStr,
		&account.TransferTime,
		&account.IsMain,
		&balanceStr,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan account: %w", err)
	}

	// Parse apy (NUMERIC)
	account.APY, err = decimal.NewFromString(apyStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse apy: %w", err)
	}

	// Parse balance (NUMERIC)
	account.Balance, err = decimal.NewFromString(balanceStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse balance: %w", err)
	}

	return &account, nil
}
