// Package tomlfile keeps accounts, credit cards and recurring expenses in a
// single TOML snapshot file. Every mutation rewrites the whole file.
package tomlfile

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/google/uuid"
	"github.com/simaogato/sweep-backend/internal/adapter/repository/memory"
	"github.com/simaogato/sweep-backend/internal/domain"
)

// Store is a file-backed snapshot of the three collections
type Store struct {
	mu       sync.Mutex
	path     string
	accounts *memory.AccountRepository
	cards    *memory.CreditCardRepository
	expenses *memory.RecurringExpenseRepository
}

// Open loads the snapshot at path. A missing file yields an empty store;
// the file is created on the first write.
func Open(path string) (*Store, error) {
	s := &Store{
		path:     path,
		accounts: memory.NewAccountRepository(),
		cards:    memory.NewCreditCardRepository(),
		expenses: memory.NewRecurringExpenseRepository(),
	}

	var doc document
	if _, err := toml.DecodeFile(path, &doc); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s, nil
		}
		return nil, fmt.Errorf("parsing snapshot %s: %w", path, err)
	}

	ctx := context.Background()
	for _, record := range doc.Accounts {
		account, err := record.toDomain()
		if err != nil {
			return nil, err
		}
		_ = s.accounts.Save(ctx, account)
	}
	for _, record := range doc.CreditCards {
		card, err := record.toDomain()
		if err != nil {
			return nil, err
		}
		_ = s.cards.Save(ctx, card)
	}
	for _, record := range doc.RecurringExpenses {
		expense, err := record.toDomain()
		if err != nil {
			return nil, err
		}
		_ = s.expenses.Save(ctx, expense)
	}

	return s, nil
}

// Path returns the snapshot file location
func (s *Store) Path() string { return s.path }

// Accounts returns the account repository view of the store
func (s *Store) Accounts() domain.AccountRepository { return &accountRepository{store: s} }

// CreditCards returns the credit card repository view of the store
func (s *Store) CreditCards() domain.CreditCardRepository { return &creditCardRepository{store: s} }

// RecurringExpenses returns the recurring expense repository view of the store
func (s *Store) RecurringExpenses() domain.RecurringExpenseRepository {
	return &recurringExpenseRepository{store: s}
}

// Flush writes the current state to disk
func (s *Store) Flush(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.flushLocked(ctx)
}

// mutate applies fn and persists the result while holding the store lock.
// When the write fails the collections are rolled back to their prior state.
func (s *Store) mutate(ctx context.Context, fn func() error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	accounts, _ := s.accounts.List(ctx)
	cards, _ := s.cards.List(ctx)
	expenses, _ := s.expenses.List(ctx)

	if err := fn(); err != nil {
		return err
	}
	if err := s.flushLocked(ctx); err != nil {
		s.accounts.Restore(accounts)
		s.cards.Restore(cards)
		s.expenses.Restore(expenses)
		return err
	}
	return nil
}

func (s *Store) flushLocked(ctx context.Context) error {
	var doc document

	accounts, _ := s.accounts.List(ctx)
	for _, a := range accounts {
		doc.Accounts = append(doc.Accounts, accountToRecord(a))
	}
	cards, _ := s.cards.List(ctx)
	for _, c := range cards {
		doc.CreditCards = append(doc.CreditCards, cardToRecord(c))
	}
	expenses, _ := s.expenses.List(ctx)
	for _, e := range expenses {
		doc.RecurringExpenses = append(doc.RecurringExpenses, expenseToRecord(e))
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating snapshot dir: %w", err)
	}

	// Write to a sibling temp file and rename so readers never see a partial snapshot
	tmp, err := os.CreateTemp(dir, ".sweep-*.toml")
	if err != nil {
		return fmt.Errorf("creating snapshot file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := toml.NewEncoder(tmp).Encode(doc); err != nil {
		tmp.Close()
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replacing snapshot: %w", err)
	}

	return nil
}

type accountRepository struct {
	store *Store
}

func (r *accountRepository) List(ctx context.Context) ([]*domain.Account, error) {
	return r.store.accounts.List(ctx)
}

func (r *accountRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	return r.store.accounts.GetByID(ctx, id)
}

func (r *accountRepository) Save(ctx context.Context, account *domain.Account) error {
	return r.store.mutate(ctx, func() error { return r.store.accounts.Save(ctx, account) })
}

func (r *accountRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.store.mutate(ctx, func() error { return r.store.accounts.Delete(ctx, id) })
}

type creditCardRepository struct {
	store *Store
}

func (r *creditCardRepository) List(ctx context.Context) ([]*domain.CreditCard, error) {
	return r.store.cards.List(ctx)
}

func (r *creditCardRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.CreditCard, error) {
	return r.store.cards.GetByID(ctx, id)
}

func (r *creditCardRepository) Save(ctx context.Context, card *domain.CreditCard) error {
	return r.store.mutate(ctx, func() error { return r.store.cards.Save(ctx, card) })
}

func (r *creditCardRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.store.mutate(ctx, func() error { return r.store.cards.Delete(ctx, id) })
}

type recurringExpenseRepository struct {
	store *Store
}

func (r *recurringExpenseRepository) List(ctx context.Context) ([]*domain.RecurringExpense, error) {
	return r.store.expenses.List(ctx)
}

func (r *recurringExpenseRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.RecurringExpense, error) {
	return r.store.expenses.GetByID(ctx, id)
}

func (r *recurringExpenseRepository) Save(ctx context.Context, expense *domain.RecurringExpense) error {
	return r.store.mutate(ctx, func() error { return r.store.expenses.Save(ctx, expense) })
}

func (r *recurringExpenseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.store.mutate(ctx, func() error { return r.store.expenses.Delete(ctx, id) })
}
