// Package memory provides process-local repositories.
// Entities are copied on the way in and on the way out, so callers never
// share mutable state with the store.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/simaogato/sweep-backend/internal/domain"
)

// collection is an insertion-ordered set of entities keyed by ID
type collection[T any] struct {
	mu    sync.RWMutex
	kind  string
	clone func(T) T
	order []uuid.UUID
	items map[uuid.UUID]T
}

// newCollection creates an empty collection. clone deep-copies the
// pointer fields of T; nil means a plain value copy is enough.
func newCollection[T any](kind string, clone func(T) T) *collection[T] {
	if clone == nil {
		clone = func(item T) T { return item }
	}
	return &collection[T]{kind: kind, clone: clone, items: make(map[uuid.UUID]T)}
}

func (c *collection[T]) list() []*T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]*T, 0, len(c.order))
	for _, id := range c.order {
		item := c.clone(c.items[id])
		out = append(out, &item)
	}
	return out
}

func (c *collection[T]) get(id uuid.UUID) (*T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	item, ok := c.items[id]
	if !ok {
		return nil, fmt.Errorf("%s %s %w", c.kind, id, domain.ErrNotFound)
	}
	item = c.clone(item)
	return &item, nil
}

func (c *collection[T]) save(id uuid.UUID, item T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.items[id]; !exists {
		c.order = append(c.order, id)
	}
	c.items[id] = c.clone(item)
}

// reset replaces the whole collection, keeping the order of items
func (c *collection[T]) reset(ids []uuid.UUID, items []T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.order = make([]uuid.UUID, 0, len(ids))
	c.items = make(map[uuid.UUID]T, len(ids))
	for i, id := range ids {
		if _, exists := c.items[id]; !exists {
			c.order = append(c.order, id)
		}
		c.items[id] = c.clone(items[i])
	}
}

func cloneID(id *uuid.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	copied := *id
	return &copied
}

func (c *collection[T]) delete(id uuid.UUID) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.items[id]; !ok {
		return fmt.Errorf("%s %s %w", c.kind, id, domain.ErrNotFound)
	}
	delete(c.items, id)
	for i, existing := range c.order {
		if existing == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return nil
}

// AccountRepository implements domain.AccountRepository
type AccountRepository struct {
	accounts *collection[domain.Account]
}

// NewAccountRepository creates an empty account repository
func NewAccountRepository() *AccountRepository {
	return &AccountRepository{accounts: newCollection[domain.Account]("account", nil)}
}

func (r *AccountRepository) List(_ context.Context) ([]*domain.Account, error) {
	return r.accounts.list(), nil
}

func (r *AccountRepository) GetByID(_ context.Context, id uuid.UUID) (*domain.Account, error) {
	return r.accounts.get(id)
}

func (r *AccountRepository) Save(_ context.Context, account *domain.Account) error {
	r.accounts.save(account.ID, *account)
	return nil
}

func (r *AccountRepository) Delete(_ context.Context, id uuid.UUID) error {
	return r.accounts.delete(id)
}

// Restore replaces the repository contents with accounts, in order
func (r *AccountRepository) Restore(accounts []*domain.Account) {
	ids, items := unzip(accounts, func(a *domain.Account) uuid.UUID { return a.ID })
	r.accounts.reset(ids, items)
}

// CreditCardRepository implements domain.CreditCardRepository
type CreditCardRepository struct {
	cards *collection[domain.CreditCard]
}

// NewCreditCardRepository creates an empty credit card repository
func NewCreditCardRepository() *CreditCardRepository {
	return &CreditCardRepository{cards: newCollection("credit card", func(card domain.CreditCard) domain.CreditCard {
		card.PaymentAccountID = cloneID(card.PaymentAccountID)
		return card
	})}
}

func (r *CreditCardRepository) List(_ context.Context) ([]*domain.CreditCard, error) {
	return r.cards.list(), nil
}

func (r *CreditCardRepository) GetByID(_ context.Context, id uuid.UUID) (*domain.CreditCard, error) {
	return r.cards.get(id)
}

func (r *CreditCardRepository) Save(_ context.Context, card *domain.CreditCard) error {
	r.cards.save(card.ID, *card)
	return nil
}

func (r *CreditCardRepository) Delete(_ context.Context, id uuid.UUID) error {
	return r.cards.delete(id)
}

// Restore replaces the repository contents with cards, in order
func (r *CreditCardRepository) Restore(cards []*domain.CreditCard) {
	ids, items := unzip(cards, func(c *domain.CreditCard) uuid.UUID { return c.ID })
	r.cards.reset(ids, items)
}

// RecurringExpenseRepository implements domain.RecurringExpenseRepository
type RecurringExpenseRepository struct {
	expenses *collection[domain.RecurringExpense]
}

// NewRecurringExpenseRepository creates an empty recurring expense repository
func NewRecurringExpenseRepository() *RecurringExpenseRepository {
	return &RecurringExpenseRepository{expenses: newCollection("recurring expense", func(expense domain.RecurringExpense) domain.RecurringExpense {
		expense.PaymentAccountID = cloneID(expense.PaymentAccountID)
		return expense
	})}
}

func (r *RecurringExpenseRepository) List(_ context.Context) ([]*domain.RecurringExpense, error) {
	return r.expenses.list(), nil
}

func (r *RecurringExpenseRepository) GetByID(_ context.Context, id uuid.UUID) (*domain.RecurringExpense, error) {
	return r.expenses.get(id)
}

func (r *RecurringExpenseRepository) Save(_ context.Context, expense *domain.RecurringExpense) error {
	r.expenses.save(expense.ID, *expense)
	return nil
}

func (r *RecurringExpenseRepository) Delete(_ context.Context, id uuid.UUID) error {
	return r.expenses.delete(id)
}

// Restore replaces the repository contents with expenses, in order
func (r *RecurringExpenseRepository) Restore(expenses []*domain.RecurringExpense) {
	ids, items := unzip(expenses, func(e *domain.RecurringExpense) uuid.UUID { return e.ID })
	r.expenses.reset(ids, items)
}

func unzip[T any](entities []*T, id func(*T) uuid.UUID) ([]uuid.UUID, []T) {
	ids := make([]uuid.UUID, 0, len(entities))
	items := make([]T, 0, len(entities))
	for _, entity := range entities {
		ids = append(ids, id(entity))
		items = append(items, *entity)
	}
	return ids, items
}
