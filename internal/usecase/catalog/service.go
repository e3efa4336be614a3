package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/simaogato/sweep-backend/internal/domain"
)

// CatalogService manages the accounts, credit cards and recurring expenses
// the planner works from
type CatalogService struct {
	AccountRepo domain.AccountRepository
	CardRepo    domain.CreditCardRepository
	ExpenseRepo domain.RecurringExpenseRepository
}

// NewCatalogService creates a new CatalogService instance
func NewCatalogService(
	accountRepo domain.AccountRepository,
	cardRepo domain.CreditCardRepository,
	expenseRepo domain.RecurringExpenseRepository,
) *CatalogService {
	return &CatalogService{
		AccountRepo: accountRepo,
		CardRepo:    cardRepo,
		ExpenseRepo: expenseRepo,
	}
}

// ListAccounts returns every account in insertion order
func (s *CatalogService) ListAccounts(ctx context.Context) ([]*domain.Account, error) {
	accounts, err := s.AccountRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return accounts, nil
}

// SaveAccount validates and stores the account, assigning an ID when it has none.
// Only one account may be primary: saving a primary account demotes the others.
func (s *CatalogService) SaveAccount(ctx context.Context, account *domain.Account) (*domain.Account, error) {
	if account == nil {
		return nil, fmt.Errorf("%w: account is required", domain.ErrValidation)
	}
	if err := account.Validate(); err != nil {
		return nil, invalid(err)
	}
	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}

	if err := s.AccountRepo.Save(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to save account: %w", err)
	}

	// Other primaries are demoted only after the new one is stored
	if account.IsMain {
		existing, err := s.AccountRepo.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list accounts: %w", err)
		}
		for _, other := range existing {
			if other.ID == account.ID || !other.IsMain {
				continue
			}
			other.IsMain = false
			if err := s.AccountRepo.Save(ctx, other); err != nil {
				return nil, fmt.Errorf("failed to demote primary account %s: %w", other.ID, err)
			}
		}
	}

	return account, nil
}

// DeleteAccount removes an account
func (s *CatalogService) DeleteAccount(ctx context.Context, id uuid.UUID) error {
	return s.AccountRepo.Delete(ctx, id)
}

// ListCreditCards returns every credit card in insertion order
func (s *CatalogService) ListCreditCards(ctx context.Context) ([]*domain.CreditCard, error) {
	cards, err := s.CardRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list credit cards: %w", err)
	}
	return cards, nil
}

// SaveCreditCard validates and stores the card
func (s *CatalogService) SaveCreditCard(ctx context.Context, card *domain.CreditCard) (*domain.CreditCard, error) {
	if card == nil {
		return nil, fmt.Errorf("%w: credit card is required", domain.ErrValidation)
	}
	if err := card.Validate(); err != nil {
		return nil, invalid(err)
	}
	if err := s.checkPaymentAccount(ctx, card.PaymentAccountID); err != nil {
		return nil, err
	}
	if card.ID == uuid.Nil {
		card.ID = uuid.New()
	}

	if err := s.CardRepo.Save(ctx, card); err != nil {
		return nil, fmt.Errorf("failed to save credit card: %w", err)
	}
	return card, nil
}

// DeleteCreditCard removes a credit card
func (s *CatalogService) DeleteCreditCard(ctx context.Context, id uuid.UUID) error {
	return s.CardRepo.Delete(ctx, id)
}

// ListRecurringExpenses returns every recurring expense in insertion order
func (s *CatalogService) ListRecurringExpenses(ctx context.Context) ([]*domain.RecurringExpense, error) {
	expenses, err := s.ExpenseRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list recurring expenses: %w", err)
	}
	return expenses, nil
}

// SaveRecurringExpense validates and stores the expense
func (s *CatalogService) SaveRecurringExpense(ctx context.Context, expense *domain.RecurringExpense) (*domain.RecurringExpense, error) {
	if expense == nil {
		return nil, fmt.Errorf("%w: recurring expense is required", domain.ErrValidation)
	}
	if err := expense.Validate(); err != nil {
		return nil, invalid(err)
	}
	if err := s.checkPaymentAccount(ctx, expense.PaymentAccountID); err != nil {
		return nil, err
	}
	if expense.ID == uuid.Nil {
		expense.ID = uuid.New()
	}

	if err := s.ExpenseRepo.Save(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to save recurring expense: %w", err)
	}
	return expense, nil
}

// DeleteRecurringExpense removes a recurring expense
func (s *CatalogService) DeleteRecurringExpense(ctx context.Context, id uuid.UUID) error {
	return s.ExpenseRepo.Delete(ctx, id)
}

// checkPaymentAccount rejects references to accounts that do not exist
func (s *CatalogService) checkPaymentAccount(ctx context.Context, id *uuid.UUID) error {
	if id == nil {
		return nil
	}
	if _, err := s.AccountRepo.GetByID(ctx, *id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("%w: payment account %s does not exist", domain.ErrValidation, id)
		}
		return fmt.Errorf("failed to look up payment account: %w", err)
	}
	return nil
}

func invalid(err error) error {
	return fmt.Errorf("%w: %v", domain.ErrValidation, err)
}
