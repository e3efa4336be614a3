package seeder

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/simaogato/sweep-backend/internal/domain"
)

// Fixed UUIDs for the demo data set so reseeding is recognisable
var (
	DemoCheckingID    = uuid.MustParse("00000000-0000-0000-0000-000000000101")
	DemoSavingsID     = uuid.MustParse("00000000-0000-0000-0000-000000000102")
	DemoStablecoinID  = uuid.MustParse("00000000-0000-0000-0000-000000000103")
	DemoSapphireID    = uuid.MustParse("00000000-0000-0000-0000-000000000201")
	DemoAmexGoldID    = uuid.MustParse("00000000-0000-0000-0000-000000000202")
	DemoRentExpenseID = uuid.MustParse("00000000-0000-0000-0000-000000000301")
)

// DemoAccounts returns the sample accounts
func DemoAccounts() []*domain.Account {
	return []*domain.Account{
		{ID: DemoCheckingID, Name: "Chase Checking", APY: decimal.Zero, TransferTime: 0, IsMain: true, Balance: decimal.NewFromInt(2000)},
		{ID: DemoSavingsID, Name: "SoFi Savings", APY: decimal.RequireFromString("0.036"), TransferTime: 2, Balance: decimal.NewFromInt(15000)},
		{ID: DemoStablecoinID, Name: "Coinbase USDC", APY: decimal.RequireFromString("0.0385"), TransferTime: 3, Balance: decimal.NewFromInt(5000)},
	}
}

// DemoCreditCards returns the sample credit cards
func DemoCreditCards() []*domain.CreditCard {
	return []*domain.CreditCard{
		{ID: DemoSapphireID, Name: "Chase Sapphire", DueDay: 5, Balance: decimal.NewFromInt(1200)},
		{ID: DemoAmexGoldID, Name: "Amex Gold", DueDay: 20, Balance: decimal.NewFromInt(800)},
	}
}

// DemoRecurringExpenses returns the sample recurring expenses
func DemoRecurringExpenses() []*domain.RecurringExpense {
	return []*domain.RecurringExpense{
		{ID: DemoRentExpenseID, Name: "Rent", Amount: decimal.NewFromInt(2000), DueDay: 1},
	}
}

// DemoSeeder fills empty repositories with the sample data set
type DemoSeeder struct {
	accounts domain.AccountRepository
	cards    domain.CreditCardRepository
	expenses domain.RecurringExpenseRepository
}

// NewDemoSeeder creates a new DemoSeeder instance
func NewDemoSeeder(
	accounts domain.AccountRepository,
	cards domain.CreditCardRepository,
	expenses domain.RecurringExpenseRepository,
) *DemoSeeder {
	return &DemoSeeder{
		accounts: accounts,
		cards:    cards,
		expenses: expenses,
	}
}

// Seed writes the demo data set unless any data already exists.
// It reports whether anything was written.
func (s *DemoSeeder) Seed(ctx context.Context) (bool, error) {
	empty, err := s.isEmpty(ctx)
	if err != nil || !empty {
		return false, err
	}

	for _, account := range DemoAccounts() {
		if err := account.Validate(); err != nil {
			return false, err
		}
		if err := s.accounts.Save(ctx, account); err != nil {
			return false, fmt.Errorf("failed to seed account %s: %w", account.Name, err)
		}
	}

	for _, card := range DemoCreditCards() {
		if err := card.Validate(); err != nil {
			return false, err
		}
		if err := s.cards.Save(ctx, card); err != nil {
			return false, fmt.Errorf("failed to seed credit card %s: %w", card.Name, err)
		}
	}

	for _, expense := range DemoRecurringExpenses() {
		if err := expense.Validate(); err != nil {
			return false, err
		}
		if err := s.expenses.Save(ctx, expense); err != nil {
			return false, fmt.Errorf("failed to seed recurring expense %s: %w", expense.Name, err)
		}
	}

	return true, nil
}

func (s *DemoSeeder) isEmpty(ctx context.Context) (bool, error) {
	accounts, err := s.accounts.List(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to list accounts: %w", err)
	}
	cards, err := s.cards.List(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to list credit cards: %w", err)
	}
	expenses, err := s.expenses.List(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to list recurring expenses: %w", err)
	}
	return len(accounts) == 0 && len(cards) == 0 && len(expenses) == 0, nil
}
