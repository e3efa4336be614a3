package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/simaogato/sweep-backend/internal/adapter/repository/memory"
	"github.com/simaogato/sweep-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockAccountRepository is a mock implementation of AccountRepository
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) List(ctx context.Context) ([]*domain.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) Save(ctx context.Context, account *domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newService() *CatalogService {
	return NewCatalogService(
		memory.NewAccountRepository(),
		memory.NewCreditCardRepository(),
		memory.NewRecurringExpenseRepository(),
	)
}

func TestSaveAccount_AssignsID(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	saved, err := svc.SaveAccount(ctx, &domain.Account{Name: "Chase Checking", IsMain: true, Balance: decimal.NewFromInt(2000)})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, saved.ID)

	stored, err := svc.AccountRepo.GetByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, "Chase Checking", stored.Name)
}

func TestSaveAccount_Validation(t *testing.T) {
	svc := newService()

	tests := []struct {
		name    string
		account *domain.Account
		errMsg  string
	}{
		{name: "nil", account: nil, errMsg: "account is required"},
		{name: "empty name", account: &domain.Account{}, errMsg: "account name cannot be empty"},
		{name: "negative apy", account: &domain.Account{Name: "X", APY: decimal.RequireFromString("-0.01")}, errMsg: "APY must be non-negative"},
		{name: "negative transfer time", account: &domain.Account{Name: "X", TransferTime: -1}, errMsg: "transfer time must be non-negative"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.SaveAccount(context.Background(), tt.account)
			assert.ErrorIs(t, err, domain.ErrValidation)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestSaveAccount_DemotesOtherPrimary(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	first, err := svc.SaveAccount(ctx, &domain.Account{Name: "Old Checking", IsMain: true})
	require.NoError(t, err)
	savings, err := svc.SaveAccount(ctx, &domain.Account{Name: "Savings", APY: decimal.RequireFromString("0.04")})
	require.NoError(t, err)

	second, err := svc.SaveAccount(ctx, &domain.Account{Name: "New Checking", IsMain: true})
	require.NoError(t, err)

	accounts, err := svc.ListAccounts(ctx)
	require.NoError(t, err)
	require.Len(t, accounts, 3)

	primaries := 0
	for _, a := range accounts {
		if a.IsMain {
			primaries++
			assert.Equal(t, second.ID, a.ID)
		}
	}
	assert.Equal(t, 1, primaries)
	assert.Equal(t, first.ID, accounts[0].ID, "demotion keeps insertion order")
	assert.Equal(t, savings.ID, accounts[1].ID)
}

func TestSaveAccount_ResavingPrimaryKeepsIt(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	checking, err := svc.SaveAccount(ctx, &domain.Account{Name: "Checking", IsMain: true})
	require.NoError(t, err)

	checking.Balance = decimal.NewFromInt(500)
	_, err = svc.SaveAccount(ctx, checking)
	require.NoError(t, err)

	stored, err := svc.AccountRepo.GetByID(ctx, checking.ID)
	require.NoError(t, err)
	assert.True(t, stored.IsMain)
	assert.True(t, decimal.NewFromInt(500).Equal(stored.Balance))
}

func TestDelete_UnknownID(t *testing.T) {
	ctx := context.Background()
	svc := newService()
	id := uuid.New()

	assert.ErrorIs(t, svc.DeleteAccount(ctx, id), domain.ErrNotFound)
	assert.ErrorIs(t, svc.DeleteCreditCard(ctx, id), domain.ErrNotFound)
	assert.ErrorIs(t, svc.DeleteRecurringExpense(ctx, id), domain.ErrNotFound)
}

func TestSaveCreditCard(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	checking, err := svc.SaveAccount(ctx, &domain.Account{Name: "Checking", IsMain: true})
	require.NoError(t, err)

	card, err := svc.SaveCreditCard(ctx, &domain.CreditCard{
		Name:             "Chase Sapphire",
		DueDay:           5,
		Balance:          decimal.NewFromInt(1200),
		PaymentAccountID: &checking.ID,
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, card.ID)

	cards, err := svc.ListCreditCards(ctx)
	require.NoError(t, err)
	require.Len(t, cards, 1)

	require.NoError(t, svc.DeleteCreditCard(ctx, card.ID))
	cards, err = svc.ListCreditCards(ctx)
	require.NoError(t, err)
	assert.Empty(t, cards)
}

func TestSaveCreditCard_Rejects(t *testing.T) {
	ctx := context.Background()
	svc := newService()
	missing := uuid.New()

	_, err := svc.SaveCreditCard(ctx, &domain.CreditCard{Name: "Amex", DueDay: 32})
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Contains(t, err.Error(), "due day must be between 1 and 31")

	_, err = svc.SaveCreditCard(ctx, &domain.CreditCard{Name: "Amex", DueDay: 20, PaymentAccountID: &missing})
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Contains(t, err.Error(), "payment account")
}

func TestSaveRecurringExpense(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	rent, err := svc.SaveRecurringExpense(ctx, &domain.RecurringExpense{Name: "Rent", Amount: decimal.NewFromInt(2000), DueDay: 1})
	require.NoError(t, err)

	rent.Amount = decimal.NewFromInt(2100)
	_, err = svc.SaveRecurringExpense(ctx, rent)
	require.NoError(t, err)

	expenses, err := svc.ListRecurringExpenses(ctx)
	require.NoError(t, err)
	require.Len(t, expenses, 1)
	assert.True(t, decimal.NewFromInt(2100).Equal(expenses[0].Amount))

	_, err = svc.SaveRecurringExpense(ctx, &domain.RecurringExpense{Name: "Gym", Amount: decimal.NewFromInt(-5), DueDay: 3})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestSaveAccount_FailedSaveKeepsExistingPrimary(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockAccountRepository)
	svc := NewCatalogService(mockRepo, memory.NewCreditCardRepository(), memory.NewRecurringExpenseRepository())

	mockRepo.On("Save", ctx, mock.MatchedBy(func(account *domain.Account) bool {
		return account.Name == "New Checking"
	})).Return(errors.New("connection reset"))

	_, err := svc.SaveAccount(ctx, &domain.Account{Name: "New Checking", IsMain: true})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to save account")
	mockRepo.AssertNumberOfCalls(t, "Save", 1)
	mockRepo.AssertNotCalled(t, "List", mock.Anything)
}
