package memory

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/simaogato/sweep-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountRepository_KeepsInsertionOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewAccountRepository()

	checking := &domain.Account{ID: uuid.New(), Name: "Chase Checking", IsMain: true, Balance: decimal.NewFromInt(2000)}
	sofi := &domain.Account{ID: uuid.New(), Name: "SoFi Savings", APY: decimal.RequireFromString("0.036"), TransferTime: 2}
	usdc := &domain.Account{ID: uuid.New(), Name: "Coinbase USDC", APY: decimal.RequireFromString("0.0385"), TransferTime: 3}

	require.NoError(t, repo.Save(ctx, checking))
	require.NoError(t, repo.Save(ctx, sofi))
	require.NoError(t, repo.Save(ctx, usdc))

	// Updating an existing account keeps its slot
	updated := *sofi
	updated.Balance = decimal.NewFromInt(14000)
	require.NoError(t, repo.Save(ctx, &updated))

	accounts, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, accounts, 3)
	assert.Equal(t, checking.ID, accounts[0].ID)
	assert.Equal(t, sofi.ID, accounts[1].ID)
	assert.True(t, decimal.NewFromInt(14000).Equal(accounts[1].Balance))
	assert.Equal(t, usdc.ID, accounts[2].ID)
}

func TestAccountRepository_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewAccountRepository()

	account := &domain.Account{ID: uuid.New(), Name: "Checking", IsMain: true}
	require.NoError(t, repo.Save(ctx, account))

	account.Name = "Mutated after save"

	stored, err := repo.GetByID(ctx, account.ID)
	require.NoError(t, err)
	assert.Equal(t, "Checking", stored.Name)

	stored.Name = "Mutated after read"
	again, err := repo.GetByID(ctx, account.ID)
	require.NoError(t, err)
	assert.Equal(t, "Checking", again.Name)
}

func TestAccountRepository_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := NewAccountRepository()

	_, err := repo.GetByID(ctx, uuid.New())
	assert.ErrorIs(t, err, domain.ErrNotFound)

	err = repo.Delete(ctx, uuid.New())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreditCardRepository_Delete(t *testing.T) {
	ctx := context.Background()
	repo := NewCreditCardRepository()

	sapphire := &domain.CreditCard{ID: uuid.New(), Name: "Chase Sapphire", DueDay: 5, Balance: decimal.NewFromInt(1200)}
	amex := &domain.CreditCard{ID: uuid.New(), Name: "Amex Gold", DueDay: 20, Balance: decimal.NewFromInt(800)}
	require.NoError(t, repo.Save(ctx, sapphire))
	require.NoError(t, repo.Save(ctx, amex))

	require.NoError(t, repo.Delete(ctx, sapphire.ID))

	cards, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, cards, 1)
	assert.Equal(t, "Amex Gold", cards[0].Name)

	_, err = repo.GetByID(ctx, sapphire.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRecurringExpenseRepository_ConcurrentSaves(t *testing.T) {
	ctx := context.Background()
	repo := NewRecurringExpenseRepository()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(day int) {
			defer wg.Done()
			_ = repo.Save(ctx, &domain.RecurringExpense{ID: uuid.New(), Name: "Bill", DueDay: day%28 + 1, Amount: decimal.NewFromInt(10)})
		}(i)
	}
	wg.Wait()

	expenses, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, expenses, 50)
}

func TestCreditCardRepository_CopiesPaymentAccount(t *testing.T) {
	ctx := context.Background()
	repo := NewCreditCardRepository()

	paymentID := uuid.New()
	card := &domain.CreditCard{ID: uuid.New(), Name: "Chase Sapphire", DueDay: 5, PaymentAccountID: &paymentID}
	require.NoError(t, repo.Save(ctx, card))

	// Mutating the caller's pointer after Save must not reach the store
	*card.PaymentAccountID = uuid.New()

	stored, err := repo.GetByID(ctx, card.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.PaymentAccountID)
	assert.Equal(t, paymentID, *stored.PaymentAccountID)

	// Nor may mutating a returned copy
	*stored.PaymentAccountID = uuid.New()

	cards, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, cards, 1)
	assert.Equal(t, paymentID, *cards[0].PaymentAccountID)
}

func TestRecurringExpenseRepository_CopiesPaymentAccount(t *testing.T) {
	ctx := context.Background()
	repo := NewRecurringExpenseRepository()

	paymentID := uuid.New()
	expense := &domain.RecurringExpense{ID: uuid.New(), Name: "Rent", DueDay: 1, Amount: decimal.NewFromInt(2000), PaymentAccountID: &paymentID}
	require.NoError(t, repo.Save(ctx, expense))

	*expense.PaymentAccountID = uuid.New()

	expenses, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, expenses, 1)
	assert.Equal(t, paymentID, *expenses[0].PaymentAccountID)
}

func TestAccountRepository_Restore(t *testing.T) {
	ctx := context.Background()
	repo := NewAccountRepository()

	first := &domain.Account{ID: uuid.New(), Name: "Chase Checking", IsMain: true}
	second := &domain.Account{ID: uuid.New(), Name: "SoFi Savings"}
	require.NoError(t, repo.Save(ctx, first))

	repo.Restore([]*domain.Account{second, first})

	accounts, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, accounts, 2)
	assert.Equal(t, second.ID, accounts[0].ID)
	assert.Equal(t, first.ID, accounts[1].ID)
}
