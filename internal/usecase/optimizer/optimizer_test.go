package optimizer

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/simaogato/sweep-backend/internal/calendar"
	"github.com/simaogato/sweep-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleAccounts() (checking, sofi domain.Account) {
	checking = newAccount("Chase Checking", "0", 0, true, 2000)
	sofi = newAccount("SoFi Savings", "0.036", 2, false, 15000)
	return checking, sofi
}

func TestCalculatePlan_CardDueNextMonth(t *testing.T) {
	checking, sofi := sampleAccounts()

	result, err := CalculatePlan(Input{
		Accounts:    []domain.Account{checking, sofi},
		Cards:       []domain.CreditCard{{Name: "Chase Sapphire", DueDay: 5, Balance: decimal.NewFromInt(1200)}},
		StartDate:   calendar.MustParse("2023-10-27"),
		HorizonDays: 30,
	})

	require.NoError(t, err)
	require.Len(t, result.Plans, 1)

	plan := result.Plans[0]
	assert.Equal(t, "2023-11-02", plan.Date.String())
	assert.Equal(t, "2023-11-05", plan.DueDate.String())
	assert.Equal(t, sofi.ID, plan.FromAccountID)
	assert.Equal(t, checking.ID, plan.ToAccountID)
	assert.True(t, decimal.NewFromInt(1200).Equal(plan.Amount))
	assert.Equal(t, "Cover Chase Sapphire payment due on 2023-11-05", plan.Reason)
	assert.False(t, plan.Urgent)

	assert.Equal(t, checking.ID, result.PrimaryAccountID)
	assert.Equal(t, sofi.ID, result.FundingAccountID)

	// 6 days at 15000 then 24 days at 13800, 3.6% / 365 per day
	assert.InDelta(t, 41.5430137, result.ProjectedInterest.InexactFloat64(), 1e-6)
}

func TestCalculatePlan_LateObligationStartsToday(t *testing.T) {
	checking, sofi := sampleAccounts()

	result, err := CalculatePlan(Input{
		Accounts:    []domain.Account{checking, sofi},
		Cards:       []domain.CreditCard{{Name: "Chase Sapphire", DueDay: 5, Balance: decimal.NewFromInt(1200)}},
		StartDate:   calendar.MustParse("2023-11-04"),
		HorizonDays: 30,
	})

	require.NoError(t, err)
	require.Len(t, result.Plans, 1)
	assert.Equal(t, "2023-11-04", result.Plans[0].Date.String())
	assert.Equal(t, "2023-11-05", result.Plans[0].DueDate.String())
	assert.True(t, result.Plans[0].Urgent)
}

func TestCalculatePlan_NoPrimaryAccount(t *testing.T) {
	_, sofi := sampleAccounts()

	result, err := CalculatePlan(Input{
		Accounts:  []domain.Account{sofi},
		Cards:     []domain.CreditCard{{Name: "Chase Sapphire", DueDay: 5, Balance: decimal.NewFromInt(1200)}},
		StartDate: calendar.MustParse("2023-10-27"),
	})

	assert.ErrorIs(t, err, domain.ErrNoPrimaryAccount)
	assert.NotNil(t, result.Plans)
	assert.Empty(t, result.Plans)
	assert.True(t, result.ProjectedInterest.IsZero())
}

func TestCalculatePlan_OnlyPrimaryAccount(t *testing.T) {
	checking, _ := sampleAccounts()

	result, err := CalculatePlan(Input{
		Accounts:  []domain.Account{checking},
		Cards:     []domain.CreditCard{{Name: "Chase Sapphire", DueDay: 5, Balance: decimal.NewFromInt(1200)}},
		StartDate: calendar.MustParse("2023-10-27"),
	})

	assert.ErrorIs(t, err, domain.ErrNoFundingAccount)
	assert.Empty(t, result.Plans)
	assert.True(t, result.ProjectedInterest.IsZero())
}

func TestCalculatePlan_SameDayObligationsAreNotMerged(t *testing.T) {
	checking, sofi := sampleAccounts()

	result, err := CalculatePlan(Input{
		Accounts: []domain.Account{checking, sofi},
		Cards: []domain.CreditCard{
			{Name: "Amex Gold", DueDay: 10, Balance: decimal.NewFromInt(800)},
		},
		Expenses: []domain.RecurringExpense{
			{Name: "Car Loan", DueDay: 10, Amount: decimal.NewFromInt(350)},
		},
		StartDate:   calendar.MustParse("2023-10-01"),
		HorizonDays: 30,
	})

	require.NoError(t, err)
	require.Len(t, result.Plans, 2)

	assert.Equal(t, result.Plans[0].Date, result.Plans[1].Date)
	assert.Equal(t, "2023-10-07", result.Plans[0].Date.String())
	assert.True(t, decimal.NewFromInt(800).Equal(result.Plans[0].Amount))
	assert.True(t, decimal.NewFromInt(350).Equal(result.Plans[1].Amount))
	assert.Equal(t, "Cover Amex Gold payment due on 2023-10-10", result.Plans[0].Reason)
	assert.Equal(t, "Cover Car Loan payment due on 2023-10-10", result.Plans[1].Reason)
}

func TestCalculatePlan_DefaultHorizon(t *testing.T) {
	checking, sofi := sampleAccounts()
	input := Input{
		Accounts: []domain.Account{checking, sofi},
		Expenses: []domain.RecurringExpense{
			{Name: "Rent", DueDay: 1, Amount: decimal.NewFromInt(2000)},
		},
		StartDate: calendar.MustParse("2023-10-02"),
	}

	defaulted, err := CalculatePlan(input)
	require.NoError(t, err)

	input.HorizonDays = DefaultHorizonDays
	explicit, err := CalculatePlan(input)
	require.NoError(t, err)

	assert.Equal(t, explicit, defaulted)
	require.Len(t, defaulted.Plans, 1)
	assert.Equal(t, "2023-10-29", defaulted.Plans[0].Date.String())
}

func TestCalculatePlan_IsDeterministic(t *testing.T) {
	checking, sofi := sampleAccounts()
	usdc := newAccount("Coinbase USDC", "0.0385", 3, false, 5000)

	input := Input{
		Accounts: []domain.Account{checking, sofi, usdc},
		Cards: []domain.CreditCard{
			{Name: "Chase Sapphire", DueDay: 5, Balance: decimal.NewFromInt(1200)},
			{Name: "Amex Gold", DueDay: 20, Balance: decimal.NewFromInt(800)},
		},
		Expenses: []domain.RecurringExpense{
			{Name: "Rent", DueDay: 1, Amount: decimal.NewFromInt(2000)},
		},
		StartDate:   calendar.MustParse("2023-10-27"),
		HorizonDays: 30,
	}

	first, err := CalculatePlan(input)
	require.NoError(t, err)
	second, err := CalculatePlan(input)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, usdc.ID, first.FundingAccountID)
	// Funding balance of 5000 cannot cover 4000 of bills plus interest forever,
	// but no sufficiency check is made: every obligation still gets a transfer.
	assert.Len(t, first.Plans, 3)
}

func TestCalculatePlan_Invariants(t *testing.T) {
	checking := newAccount("Checking", "0", 0, true, 0)

	cards := make([]domain.CreditCard, 0, 31)
	for day := 1; day <= 31; day++ {
		cards = append(cards, domain.CreditCard{Name: "Card", DueDay: day, Balance: decimal.NewFromInt(int64(day * 10))})
	}

	first := calendar.MustParse("2023-01-01")
	for offset := 0; offset < 400; offset += 3 {
		start := first.AddDays(offset)
		for _, horizon := range []int{1, 7, 30, 45} {
			for transferTime := 0; transferTime <= 5; transferTime++ {
				savings := newAccount("Savings", "0.045", transferTime, false, 1000)

				result, err := CalculatePlan(Input{
					Accounts:    []domain.Account{checking, savings},
					Cards:       cards,
					StartDate:   start,
					HorizonDays: horizon,
				})
				require.NoError(t, err)

				assert.False(t, result.ProjectedInterest.IsNegative())

				for _, plan := range result.Plans {
					offsetDays := calendar.DaysBetween(start, plan.Date)
					assert.GreaterOrEqual(t, offsetDays, 0, "start %s horizon %d", start, horizon)
					assert.Less(t, offsetDays, horizon, "start %s horizon %d", start, horizon)
					assert.True(t, plan.Amount.Equal(decimal.NewFromInt(int64(plan.DueDate.Day()*10))) || plan.DueDate.Day() == calendar.DaysIn(plan.DueDate.Year(), plan.DueDate.Month()),
						"amount must match the covered obligation")
				}

				for i := 1; i < len(result.Plans); i++ {
					assert.False(t, result.Plans[i].DueDate.Before(result.Plans[i-1].DueDate), "plans must follow due date order")
				}
			}
		}
	}
}
