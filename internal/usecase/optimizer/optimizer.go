// Package optimizer schedules transfers from the highest-yield savings
// account into the primary account so upcoming bills are covered, and
// projects the interest the savings account earns meanwhile.
//
// Everything here is pure: no clock reads, no I/O, no shared state.
package optimizer

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/simaogato/sweep-backend/internal/calendar"
	"github.com/simaogato/sweep-backend/internal/domain"
)

// DefaultHorizonDays is used when Input.HorizonDays is not positive
const DefaultHorizonDays = 30

// MaxHorizonDays bounds a planning window; the simulator runs once per day
const MaxHorizonDays = 366

// Input is an immutable snapshot of everything the engine reads
type Input struct {
	Accounts    []domain.Account
	Cards       []domain.CreditCard
	Expenses    []domain.RecurringExpense
	StartDate   calendar.Date
	HorizonDays int
}

// Result is the engine output
type Result struct {
	Plans             []domain.TransferPlan
	ProjectedInterest decimal.Decimal
	PrimaryAccountID  uuid.UUID
	FundingAccountID  uuid.UUID
}

// EmptyResult is returned whenever no plan can be built
func EmptyResult() Result {
	return Result{
		Plans:             []domain.TransferPlan{},
		ProjectedInterest: decimal.Zero,
	}
}

// CalculatePlan runs the full pipeline: resolve obligations, schedule
// transfers, simulate interest.
//
// When there is no primary or no funding account it returns EmptyResult
// together with domain.ErrNoPrimaryAccount or domain.ErrNoFundingAccount.
// Callers should treat those as a degraded outcome, not a failure.
func CalculatePlan(input Input) (Result, error) {
	horizon := input.HorizonDays
	if horizon <= 0 {
		horizon = DefaultHorizonDays
	}

	primary, funding, err := SelectAccounts(input.Accounts)
	if err != nil {
		return EmptyResult(), err
	}

	resolved := ResolveObligations(collectObligations(input.Cards, input.Expenses), input.StartDate, horizon)
	plans := ScheduleTransfers(resolved, *funding, *primary, input.StartDate)
	interest := SimulateInterest(funding.Balance, funding.APY, plans, input.StartDate, horizon)

	return Result{
		Plans:             plans,
		ProjectedInterest: interest,
		PrimaryAccountID:  primary.ID,
		FundingAccountID:  funding.ID,
	}, nil
}

// collectObligations lists cards first, then expenses, each in input order
func collectObligations(cards []domain.CreditCard, expenses []domain.RecurringExpense) []domain.Obligation {
	obligations := make([]domain.Obligation, 0, len(cards)+len(expenses))
	for i := range cards {
		obligations = append(obligations, cards[i].Obligation())
	}
	for i := range expenses {
		obligations = append(obligations, expenses[i].Obligation())
	}
	return obligations
}
