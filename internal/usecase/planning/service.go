package planning

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/simaogato/sweep-backend/internal/calendar"
	"github.com/simaogato/sweep-backend/internal/domain"
	"github.com/simaogato/sweep-backend/internal/usecase/optimizer"
	"github.com/sirupsen/logrus"
)

// GeneratePlanInput represents the input for generating a transfer plan
type GeneratePlanInput struct {
	StartDate   calendar.Date // Optional: defaults to today per the service clock
	HorizonDays int           // Optional: defaults to the service horizon
}

// Validate checks the caller supplied window
func (in GeneratePlanInput) Validate() error {
	if in.HorizonDays < 0 {
		return fmt.Errorf("%w: horizon days must be non-negative", domain.ErrValidation)
	}
	if in.HorizonDays > optimizer.MaxHorizonDays {
		return fmt.Errorf("%w: horizon days must be at most %d", domain.ErrValidation, optimizer.MaxHorizonDays)
	}
	return nil
}

// PlanResult is the engine result plus the window it was computed for
type PlanResult struct {
	optimizer.Result
	StartDate   calendar.Date
	HorizonDays int
	Warnings    []string // Why the plan is empty, when it is
}

// Snapshot is one consistent read of the three collections
type Snapshot struct {
	Accounts []domain.Account
	Cards    []domain.CreditCard
	Expenses []domain.RecurringExpense
}

// PlanningService builds transfer plans from the stored accounts and obligations
type PlanningService struct {
	AccountRepo domain.AccountRepository
	CardRepo    domain.CreditCardRepository
	ExpenseRepo domain.RecurringExpenseRepository
	Logger      logrus.FieldLogger

	// Now is the only clock the planning path reads
	Now         func() time.Time
	HorizonDays int
}

// NewPlanningService creates a new PlanningService instance
func NewPlanningService(
	accountRepo domain.AccountRepository,
	cardRepo domain.CreditCardRepository,
	expenseRepo domain.RecurringExpenseRepository,
	logger logrus.FieldLogger,
) *PlanningService {
	return &PlanningService{
		AccountRepo: accountRepo,
		CardRepo:    cardRepo,
		ExpenseRepo: expenseRepo,
		Logger:      logger,
		Now:         time.Now,
		HorizonDays: optimizer.DefaultHorizonDays,
	}
}

// LoadSnapshot reads all accounts, cards and expenses
func (s *PlanningService) LoadSnapshot(ctx context.Context) (*Snapshot, error) {
	accounts, err := s.AccountRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	cards, err := s.CardRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list credit cards: %w", err)
	}

	expenses, err := s.ExpenseRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list recurring expenses: %w", err)
	}

	snapshot := &Snapshot{
		Accounts: make([]domain.Account, 0, len(accounts)),
		Cards:    make([]domain.CreditCard, 0, len(cards)),
		Expenses: make([]domain.RecurringExpense, 0, len(expenses)),
	}
	for _, a := range accounts {
		snapshot.Accounts = append(snapshot.Accounts, *a)
	}
	for _, c := range cards {
		snapshot.Cards = append(snapshot.Cards, *c)
	}
	for _, e := range expenses {
		snapshot.Expenses = append(snapshot.Expenses, *e)
	}

	return snapshot, nil
}

// GeneratePlan loads a snapshot and runs the optimizer over it
// Logic:
//  1. Resolve start date and horizon (input, then service defaults)
//  2. Load the snapshot from the repositories
//  3. Run the optimizer
//  4. A missing primary or funding account is not a failure: the empty
//     plan is returned with a warning
func (s *PlanningService) GeneratePlan(ctx context.Context, input GeneratePlanInput) (*PlanResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	snapshot, err := s.LoadSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	return s.PlanFromSnapshot(snapshot, input), nil
}

// PlanFromSnapshot runs the optimizer over an already loaded snapshot
func (s *PlanningService) PlanFromSnapshot(snapshot *Snapshot, input GeneratePlanInput) *PlanResult {
	start := input.StartDate
	if start.IsZero() {
		start = calendar.FromTime(s.Now())
	}

	horizon := input.HorizonDays
	if horizon == 0 {
		horizon = s.HorizonDays
	}
	if horizon <= 0 {
		horizon = optimizer.DefaultHorizonDays
	}

	result, err := optimizer.CalculatePlan(optimizer.Input{
		Accounts:    snapshot.Accounts,
		Cards:       snapshot.Cards,
		Expenses:    snapshot.Expenses,
		StartDate:   start,
		HorizonDays: horizon,
	})

	planResult := &PlanResult{
		Result:      result,
		StartDate:   start,
		HorizonDays: horizon,
		Warnings:    []string{},
	}

	logger := s.Logger.WithFields(logrus.Fields{
		"start_date":   start.String(),
		"horizon_days": horizon,
	})

	switch {
	case errors.Is(err, domain.ErrNoPrimaryAccount):
		logger.Warn("no primary account; returning empty plan")
		planResult.Warnings = append(planResult.Warnings, "no account is marked as the primary account")
	case errors.Is(err, domain.ErrNoFundingAccount):
		logger.Warn("no funding account; returning empty plan")
		planResult.Warnings = append(planResult.Warnings, "no savings account is available to fund transfers")
	default:
		urgent := 0
		for _, plan := range result.Plans {
			if plan.Urgent {
				urgent++
			}
		}
		logger.WithFields(logrus.Fields{
			"transfers":          len(result.Plans),
			"urgent_transfers":   urgent,
			"projected_interest": result.ProjectedInterest.StringFixed(2),
			"funding_account_id": result.FundingAccountID.String(),
		}).Info("transfer plan generated")
	}

	return planResult
}
