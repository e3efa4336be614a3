package dashboard

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/simaogato/sweep-backend/internal/usecase/planning"
)

// Summary is the headline view of the user's cash position
type Summary struct {
	TotalAssets       decimal.Decimal
	TotalDebt         decimal.Decimal
	NetCash           decimal.Decimal
	ProjectedInterest decimal.Decimal
	AccountCount      int
	CardCount         int
	ExpenseCount      int
	Plan              *planning.PlanResult
}

// DashboardService handles dashboard-related operations
type DashboardService struct {
	Planning *planning.PlanningService
}

// NewDashboardService creates a new DashboardService instance
func NewDashboardService(planningService *planning.PlanningService) *DashboardService {
	return &DashboardService{Planning: planningService}
}

// GetSummary totals the current balances and projects interest over the horizon
// Logic:
//   - TotalAssets: sum of all account balances
//   - TotalDebt: sum of all credit card balances
//   - NetCash: TotalAssets - TotalDebt
//   - ProjectedInterest: funding account interest under the generated plan
func (s *DashboardService) GetSummary(ctx context.Context, input planning.GeneratePlanInput) (*Summary, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	snapshot, err := s.Planning.LoadSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	return Summarize(snapshot, s.Planning.PlanFromSnapshot(snapshot, input)), nil
}

// Summarize builds a Summary from an already loaded snapshot and plan
func Summarize(snapshot *planning.Snapshot, plan *planning.PlanResult) *Summary {
	assets := decimal.Zero
	for _, account := range snapshot.Accounts {
		assets = assets.Add(account.Balance)
	}

	debt := decimal.Zero
	for _, card := range snapshot.Cards {
		debt = debt.Add(card.Balance)
	}

	return &Summary{
		TotalAssets:       assets,
		TotalDebt:         debt,
		NetCash:           assets.Sub(debt),
		ProjectedInterest: plan.ProjectedInterest,
		AccountCount:      len(snapshot.Accounts),
		CardCount:         len(snapshot.Cards),
		ExpenseCount:      len(snapshot.Expenses),
		Plan:              plan,
	}
}
