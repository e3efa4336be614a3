package optimizer

import (
	"github.com/shopspring/decimal"
	"github.com/simaogato/sweep-backend/internal/calendar"
	"github.com/simaogato/sweep-backend/internal/domain"
)

// SimulateInterest replays the funding account day by day over the horizon
// and returns the simple interest it would earn.
//
// Logic:
//   - Net outflow per day is the sum of plan amounts initiated that day
//   - On each day the outflow is applied first, then a strictly positive
//     balance accrues balance * APY / 365
//   - Zero or negative balances accrue nothing
//
// Assumes no deposits or withdrawals other than the planned transfers.
func SimulateInterest(openingBalance, apy decimal.Decimal, plans []domain.TransferPlan, start calendar.Date, horizonDays int) decimal.Decimal {
	// Key: day offset from start, Value: total leaving the funding account
	outflows := make(map[int]decimal.Decimal, len(plans))
	for _, plan := range plans {
		offset := calendar.DaysBetween(start, plan.Date)
		outflows[offset] = outflows[offset].Add(plan.Amount)
	}

	balance := openingBalance
	total := decimal.Zero

	for i := 0; i < horizonDays; i++ {
		if outflow, ok := outflows[i]; ok {
			balance = balance.Sub(outflow)
		}

		if balance.GreaterThan(decimal.Zero) {
			total = total.Add(balance.Mul(apy).Div(domain.DaysPerYear))
		}
	}

	return total
}
