package optimizer

import (
	"fmt"
	"sort"

	"github.com/simaogato/sweep-backend/internal/calendar"
	"github.com/simaogato/sweep-backend/internal/domain"
)

// TransferBufferDays is the slack added on top of an account's transfer time
const TransferBufferDays = 1

// SelectAccounts picks the primary account and the funding account.
//
// Logic:
//   - Primary: the first account with IsMain set
//   - Funding: the non-primary account with the highest APY; when several
//     share the highest APY the last one in input order wins
//
// Returns domain.ErrNoPrimaryAccount or domain.ErrNoFundingAccount when either
// cannot be found.
func SelectAccounts(accounts []domain.Account) (primary, funding *domain.Account, err error) {
	for i := range accounts {
		if accounts[i].IsMain {
			primary = &accounts[i]
			break
		}
	}
	if primary == nil {
		return nil, nil, domain.ErrNoPrimaryAccount
	}

	for i := range accounts {
		if accounts[i].IsMain {
			continue
		}
		if funding == nil || !funding.APY.GreaterThan(accounts[i].APY) {
			funding = &accounts[i]
		}
	}
	if funding == nil {
		return nil, nil, domain.ErrNoFundingAccount
	}

	return primary, funding, nil
}

// ScheduleTransfers emits one transfer per resolved obligation, initiated as
// late as the funding account's transfer time allows.
//
// Logic:
//  1. Stable-sort obligations by due date
//  2. Initiate on dueDate - (transferTime + TransferBufferDays)
//  3. If that day is before start, initiate on start and mark the entry Urgent
//  4. Never net or batch: same-day obligations stay separate entries
//
// The funding balance is not checked; a plan may ask for more than the
// account holds.
func ScheduleTransfers(resolved []ResolvedObligation, funding, primary domain.Account, start calendar.Date) []domain.TransferPlan {
	// Copy to avoid reordering the caller's slice
	sorted := make([]ResolvedObligation, len(resolved))
	copy(sorted, resolved)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].DueDate.Before(sorted[j].DueDate)
	})

	leadDays := funding.TransferTime + TransferBufferDays
	plans := make([]domain.TransferPlan, 0, len(sorted))

	for _, obligation := range sorted {
		initiate := obligation.DueDate.AddDays(-leadDays)

		urgent := false
		if calendar.DaysBetween(start, initiate) < 0 {
			initiate = start
			urgent = true
		}

		plans = append(plans, domain.TransferPlan{
			Date:          initiate,
			FromAccountID: funding.ID,
			ToAccountID:   primary.ID,
			Amount:        obligation.Amount,
			Reason:        fmt.Sprintf("Cover %s payment due on %s", obligation.Name, obligation.DueDate),
			DueDate:       obligation.DueDate,
			Urgent:        urgent,
		})
	}

	return plans
}
