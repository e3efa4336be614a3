package optimizer

import (
	"github.com/shopspring/decimal"
	"github.com/simaogato/sweep-backend/internal/calendar"
	"github.com/simaogato/sweep-backend/internal/domain"
)

// ResolvedObligation is an obligation pinned to a concrete due date
type ResolvedObligation struct {
	DueDate calendar.Date
	Amount  decimal.Decimal
	Name    string
}

// NextOccurrence returns the next date on or after start that falls on dueDay.
//
// Logic:
//   - If start's day is on or before dueDay, the occurrence is in start's month
//   - Otherwise it rolls to the following month (December rolls into January)
//   - A dueDay past the end of the target month is clamped to the month's last day
//
// The month is chosen by comparing against the raw dueDay, so with a start of
// Feb 28 and a dueDay of 31 the occurrence is Feb 28 itself.
func NextOccurrence(start calendar.Date, dueDay int) calendar.Date {
	if dueDay < domain.MinDueDay {
		dueDay = domain.MinDueDay
	}

	year, month := start.Year(), start.Month()
	if start.Day() > dueDay {
		month++
		if month > 12 {
			month = 1
			year++
		}
	}

	if last := calendar.DaysIn(year, month); dueDay > last {
		dueDay = last
	}

	return calendar.New(year, month, dueDay)
}

// ResolveObligations pins every obligation to its next occurrence and keeps
// those falling within the horizon. An occurrence exactly horizonDays after
// start is still included. Input order is retained.
func ResolveObligations(obligations []domain.Obligation, start calendar.Date, horizonDays int) []ResolvedObligation {
	resolved := make([]ResolvedObligation, 0, len(obligations))

	for _, o := range obligations {
		due := NextOccurrence(start, o.DueDay)

		offset := calendar.DaysBetween(start, due)
		if offset < 0 || offset > horizonDays {
			continue
		}

		resolved = append(resolved, ResolvedObligation{
			DueDate: due,
			Amount:  o.Amount,
			Name:    o.Name,
		})
	}

	return resolved
}
