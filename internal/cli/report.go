package cli

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/simaogato/sweep-backend/internal/usecase/dashboard"
	"github.com/simaogato/sweep-backend/internal/usecase/planning"
)

// RenderPlan renders the transfer schedule. names maps account IDs to display names.
func RenderPlan(result *planning.PlanResult, names map[uuid.UUID]string) string {
	var b strings.Builder

	b.WriteString(RenderTitle(fmt.Sprintf("TRANSFER PLAN  %s  +%dd", result.StartDate, result.HorizonDays)))
	b.WriteString("\n\n")

	for _, warning := range result.Warnings {
		b.WriteString(RenderWarning(warning))
		b.WriteString("\n")
	}

	if len(result.Plans) == 0 {
		if len(result.Warnings) == 0 {
			b.WriteString(RenderMuted("  No payments fall due in this window."))
			b.WriteString("\n")
		}
		return b.String()
	}

	rows := make([][]string, 0, len(result.Plans))
	urgent := 0
	for _, plan := range result.Plans {
		initiate := plan.Date.String()
		if plan.Urgent {
			urgent++
			initiate = RenderUrgent(initiate + " !")
		}
		rows = append(rows, []string{
			initiate,
			accountName(names, plan.FromAccountID),
			accountName(names, plan.ToAccountID),
			FormatMoney(plan.Amount),
			plan.DueDate.String(),
			plan.Reason,
		})
	}

	b.WriteString(RenderTable(Table{
		Headers: []string{"Initiate", "From", "To", "Amount", "Due", "Reason"},
		Rows:    rows,
	}))

	b.WriteString(fmt.Sprintf("\n  Projected interest: %s\n", RenderMoney(FormatMoney(result.ProjectedInterest))))
	if urgent > 0 {
		b.WriteString(RenderWarning(fmt.Sprintf("%d transfer(s) should start today to make the due date", urgent)))
		b.WriteString("\n")
	}

	return b.String()
}

// RenderSummary renders the dashboard view.
func RenderSummary(summary *dashboard.Summary) string {
	var b strings.Builder

	b.WriteString(RenderTitle(fmt.Sprintf("CASH SUMMARY  %s  +%dd", summary.Plan.StartDate, summary.Plan.HorizonDays)))
	b.WriteString("\n\n")

	rows := [][]string{
		{"Accounts", fmt.Sprintf("%d", summary.AccountCount)},
		{"Credit cards", fmt.Sprintf("%d", summary.CardCount)},
		{"Recurring expenses", fmt.Sprintf("%d", summary.ExpenseCount)},
		{"---"},
		{"Total assets", FormatMoney(summary.TotalAssets)},
		{"Card debt", FormatMoney(summary.TotalDebt)},
		{"Net cash", FormatMoney(summary.NetCash)},
		{"---"},
		{"Scheduled transfers", fmt.Sprintf("%d", len(summary.Plan.Plans))},
		{"Projected interest", FormatMoney(summary.ProjectedInterest)},
	}

	b.WriteString(RenderTable(Table{Rows: rows}))

	for _, warning := range summary.Plan.Warnings {
		b.WriteString(RenderWarning(warning))
		b.WriteString("\n")
	}

	return b.String()
}

func accountName(names map[uuid.UUID]string, id uuid.UUID) string {
	if name, ok := names[id]; ok {
		return name
	}
	return id.String()[:8]
}
