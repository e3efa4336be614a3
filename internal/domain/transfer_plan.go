package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/simaogato/sweep-backend/internal/calendar"
)

// TransferPlan is one scheduled instruction to move money from the funding
// account into the primary account. Entries carry no generated identifiers
// so the same inputs always produce the same plan.
type TransferPlan struct {
	Date          calendar.Date // Day the transfer must be initiated
	FromAccountID uuid.UUID
	ToAccountID   uuid.UUID
	Amount        decimal.Decimal
	Reason        string
	DueDate       calendar.Date // Due date of the obligation being covered
	Urgent        bool          // Ideal initiation day had already passed; moved to the start date
}
