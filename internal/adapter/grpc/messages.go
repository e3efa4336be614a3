package grpc

// Wire messages for sweep.v1.SweepService. Amounts are decimal strings,
// dates are YYYY-MM-DD and IDs are UUID strings.

type Account struct {
	Id           string `json:"id,omitempty"`
	Name         string `json:"name"`
	Apy          string `json:"apy"`
	TransferTime int32  `json:"transfer_time"`
	IsMain       bool   `json:"is_main"`
	Balance      string `json:"balance"`
}

type CreditCard struct {
	Id               string `json:"id,omitempty"`
	Name             string `json:"name"`
	DueDay           int32  `json:"due_day"`
	StatementDay     int32  `json:"statement_day,omitempty"`
	Balance          string `json:"balance"`
	PaymentAccountId string `json:"payment_account_id,omitempty"`
}

type RecurringExpense struct {
	Id               string `json:"id,omitempty"`
	Name             string `json:"name"`
	Amount           string `json:"amount"`
	DueDay           int32  `json:"due_day"`
	PaymentAccountId string `json:"payment_account_id,omitempty"`
}

type TransferPlan struct {
	Date          string `json:"date"`
	FromAccountId string `json:"from_account_id"`
	ToAccountId   string `json:"to_account_id"`
	Amount        string `json:"amount"`
	Reason        string `json:"reason"`
	DueDate       string `json:"due_date"`
	Urgent        bool   `json:"urgent,omitempty"`
}

type GetPlanRequest struct {
	StartDate   string `json:"start_date,omitempty"`
	HorizonDays int32  `json:"horizon_days,omitempty"`
}

type GetPlanResponse struct {
	StartDate         string          `json:"start_date"`
	HorizonDays       int32           `json:"horizon_days"`
	Transfers         []*TransferPlan `json:"transfers"`
	ProjectedInterest string          `json:"projected_interest"`
	PrimaryAccountId  string          `json:"primary_account_id,omitempty"`
	FundingAccountId  string          `json:"funding_account_id,omitempty"`
	Warnings          []string        `json:"warnings,omitempty"`
}

type GetDashboardRequest struct {
	StartDate   string `json:"start_date,omitempty"`
	HorizonDays int32  `json:"horizon_days,omitempty"`
}

type GetDashboardResponse struct {
	TotalAssets       string   `json:"total_assets"`
	TotalDebt         string   `json:"total_debt"`
	NetCash           string   `json:"net_cash"`
	ProjectedInterest string   `json:"projected_interest"`
	AccountCount      int32    `json:"account_count"`
	CardCount         int32    `json:"card_count"`
	ExpenseCount      int32    `json:"expense_count"`
	TransferCount     int32    `json:"transfer_count"`
	UrgentCount       int32    `json:"urgent_count"`
	Warnings          []string `json:"warnings,omitempty"`
}

type ListAccountsRequest struct{}

type ListAccountsResponse struct {
	Accounts []*Account `json:"accounts"`
}

type SaveAccountRequest struct {
	Account *Account `json:"account"`
}

type SaveAccountResponse struct {
	Account *Account `json:"account"`
}

type DeleteAccountRequest struct {
	Id string `json:"id"`
}

type DeleteAccountResponse struct{}

type ListCreditCardsRequest struct{}

type ListCreditCardsResponse struct {
	CreditCards []*CreditCard `json:"credit_cards"`
}

type SaveCreditCardRequest struct {
	CreditCard *CreditCard `json:"credit_card"`
}

type SaveCreditCardResponse struct {
	CreditCard *CreditCard `json:"credit_card"`
}

type DeleteCreditCardRequest struct {
	Id string `json:"id"`
}

type DeleteCreditCardResponse struct{}

type ListRecurringExpensesRequest struct{}

type ListRecurringExpensesResponse struct {
	RecurringExpenses []*RecurringExpense `json:"recurring_expenses"`
}

type SaveRecurringExpenseRequest struct {
	RecurringExpense *RecurringExpense `json:"recurring_expense"`
}

type SaveRecurringExpenseResponse struct {
	RecurringExpense *RecurringExpense `json:"recurring_expense"`
}

type DeleteRecurringExpenseRequest struct {
	Id string `json:"id"`
}

type DeleteRecurringExpenseResponse struct{}
