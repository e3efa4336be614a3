package grpc

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/simaogato/sweep-backend/internal/calendar"
	"github.com/simaogato/sweep-backend/internal/domain"
	"github.com/simaogato/sweep-backend/internal/usecase/catalog"
	"github.com/simaogato/sweep-backend/internal/usecase/dashboard"
	"github.com/simaogato/sweep-backend/internal/usecase/planning"
)

// Server implements the SweepService gRPC server
type Server struct {
	CatalogService   *catalog.CatalogService
	PlanningService  *planning.PlanningService
	DashboardService *dashboard.DashboardService
}

var _ SweepServiceServer = (*Server)(nil)

// NewServer creates a new gRPC server instance
func NewServer(
	catalogService *catalog.CatalogService,
	planningService *planning.PlanningService,
	dashboardService *dashboard.DashboardService,
) *Server {
	return &Server{
		CatalogService:   catalogService,
		PlanningService:  planningService,
		DashboardService: dashboardService,
	}
}

// GetPlan handles the GetPlan RPC
func (s *Server) GetPlan(ctx context.Context, req *GetPlanRequest) (*GetPlanResponse, error) {
	input, err := planInput(req.StartDate, req.HorizonDays)
	if err != nil {
		return nil, err
	}

	result, err := s.PlanningService.GeneratePlan(ctx, input)
	if err != nil {
		return nil, mapError(err)
	}

	transfers := make([]*TransferPlan, 0, len(result.Plans))
	for _, plan := range result.Plans {
		transfers = append(transfers, domainPlanToMessage(plan))
	}

	return &GetPlanResponse{
		StartDate:         result.StartDate.String(),
		HorizonDays:       int32(result.HorizonDays),
		Transfers:         transfers,
		ProjectedInterest: result.ProjectedInterest.StringFixed(2),
		PrimaryAccountId:  optionalID(result.PrimaryAccountID),
		FundingAccountId:  optionalID(result.FundingAccountID),
		Warnings:          result.Warnings,
	}, nil
}

// GetDashboard handles the GetDashboard RPC
func (s *Server) GetDashboard(ctx context.Context, req *GetDashboardRequest) (*GetDashboardResponse, error) {
	input, err := planInput(req.StartDate, req.HorizonDays)
	if err != nil {
		return nil, err
	}

	summary, err := s.DashboardService.GetSummary(ctx, input)
	if err != nil {
		return nil, mapError(err)
	}

	urgent := 0
	for _, plan := range summary.Plan.Plans {
		if plan.Urgent {
			urgent++
		}
	}

	return &GetDashboardResponse{
		TotalAssets:       summary.TotalAssets.StringFixed(2),
		TotalDebt:         summary.TotalDebt.StringFixed(2),
		NetCash:           summary.NetCash.StringFixed(2),
		ProjectedInterest: summary.ProjectedInterest.StringFixed(2),
		AccountCount:      int32(summary.AccountCount),
		CardCount:         int32(summary.CardCount),
		ExpenseCount:      int32(summary.ExpenseCount),
		TransferCount:     int32(len(summary.Plan.Plans)),
		UrgentCount:       int32(urgent),
		Warnings:          summary.Plan.Warnings,
	}, nil
}

// ListAccounts handles the ListAccounts RPC
func (s *Server) ListAccounts(ctx context.Context, req *ListAccountsRequest) (*ListAccountsResponse, error) {
	accounts, err := s.CatalogService.ListAccounts(ctx)
	if err != nil {
		return nil, mapError(err)
	}

	messages := make([]*Account, 0, len(accounts))
	for _, account := range accounts {
		messages = append(messages, domainAccountToMessage(account))
	}

	return &ListAccountsResponse{Accounts: messages}, nil
}

// SaveAccount handles the SaveAccount RPC
func (s *Server) SaveAccount(ctx context.Context, req *SaveAccountRequest) (*SaveAccountResponse, error) {
	if req.Account == nil {
		return nil, status.Error(codes.InvalidArgument, "account is required")
	}

	id, err := parseOptionalID("account id", req.Account.Id)
	if err != nil {
		return nil, err
	}
	apy, err := parseDecimal("apy", req.Account.Apy)
	if err != nil {
		return nil, err
	}
	balance, err := parseDecimal("balance", req.Account.Balance)
	if err != nil {
		return nil, err
	}

	saved, err := s.CatalogService.SaveAccount(ctx, &domain.Account{
		ID:           id,
		Name:         req.Account.Name,
		APY:          apy,
		TransferTime: int(req.Account.TransferTime),
		IsMain:       req.Account.IsMain,
		Balance:      balance,
	})
	if err != nil {
		return nil, mapError(err)
	}

	return &SaveAccountResponse{Account: domainAccountToMessage(saved)}, nil
}

// DeleteAccount handles the DeleteAccount RPC
func (s *Server) DeleteAccount(ctx context.Context, req *DeleteAccountRequest) (*DeleteAccountResponse, error) {
	id, err := parseID("id", req.Id)
	if err != nil {
		return nil, err
	}

	if err := s.CatalogService.DeleteAccount(ctx, id); err != nil {
		return nil, mapError(err)
	}

	return &DeleteAccountResponse{}, nil
}

// ListCreditCards handles the ListCreditCards RPC
func (s *Server) ListCreditCards(ctx context.Context, req *ListCreditCardsRequest) (*ListCreditCardsResponse, error) {
	cards, err := s.CatalogService.ListCreditCards(ctx)
	if err != nil {
		return nil, mapError(err)
	}

	messages := make([]*CreditCard, 0, len(cards))
	for _, card := range cards {
		messages = append(messages, domainCardToMessage(card))
	}

	return &ListCreditCardsResponse{CreditCards: messages}, nil
}

// SaveCreditCard handles the SaveCreditCard RPC
func (s *Server) SaveCreditCard(ctx context.Context, req *SaveCreditCardRequest) (*SaveCreditCardResponse, error) {
	if req.CreditCard == nil {
		return nil, status.Error(codes.InvalidArgument, "credit_card is required")
	}

	id, err := parseOptionalID("credit card id", req.CreditCard.Id)
	if err != nil {
		return nil, err
	}
	balance, err := parseDecimal("balance", req.CreditCard.Balance)
	if err != nil {
		return nil, err
	}
	paymentAccountID, err := parseReference("payment_account_id", req.CreditCard.PaymentAccountId)
	if err != nil {
		return nil, err
	}

	saved, err := s.CatalogService.SaveCreditCard(ctx, &domain.CreditCard{
		ID:               id,
		Name:             req.CreditCard.Name,
		DueDay:           int(req.CreditCard.DueDay),
		StatementDay:     int(req.CreditCard.StatementDay),
		Balance:          balance,
		PaymentAccountID: paymentAccountID,
	})
	if err != nil {
		return nil, mapError(err)
	}

	return &SaveCreditCardResponse{CreditCard: domainCardToMessage(saved)}, nil
}

// DeleteCreditCard handles the DeleteCreditCard RPC
func (s *Server) DeleteCreditCard(ctx context.Context, req *DeleteCreditCardRequest) (*DeleteCreditCardResponse, error) {
	id, err := parseID("id", req.Id)
	if err != nil {
		return nil, err
	}

	if err := s.CatalogService.DeleteCreditCard(ctx, id); err != nil {
		return nil, mapError(err)
	}

	return &DeleteCreditCardResponse{}, nil
}

// ListRecurringExpenses handles the ListRecurringExpenses RPC
func (s *Server) ListRecurringExpenses(ctx context.Context, req *ListRecurringExpensesRequest) (*ListRecurringExpensesResponse, error) {
	expenses, err := s.CatalogService.ListRecurringExpenses(ctx)
	if err != nil {
		return nil, mapError(err)
	}

	messages := make([]*RecurringExpense, 0, len(expenses))
	for _, expense := range expenses {
		messages = append(messages, domainExpenseToMessage(expense))
	}

	return &ListRecurringExpensesResponse{RecurringExpenses: messages}, nil
}

// SaveRecurringExpense handles the SaveRecurringExpense RPC
func (s *Server) SaveRecurringExpense(ctx context.Context, req *SaveRecurringExpenseRequest) (*SaveRecurringExpenseResponse, error) {
	if req.RecurringExpense == nil {
		return nil, status.Error(codes.InvalidArgument, "recurring_expense is required")
	}

	id, err := parseOptionalID("recurring expense id", req.RecurringExpense.Id)
	if err != nil {
		return nil, err
	}
	amount, err := parseDecimal("amount", req.RecurringExpense.Amount)
	if err != nil {
		return nil, err
	}
	paymentAccountID, err := parseReference("payment_account_id", req.RecurringExpense.PaymentAccountId)
	if err != nil {
		return nil, err
	}

	saved, err := s.CatalogService.SaveRecurringExpense(ctx, &domain.RecurringExpense{
		ID:               id,
		Name:             req.RecurringExpense.Name,
		Amount:           amount,
		DueDay:           int(req.RecurringExpense.DueDay),
		PaymentAccountID: paymentAccountID,
	})
	if err != nil {
		return nil, mapError(err)
	}

	return &SaveRecurringExpenseResponse{RecurringExpense: domainExpenseToMessage(saved)}, nil
}

// DeleteRecurringExpense handles the DeleteRecurringExpense RPC
func (s *Server) DeleteRecurringExpense(ctx context.Context, req *DeleteRecurringExpenseRequest) (*DeleteRecurringExpenseResponse, error) {
	id, err := parseID("id", req.Id)
	if err != nil {
		return nil, err
	}

	if err := s.CatalogService.DeleteRecurringExpense(ctx, id); err != nil {
		return nil, mapError(err)
	}

	return &DeleteRecurringExpenseResponse{}, nil
}

// planInput parses the optional start date and horizon shared by GetPlan and GetDashboard
func planInput(startDate string, horizonDays int32) (planning.GeneratePlanInput, error) {
	input := planning.GeneratePlanInput{HorizonDays: int(horizonDays)}
	if startDate != "" {
		start, err := calendar.Parse(startDate)
		if err != nil {
			return input, status.Errorf(codes.InvalidArgument, "invalid start_date format: %v", err)
		}
		input.StartDate = start
	}
	return input, nil
}

func parseID(field, value string) (uuid.UUID, error) {
	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, status.Errorf(codes.InvalidArgument, "invalid %s format: %v", field, err)
	}
	return id, nil
}

// parseOptionalID treats an empty string as "assign a new ID"
func parseOptionalID(field, value string) (uuid.UUID, error) {
	if value == "" {
		return uuid.Nil, nil
	}
	return parseID(field, value)
}

func parseReference(field, value string) (*uuid.UUID, error) {
	if value == "" {
		return nil, nil
	}
	id, err := parseID(field, value)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// parseDecimal treats an empty string as zero
func parseDecimal(field, value string) (decimal.Decimal, error) {
	if value == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, status.Errorf(codes.InvalidArgument, "invalid %s format: %v", field, err)
	}
	return d, nil
}

func optionalID(id uuid.UUID) string {
	if id == uuid.Nil {
		return ""
	}
	return id.String()
}

func optionalReference(id *uuid.UUID) string {
	if id == nil {
		return ""
	}
	return id.String()
}

func domainAccountToMessage(account *domain.Account) *Account {
	return &Account{
		Id:           account.ID.String(),
		Name:         account.Name,
		Apy:          account.APY.String(),
		TransferTime: int32(account.TransferTime),
		IsMain:       account.IsMain,
		Balance:      account.Balance.String(),
	}
}

func domainCardToMessage(card *domain.CreditCard) *CreditCard {
	return &CreditCard{
		Id:               card.ID.String(),
		Name:             card.Name,
		DueDay:           int32(card.DueDay),
		StatementDay:     int32(card.StatementDay),
		Balance:          card.Balance.String(),
		PaymentAccountId: optionalReference(card.PaymentAccountID),
	}
}

func domainExpenseToMessage(expense *domain.RecurringExpense) *RecurringExpense {
	return &RecurringExpense{
		Id:               expense.ID.String(),
		Name:             expense.Name,
		Amount:           expense.Amount.String(),
		DueDay:           int32(expense.DueDay),
		PaymentAccountId: optionalReference(expense.PaymentAccountID),
	}
}

func domainPlanToMessage(plan domain.TransferPlan) *TransferPlan {
	return &TransferPlan{
		Date:          plan.Date.String(),
		FromAccountId: plan.FromAccountID.String(),
		ToAccountId:   plan.ToAccountID.String(),
		Amount:        plan.Amount.String(),
		Reason:        plan.Reason,
		DueDate:       plan.DueDate.String(),
		Urgent:        plan.Urgent,
	}
}

// mapError converts domain errors to gRPC status errors
func mapError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, domain.ErrValidation):
		return status.Errorf(codes.InvalidArgument, "%s", err.Error())
	case errors.Is(err, domain.ErrNotFound):
		return status.Errorf(codes.NotFound, "%s", err.Error())
	case errors.Is(err, context.Canceled):
		return status.Errorf(codes.Canceled, "%s", err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Errorf(codes.DeadlineExceeded, "%s", err.Error())
	}

	// Default to Internal error for unknown errors
	return status.Errorf(codes.Internal, "%s", err.Error())
}
