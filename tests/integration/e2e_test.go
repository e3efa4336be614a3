//go:build integration

package integration

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	grpcadapter "github.com/simaogato/sweep-backend/internal/adapter/grpc"
	"github.com/simaogato/sweep-backend/internal/adapter/repository/postgres"
)

// These tests expect a server started with STORAGE_BACKEND=postgres against the
// same database as DB_CONN_STR / DB_* and listening on GRPC_ADDRESS.

var (
	db         *postgres.DB
	grpcClient *grpcadapter.SweepServiceClient
	grpcConn   *grpc.ClientConn
)

// TestMain sets up the test environment
func TestMain(m *testing.M) {
	ctx := context.Background()

	// 1. Connect to Database
	var err error
	db, err = postgres.NewDB(ctx, getDBConnectionString())
	if err != nil {
		panic(fmt.Sprintf("Failed to connect to database: %v", err))
	}

	if err := db.EnsureSchema(ctx); err != nil {
		panic(fmt.Sprintf("Failed to ensure schema: %v", err))
	}

	// 2. Connect to gRPC Server
	grpcConn, err = grpc.NewClient(getGRPCAddress(), grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		panic(fmt.Sprintf("Failed to connect to gRPC server: %v", err))
	}

	grpcClient = grpcadapter.NewSweepServiceClient(grpcConn)

	code := m.Run()

	grpcConn.Close()
	db.Close()
	os.Exit(code)
}

// resetTables clears all rows so each test starts from an empty catalog
func resetTables(t *testing.T) {
	t.Helper()
	_, err := db.ExecContext(context.Background(), `TRUNCATE accounts, credit_cards, recurring_expenses`)
	require.NoError(t, err)
}

func getAuthContext() context.Context {
	md := metadata.New(map[string]string{
		"authorization": getAPIToken(),
	})
	return metadata.NewOutgoingContext(context.Background(), md)
}

// getDBConnectionString returns the database connection string from environment or defaults
func getDBConnectionString() string {
	if connStr := os.Getenv("DB_CONN_STR"); connStr != "" {
		return connStr
	}

	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		getEnv("DB_HOST", "localhost"),
		getEnv("DB_PORT", "5432"),
		getEnv("DB_USER", "postgres"),
		getEnv("DB_PASSWORD", "postgres"),
		getEnv("DB_NAME", "sweep"),
	)
}

func getGRPCAddress() string {
	return getEnv("GRPC_ADDRESS", "localhost:8080")
}

func getAPIToken() string {
	return getEnv("API_TOKEN", "dev-token")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// TestEndToEndFlow builds a catalog over gRPC and checks the stored rows and the plan
func TestEndToEndFlow(t *testing.T) {
	resetTables(t)
	ctx := getAuthContext()

	// 1. Accounts
	checking, err := grpcClient.SaveAccount(ctx, &grpcadapter.SaveAccountRequest{Account: &grpcadapter.Account{
		Name:    "Chase Checking",
		Apy:     "0",
		IsMain:  true,
		Balance: "2000",
	}})
	require.NoError(t, err, "SaveAccount (checking) should succeed")

	savings, err := grpcClient.SaveAccount(ctx, &grpcadapter.SaveAccountRequest{Account: &grpcadapter.Account{
		Name:         "SoFi Savings",
		Apy:          "0.036",
		TransferTime: 2,
		Balance:      "15000",
	}})
	require.NoError(t, err, "SaveAccount (savings) should succeed")

	// 2. Obligations
	_, err = grpcClient.SaveCreditCard(ctx, &grpcadapter.SaveCreditCardRequest{CreditCard: &grpcadapter.CreditCard{
		Name:             "Chase Sapphire",
		DueDay:           5,
		Balance:          "1200",
		PaymentAccountId: checking.Account.Id,
	}})
	require.NoError(t, err, "SaveCreditCard should succeed")

	_, err = grpcClient.SaveRecurringExpense(ctx, &grpcadapter.SaveRecurringExpenseRequest{RecurringExpense: &grpcadapter.RecurringExpense{
		Name:   "Rent",
		Amount: "2000",
		DueDay: 1,
	}})
	require.NoError(t, err, "SaveRecurringExpense should succeed")

	// 3. Verify the rows landed in Postgres
	var balance string
	err = db.QueryRowContext(context.Background(), `SELECT balance FROM accounts WHERE id = $1`, savings.Account.Id).Scan(&balance)
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("15000").Equal(decimal.RequireFromString(balance)))

	var cardCount int
	err = db.QueryRowContext(context.Background(), `SELECT COUNT(*) FROM credit_cards`).Scan(&cardCount)
	require.NoError(t, err)
	assert.Equal(t, 1, cardCount)

	// 4. Plan
	plan, err := grpcClient.GetPlan(ctx, &grpcadapter.GetPlanRequest{StartDate: "2023-10-27", HorizonDays: 30})
	require.NoError(t, err, "GetPlan should succeed")
	assert.Empty(t, plan.Warnings)
	assert.Equal(t, savings.Account.Id, plan.FundingAccountId)
	assert.Equal(t, checking.Account.Id, plan.PrimaryAccountId)

	require.Len(t, plan.Transfers, 2)
	assert.Equal(t, "2023-10-29", plan.Transfers[0].Date)
	assert.Equal(t, "2023-11-01", plan.Transfers[0].DueDate)
	assert.Equal(t, "2023-11-02", plan.Transfers[1].Date)
	assert.Equal(t, "2023-11-05", plan.Transfers[1].DueDate)

	// 5. Dashboard
	dashboard, err := grpcClient.GetDashboard(ctx, &grpcadapter.GetDashboardRequest{StartDate: "2023-10-27"})
	require.NoError(t, err, "GetDashboard should succeed")
	assert.Equal(t, "17000.00", dashboard.TotalAssets)
	assert.Equal(t, "1200.00", dashboard.TotalDebt)
	assert.Equal(t, "15800.00", dashboard.NetCash)
	assert.Equal(t, plan.ProjectedInterest, dashboard.ProjectedInterest)
}

// TestPrimaryDemotion checks that only one account stays primary in the database
func TestPrimaryDemotion(t *testing.T) {
	resetTables(t)
	ctx := getAuthContext()

	for _, name := range []string{"Old Checking", "New Checking"} {
		_, err := grpcClient.SaveAccount(ctx, &grpcadapter.SaveAccountRequest{Account: &grpcadapter.Account{
			Name:   name,
			IsMain: true,
		}})
		require.NoError(t, err)
	}

	var primaryName string
	err := db.QueryRowContext(context.Background(), `SELECT name FROM accounts WHERE is_main`).Scan(&primaryName)
	require.NoError(t, err, "exactly one primary row expected")
	assert.Equal(t, "New Checking", primaryName)
}

func TestNegativeScenarios(t *testing.T) {
	resetTables(t)
	ctx := getAuthContext()

	t.Run("MissingToken", func(t *testing.T) {
		_, err := grpcClient.ListAccounts(context.Background(), &grpcadapter.ListAccountsRequest{})
		require.Error(t, err)
		assert.Equal(t, codes.Unauthenticated, status.Code(err))
	})

	t.Run("InvalidAmount", func(t *testing.T) {
		_, err := grpcClient.SaveRecurringExpense(ctx, &grpcadapter.SaveRecurringExpenseRequest{RecurringExpense: &grpcadapter.RecurringExpense{
			Name:   "Gym",
			Amount: "-10",
			DueDay: 3,
		}})
		require.Error(t, err)
		assert.Equal(t, codes.InvalidArgument, status.Code(err))
	})

	t.Run("NonExistentAccount", func(t *testing.T) {
		_, err := grpcClient.DeleteAccount(ctx, &grpcadapter.DeleteAccountRequest{Id: uuid.New().String()})
		require.Error(t, err)
		assert.Equal(t, codes.NotFound, status.Code(err))
	})

	t.Run("MalformedUUID", func(t *testing.T) {
		_, err := grpcClient.DeleteCreditCard(ctx, &grpcadapter.DeleteCreditCardRequest{Id: "not-a-uuid"})
		require.Error(t, err)
		assert.Equal(t, codes.InvalidArgument, status.Code(err))
	})

	t.Run("EmptyCatalogPlan", func(t *testing.T) {
		plan, err := grpcClient.GetPlan(ctx, &grpcadapter.GetPlanRequest{})
		require.NoError(t, err)
		assert.Empty(t, plan.Transfers)
		assert.NotEmpty(t, plan.Warnings)
	})
}
