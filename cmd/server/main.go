package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	grpcadapter "github.com/simaogato/sweep-backend/internal/adapter/grpc"
	"github.com/simaogato/sweep-backend/internal/adapter/repository/memory"
	"github.com/simaogato/sweep-backend/internal/adapter/repository/postgres"
	"github.com/simaogato/sweep-backend/internal/adapter/repository/tomlfile"
	"github.com/simaogato/sweep-backend/internal/config"
	"github.com/simaogato/sweep-backend/internal/domain"
	"github.com/simaogato/sweep-backend/internal/logging"
	"github.com/simaogato/sweep-backend/internal/usecase/catalog"
	"github.com/simaogato/sweep-backend/internal/usecase/dashboard"
	"github.com/simaogato/sweep-backend/internal/usecase/planning"
	"github.com/simaogato/sweep-backend/internal/usecase/seeder"
)

// repositories groups the storage backend chosen at startup
type repositories struct {
	accounts domain.AccountRepository
	cards    domain.CreditCardRepository
	expenses domain.RecurringExpenseRepository
	close    func() error
}

func main() {
	// 1. Load configuration and logger
	cfg := config.Load()
	logger := logging.New(cfg.LogLevel, cfg.LogFormat)

	if err := cfg.Validate(); err != nil {
		logger.Fatalf("Invalid configuration: %v", err)
	}

	ctx := context.Background()

	// 2. Open storage
	repos, err := openRepositories(ctx, cfg, logger)
	if err != nil {
		logger.Fatalf("Failed to open %s storage: %v", cfg.StorageBackend, err)
	}
	defer func() {
		if err := repos.close(); err != nil {
			logger.WithError(err).Warn("Failed to close storage")
		}
	}()

	// 3. Seed demo data when asked
	if cfg.SeedDemo {
		seeded, err := seeder.NewDemoSeeder(repos.accounts, repos.cards, repos.expenses).Seed(ctx)
		if err != nil {
			logger.Fatalf("Failed to seed demo data: %v", err)
		}
		logger.WithField("seeded", seeded).Info("Demo seeder finished")
	}

	// 4. Initialize Services (Use Cases)
	catalogService := catalog.NewCatalogService(repos.accounts, repos.cards, repos.expenses)
	planningService := planning.NewPlanningService(repos.accounts, repos.cards, repos.expenses, logger)
	planningService.HorizonDays = cfg.HorizonDays
	dashboardService := dashboard.NewDashboardService(planningService)

	// 5. Start gRPC Server
	grpcServer := grpclib.NewServer(
		grpclib.ChainUnaryInterceptor(
			grpcadapter.LoggingInterceptor(logger),
			grpcadapter.AuthInterceptor(cfg.APIToken),
		),
	)

	grpcadapter.RegisterSweepServiceServer(grpcServer, grpcadapter.NewServer(catalogService, planningService, dashboardService))

	healthServer := health.NewServer()
	healthServer.SetServingStatus(grpcadapter.ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(grpcServer, healthServer)

	reflection.Register(grpcServer)

	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		logger.Fatalf("Failed to listen on %s: %v", cfg.GRPCAddr, err)
	}

	go func() {
		logger.WithFields(logrus.Fields{
			"addr":    cfg.GRPCAddr,
			"storage": cfg.StorageBackend,
			"horizon": cfg.HorizonDays,
		}).Info("gRPC server listening")
		if err := grpcServer.Serve(lis); err != nil {
			logger.Fatalf("Failed to serve gRPC server: %v", err)
		}
	}()

	// Graceful shutdown
	waitForShutdown(grpcServer, healthServer, logger)
}

// openRepositories builds the repositories for the configured backend
func openRepositories(ctx context.Context, cfg *config.Config, logger logrus.FieldLogger) (*repositories, error) {
	switch cfg.StorageBackend {
	case config.BackendPostgres:
		db, err := connectWithRetry(ctx, cfg.DBConnStr, 5, 2*time.Second, logger)
		if err != nil {
			return nil, err
		}
		if err := db.EnsureSchema(ctx); err != nil {
			db.Close()
			return nil, err
		}
		return &repositories{
			accounts: postgres.NewAccountRepository(db),
			cards:    postgres.NewCreditCardRepository(db),
			expenses: postgres.NewRecurringExpenseRepository(db),
			close:    db.Close,
		}, nil

	case config.BackendTOML:
		store, err := tomlfile.Open(cfg.SnapshotPath)
		if err != nil {
			return nil, err
		}
		logger.WithField("path", store.Path()).Info("Using snapshot file")
		return &repositories{
			accounts: store.Accounts(),
			cards:    store.CreditCards(),
			expenses: store.RecurringExpenses(),
			close:    func() error { return store.Flush(context.Background()) },
		}, nil

	case config.BackendMemory:
		return &repositories{
			accounts: memory.NewAccountRepository(),
			cards:    memory.NewCreditCardRepository(),
			expenses: memory.NewRecurringExpenseRepository(),
			close:    func() error { return nil },
		}, nil
	}

	return nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
}

// connectWithRetry waits for Postgres to accept connections
func connectWithRetry(ctx context.Context, connStr string, attempts int, delay time.Duration, logger logrus.FieldLogger) (*postgres.DB, error) {
	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		db, err := postgres.NewDB(ctx, connStr)
		if err == nil {
			return db, nil
		}
		lastErr = err
		logger.WithError(err).WithField("attempt", attempt).Warn("Database not ready")
		time.Sleep(delay)
	}
	return nil, lastErr
}

// waitForShutdown waits for SIGTERM or SIGINT and gracefully shuts down the server
func waitForShutdown(grpcServer *grpclib.Server, healthServer *health.Server, logger logrus.FieldLogger) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	sig := <-sigChan
	logger.WithField("signal", sig.String()).Info("Shutting down gracefully")

	healthServer.Shutdown()
	grpcServer.GracefulStop()
	logger.Info("gRPC server stopped")
}
