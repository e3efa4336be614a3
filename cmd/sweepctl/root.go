package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/simaogato/sweep-backend/internal/adapter/repository/tomlfile"
	"github.com/simaogato/sweep-backend/internal/calendar"
	"github.com/simaogato/sweep-backend/internal/logging"
	"github.com/simaogato/sweep-backend/internal/usecase/catalog"
	"github.com/simaogato/sweep-backend/internal/usecase/dashboard"
	"github.com/simaogato/sweep-backend/internal/usecase/optimizer"
	"github.com/simaogato/sweep-backend/internal/usecase/planning"
)

// options are the persistent flags shared by every subcommand
type options struct {
	file    string
	start   string
	days    int
	verbose bool

	// now is overridden in tests
	now func() time.Time
}

// app is everything a subcommand needs, opened from the snapshot file
type app struct {
	store     *tomlfile.Store
	catalog   *catalog.CatalogService
	planning  *planning.PlanningService
	dashboard *dashboard.DashboardService
}

func newRootCmd() *cobra.Command {
	opts := &options{now: time.Now}

	root := &cobra.Command{
		Use:   "sweepctl",
		Short: "Plan transfers from savings to cover upcoming bills",
		Long: "Keep money in the highest-yield account for as long as possible and\n" +
			"move it to checking just in time for card payments and recurring bills.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlan(cmd, opts)
		},
	}

	defaultFile := os.Getenv("SNAPSHOT_PATH")
	if defaultFile == "" {
		defaultFile = "./data/sweep.toml"
	}

	root.PersistentFlags().StringVarP(&opts.file, "file", "f", defaultFile, "Snapshot file with accounts, cards and expenses")
	root.PersistentFlags().StringVarP(&opts.start, "start", "s", "", "Plan start date (YYYY-MM-DD, default today)")
	root.PersistentFlags().IntVarP(&opts.days, "days", "n", 30, "Planning horizon in days")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log planner diagnostics to stderr")

	root.AddCommand(
		newPlanCmd(opts),
		newSummaryCmd(opts),
		newListCmd(opts),
		newInitCmd(opts),
	)

	return root
}

// open loads the snapshot and wires the services on top of it
func (o *options) open(stderr io.Writer) (*app, error) {
	if o.days < 1 {
		return nil, fmt.Errorf("--days must be at least 1, got %d", o.days)
	}
	if o.days > optimizer.MaxHorizonDays {
		return nil, fmt.Errorf("--days must be at most %d, got %d", optimizer.MaxHorizonDays, o.days)
	}

	store, err := tomlfile.Open(o.file)
	if err != nil {
		return nil, err
	}

	level := logrus.ErrorLevel.String()
	if o.verbose {
		level = logrus.DebugLevel.String()
	}
	logger := logging.NewWithOutput(stderr, level, "text")

	planningService := planning.NewPlanningService(store.Accounts(), store.CreditCards(), store.RecurringExpenses(), logger)
	planningService.Now = o.now
	planningService.HorizonDays = o.days

	return &app{
		store:     store,
		catalog:   catalog.NewCatalogService(store.Accounts(), store.CreditCards(), store.RecurringExpenses()),
		planning:  planningService,
		dashboard: dashboard.NewDashboardService(planningService),
	}, nil
}

// planInput turns --start and --days into a planning request
func (o *options) planInput() (planning.GeneratePlanInput, error) {
	input := planning.GeneratePlanInput{HorizonDays: o.days}
	if o.start != "" {
		start, err := calendar.Parse(o.start)
		if err != nil {
			return input, fmt.Errorf("--start: %w", err)
		}
		input.StartDate = start
	}
	return input, nil
}
