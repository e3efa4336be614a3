package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/simaogato/sweep-backend/internal/cli"
)

func newPlanCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "plan",
		Short: "Show the transfer schedule for the horizon",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlan(cmd, opts)
		},
	}
}

func runPlan(cmd *cobra.Command, opts *options) error {
	input, err := opts.planInput()
	if err != nil {
		return err
	}

	a, err := opts.open(cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	result, err := a.planning.GeneratePlan(ctx, input)
	if err != nil {
		return err
	}

	accounts, err := a.catalog.ListAccounts(ctx)
	if err != nil {
		return err
	}
	names := make(map[uuid.UUID]string, len(accounts))
	for _, account := range accounts {
		names[account.ID] = account.Name
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out)
	fmt.Fprint(out, cli.RenderPlan(result, names))
	return nil
}
