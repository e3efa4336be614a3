package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/simaogato/sweep-backend/internal/usecase/seeder"
)

func newInitCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write the sample accounts and bills to an empty snapshot file",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.open(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			seeded, err := seeder.NewDemoSeeder(a.store.Accounts(), a.store.CreditCards(), a.store.RecurringExpenses()).Seed(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if !seeded {
				fmt.Fprintf(out, "%s already has data; nothing written\n", a.store.Path())
				return nil
			}
			fmt.Fprintf(out, "Wrote sample data to %s\n", a.store.Path())
			return nil
		},
	}
}
