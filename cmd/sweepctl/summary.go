package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/simaogato/sweep-backend/internal/cli"
)

func newSummaryCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Totals for assets, card debt and projected interest",
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := opts.planInput()
			if err != nil {
				return err
			}

			a, err := opts.open(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			summary, err := a.dashboard.GetSummary(cmd.Context(), input)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out)
			fmt.Fprint(out, cli.RenderSummary(summary))
			return nil
		},
	}
}
