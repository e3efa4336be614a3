package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/simaogato/sweep-backend/internal/cli"
)

func newListCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List accounts, credit cards and recurring expenses",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.open(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			accounts, err := a.catalog.ListAccounts(ctx)
			if err != nil {
				return err
			}
			cards, err := a.catalog.ListCreditCards(ctx)
			if err != nil {
				return err
			}
			expenses, err := a.catalog.ListRecurringExpenses(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out)

			if len(accounts)+len(cards)+len(expenses) == 0 {
				fmt.Fprintf(out, "  %s is empty. Run `sweepctl init` to create sample data.\n", a.store.Path())
				return nil
			}

			accountRows := make([][]string, 0, len(accounts))
			for _, account := range accounts {
				role := ""
				if account.IsMain {
					role = "primary"
				}
				accountRows = append(accountRows, []string{
					account.Name,
					cli.FormatRate(account.APY),
					cli.FormatDays(account.TransferTime),
					cli.FormatMoney(account.Balance),
					role,
				})
			}
			fmt.Fprint(out, cli.RenderTable(cli.Table{
				Title:   "Accounts",
				Headers: []string{"Name", "APY", "Transfer", "Balance", "Role"},
				Rows:    accountRows,
			}))
			fmt.Fprintln(out)

			obligationRows := make([][]string, 0, len(cards)+len(expenses))
			for _, card := range cards {
				obligationRows = append(obligationRows, []string{card.Name, "card", fmt.Sprintf("%d", card.DueDay), cli.FormatMoney(card.Balance)})
			}
			for _, expense := range expenses {
				obligationRows = append(obligationRows, []string{expense.Name, "expense", fmt.Sprintf("%d", expense.DueDay), cli.FormatMoney(expense.Amount)})
			}
			fmt.Fprint(out, cli.RenderTable(cli.Table{
				Title:   "Obligations",
				Headers: []string{"Name", "Kind", "Due day", "Amount"},
				Rows:    obligationRows,
			}))

			return nil
		},
	}
}
