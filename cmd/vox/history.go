package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/voxledger/vox/internal/cli"
	"github.com/voxledger/vox/internal/service"
)

func historyCmd() *cobra.Command {
	var (
		category string
		limit    int
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent confirmed transactions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			store, err := openStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			txns, err := store.GetTransactions(ctx, service.TransactionFilter{
				Category: category,
				Limit:    limit,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(txns) == 0 {
				fmt.Fprintln(out, cli.SubtleStyle.Render("No transactions recorded yet."))
				return nil
			}
			for _, txn := range txns {
				sign := "-"
				style := cli.AmountStyle
				if !txn.IsExpense {
					sign = "+"
					style = cli.IncomeStyle
				}
				fmt.Fprintf(out, "%s  %s  %-6s %s\n",
					cli.SubtleStyle.Render(txn.Date.Format("2006-01-02 15:04")),
					style.Render(sign+"¥"+txn.Amount.StringFixed(2)),
					txn.Category,
					txn.Note)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "only show one category")
	cmd.Flags().IntVar(&limit, "limit", 20, "maximum number of transactions")
	return cmd
}
