package main

import (
	"fmt"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/voxledger/vox/internal/cli"
	"github.com/voxledger/vox/internal/learning"
	"github.com/voxledger/vox/internal/service"
)

func relearnCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "relearn",
		Short: "Rebuild learning statistics from stored history",
		Long: `Replay every stored transaction through a fresh learning store and
persist the result. Useful after importing data or upgrading.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			store, err := openStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			txns, err := store.GetTransactions(ctx, service.TransactionFilter{})
			if err != nil {
				return err
			}

			// GetTransactions returns newest first; learning wants
			// chronological order so streaks come out right.
			learningStore := learning.NewStore()
			bar := progressbar.Default(int64(len(txns)), "relearning")
			for i := len(txns) - 1; i >= 0; i-- {
				learningStore.Learn(txns[i])
				_ = bar.Add(1)
			}

			snap := learningStore.Snapshot()
			if err := store.SaveLearnedState(ctx, &snap); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), cli.SuccessStyle.Render(
				fmt.Sprintf("Relearned from %d transaction(s).", len(txns))))
			return nil
		},
	}
}
