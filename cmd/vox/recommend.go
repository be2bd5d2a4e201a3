package main

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/voxledger/vox/internal/cli"
	"github.com/voxledger/vox/internal/recommend"
)

func recommendCmd() *cobra.Command {
	var (
		amountFlag  string
		description string
		nowFlag     string
		income      bool
	)

	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Suggest categories for an entry being composed",
		Long: `Score candidate categories for a manual entry against your learned
habits. An empty result just means there is not enough history yet.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			amount, err := decimal.NewFromString(amountFlag)
			if err != nil {
				return fmt.Errorf("invalid --amount %q: %w", amountFlag, err)
			}
			now, err := parseNowFlag(nowFlag)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			store, err := openStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			learningStore, err := loadLearningStore(ctx, store)
			if err != nil {
				return err
			}

			engine := recommend.NewEngine(learningStore)
			recs := engine.Recommend(amount, description, now, !income)
			cli.RenderRecommendations(cmd.OutOrStdout(), recs)
			return nil
		},
	}

	cmd.Flags().StringVar(&amountFlag, "amount", "0", "amount being entered")
	cmd.Flags().StringVar(&description, "description", "", "free-text description so far")
	cmd.Flags().StringVar(&nowFlag, "now", "", "override the reference time (RFC 3339)")
	cmd.Flags().BoolVar(&income, "income", false, "entry is income, not an expense")
	return cmd
}
