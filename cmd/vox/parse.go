package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/voxledger/vox/internal/anomaly"
	"github.com/voxledger/vox/internal/cli"
	"github.com/voxledger/vox/internal/config"
	"github.com/voxledger/vox/internal/model"
	"github.com/voxledger/vox/internal/parse"
	"github.com/voxledger/vox/internal/service"
)

func parseCmd() *cobra.Command {
	var save bool
	var nowFlag string

	cmd := &cobra.Command{
		Use:   "parse <transcript>",
		Short: "Parse a voice transcript into transactions",
		Long: `Parse a speech-to-text transcript into one or more transaction drafts.

With --save, every complete draft is confirmed as-is: persisted, folded
into the learning statistics, and checked for anomalies. Anomalies are
advisory and never block saving.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			transcript := strings.Join(args, " ")

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

			customNames, err := customCategoryNames(ctx, store)
			if err != nil {
				return err
			}

			parser := parse.NewParser(customNames, parse.WithNow(func() time.Time { return now }))
			drafts := parser.Parse(transcript)
			cli.RenderDrafts(cmd.OutOrStdout(), drafts)

			if !save {
				return nil
			}
			return saveDrafts(cmd, store, drafts)
		},
	}

	cmd.Flags().BoolVar(&save, "save", false, "confirm and persist every complete draft")
	cmd.Flags().StringVar(&nowFlag, "now", "", "override the reference time (RFC 3339)")
	return cmd
}

func saveDrafts(cmd *cobra.Command, store service.Storage, drafts []model.TransactionDraft) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	learningStore, err := loadLearningStore(ctx, store)
	if err != nil {
		return err
	}
	custom, err := store.ListCustomCategories(ctx)
	if err != nil {
		return err
	}
	anomalyCfg := config.AnomalyDetection()
	detector := anomaly.NewDetector(anomalyCfg)
	categories := fullCatalog(custom)

	saved := 0
	for _, d := range drafts {
		if d.Amount == nil {
			continue
		}
		date := time.Now()
		if d.Date != nil {
			date = *d.Date
		}
		txn := model.Transaction{
			ID:        uuid.New().String(),
			Date:      date,
			Category:  d.Category,
			Note:      d.Note,
			Amount:    *d.Amount,
			IsExpense: d.IsExpense,
		}

		if err := store.SaveTransaction(ctx, &txn); err != nil {
			return err
		}
		learningStore.Learn(txn)
		saved++

		history, err := store.GetTransactions(ctx, service.TransactionFilter{Category: txn.Category})
		if err != nil {
			return err
		}
		near, err := store.GetTransactionsNear(ctx, txn.Date, anomalyCfg.DuplicateWindow)
		if err != nil {
			return err
		}
		if report := detector.Detect(txn, append(history, near...), categories); report != nil {
			cli.RenderAnomaly(out, report)
		}
	}

	snap := learningStore.Snapshot()
	if err := store.SaveLearnedState(ctx, &snap); err != nil {
		return err
	}

	fmt.Fprintln(out, cli.SuccessStyle.Render(fmt.Sprintf("Saved %d transaction(s).", saved)))
	return nil
}
