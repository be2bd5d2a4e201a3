package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/voxledger/vox/internal/catalog"
	"github.com/voxledger/vox/internal/cli"
)

func categoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Manage the category catalog",
	}
	cmd.AddCommand(categoriesListCmd())
	cmd.AddCommand(categoriesAddCmd())
	cmd.AddCommand(categoriesRemoveCmd())
	return cmd
}

func categoriesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List preset, income, and custom categories",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			store, err := openStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, cli.TitleStyle.Render("Expense categories"))
			for _, name := range catalog.PresetExpenseCategories() {
				fmt.Fprintf(out, "  %s\n", name)
			}

			fmt.Fprintln(out, cli.TitleStyle.Render("Income categories"))
			for _, name := range catalog.IncomeCategories() {
				fmt.Fprintf(out, "  %s\n", name)
			}

			custom, err := store.ListCustomCategories(ctx)
			if err != nil {
				return err
			}
			if len(custom) > 0 {
				fmt.Fprintln(out, cli.TitleStyle.Render("Custom categories"))
				for _, c := range custom {
					fmt.Fprintf(out, "  %s %s\n", c.Name,
						cli.SubtleStyle.Render(c.CreatedAt.Format("2006-01-02")))
				}
			}
			return nil
		},
	}
}

func categoriesAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <name>",
		Short: "Add a custom category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store, err := openStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			c, err := store.AddCustomCategory(ctx, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), cli.SuccessStyle.Render(
				fmt.Sprintf("Added custom category %q.", c.Name)))
			return nil
		},
	}
}

func categoriesRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <name>",
		Short: "Remove a custom category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store, err := openStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.RemoveCustomCategory(ctx, args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), cli.SuccessStyle.Render(
				fmt.Sprintf("Removed custom category %q.", args[0])))
			return nil
		},
	}
}
