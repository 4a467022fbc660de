package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/finmentor-dev/finmentor/internal/currency"
)

func newListCommand() *cobra.Command {
	var ledgerDir string
	var filter string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List transactions",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, cfg, st, err := openLedger(ledgerDir)
			if err != nil {
				return err
			}

			needle := strings.ToLower(filter)
			shown := 0
			for _, tx := range st.Transactions() {
				if needle != "" &&
					!strings.Contains(strings.ToLower(tx.Merchant), needle) &&
					!strings.Contains(strings.ToLower(tx.Category), needle) {
					continue
				}
				fmt.Printf("%-14s %-28s %-14s %s\n",
					tx.Date, tx.Merchant, tx.Category,
					currency.Format(tx.Amount, cfg.Currency.Code))
				shown++
			}
			if shown == 0 {
				fmt.Println("No transactions found.")
			}
			return nil
		},
	}

	addLedgerFlag(cmd, &ledgerDir)
	cmd.Flags().StringVar(&filter, "filter", "", "show only merchants/categories containing this text")

	return cmd
}

func newBudgetsCommand() *cobra.Command {
	var ledgerDir string

	cmd := &cobra.Command{
		Use:   "budgets",
		Short: "Show budget progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, cfg, st, err := openLedger(ledgerDir)
			if err != nil {
				return err
			}

			for _, b := range st.Budgets() {
				pct := int64(0)
				if b.Limit.IsPositive() {
					pct = b.Spent.Mul(hundred).Div(b.Limit).Round(0).IntPart()
				}
				fmt.Printf("%-14s %s of %s (%d%%)\n",
					b.Category,
					currency.Format(b.Spent, cfg.Currency.Code),
					currency.Format(b.Limit, cfg.Currency.Code),
					pct)
			}
			return nil
		},
	}

	addLedgerFlag(cmd, &ledgerDir)
	return cmd
}

func newGoalsCommand() *cobra.Command {
	var ledgerDir string

	cmd := &cobra.Command{
		Use:   "goals",
		Short: "Show savings goal progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, cfg, st, err := openLedger(ledgerDir)
			if err != nil {
				return err
			}

			for _, g := range st.Goals() {
				pct := int64(0)
				if g.Target.IsPositive() {
					pct = g.Current.Mul(hundred).Div(g.Target).Round(0).IntPart()
				}
				fmt.Printf("%-14s %s of %s (%d%%)\n",
					g.Name,
					currency.Format(g.Current, cfg.Currency.Code),
					currency.Format(g.Target, cfg.Currency.Code),
					pct)
			}
			return nil
		},
	}

	addLedgerFlag(cmd, &ledgerDir)
	return cmd
}
