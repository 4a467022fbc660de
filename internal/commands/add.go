package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/finmentor-dev/finmentor/internal/auditlog"
	"github.com/finmentor-dev/finmentor/internal/currency"
	"github.com/finmentor-dev/finmentor/internal/model"
)

func newAddCommand() *cobra.Command {
	var ledgerDir string
	var merchant string
	var amountStr string
	var category string
	var income bool

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a transaction manually",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, cfg, st, err := openLedger(ledgerDir)
			if err != nil {
				return err
			}

			amount, err := decimal.NewFromString(amountStr)
			if err != nil {
				return fmt.Errorf("parsing amount %q: %w", amountStr, err)
			}
			if amount.IsZero() {
				return fmt.Errorf("amount must be non-zero")
			}
			// Manual entries are expenses unless flagged as income.
			amount = amount.Abs()
			if !income {
				amount = amount.Neg()
			}

			tx := model.Transaction{
				Merchant: merchant,
				Date:     time.Now().Format("Jan 2"),
				Amount:   amount,
				Category: category,
				Icon:     model.IconForCategory(category),
			}

			stored, err := st.Append(tx)
			if err != nil {
				return err
			}

			entry := auditlog.Entry{
				Timestamp: time.Now(),
				Action:    "add",
				Details:   merchant,
				Count:     1,
				Status:    "recorded",
			}
			if logErr := auditlog.Append(dir, []auditlog.Entry{entry}); logErr != nil {
				fmt.Fprintf(os.Stderr, "warning: failed to write activity log: %v\n", logErr)
			}

			commitLedger(dir, cfg, "add: "+merchant)

			fmt.Printf("Recorded %s %s (%s)\n", merchant, currency.Format(stored.Amount, cfg.Currency.Code), stored.Category)
			return nil
		},
	}

	addLedgerFlag(cmd, &ledgerDir)
	cmd.Flags().StringVar(&merchant, "merchant", "", "merchant or payee (required)")
	_ = cmd.MarkFlagRequired("merchant")
	cmd.Flags().StringVar(&amountStr, "amount", "", "amount in major units (required)")
	_ = cmd.MarkFlagRequired("amount")
	cmd.Flags().StringVar(&category, "category", "Dining", "spending category")
	cmd.Flags().BoolVar(&income, "income", false, "record as income instead of expense")

	return cmd
}
