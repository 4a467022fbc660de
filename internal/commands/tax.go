package commands

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/finmentor-dev/finmentor/internal/currency"
	"github.com/finmentor-dev/finmentor/internal/tax"
)

func newTaxCommand() *cobra.Command {
	var income float64
	var regime string
	var noDeductions bool
	var currencyCode string

	cmd := &cobra.Command{
		Use:   "tax",
		Short: "Estimate income tax liability",
		RunE: func(cmd *cobra.Command, args []string) error {
			deductions := tax.DefaultDeductions()
			if noDeductions {
				deductions = nil
			}

			assessment, err := tax.Compute(decimal.NewFromFloat(income), tax.Regime(regime), deductions)
			if err != nil {
				return err
			}

			printMarkdown(taxMarkdown(assessment, deductions, currencyCode))
			return nil
		},
	}

	cmd.Flags().Float64Var(&income, "income", 1_200_000, "gross annual income")
	cmd.Flags().StringVar(&regime, "regime", "old", "tax regime: old or new")
	cmd.Flags().BoolVar(&noDeductions, "no-deductions", false, "skip the sample deduction set")
	cmd.Flags().StringVar(&currencyCode, "currency", "INR", "ISO 4217 display currency")

	return cmd
}

func taxMarkdown(a tax.Assessment, deductions []tax.Deduction, code string) string {
	var b strings.Builder
	b.WriteString("# Tax Planner\n\n")
	fmt.Fprintf(&b, "| | |\n|---|---|\n")
	fmt.Fprintf(&b, "| Annual Income | %s |\n", currency.Format(a.GrossIncome, code))
	fmt.Fprintf(&b, "| Total Deductions | %s |\n", currency.Format(a.TotalDeductions, code))
	fmt.Fprintf(&b, "| Taxable Income | %s |\n", currency.Format(a.TaxableIncome, code))
	fmt.Fprintf(&b, "| Tax Liability | %s |\n\n", currency.Format(a.TotalTax, code))

	if len(deductions) > 0 {
		b.WriteString("## Deductions\n\n| Section | Description | Invested | Limit |\n|---|---|---|---|\n")
		for _, d := range deductions {
			fmt.Fprintf(&b, "| %s | %s | %s | %s |\n",
				d.Section, d.Description,
				currency.Format(d.Invested, code),
				currency.Format(d.Limit, code))
		}
		fmt.Fprintf(&b, "\nRemaining headroom: %s\n", currency.Format(tax.PotentialSavings(deductions), code))
	}
	return b.String()
}
