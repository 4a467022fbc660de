package commands

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/finmentor-dev/finmentor/internal/currency"
	"github.com/finmentor-dev/finmentor/internal/loan"
)

func newEMICommand() *cobra.Command {
	var principal float64
	var rate float64
	var years float64
	var currencyCode string

	cmd := &cobra.Command{
		Use:   "emi",
		Short: "Calculate a loan EMI and first-year amortization preview",
		RunE: func(cmd *cobra.Command, args []string) error {
			sched, err := loan.Amortize(
				decimal.NewFromFloat(principal),
				decimal.NewFromFloat(rate),
				decimal.NewFromFloat(years),
			)
			if err != nil {
				return err
			}

			printMarkdown(emiMarkdown(sched, currencyCode))
			return nil
		},
	}

	cmd.Flags().Float64Var(&principal, "principal", 5_000_000, "loan amount")
	cmd.Flags().Float64Var(&rate, "rate", 8.5, "annual interest rate in percent")
	cmd.Flags().Float64Var(&years, "years", 20, "tenure in years")
	cmd.Flags().StringVar(&currencyCode, "currency", "INR", "ISO 4217 display currency")

	return cmd
}

func emiMarkdown(sched loan.Schedule, code string) string {
	var b strings.Builder
	b.WriteString("# EMI Calculator\n\n")
	fmt.Fprintf(&b, "| | |\n|---|---|\n")
	fmt.Fprintf(&b, "| Monthly EMI | %s |\n", currency.Format(sched.MonthlyPayment, code))
	fmt.Fprintf(&b, "| Total Payment | %s |\n", currency.Format(sched.TotalPayment, code))
	fmt.Fprintf(&b, "| Total Interest | %s |\n", currency.Format(sched.TotalInterest, code))
	fmt.Fprintf(&b, "| Tenure | %d months |\n\n", sched.TotalMonths)

	b.WriteString("## First Year Schedule\n\n")
	b.WriteString("| Month | EMI | Principal | Interest | Balance |\n|---|---|---|---|---|\n")
	for _, row := range sched.FirstYear {
		fmt.Fprintf(&b, "| %d | %s | %s | %s | %s |\n",
			row.Month,
			currency.Format(row.Payment, code),
			currency.Format(row.Principal, code),
			currency.Format(row.Interest, code),
			currency.Format(row.Balance, code))
	}
	return b.String()
}
