package commands

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/finmentor-dev/finmentor/internal/report"
)

func newReportCommand() *cobra.Command {
	var ledgerDir string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Show the monthly spending report",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, cfg, st, err := openLedger(ledgerDir)
			if err != nil {
				return err
			}

			monthly := report.Build(st.Transactions(), time.Now())
			printMarkdown(monthly.Markdown(cfg.Currency.Code))
			return nil
		},
	}

	addLedgerFlag(cmd, &ledgerDir)
	return cmd
}
