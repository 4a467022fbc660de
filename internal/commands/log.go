package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/finmentor-dev/finmentor/internal/auditlog"
)

func newLogCommand() *cobra.Command {
	var ledgerDir string

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Show the ledger activity log",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _, _, err := openLedger(ledgerDir)
			if err != nil {
				return err
			}

			entries, err := auditlog.Read(dir)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Println("No activity recorded yet.")
				return nil
			}

			for _, e := range entries {
				fmt.Printf("%s  %-8s %-4d %s (%s)\n",
					e.Timestamp.Format(time.DateTime), e.Action, e.Count, e.Details, e.Status)
			}
			return nil
		},
	}

	addLedgerFlag(cmd, &ledgerDir)
	return cmd
}
