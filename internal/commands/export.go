package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/finmentor-dev/finmentor/internal/importer"
)

func newExportCommand() *cobra.Command {
	var ledgerDir string
	var outPath string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export transactions as CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, _, st, err := openLedger(ledgerDir)
			if err != nil {
				return err
			}

			txns := st.Transactions()
			if outPath == "" {
				return importer.Export(os.Stdout, txns)
			}

			f, err := os.Create(outPath)
			if err != nil {
				return fmt.Errorf("creating %s: %w", outPath, err)
			}
			defer f.Close()

			if err := importer.Export(f, txns); err != nil {
				return err
			}
			fmt.Printf("Exported %d transactions to %s\n", len(txns), outPath)
			return nil
		},
	}

	addLedgerFlag(cmd, &ledgerDir)
	cmd.Flags().StringVar(&outPath, "out", "", "output file (default stdout)")

	return cmd
}
