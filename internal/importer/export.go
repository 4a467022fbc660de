package importer

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/finmentor-dev/finmentor/internal/model"
)

// exportHeader matches the wallet's export format. Every column is
// recognized by the statement parser's aliases, so an exported file
// re-imports with signs, merchants and categories intact.
var exportHeader = []string{"Date", "Merchant", "Category", "Amount"}

// Export writes transactions as CSV in the wallet export format.
func Export(w io.Writer, txns []model.Transaction) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(exportHeader); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, tx := range txns {
		row := []string{tx.Date, tx.Merchant, tx.Category, tx.Amount.String()}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}
