package commands

import (
	"fmt"
	"path/filepath"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/finmentor-dev/finmentor/internal/config"
	"github.com/finmentor-dev/finmentor/internal/store"
)

var hundred = decimal.NewFromInt(100)

// addLedgerFlag wires the shared --ledger flag onto a command.
func addLedgerFlag(cmd *cobra.Command, dir *string) {
	cmd.Flags().StringVar(dir, "ledger", ".", "ledger directory")
}

// openLedger resolves the ledger directory and loads its config and store.
func openLedger(dir string) (string, *config.Config, *store.Store, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", nil, nil, fmt.Errorf("resolving path: %w", err)
	}

	cfg, err := config.Load(filepath.Join(abs, config.FileName))
	if err != nil {
		return "", nil, nil, fmt.Errorf("loading %s (is this a finmentor ledger? run 'finmentor init'): %w", config.FileName, err)
	}

	st, err := store.Open(abs)
	if err != nil {
		return "", nil, nil, err
	}
	return abs, cfg, st, nil
}
