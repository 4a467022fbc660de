package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/finmentor-dev/finmentor/internal/auditlog"
	"github.com/finmentor-dev/finmentor/internal/config"
	"github.com/finmentor-dev/finmentor/internal/gitops"
	"github.com/finmentor-dev/finmentor/internal/importer"
	"github.com/finmentor-dev/finmentor/internal/store"
)

func newImportCommand() *cobra.Command {
	var ledgerDir string

	cmd := &cobra.Command{
		Use:   "import [file]",
		Short: "Import bank statement CSVs into the ledger",
		Long: `Import a bank statement CSV. With a file argument, imports that file.
Without one, imports every CSV waiting in <ledger>/import/ and moves each
processed file to import/processed/.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, cfg, st, err := openLedger(ledgerDir)
			if err != nil {
				return err
			}
			if len(args) == 1 {
				return importFile(dir, cfg, st, args[0])
			}
			return importPending(dir, cfg, st)
		},
	}

	addLedgerFlag(cmd, &ledgerDir)
	return cmd
}

func importFile(dir string, cfg *config.Config, st *store.Store, path string) error {
	f, err := os.Open(path)
	if err != nil {
		fmt.Println(importer.StatusFailed)
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	res, err := importer.Import(f, st)
	fmt.Println(res.Status)

	logEntry := auditlog.Entry{
		Timestamp: time.Now(),
		Action:    "import",
		Details:   path,
		Count:     res.Imported,
		Status:    res.Status,
	}
	if logErr := auditlog.Append(dir, []auditlog.Entry{logEntry}); logErr != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to write activity log: %v\n", logErr)
	}

	if err != nil {
		return err
	}

	if res.Imported > 0 {
		commitLedger(dir, cfg, fmt.Sprintf("import: %d transactions from %s", res.Imported, path))
	}
	return nil
}

func importPending(dir string, cfg *config.Config, st *store.Store) error {
	files, err := importer.Scan(dir)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		fmt.Println("No statements waiting in import/.")
		return nil
	}

	for _, file := range files {
		fmt.Printf("%s: ", file.Name)
		if err := importFile(dir, cfg, st, file.Path); err != nil {
			return err
		}
		if err := importer.MarkProcessed(dir, file.Name); err != nil {
			return err
		}
	}
	return nil
}

// commitLedger auto-commits the ledger when configured. Failures are
// warnings, never import failures.
func commitLedger(dir string, cfg *config.Config, message string) {
	if !cfg.Git.AutoCommit || !gitops.IsRepo(dir) {
		return
	}
	if _, err := gitops.CommitAll(dir, message, cfg.Git.AuthorName, cfg.Git.AuthorEmail); err != nil {
		fmt.Fprintf(os.Stderr, "warning: auto-commit failed: %v\n", err)
	}
}
