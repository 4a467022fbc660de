package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"google.golang.org/genai"

	"github.com/finmentor-dev/finmentor/internal/advisor"
)

func newAssistCommand() *cobra.Command {
	var ledgerDir string

	cmd := &cobra.Command{
		Use:   "assist [question]",
		Short: "Chat with the AI finance mentor",
		Long: `Start an interactive chat with the finance mentor. The mentor sees a
snapshot of your ledger (recent transactions, budgets, goals) and answers
questions about it. Requires GEMINI_API_KEY in the environment or .env.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, cfg, st, err := openLedger(ledgerDir)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			client, err := genai.NewClient(ctx, nil)
			if err != nil {
				return fmt.Errorf("initializing Gemini client: %w", err)
			}

			snap := advisor.Snapshot{
				Transactions: st.Transactions(),
				Budgets:      st.Budgets(),
				Goals:        st.Goals(),
				Currency:     cfg.Currency.Code,
			}

			a := advisor.New(os.Stdout, os.Stdin, cfg.Advisor.Model)

			var prompts []string
			if len(args) > 0 {
				prompts = append(prompts, strings.Join(args, " "))
			}
			return a.Run(ctx, client, snap, prompts...)
		},
	}

	addLedgerFlag(cmd, &ledgerDir)
	return cmd
}
