// Package advisor implements the AI finance mentor chat on top of the
// Gemini API. The model only sees a text snapshot of the ledger; the call
// contract is string in, string out.
package advisor

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"google.golang.org/genai"

	"github.com/finmentor-dev/finmentor/internal/model"
)

// Snapshot is the ledger context handed to the model.
type Snapshot struct {
	Transactions []model.Transaction
	Budgets      []model.Budget
	Goals        []model.SavingsGoal
	Currency     string
}

// snapshotLimit caps how many recent transactions go into the prompt.
const snapshotLimit = 20

// offlineMessage is shown when the API call fails; the chat keeps running.
const offlineMessage = "I'm currently offline or experiencing issues. Please check your connection."

// emptyMessage is shown when the model returns no usable text.
const emptyMessage = "I'm having trouble analyzing that right now."

// Advisor is a chat session with the finance mentor.
type Advisor struct {
	w     io.Writer
	r     *bufio.Reader
	model string
	chat  *genai.Chat
}

// New creates an Advisor writing responses to w and reading user input
// from r (typically os.Stdout and os.Stdin).
func New(w io.Writer, r io.Reader, modelName string) *Advisor {
	return &Advisor{
		w:     w,
		r:     bufio.NewReader(r),
		model: modelName,
	}
}

// Start opens the chat session, priming the model with the ledger snapshot.
func (a *Advisor) Start(ctx context.Context, client *genai.Client, snap Snapshot) error {
	cfg := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: SystemInstruction(snap)}},
		},
	}
	chat, err := client.Chats.Create(ctx, a.model, cfg, nil)
	if err != nil {
		return fmt.Errorf("creating chat session: %w", err)
	}
	a.chat = chat
	return nil
}

// Ask sends one user message and returns the mentor's reply.
func (a *Advisor) Ask(ctx context.Context, text string) (string, error) {
	resp, err := a.chat.Send(ctx, &genai.Part{Text: text})
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return emptyMessage, nil
	}
	reply := resp.Candidates[0].Content.Parts[0].Text
	if reply == "" {
		return emptyMessage, nil
	}
	return reply, nil
}

const prompt = "mentor> "

// Run starts the interactive session. Any leading prompts are consumed
// before reading from the input; "bye" or EOF ends the session. API errors
// surface as the offline message rather than aborting the chat.
func (a *Advisor) Run(ctx context.Context, client *genai.Client, snap Snapshot, prompts ...string) error {
	if a.chat == nil {
		if err := a.Start(ctx, client, snap); err != nil {
			return err
		}
	}

	fmt.Fprintln(a.w, "Welcome to your finance mentor. Type 'bye' to exit.")

	for {
		fmt.Fprint(a.w, prompt)

		var input string
		if len(prompts) > 0 {
			input, prompts = prompts[0], prompts[1:]
			input = strings.TrimSpace(input)
			if input == "" {
				continue
			}
			fmt.Fprintln(a.w, input)
		} else {
			line, err := a.r.ReadString('\n')
			if err != nil {
				if err == io.EOF {
					return nil
				}
				return err
			}
			input = strings.TrimSpace(line)
		}

		if input == "" {
			continue
		}
		if input == "bye" {
			return nil
		}

		reply, err := a.Ask(ctx, input)
		if err != nil {
			fmt.Fprintln(a.w, offlineMessage)
			continue
		}
		fmt.Fprintln(a.w, reply)
	}
}

// SystemInstruction renders the ledger snapshot into the mentor's system
// prompt.
func SystemInstruction(snap Snapshot) string {
	var b strings.Builder
	b.WriteString("You are Finance Mentor, a helpful, friendly, and savvy financial assistant.\n")
	b.WriteString("Here is the user's current financial snapshot:\n\n")

	b.WriteString("Recent Transactions:\n")
	txns := snap.Transactions
	if len(txns) > snapshotLimit {
		txns = txns[:snapshotLimit]
	}
	for _, tx := range txns {
		fmt.Fprintf(&b, "%s: %s (%s %s) - %s\n", tx.Date, tx.Merchant, snap.Currency, tx.Amount.Abs(), tx.Category)
	}

	b.WriteString("\nActive Budgets:\n")
	for _, bu := range snap.Budgets {
		fmt.Fprintf(&b, "%s: %s spent of %s limit\n", bu.Category, bu.Spent, bu.Limit)
	}

	b.WriteString("\nSavings Goals:\n")
	for _, g := range snap.Goals {
		fmt.Fprintf(&b, "%s: saved %s of %s\n", g.Name, g.Current, g.Target)
	}

	b.WriteString("\nAnswer the user's questions based on this data. Be concise and encouraging. ")
	b.WriteString("If the user asks about something not in the data, give general financial advice ")
	b.WriteString("but mention you don't have that specific record.\n")
	return b.String()
}
