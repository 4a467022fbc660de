package model

import "github.com/shopspring/decimal"

// Transaction is a single ledger entry as shown in the wallet.
// Amount sign carries the direction: negative = expense, positive = income.
// Date holds the short display form ("Jan 2") rather than a timestamp,
// matching the export format.
type Transaction struct {
	ID       string          `json:"id"`
	Merchant string          `json:"merchant"`
	Date     string          `json:"date"`
	Amount   decimal.Decimal `json:"amount"`
	Category string          `json:"category"`
	Icon     string          `json:"icon"`
}

// IsExpense reports whether the transaction is an outgoing amount.
func (t Transaction) IsExpense() bool { return t.Amount.IsNegative() }

// Budget tracks spending against a per-category limit.
type Budget struct {
	ID       string          `json:"id"`
	Category string          `json:"category"`
	Spent    decimal.Decimal `json:"spent"`
	Limit    decimal.Decimal `json:"limit"`
	Color    string          `json:"color"`
}

// SavingsGoal tracks progress towards a savings target.
type SavingsGoal struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	Current decimal.Decimal `json:"current"`
	Target  decimal.Decimal `json:"target"`
	Icon    string          `json:"icon"`
	Color   string          `json:"color"`
}
