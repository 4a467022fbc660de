// Package report aggregates the ledger into a monthly spending report.
package report

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finmentor-dev/finmentor/internal/currency"
	"github.com/finmentor-dev/finmentor/internal/model"
)

// topN caps the category and merchant rankings.
const topN = 5

// Entry is one row of a ranking.
type Entry struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

// Monthly is the aggregated report for one calendar month.
type Monthly struct {
	Month         string          `json:"month"` // e.g. "October 2026"
	TotalSpent    decimal.Decimal `json:"totalSpent"`
	TotalIncome   decimal.Decimal `json:"totalIncome"`
	NetSavings    decimal.Decimal `json:"netSavings"`
	TopCategories []Entry         `json:"topCategories"`
	TopMerchants  []Entry         `json:"topMerchants"`
	Analyzed      int             `json:"analyzed"`
}

// Build aggregates transactions for the month containing now. When no
// transaction falls in that month the whole ledger is analyzed instead, so
// a sparse ledger still produces a useful report.
func Build(txns []model.Transaction, now time.Time) Monthly {
	var current []model.Transaction
	for _, tx := range txns {
		if t, ok := ParseDisplayDate(tx.Date, now); ok &&
			t.Month() == now.Month() && t.Year() == now.Year() {
			current = append(current, tx)
		}
	}

	dataset := current
	if len(dataset) == 0 {
		dataset = txns
	}

	m := Monthly{
		Month:    now.Format("January 2006"),
		Analyzed: len(dataset),
	}

	categories := map[string]decimal.Decimal{}
	merchants := map[string]decimal.Decimal{}
	for _, tx := range dataset {
		abs := tx.Amount.Abs()
		if tx.IsExpense() {
			m.TotalSpent = m.TotalSpent.Add(abs)
			merchants[tx.Merchant] = merchants[tx.Merchant].Add(abs)
		} else {
			m.TotalIncome = m.TotalIncome.Add(abs)
		}
		categories[tx.Category] = categories[tx.Category].Add(abs)
	}
	m.NetSavings = m.TotalIncome.Sub(m.TotalSpent)
	m.TopCategories = rank(categories)
	m.TopMerchants = rank(merchants)
	return m
}

// rank sorts totals descending and keeps the top entries. Ties break by
// name so the ordering is deterministic.
func rank(totals map[string]decimal.Decimal) []Entry {
	entries := make([]Entry, 0, len(totals))
	for name, amount := range totals {
		entries = append(entries, Entry{Name: name, Amount: amount})
	}
	sort.Slice(entries, func(i, j int) bool {
		if !entries[i].Amount.Equal(entries[j].Amount) {
			return entries[i].Amount.GreaterThan(entries[j].Amount)
		}
		return entries[i].Name < entries[j].Name
	})
	if len(entries) > topN {
		entries = entries[:topN]
	}
	return entries
}

// ParseDisplayDate interprets the ledger's display-form dates ("Today,
// 9:41 AM", "Yesterday", "Oct 24", full dates). The second return is false
// when the value cannot be interpreted.
func ParseDisplayDate(value string, now time.Time) (time.Time, bool) {
	lower := strings.ToLower(strings.TrimSpace(value))
	if strings.HasPrefix(lower, "today") {
		return now, true
	}
	if strings.HasPrefix(lower, "yesterday") {
		return now.AddDate(0, 0, -1), true
	}

	layouts := []string{"2006-01-02", "01/02/2006", "Jan 2, 2006", "2 Jan 2006"}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}

	// Short display form has no year; assume the current one.
	if t, err := time.Parse("Jan 2", value); err == nil {
		return time.Date(now.Year(), t.Month(), t.Day(), 0, 0, 0, 0, now.Location()), true
	}
	return time.Time{}, false
}

// Markdown renders the report for terminal display.
func (m Monthly) Markdown(currencyCode string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Monthly Finance Report — %s\n\n", m.Month)
	fmt.Fprintf(&b, "| | |\n|---|---|\n")
	fmt.Fprintf(&b, "| Total Spent | %s |\n", currency.Format(m.TotalSpent, currencyCode))
	fmt.Fprintf(&b, "| Total Income | %s |\n", currency.Format(m.TotalIncome, currencyCode))
	fmt.Fprintf(&b, "| Net Savings | %s |\n\n", currency.Format(m.NetSavings, currencyCode))

	b.WriteString("## Top Categories\n\n| Category | Amount |\n|---|---|\n")
	for _, e := range m.TopCategories {
		fmt.Fprintf(&b, "| %s | %s |\n", e.Name, currency.Format(e.Amount, currencyCode))
	}

	b.WriteString("\n## Top Merchants\n\n| Merchant | Amount |\n|---|---|\n")
	for _, e := range m.TopMerchants {
		fmt.Fprintf(&b, "| %s | %s |\n", e.Name, currency.Format(e.Amount, currencyCode))
	}

	fmt.Fprintf(&b, "\nTransactions analyzed: %d\n", m.Analyzed)
	return b.String()
}
