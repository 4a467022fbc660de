// Package currency formats ledger amounts for display.
package currency

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Format renders an amount with the symbol and grouping rules of the given
// ISO 4217 code. Unknown codes fall back to go-money's default currency
// handling.
func Format(amount decimal.Decimal, code string) string {
	// go-money works in minor units; shift by the currency's fraction.
	cur := money.New(0, code).Currency()
	minor := amount.Shift(int32(cur.Fraction)).Round(0).IntPart()
	return money.New(minor, code).Display()
}

// Symbol returns the display symbol for an ISO 4217 code.
func Symbol(code string) string {
	return money.New(0, code).Currency().Grapheme
}
