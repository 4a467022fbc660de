package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestIsExpense(t *testing.T) {
	expense := Transaction{Amount: decimal.NewFromInt(-500)}
	income := Transaction{Amount: decimal.NewFromInt(85000)}

	assert.True(t, expense.IsExpense())
	assert.False(t, income.IsExpense())
}

func TestIconForCategory(t *testing.T) {
	assert.Equal(t, IconCoffee, IconForCategory("Dining"))
	assert.Equal(t, IconCar, IconForCategory("Transport"))
	assert.Equal(t, IconShoppingCart, IconForCategory("Groceries"))
	// Unknown categories fall back to the generic bag.
	assert.Equal(t, IconShoppingBag, IconForCategory("Rent"))
}
