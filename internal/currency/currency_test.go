package currency

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	assert.Equal(t, "$1,234.50", Format(decimal.NewFromFloat(1234.5), "USD"))
	assert.Equal(t, "$0.00", Format(decimal.Decimal{}, "USD"))
	assert.Equal(t, "-$500.00", Format(decimal.NewFromInt(-500), "USD"))
}

func TestFormat_RoundsToMinorUnits(t *testing.T) {
	assert.Equal(t, "$10.01", Format(decimal.NewFromFloat(10.005), "USD"))
}

func TestSymbol(t *testing.T) {
	assert.Equal(t, "$", Symbol("USD"))
	assert.Equal(t, "₹", Symbol("INR"))
}
