package tax

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompute_OldRegimeNoDeductions(t *testing.T) {
	a, err := Compute(d(1_200_000), RegimeOld, nil)
	require.NoError(t, err)

	// 0-250k at 0%, 250k-500k at 5%, 500k-1M at 20%, 1M-1.2M at 30%.
	assert.True(t, a.BaseTax.Equal(d(172_500)), "base tax %s", a.BaseTax)
	assert.True(t, a.Cess.Equal(d(6_900)), "cess %s", a.Cess)
	assert.True(t, a.TotalTax.Equal(d(179_400)), "total %s", a.TotalTax)
	assert.True(t, a.TaxableIncome.Equal(d(1_200_000)))
}

func TestCompute_NewRegimeNoDeductions(t *testing.T) {
	a, err := Compute(d(1_200_000), RegimeNew, nil)
	require.NoError(t, err)

	// 300k at 5% + 300k at 10% + 300k at 15%.
	assert.True(t, a.BaseTax.Equal(d(90_000)), "base tax %s", a.BaseTax)
	assert.True(t, a.TotalTax.Equal(d(93_600)), "total %s", a.TotalTax)
}

func TestCompute_OldRegimeWithDefaultDeductions(t *testing.T) {
	a, err := Compute(d(1_200_000), RegimeOld, DefaultDeductions())
	require.NoError(t, err)

	assert.True(t, a.TotalDeductions.Equal(d(405_000)), "deductions %s", a.TotalDeductions)
	assert.True(t, a.TaxableIncome.Equal(d(795_000)))

	// 250k-500k at 5% = 12,500; 500k-795k at 20% = 59,000.
	assert.True(t, a.BaseTax.Equal(d(71_500)), "base tax %s", a.BaseTax)
	assert.True(t, a.TotalTax.Equal(d(74_360)), "total %s", a.TotalTax)
}

func TestCompute_BelowThreshold(t *testing.T) {
	for _, regime := range []Regime{RegimeOld, RegimeNew} {
		a, err := Compute(d(200_000), regime, nil)
		require.NoError(t, err)
		assert.True(t, a.TotalTax.IsZero(), "regime %s: %s", regime, a.TotalTax)
	}
}

func TestCompute_ExactSlabBoundary(t *testing.T) {
	// Income exactly at a slab edge is taxed only by the bands below it.
	a, err := Compute(d(500_000), RegimeOld, nil)
	require.NoError(t, err)
	assert.True(t, a.BaseTax.Equal(d(12_500)), "base tax %s", a.BaseTax)
}

func TestCompute_UnknownRegime(t *testing.T) {
	_, err := Compute(d(1_000_000), Regime("flat"), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown tax regime")
}

func TestCompute_TotalRoundsToWholeUnit(t *testing.T) {
	// 250,010 old regime: 10 at 5% = 0.50 base, cess 0.02, total 0.52 -> 1.
	a, err := Compute(d(250_010), RegimeOld, nil)
	require.NoError(t, err)
	assert.True(t, a.TotalTax.Equal(d(1)), "total %s", a.TotalTax)
}

func TestPotentialSavings(t *testing.T) {
	// Headroom: 80D 25k + HRA 60k.
	assert.True(t, PotentialSavings(DefaultDeductions()).Equal(d(85_000)))

	assert.True(t, PotentialSavings(nil).IsZero())
}

func TestCompute_DeductionsCanExceedIncome(t *testing.T) {
	deds := []Deduction{{Section: "80C", Invested: decimal.NewFromInt(300_000)}}
	a, err := Compute(d(250_000), RegimeOld, deds)
	require.NoError(t, err)

	assert.True(t, a.TaxableIncome.IsNegative())
	assert.True(t, a.TotalTax.IsZero())
}
