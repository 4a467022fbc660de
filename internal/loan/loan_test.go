package loan

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func amortize(t *testing.T, principal, rate, years float64) Schedule {
	t.Helper()
	s, err := Amortize(
		decimal.NewFromFloat(principal),
		decimal.NewFromFloat(rate),
		decimal.NewFromFloat(years),
	)
	require.NoError(t, err)
	return s
}

func TestAmortize_TypicalHomeLoan(t *testing.T) {
	s := amortize(t, 5_000_000, 8.5, 20)

	assert.Equal(t, 240, s.TotalMonths)

	payment, _ := s.MonthlyPayment.Float64()
	assert.InDelta(t, 43391, payment, 1)

	// Totals derive from the rounded payment.
	assert.True(t, s.TotalPayment.Equal(s.MonthlyPayment.Mul(decimal.NewFromInt(240))))
	assert.True(t, s.TotalInterest.Equal(s.TotalPayment.Sub(decimal.NewFromInt(5_000_000))))

	require.Len(t, s.FirstYear, 12)

	// First month interest: 5,000,000 * 8.5% / 12.
	firstInterest, _ := s.FirstYear[0].Interest.Float64()
	assert.InDelta(t, 5_000_000*0.085/12, firstInterest, 1)
}

func TestAmortize_ZeroRate(t *testing.T) {
	s := amortize(t, 120_000, 0, 1)

	assert.Equal(t, 12, s.TotalMonths)
	assert.True(t, s.MonthlyPayment.Equal(decimal.NewFromInt(10_000)))
	assert.True(t, s.TotalInterest.IsZero())

	require.Len(t, s.FirstYear, 12)
	for i, row := range s.FirstYear {
		assert.True(t, row.Interest.IsZero(), "month %d", row.Month)
		assert.True(t, row.Principal.Equal(decimal.NewFromInt(10_000)), "month %d", row.Month)
		wantBalance := decimal.NewFromInt(int64(120_000 - 10_000*(i+1)))
		assert.True(t, row.Balance.Equal(wantBalance), "month %d balance %s", row.Month, row.Balance)
	}
	assert.True(t, s.FirstYear[11].Balance.IsZero())
}

func TestAmortize_ShortTenurePreview(t *testing.T) {
	s := amortize(t, 10_000, 10, 0.5)

	assert.Equal(t, 6, s.TotalMonths)
	assert.Len(t, s.FirstYear, 6)
}

func TestAmortize_FractionalYearsRoundToMonths(t *testing.T) {
	// 1.7 years -> 20.4 months -> 20.
	s := amortize(t, 10_000, 10, 1.7)
	assert.Equal(t, 20, s.TotalMonths)
}

func TestAmortize_BalanceDecreasesMonotonically(t *testing.T) {
	s := amortize(t, 1_000_000, 9, 15)

	prev := decimal.NewFromInt(1_000_000)
	for _, row := range s.FirstYear {
		assert.True(t, row.Balance.LessThan(prev), "month %d", row.Month)
		prev = row.Balance
	}
}

func TestAmortize_RowsReconcile(t *testing.T) {
	s := amortize(t, 2_500_000, 7.25, 10)

	for _, row := range s.FirstYear {
		sum, _ := row.Principal.Add(row.Interest).Float64()
		payment, _ := row.Payment.Float64()
		// Components are rounded independently, so allow one unit of drift.
		assert.LessOrEqual(t, math.Abs(sum-payment), 1.0, "month %d", row.Month)
	}
}

func TestAmortize_InterestShrinksPrincipalGrows(t *testing.T) {
	s := amortize(t, 3_000_000, 8, 20)

	for i := 1; i < len(s.FirstYear); i++ {
		assert.True(t, s.FirstYear[i].Interest.LessThanOrEqual(s.FirstYear[i-1].Interest),
			"interest should not grow at month %d", s.FirstYear[i].Month)
		assert.True(t, s.FirstYear[i].Principal.GreaterThanOrEqual(s.FirstYear[i-1].Principal),
			"principal should not shrink at month %d", s.FirstYear[i].Month)
	}
}

func TestAmortize_InvalidInputs(t *testing.T) {
	cases := []struct {
		name      string
		principal float64
		rate      float64
		years     float64
	}{
		{"zero principal", 0, 8.5, 20},
		{"negative principal", -100, 8.5, 20},
		{"negative rate", 100_000, -1, 20},
		{"zero tenure", 100_000, 8.5, 0},
		{"tenure under half a month", 100_000, 8.5, 0.01},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Amortize(
				decimal.NewFromFloat(tc.principal),
				decimal.NewFromFloat(tc.rate),
				decimal.NewFromFloat(tc.years),
			)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
