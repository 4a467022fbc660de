// Package loan computes fixed-payment (EMI) amortization schedules.
package loan

import (
	"errors"
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// ErrInvalidInput marks loan parameters the annuity formula is undefined
// for. Callers can test with errors.Is.
var ErrInvalidInput = errors.New("invalid loan input")

// previewMonths caps the per-month breakdown: the schedule is a first-year
// preview, not a full amortization table.
const previewMonths = 12

// Row is one month of the schedule. All monetary values are rounded to
// whole currency units.
type Row struct {
	Month     int             `json:"month"`
	Payment   decimal.Decimal `json:"payment"`
	Principal decimal.Decimal `json:"principal"`
	Interest  decimal.Decimal `json:"interest"`
	Balance   decimal.Decimal `json:"balance"`
}

// Schedule is the result of amortizing a loan.
type Schedule struct {
	MonthlyPayment decimal.Decimal `json:"monthlyPayment"`
	TotalPayment   decimal.Decimal `json:"totalPayment"`
	TotalInterest  decimal.Decimal `json:"totalInterest"`
	TotalMonths    int             `json:"totalMonths"`
	FirstYear      []Row           `json:"firstYearSchedule"`
}

// Amortize computes the fixed monthly payment for a loan and a first-year
// breakdown into principal and interest components.
//
// principal must be positive, annualRatePct non-negative, and tenureYears
// must resolve to at least one whole month (years times 12, rounded to the
// nearest integer). The payment is rounded to the nearest whole currency
// unit, matching the calculator's display behavior.
func Amortize(principal, annualRatePct, tenureYears decimal.Decimal) (Schedule, error) {
	if !principal.IsPositive() {
		return Schedule{}, fmt.Errorf("%w: principal must be positive, got %s", ErrInvalidInput, principal)
	}
	if annualRatePct.IsNegative() {
		return Schedule{}, fmt.Errorf("%w: rate must be non-negative, got %s", ErrInvalidInput, annualRatePct)
	}

	months := int(tenureYears.Mul(decimal.NewFromInt(12)).Round(0).IntPart())
	if months <= 0 {
		return Schedule{}, fmt.Errorf("%w: tenure resolves to %d months", ErrInvalidInput, months)
	}

	monthlyRate := annualRatePct.Div(decimal.NewFromInt(12)).Div(decimal.NewFromInt(100))
	payment := monthlyPayment(principal, monthlyRate, months)

	totalPayment := payment.Mul(decimal.NewFromInt(int64(months)))

	sched := Schedule{
		MonthlyPayment: payment,
		TotalPayment:   totalPayment,
		TotalInterest:  totalPayment.Sub(principal),
		TotalMonths:    months,
	}

	preview := previewMonths
	if months < preview {
		preview = months
	}

	balance := principal
	for m := 1; m <= preview; m++ {
		interest := decimal.Decimal{}
		if !monthlyRate.IsZero() {
			interest = balance.Mul(monthlyRate)
		}
		principalPart := decimal.Min(payment.Sub(interest), balance)
		balance = decimal.Max(decimal.Decimal{}, balance.Sub(principalPart))

		sched.FirstYear = append(sched.FirstYear, Row{
			Month: m,
			// Recorded payment is the sum of the rounded-from-exact
			// components, so a row always reconciles with itself.
			Payment:   principalPart.Add(interest).Round(0),
			Principal: principalPart.Round(0),
			Interest:  interest.Round(0),
			Balance:   balance.Round(0),
		})
	}

	return sched, nil
}

// monthlyPayment evaluates the annuity formula, rounded to a whole unit.
// The zero-rate case degenerates to equal division of the principal.
func monthlyPayment(principal, monthlyRate decimal.Decimal, months int) decimal.Decimal {
	n := decimal.NewFromInt(int64(months))
	if monthlyRate.IsZero() {
		return principal.Div(n).Round(0)
	}

	// The power term is the one place decimal arithmetic does not help:
	// compute it in float64 and round the final payment.
	p, _ := principal.Float64()
	r, _ := monthlyRate.Float64()
	pow := math.Pow(1+r, float64(months))
	emi := p * r * pow / (pow - 1)
	return decimal.NewFromFloat(math.Round(emi))
}
