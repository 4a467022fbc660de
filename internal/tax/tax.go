// Package tax computes Indian income-tax liability under the old and new
// regimes, including the 4% health and education cess.
package tax

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Regime selects which slab table applies.
type Regime string

const (
	RegimeOld Regime = "old"
	RegimeNew Regime = "new"
)

// Deduction is a claimed tax-saving investment.
type Deduction struct {
	Section     string          `json:"section"`
	Description string          `json:"description"`
	Invested    decimal.Decimal `json:"invested"`
	Limit       decimal.Decimal `json:"limit"`
	Category    string          `json:"category"`
}

// slab is one marginal-rate band: income above Over (up to the next slab's
// Over) is taxed at Rate percent.
type slab struct {
	Over decimal.Decimal
	Rate decimal.Decimal
}

func d(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

// Slab tables are ordinary data, evaluated marginally in order.
var regimeSlabs = map[Regime][]slab{
	RegimeOld: {
		{Over: d(0), Rate: d(0)},
		{Over: d(250_000), Rate: d(5)},
		{Over: d(500_000), Rate: d(20)},
		{Over: d(1_000_000), Rate: d(30)},
	},
	RegimeNew: {
		{Over: d(0), Rate: d(0)},
		{Over: d(300_000), Rate: d(5)},
		{Over: d(600_000), Rate: d(10)},
		{Over: d(900_000), Rate: d(15)},
		{Over: d(1_200_000), Rate: d(20)},
		{Over: d(1_500_000), Rate: d(30)},
	},
}

// cessRate is the health and education cess applied on the computed tax.
var cessRate = decimal.NewFromFloat(0.04)

// Assessment is the result of a tax computation.
type Assessment struct {
	GrossIncome     decimal.Decimal `json:"grossIncome"`
	TotalDeductions decimal.Decimal `json:"totalDeductions"`
	TaxableIncome   decimal.Decimal `json:"taxableIncome"`
	BaseTax         decimal.Decimal `json:"baseTax"`
	Cess            decimal.Decimal `json:"cess"`
	TotalTax        decimal.Decimal `json:"totalTax"` // rounded to a whole unit
}

// Compute assesses tax for a gross annual income under the given regime,
// after subtracting the invested amounts of all deductions.
func Compute(income decimal.Decimal, regime Regime, deductions []Deduction) (Assessment, error) {
	slabs, ok := regimeSlabs[regime]
	if !ok {
		return Assessment{}, fmt.Errorf("unknown tax regime %q", regime)
	}

	total := decimal.Decimal{}
	for _, ded := range deductions {
		total = total.Add(ded.Invested)
	}
	taxable := income.Sub(total)

	base := marginalTax(taxable, slabs)
	cess := base.Mul(cessRate)

	return Assessment{
		GrossIncome:     income,
		TotalDeductions: total,
		TaxableIncome:   taxable,
		BaseTax:         base,
		Cess:            cess,
		TotalTax:        base.Add(cess).Round(0),
	}, nil
}

// marginalTax walks the slab table, taxing each band at its own rate.
func marginalTax(taxable decimal.Decimal, slabs []slab) decimal.Decimal {
	tax := decimal.Decimal{}
	hundred := d(100)
	for i, s := range slabs {
		if taxable.LessThanOrEqual(s.Over) {
			break
		}
		upper := taxable
		if i+1 < len(slabs) && taxable.GreaterThan(slabs[i+1].Over) {
			upper = slabs[i+1].Over
		}
		band := upper.Sub(s.Over)
		tax = tax.Add(band.Mul(s.Rate).Div(hundred))
	}
	return tax
}

// DefaultDeductions returns the planner's sample deduction set.
func DefaultDeductions() []Deduction {
	return []Deduction{
		{Section: "80C", Description: "PPF Investment", Invested: d(150_000), Limit: d(150_000), Category: "Investment"},
		{Section: "80D", Description: "Health Insurance", Invested: d(25_000), Limit: d(50_000), Category: "Insurance"},
		{Section: "80CCD(1B)", Description: "NPS", Invested: d(50_000), Limit: d(50_000), Category: "Pension"},
		{Section: "HRA", Description: "House Rent", Invested: d(180_000), Limit: d(240_000), Category: "Allowance"},
	}
}

// PotentialSavings sums the remaining headroom across deductions.
func PotentialSavings(deductions []Deduction) decimal.Decimal {
	total := decimal.Decimal{}
	for _, ded := range deductions {
		total = total.Add(ded.Limit.Sub(ded.Invested))
	}
	return total
}
