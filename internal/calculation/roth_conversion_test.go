package calculation

import (
	"testing"

	"github.com/rgehrsitz/retirecalc/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exampleConversion() domain.ConversionInput {
	return domain.ConversionInput{
		TraditionalBalance:   d("500000"),
		ConversionAmount:     d("100000"),
		CurrentTaxRate:       d("0.24"),
		FutureTaxRate:        d("0.32"),
		YearsUntilWithdrawal: 10,
	}
}

func TestCalculateRothConversion_ExampleScenario(t *testing.T) {
	engine := NewCalculationEngine()

	result := engine.CalculateRothConversion(exampleConversion())

	assert.True(t, result.TaxCostNow.Equal(d("24000")), "tax now: %s", result.TaxCostNow)
	assert.Equal(t, "179084.77", result.FutureValueAtWithdrawal.StringFixed(2))
	assert.Equal(t, "57307.13", result.TaxSavingsAtWithdrawal.StringFixed(2))
	assert.Equal(t, "33307.13", result.NetBenefit.StringFixed(2))
	assert.Equal(t, 13, result.BreakevenYears)
	assert.False(t, result.WorthIt, "breakeven beyond the horizon should not be worth it")
	assert.Contains(t, result.Verdict, "may not be optimal")
	assert.True(t, result.IsCapped(), "100k exceeds the 24%% bracket room")
	assert.True(t, result.RecommendedCappedAmount.Equal(d("91425")))
	assert.NotEmpty(t, result.Advisory)
}

func TestCalculateRothConversion_NetBenefitIdentity(t *testing.T) {
	engine := NewCalculationEngine()

	inputs := []domain.ConversionInput{
		exampleConversion(),
		{TraditionalBalance: d("80000"), ConversionAmount: d("12345.67"), CurrentTaxRate: d("0.12"), FutureTaxRate: d("0.22"), YearsUntilWithdrawal: 25},
		{TraditionalBalance: d("1000000"), ConversionAmount: d("250000"), CurrentTaxRate: d("0.35"), FutureTaxRate: d("0.24"), YearsUntilWithdrawal: 3},
		{TraditionalBalance: d("50000"), ConversionAmount: d("50000"), CurrentTaxRate: d("0.22"), FutureTaxRate: d("0.22"), YearsUntilWithdrawal: 0},
	}

	for _, in := range inputs {
		r := engine.CalculateRothConversion(in)
		assert.True(t, r.NetBenefit.Equal(r.TaxSavingsAtWithdrawal.Sub(r.TaxCostNow)),
			"net benefit must equal savings minus cost for %+v", in)
	}
}

func TestCalculateRothConversion_NoBreakevenWhenFutureRateNotHigher(t *testing.T) {
	engine := NewCalculationEngine()

	tests := []struct {
		name    string
		current string
		future  string
	}{
		{"lower future rate", "0.32", "0.24"},
		{"equal rates", "0.22", "0.22"},
		{"zero future rate", "0.12", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := exampleConversion()
			in.CurrentTaxRate = d(tt.current)
			in.FutureTaxRate = d(tt.future)
			r := engine.CalculateRothConversion(in)
			assert.Equal(t, 0, r.BreakevenYears)
		})
	}
}

func TestCalculateRothConversion_EqualRatesUsesFormula(t *testing.T) {
	engine := NewCalculationEngine()
	in := exampleConversion()
	in.CurrentTaxRate = d("0.22")
	in.FutureTaxRate = d("0.22")
	in.ConversionAmount = d("50000")

	r := engine.CalculateRothConversion(in)

	// Growth makes the future tax larger than today's even at a flat rate
	assert.True(t, r.NetBenefit.IsPositive())
	assert.Equal(t, 0, r.BreakevenYears)
	assert.True(t, r.WorthIt)
	assert.False(t, r.IsCapped(), "50k fits inside the 22%% bracket room")
}

func TestCalculateRothConversion_ZeroAmount(t *testing.T) {
	engine := NewCalculationEngine()
	in := exampleConversion()
	in.ConversionAmount = decimal.Zero

	r := engine.CalculateRothConversion(in)

	assert.True(t, r.TaxCostNow.IsZero())
	assert.True(t, r.FutureValueAtWithdrawal.IsZero())
	assert.True(t, r.TaxSavingsAtWithdrawal.IsZero())
	assert.True(t, r.NetBenefit.IsZero())
	assert.Equal(t, 0, r.BreakevenYears)
	assert.False(t, r.WorthIt)
	assert.Nil(t, r.RecommendedCappedAmount)
	assert.True(t, r.Sensitivity.Plus20Percent.IsZero())
}

func TestCalculateRothConversion_WorthIt(t *testing.T) {
	engine := NewCalculationEngine()
	in := exampleConversion()
	in.YearsUntilWithdrawal = 20

	r := engine.CalculateRothConversion(in)

	assert.Equal(t, 13, r.BreakevenYears)
	assert.True(t, r.WorthIt)
	assert.Equal(t, "Conversion appears favorable", r.Verdict)
}

func TestCalculateRothConversion_UncappedTopBracket(t *testing.T) {
	engine := NewCalculationEngine()
	in := exampleConversion()
	in.CurrentTaxRate = d("0.37")
	in.ConversionAmount = d("5000000")

	r := engine.CalculateRothConversion(in)
	assert.False(t, r.IsCapped())
	assert.Empty(t, r.Advisory)
}

func TestCalculateRothConversion_Sensitivity(t *testing.T) {
	engine := NewCalculationEngine()

	r := engine.CalculateRothConversion(exampleConversion())

	// Net benefit is linear in the amount
	require.True(t, r.NetBenefit.IsPositive())
	assert.Equal(t, r.NetBenefit.Mul(d("1.2")).StringFixed(2), r.Sensitivity.Plus20Percent.StringFixed(2))
	assert.Equal(t, r.NetBenefit.Mul(d("0.8")).StringFixed(2), r.Sensitivity.Minus20Percent.StringFixed(2))
}

func TestCalculateRothConversion_ConfigurableGrowth(t *testing.T) {
	assumptions := DefaultAssumptions()
	assumptions.Roth.GrowthRate = decimal.Zero
	engine := NewCalculationEngineWithAssumptions(assumptions)

	r := engine.CalculateRothConversion(exampleConversion())
	assert.True(t, r.FutureValueAtWithdrawal.Equal(d("100000")))
	assert.True(t, r.NetBenefit.Equal(d("8000")))
}

func TestBreakevenYears(t *testing.T) {
	assert.Equal(t, 13, BreakevenYears(d("0.24"), d("0.32")))
	assert.Equal(t, 10, BreakevenYears(d("0.12"), d("0.22")))
	assert.Equal(t, 34, BreakevenYears(d("0.32"), d("0.35")))
	assert.Equal(t, 0, BreakevenYears(d("0.35"), d("0.32")))
}
