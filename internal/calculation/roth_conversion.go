package calculation

import (
	"fmt"

	"github.com/rgehrsitz/retirecalc/internal/domain"
	"github.com/shopspring/decimal"
)

// CalculateRothConversion compares paying tax on a conversion today against the tax
// avoided on the grown amount at withdrawal. It never fails; callers clamp inputs.
func (ce *CalculationEngine) CalculateRothConversion(input domain.ConversionInput) domain.ConversionResult {
	result := ce.analyzeConversion(input)

	if input.ConversionAmount.IsPositive() {
		plus := input
		plus.ConversionAmount = input.ConversionAmount.Mul(decimal.NewFromFloat(1.2))
		minus := input
		minus.ConversionAmount = input.ConversionAmount.Mul(decimal.NewFromFloat(0.8))
		result.Sensitivity = domain.ConversionSensitivity{
			Plus20Percent:  ce.analyzeConversion(plus).NetBenefit,
			Minus20Percent: ce.analyzeConversion(minus).NetBenefit,
		}
	}

	ce.debugf("roth: amount=%s tax_now=%s future_value=%s net=%s breakeven=%d worth_it=%t",
		input.ConversionAmount.StringFixed(2), result.TaxCostNow.StringFixed(2),
		result.FutureValueAtWithdrawal.StringFixed(2), result.NetBenefit.StringFixed(2),
		result.BreakevenYears, result.WorthIt)

	return result
}

func (ce *CalculationEngine) analyzeConversion(input domain.ConversionInput) domain.ConversionResult {
	result := domain.ConversionResult{
		Input:                   input,
		TaxCostNow:              decimal.Zero,
		FutureValueAtWithdrawal: decimal.Zero,
		TaxSavingsAtWithdrawal:  decimal.Zero,
		NetBenefit:              decimal.Zero,
	}

	// Nothing converted, nothing to analyze
	if input.ConversionAmount.IsZero() {
		result.Verdict = verdictText(result)
		return result
	}

	growth := decimal.NewFromInt(1).Add(ce.Assumptions.Roth.GrowthRate).Pow(decimal.NewFromInt(int64(input.YearsUntilWithdrawal)))

	result.TaxCostNow = input.ConversionAmount.Mul(input.CurrentTaxRate)
	result.FutureValueAtWithdrawal = input.ConversionAmount.Mul(growth)
	result.TaxSavingsAtWithdrawal = result.FutureValueAtWithdrawal.Mul(input.FutureTaxRate)
	result.NetBenefit = result.TaxSavingsAtWithdrawal.Sub(result.TaxCostNow)
	result.BreakevenYears = BreakevenYears(input.CurrentTaxRate, input.FutureTaxRate)

	if ceiling, capped := ce.bracketCeiling(input); capped {
		result.RecommendedCappedAmount = &ceiling
		result.Advisory = fmt.Sprintf("Converting $%s exceeds the room in the %d%% bracket. Consider converting $%s this year to stay in your current bracket.",
			input.ConversionAmount.StringFixed(0), input.CurrentBracket(), ceiling.StringFixed(0))
	}

	result.WorthIt = result.NetBenefit.IsPositive() && result.BreakevenYears <= input.YearsUntilWithdrawal
	result.Verdict = verdictText(result)
	return result
}

// BreakevenYears approximates the years needed for a conversion to pay off as
// ceil(100 / rate spread in percentage points). It is 0 when the future rate is not higher.
func BreakevenYears(currentRate, futureRate decimal.Decimal) int {
	spread := futureRate.Sub(currentRate).Mul(decimal.NewFromInt(100))
	if !spread.IsPositive() {
		return 0
	}
	return int(decimal.NewFromInt(100).Div(spread).Ceil().IntPart())
}

// bracketCeiling returns the bracket room when the conversion amount exceeds it
func (ce *CalculationEngine) bracketCeiling(input domain.ConversionInput) (decimal.Decimal, bool) {
	ceiling, ok := ce.Assumptions.Roth.BracketCeilings[input.CurrentBracket()]
	if !ok {
		return decimal.Zero, false
	}
	if input.ConversionAmount.GreaterThan(ceiling) {
		return ceiling, true
	}
	return decimal.Zero, false
}

func verdictText(r domain.ConversionResult) string {
	switch {
	case r.WorthIt:
		return "Conversion appears favorable"
	case r.NetBenefit.IsPositive():
		return fmt.Sprintf("Conversion may not be optimal: breakeven of %d years exceeds the %d-year horizon",
			r.BreakevenYears, r.Input.YearsUntilWithdrawal)
	default:
		return "Conversion may not be optimal: no net tax benefit at these rates"
	}
}
