package calculation

import (
	"github.com/rgehrsitz/retirecalc/internal/domain"
	"github.com/shopspring/decimal"
)

// CalculateInheritedIRA projects required distributions for an inherited account under
// the regime that applies to the beneficiary.
func (ce *CalculationEngine) CalculateInheritedIRA(input domain.InheritedIRAInput) (*domain.InheritedIRAResult, error) {
	rules := ce.Assumptions.InheritedIRA

	regime, err := ResolveRegime(input, rules)
	if err != nil {
		return nil, err
	}
	rule := NewDistributionRule(regime, input, rules)

	result := &domain.InheritedIRAResult{
		Input:              input,
		Regime:             regime,
		RegimeName:         RegimeName(regime),
		RegimeExplanation:  RegimeExplanation(regime, input, rules),
		FirstYearRMD:       decimal.Zero,
		TotalDistributions: decimal.Zero,
		TotalTaxes:         decimal.Zero,
	}
	result.Schedule = ProjectDistributions(input, rule, rules.DepletionThreshold)

	for i, row := range result.Schedule {
		if i == 0 {
			result.FirstYearRMD = row.RequiredDistribution
		}
		if !result.Depleted && row.EndingBalance.LessThan(rules.DepletionThreshold) {
			result.Depleted = true
			result.YearsToDeplete = i + 1
		}
	}
	if n := len(result.Schedule); n > 0 {
		result.TotalDistributions = result.Schedule[n-1].CumulativeDistributed
		result.TotalTaxes = result.Schedule[n-1].CumulativeTax
	}

	ce.debugf("inherited ira: regime=%s years=%d first_rmd=%s total=%s depleted=%t",
		regime, len(result.Schedule), result.FirstYearRMD.StringFixed(2),
		result.TotalDistributions.StringFixed(2), result.Depleted)

	return result, nil
}

// ProjectDistributions runs the shared year-by-year amortization for a rule.
// Growth applies to what remains after the distribution, and the distribution never
// exceeds the starting balance.
func ProjectDistributions(input domain.InheritedIRAInput, rule DistributionRule, threshold decimal.Decimal) []domain.RMDYear {
	schedule := make([]domain.RMDYear, 0, rule.MaxYears())
	balance := input.AccountBalance
	cumulative := decimal.Zero
	cumulativeTax := decimal.Zero

	for k := 1; k <= rule.MaxYears(); k++ {
		age := input.BeneficiaryCurrentAge + k - 1
		start := balance

		rmd, divisor := rule.Required(k, age, start)
		rmd = clamp(rmd, decimal.Zero, decimal.Max(start, decimal.Zero))

		remaining := start.Sub(rmd)
		growth := remaining.Mul(input.AssumedGrowthRate)
		ending := decimal.Max(decimal.Zero, remaining.Add(growth))
		tax := rmd.Mul(input.AssumedTaxRate)

		cumulative = cumulative.Add(rmd)
		cumulativeTax = cumulativeTax.Add(tax)

		schedule = append(schedule, domain.RMDYear{
			Year:                  input.FirstDistributionYear() + k - 1,
			Age:                   age,
			StartingBalance:       start,
			RequiredDistribution:  rmd,
			Growth:                growth,
			EndingBalance:         ending,
			DivisorUsed:           divisor,
			CumulativeDistributed: cumulative,
			TaxOwed:               tax,
			CumulativeTax:         cumulativeTax,
		})

		balance = ending
		if rule.StopsBelowThreshold() && ending.LessThan(threshold) {
			break
		}
	}
	return schedule
}
