package calculation

import (
	"fmt"

	"github.com/rgehrsitz/retirecalc/internal/domain"
	"github.com/shopspring/decimal"
)

// CalculateHECM estimates reverse mortgage proceeds for the government-insured and
// proprietary products and compares them.
func (ce *CalculationEngine) CalculateHECM(input domain.HECMInput) (*domain.HECMComparison, error) {
	rules := ce.Assumptions.HECM
	age := input.EffectiveAge()

	rate, err := decimal.NewFromString(input.ExpectedRate)
	if err != nil {
		return nil, fmt.Errorf("expected rate %q: %w", input.ExpectedRate, ErrUnknownRate)
	}
	rate = rate.Div(decimal.NewFromInt(100))

	govPLF, err := lookupPLF(rules.GovernmentPLF, age, input.ExpectedRate)
	if err != nil {
		return nil, fmt.Errorf("government-insured PLF: %w", err)
	}
	propPLF, err := lookupPLF(rules.ProprietaryPLF, age, input.ExpectedRate)
	if err != nil {
		return nil, fmt.Errorf("proprietary PLF: %w", err)
	}

	gov := ce.governmentInsured(input, govPLF, rate)
	prop := ce.proprietary(input, propPLF, rate)

	comparison := &domain.HECMComparison{
		Input:               input,
		EffectiveAge:        age,
		GovernmentInsured:   gov,
		Proprietary:         prop,
		ComparisonYear:      rules.ComparisonYear,
		ExceedsLendingLimit: input.HomeValue.GreaterThan(rules.LendingLimit),
	}

	comparison.ProceedsWinner = domain.GovernmentInsured
	if prop.NetProceeds.GreaterThan(gov.NetProceeds) {
		comparison.ProceedsWinner = domain.Proprietary
	}

	comparison.BalanceWinner = domain.GovernmentInsured
	govBalance, _ := gov.BalanceAt(rules.ComparisonYear)
	propBalance, _ := prop.BalanceAt(rules.ComparisonYear)
	if propBalance.LessThan(govBalance) {
		comparison.BalanceWinner = domain.Proprietary
	}

	// Above the lending limit the FHA product cannot see the excess value
	if comparison.ExceedsLendingLimit {
		comparison.Recommended = domain.Proprietary
		comparison.Rationale = fmt.Sprintf("Home value exceeds the $%s FHA lending limit; a proprietary loan can borrow against the full value.",
			rules.LendingLimit.StringFixed(0))
	} else {
		comparison.Recommended = comparison.ProceedsWinner
		comparison.Rationale = fmt.Sprintf("%s provides higher net proceeds.", comparison.ProceedsWinner)
		if comparison.BalanceWinner != comparison.ProceedsWinner {
			comparison.Rationale += fmt.Sprintf(" %s carries the lower balance at year %d.", comparison.BalanceWinner, rules.ComparisonYear)
		}
	}

	ce.debugf("hecm: age=%d rate=%s gov_plf=%s prop_plf=%s gov_net=%s prop_net=%s recommended=%s",
		age, input.ExpectedRate, govPLF.String(), propPLF.String(),
		gov.NetProceeds.StringFixed(2), prop.NetProceeds.StringFixed(2), comparison.Recommended)

	return comparison, nil
}

// lookupPLF floors age to the nearest bracket at or below it. Ages below the youngest
// bracket are ineligible and rates must be one of the table's columns.
func lookupPLF(table domain.PLFTable, age int, rate string) (decimal.Decimal, error) {
	factor, bracket, bracketOK, rateOK := table.Lookup(age, rate)
	if !bracketOK {
		return decimal.Zero, fmt.Errorf("age %d (minimum %d): %w", age, table.MinimumAge(), ErrBelowMinimumAge)
	}
	if !rateOK {
		return decimal.Zero, fmt.Errorf("rate %q at age bracket %d: %w", rate, bracket, ErrUnknownRate)
	}
	return factor, nil
}

func (ce *CalculationEngine) governmentInsured(input domain.HECMInput, plf, rate decimal.Decimal) domain.HECMResult {
	rules := ce.Assumptions.HECM

	assessed := decimal.Min(input.HomeValue, rules.LendingLimit)
	origination := clamp(assessed.Mul(rules.GovernmentOriginationRate), rules.OriginationFloor, rules.OriginationCeiling)
	upfrontMIP := assessed.Mul(rules.UpfrontMIPRate)

	result := domain.HECMResult{
		Product:                    domain.GovernmentInsured,
		AssessedValue:              assessed,
		PrincipalLimitFactor:       plf,
		PrincipalLimit:             assessed.Mul(plf),
		OriginationFee:             origination,
		UpfrontInsurancePremium:    upfrontMIP,
		OtherClosingCosts:          rules.GovernmentClosingCosts,
		AnnualInsurancePremiumRate: rules.AnnualMIPRate,
	}
	ce.finishHECM(&result, input, rate)
	return result
}

func (ce *CalculationEngine) proprietary(input domain.HECMInput, plf, rate decimal.Decimal) domain.HECMResult {
	rules := ce.Assumptions.HECM

	result := domain.HECMResult{
		Product:                    domain.Proprietary,
		AssessedValue:              input.HomeValue,
		PrincipalLimitFactor:       plf,
		PrincipalLimit:             input.HomeValue.Mul(plf),
		OriginationFee:             input.HomeValue.Mul(rules.ProprietaryOriginationRate),
		UpfrontInsurancePremium:    decimal.Zero,
		OtherClosingCosts:          rules.ProprietaryClosingCosts,
		AnnualInsurancePremiumRate: decimal.Zero,
	}
	ce.finishHECM(&result, input, rate)
	return result
}

// finishHECM derives costs, net proceeds and the balance projection from the priced fields
func (ce *CalculationEngine) finishHECM(result *domain.HECMResult, input domain.HECMInput, rate decimal.Decimal) {
	result.TotalCosts = result.OriginationFee.Add(result.UpfrontInsurancePremium).Add(result.OtherClosingCosts)
	result.NetProceeds = decimal.Max(decimal.Zero,
		result.PrincipalLimit.Sub(input.ExistingMortgageBalance).Sub(result.TotalCosts))

	opening := input.ExistingMortgageBalance.Add(result.TotalCosts).Add(result.NetProceeds)
	result.Schedule = ProjectLoanBalance(opening, rate, result.AnnualInsurancePremiumRate, ce.Assumptions.HECM.ProjectionYears)
}

// ProjectLoanBalance compounds a reverse mortgage balance at rate plus the annual
// insurance premium. The premium for each year is charged on that year's opening balance.
func ProjectLoanBalance(opening, rate, premiumRate decimal.Decimal, years int) []domain.HECMScheduleYear {
	schedule := make([]domain.HECMScheduleYear, 0, years)
	growth := decimal.NewFromInt(1).Add(rate).Add(premiumRate)
	balance := opening
	cumulativePremium := decimal.Zero

	for year := 1; year <= years; year++ {
		cumulativePremium = cumulativePremium.Add(balance.Mul(premiumRate))
		balance = balance.Mul(growth)
		schedule = append(schedule, domain.HECMScheduleYear{
			Year:                    year,
			Balance:                 balance,
			CumulativeInsurancePaid: cumulativePremium,
		})
	}
	return schedule
}

func clamp(v, lo, hi decimal.Decimal) decimal.Decimal {
	return decimal.Min(decimal.Max(v, lo), hi)
}
