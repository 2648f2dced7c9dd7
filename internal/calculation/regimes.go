package calculation

import (
	"fmt"

	"github.com/rgehrsitz/retirecalc/internal/domain"
	"github.com/shopspring/decimal"
)

// DistributionRule computes the required distribution for one year of an inherited account.
// yearIndex is 1 for the first distribution year.
type DistributionRule interface {
	Regime() domain.DistributionRegime
	// MaxYears bounds the schedule length
	MaxYears() int
	// StopsBelowThreshold reports whether the schedule ends once the balance is effectively depleted
	StopsBelowThreshold() bool
	Required(yearIndex, age int, balance decimal.Decimal) (rmd, divisor decimal.Decimal)
}

// ResolveRegime selects the distribution regime for an inherited account
func ResolveRegime(input domain.InheritedIRAInput, rules domain.InheritedIRAAssumptions) (domain.DistributionRegime, error) {
	switch input.BeneficiaryType {
	case domain.BeneficiarySpouse:
		switch input.SpouseElection {
		case domain.ElectionRollover, "":
			return domain.RegimeSpousalRollover, nil
		case domain.ElectionKeepInherited:
			return domain.RegimeSpousalInherited, nil
		default:
			return 0, fmt.Errorf("%q: %w", input.SpouseElection, ErrUnknownSpouseElection)
		}
	case domain.BeneficiaryEligibleDesignated:
		return domain.RegimeEligibleDesignated, nil
	case domain.BeneficiaryDesignated:
		if input.OwnerDeathYear >= rules.SecureActYear {
			return domain.RegimeTenYearRule, nil
		}
		return domain.RegimePreSecureStretch, nil
	case domain.BeneficiaryNonDesignated:
		return domain.RegimeFiveYearRule, nil
	default:
		return 0, fmt.Errorf("%q: %w", input.BeneficiaryType, ErrUnknownBeneficiaryType)
	}
}

// NewDistributionRule builds the rule implementing a regime for the given input
func NewDistributionRule(regime domain.DistributionRegime, input domain.InheritedIRAInput, rules domain.InheritedIRAAssumptions) DistributionRule {
	initialLE := rules.SingleLife.Divisor(input.BeneficiaryCurrentAge)

	switch regime {
	case domain.RegimeSpousalRollover:
		return &RolloverRule{
			StartAge: rules.RequiredBeginningAge,
			Table:    rules.UniformLifetime,
			Years:    rules.RolloverCapYears,
		}
	case domain.RegimeSpousalInherited:
		return &RecalculatedLifeRule{
			Table: rules.SingleLife,
			Years: rules.StretchCapYears,
		}
	case domain.RegimeEligibleDesignated, domain.RegimePreSecureStretch:
		return &StretchRule{
			regime:    regime,
			InitialLE: initialLE,
			Years:     rules.StretchCapYears,
		}
	case domain.RegimeTenYearRule:
		return &WindowRule{
			regime:    regime,
			Window:    rules.TenYearWindow,
			Annual:    input.OwnerAgeAtDeath >= rules.RequiredBeginningAge,
			InitialLE: initialLE,
		}
	default:
		return &WindowRule{
			regime: domain.RegimeFiveYearRule,
			Window: rules.FiveYearWindow,
		}
	}
}

// RolloverRule treats the account as the spouse's own: nothing is required before
// StartAge, then balance / Uniform Lifetime divisor at the current age.
type RolloverRule struct {
	StartAge int
	Table    domain.LifeExpectancyTable
	Years    int
}

func (r *RolloverRule) Regime() domain.DistributionRegime { return domain.RegimeSpousalRollover }
func (r *RolloverRule) MaxYears() int                     { return r.Years }
func (r *RolloverRule) StopsBelowThreshold() bool         { return true }

func (r *RolloverRule) Required(_ int, age int, balance decimal.Decimal) (decimal.Decimal, decimal.Decimal) {
	if age < r.StartAge {
		return decimal.Zero, decimal.Zero
	}
	divisor := r.Table.Divisor(age)
	return balance.Div(divisor), divisor
}

// RecalculatedLifeRule looks the single-life divisor up again every year at the current age
type RecalculatedLifeRule struct {
	Table domain.LifeExpectancyTable
	Years int
}

func (r *RecalculatedLifeRule) Regime() domain.DistributionRegime {
	return domain.RegimeSpousalInherited
}
func (r *RecalculatedLifeRule) MaxYears() int             { return r.Years }
func (r *RecalculatedLifeRule) StopsBelowThreshold() bool { return true }

func (r *RecalculatedLifeRule) Required(_ int, age int, balance decimal.Decimal) (decimal.Decimal, decimal.Decimal) {
	divisor := r.Table.Divisor(age)
	return balance.Div(divisor), divisor
}

// StretchRule fixes the divisor from the first year's single-life lookup and
// subtracts one for every elapsed year.
type StretchRule struct {
	regime    domain.DistributionRegime
	InitialLE decimal.Decimal
	Years     int
}

func (r *StretchRule) Regime() domain.DistributionRegime { return r.regime }
func (r *StretchRule) MaxYears() int                     { return r.Years }
func (r *StretchRule) StopsBelowThreshold() bool         { return true }

func (r *StretchRule) Required(yearIndex, _ int, balance decimal.Decimal) (decimal.Decimal, decimal.Decimal) {
	divisor := decliningDivisor(r.InitialLE, yearIndex)
	return balance.Div(divisor), divisor
}

// WindowRule empties the account by the last year of a statutory window.
// With Annual set, earlier years take balance / declining single-life divisor; otherwise nothing.
type WindowRule struct {
	regime    domain.DistributionRegime
	Window    int
	Annual    bool
	InitialLE decimal.Decimal
}

func (r *WindowRule) Regime() domain.DistributionRegime { return r.regime }
func (r *WindowRule) MaxYears() int                     { return r.Window }
func (r *WindowRule) StopsBelowThreshold() bool         { return false }

func (r *WindowRule) Required(yearIndex, _ int, balance decimal.Decimal) (decimal.Decimal, decimal.Decimal) {
	if yearIndex >= r.Window {
		return balance, decimal.Zero
	}
	if !r.Annual {
		return decimal.Zero, decimal.Zero
	}
	divisor := decliningDivisor(r.InitialLE, yearIndex)
	return balance.Div(divisor), divisor
}

// decliningDivisor is the initial divisor less the years already elapsed, floored at 1.0
func decliningDivisor(initial decimal.Decimal, yearIndex int) decimal.Decimal {
	return decimal.Max(initial.Sub(decimal.NewFromInt(int64(yearIndex-1))), domain.MinimumDivisor)
}

// RegimeName returns a display name for a regime
func RegimeName(r domain.DistributionRegime) string {
	switch r {
	case domain.RegimeSpousalRollover:
		return "Spousal Rollover"
	case domain.RegimeSpousalInherited:
		return "Spousal Inherited IRA"
	case domain.RegimeEligibleDesignated:
		return "Eligible Designated Beneficiary (Stretch)"
	case domain.RegimeTenYearRule:
		return "10-Year Rule"
	case domain.RegimePreSecureStretch:
		return "Pre-2020 Life Expectancy Stretch"
	case domain.RegimeFiveYearRule:
		return "5-Year Rule"
	default:
		return "Unknown"
	}
}

// RegimeExplanation describes the distribution rule that applies to the input
func RegimeExplanation(r domain.DistributionRegime, input domain.InheritedIRAInput, rules domain.InheritedIRAAssumptions) string {
	switch r {
	case domain.RegimeSpousalRollover:
		return fmt.Sprintf("As a surviving spouse who rolled the account into your own IRA, no distributions are required until age %d. "+
			"After that, RMDs use the Uniform Lifetime Table.", rules.RequiredBeginningAge)
	case domain.RegimeSpousalInherited:
		return "As a surviving spouse keeping an inherited IRA, RMDs use the Single Life Expectancy Table, " +
			"recalculated at your age each year."
	case domain.RegimeEligibleDesignated:
		return "As an eligible designated beneficiary you may stretch distributions over your life expectancy. " +
			"The first-year divisor comes from the Single Life Table and drops by one each year."
	case domain.RegimeTenYearRule:
		if input.OwnerAgeAtDeath >= rules.RequiredBeginningAge {
			return fmt.Sprintf("The owner died on or after the required beginning date (age %d), so annual RMDs are required in years 1-%d "+
				"and the account must be empty by the end of year %d.", rules.RequiredBeginningAge, rules.TenYearWindow-1, rules.TenYearWindow)
		}
		return fmt.Sprintf("The owner died before the required beginning date, so no annual RMDs are required, "+
			"but the account must be empty by the end of year %d after death.", rules.TenYearWindow)
	case domain.RegimePreSecureStretch:
		return fmt.Sprintf("The owner died before %d, so the pre-SECURE Act life expectancy stretch still applies.", rules.SecureActYear)
	case domain.RegimeFiveYearRule:
		return fmt.Sprintf("Non-designated beneficiaries such as estates must withdraw the full balance by the end of the %dth year after death (%d).",
			rules.FiveYearWindow, input.OwnerDeathYear+rules.FiveYearWindow)
	default:
		return ""
	}
}
