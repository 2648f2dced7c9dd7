package output

import (
	"fmt"
	"strings"

	"github.com/rgehrsitz/retirecalc/internal/domain"
)

const ruleWidth = 72

// TableFormatter formats results as console tables
type TableFormatter struct{}

func (tf *TableFormatter) Name() string { return "table" }

func (tf *TableFormatter) FormatRoth(result *domain.ConversionResult) (string, error) {
	if result == nil {
		return "", fmt.Errorf("result cannot be nil")
	}
	in := result.Input
	var sb strings.Builder

	header(&sb, "ROTH CONVERSION ANALYSIS")
	sb.WriteString(fmt.Sprintf("Traditional Balance:       %s\n", FormatCurrency(in.TraditionalBalance)))
	sb.WriteString(fmt.Sprintf("Conversion Amount:         %s\n", FormatCurrency(in.ConversionAmount)))
	sb.WriteString(fmt.Sprintf("Tax Rate Now / Later:      %s / %s\n", FormatPercent(in.CurrentTaxRate), FormatPercent(in.FutureTaxRate)))
	sb.WriteString(fmt.Sprintf("Years Until Withdrawal:    %d\n\n", in.YearsUntilWithdrawal))

	sb.WriteString(fmt.Sprintf("Tax Cost Today:            %s\n", FormatCurrency(result.TaxCostNow)))
	sb.WriteString(fmt.Sprintf("Value at Withdrawal:       %s\n", FormatCurrency(result.FutureValueAtWithdrawal)))
	sb.WriteString(fmt.Sprintf("Tax Avoided at Withdrawal: %s\n", FormatCurrency(result.TaxSavingsAtWithdrawal)))
	sb.WriteString(fmt.Sprintf("Net Benefit:               %s\n", FormatCurrency(result.NetBenefit)))
	sb.WriteString(fmt.Sprintf("Breakeven:                 %s\n", FormatYears(result.BreakevenYears)))
	if in.ConversionAmount.IsPositive() {
		sb.WriteString(fmt.Sprintf("Net Benefit at +/-20%%:     %s / %s\n",
			FormatCurrency(result.Sensitivity.Plus20Percent), FormatCurrency(result.Sensitivity.Minus20Percent)))
	}
	sb.WriteString("\n")

	if result.IsCapped() {
		sb.WriteString(fmt.Sprintf("NOTE: %s\n\n", result.Advisory))
	}
	sb.WriteString(fmt.Sprintf("VERDICT: %s\n", result.Verdict))
	return sb.String(), nil
}

func (tf *TableFormatter) FormatHECM(result *domain.HECMComparison) (string, error) {
	if result == nil {
		return "", fmt.Errorf("result cannot be nil")
	}
	gov, prop := result.GovernmentInsured, result.Proprietary
	var sb strings.Builder

	header(&sb, "REVERSE MORTGAGE COMPARISON")
	sb.WriteString(fmt.Sprintf("Effective Age: %d    Home Value: %s    Mortgage Payoff: %s    Rate: %s%%\n\n",
		result.EffectiveAge, FormatCurrency(result.Input.HomeValue),
		FormatCurrency(result.Input.ExistingMortgageBalance), result.Input.ExpectedRate))

	labelWidth, colWidth := 26, 20
	row := func(label, a, b string) {
		sb.WriteString(fmt.Sprintf("%-*s %*s %*s\n", labelWidth, label, colWidth, a, colWidth, b))
	}
	row("", gov.Product.String(), prop.Product.String())
	sb.WriteString(strings.Repeat("-", ruleWidth) + "\n")
	row("Assessed Value", FormatCurrency(gov.AssessedValue), FormatCurrency(prop.AssessedValue))
	row("Principal Limit Factor", gov.PrincipalLimitFactor.StringFixed(3), prop.PrincipalLimitFactor.StringFixed(3))
	row("Principal Limit", FormatCurrency(gov.PrincipalLimit), FormatCurrency(prop.PrincipalLimit))
	row("Origination Fee", FormatCurrency(gov.OriginationFee), FormatCurrency(prop.OriginationFee))
	row("Upfront Insurance (MIP)", FormatCurrency(gov.UpfrontInsurancePremium), FormatCurrency(prop.UpfrontInsurancePremium))
	row("Other Closing Costs", FormatCurrency(gov.OtherClosingCosts), FormatCurrency(prop.OtherClosingCosts))
	row("Total Costs", FormatCurrency(gov.TotalCosts), FormatCurrency(prop.TotalCosts))
	row("Net Proceeds", FormatCurrency(gov.NetProceeds), FormatCurrency(prop.NetProceeds))
	row("Annual MIP", FormatPercent(gov.AnnualInsurancePremiumRate), FormatPercent(prop.AnnualInsurancePremiumRate))
	sb.WriteString("\n")

	sb.WriteString("LOAN BALANCE PROJECTION\n")
	sb.WriteString(fmt.Sprintf("%-6s %*s %*s %*s\n", "Year", colWidth, "FHA Balance", colWidth, "Cumulative MIP", colWidth, "Proprietary"))
	sb.WriteString(strings.Repeat("-", ruleWidth) + "\n")
	for i, y := range gov.Schedule {
		propBalance := ""
		if i < len(prop.Schedule) {
			propBalance = FormatCurrency(prop.Schedule[i].Balance)
		}
		sb.WriteString(fmt.Sprintf("%-6d %*s %*s %*s\n", y.Year,
			colWidth, FormatCurrency(y.Balance), colWidth, FormatCurrency(y.CumulativeInsurancePaid), colWidth, propBalance))
	}
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("Higher Net Proceeds:       %s\n", result.ProceedsWinner))
	sb.WriteString(fmt.Sprintf("Lower Balance at Year %-3d  %s\n", result.ComparisonYear, result.BalanceWinner))
	sb.WriteString(fmt.Sprintf("RECOMMENDED: %s\n", result.Recommended))
	sb.WriteString(result.Rationale + "\n")
	return sb.String(), nil
}

func (tf *TableFormatter) FormatInheritedIRA(result *domain.InheritedIRAResult) (string, error) {
	if result == nil {
		return "", fmt.Errorf("result cannot be nil")
	}
	var sb strings.Builder

	header(&sb, "INHERITED IRA DISTRIBUTION SCHEDULE")
	sb.WriteString(fmt.Sprintf("Regime: %s\n", result.RegimeName))
	sb.WriteString(result.RegimeExplanation + "\n\n")

	sb.WriteString(fmt.Sprintf("%-6s %-4s %14s %14s %14s %8s %14s\n",
		"Year", "Age", "Start", "Distribution", "End", "Divisor", "Tax"))
	sb.WriteString(strings.Repeat("-", 80) + "\n")
	for _, y := range result.Schedule {
		sb.WriteString(fmt.Sprintf("%-6d %-4d %14s %14s %14s %8s %14s\n",
			y.Year, y.Age, FormatCurrency(y.StartingBalance), FormatCurrency(y.RequiredDistribution),
			FormatCurrency(y.EndingBalance), divisorOrDash(y.DivisorUsed), FormatCurrency(y.TaxOwed)))
	}
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("First-Year RMD:       %s\n", FormatCurrency(result.FirstYearRMD)))
	sb.WriteString(fmt.Sprintf("Total Distributions:  %s\n", FormatCurrency(result.TotalDistributions)))
	sb.WriteString(fmt.Sprintf("Total Taxes:          %s\n", FormatCurrency(result.TotalTaxes)))
	if result.Depleted {
		sb.WriteString(fmt.Sprintf("Account Depleted In:  %s\n", FormatYears(result.YearsToDeplete)))
	} else {
		sb.WriteString(fmt.Sprintf("Account Depleted In:  not within %d years\n", len(result.Schedule)))
	}
	return sb.String(), nil
}

// FormatBatch prints a summary table followed by each successful result in full
func (tf *TableFormatter) FormatBatch(outcomes []domain.CalculationOutcome) (string, error) {
	var sb strings.Builder

	header(&sb, "BATCH RESULTS")
	sb.WriteString(fmt.Sprintf("%-24s %-14s %-16s %16s\n", "Name", "Calculator", "Metric", "Value"))
	sb.WriteString(strings.Repeat("-", ruleWidth) + "\n")
	failed := 0
	for _, o := range outcomes {
		if !o.Succeeded() {
			failed++
			sb.WriteString(fmt.Sprintf("%-24s %-14s ERROR: %s\n", o.Name, o.Calculator, o.Error))
			continue
		}
		label, value, _ := headlineMetric(o)
		sb.WriteString(fmt.Sprintf("%-24s %-14s %-16s %16s\n", o.Name, o.Calculator, label, value))
	}
	sb.WriteString(fmt.Sprintf("\n%d calculations, %d failed\n", len(outcomes), failed))

	for _, o := range outcomes {
		var detail string
		var err error
		switch {
		case o.Roth != nil:
			detail, err = tf.FormatRoth(o.Roth)
		case o.HECM != nil:
			detail, err = tf.FormatHECM(o.HECM)
		case o.InheritedIRA != nil:
			detail, err = tf.FormatInheritedIRA(o.InheritedIRA)
		default:
			continue
		}
		if err != nil {
			return "", fmt.Errorf("%s: %w", o.Name, err)
		}
		sb.WriteString(fmt.Sprintf("\n[%s]\n", o.Name))
		sb.WriteString(detail)
	}
	return sb.String(), nil
}

func header(sb *strings.Builder, title string) {
	sb.WriteString(title + "\n")
	sb.WriteString(strings.Repeat("=", ruleWidth) + "\n")
}
