package output

import (
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"github.com/rgehrsitz/retirecalc/internal/domain"
	"github.com/shopspring/decimal"
)

// CSVFormatter formats results as CSV with plain two-decimal numbers
type CSVFormatter struct{}

func (cf *CSVFormatter) Name() string { return "csv" }

// FormatRoth writes a single row with the analysis figures
func (cf *CSVFormatter) FormatRoth(result *domain.ConversionResult) (string, error) {
	if result == nil {
		return "", fmt.Errorf("result cannot be nil")
	}
	capped := ""
	if result.IsCapped() {
		capped = result.RecommendedCappedAmount.StringFixed(2)
	}
	return writeCSV(
		[]string{"ConversionAmount", "TaxCostNow", "FutureValue", "TaxSavings", "NetBenefit", "BreakevenYears", "RecommendedCappedAmount", "WorthIt", "NetBenefitPlus20", "NetBenefitMinus20"},
		[][]string{{
			result.Input.ConversionAmount.StringFixed(2),
			result.TaxCostNow.StringFixed(2),
			result.FutureValueAtWithdrawal.StringFixed(2),
			result.TaxSavingsAtWithdrawal.StringFixed(2),
			result.NetBenefit.StringFixed(2),
			strconv.Itoa(result.BreakevenYears),
			capped,
			strconv.FormatBool(result.WorthIt),
			result.Sensitivity.Plus20Percent.StringFixed(2),
			result.Sensitivity.Minus20Percent.StringFixed(2),
		}},
	)
}

// FormatHECM writes the side-by-side balance projection, one row per year
func (cf *CSVFormatter) FormatHECM(result *domain.HECMComparison) (string, error) {
	if result == nil {
		return "", fmt.Errorf("result cannot be nil")
	}
	gov, prop := result.GovernmentInsured, result.Proprietary
	rows := make([][]string, 0, len(gov.Schedule))
	for i, y := range gov.Schedule {
		propBalance := decimal.Zero
		if i < len(prop.Schedule) {
			propBalance = prop.Schedule[i].Balance
		}
		rows = append(rows, []string{
			strconv.Itoa(y.Year),
			y.Balance.StringFixed(2),
			y.CumulativeInsurancePaid.StringFixed(2),
			propBalance.StringFixed(2),
		})
	}
	return writeCSV([]string{"Year", "GovernmentBalance", "GovernmentCumulativeMIP", "ProprietaryBalance"}, rows)
}

// FormatInheritedIRA writes the distribution schedule, one row per year
func (cf *CSVFormatter) FormatInheritedIRA(result *domain.InheritedIRAResult) (string, error) {
	if result == nil {
		return "", fmt.Errorf("result cannot be nil")
	}
	rows := make([][]string, 0, len(result.Schedule))
	for _, y := range result.Schedule {
		rows = append(rows, []string{
			strconv.Itoa(y.Year),
			strconv.Itoa(y.Age),
			y.StartingBalance.StringFixed(2),
			y.RequiredDistribution.StringFixed(2),
			y.Growth.StringFixed(2),
			y.EndingBalance.StringFixed(2),
			y.DivisorUsed.StringFixed(1),
			y.CumulativeDistributed.StringFixed(2),
			y.TaxOwed.StringFixed(2),
		})
	}
	return writeCSV([]string{"Year", "Age", "StartingBalance", "RequiredDistribution", "Growth", "EndingBalance", "Divisor", "CumulativeDistributed", "TaxOwed"}, rows)
}

// FormatBatch writes one summary row per outcome
func (cf *CSVFormatter) FormatBatch(outcomes []domain.CalculationOutcome) (string, error) {
	rows := make([][]string, 0, len(outcomes))
	for _, o := range outcomes {
		status := "ok"
		if !o.Succeeded() {
			status = "error"
		}
		label, value, verdict := headlineMetric(o)
		rows = append(rows, []string{o.Name, string(o.Calculator), status, label, value, verdict, o.Error})
	}
	return writeCSV([]string{"Name", "Calculator", "Status", "Metric", "Value", "Verdict", "Error"}, rows)
}

func writeCSV(header []string, rows [][]string) (string, error) {
	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	if err := writer.Write(header); err != nil {
		return "", err
	}
	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", err
	}

	return sb.String(), nil
}
