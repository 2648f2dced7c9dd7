package output

import (
	"fmt"
	"strings"

	"github.com/rgehrsitz/retirecalc/internal/domain"
)

// Formatter renders calculator results in one output format
type Formatter interface {
	Name() string
	FormatRoth(result *domain.ConversionResult) (string, error)
	FormatHECM(result *domain.HECMComparison) (string, error)
	FormatInheritedIRA(result *domain.InheritedIRAResult) (string, error)
	FormatBatch(outcomes []domain.CalculationOutcome) (string, error)
}

// Formats lists the supported format names
var Formats = []string{"table", "json", "csv"}

// NewFormatter creates a formatter based on the format name
func NewFormatter(format string) (Formatter, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "table", "console", "":
		return &TableFormatter{}, nil
	case "json":
		return &JSONFormatter{Pretty: true}, nil
	case "csv":
		return &CSVFormatter{}, nil
	default:
		return nil, fmt.Errorf("unsupported format: %s (expected one of %s)", format, strings.Join(Formats, ", "))
	}
}

// headlineMetric is the single number a batch summary shows for an outcome
func headlineMetric(o domain.CalculationOutcome) (label, value, verdict string) {
	switch {
	case o.Roth != nil:
		return "net_benefit", o.Roth.NetBenefit.StringFixed(2), o.Roth.Verdict
	case o.HECM != nil:
		best := o.HECM.GovernmentInsured
		if o.HECM.Recommended == domain.Proprietary {
			best = o.HECM.Proprietary
		}
		return "net_proceeds", best.NetProceeds.StringFixed(2), "Recommended: " + o.HECM.Recommended.String()
	case o.InheritedIRA != nil:
		return "first_year_rmd", o.InheritedIRA.FirstYearRMD.StringFixed(2), o.InheritedIRA.RegimeName
	default:
		return "", "", ""
	}
}
