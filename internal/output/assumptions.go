package output

import (
	"fmt"
	"strings"

	"github.com/rgehrsitz/retirecalc/internal/domain"
)

// AssumptionLines lists the key modeling constants rendered by the tables command
func AssumptionLines(a *domain.Assumptions) []string {
	h, ira := a.HECM, a.InheritedIRA
	return []string{
		fmt.Sprintf("Roth growth rate: %s annually", FormatPercent(a.Roth.GrowthRate)),
		fmt.Sprintf("FHA lending limit: %s", FormatCurrency(h.LendingLimit)),
		fmt.Sprintf("FHA origination: %s of assessed value, %s minimum, %s maximum",
			FormatPercent(h.GovernmentOriginationRate), FormatCurrency(h.OriginationFloor), FormatCurrency(h.OriginationCeiling)),
		fmt.Sprintf("FHA mortgage insurance: %s upfront, %s annually", FormatPercent(h.UpfrontMIPRate), FormatPercent(h.AnnualMIPRate)),
		fmt.Sprintf("Closing costs: %s FHA, %s proprietary", FormatCurrency(h.GovernmentClosingCosts), FormatCurrency(h.ProprietaryClosingCosts)),
		fmt.Sprintf("Loan projection: %d years, compared at year %d", h.ProjectionYears, h.ComparisonYear),
		fmt.Sprintf("Required beginning age: %d; SECURE Act applies to deaths from %d", ira.RequiredBeginningAge, ira.SecureActYear),
		fmt.Sprintf("Distribution windows: %d and %d years; caps %d (rollover) and %d (stretch) years",
			ira.TenYearWindow, ira.FiveYearWindow, ira.RolloverCapYears, ira.StretchCapYears),
		fmt.Sprintf("Depletion threshold: %s", FormatCurrency(ira.DepletionThreshold)),
	}
}

// FormatAssumptions renders the active assumptions and lookup tables as text
func FormatAssumptions(a *domain.Assumptions) string {
	var sb strings.Builder

	header(&sb, fmt.Sprintf("ASSUMPTIONS (tax year %d)", a.Metadata.TaxYear))
	if a.Metadata.Description != "" {
		sb.WriteString(a.Metadata.Description + "\n\n")
	}
	for _, line := range AssumptionLines(a) {
		sb.WriteString("  " + line + "\n")
	}

	sb.WriteString("\nBRACKET ROOM (single filer)\n")
	for _, bracket := range domain.SortedKeys(a.Roth.BracketCeilings) {
		sb.WriteString(fmt.Sprintf("  %3d%%  %12s\n", bracket, FormatCurrency(a.Roth.BracketCeilings[bracket])))
	}

	writePLF(&sb, "GOVERNMENT-INSURED PLF", a.HECM.GovernmentPLF)
	writePLF(&sb, "PROPRIETARY PLF", a.HECM.ProprietaryPLF)
	writeLifeTable(&sb, "SINGLE LIFE EXPECTANCY", a.InheritedIRA.SingleLife)
	writeLifeTable(&sb, "UNIFORM LIFETIME", a.InheritedIRA.UniformLifetime)
	return sb.String()
}

func writePLF(sb *strings.Builder, title string, table domain.PLFTable) {
	rates := table.Rates()
	sb.WriteString("\n" + title + "\n")
	sb.WriteString(fmt.Sprintf("  %-5s", "Age"))
	for _, rate := range rates {
		sb.WriteString(fmt.Sprintf(" %7s", rate+"%"))
	}
	sb.WriteString("\n")
	for _, age := range domain.SortedKeys(table) {
		sb.WriteString(fmt.Sprintf("  %-5d", age))
		for _, rate := range rates {
			cell := "-"
			if f, ok := table[age][rate]; ok {
				cell = f.StringFixed(3)
			}
			sb.WriteString(fmt.Sprintf(" %7s", cell))
		}
		sb.WriteString("\n")
	}
}

// writeLifeTable prints ages ten to a line
func writeLifeTable(sb *strings.Builder, title string, table domain.LifeExpectancyTable) {
	sb.WriteString("\n" + title + "\n")
	ages := domain.SortedKeys(table)
	for i, age := range ages {
		if i%10 == 0 {
			if i > 0 {
				sb.WriteString("\n")
			}
			sb.WriteString(fmt.Sprintf("  %3d:", age))
		}
		sb.WriteString(fmt.Sprintf(" %5s", table[age].StringFixed(1)))
	}
	if len(ages) > 0 {
		sb.WriteString("\n")
	}
}
