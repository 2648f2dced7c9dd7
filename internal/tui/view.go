package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rgehrsitz/retirecalc/internal/domain"
	"github.com/rgehrsitz/retirecalc/internal/output"
	"github.com/rgehrsitz/retirecalc/internal/tui/components"
	"github.com/rgehrsitz/retirecalc/internal/tui/tuistyles"
	"github.com/shopspring/decimal"
)

// View renders the current state (required by tea.Model interface)
func (m Model) View() string {
	if m.err != nil {
		return tuistyles.AppStyle.Render(
			tuistyles.ErrorStyle.Render("Error: "+m.err.Error()) + "\n\n" +
				tuistyles.SubtitleStyle.Render("Press q to quit"))
	}
	if m.loading || m.forms[m.currentScene] == nil {
		return tuistyles.AppStyle.Render(tuistyles.InfoStyle.Render("Loading assumptions..."))
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		tuistyles.ActiveBorderStyle.Render(m.renderForm()),
		"  ",
		m.renderResults(),
	)

	return tuistyles.AppStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		m.renderTabs(),
		"",
		body,
		tuistyles.StatusBarStyle.Width(max(40, m.width-4)).Render(m.help.View(m.keys)),
	))
}

func (m Model) renderTabs() string {
	tabs := make([]string, 0, sceneCount)
	for s := Scene(0); s < sceneCount; s++ {
		label := fmt.Sprintf("%d %s", int(s)+1, s)
		if s == m.currentScene {
			tabs = append(tabs, tuistyles.ActiveTabStyle.Render(label))
		} else {
			tabs = append(tabs, tuistyles.TabStyle.Render(label))
		}
	}
	title := tuistyles.TitleStyle.Render("retirecalc") + "  " +
		tuistyles.SubtitleStyle.Render(fmt.Sprintf("tax year %d", m.engine.Assumptions.Metadata.TaxYear))
	return title + "\n" + lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) renderForm() string {
	f := m.forms[m.currentScene]
	rows := make([]string, 0, len(f.sliders))
	for _, s := range f.sliders {
		rows = append(rows, s.Render())
	}
	return strings.Join(rows, "\n")
}

func (m Model) renderResults() string {
	if err := m.calcErr[m.currentScene]; err != nil {
		return tuistyles.ErrorStyle.Render(err.Error())
	}

	switch m.currentScene {
	case SceneRoth:
		if m.roth != nil {
			return renderRoth(m.roth)
		}
	case SceneHECM:
		if m.hecm != nil {
			return renderHECM(m.hecm)
		}
	case SceneInheritedIRA:
		if m.inherited != nil {
			return renderInherited(m.inherited)
		}
	}
	return tuistyles.InfoStyle.Render("Calculating...")
}

func tone(v decimal.Decimal) tuistyles.Tone {
	switch {
	case v.IsPositive():
		return tuistyles.TonePositive
	case v.IsNegative():
		return tuistyles.ToneNegative
	default:
		return tuistyles.ToneNeutral
	}
}

func renderRoth(r *domain.ConversionResult) string {
	breakeven := "none"
	if r.BreakevenYears > 0 {
		breakeven = output.FormatYears(r.BreakevenYears)
	}
	cards := []*components.MetricCard{
		components.NewMetricCard("Tax due now", output.FormatCurrency(r.TaxCostNow)),
		components.NewMetricCard("Value at withdrawal", output.FormatCurrency(r.FutureValueAtWithdrawal)),
		components.NewMetricCard("Tax avoided later", output.FormatCurrency(r.TaxSavingsAtWithdrawal)),
		components.NewMetricCard("Net benefit", output.FormatCurrency(r.NetBenefit)).WithTone(tone(r.NetBenefit)),
		components.NewMetricCard("Breakeven", breakeven),
		components.NewMetricCard("Growth ±20%",
			output.FormatCurrency(r.Sensitivity.Minus20Percent)+" / "+output.FormatCurrency(r.Sensitivity.Plus20Percent)),
	}

	var sb strings.Builder
	sb.WriteString(components.MetricGrid(cards, 3))
	sb.WriteString("\n")
	if r.RecommendedCappedAmount != nil {
		sb.WriteString(tuistyles.InfoStyle.Render("Stay in bracket: convert up to " + output.FormatCurrency(*r.RecommendedCappedAmount)))
		sb.WriteString("\n")
	}
	if r.Advisory != "" {
		sb.WriteString(tuistyles.InfoStyle.Render(r.Advisory))
		sb.WriteString("\n")
	}
	sb.WriteString(tuistyles.VerdictStyle.Render(r.Verdict))
	return sb.String()
}

func renderHECM(c *domain.HECMComparison) string {
	gov, prop := c.GovernmentInsured, c.Proprietary
	card := func(r domain.HECMResult) *components.MetricCard {
		note := fmt.Sprintf("limit %s, costs %s", output.FormatCurrency(r.PrincipalLimit), output.FormatCurrency(r.TotalCosts))
		mc := components.NewMetricCard(r.Product.String(), output.FormatCurrency(r.NetProceeds)).WithNote(note).WithWidth(34)
		if r.Product == c.Recommended {
			mc = mc.WithTone(tuistyles.TonePositive)
		}
		return mc
	}

	labels := make([]string, 0, len(gov.Schedule))
	govPoints := make([]float64, 0, len(gov.Schedule))
	propPoints := make([]float64, 0, len(prop.Schedule))
	for i, y := range gov.Schedule {
		if y.Year%3 != 0 && y.Year != 1 {
			continue
		}
		labels = append(labels, "yr "+strconv.Itoa(y.Year))
		govPoints = append(govPoints, y.Balance.InexactFloat64())
		if i < len(prop.Schedule) {
			propPoints = append(propPoints, prop.Schedule[i].Balance.InexactFloat64())
		}
	}
	chart := components.NewBarChart("Loan balance").
		WithLabels(labels).
		AddSeries(gov.Product.String(), govPoints, tuistyles.ColorChartLine1).
		AddSeries(prop.Product.String(), propPoints, tuistyles.ColorChartLine2)

	return lipgloss.JoinVertical(lipgloss.Left,
		components.MetricGrid([]*components.MetricCard{card(gov), card(prop)}, 2),
		tuistyles.VerdictStyle.Render(c.Rationale),
		"",
		chart.Render(),
	)
}

func renderInherited(r *domain.InheritedIRAResult) string {
	cards := []*components.MetricCard{
		components.NewMetricCard("Regime", r.RegimeName),
		components.NewMetricCard("First-year RMD", output.FormatCurrency(r.FirstYearRMD)),
		components.NewMetricCard("Total distributed", output.FormatCurrency(r.TotalDistributions)),
		components.NewMetricCard("Total tax", output.FormatCurrency(r.TotalTaxes)).WithTone(tuistyles.ToneNegative),
	}

	shown := r.Schedule
	if len(shown) > 12 {
		shown = shown[:12]
	}
	labels := make([]string, 0, len(shown))
	points := make([]float64, 0, len(shown))
	for _, y := range shown {
		labels = append(labels, strconv.Itoa(y.Year))
		points = append(points, y.RequiredDistribution.InexactFloat64())
	}
	title := "Required distributions"
	if len(r.Schedule) > len(shown) {
		title = fmt.Sprintf("Required distributions (first %d of %d years)", len(shown), len(r.Schedule))
	}
	chart := components.NewBarChart(title).
		WithLabels(labels).
		AddSeries("RMD", points, tuistyles.ColorChartLine1)

	return lipgloss.JoinVertical(lipgloss.Left,
		components.MetricGrid(cards, 2),
		tuistyles.VerdictStyle.Render(r.RegimeExplanation),
		"",
		chart.Render(),
	)
}
