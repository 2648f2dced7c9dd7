package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rgehrsitz/retirecalc/internal/tui/tuistyles"
)

// DataSeries is one set of bars, one value per label
type DataSeries struct {
	Name   string
	Points []float64
	Color  lipgloss.Color
}

// BarChart draws horizontal bars per label, grouping series under each label
type BarChart struct {
	Title  string
	Labels []string
	Series []*DataSeries
	Width  int // width of the longest bar
}

// NewBarChart creates a new bar chart
func NewBarChart(title string) *BarChart {
	return &BarChart{Title: title, Width: 30}
}

// AddSeries adds a data series to the chart
func (c *BarChart) AddSeries(name string, points []float64, color lipgloss.Color) *BarChart {
	c.Series = append(c.Series, &DataSeries{Name: name, Points: points, Color: color})
	return c
}

// WithLabels sets the row labels
func (c *BarChart) WithLabels(labels []string) *BarChart {
	c.Labels = labels
	return c
}

// WithWidth sets the maximum bar width
func (c *BarChart) WithWidth(width int) *BarChart {
	c.Width = width
	return c
}

// Render returns the styled chart
func (c *BarChart) Render() string {
	if len(c.Series) == 0 || len(c.Labels) == 0 {
		return tuistyles.InfoStyle.Render("No data to display")
	}

	var content strings.Builder
	if c.Title != "" {
		content.WriteString(tuistyles.TitleStyle.Render(c.Title))
		content.WriteString("\n")
	}

	peak := c.maxValue()
	labelWidth := 0
	for _, l := range c.Labels {
		labelWidth = max(labelWidth, lipgloss.Width(l))
	}
	labelStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorMuted).Width(labelWidth).Align(lipgloss.Right)
	blank := strings.Repeat(" ", labelWidth)

	for i, label := range c.Labels {
		for s, series := range c.Series {
			if i >= len(series.Points) {
				continue
			}
			prefix := blank
			if s == 0 {
				prefix = labelStyle.Render(label)
			}
			v := series.Points[i]
			bar := lipgloss.NewStyle().Foreground(series.Color).Render(strings.Repeat("█", c.barLength(v, peak)))
			content.WriteString(fmt.Sprintf("%s │%s %s\n", prefix, bar, formatChartValue(v)))
		}
	}

	if len(c.Series) > 1 {
		content.WriteString(c.renderLegend())
	}
	return strings.TrimRight(content.String(), "\n")
}

func (c *BarChart) maxValue() float64 {
	peak := 0.0
	for _, s := range c.Series {
		for _, p := range s.Points {
			peak = math.Max(peak, p)
		}
	}
	return peak
}

func (c *BarChart) barLength(v, peak float64) int {
	if peak <= 0 || v <= 0 {
		return 0
	}
	return max(1, int(math.Round(v/peak*float64(c.Width))))
}

func (c *BarChart) renderLegend() string {
	items := make([]string, 0, len(c.Series))
	for _, s := range c.Series {
		symbol := lipgloss.NewStyle().Foreground(s.Color).Render("█")
		items = append(items, fmt.Sprintf("%s %s", symbol, s.Name))
	}
	return lipgloss.NewStyle().Foreground(tuistyles.ColorMuted).Render("Legend: " + strings.Join(items, " • "))
}

// formatChartValue abbreviates a dollar amount for chart annotations
func formatChartValue(value float64) string {
	switch {
	case math.Abs(value) >= 1000000:
		return fmt.Sprintf("$%.1fM", value/1000000)
	case math.Abs(value) >= 1000:
		return fmt.Sprintf("$%.0fK", value/1000)
	default:
		return fmt.Sprintf("$%.0f", value)
	}
}
