package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/rgehrsitz/retirecalc/internal/tui/tuistyles"
	"github.com/shopspring/decimal"
)

// ParameterSlider is an adjustable numeric or enumerated input
type ParameterSlider struct {
	Label     string
	Value     float64
	Min       float64
	Max       float64
	Step      float64
	Unit      string   // e.g. "%", " yrs"
	Format    string   // e.g. "%.1f"
	Options   []string // when set, Value indexes Options
	Width     int
	IsFocused bool
}

// NewParameterSlider creates a new parameter slider
func NewParameterSlider(label string, value, min, max, step float64) *ParameterSlider {
	p := &ParameterSlider{
		Label:  label,
		Min:    min,
		Max:    max,
		Step:   step,
		Format: "%.0f",
		Width:  20,
	}
	p.SetValue(value)
	return p
}

// NewChoiceSlider creates a slider that cycles through fixed options
func NewChoiceSlider(label string, options []string, selected int) *ParameterSlider {
	p := NewParameterSlider(label, float64(selected), 0, float64(len(options)-1), 1)
	p.Options = options
	return p
}

// WithUnit sets the unit suffix
func (p *ParameterSlider) WithUnit(unit string) *ParameterSlider {
	p.Unit = unit
	return p
}

// WithFormat sets the value format string
func (p *ParameterSlider) WithFormat(format string) *ParameterSlider {
	p.Format = format
	return p
}

// Increment increases the value by one step; choices wrap around
func (p *ParameterSlider) Increment() {
	if p.Options != nil && p.Value >= p.Max {
		p.Value = p.Min
		return
	}
	p.SetValue(p.Value + p.Step)
}

// Decrement decreases the value by one step; choices wrap around
func (p *ParameterSlider) Decrement() {
	if p.Options != nil && p.Value <= p.Min {
		p.Value = p.Max
		return
	}
	p.SetValue(p.Value - p.Step)
}

// SetValue snaps the value to the step grid and clamps it to min/max
func (p *ParameterSlider) SetValue(value float64) {
	if p.Step > 0 {
		value = p.Min + math.Round((value-p.Min)/p.Step)*p.Step
	}
	p.Value = math.Max(p.Min, math.Min(p.Max, value))
}

// Percentage returns the value as a fraction of the range
func (p *ParameterSlider) Percentage() float64 {
	if p.Max == p.Min {
		return 0
	}
	return (p.Value - p.Min) / (p.Max - p.Min)
}

// Int returns the value rounded to an integer
func (p *ParameterSlider) Int() int {
	return int(math.Round(p.Value))
}

// Decimal returns the value as a decimal, rounded to the display precision
func (p *ParameterSlider) Decimal() decimal.Decimal {
	d, err := decimal.NewFromString(p.Text())
	if err != nil {
		return decimal.NewFromFloat(p.Value)
	}
	return d
}

// Fraction returns a percentage value as a fraction (24 -> 0.24)
func (p *ParameterSlider) Fraction() decimal.Decimal {
	return p.Decimal().Div(decimal.NewFromInt(100))
}

// Choice returns the selected option, or "" for numeric sliders
func (p *ParameterSlider) Choice() string {
	if p.Options == nil {
		return ""
	}
	return p.Options[p.Int()]
}

// Text returns the formatted value without the unit
func (p *ParameterSlider) Text() string {
	if p.Options != nil {
		return p.Choice()
	}
	return fmt.Sprintf(p.Format, p.Value)
}

// Render returns a single-line slider row: label, value, bar
func (p *ParameterSlider) Render() string {
	labelStyle := tuistyles.ParameterLabelStyle
	valueStyle := tuistyles.ParameterValueStyle
	cursor := "  "
	if p.IsFocused {
		labelStyle = labelStyle.Foreground(tuistyles.ColorPrimary).Bold(true)
		valueStyle = valueStyle.Foreground(tuistyles.ColorAccent)
		cursor = tuistyles.SliderThumbStyle.Render("▸ ")
	}

	value := p.Text() + p.Unit
	if p.Options != nil {
		value = "‹ " + value + " ›"
	}
	return cursor + labelStyle.Render(p.Label) + valueStyle.Render(value) + p.renderBar()
}

func (p *ParameterSlider) renderBar() string {
	if p.Options != nil {
		return ""
	}
	filled := int(math.Round(float64(p.Width) * p.Percentage()))
	filled = max(0, min(p.Width, filled))

	thumbStyle := tuistyles.SliderThumbStyle
	if p.IsFocused {
		thumbStyle = thumbStyle.Foreground(tuistyles.ColorAccent)
	}

	var bar strings.Builder
	bar.WriteString("[")
	for i := 0; i < p.Width; i++ {
		switch {
		case i == filled || (i == p.Width-1 && filled == p.Width):
			bar.WriteString(thumbStyle.Render("●"))
		case i < filled:
			bar.WriteString(thumbStyle.Render("━"))
		default:
			bar.WriteString(tuistyles.SliderTrackStyle.Render("─"))
		}
	}
	bar.WriteString("]")
	return bar.String()
}
