package tui

import (
	"github.com/rgehrsitz/retirecalc/internal/domain"
	"github.com/rgehrsitz/retirecalc/internal/tui/components"
)

// form is the ordered list of inputs on one scene
type form struct {
	sliders []*components.ParameterSlider
	focus   int
}

func newForm(sliders ...*components.ParameterSlider) *form {
	f := &form{sliders: sliders}
	f.setFocus(0)
	return f
}

func (f *form) setFocus(i int) {
	n := len(f.sliders)
	f.focus = ((i % n) + n) % n
	for j, s := range f.sliders {
		s.IsFocused = j == f.focus
	}
}

func (f *form) next()                                { f.setFocus(f.focus + 1) }
func (f *form) prev()                                { f.setFocus(f.focus - 1) }
func (f *form) focused() *components.ParameterSlider { return f.sliders[f.focus] }
func (f *form) at(i int) *components.ParameterSlider { return f.sliders[i] }

// Slider positions per scene
const (
	rothBalance = iota
	rothAmount
	rothCurrentRate
	rothFutureRate
	rothYears
)

const (
	hecmAge = iota
	hecmSpouseAge
	hecmHomeValue
	hecmMortgage
	hecmRate
)

const (
	iraDeathYear = iota
	iraOwnerAge
	iraBalance
	iraBeneficiary
	iraElection
	iraBeneficiaryAge
	iraGrowth
	iraTaxRate
)

var beneficiaryOptions = []string{
	string(domain.BeneficiarySpouse),
	string(domain.BeneficiaryEligibleDesignated),
	string(domain.BeneficiaryDesignated),
	string(domain.BeneficiaryNonDesignated),
}

var electionOptions = []string{
	string(domain.ElectionRollover),
	string(domain.ElectionKeepInherited),
}

// newForms builds the three calculator forms; HECM rates come from the loaded PLF table
func newForms(a *domain.Assumptions) [sceneCount]*form {
	rates := a.HECM.GovernmentPLF.Rates()
	rate := 0
	for i, r := range rates {
		if r == "6.0" {
			rate = i
		}
	}
	minAge := float64(a.HECM.MinimumAge)

	return [sceneCount]*form{
		SceneRoth: newForm(
			components.NewParameterSlider("Traditional balance", 500000, 0, 3000000, 10000).WithFormat("$%.0f"),
			components.NewParameterSlider("Conversion amount", 100000, 0, 1000000, 5000).WithFormat("$%.0f"),
			components.NewParameterSlider("Current tax rate", 24, 0, 37, 1).WithUnit("%"),
			components.NewParameterSlider("Future tax rate", 32, 0, 37, 1).WithUnit("%"),
			components.NewParameterSlider("Years to withdrawal", 10, 0, 40, 1).WithUnit(" yrs"),
		),
		SceneHECM: newForm(
			components.NewParameterSlider("Borrower age", 72, minAge, 100, 1),
			components.NewParameterSlider("Spouse age (0=none)", 0, 0, 100, 1),
			components.NewParameterSlider("Home value", 750000, 50000, 4000000, 25000).WithFormat("$%.0f"),
			components.NewParameterSlider("Existing mortgage", 100000, 0, 2000000, 10000).WithFormat("$%.0f"),
			components.NewChoiceSlider("Expected rate", rates, rate).WithUnit("%"),
		),
		SceneInheritedIRA: newForm(
			components.NewParameterSlider("Owner death year", 2023, 2000, 2035, 1),
			components.NewParameterSlider("Owner age at death", 75, 30, 110, 1),
			components.NewParameterSlider("Account balance", 500000, 0, 5000000, 10000).WithFormat("$%.0f"),
			components.NewChoiceSlider("Beneficiary", beneficiaryOptions, 2),
			components.NewChoiceSlider("Spouse election", electionOptions, 0),
			components.NewParameterSlider("Beneficiary age", 50, 0, 110, 1),
			components.NewParameterSlider("Assumed growth", 5, 0, 12, 0.5).WithFormat("%.1f").WithUnit("%"),
			components.NewParameterSlider("Tax rate", 24, 0, 37, 1).WithUnit("%"),
		),
	}
}
