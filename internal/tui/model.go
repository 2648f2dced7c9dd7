package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rgehrsitz/retirecalc/internal/calculation"
	"github.com/rgehrsitz/retirecalc/internal/config"
	"github.com/rgehrsitz/retirecalc/internal/domain"
)

// Model represents the entire application state
type Model struct {
	// Navigation
	currentScene Scene

	// Terminal dimensions
	width  int
	height int

	assumptionsPath string
	engine          *calculation.CalculationEngine
	parser          *config.InputParser

	forms [sceneCount]*form
	seq   [sceneCount]int

	// Latest results; calcErr holds the input error for each scene
	roth      *domain.ConversionResult
	hecm      *domain.HECMComparison
	inherited *domain.InheritedIRAResult
	calcErr   [sceneCount]error

	keys keyMap
	help help.Model

	// Fatal error state
	err error

	loading bool
}

// NewModel creates a new application model; an empty path uses the built-in assumptions
func NewModel(assumptionsPath string) Model {
	return Model{
		currentScene:    SceneRoth,
		assumptionsPath: assumptionsPath,
		parser:          config.NewInputParser(),
		keys:            defaultKeyMap(),
		help:            help.New(),
		width:           100,
		height:          30,
		loading:         true,
	}
}

// Init initializes the model (required by tea.Model interface)
func (m Model) Init() tea.Cmd {
	return loadAssumptionsCmd(m.parser, m.assumptionsPath)
}

// loadAssumptionsCmd returns a command that loads and validates the assumptions file
func loadAssumptionsCmd(parser *config.InputParser, path string) tea.Cmd {
	return func() tea.Msg {
		assumptions, err := parser.LoadAssumptions(path)
		if err != nil {
			return ErrorMsg{Err: err}
		}
		return AssumptionsLoadedMsg{Assumptions: assumptions}
	}
}

// recalculate snapshots the scene's form and returns a command that runs the calculator
func (m *Model) recalculate(scene Scene) tea.Cmd {
	if m.engine == nil || m.forms[scene] == nil {
		return nil
	}
	m.seq[scene]++
	seq := m.seq[scene]
	engine, parser, f := m.engine, m.parser, m.forms[scene]

	switch scene {
	case SceneRoth:
		input := rothInput(f)
		return func() tea.Msg {
			msg := CalculationCompleteMsg{Scene: scene, Seq: seq}
			if err := parser.ValidateConversionInput(input); err != nil {
				msg.Err = err
				return msg
			}
			result := engine.CalculateRothConversion(input)
			msg.Roth = &result
			return msg
		}
	case SceneHECM:
		input := hecmInput(f)
		return func() tea.Msg {
			msg := CalculationCompleteMsg{Scene: scene, Seq: seq}
			if err := parser.ValidateHECMInput(input, engine.Assumptions.HECM); err != nil {
				msg.Err = err
				return msg
			}
			msg.HECM, msg.Err = engine.CalculateHECM(input)
			return msg
		}
	case SceneInheritedIRA:
		input := inheritedIRAInput(f)
		return func() tea.Msg {
			msg := CalculationCompleteMsg{Scene: scene, Seq: seq}
			if err := config.NormalizeInheritedIRAInput(&input); err != nil {
				msg.Err = err
				return msg
			}
			if err := parser.ValidateInheritedIRAInput(input); err != nil {
				msg.Err = err
				return msg
			}
			msg.Inherited, msg.Err = engine.CalculateInheritedIRA(input)
			return msg
		}
	}
	return nil
}

func rothInput(f *form) domain.ConversionInput {
	return domain.ConversionInput{
		TraditionalBalance:   f.at(rothBalance).Decimal(),
		ConversionAmount:     f.at(rothAmount).Decimal(),
		CurrentTaxRate:       f.at(rothCurrentRate).Fraction(),
		FutureTaxRate:        f.at(rothFutureRate).Fraction(),
		YearsUntilWithdrawal: f.at(rothYears).Int(),
	}
}

func hecmInput(f *form) domain.HECMInput {
	input := domain.HECMInput{
		BorrowerAge:             f.at(hecmAge).Int(),
		HomeValue:               f.at(hecmHomeValue).Decimal(),
		ExistingMortgageBalance: f.at(hecmMortgage).Decimal(),
		ExpectedRate:            f.at(hecmRate).Choice(),
	}
	if age := f.at(hecmSpouseAge).Int(); age > 0 {
		input.SpouseAge = &age
	}
	return input
}

func inheritedIRAInput(f *form) domain.InheritedIRAInput {
	return domain.InheritedIRAInput{
		OwnerDeathYear:        f.at(iraDeathYear).Int(),
		OwnerAgeAtDeath:       f.at(iraOwnerAge).Int(),
		AccountBalance:        f.at(iraBalance).Decimal(),
		BeneficiaryType:       domain.BeneficiaryType(f.at(iraBeneficiary).Choice()),
		SpouseElection:        domain.SpouseElection(f.at(iraElection).Choice()),
		BeneficiaryCurrentAge: f.at(iraBeneficiaryAge).Int(),
		AssumedGrowthRate:     f.at(iraGrowth).Fraction(),
		AssumedTaxRate:        f.at(iraTaxRate).Fraction(),
	}
}
