package tui

import (
	"github.com/rgehrsitz/retirecalc/internal/domain"
)

// Scene is one calculator screen
type Scene int

const (
	SceneRoth Scene = iota
	SceneHECM
	SceneInheritedIRA
	sceneCount
)

// String returns the tab title for a scene
func (s Scene) String() string {
	switch s {
	case SceneRoth:
		return "Roth Conversion"
	case SceneHECM:
		return "Reverse Mortgage"
	case SceneInheritedIRA:
		return "Inherited IRA"
	default:
		return "Unknown"
	}
}

// Message types for the Bubble Tea update cycle

// NavigateMsg switches to a different scene
type NavigateMsg struct {
	Scene Scene
}

// ErrorMsg reports a failure that leaves the TUI unusable, such as bad assumptions
type ErrorMsg struct {
	Err error
}

// AssumptionsLoadedMsg carries the regulatory data the calculators run against
type AssumptionsLoadedMsg struct {
	Assumptions *domain.Assumptions
}

// CalculationCompleteMsg carries a recalculated result for one scene.
// Err holds an input validation or engine error; the other fields are then nil.
type CalculationCompleteMsg struct {
	Scene     Scene
	Seq       int
	Roth      *domain.ConversionResult
	HECM      *domain.HECMComparison
	Inherited *domain.InheritedIRAResult
	Err       error
}
