package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgehrsitz/retirecalc/internal/calculation"
	"github.com/rgehrsitz/retirecalc/internal/domain"
)

// loadedModel returns a model that has received the built-in assumptions
func loadedModel(t *testing.T) Model {
	t.Helper()
	m := NewModel("")
	updated, cmd := m.Update(AssumptionsLoadedMsg{Assumptions: calculation.DefaultAssumptions()})
	require.NotNil(t, cmd)
	return updated.(Model)
}

func calculate(t *testing.T, m *Model, scene Scene) CalculationCompleteMsg {
	t.Helper()
	cmd := m.recalculate(scene)
	require.NotNil(t, cmd)
	msg, ok := cmd().(CalculationCompleteMsg)
	require.True(t, ok)
	return msg
}

func TestInit_LoadsDefaultAssumptions(t *testing.T) {
	m := NewModel("")
	msg := m.Init()()

	loaded, ok := msg.(AssumptionsLoadedMsg)
	require.True(t, ok)
	assert.Equal(t, 2025, loaded.Assumptions.Metadata.TaxYear)
}

func TestInit_MissingAssumptionsFile(t *testing.T) {
	m := NewModel("/nonexistent/assumptions.yaml")
	msg := m.Init()()

	errMsg, ok := msg.(ErrorMsg)
	require.True(t, ok)

	updated, _ := m.Update(errMsg)
	assert.Contains(t, updated.(Model).View(), "Error:")
}

func TestRecalculate_DefaultForms(t *testing.T) {
	m := loadedModel(t)

	roth := calculate(t, &m, SceneRoth)
	require.NoError(t, roth.Err)
	assert.Equal(t, "33307.13", roth.Roth.NetBenefit.StringFixed(2))

	hecm := calculate(t, &m, SceneHECM)
	require.NoError(t, hecm.Err)
	assert.Equal(t, "226500", hecm.HECM.GovernmentInsured.NetProceeds.String())
	assert.Nil(t, hecm.HECM.Input.SpouseAge)

	ira := calculate(t, &m, SceneInheritedIRA)
	require.NoError(t, ira.Err)
	assert.Equal(t, domain.RegimeTenYearRule, ira.Inherited.Regime)
	assert.Len(t, ira.Inherited.Schedule, 10)
	assert.Empty(t, ira.Inherited.Input.SpouseElection)
}

func TestRecalculate_InvalidInputReportsError(t *testing.T) {
	m := loadedModel(t)
	m.forms[SceneHECM].at(hecmSpouseAge).SetValue(55)

	msg := calculate(t, &m, SceneHECM)
	require.Error(t, msg.Err)
	assert.Contains(t, msg.Err.Error(), "spouse age")
	assert.Nil(t, msg.HECM)

	updated, _ := m.Update(msg)
	m = updated.(Model)
	m.currentScene = SceneHECM
	assert.Contains(t, m.View(), "spouse age")
}

func TestUpdate_DropsSupersededResults(t *testing.T) {
	m := loadedModel(t)

	stale := calculate(t, &m, SceneRoth)
	fresh := calculate(t, &m, SceneRoth)
	require.Equal(t, stale.Seq+1, fresh.Seq)

	stale.Err = errors.New("stale")
	updated, _ := m.Update(stale)
	m = updated.(Model)
	assert.NoError(t, m.calcErr[SceneRoth])
	assert.Nil(t, m.roth)

	updated, _ = m.Update(fresh)
	m = updated.(Model)
	require.NotNil(t, m.roth)
}

func TestKeys_AdjustFocusedSlider(t *testing.T) {
	m := loadedModel(t)
	before := m.seq[SceneRoth]

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m = updated.(Model)
	require.NotNil(t, cmd)
	assert.Equal(t, before+1, m.seq[SceneRoth])
	assert.Equal(t, 510000.0, m.forms[SceneRoth].at(rothBalance).Value)

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = updated.(Model)
	assert.Equal(t, rothAmount, m.forms[SceneRoth].focus)

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m = updated.(Model)
	assert.Equal(t, 95000.0, m.forms[SceneRoth].at(rothAmount).Value)
}

func TestKeys_Navigation(t *testing.T) {
	m := loadedModel(t)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	require.NotNil(t, cmd)
	assert.Equal(t, NavigateMsg{Scene: SceneHECM}, cmd())

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	require.NotNil(t, cmd)
	assert.Equal(t, NavigateMsg{Scene: SceneInheritedIRA}, cmd())

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("3")})
	require.NotNil(t, cmd)
	assert.Equal(t, NavigateMsg{Scene: SceneInheritedIRA}, cmd())

	updated, _ := m.Update(NavigateMsg{Scene: SceneHECM})
	assert.Equal(t, SceneHECM, updated.(Model).currentScene)
}

func TestKeys_Quit(t *testing.T) {
	m := loadedModel(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestView(t *testing.T) {
	m := NewModel("")
	assert.Contains(t, m.View(), "Loading")

	m = loadedModel(t)
	for s := Scene(0); s < sceneCount; s++ {
		updated, _ := m.Update(calculate(t, &m, s))
		m = updated.(Model)
	}

	view := m.View()
	assert.Contains(t, view, "Roth Conversion")
	assert.Contains(t, view, "Net benefit")
	assert.Contains(t, view, "$33,307")

	m.currentScene = SceneHECM
	assert.Contains(t, m.View(), "Loan balance")

	m.currentScene = SceneInheritedIRA
	assert.Contains(t, m.View(), "Required distributions")
}

func TestForm_FocusWraps(t *testing.T) {
	f := newForms(calculation.DefaultAssumptions())[SceneRoth]
	f.prev()
	assert.Equal(t, rothYears, f.focus)
	assert.True(t, f.focused().IsFocused)
	f.next()
	assert.Equal(t, rothBalance, f.focus)
	assert.False(t, f.at(rothYears).IsFocused)
}

func TestForms_RateChoicesFromAssumptions(t *testing.T) {
	a := calculation.DefaultAssumptions()
	f := newForms(a)[SceneHECM]

	rate := f.at(hecmRate)
	assert.Equal(t, a.HECM.GovernmentPLF.Rates(), rate.Options)
	assert.Equal(t, "6.0", rate.Choice())
}
