package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rgehrsitz/retirecalc/internal/calculation"
)

// Update handles all messages and updates the model state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case NavigateMsg:
		m.currentScene = msg.Scene
		return m, nil

	case ErrorMsg:
		m.loading = false
		m.err = msg.Err
		return m, nil

	case AssumptionsLoadedMsg:
		m.loading = false
		m.engine = calculation.NewCalculationEngineWithAssumptions(msg.Assumptions)
		m.forms = newForms(msg.Assumptions)
		cmds := make([]tea.Cmd, 0, sceneCount)
		for s := Scene(0); s < sceneCount; s++ {
			cmds = append(cmds, m.recalculate(s))
		}
		return m, tea.Batch(cmds...)

	case CalculationCompleteMsg:
		if msg.Seq != m.seq[msg.Scene] {
			return m, nil // superseded by a later change
		}
		m.calcErr[msg.Scene] = msg.Err
		switch msg.Scene {
		case SceneRoth:
			m.roth = msg.Roth
		case SceneHECM:
			m.hecm = msg.HECM
		case SceneInheritedIRA:
			m.inherited = msg.Inherited
		}
		return m, nil
	}

	return m, nil
}

// handleKeyPress processes keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.NextScene):
		return m, navigate((m.currentScene + 1) % sceneCount)

	case key.Matches(msg, m.keys.PrevScene):
		return m, navigate((m.currentScene + sceneCount - 1) % sceneCount)

	case key.Matches(msg, m.keys.Roth):
		return m, navigate(SceneRoth)

	case key.Matches(msg, m.keys.HECM):
		return m, navigate(SceneHECM)

	case key.Matches(msg, m.keys.Inherited):
		return m, navigate(SceneInheritedIRA)
	}

	f := m.forms[m.currentScene]
	if f == nil {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		f.prev()
	case key.Matches(msg, m.keys.Down):
		f.next()
	case key.Matches(msg, m.keys.Left):
		f.focused().Decrement()
		return m, m.recalculate(m.currentScene)
	case key.Matches(msg, m.keys.Right):
		f.focused().Increment()
		return m, m.recalculate(m.currentScene)
	}
	return m, nil
}

func navigate(s Scene) tea.Cmd {
	return func() tea.Msg {
		return NavigateMsg{Scene: s}
	}
}
