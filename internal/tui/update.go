package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles Bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.clamp()
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.quitting = true
		return m, tea.Quit
	case tea.KeyUp, tea.KeyCtrlP:
		m.cursor--
		m.clamp()
		return m, nil
	case tea.KeyDown, tea.KeyCtrlN:
		m.cursor++
		m.clamp()
		return m, nil
	case tea.KeyPgUp:
		m.cursor -= m.listHeight()
		m.clamp()
		return m, nil
	case tea.KeyPgDown:
		m.cursor += m.listHeight()
		m.clamp()
		return m, nil
	}

	// q quits only while the filter is empty so it can still be typed.
	if msg.String() == "q" && m.filter.Value() == "" {
		m.quitting = true
		return m, tea.Quit
	}

	var cmd tea.Cmd
	before := m.filter.Value()
	m.filter, cmd = m.filter.Update(msg)
	if m.filter.Value() != before {
		m.cursor = 0
		m.offset = 0
		m.refilter()
	}
	return m, cmd
}
