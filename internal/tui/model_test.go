package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/surfaces/internal/mappings"
)

func press(t *testing.T, m Model, msgs ...tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var updated tea.Model
		updated, cmd = m.Update(msg)
		m = updated.(Model)
	}
	return m, cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewModelListsEveryKey(t *testing.T) {
	t.Parallel()

	m := NewModel(mappings.Default())
	require.Equal(t, mappings.Default().Len(), m.Visible())

	entry, ok := m.Selected()
	require.True(t, ok)
	require.Equal(t, mappings.Default().Keys()[0], entry.Key)
}

func TestCursorMovesAndClamps(t *testing.T) {
	t.Parallel()

	m := NewModel(mappings.Default())
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyUp})
	require.Equal(t, 0, m.cursor)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyDown})
	require.Equal(t, 2, m.cursor)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyPgDown}, tea.KeyMsg{Type: tea.KeyPgDown},
		tea.KeyMsg{Type: tea.KeyPgDown}, tea.KeyMsg{Type: tea.KeyPgDown})
	require.Equal(t, m.Visible()-1, m.cursor)
	require.LessOrEqual(t, m.offset, m.cursor)
	require.Less(t, m.cursor, m.offset+m.listHeight())
}

func TestTypingFiltersAndResetsCursor(t *testing.T) {
	t.Parallel()

	m := NewModel(mappings.Default())
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyDown}, runes("premium"))

	require.Equal(t, 0, m.cursor)
	require.Equal(t, 3, m.Visible())
	entry, ok := m.Selected()
	require.True(t, ok)
	require.Equal(t, "premium-badge", entry.Key)
	require.Contains(t, m.View(), "premium-button")
}

func TestFilterWithoutMatches(t *testing.T) {
	t.Parallel()

	m := NewModel(mappings.Default())
	m, _ = press(t, m, runes("zzzz"))

	require.Zero(t, m.Visible())
	_, ok := m.Selected()
	require.False(t, ok)
	require.Contains(t, m.View(), "no matching keys")
}

func TestQuitKeys(t *testing.T) {
	t.Parallel()

	for _, key := range []tea.KeyMsg{{Type: tea.KeyCtrlC}, {Type: tea.KeyEsc}, runes("q")} {
		m, cmd := press(t, NewModel(mappings.Default()), key)
		require.True(t, m.Quitting(), key.String())
		require.NotNil(t, cmd)
		require.IsType(t, tea.QuitMsg{}, cmd())
		require.Empty(t, m.View())
	}
}

func TestQIsTypedOnceFiltering(t *testing.T) {
	t.Parallel()

	m := NewModel(mappings.Default())
	m, _ = press(t, m, runes("e"), runes("q"))
	require.False(t, m.Quitting())
	require.Equal(t, "eq", m.filter.Value())
}

func TestViewShowsDetailInCopyOrder(t *testing.T) {
	t.Parallel()

	m := NewModel(mappings.Default())
	m, _ = press(t, m, tea.WindowSizeMsg{Width: 120, Height: 40}, runes("ok-button"))

	view := m.View()
	require.Contains(t, view, "ok-button")
	require.Contains(t, view, "flat sapphire plaque button hoverable")
	require.Contains(t, view, "1/46 keys")
}
