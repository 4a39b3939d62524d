package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/surfaces/internal/mappings"
	"github.com/alexisbeaulieu97/surfaces/internal/tui/components"
)

// Model is the Bubbletea state of the table browser.
type Model struct {
	table  *mappings.Table
	filter textinput.Model
	list   components.EntryList
	meter  components.Meter
	cursor int
	offset int

	width    int
	height   int
	quitting bool
}

// NewModel constructs a browser over table with the filter focused.
func NewModel(table *mappings.Table) Model {
	input := textinput.New()
	input.Placeholder = "filter keys or classes"
	input.Prompt = "/ "
	input.CharLimit = 64
	input.Focus()

	list := components.NewEntryList(table, "")
	return Model{
		table:  table,
		filter: input,
		list:   list,
		meter:  components.NewMeter(list.Total()),
		height: 24,
	}
}

// Init starts the cursor blink of the filter input.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Selected returns the entry under the cursor.
func (m Model) Selected() (components.Entry, bool) {
	return m.list.At(m.cursor)
}

// Visible returns the number of entries matching the filter.
func (m Model) Visible() int {
	return m.list.Len()
}

// Quitting reports whether the user asked to leave.
func (m Model) Quitting() bool {
	return m.quitting
}

// listHeight is the number of rows available to the key list.
func (m Model) listHeight() int {
	h := m.height - 6
	if h < 3 {
		h = 3
	}
	return h
}

func (m *Model) refilter() {
	m.list = components.NewEntryList(m.table, m.filter.Value())
	m.clamp()
}

func (m *Model) clamp() {
	if m.cursor >= m.list.Len() {
		m.cursor = m.list.Len() - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if h := m.listHeight(); m.cursor >= m.offset+h {
		m.offset = m.cursor - h + 1
	}
}
