package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/surfaces/internal/tui/components"
	"github.com/alexisbeaulieu97/surfaces/internal/vocabulary"
)

// View renders the current state of the model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	header := lipgloss.JoinHorizontal(lipgloss.Left,
		titleStyle.Render("Surfaces • mappings"), "  ", m.meter.View(m.list.Len()))

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		listStyle.Render(m.renderList()),
		detailStyle.Render(m.renderDetail()),
	)

	help := helpStyle.Render("↑/↓ move • type to filter • esc quit")
	return lipgloss.JoinVertical(lipgloss.Left, header, m.filter.View(), body, help)
}

func (m Model) renderList() string {
	if m.list.Len() == 0 {
		return emptyStyle.Render("no matching keys")
	}

	end := m.offset + m.listHeight()
	if end > m.list.Len() {
		end = m.list.Len()
	}

	lines := make([]string, 0, end-m.offset)
	for i := m.offset; i < end; i++ {
		entry, _ := m.list.At(i)
		if i == m.cursor {
			lines = append(lines, cursorStyle.Render("› "+entry.Key))
			continue
		}
		lines = append(lines, "  "+entry.Key)
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderDetail() string {
	entry, ok := m.Selected()
	if !ok {
		return ""
	}

	detail := components.NewDetail(entry)
	lines := []string{sectionStyle.Render(entry.Key)}
	for _, row := range detail.Rows() {
		label := labelStyle.Render(fmt.Sprintf("%-9s", row.Category))
		lines = append(lines, label+" "+CategoryStyle(row.Category).Render(strings.Join(row.Tokens, " ")))
	}
	if entry.Exempt {
		lines = append(lines, emptyStyle.Render("exempt from vocabulary checks"))
	}
	lines = append(lines, "", labelStyle.Render("copy")+" "+detail.Ordered())
	return strings.Join(lines, "\n")
}

// CategoryStyle returns the colour used for tokens of a category.
func CategoryStyle(c vocabulary.Category) lipgloss.Style {
	if style, ok := categoryStyles[c]; ok {
		return style
	}
	return otherStyle
}
