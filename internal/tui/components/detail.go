package components

import (
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/surfaces/internal/classstack"
	"github.com/alexisbeaulieu97/surfaces/internal/vocabulary"
)

// Row is one category line of the detail pane.
type Row struct {
	Category vocabulary.Category
	Tokens   []string
}

// Detail describes the selected entry grouped by vocabulary category.
type Detail struct {
	entry Entry
}

// NewDetail creates a detail view for entry.
func NewDetail(entry Entry) Detail {
	return Detail{entry: entry}
}

// Ordered returns the classes as the copy helper would render them.
func (d Detail) Ordered() string {
	return classstack.Format(d.entry.Classes)
}

// Rows returns component first, then display categories in canonical order,
// then anything else. Empty categories are omitted.
func (d Detail) Rows() []Row {
	groups := classstack.Group(d.entry.Classes)

	order := append([]vocabulary.Category{vocabulary.Component}, vocabulary.DisplayOrder()...)
	order = append(order, vocabulary.Other)

	rows := make([]Row, 0, len(order))
	for _, category := range order {
		if tokens := groups[category]; len(tokens) > 0 {
			rows = append(rows, Row{Category: category, Tokens: tokens})
		}
	}
	return rows
}

// Lines renders rows as "category  tokens" text without styling.
func (d Detail) Lines() []string {
	rows := d.Rows()
	lines := make([]string, 0, len(rows)+1)
	for _, row := range rows {
		lines = append(lines, fmt.Sprintf("%-9s %s", row.Category, strings.Join(row.Tokens, " ")))
	}
	if d.entry.Exempt {
		lines = append(lines, "exempt from vocabulary checks")
	}
	return lines
}
