package paramtable

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/Aman-s12345/go-routedoc/internal/doclet"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

// TextBuilder renders a bordered table for terminals.
type TextBuilder struct{}

func (TextBuilder) Build(title string, entries []doclet.Entry) (string, error) {
	l, err := newLayout(title, entries)
	if err != nil {
		return "", err
	}

	rows := make([][]string, 0, len(l.rows))
	for _, r := range l.rows {
		rows = append(rows, l.cells(r))
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(l.headers()...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	return titleStyle.Render(title) + "\n" + t.String(), nil
}
