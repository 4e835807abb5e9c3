package paramtable

import (
	"fmt"
	"strings"

	"github.com/Aman-s12345/go-routedoc/internal/doclet"
)

// MarkdownBuilder renders a level-five heading and a pipe table.
type MarkdownBuilder struct{}

func (MarkdownBuilder) Build(title string, entries []doclet.Entry) (string, error) {
	l, err := newLayout(title, entries)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("##### %s\n\n", title))

	headers := l.headers()
	sb.WriteString("| " + strings.Join(headers, " | ") + " |\n")
	for _, h := range headers {
		sb.WriteString("|" + strings.Repeat("-", len(h)+2))
	}
	sb.WriteString("|\n")

	for _, r := range l.rows {
		cells := l.cells(r)
		cells[0] = code(cells[0])
		if cells[1] != "" {
			cells[1] = code(cells[1])
		}
		if l.attributes && r.hasDefault {
			cells[3] = code(r.def)
		}
		for i := range cells {
			cells[i] = escapeCell(cells[i])
		}
		sb.WriteString("| " + strings.Join(cells, " | ") + " |\n")
	}
	return sb.String(), nil
}

// code wraps s in a code span. The fence is longer than any backtick run in
// s and padded with spaces when s holds backticks.
func code(s string) string {
	if s == "" {
		return "` `"
	}
	if !strings.Contains(s, "`") {
		return "`" + s + "`"
	}
	fence := "``"
	for strings.Contains(s, fence) {
		fence += "`"
	}
	return fence + " " + s + " " + fence
}

// escapeCell keeps a cell on one line and stops pipes from splitting it.
func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "\r\n", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.ReplaceAll(s, "|", `\|`)
}
