// Package paramtable renders collected route parameters as tables.
//
// Every builder emits the title followed by one row per entry, in the order
// given. Columns are Name, Type, Attributes, Default and Description;
// Attributes and Default are left out when no entry carries attribute
// fields, which is the case for route parameters.
package paramtable

import (
	"strings"

	"github.com/Aman-s12345/go-routedoc/internal/doclet"
	"github.com/Aman-s12345/go-routedoc/internal/errors"
	"github.com/Aman-s12345/go-routedoc/internal/tags"
)

const (
	FormatHTML     = "html"
	FormatMarkdown = "markdown"
	FormatText     = "text"
)

// Formats lists the accepted table formats.
func Formats() []string {
	return []string{FormatHTML, FormatMarkdown, FormatText}
}

// New returns the builder for format. An empty format selects HTML.
func New(format string) (tags.TableBuilder, error) {
	switch format {
	case FormatHTML, "":
		return HTMLBuilder{}, nil
	case FormatMarkdown:
		return MarkdownBuilder{}, nil
	case FormatText:
		return TextBuilder{}, nil
	default:
		return nil, errors.Errorf(errors.KindValidation, "unsupported table format: %s (supported: %s)",
			format, strings.Join(Formats(), ", "))
	}
}

type row struct {
	name        string
	typ         string
	optional    bool
	def         string
	hasDefault  bool
	description string
}

// layout is the shared column decision for one table.
type layout struct {
	attributes bool
	rows       []row
}

func newLayout(title string, entries []doclet.Entry) (layout, error) {
	if len(entries) == 0 {
		return layout{}, errors.Errorf(errors.KindValidation, "table %q has no entries", title)
	}

	l := layout{rows: make([]row, 0, len(entries))}
	for _, e := range entries {
		if e.HasAttributes() {
			l.attributes = true
		}
		def, hasDefault := e.Default()
		l.rows = append(l.rows, row{
			name:        e.Name,
			typ:         strings.Join(e.Type, " | "),
			optional:    e.IsOptional(),
			def:         def,
			hasDefault:  hasDefault,
			description: e.Description,
		})
	}
	return l, nil
}

func (l layout) headers() []string {
	if l.attributes {
		return []string{"Name", "Type", "Attributes", "Default", "Description"}
	}
	return []string{"Name", "Type", "Description"}
}

// cells returns the plain-text cells of r. Builders apply their own markup.
func (l layout) cells(r row) []string {
	if !l.attributes {
		return []string{r.name, r.typ, r.description}
	}
	attrs := ""
	if r.optional {
		attrs = doclet.OptionalMarker
	}
	return []string{r.name, r.typ, attrs, r.def, r.description}
}
