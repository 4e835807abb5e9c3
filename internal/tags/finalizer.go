package tags

import (
	"github.com/Aman-s12345/go-routedoc/internal/doclet"
	"github.com/Aman-s12345/go-routedoc/internal/errors"
)

// TableBuilder renders a titled table with one row per entry, in order.
type TableBuilder interface {
	Build(title string, entries []doclet.Entry) (string, error)
}

// Event is delivered once a doclet has received all of its tags.
type Event struct {
	Doclet *doclet.Doclet
}

// NewEvent checks the payload once so finalizers can rely on it.
func NewEvent(d *doclet.Doclet) (*Event, error) {
	if d == nil {
		return nil, errors.New(errors.KindValidation, "new doclet event without a doclet")
	}
	return &Event{Doclet: d}, nil
}

// Finalizer appends the rendered table of one category to a doclet's
// description.
type Finalizer struct {
	Category doclet.Category
	Builder  TableBuilder
}

func NewFinalizer(c doclet.Category, b TableBuilder) Finalizer {
	return Finalizer{Category: c, Builder: b}
}

// HandleNewDoclet renders the category's entries, if there are any, and
// appends the table to the description. Builder failures are returned as
// they are; the description is only touched on success.
func (f Finalizer) HandleNewDoclet(e *Event) error {
	if e == nil || e.Doclet == nil {
		return errors.New(errors.KindValidation, "new doclet event without a doclet")
	}
	entries := e.Doclet.Entries(f.Category)
	if len(entries) == 0 {
		return nil
	}

	table, err := f.Builder.Build(f.Category.Title(), entries)
	if err != nil {
		return errors.Attr(err, "category", f.Category.Key())
	}
	e.Doclet.AppendDescription(table)
	return nil
}
