package tags

import (
	"slices"

	"github.com/Aman-s12345/go-routedoc/internal/doclet"
)

// Options are the grammar rules the host enforces for a tag before handing
// an occurrence to OnTagged.
type Options struct {
	MustHaveValue          bool
	MustNotHaveDescription bool
	CanHaveType            bool
	CanHaveName            bool
}

// Definition declares one route parameter tag.
type Definition struct {
	Name     string
	Category doclet.Category
	Options  Options
}

// NewDefinition returns the definition of the category's tag. All five tags
// share the same grammar: a value is required, and type, name and
// description are all allowed.
func NewDefinition(c doclet.Category) Definition {
	return Definition{
		Name:     c.TagName(),
		Category: c,
		Options: Options{
			MustHaveValue:          true,
			MustNotHaveDescription: false,
			CanHaveType:            true,
			CanHaveName:            true,
		},
	}
}

// OnTagged appends the entry derived from t to the definition's collection
// on d.
func (def Definition) OnTagged(d *doclet.Doclet, t Tag) {
	d.Append(def.Category, entryFromValue(def.Category, t.Value))
}

func entryFromValue(c doclet.Category, v Value) doclet.Entry {
	e := doclet.Entry{
		Name:        v.Name,
		Description: v.Description,
	}
	if v.Type != nil && len(v.Type.Names) > 0 {
		e.Type = doclet.TypeNames(slices.Clone(v.Type.Names))
	}
	if !c.HasAttributes() {
		return e
	}

	optional := ""
	if v.Optional != nil {
		optional = doclet.OptionalMarker
	}
	e.Optional = &optional
	if v.DefaultValue != nil {
		def := *v.DefaultValue
		e.DefaultValue = &def
	}
	return e
}
