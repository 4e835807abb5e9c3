package doclet

import (
	"encoding/json"
	"slices"

	"github.com/google/uuid"
)

// Route locates the handler a doclet documents.
type Route struct {
	Method string `json:"method" yaml:"method"`
	Path   string `json:"path" yaml:"path"`
}

// Doclet is the in-progress documentation record of one route handler.
// Every category collection exists from construction on and only grows.
// A zero Doclet is usable; New also assigns an ID.
type Doclet struct {
	ID          string
	Name        string
	Route       *Route
	Description string

	params   map[Category][]Entry
	appended int
}

// New creates a doclet with an empty collection for every category. An
// empty id is replaced by a random UUID.
func New(id, name string) *Doclet {
	if id == "" {
		id = uuid.NewString()
	}
	d := &Doclet{
		ID:     id,
		Name:   name,
		params: make(map[Category][]Entry, len(categoryInfo)),
	}
	for _, c := range Categories() {
		d.params[c] = []Entry{}
	}
	return d
}

// Append adds an entry to the end of the category's collection. A zero
// Doclet gets its collections on first use.
func (d *Doclet) Append(c Category, e Entry) {
	if d.params == nil {
		d.params = make(map[Category][]Entry, len(categoryInfo))
		for _, cat := range Categories() {
			d.params[cat] = []Entry{}
		}
	}
	d.params[c] = append(d.params[c], e)
}

// Entries returns a copy of the category's collection in insertion order.
func (d *Doclet) Entries(c Category) []Entry {
	return slices.Clone(d.params[c])
}

// Len returns the number of entries collected for the category.
func (d *Doclet) Len(c Category) int {
	return len(d.params[c])
}

// AppendDescription appends text on a new line after the current description.
func (d *Doclet) AppendDescription(text string) {
	d.Description = d.Description + "\n" + text
	d.appended += len(text) + 1
}

// OwnDescription returns the description without the text added by
// AppendDescription.
func (d *Doclet) OwnDescription() string {
	if d.appended > len(d.Description) {
		return d.Description
	}
	return d.Description[:len(d.Description)-d.appended]
}

// docletView is the serialized form. Collections only appear as properties
// once they hold entries.
type docletView struct {
	ID            string  `json:"id" yaml:"id"`
	Name          string  `json:"name,omitempty" yaml:"name,omitempty"`
	Route         *Route  `json:"route,omitempty" yaml:"route,omitempty"`
	Description   string  `json:"description" yaml:"description"`
	BodyParams    []Entry `json:"bodyparams,omitempty" yaml:"bodyparams,omitempty"`
	HeaderParams  []Entry `json:"headerparams,omitempty" yaml:"headerparams,omitempty"`
	ResponseCodes []Entry `json:"responsecodes,omitempty" yaml:"responsecodes,omitempty"`
	ReturnParams  []Entry `json:"returnparams,omitempty" yaml:"returnparams,omitempty"`
	RouteParams   []Entry `json:"routeparams,omitempty" yaml:"routeparams,omitempty"`
}

func (d *Doclet) view() docletView {
	return docletView{
		ID:            d.ID,
		Name:          d.Name,
		Route:         d.Route,
		Description:   d.Description,
		BodyParams:    d.params[BodyParams],
		HeaderParams:  d.params[HeaderParams],
		ResponseCodes: d.params[ResponseCodes],
		ReturnParams:  d.params[ReturnParams],
		RouteParams:   d.params[RouteParams],
	}
}

func (d *Doclet) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.view())
}

func (d *Doclet) MarshalYAML() (interface{}, error) {
	return d.view(), nil
}
