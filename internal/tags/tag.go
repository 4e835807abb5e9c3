// Package tags defines the five route parameter tags and the finalizers that
// render their collected entries into a doclet's description.
//
// Tag occurrences arrive already parsed: the host splits the annotation into
// a name token, type alternatives, a free-text description, an optional
// marker and a default value. Nothing here validates them; the host rejects
// malformed occurrences before OnTagged runs.
package tags

// Type is the bracketed type expression of a tag, e.g. {number|string}.
type Type struct {
	Names []string `json:"names" yaml:"names"`
}

// Value holds the parsed parts of one tag occurrence. Optional is set
// whenever the optional marker was present, whatever its value.
type Value struct {
	Name         string  `json:"name,omitempty" yaml:"name,omitempty"`
	Type         *Type   `json:"type,omitempty" yaml:"type,omitempty"`
	Description  string  `json:"description,omitempty" yaml:"description,omitempty"`
	Optional     *bool   `json:"optional,omitempty" yaml:"optional,omitempty"`
	DefaultValue *string `json:"defaultvalue,omitempty" yaml:"defaultvalue,omitempty"`
}

// Empty reports whether no part of the value was parsed.
func (v Value) Empty() bool {
	return v.Name == "" && (v.Type == nil || len(v.Type.Names) == 0) &&
		v.Description == "" && v.Optional == nil && v.DefaultValue == nil
}

// Tag is one occurrence of an annotation in a doc comment.
type Tag struct {
	Title string `json:"title" yaml:"title"`
	Text  string `json:"text,omitempty" yaml:"text,omitempty"`
	Value Value  `json:"value" yaml:"value"`
}

// HasValue reports whether anything followed the tag keyword.
func (t Tag) HasValue() bool {
	return t.Text != "" || !t.Value.Empty()
}
