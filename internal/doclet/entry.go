package doclet

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// OptionalMarker is the value of Entry.Optional for entries tagged optional.
const OptionalMarker = "optional"

// Entry is one row collected from a single tag occurrence.
//
// Optional is nil for route parameters, which never carry it. For the other
// categories it points to OptionalMarker or to "". DefaultValue is nil when
// no default was given; a pointer to "" is an explicit empty default.
type Entry struct {
	Name         string    `json:"name" yaml:"name"`
	Type         TypeNames `json:"type" yaml:"type"`
	Description  string    `json:"description" yaml:"description"`
	Optional     *string   `json:"optional,omitempty" yaml:"optional,omitempty"`
	DefaultValue *string   `json:"defaultvalue,omitempty" yaml:"defaultvalue,omitempty"`
}

// IsOptional reports whether the entry was tagged optional.
func (e Entry) IsOptional() bool {
	return e.Optional != nil && *e.Optional == OptionalMarker
}

// HasAttributes reports whether the entry carries the attribute fields at all.
func (e Entry) HasAttributes() bool {
	return e.Optional != nil || e.DefaultValue != nil
}

// Default returns the default value and whether one was given.
func (e Entry) Default() (string, bool) {
	if e.DefaultValue == nil {
		return "", false
	}
	return *e.DefaultValue, true
}

// TypeNames is the ordered list of type alternatives of an entry.
//
// It serializes as "" when empty, as a bare string with one name and as a
// list with two or more.
type TypeNames []string

func (t TypeNames) String() string {
	return strings.Join(t, "|")
}

func (t TypeNames) value() any {
	switch len(t) {
	case 0:
		return ""
	case 1:
		return t[0]
	default:
		return []string(t)
	}
}

func (t TypeNames) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.value())
}

func (t *TypeNames) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*t = fromSingle(single)
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return fmt.Errorf("type must be a string or a list of strings: %w", err)
	}
	*t = TypeNames(many)
	return nil
}

func (t TypeNames) MarshalYAML() (interface{}, error) {
	return t.value(), nil
}

func (t *TypeNames) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		var single string
		if err := value.Decode(&single); err != nil {
			return err
		}
		*t = fromSingle(single)
	case yaml.SequenceNode:
		var many []string
		if err := value.Decode(&many); err != nil {
			return err
		}
		*t = TypeNames(many)
	default:
		return fmt.Errorf("line %d: type must be a string or a list of strings", value.Line)
	}
	return nil
}

func fromSingle(s string) TypeNames {
	if s == "" {
		return nil
	}
	return TypeNames{s}
}
