// Package source loads doclet records whose tags have already been parsed
// out of doc comments.
package source

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Aman-s12345/go-routedoc/internal/doclet"
	"github.com/Aman-s12345/go-routedoc/internal/errors"
	"github.com/Aman-s12345/go-routedoc/internal/tags"
)

const (
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// Bundle is the input document: an ordered list of records.
type Bundle struct {
	Doclets []Record `json:"doclets" yaml:"doclets"`
}

// Record is one documented route handler and the tags found on it, in
// source order.
type Record struct {
	ID          string        `json:"id,omitempty" yaml:"id,omitempty"`
	Name        string        `json:"name" yaml:"name"`
	Description string        `json:"description,omitempty" yaml:"description,omitempty"`
	Route       *doclet.Route `json:"route,omitempty" yaml:"route,omitempty"`
	Tags        []tags.Tag    `json:"tags,omitempty" yaml:"tags,omitempty"`
}

// NewDoclet creates the doclet the record's tags are folded into.
func (r Record) NewDoclet() *doclet.Doclet {
	d := doclet.New(r.ID, r.Name)
	d.Description = r.Description
	if r.Route != nil {
		route := *r.Route
		d.Route = &route
	}
	return d
}

// FormatFromPath picks the decoder for a file by extension.
func FormatFromPath(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", errors.Errorf(errors.KindValidation, "cannot infer input format from %q (use .yaml, .yml or .json)", path)
	}
}

// Load reads and decodes the bundle at path.
func Load(path string) (*Bundle, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.KindInternal, "failed to read input %s", path)
	}
	b, err := Decode(bytes.NewReader(data), format)
	if err != nil {
		return nil, errors.Attr(err, "path", path)
	}
	return b, nil
}

// Decode reads a bundle in the given format. Unknown fields are rejected so
// that misspelled keys such as "default" instead of "defaultvalue" do not
// silently drop data.
func Decode(r io.Reader, format string) (*Bundle, error) {
	var b Bundle
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&b); err != nil && err != io.EOF {
			return nil, errors.Wrap(err, errors.KindValidation, "failed to decode YAML input")
		}
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&b); err != nil && err != io.EOF {
			return nil, errors.Wrap(err, errors.KindValidation, "failed to decode JSON input")
		}
	default:
		return nil, errors.Errorf(errors.KindValidation, "unsupported input format: %s (supported: json, yaml)", format)
	}

	for i, rec := range b.Doclets {
		for j, t := range rec.Tags {
			if t.Title == "" {
				return nil, errors.Attr(errors.Errorf(errors.KindValidation,
					"doclet %d (%s): tag %d has no title", i, rec.Name, j), "doclet", rec.Name)
			}
		}
	}
	return &b, nil
}
