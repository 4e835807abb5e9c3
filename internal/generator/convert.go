package generator

import (
	"regexp"
	"strings"

	"github.com/Aman-s12345/go-routedoc/internal/doclet"
)

var (
	colonParamRegex = regexp.MustCompile(`:([a-zA-Z][a-zA-Z0-9_]*)`)
	arrayOfRegex    = regexp.MustCompile(`^Array\.?<(.+)>$`)
)

func (g *Generator) convertPathFormat(path string) string {
	// Convert :param to {param}
	converted := colonParamRegex.ReplaceAllString(path, "{$1}")

	// Ensure the path starts with /
	if !strings.HasPrefix(converted, "/") {
		converted = "/" + converted
	}

	return converted
}

// schemaForTypes maps a type union onto a schema. Several names become a
// oneOf; no names leave the schema unconstrained.
func (g *Generator) schemaForTypes(names doclet.TypeNames) Schema {
	switch len(names) {
	case 0:
		return Schema{}
	case 1:
		return g.schemaForType(names[0])
	}
	schema := Schema{}
	for _, name := range names {
		schema.OneOf = append(schema.OneOf, g.schemaForType(name))
	}
	return schema
}

func (g *Generator) schemaForType(name string) Schema {
	name = strings.TrimSpace(name)

	if m := arrayOfRegex.FindStringSubmatch(name); m != nil {
		items := g.schemaForType(m[1])
		return Schema{Type: "array", Items: &items}
	}
	if elem, ok := strings.CutSuffix(name, "[]"); ok {
		items := g.schemaForType(elem)
		return Schema{Type: "array", Items: &items}
	}

	switch strings.ToLower(name) {
	case "string":
		return Schema{Type: "string"}
	case "number", "float", "double":
		return Schema{Type: "number"}
	case "integer", "int":
		return Schema{Type: "integer"}
	case "boolean", "bool":
		return Schema{Type: "boolean"}
	case "array":
		return Schema{Type: "array", Items: &Schema{}}
	case "date":
		return Schema{Type: "string", Format: "date-time"}
	case "*", "any", "":
		return Schema{}
	default:
		// Named types (User, Object, ...) are documented as plain objects
		return Schema{Type: "object"}
	}
}
