package generator

import (
	"net/http"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/Aman-s12345/go-routedoc/internal/doclet"
)

var versionRegex = regexp.MustCompile(`^v[0-9]+$`)

// title upper-cases the first letter of each word. Casers keep state, so a
// new one is made per call.
func title(s string) string {
	return cases.Title(language.English).String(s)
}

func (g *Generator) generateOperation(d *doclet.Doclet) *Operation {
	operation := &Operation{
		Summary:     g.generateSummary(d),
		Description: strings.TrimSpace(d.Description),
		OperationID: g.generateOperationID(d),
		Parameters:  []Parameter{},
		Responses:   make(map[string]Response),
	}
	if tag := g.getTagFromPath(d.Route.Path); tag != "" {
		operation.Tags = []string{tag}
	}

	for _, e := range d.Entries(doclet.RouteParams) {
		operation.Parameters = append(operation.Parameters, Parameter{
			Name:        e.Name,
			In:          "path",
			Required:    true,
			Description: e.Description,
			Schema:      g.schemaForTypes(e.Type),
		})
	}

	for _, e := range d.Entries(doclet.HeaderParams) {
		param := Parameter{
			Name:        e.Name,
			In:          "header",
			Required:    !e.IsOptional(),
			Description: e.Description,
			Schema:      g.schemaForTypes(e.Type),
		}
		if def, ok := e.Default(); ok {
			param.Schema.Default = def
		}
		operation.Parameters = append(operation.Parameters, param)

		// Add security if an Authorization header is documented
		if strings.EqualFold(e.Name, "Authorization") {
			operation.Security = []map[string][]string{
				{"bearerAuth": {}},
			}
		}
	}

	if body := d.Entries(doclet.BodyParams); len(body) > 0 {
		schema := g.objectSchema(body)
		operation.RequestBody = &RequestBody{
			Description: "Request body",
			Required:    len(schema.Required) > 0,
			Content: map[string]MediaType{
				"application/json": {Schema: schema},
			},
		}
	}

	for _, e := range d.Entries(doclet.ResponseCodes) {
		code := e.Name
		if code == "" {
			code = "default"
		}
		response := Response{Description: e.Description}
		if response.Description == "" {
			response.Description = statusDescription(code)
		}
		if len(e.Type) > 0 {
			response.Content = map[string]MediaType{
				"application/json": {Schema: g.schemaForTypes(e.Type)},
			}
		}
		operation.Responses[code] = response
	}

	if returns := d.Entries(doclet.ReturnParams); len(returns) > 0 {
		code := successCode(operation.Responses)
		response, exists := operation.Responses[code]
		if !exists {
			response = Response{Description: "Successful operation"}
		}
		response.Content = map[string]MediaType{
			"application/json": {Schema: g.objectSchema(returns)},
		}
		operation.Responses[code] = response
	}

	if len(operation.Responses) == 0 {
		operation.Responses["200"] = Response{
			Description: "Successful operation",
		}
	}

	return operation
}

// objectSchema turns entries into the properties of an object schema.
// Entries not tagged optional are required.
func (g *Generator) objectSchema(entries []doclet.Entry) Schema {
	schema := Schema{
		Type:       "object",
		Properties: make(map[string]Schema),
	}
	required := make(map[string]bool)
	for _, e := range entries {
		if e.Name == "" {
			continue
		}
		prop := g.schemaForTypes(e.Type)
		prop.Description = e.Description
		if def, ok := e.Default(); ok {
			prop.Default = def
		}
		schema.Properties[e.Name] = prop
		if !e.IsOptional() && !required[e.Name] {
			required[e.Name] = true
			schema.Required = append(schema.Required, e.Name)
		}
	}
	return schema
}

// successCode picks the documented response return parameters belong to:
// 200 when present, otherwise the lowest documented 2xx, otherwise 200.
func successCode(responses map[string]Response) string {
	if _, ok := responses["200"]; ok {
		return "200"
	}
	var codes []string
	for code := range responses {
		if strings.HasPrefix(code, "2") {
			codes = append(codes, code)
		}
	}
	if len(codes) == 0 {
		return "200"
	}
	sort.Strings(codes)
	return codes[0]
}

func statusDescription(code string) string {
	if n, err := strconv.Atoi(code); err == nil {
		if text := http.StatusText(n); text != "" {
			return text
		}
	}
	return "Response " + code
}

func (g *Generator) generateOperationID(d *doclet.Doclet) string {
	if d.Name != "" {
		return d.Name
	}

	method := strings.ToLower(d.Route.Method)
	path := g.convertPathFormat(d.Route.Path)

	// Clean the path for operation ID
	path = strings.ReplaceAll(path, "/", "_")
	path = strings.ReplaceAll(path, "{", "")
	path = strings.ReplaceAll(path, "}", "")
	path = strings.ReplaceAll(path, "-", "_")

	// Remove leading underscore if present
	path = strings.TrimPrefix(path, "_")

	return method + "_" + path
}

// generateSummary uses the first line of the doclet's own description,
// ignoring appended parameter tables, and falls back to "<Action> <Resource>".
func (g *Generator) generateSummary(d *doclet.Doclet) string {
	first, _, _ := strings.Cut(strings.TrimSpace(d.OwnDescription()), "\n")
	if first = strings.TrimSpace(first); first != "" {
		return first
	}
	action := g.getActionFromMethod(strings.ToUpper(d.Route.Method))
	resource := g.getResourceFromPath(d.Route.Path)
	return action + " " + resource
}

func (g *Generator) generateTagDescription(tagName string) string {
	return title(tagName) + " related endpoints"
}

func (g *Generator) getActionFromMethod(method string) string {
	actions := map[string]string{
		"GET":    "Get",
		"POST":   "Create",
		"PUT":    "Update",
		"DELETE": "Delete",
		"PATCH":  "Patch",
	}

	if action, exists := actions[method]; exists {
		return action
	}
	return title(strings.ToLower(method))
}

func (g *Generator) getResourceFromPath(path string) string {
	parts := strings.Split(path, "/")
	for i := len(parts) - 1; i >= 0; i-- {
		if parts[i] != "" && !isPathParam(parts[i]) {
			return title(parts[i])
		}
	}
	return "Resource"
}

// getTagFromPath groups operations by their first static segment, skipping
// "api" and version prefixes such as "v1".
func (g *Generator) getTagFromPath(path string) string {
	for _, part := range strings.Split(path, "/") {
		if part == "" || isPathParam(part) || part == "api" || versionRegex.MatchString(part) {
			continue
		}
		return strings.ToLower(part)
	}
	return ""
}

func isPathParam(segment string) bool {
	return strings.HasPrefix(segment, ":") || strings.HasPrefix(segment, "{")
}
