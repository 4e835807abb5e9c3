package generator

import (
	"regexp"
)

var pathParamRegex = regexp.MustCompile(`\{([^}]+)\}`)

// validatePathParameters makes the path parameters of every operation match
// the placeholders of the path: stale ones are dropped and undocumented ones
// are added as required strings.
func (g *Generator) validatePathParameters(path string, pathItem PathItem) PathItem {
	var pathParams []string
	for _, m := range pathParamRegex.FindAllStringSubmatch(path, -1) {
		pathParams = append(pathParams, m[1])
	}

	for _, op := range pathItem.operations() {
		g.validateOperationParameters(op, path, pathParams)
	}
	return pathItem
}

func (g *Generator) validateOperationParameters(operation *Operation, path string, pathParams []string) {
	if operation == nil {
		return
	}

	// Create a map of expected path parameters
	expectedParams := make(map[string]bool, len(pathParams))
	for _, name := range pathParams {
		expectedParams[name] = true
	}

	// Filter operation parameters to only include valid path parameters
	validParams := []Parameter{}
	documented := make(map[string]bool)
	for _, param := range operation.Parameters {
		if param.In != "path" {
			validParams = append(validParams, param)
			continue
		}
		if !expectedParams[param.Name] {
			g.logger.Warn("dropping path parameter missing from path", "path", path, "param", param.Name)
			continue
		}
		if documented[param.Name] {
			continue
		}
		documented[param.Name] = true
		validParams = append(validParams, param)
	}

	// Add missing path parameters
	for _, name := range pathParams {
		if documented[name] {
			continue
		}
		documented[name] = true
		validParams = append(validParams, Parameter{
			Name:     name,
			In:       "path",
			Required: true,
			Schema:   Schema{Type: "string"},
		})
	}

	operation.Parameters = validParams
}
