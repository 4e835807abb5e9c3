package generator

import (
	"log/slog"
	"sort"
	"strings"

	"github.com/Aman-s12345/go-routedoc/internal/doclet"
	"github.com/Aman-s12345/go-routedoc/internal/logging"
)

func New(config Config, logger *slog.Logger) *Generator {
	return &Generator{config: config, logger: logging.WithComponent(logger, "generator")}
}

// Generate builds an OpenAPI document from finalized doclets. Doclets without
// a route are skipped.
func (g *Generator) Generate(doclets []*doclet.Doclet) *OpenAPISpec {
	spec := &OpenAPISpec{
		OpenAPI: "3.0.3",
		Info: Info{
			Title:       g.config.Title,
			Description: g.config.Description,
			Version:     g.config.Version,
		},
		Paths: make(map[string]PathItem),
	}
	if g.config.ServerURL != "" {
		spec.Servers = []Server{
			{
				URL:         g.config.ServerURL,
				Description: "Development server",
			},
		}
	}

	tags := make(map[string]bool)
	processedPaths := make(map[string]bool) // Track processed paths to avoid duplicates
	needsAuth := false

	for _, d := range doclets {
		if d.Route == nil {
			continue
		}

		openAPIPath := g.convertPathFormat(d.Route.Path)
		method := strings.ToLower(d.Route.Method)

		pathKey := method + ":" + openAPIPath
		if processedPaths[pathKey] {
			g.logger.Warn("duplicate route, keeping the first doclet", "route", pathKey, "doclet", d.Name)
			continue
		}

		operation := g.generateOperation(d)
		pathItem := spec.Paths[openAPIPath]
		if !setOperation(&pathItem, method, operation) {
			g.logger.Warn("unsupported method, skipping doclet", "method", d.Route.Method, "doclet", d.Name)
			continue
		}
		processedPaths[pathKey] = true

		for _, tag := range operation.Tags {
			tags[tag] = true
		}
		if len(operation.Security) > 0 {
			needsAuth = true
		}

		spec.Paths[openAPIPath] = g.validatePathParameters(openAPIPath, pathItem)
	}

	tagNames := make([]string, 0, len(tags))
	for tagName := range tags {
		tagNames = append(tagNames, tagName)
	}
	sort.Strings(tagNames)
	for _, tagName := range tagNames {
		spec.Tags = append(spec.Tags, Tag{
			Name:        tagName,
			Description: g.generateTagDescription(tagName),
		})
	}

	if needsAuth {
		spec.Components = &Components{
			SecuritySchemes: map[string]SecurityScheme{
				"bearerAuth": {
					Type:         "http",
					Scheme:       "bearer",
					BearerFormat: "JWT",
					Description:  "Authorization header using Bearer token",
				},
			},
		}
	}

	g.logger.Debug("generated spec", "paths", len(spec.Paths), "tags", len(spec.Tags))
	return spec
}

func setOperation(item *PathItem, method string, op *Operation) bool {
	switch method {
	case "get":
		item.Get = op
	case "post":
		item.Post = op
	case "put":
		item.Put = op
	case "delete":
		item.Delete = op
	case "patch":
		item.Patch = op
	case "head":
		item.Head = op
	case "options":
		item.Options = op
	default:
		return false
	}
	return true
}

func (item PathItem) operations() []*Operation {
	return []*Operation{item.Get, item.Post, item.Put, item.Delete, item.Patch, item.Head, item.Options}
}
