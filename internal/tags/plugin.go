package tags

import "github.com/Aman-s12345/go-routedoc/internal/doclet"

// Plugin pairs a tag definition with the finalizer of the same category.
type Plugin struct {
	Definition Definition
	Finalizer  Finalizer
}

func NewPlugin(c doclet.Category, b TableBuilder) Plugin {
	return Plugin{
		Definition: NewDefinition(c),
		Finalizer:  NewFinalizer(c, b),
	}
}

// Plugins returns the bodyparam, headerparam, responsecode, returnparam and
// routeparam plugins, all rendering through b.
func Plugins(b TableBuilder) []Plugin {
	cats := doclet.Categories()
	plugins := make([]Plugin, 0, len(cats))
	for _, c := range cats {
		plugins = append(plugins, NewPlugin(c, b))
	}
	return plugins
}
