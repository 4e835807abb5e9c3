// Package host drives the tag plugins the way a documentation generator
// does: it registers them, feeds every tag occurrence of a doclet to the
// matching definition and fires the new-doclet finalizers once the doclet is
// complete.
package host

import (
	"log/slog"

	"github.com/Aman-s12345/go-routedoc/internal/doclet"
	"github.com/Aman-s12345/go-routedoc/internal/errors"
	"github.com/Aman-s12345/go-routedoc/internal/logging"
	"github.com/Aman-s12345/go-routedoc/internal/tags"
)

// Registry holds the registered plugins. It is not safe to Register while
// sessions are running; lookups are read-only and may be shared.
type Registry struct {
	definitions map[string]tags.Definition
	finalizers  []tags.Finalizer
	names       []string
	logger      *slog.Logger
}

func NewRegistry(logger *slog.Logger) *Registry {
	return &Registry{
		definitions: make(map[string]tags.Definition),
		logger:      logging.WithComponent(logger, "host"),
	}
}

// NewDefaultRegistry registers the five route parameter plugins rendering
// through b.
func NewDefaultRegistry(b tags.TableBuilder, logger *slog.Logger) (*Registry, error) {
	r := NewRegistry(logger)
	for _, p := range tags.Plugins(b) {
		if err := r.Register(p); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Register adds a plugin. Tag names must be unique.
func (r *Registry) Register(p tags.Plugin) error {
	name := p.Definition.Name
	if name == "" {
		return errors.New(errors.KindValidation, "plugin has no tag name")
	}
	if !p.Definition.Category.Valid() {
		return errors.Attr(errors.Errorf(errors.KindValidation, "tag %q has an unknown category", name), "tag", name)
	}
	if _, exists := r.definitions[name]; exists {
		return errors.Attr(errors.Errorf(errors.KindConflict, "tag %q is already defined", name), "tag", name)
	}

	r.definitions[name] = p.Definition
	r.finalizers = append(r.finalizers, p.Finalizer)
	r.names = append(r.names, name)
	r.logger.Debug("registered tag", "tag", name, "category", p.Definition.Category.Key())
	return nil
}

// Definition looks up a tag definition by name.
func (r *Registry) Definition(name string) (tags.Definition, bool) {
	def, ok := r.definitions[name]
	return def, ok
}

// Names returns the registered tag names in registration order.
func (r *Registry) Names() []string {
	return append([]string(nil), r.names...)
}

// Begin opens the tag session of one doclet.
func (r *Registry) Begin(d *doclet.Doclet) (*Session, error) {
	if d == nil {
		return nil, errors.New(errors.KindValidation, "cannot begin a session without a doclet")
	}
	return &Session{
		registry: r,
		doclet:   d,
		logger:   r.logger.With("doclet", d.Name, "id", d.ID),
	}, nil
}
