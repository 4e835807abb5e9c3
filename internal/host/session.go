package host

import (
	"log/slog"

	"github.com/Aman-s12345/go-routedoc/internal/doclet"
	"github.com/Aman-s12345/go-routedoc/internal/errors"
	"github.com/Aman-s12345/go-routedoc/internal/tags"
)

// Session folds the tags of a single doclet. It is used by one goroutine.
type Session struct {
	registry *Registry
	doclet   *doclet.Doclet
	logger   *slog.Logger
	finished bool
}

// Doclet returns the doclet being built.
func (s *Session) Doclet() *doclet.Doclet {
	return s.doclet
}

// Tag checks t against its definition's options and hands it to OnTagged.
// Rejected occurrences leave the doclet untouched.
func (s *Session) Tag(t tags.Tag) error {
	if s.finished {
		return errors.Errorf(errors.KindConflict, "doclet %q is already finalized", s.doclet.Name)
	}
	def, ok := s.registry.Definition(t.Title)
	if !ok {
		return errors.Attr(errors.Errorf(errors.KindNotFound, "unknown tag @%s", t.Title), "tag", t.Title)
	}
	if err := checkOptions(def, t); err != nil {
		return errors.Attr(errors.Attr(err, "tag", t.Title), "doclet", s.doclet.Name)
	}

	def.OnTagged(s.doclet, t)
	s.logger.Debug("tagged", "tag", t.Title, "name", t.Value.Name)
	return nil
}

func checkOptions(def tags.Definition, t tags.Tag) error {
	opts := def.Options
	v := t.Value
	switch {
	case opts.MustHaveValue && !t.HasValue():
		return errors.Errorf(errors.KindValidation, "@%s requires a value", def.Name)
	case opts.MustNotHaveDescription && v.Description != "":
		return errors.Errorf(errors.KindValidation, "@%s does not allow a description", def.Name)
	case !opts.CanHaveType && v.Type != nil && len(v.Type.Names) > 0:
		return errors.Errorf(errors.KindValidation, "@%s does not allow a type", def.Name)
	case !opts.CanHaveName && v.Name != "":
		return errors.Errorf(errors.KindValidation, "@%s does not allow a name", def.Name)
	}
	return nil
}

// Finish fires every registered finalizer once, in registration order. It
// stops at the first failure. A second call is an error.
func (s *Session) Finish() error {
	if s.finished {
		return errors.Errorf(errors.KindConflict, "doclet %q is already finalized", s.doclet.Name)
	}
	s.finished = true

	e, err := tags.NewEvent(s.doclet)
	if err != nil {
		return err
	}
	for _, f := range s.registry.finalizers {
		if err := f.HandleNewDoclet(e); err != nil {
			return errors.Attr(err, "doclet", s.doclet.Name)
		}
	}
	s.logger.Debug("finalized")
	return nil
}
