package host

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aman-s12345/go-routedoc/internal/doclet"
	"github.com/Aman-s12345/go-routedoc/internal/errors"
	"github.com/Aman-s12345/go-routedoc/internal/paramtable"
	"github.com/Aman-s12345/go-routedoc/internal/source"
	"github.com/Aman-s12345/go-routedoc/internal/tags"
)

func strptr(s string) *string { return &s }
func boolptr(b bool) *bool     { return &b }

// listBuilder renders "[Title] a, b" so tests can read the appended text.
type listBuilder struct {
	fail string
}

func (b listBuilder) Build(title string, entries []doclet.Entry) (string, error) {
	if title == b.fail {
		return "", stderrors.New("cannot render " + title)
	}
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	return fmt.Sprintf("[%s] %s", title, strings.Join(names, ", ")), nil
}

func newRegistry(t *testing.T, b tags.TableBuilder) *Registry {
	t.Helper()
	r, err := NewDefaultRegistry(b, nil)
	require.NoError(t, err)
	return r
}

func begin(t *testing.T, r *Registry, d *doclet.Doclet) *Session {
	t.Helper()
	s, err := r.Begin(d)
	require.NoError(t, err)
	return s
}

func TestRegistry(t *testing.T) {
	r := newRegistry(t, listBuilder{})
	assert.Equal(t, []string{"bodyparam", "headerparam", "responsecode", "returnparam", "routeparam"}, r.Names())

	def, ok := r.Definition("routeparam")
	require.True(t, ok)
	assert.Equal(t, doclet.RouteParams, def.Category)

	_, ok = r.Definition("queryparam")
	assert.False(t, ok)

	err := r.Register(tags.NewPlugin(doclet.BodyParams, listBuilder{}))
	assert.Equal(t, errors.KindConflict, errors.GetKind(err))
	assert.Equal(t, "bodyparam", errors.GetAttributes(err)["tag"])

	err = r.Register(tags.Plugin{})
	assert.Equal(t, errors.KindValidation, errors.GetKind(err))

	err = r.Register(tags.Plugin{Definition: tags.Definition{Name: "weird", Category: doclet.Category(9)}})
	assert.Equal(t, errors.KindValidation, errors.GetKind(err))
	assert.Len(t, r.Names(), 5)
}

func TestSessionFoldsTagsAndFinalizes(t *testing.T) {
	r := newRegistry(t, listBuilder{})
	d := doclet.New("", "updateThing")
	d.Description = "Update a thing."
	s := begin(t, r, d)

	require.NoError(t, s.Tag(tags.Tag{Title: "routeparam", Value: tags.Value{Name: "id", Type: &tags.Type{Names: []string{"string"}}, Description: "The identifier"}}))
	require.NoError(t, s.Tag(tags.Tag{Title: "bodyparam", Value: tags.Value{Name: "id", Type: &tags.Type{Names: []string{"string"}}}}))
	require.NoError(t, s.Tag(tags.Tag{Title: "bodyparam", Value: tags.Value{Name: "count", Type: &tags.Type{Names: []string{"number", "string"}}, Optional: boolptr(true)}}))
	require.NoError(t, s.Tag(tags.Tag{Title: "responsecode", Value: tags.Value{Name: "204", Description: "Updated"}}))
	require.NoError(t, s.Finish())

	assert.Same(t, d, s.Doclet())
	assert.Equal(t, "Update a thing.\n[Body Parameters] id, count\n[Response Code] 204\n[Route Parameters] id", d.Description)

	wantRoute := []doclet.Entry{{Name: "id", Type: doclet.TypeNames{"string"}, Description: "The identifier"}}
	if diff := cmp.Diff(wantRoute, d.Entries(doclet.RouteParams)); diff != "" {
		t.Errorf("routeparams mismatch (-want +got):\n%s", diff)
	}
}

func TestSessionFinishOnce(t *testing.T) {
	r := newRegistry(t, listBuilder{})
	d := doclet.New("", "x")
	s := begin(t, r, d)
	require.NoError(t, s.Tag(tags.Tag{Title: "headerparam", Value: tags.Value{Name: "X-Token"}}))
	require.NoError(t, s.Finish())
	desc := d.Description

	err := s.Finish()
	assert.Equal(t, errors.KindConflict, errors.GetKind(err))
	assert.Equal(t, desc, d.Description)

	err = s.Tag(tags.Tag{Title: "headerparam", Value: tags.Value{Name: "X-Late"}})
	assert.Equal(t, errors.KindConflict, errors.GetKind(err))
	assert.Equal(t, 1, d.Len(doclet.HeaderParams))
}

func TestSessionWithoutTagsLeavesDescription(t *testing.T) {
	r := newRegistry(t, listBuilder{})
	d := doclet.New("", "ping")
	d.Description = "Health check.\n"
	require.NoError(t, begin(t, r, d).Finish())
	assert.Equal(t, "Health check.\n", d.Description)
}

func TestSessionRejectsBeforeOnTagged(t *testing.T) {
	r := NewRegistry(nil)
	strict := tags.NewPlugin(doclet.ReturnParams, listBuilder{})
	strict.Definition.Options = tags.Options{MustHaveValue: true, MustNotHaveDescription: true}
	require.NoError(t, r.Register(strict))

	tests := []struct {
		name string
		tag  tags.Tag
		kind errors.Kind
	}{
		{"unknown tag", tags.Tag{Title: "queryparam", Text: "q"}, errors.KindNotFound},
		{"missing value", tags.Tag{Title: "returnparam"}, errors.KindValidation},
		{"description not allowed", tags.Tag{Title: "returnparam", Value: tags.Value{Description: "x"}}, errors.KindValidation},
		{"type not allowed", tags.Tag{Title: "returnparam", Value: tags.Value{Type: &tags.Type{Names: []string{"string"}}}}, errors.KindValidation},
		{"name not allowed", tags.Tag{Title: "returnparam", Value: tags.Value{Name: "id"}}, errors.KindValidation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := doclet.New("", "strict")
			err := begin(t, r, d).Tag(tt.tag)
			require.Error(t, err)
			assert.Equal(t, tt.kind, errors.GetKind(err))
			assert.Zero(t, d.Len(doclet.ReturnParams))
		})
	}

	d := doclet.New("", "strict")
	require.NoError(t, begin(t, r, d).Tag(tags.Tag{Title: "returnparam", Text: "raw"}))
	assert.Equal(t, 1, d.Len(doclet.ReturnParams))
}

func TestSessionFinishPropagatesBuilderError(t *testing.T) {
	r := newRegistry(t, listBuilder{fail: "Header Parameters"})
	d := doclet.New("", "broken")
	s := begin(t, r, d)
	require.NoError(t, s.Tag(tags.Tag{Title: "bodyparam", Value: tags.Value{Name: "a"}}))
	require.NoError(t, s.Tag(tags.Tag{Title: "headerparam", Value: tags.Value{Name: "b"}}))

	err := s.Finish()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot render Header Parameters")
	attrs := errors.GetAttributes(err)
	assert.Equal(t, "headerparams", attrs["category"])
	assert.Equal(t, "broken", attrs["doclet"])
}

func TestBeginRequiresDoclet(t *testing.T) {
	r := newRegistry(t, listBuilder{})
	s, err := r.Begin(nil)
	assert.Nil(t, s)
	assert.Equal(t, errors.KindValidation, errors.GetKind(err))
}

func TestSessionOnZeroDoclet(t *testing.T) {
	r := newRegistry(t, listBuilder{})
	d := &doclet.Doclet{Name: "zero"}
	s := begin(t, r, d)
	require.NoError(t, s.Tag(tags.Tag{Title: "bodyparam", Value: tags.Value{Name: "id"}}))
	require.NoError(t, s.Finish())

	assert.Equal(t, 1, d.Len(doclet.BodyParams))
	assert.Equal(t, "\n[Body Parameters] id", d.Description)
}

func records(n int) []source.Record {
	recs := make([]source.Record, n)
	for i := range recs {
		recs[i] = source.Record{
			ID:   fmt.Sprintf("doc-%03d", i),
			Name: fmt.Sprintf("handler%d", i),
			Tags: []tags.Tag{
				{Title: "routeparam", Value: tags.Value{Name: "id"}},
				{Title: "returnparam", Value: tags.Value{Name: fmt.Sprintf("field%d", i), DefaultValue: strptr("")}},
			},
		}
	}
	return recs
}

func TestProcessorKeepsOrder(t *testing.T) {
	r := newRegistry(t, listBuilder{})
	p := NewProcessor(r, ProcessorConfig{Workers: 4}, nil)

	docs, err := p.Process(context.Background(), records(50))
	require.NoError(t, err)
	require.Len(t, docs, 50)
	for i, d := range docs {
		assert.Equal(t, fmt.Sprintf("doc-%03d", i), d.ID)
		assert.Equal(t, fmt.Sprintf("\n[Return Parameters] field%d\n[Route Parameters] id", i), d.Description)
	}
}

func TestProcessorWithRealBuilder(t *testing.T) {
	b, err := paramtable.New(paramtable.FormatMarkdown)
	require.NoError(t, err)
	p := NewProcessor(newRegistry(t, b), ProcessorConfig{}, nil)

	docs, err := p.Process(context.Background(), records(1))
	require.NoError(t, err)
	assert.Contains(t, docs[0].Description, "##### Return Parameters")
	assert.Contains(t, docs[0].Description, "##### Route Parameters")
}

func TestProcessorUnknownTags(t *testing.T) {
	recs := records(3)
	recs[1].Tags = append(recs[1].Tags, tags.Tag{Title: "queryparam", Text: "q"})

	strict := NewProcessor(newRegistry(t, listBuilder{}), ProcessorConfig{Workers: 2}, nil)
	_, err := strict.Process(context.Background(), recs)
	assert.Equal(t, errors.KindNotFound, errors.GetKind(err))

	lenient := NewProcessor(newRegistry(t, listBuilder{}), ProcessorConfig{Workers: 2, AllowUnknownTags: true}, nil)
	docs, err := lenient.Process(context.Background(), recs)
	require.NoError(t, err)
	assert.Len(t, docs, 3)
}

func TestProcessorValidationErrorsAreNotSkipped(t *testing.T) {
	recs := records(1)
	recs[0].Tags = append(recs[0].Tags, tags.Tag{Title: "bodyparam"})

	p := NewProcessor(newRegistry(t, listBuilder{}), ProcessorConfig{AllowUnknownTags: true}, nil)
	_, err := p.Process(context.Background(), recs)
	assert.Equal(t, errors.KindValidation, errors.GetKind(err))
}

func TestProcessorCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := NewProcessor(newRegistry(t, listBuilder{}), ProcessorConfig{Workers: 1}, nil)
	_, err := p.Process(ctx, records(5))
	assert.ErrorIs(t, err, context.Canceled)
}
