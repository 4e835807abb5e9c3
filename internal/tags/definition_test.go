package tags

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aman-s12345/go-routedoc/internal/doclet"
)

func strptr(s string) *string { return &s }
func boolptr(b bool) *bool     { return &b }

func TestNewDefinition(t *testing.T) {
	want := map[doclet.Category]string{
		doclet.BodyParams:    "bodyparam",
		doclet.HeaderParams:  "headerparam",
		doclet.ResponseCodes: "responsecode",
		doclet.ReturnParams:  "returnparam",
		doclet.RouteParams:   "routeparam",
	}
	for c, name := range want {
		def := NewDefinition(c)
		assert.Equal(t, name, def.Name)
		assert.Equal(t, c, def.Category)
		assert.Equal(t, Options{
			MustHaveValue:          true,
			MustNotHaveDescription: false,
			CanHaveType:            true,
			CanHaveName:            true,
		}, def.Options)
	}
}

func TestOnTaggedTwoBodyParams(t *testing.T) {
	d := doclet.New("", "createThing")
	def := NewDefinition(doclet.BodyParams)

	def.OnTagged(d, Tag{Title: "bodyparam", Value: Value{
		Name: "id",
		Type: &Type{Names: []string{"string"}},
	}})
	def.OnTagged(d, Tag{Title: "bodyparam", Value: Value{
		Name:     "count",
		Type:     &Type{Names: []string{"number", "string"}},
		Optional: boolptr(true),
	}})

	want := []doclet.Entry{
		{Name: "id", Type: doclet.TypeNames{"string"}, Description: "", Optional: strptr("")},
		{Name: "count", Type: doclet.TypeNames{"number", "string"}, Description: "", Optional: strptr("optional")},
	}
	if diff := cmp.Diff(want, d.Entries(doclet.BodyParams)); diff != "" {
		t.Errorf("bodyparams mismatch (-want +got):\n%s", diff)
	}
	for _, c := range doclet.Categories()[1:] {
		assert.Zero(t, d.Len(c), c.Key())
	}
}

func TestOnTaggedRouteParam(t *testing.T) {
	d := doclet.New("", "getThing")
	NewDefinition(doclet.RouteParams).OnTagged(d, Tag{Title: "routeparam", Value: Value{
		Name:         "id",
		Type:         &Type{Names: []string{"string"}},
		Description:  "The identifier",
		Optional:     boolptr(true),
		DefaultValue: strptr("1"),
	}})

	got := d.Entries(doclet.RouteParams)
	require.Len(t, got, 1)
	assert.Equal(t, doclet.Entry{Name: "id", Type: doclet.TypeNames{"string"}, Description: "The identifier"}, got[0])
	assert.Nil(t, got[0].Optional)
	assert.Nil(t, got[0].DefaultValue)
}

func TestOnTaggedFieldRules(t *testing.T) {
	attrCategories := []doclet.Category{doclet.BodyParams, doclet.HeaderParams, doclet.ResponseCodes, doclet.ReturnParams}

	for _, c := range attrCategories {
		t.Run(c.Key(), func(t *testing.T) {
			d := doclet.New("", "")
			def := NewDefinition(c)

			// no type, no description, no optional marker, no default
			def.OnTagged(d, Tag{Value: Value{Name: "plain"}})
			// optional marker present but false still counts as present
			def.OnTagged(d, Tag{Value: Value{Name: "flagged", Optional: boolptr(false)}})
			// explicit empty default
			def.OnTagged(d, Tag{Value: Value{Name: "empty", DefaultValue: strptr("")}})
			def.OnTagged(d, Tag{Value: Value{Type: &Type{Names: []string{}}}})

			got := d.Entries(c)
			require.Len(t, got, 4)

			assert.Empty(t, got[0].Type)
			assert.Equal(t, "", got[0].Description)
			require.NotNil(t, got[0].Optional)
			assert.Equal(t, "", *got[0].Optional)
			assert.Nil(t, got[0].DefaultValue)

			assert.Equal(t, "optional", *got[1].Optional)

			require.NotNil(t, got[2].DefaultValue)
			assert.Equal(t, "", *got[2].DefaultValue)

			assert.Empty(t, got[3].Name)
			assert.Empty(t, got[3].Type)
		})
	}
}

func TestOnTaggedCopiesInput(t *testing.T) {
	d := doclet.New("", "")
	names := []string{"number", "string"}
	def := strptr("5")
	NewDefinition(doclet.HeaderParams).OnTagged(d, Tag{Value: Value{
		Name:         "X-Limit",
		Type:         &Type{Names: names},
		DefaultValue: def,
	}})
	names[0] = "boolean"
	*def = "6"

	got := d.Entries(doclet.HeaderParams)[0]
	assert.Equal(t, doclet.TypeNames{"number", "string"}, got.Type)
	assert.Equal(t, "5", *got.DefaultValue)
}

func TestOnTaggedAppendOrder(t *testing.T) {
	d := doclet.New("", "")
	def := NewDefinition(doclet.ResponseCodes)
	codes := []string{"200", "201", "400", "404", "500"}
	for _, code := range codes {
		def.OnTagged(d, Tag{Value: Value{Name: code, Description: "status " + code}})
	}

	got := d.Entries(doclet.ResponseCodes)
	require.Len(t, got, len(codes))
	for i, code := range codes {
		assert.Equal(t, code, got[i].Name)
		assert.Equal(t, "status "+code, got[i].Description)
	}
}

func TestTagHasValue(t *testing.T) {
	assert.False(t, Tag{Title: "bodyparam"}.HasValue())
	assert.True(t, Tag{Title: "bodyparam", Text: "{string} id"}.HasValue())
	assert.True(t, Tag{Value: Value{Optional: boolptr(false)}}.HasValue())
	assert.False(t, Tag{Value: Value{Type: &Type{}}}.HasValue())
}
