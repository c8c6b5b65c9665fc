package jsonschema

import (
	"io"
	"log/slog"
	"testing"

	"github.com/invopop/jsonschema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/usestring/jackgen/pkg/classmodel"
	"github.com/usestring/jackgen/pkg/infer"
	"github.com/usestring/jackgen/pkg/jsonvalue"
)

func model(t *testing.T, doc, root string) *classmodel.Model {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return classmodel.Build(jsonvalue.MustParse(doc), root, classmodel.WithLogger(logger))
}

func TestFromModel_ObjectRoot(t *testing.T) {
	m := model(t, `{"user_name":"Ann","age":30,"tags":["x"],"address":{"city":"NY"}}`, "Root")

	schema := FromModel(m, nil)

	assert.Equal(t, "#/$defs/Root", schema.Ref)
	require.Contains(t, schema.Definitions, "Root")
	require.Contains(t, schema.Definitions, "Address")

	root := schema.Definitions["Root"]
	assert.Equal(t, "object", root.Type)

	userName := root.Properties.GetPair("user_name")
	require.NotNil(t, userName, "properties are keyed by the JSON key")
	assert.Equal(t, "string", userName.Value.Type)

	tags := root.Properties.GetPair("tags")
	require.NotNil(t, tags)
	assert.Equal(t, "array", tags.Value.Type)
	assert.Equal(t, "string", tags.Value.Items.Type)

	address := root.Properties.GetPair("address")
	require.NotNil(t, address)
	assert.Equal(t, "#/$defs/Address", address.Value.Ref)

	assert.Equal(t, []string{"user_name", "age", "tags", "address"}, root.Required)
}

func TestFromModel_ArrayRoot(t *testing.T) {
	m := model(t, `[{"id":1},{"id":2,"name":"b"}]`, "User")

	schema := FromModel(m, nil)

	assert.Equal(t, "array", schema.Type)
	require.NotNil(t, schema.Items)
	assert.Equal(t, "#/$defs/User", schema.Items.Ref)
	assert.Empty(t, schema.Ref)
	assert.Equal(t, []string{"id"}, schema.Definitions["User"].Required)
}

func TestFromModel_EmptyModel(t *testing.T) {
	schema := FromModel(model(t, `42`, "Root"), nil)

	assert.Empty(t, schema.Definitions)
	assert.Empty(t, schema.Ref)
	assert.Empty(t, schema.Type)
}

func TestFromModel_NullableField(t *testing.T) {
	m := model(t, `[{"name":"a"},{"name":null}]`, "Row")

	row := FromModel(m, nil).Definitions["Row"]
	name := row.Properties.GetPair("name")
	require.NotNil(t, name)
	require.Len(t, name.Value.AnyOf, 2)
	assert.Equal(t, "null", name.Value.AnyOf[1].Type)
	assert.Empty(t, row.Required, "nullable fields are optional by default")

	opts := DefaultExportOptions()
	opts.MarkNullableAsOptional = false
	row = FromModel(m, opts).Definitions["Row"]
	assert.Equal(t, []string{"name"}, row.Required)
}

func TestFromModel_NoRequiredWhenNotStrict(t *testing.T) {
	m := model(t, `{"id":1}`, "Root")

	opts := DefaultExportOptions()
	opts.StrictRequired = false
	assert.Empty(t, FromModel(m, opts).Definitions["Root"].Required)
}

func TestFromModel_AdditionalProperties(t *testing.T) {
	m := model(t, `{"id":1,"child":{"x":true}}`, "Root")

	closed := false
	opts := DefaultExportOptions()
	opts.AdditionalProperties = &closed

	schema := FromModel(m, opts)
	require.Len(t, schema.Definitions, 2)
	for name, def := range schema.Definitions {
		assert.Same(t, jsonschema.FalseSchema, def.AdditionalProperties, name)
	}
}

func TestTypeSchema(t *testing.T) {
	tests := []struct {
		name     string
		typ      infer.Type
		wantType string
		format   string
	}{
		{"string", infer.Primitive(infer.String), "string", ""},
		{"boolean", infer.Primitive(infer.Boolean), "boolean", ""},
		{"integer", infer.Primitive(infer.Integer), "integer", ""},
		{"double", infer.Primitive(infer.Double), "number", ""},
		{"date", infer.Primitive(infer.Date), "string", "date"},
		{"time", infer.Primitive(infer.Time), "string", "time"},
		{"datetime", infer.Primitive(infer.DateTime), "string", "date-time"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := TypeSchema(tt.typ)
			assert.Equal(t, tt.wantType, s.Type)
			assert.Equal(t, tt.format, s.Format)
		})
	}

	nested := TypeSchema(infer.ListOf(infer.ListOf(infer.ObjectRef("Cell"))))
	assert.Equal(t, "array", nested.Type)
	assert.Equal(t, "array", nested.Items.Type)
	assert.Equal(t, "#/$defs/Cell", nested.Items.Items.Ref)
}
