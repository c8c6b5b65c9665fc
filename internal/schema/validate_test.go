package schema

import (
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/usestring/jackgen/pkg/classmodel"
	"github.com/usestring/jackgen/pkg/jsonschema"
	"github.com/usestring/jackgen/pkg/jsonvalue"
	"github.com/usestring/jackgen/pkg/types"
)

func validatorFor(t *testing.T, doc, root string) *Validator {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	m := classmodel.Build(jsonvalue.MustParse(doc), root, classmodel.WithLogger(logger))
	v, err := NewValidator(jsonschema.FromModel(m, nil))
	require.NoError(t, err)
	return v
}

func TestValidator_AcceptsSourceDocument(t *testing.T) {
	doc := `{"user_name":"Ann","age":30,"born":"1990-04-01","tags":["x"],"address":{"city":"NY"},"items":[{"a":1},{"b":2.5}]}`

	result := validatorFor(t, doc, "Root").Validate([]byte(doc))
	assert.True(t, result.Valid, "errors: %v", result.Errors)
	assert.Empty(t, result.Errors)
}

func TestValidator_RootArray(t *testing.T) {
	doc := `[{"id":1},{"id":2,"name":null}]`
	v := validatorFor(t, doc, "Row")

	assert.True(t, v.Validate([]byte(doc)).Valid)
	assert.False(t, v.Validate([]byte(`[{"name":"x"}]`)).Valid, "id is required")
	assert.False(t, v.Validate([]byte(`{"id":1}`)).Valid, "root must be an array")
}

func TestValidator_WrongType(t *testing.T) {
	v := validatorFor(t, `{"name":"Ann","age":30}`, "Person")

	result := v.Validate([]byte(`{"name":"Ann","age":"thirty"}`))
	require.False(t, result.Valid)
	require.NotEmpty(t, result.Errors)
	assert.True(t, strings.HasPrefix(result.Errors[0], "/age"), "got %v", result.Errors)
}

func TestValidator_NestedClassViolation(t *testing.T) {
	v := validatorFor(t, `{"address":{"zip":"10001"}}`, "Root")

	result := v.Validate([]byte(`{"address":{"zip":10001}}`))
	require.False(t, result.Valid)
	assert.Contains(t, strings.Join(result.Errors, "\n"), "/address/zip")
}

func TestValidator_MergeConflictIsReported(t *testing.T) {
	doc := `{"rows":[{"x":"5"},{"x":5}]}`

	result := validatorFor(t, doc, "Root").Validate([]byte(doc))
	require.False(t, result.Valid)
	assert.Contains(t, strings.Join(result.Errors, "\n"), "/rows/0/x")
}

func TestValidator_InvalidJSON(t *testing.T) {
	result := validatorFor(t, `{"a":1}`, "Root").Validate([]byte(`{"a":`))
	require.False(t, result.Valid)
	assert.Contains(t, result.Errors[0], "invalid JSON")
}

func TestNewValidator_Errors(t *testing.T) {
	_, err := NewValidator(nil)
	assert.Error(t, err)

	_, err = NewValidatorFromJSON([]byte(`{"type": 12}`))
	assert.Error(t, err)

	_, err = NewValidatorFromJSON([]byte(`not json`))
	assert.Error(t, err)
}

func TestSummary(t *testing.T) {
	assert.Equal(t, "document matches the generated classes", Summary(&types.ValidationResult{Valid: true}))
	assert.Equal(t,
		"document violates the generated classes in 2 place(s)",
		Summary(&types.ValidationResult{Errors: []string{"a", "b"}}),
	)
}
