package jsoncompact

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/usestring/jackgen/pkg/jsonvalue"
)

func compactJSONString(t *testing.T, input string, opts *Options) string {
	t.Helper()
	out, err := CompactJSON([]byte(input), opts)
	require.NoError(t, err)
	return string(out)
}

func TestCompact_ArrayTrimming(t *testing.T) {
	got := compactJSONString(t, `{"items": [1, 2, 3, 4, 5, 6, 7, 8, 9, 10]}`, &Options{MaxArrayItems: 3})
	assert.Equal(t, `{"items":[1,2,3,"... (7 more items)"]}`, got)
}

func TestCompact_ArrayWithinLimit(t *testing.T) {
	got := compactJSONString(t, `{"items": [1, 2, 3]}`, &Options{MaxArrayItems: 5})
	assert.Equal(t, `{"items":[1,2,3]}`, got)
}

func TestCompact_NestedArrays(t *testing.T) {
	input := `{"users": [
		{"name": "Alice", "tags": ["a", "b", "c", "d", "e"]},
		{"name": "Bob", "tags": ["x"]},
		{"name": "Carol", "tags": []},
		{"name": "Dave", "tags": ["1", "2"]}
	]}`
	got := compactJSONString(t, input, &Options{MaxArrayItems: 2})
	assert.Equal(t,
		`{"users":[{"name":"Alice","tags":["a","b","... (3 more items)"]},{"name":"Bob","tags":["x"]},"... (2 more items)"]}`,
		got)
}

func TestCompact_PreservesMemberOrderAndLiterals(t *testing.T) {
	got := compactJSONString(t, `{"z": 1.50, "a": true, "m": null, "big": 12345678901234567890}`, nil)
	assert.Equal(t, `{"z":1.50,"a":true,"m":null,"big":12345678901234567890}`, got)
}

func TestCompact_StringTruncation(t *testing.T) {
	long := strings.Repeat("x", 12)
	got := compactJSONString(t, `{"s": "`+long+`"}`, &Options{MaxStringLen: 5})
	assert.Equal(t, `{"s":"xxxxx... (7 more chars)"}`, got)
}

func TestCompact_MaxDepth(t *testing.T) {
	got := compactJSONString(t, `{"a": {"b": {"c": 1}}, "n": 2}`, &Options{MaxDepth: 2})
	assert.Equal(t, `{"a":{"b":"[max depth]"},"n":2}`, got)
}

func TestCompact_Disabled(t *testing.T) {
	input := `[1,2,3,4,5]`
	got := compactJSONString(t, input, &Options{})
	assert.Equal(t, input, got)
}

func TestCompact_DoesNotModifyInput(t *testing.T) {
	v := jsonvalue.MustParse(`[1, 2, 3, 4]`)
	_ = Compact(v, &Options{MaxArrayItems: 1})
	assert.Equal(t, 4, v.Len())
}

func TestCompactJSON_InvalidJSON(t *testing.T) {
	_, err := CompactJSON([]byte(`{"a": `), nil)
	assert.Error(t, err)
}

func TestMarshal_Scalars(t *testing.T) {
	for _, input := range []string{`"text"`, `false`, `null`, `-0.5e3`, `{}`, `[]`} {
		out, err := Marshal(jsonvalue.MustParse(input))
		require.NoError(t, err)
		assert.Equal(t, input, string(out), input)
	}
}
