package jsonvalue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Scalars(t *testing.T) {
	tests := []struct {
		name string
		json string
		kind Kind
	}{
		{"null", `null`, Null},
		{"true", `true`, Bool},
		{"false", `false`, Bool},
		{"integer", `42`, Number},
		{"float", `3.14`, Number},
		{"string", `"hello"`, String},
		{"padded", "  \n\"x\"\t", String},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := Parse([]byte(tt.json))
			require.NoError(t, err)
			assert.Equal(t, tt.kind, v.Kind())
		})
	}
}

func TestParse_StringUnescaped(t *testing.T) {
	v, err := Parse([]byte(`"line\nbreak é"`))
	require.NoError(t, err)
	assert.Equal(t, "line\nbreak é", v.Str())
}

func TestParse_NumberLiteralKept(t *testing.T) {
	tests := []struct {
		json     string
		integral bool
	}{
		{`0`, true},
		{`-17`, true},
		{`1.0`, false},
		{`1e5`, false},
		{`2.5E-3`, false},
	}

	for _, tt := range tests {
		t.Run(tt.json, func(t *testing.T) {
			v, err := Parse([]byte(tt.json))
			require.NoError(t, err)
			assert.Equal(t, tt.json, v.Literal())
			assert.Equal(t, tt.integral, v.IsIntegral())
		})
	}
}

func TestParse_ObjectPreservesOrder(t *testing.T) {
	v, err := Parse([]byte(`{"zeta": 1, "alpha": "a", "mid": [true, null]}`))
	require.NoError(t, err)
	require.Equal(t, Object, v.Kind())

	var keys []string
	for _, m := range v.Members() {
		keys = append(keys, m.Key)
	}
	assert.Equal(t, []string{"zeta", "alpha", "mid"}, keys)

	mid, ok := v.Get("mid")
	require.True(t, ok)
	require.Equal(t, Array, mid.Kind())
	require.Len(t, mid.Items(), 2)
	assert.True(t, mid.Items()[0].Bool())
	assert.Equal(t, Null, mid.Items()[1].Kind())
}

func TestParse_NestedContainers(t *testing.T) {
	v, err := Parse([]byte(`{"a": {"b": [{"c": []}, {}]}}`))
	require.NoError(t, err)

	a, ok := v.Get("a")
	require.True(t, ok)
	b, ok := a.Get("b")
	require.True(t, ok)
	require.Equal(t, 2, b.Len())

	first, ok := b.Index(0)
	require.True(t, ok)
	c, ok := first.Get("c")
	require.True(t, ok)
	assert.Equal(t, Array, c.Kind())
	assert.Equal(t, 0, c.Len())

	second, ok := b.Index(1)
	require.True(t, ok)
	assert.Equal(t, Object, second.Kind())
	assert.Equal(t, 0, second.Len())
}

func TestParse_EmptyContainers(t *testing.T) {
	arr, err := Parse([]byte(`[ ]`))
	require.NoError(t, err)
	assert.Equal(t, Array, arr.Kind())
	assert.Empty(t, arr.Items())

	obj, err := Parse([]byte(`{}`))
	require.NoError(t, err)
	assert.Equal(t, Object, obj.Kind())
	assert.Empty(t, obj.Members())
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		json string
	}{
		{"empty", ``},
		{"whitespace", "   "},
		{"unterminated object", `{"a": 1`},
		{"trailing comma", `[1, 2,]`},
		{"bare word", `hello`},
		{"trailing data", `{} {}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.json))
			assert.Error(t, err)
		})
	}
}

func TestParse_EmptyInputSentinel(t *testing.T) {
	_, err := Parse(nil)
	assert.ErrorIs(t, err, ErrEmptyInput)
}

func TestValue_ToAny(t *testing.T) {
	v := MustParse(`{"n": 3, "f": 1.5, "s": "x", "b": false, "z": null, "l": [1]}`)

	got, ok := v.ToAny().(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 3, got["n"])
	assert.Equal(t, 1.5, got["f"])
	assert.Equal(t, "x", got["s"])
	assert.Equal(t, false, got["b"])
	assert.Nil(t, got["z"])
	assert.Equal(t, []any{1}, got["l"])
}

func TestMustParse_Panics(t *testing.T) {
	assert.Panics(t, func() { MustParse(`{`) })
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "object", Object.String())
	assert.Equal(t, "Kind(42)", Kind(42).String())
}
