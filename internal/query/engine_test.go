package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/usestring/jackgen/pkg/jsonvalue"
)

const sample = `{
	"meta": {"page": 1},
	"data": {
		"items": [
			{"z_last": 1, "a_first": "x", "m_mid": true},
			{"z_last": 2, "a_first": "y", "m_mid": false}
		]
	}
}`

func TestSelector_Select_PreservesMemberOrder(t *testing.T) {
	sel, err := Compile(".data.items[0]")
	require.NoError(t, err)

	got, err := sel.Select(jsonvalue.MustParse(sample))
	require.NoError(t, err)
	require.Len(t, got, 1)

	var keys []string
	for _, m := range got[0].Members() {
		keys = append(keys, m.Key)
	}
	assert.Equal(t, []string{"z_last", "a_first", "m_mid"}, keys)
}

func TestSelector_Select_Iteration(t *testing.T) {
	sel, err := Compile(".data.items[]")
	require.NoError(t, err)

	got, err := sel.Select(jsonvalue.MustParse(sample))
	require.NoError(t, err)
	require.Len(t, got, 2)
	v, ok := got[1].Get("a_first")
	require.True(t, ok)
	assert.Equal(t, "y", v.Str())
}

func TestSelector_Select_FilterAndNegativeIndex(t *testing.T) {
	doc := jsonvalue.MustParse(sample)

	sel, err := Compile(`.data.items[] | select(.m_mid)`)
	require.NoError(t, err)
	got, err := sel.Select(doc)
	require.NoError(t, err)
	require.Len(t, got, 1)
	v, _ := got[0].Get("z_last")
	assert.Equal(t, "1", v.Literal())

	sel, err = Compile(".data.items[-1]")
	require.NoError(t, err)
	got, err = sel.Select(doc)
	require.NoError(t, err)
	require.Len(t, got, 1)
	v, _ = got[0].Get("z_last")
	assert.Equal(t, "2", v.Literal())
}

func TestSelector_Select_MissingPath(t *testing.T) {
	sel, err := Compile(".nope")
	require.NoError(t, err)

	got, err := sel.Select(jsonvalue.MustParse(sample))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSelector_Select_NonPathExpression(t *testing.T) {
	sel, err := Compile(".data.items | length")
	require.NoError(t, err)

	_, err = sel.Select(jsonvalue.MustParse(sample))
	require.Error(t, err)
	assert.Contains(t, err.Error(), ".data.items | length")
}

func TestSelector_SelectOne(t *testing.T) {
	doc := jsonvalue.MustParse(sample)

	sel, err := Compile(".meta")
	require.NoError(t, err)
	got, err := sel.SelectOne(doc)
	require.NoError(t, err)
	assert.Equal(t, jsonvalue.Object, got.Kind())

	sel, err = Compile(".data.items[]")
	require.NoError(t, err)
	got, err = sel.SelectOne(doc)
	require.NoError(t, err)
	assert.Equal(t, jsonvalue.Array, got.Kind())
	assert.Equal(t, 2, got.Len())

	sel, err = Compile(".missing")
	require.NoError(t, err)
	_, err = sel.SelectOne(doc)
	assert.Error(t, err)
}

func TestCompile_Invalid(t *testing.T) {
	_, err := Compile(".name[")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid jq expression")

	_, err = Compile("   ")
	assert.Error(t, err)

	_, err = Compile("undefined_fn(1)")
	assert.Error(t, err)
}

func TestSelector_Expression(t *testing.T) {
	sel, err := Compile("  .data  ")
	require.NoError(t, err)
	assert.Equal(t, ".data", sel.Expression())
}
