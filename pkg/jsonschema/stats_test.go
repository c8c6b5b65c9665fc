package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeFieldStats_OptionalFields(t *testing.T) {
	m := model(t, `{"items":[{"id":1,"name":"a"},{"id":2},{"id":3,"name":null,"extra":true}]}`, "Root")

	stats := ComputeFieldStats(m)

	byPath := make(map[string]FieldStat)
	for _, s := range stats {
		byPath[s.Path] = s
	}

	require.Contains(t, byPath, "Item.id")
	assert.Equal(t, 1.0, byPath["Item.id"].Frequency)
	assert.True(t, byPath["Item.id"].Required)
	assert.Equal(t, "integer", byPath["Item.id"].Type)

	assert.InDelta(t, 2.0/3.0, byPath["Item.name"].Frequency, 1e-9)
	assert.False(t, byPath["Item.name"].Required)
	assert.True(t, byPath["Item.name"].Nullable)

	assert.InDelta(t, 1.0/3.0, byPath["Item.extra"].Frequency, 1e-9)

	assert.Equal(t, "list<object<Item>>", byPath["Root.items"].Type)
	assert.True(t, byPath["Root.items"].Required)
}

func TestComputeFieldStats_Order(t *testing.T) {
	m := model(t, `{"b":1,"a":{"z":1,"y":2}}`, "Root")

	var paths []string
	for _, s := range ComputeFieldStats(m) {
		paths = append(paths, s.Path)
	}
	assert.Equal(t, []string{"Root.b", "Root.a", "A.z", "A.y"}, paths)
}

func TestComputeFieldStats_NilModel(t *testing.T) {
	assert.Nil(t, ComputeFieldStats(nil))
}

func TestOptionalFields(t *testing.T) {
	m := model(t, `[{"id":1,"note":"x"},{"id":2}]`, "Row")

	optional := OptionalFields(ComputeFieldStats(m))
	require.Len(t, optional, 1)
	assert.Equal(t, "Row.note", optional[0].Path)
	assert.Equal(t, "note", optional[0].SourceKey)
}

func TestComputeFieldStats_RepeatedKeyCountsOnce(t *testing.T) {
	m := model(t, `{"items":[{"a":1,"a":2},{"b":true}]}`, "Root")

	for _, s := range ComputeFieldStats(m) {
		if s.Path == "Item.a" {
			assert.Equal(t, 0.5, s.Frequency)
			assert.False(t, s.Required)
			return
		}
	}
	t.Fatal("Item.a missing from stats")
}
