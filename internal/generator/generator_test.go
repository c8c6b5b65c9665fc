package generator

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	gojson "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/usestring/jackgen/internal/render/java"
)

const orderDoc = `{
	"order_id": 42,
	"placed_on": "2024-01-15",
	"customer": {"first_name": "Ann", "address": {"city": "NY"}},
	"line_items": [
		{"sku": "A1", "qty": 2},
		{"sku": "B2", "qty": 1, "gift_wrap": true}
	]
}`

func quietGenerator() *Generator {
	return New(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func writeInput(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestRun_WritesClassesInDiscoveryOrder(t *testing.T) {
	input := writeInput(t, "purchase-order.json", orderDoc)
	out := filepath.Join(t.TempDir(), "generated")

	res, err := quietGenerator().Run(context.Background(), Options{
		Input:  input,
		Output: out,
		Render: java.Options{Package: "com.shop", Getters: true, Setters: true},
		Verify: true,
	})
	require.NoError(t, err)

	assert.Equal(t, "PurchaseOrder", res.Model.Root)
	assert.Equal(t, []string{"PurchaseOrder", "Customer", "Address", "LineItem"}, res.Model.ClassNames())
	assert.Equal(t, out, res.Dir)
	require.Len(t, res.Paths, 4)
	assert.Equal(t, filepath.Join(out, "PurchaseOrder.java"), res.Paths[0])
	assert.Equal(t, filepath.Join(out, "LineItem.java"), res.Paths[3])

	src, err := os.ReadFile(res.Paths[0])
	require.NoError(t, err)
	assert.Contains(t, string(src), "package com.shop;")
	assert.Contains(t, string(src), "private List<LineItem> lineItems;")
	assert.Contains(t, string(src), "private LocalDate placedOn;")
	assert.Contains(t, string(src), "public void setOrderId(Integer orderId) {")

	require.NotNil(t, res.Validation)
	assert.True(t, res.Validation.Valid, res.Validation.Errors)
}

func TestRun_SchemaOut(t *testing.T) {
	input := writeInput(t, "order.json", orderDoc)
	schemaPath := filepath.Join(t.TempDir(), "schemas", "order.schema.json")

	res, err := quietGenerator().Run(context.Background(), Options{
		Input:     input,
		SchemaOut: schemaPath,
		DryRun:    true,
	})
	require.NoError(t, err)
	assert.Empty(t, res.Paths)
	assert.Len(t, res.Files, 4)

	data, err := os.ReadFile(schemaPath)
	require.NoError(t, err)
	var doc map[string]any
	require.NoError(t, gojson.Unmarshal(data, &doc))
	assert.Equal(t, "#/$defs/Order", doc["$ref"])
	defs, ok := doc["$defs"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, defs, "LineItem")
}

func TestRun_SelectSubDocument(t *testing.T) {
	res, err := quietGenerator().Run(context.Background(), Options{
		Data:      []byte(orderDoc),
		RootClass: "Customer",
		Select:    ".customer",
		DryRun:    true,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Customer", "Address"}, res.Model.ClassNames())
}

func TestRun_VerifyReportsConflicts(t *testing.T) {
	res, err := quietGenerator().Run(context.Background(), Options{
		Data:   []byte(`[{"id": 1}, {"id": "x"}]`),
		Verify: true,
		DryRun: true,
	})
	require.NoError(t, err)
	require.Len(t, res.Model.Conflicts, 1)
	require.NotNil(t, res.Validation)
	assert.False(t, res.Validation.Valid)
}

func TestRun_VerifyAcceptsRepeatedKeys(t *testing.T) {
	for _, doc := range []string{
		`{"items":[{"a":1,"a":2},{"b":true}]}`,
		`{"items":[{"user_name":"x","userName":"y"},{"id":1}]}`,
	} {
		res, err := quietGenerator().Run(context.Background(), Options{
			Data:   []byte(doc),
			Verify: true,
			DryRun: true,
		})
		require.NoError(t, err, doc)
		require.NotNil(t, res.Validation)
		assert.True(t, res.Validation.Valid, "%s: %v", doc, res.Validation.Errors)
	}
}

func TestRun_InputErrors(t *testing.T) {
	tests := []struct {
		name string
		opts Options
	}{
		{"missing input", Options{}},
		{"missing file", Options{Input: filepath.Join(t.TempDir(), "nope.json")}},
		{"invalid json", Options{Data: []byte(`{"a":`)}},
		{"bad selection", Options{Data: []byte(`{"a":1}`), Select: ".a["}},
		{"empty selection", Options{Data: []byte(`{"a":1}`), Select: ".b"}},
		{"bad package", Options{Data: []byte(`{"a":1}`), Render: java.Options{Package: "1bad"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.opts.DryRun = true
			_, err := quietGenerator().Run(context.Background(), tt.opts)
			require.Error(t, err)
			assert.True(t, IsInputError(err), "want input error, got %v", err)
		})
	}
}

func TestReadInput_MaxBytes(t *testing.T) {
	input := writeInput(t, "big.json", `{"k":"`+strings.Repeat("x", 100)+`"}`)

	_, err := ReadInput(input, 10)
	require.Error(t, err)
	assert.True(t, IsInputError(err))

	data, err := ReadInput(input, 0)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}

func TestRootClassName(t *testing.T) {
	assert.Equal(t, "UserProfile", RootClassName("/tmp/user_profile.json"))
	assert.Equal(t, "MyData", RootClassName("my data.json"))
	assert.Equal(t, DefaultRootClass, RootClassName(StdinPath))
	assert.Equal(t, DefaultRootClass, RootClassName(""))
}

func TestAnalyze_RootArray(t *testing.T) {
	m, doc, err := quietGenerator().Analyze([]byte(`[{"a":1},{"b":"x"}]`), "Item", "")
	require.NoError(t, err)
	assert.True(t, m.RootIsArray)
	assert.Equal(t, 2, doc.Len())
	c, ok := m.Class("Item")
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, c.FieldNames())
}
