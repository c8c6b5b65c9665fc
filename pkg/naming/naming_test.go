package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCamelCase(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"user_name", "userName"},
		{"created_at", "createdAt"},
		{"age", "age"},
		{"userName", "userName"},
		{"user_ID", "userId"},
		{"a_b_c", "aBC"},
		{"_id", "Id"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, CamelCase(tt.in))
		})
	}
}

func TestPascalCase(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"address", "Address"},
		{"shipping_address", "ShippingAddress"},
		{"userName", "Username"},
		{"HTTP_status", "HttpStatus"},
		{"élan_vital", "ÉlanVital"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, PascalCase(tt.in))
		})
	}
}

func TestSingular(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"items", "item"},
		{"tags", "tag"},
		{"item", "item"},
		{"address", "addre"},
		{"ss", "ss"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Singular(tt.in))
		})
	}
}

func TestElementClassName(t *testing.T) {
	assert.Equal(t, "Item", ElementClassName("items"))
	assert.Equal(t, "LineItem", ElementClassName("line_items"))
	assert.Equal(t, "Address", ClassName("address"))
}

func TestClassNameFromFile(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"data.json", "Data"},
		{"/tmp/input/user-profile.json", "UserProfile"},
		{"my order list.json", "MyOrderList"},
		{"snake_case_file.json", "SnakeCaseFile"},
		{"noext", "Noext"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassNameFromFile(tt.in))
		})
	}
}

func TestCapitalizeAndUpperFirst(t *testing.T) {
	assert.Equal(t, "Username", Capitalize("userName"))
	assert.Equal(t, "UserName", UpperFirst("userName"))
	assert.Equal(t, "", UpperFirst(""))
}
