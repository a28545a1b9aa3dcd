package types

import (
	"testing"

	"github.com/nalgeon/be"

	"syntaxcheck/internal/symtab"
)

func TestIsValidValue(t *testing.T) {
	tests := []struct {
		typ   string
		value string
		want  bool
	}{
		{"int", "5", true},
		{"int", "-42", true},
		{"int", "5.0", false},
		{"int", "abc", false},
		{"int", "", false},
		{"int", "  ", false},
		{"short", "7", true},
		{"unsigned int", "3", true},
		{"long long", "10L", true},
		{"long long", "10", true},
		{"long", "10L", false},
		{"float", "3.14f", true},
		{"double", "1e10", true},
		{"double", "2.5E-3", true},
		{"double", "1.", false},
		{"char", "'a'", true},
		{"char", "'ab'", false},
		{"char", `"a"`, false},
		{"bool", "true", true},
		{"bool", "0", true},
		{"bool", "2", false},
		{"string", `"hello"`, true},
		{"string", `""`, true},
		{"string", "hello", false},
		{"int", "a + 1", true},
		{"string", "x * y", true},
		{"void", "1", false},
	}

	for _, tt := range tests {
		t.Run(tt.typ+"="+tt.value, func(t *testing.T) {
			be.Equal(t, IsValidValue(tt.typ, tt.value, nil), tt.want)
		})
	}
}

func TestIsValidValueVariables(t *testing.T) {
	s := symtab.NewScope("global", nil)
	s.Declare("n", "int", true, 1)
	s.Declare("u", "int", false, 2)
	s.Declare("name", "string", true, 3)
	s.Declare("c", "char", true, 4)
	s.Declare("d", "double", true, 5)

	be.True(t, IsValidValue("int", "n", s))
	be.True(t, IsValidValue("double", "n", s))
	be.True(t, !IsValidValue("int", "u", s))
	be.True(t, !IsValidValue("double", "u", s))
	be.True(t, IsValidValue("string", "name", s))
	be.True(t, IsValidValue("string", "c", s))
	be.True(t, !IsValidValue("string", "n", s))
	be.True(t, !IsValidValue("int", "d", s))

	// Unknown names are checked against literal shapes.
	be.True(t, !IsValidValue("int", "missing", s))
}

func TestIsTypeCompatible(t *testing.T) {
	tests := []struct {
		target, source string
		want           bool
	}{
		{"int", "int", true},
		{"double", "int", true},
		{"double", "long long", true},
		{"float", "double", false},
		{"float", "short", true},
		{"long long", "long", true},
		{"long", "long long", false},
		{"int", "short", true},
		{"int", "long", false},
		{"unsigned int", "short", true},
		{"bool", "long long", true},
		{"bool", "double", false},
		{"string", "char", true},
		{"string", "int", false},
		{"string", "bool", false},
		{"char", "string", false},
	}

	for _, tt := range tests {
		t.Run(tt.target+"<-"+tt.source, func(t *testing.T) {
			be.Equal(t, IsTypeCompatible(tt.target, tt.source), tt.want)
		})
	}
}

func TestIsNumeric(t *testing.T) {
	be.True(t, IsNumeric("int"))
	be.True(t, IsNumeric("double"))
	be.True(t, IsNumeric("long long"))
	be.True(t, !IsNumeric("string"))
	be.True(t, !IsNumeric("bool"))
	be.True(t, !IsNumeric("void"))
}
