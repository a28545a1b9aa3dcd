package rules

import (
	"testing"

	"github.com/nalgeon/be"

	"syntaxcheck/internal/symtab"
)

func TestParseDeclarations(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []Statement
	}{
		{
			name: "single",
			line: "int x = 5;",
			want: []Statement{{Type: "int", Decls: []Declaration{{Type: "int", Name: "x", Value: "5", HasValue: true}}}},
		},
		{
			name: "multiple",
			line: "int a, b = 2, c;",
			want: []Statement{{Type: "int", Decls: []Declaration{
				{Type: "int", Name: "a"},
				{Type: "int", Name: "b", Value: "2", HasValue: true},
				{Type: "int", Name: "c"},
			}}},
		},
		{
			name: "for init",
			line: "for (int i = 0; i < 10; i++) {",
			want: []Statement{{Type: "int", Decls: []Declaration{{Type: "int", Name: "i", Value: "0", HasValue: true}}}},
		},
		{
			name: "malformed",
			line: "float ;",
			want: []Statement{{Type: "float", Malformed: true}},
		},
		{
			name: "two statements",
			line: "int i = 0; double j;",
			want: []Statement{
				{Type: "int", Decls: []Declaration{{Type: "int", Name: "i", Value: "0", HasValue: true}}},
				{Type: "double", Decls: []Declaration{{Type: "double", Name: "j"}}},
			},
		},
		{
			name: "array",
			line: "int arr[10];",
			want: []Statement{{Type: "int", Decls: []Declaration{{Type: "int", Name: "arr"}}}},
		},
		{
			name: "call in initializer",
			line: "int m = max(a, b);",
			want: []Statement{{Type: "int", Decls: []Declaration{{Type: "int", Name: "m", Value: "max(a, b)", HasValue: true}}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			be.Equal(t, ParseDeclarations(tt.line), tt.want)
		})
	}
}

func TestParseDeclarationsIgnores(t *testing.T) {
	for _, line := range []string{
		"int f(int a);",
		"x = 5;",
		"int x = 5",
		"return 0;",
		"if (x) {",
	} {
		t.Run(line, func(t *testing.T) {
			be.Equal(t, len(ParseDeclarations(line)), 0)
		})
	}
}

func TestDeclarationsFindings(t *testing.T) {
	tests := []struct {
		line string
		want []string
	}{
		{"int;", []string{"Line 2: Error - Declaration of 'int' without variable name."}},
		{"int 1x;", []string{"Line 2: Variable name '1x' must begin with a letter or underscore."}},
		{"int for;", []string{"Line 2: Cannot use reserved keyword 'for' as variable name."}},
		{"int my-var;", []string{"Line 2: Variable name 'my-var' contains invalid characters. Only letters, digits, and underscores are allowed."}},
		{`int x = "abc";`, []string{"Line 2: Invalid initialization value for variable 'x' of type int."}},
		{"int a = 1, b = 2.5;", []string{"Line 2: Invalid initialization value for variable 'b' of type int."}},
		{"int x = ;", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			r := &Declarations{}
			be.Equal(t, render(r.Check(tt.line, 2, newScope())), tt.want)
		})
	}
}

func TestDeclarationsRegister(t *testing.T) {
	scope := newScope()
	r := &Declarations{}
	r.Check("int a, b = 2, c;", 4, scope)

	be.Equal(t, scope.Len(), 3)
	be.Equal(t, *scope.Lookup("a"), symtab.VariableInfo{Name: "a", Type: "int", Line: 4})
	be.Equal(t, *scope.Lookup("b"), symtab.VariableInfo{Name: "b", Type: "int", Initialized: true, Line: 4})
	be.Equal(t, scope.Lookup("c").Initialized, false)
}

func TestDeclarationsSelfReference(t *testing.T) {
	got := render((&Declarations{}).Check("int x = x;", 1, newScope()))
	be.Equal(t, got, []string{"Line 1: Invalid initialization value for variable 'x' of type int."})
}

func TestDeclarationsRedeclaration(t *testing.T) {
	quiet := &Declarations{}
	scope := newScope()
	quiet.Check("int x = 1;", 1, scope)
	be.Equal(t, len(quiet.Check("int x;", 2, scope)), 0)
	be.Equal(t, scope.Lookup("x").Initialized, true)

	loud := &Declarations{ReportRedeclarations: true}
	got := render(loud.Check("double x;", 3, scope))
	be.Equal(t, got, []string{"Line 3: Variable 'x' is already declared."})
	be.Equal(t, scope.Lookup("x").Type, "int")
}

func TestDeclarationsUsesInitializedVariables(t *testing.T) {
	scope := newScope(
		symtab.VariableInfo{Name: "n", Type: "int", Initialized: true},
		symtab.VariableInfo{Name: "u", Type: "int"},
	)
	r := &Declarations{}
	be.Equal(t, len(r.Check("double d = n;", 5, scope)), 0)
	be.Equal(t, render(r.Check("int k = u;", 6, scope)), []string{"Line 6: Invalid initialization value for variable 'k' of type int."})
}
