package casefile

import (
	"testing"

	"github.com/nalgeon/be"
)

const fence = "```"

func TestExtract(t *testing.T) {
	markdown := `# Declarations

## Test: initialized
` + fence + `cpp
int x = 5;
` + fence + `
` + fence + `diagnostics
` + fence + `
` + fence + `symbols
x | int
` + fence + `

## Test: missing semicolon
` + fence + `options
require-main redeclarations
` + fence + `
` + fence + `cpp
int x = 5
` + fence + `
` + fence + `diagnostics
Line 1: Error - Missing semicolon.
` + fence

	cases, err := Extract(markdown)
	be.Err(t, err, nil)
	be.Equal(t, len(cases), 2)

	tc1 := cases[0]
	be.Equal(t, tc1.Name, "initialized")
	be.Equal(t, tc1.Input, "int x = 5;\n")
	be.Equal(t, len(tc1.Assertions), 2)
	be.Equal(t, tc1.Assertions[0].Type, AssertDiagnostics)
	be.Equal(t, tc1.Assertions[0].Content, "")
	be.Equal(t, tc1.Assertions[1].Type, AssertSymbols)
	be.Equal(t, tc1.Assertions[1].Content, "x | int\n")
	be.True(t, !tc1.HasOption("require-main"))

	tc2 := cases[1]
	be.Equal(t, tc2.Name, "missing semicolon")
	be.Equal(t, tc2.Options, []string{"require-main", "redeclarations"})
	be.True(t, tc2.HasOption("redeclarations"))
	be.Equal(t, tc2.Assertions[0].Content, "Line 1: Error - Missing semicolon.\n")
}

func TestExtractKeepsIndentation(t *testing.T) {
	markdown := `## Test: body
` + fence + `cpp
int main() {
    return 0;
}
` + fence + `
` + fence + `tokens
` + fence

	cases, err := Extract(markdown)
	be.Err(t, err, nil)
	be.Equal(t, cases[0].Input, "int main() {\n    return 0;\n}\n")
}

func TestExtractPlainBlocksAllowed(t *testing.T) {
	markdown := "Intro text.\n\n" + fence + "\nnot a case\n" + fence + "\n"
	cases, err := Extract(markdown)
	be.Err(t, err, nil)
	be.Equal(t, len(cases), 0)
}

func TestExtractErrors(t *testing.T) {
	tests := []struct {
		name     string
		markdown string
		want     string
	}{
		{
			name:     "fence outside case",
			markdown: fence + "cpp\nint x;\n" + fence + "\n",
			want:     "error walking markdown AST: line 2: cpp fence found outside of test case",
		},
		{
			name:     "unknown language",
			markdown: "## Test: a\n" + fence + "python\nx = 1\n" + fence + "\n",
			want:     "error walking markdown AST: line 3: unknown fence language 'python' in test 'a'",
		},
		{
			name:     "two inputs",
			markdown: "## Test: a\n" + fence + "cpp\nint x;\n" + fence + "\n" + fence + "cpp\nint y;\n" + fence + "\n",
			want:     "error walking markdown AST: line 6: multiple input fences in test 'a'",
		},
		{
			name:     "no input",
			markdown: "## Test: a\n" + fence + "diagnostics\n" + fence + "\n",
			want:     "test 'a' has no cpp fence",
		},
		{
			name:     "no assertions",
			markdown: "## Test: a\n" + fence + "cpp\nint x;\n" + fence + "\n",
			want:     "test 'a' has no assertion fences",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Extract(tt.markdown)
			be.True(t, err != nil)
			be.Equal(t, err.Error(), tt.want)
		})
	}
}
