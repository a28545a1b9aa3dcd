package analyzer_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nalgeon/be"

	"syntaxcheck/internal/analyzer"
	"syntaxcheck/internal/casefile"
	"syntaxcheck/internal/diag"
	"syntaxcheck/internal/lexer"
	"syntaxcheck/internal/reporter"
)

// TestSuites runs every case of the Markdown suites under testdata.
func TestSuites(t *testing.T) {
	files, err := filepath.Glob(filepath.Join("testdata", "*.md"))
	be.Err(t, err, nil)
	be.True(t, len(files) > 0)

	for _, file := range files {
		data, err := os.ReadFile(file)
		be.Err(t, err, nil)

		cases, err := casefile.Extract(string(data))
		if err != nil {
			t.Fatalf("%s: %v", file, err)
		}

		suite := strings.TrimSuffix(filepath.Base(file), ".md")
		for _, tc := range cases {
			t.Run(suite+"/"+tc.Name, func(t *testing.T) {
				runCase(t, tc)
			})
		}
	}
}

func runCase(t *testing.T, tc casefile.TestCase) {
	opts := analyzer.Options{
		RequireMain:          tc.HasOption("require-main"),
		ReportRedeclarations: tc.HasOption("redeclarations"),
	}
	res := analyzer.Analyze(tc.Input, opts)

	for _, a := range tc.Assertions {
		var got string
		switch a.Type {
		case casefile.AssertDiagnostics:
			got = diag.Render(res.Diagnostics)
		case casefile.AssertTokens:
			got = lexer.Render(res.Tokens)
		case casefile.AssertSymbols:
			got = reporter.SymbolReport(res.Symbols())
		}
		if trimLines(got) != trimLines(a.Content) {
			t.Errorf("%s assertion at line %d\ngot:\n%s\nwant:\n%s", a.Type, a.Line, got, a.Content)
		}
	}
}

// trimLines drops trailing blanks of every line. The symbol table pads its
// last column.
func trimLines(s string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " \t")
	}
	return strings.Join(lines, "\n")
}
