package reporter

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/nalgeon/be"

	"syntaxcheck/internal/analyzer"
	"syntaxcheck/internal/diag"
	"syntaxcheck/internal/lexer"
	"syntaxcheck/internal/symtab"
)

func report(t *testing.T, opts Options, files ...FileReport) string {
	t.Helper()
	var buf bytes.Buffer
	err := NewReporter(&buf, opts).Report(files)
	be.Err(t, err, nil)
	return buf.String()
}

func analyze(name, src string) FileReport {
	return FileReport{Name: name, Result: analyzer.Analyze(src, analyzer.Options{})}
}

func TestReportConsoleClean(t *testing.T) {
	got := report(t, Options{}, analyze("ok.cpp", "int x = 5;\n"))
	want := "\nok.cpp:\n" +
		"  [OK] Compilation successful. No syntax errors found.\n" +
		"\nSummary: 1 file(s), 0 error(s), 0 warning(s)\n"
	be.Equal(t, got, want)
}

func TestReportConsoleDiagnostics(t *testing.T) {
	got := report(t, Options{},
		analyze("a.cpp", "int x = 5\n"),
		analyze("b.cpp", "int y;\n"),
	)
	want := "\na.cpp:\n" +
		"  [ERROR] Line 1: Error - Missing semicolon.\n" +
		"\nb.cpp:\n" +
		"  [WARN]  Warning: Variable 'y' is declared but never initialized.\n" +
		"\nSummary: 2 file(s), 1 error(s), 1 warning(s)\n"
	be.Equal(t, got, want)
}

func TestReportConsoleSections(t *testing.T) {
	got := report(t, Options{Tokens: true, Symbols: true}, analyze("s.cpp", "int x = 5;\n"))
	want := "\ns.cpp:\n" +
		"Tokens\n" +
		"[DECLARATION]: int (Line 1)\n" +
		"[IDENTIFIER]: x (Line 1)\n" +
		"[ASSIGNMENT_OPERATOR]: = (Line 1)\n" +
		"[NUMBER]: 5 (Line 1)\n" +
		"[SEPARATOR]: ; (Line 1)\n" +
		SymbolReport([]*symtab.VariableInfo{{Name: "x", Type: "int", Initialized: true}}) +
		"  [OK] Compilation successful. No syntax errors found.\n" +
		"\nSummary: 1 file(s), 0 error(s), 0 warning(s)\n"
	be.Equal(t, got, want)
}

func TestReportJSON(t *testing.T) {
	out := report(t, Options{JSON: true, Symbols: true},
		analyze("a.cpp", "int x;\ny = 5;\n"),
	)

	var doc struct {
		Files []struct {
			File        string `json:"file"`
			Aborted     bool   `json:"aborted"`
			Diagnostics []struct {
				Line     int    `json:"line"`
				Severity string `json:"severity"`
				Message  string `json:"message"`
				Text     string `json:"text"`
			} `json:"diagnostics"`
			Tokens  []lexer.Token         `json:"tokens"`
			Symbols []symtab.VariableInfo `json:"symbols"`
		} `json:"files"`
		Summary Summary `json:"summary"`
	}
	err := json.Unmarshal([]byte(out), &doc)
	be.Err(t, err, nil)

	be.Equal(t, len(doc.Files), 1)
	f := doc.Files[0]
	be.Equal(t, f.File, "a.cpp")
	be.Equal(t, f.Aborted, false)
	be.Equal(t, len(f.Tokens), 0)
	be.Equal(t, f.Symbols, []symtab.VariableInfo{{Name: "x", Type: "int", Line: 1}})

	be.Equal(t, len(f.Diagnostics), 2)
	be.Equal(t, f.Diagnostics[0].Severity, "error")
	be.Equal(t, f.Diagnostics[0].Line, 2)
	be.Equal(t, f.Diagnostics[0].Text, "Line 2: Variable 'y' used before declaration.")
	be.Equal(t, f.Diagnostics[1].Severity, "warning")
	be.Equal(t, f.Diagnostics[1].Line, 1)
	be.Equal(t, f.Diagnostics[1].Text, "Warning: Variable 'x' is declared but never initialized.")

	be.Equal(t, doc.Summary, Summary{Files: 1, TotalIssues: 2, Errors: 1, Warnings: 1})
}

func TestReportJSONEmpty(t *testing.T) {
	out := report(t, Options{JSON: true})
	be.Equal(t, out, "{\n  \"files\": [],\n  \"summary\": {\n    \"files\": 0,\n    \"total_issues\": 0,\n    \"errors\": 0,\n    \"warnings\": 0\n  }\n}\n")
}

func TestSymbolReport(t *testing.T) {
	got := SymbolReport([]*symtab.VariableInfo{
		{Name: "count", Type: "int", Initialized: true},
		{Name: "name", Type: "string"},
	})
	want := "SYMBOL TABLE:\n" +
		"----------------------------------------\n" +
		"IDENTIFIER      | TYPE       | INITIALIZED\n" +
		"----------------------------------------\n" +
		"count           | int        | Yes       \n" +
		"name            | string     | No        \n"
	be.Equal(t, got, want)
}

func TestDiagnosticReport(t *testing.T) {
	ds := []diag.Diagnostic{
		diag.Errorf(3, "Error - Missing semicolon."),
		diag.Program(diag.Error, "No main() function found."),
	}
	be.Equal(t, DiagnosticReport(ds), "Line 3: Error - Missing semicolon.\nError: No main() function found.\n")
	be.Equal(t, DiagnosticReport(nil), "")
}
