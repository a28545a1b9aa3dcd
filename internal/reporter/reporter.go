package reporter

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"syntaxcheck/internal/analyzer"
	"syntaxcheck/internal/diag"
	"syntaxcheck/internal/lexer"
	"syntaxcheck/internal/symtab"
)

// SuccessMessage is printed for a run without any diagnostics.
const SuccessMessage = "Compilation successful. No syntax errors found."

// Options selects what a Reporter writes.
type Options struct {
	JSON    bool
	Tokens  bool // include the token report
	Symbols bool // include the symbol table report
	Color   bool
}

// FileReport pairs a source name with its analysis result.
type FileReport struct {
	Name   string
	Result *analyzer.Result
}

// Reporter formats and outputs analysis results
type Reporter struct {
	output io.Writer
	opts   Options
	styles styles
}

type styles struct {
	file    lipgloss.Style
	err     lipgloss.Style
	warn    lipgloss.Style
	ok      lipgloss.Style
	section lipgloss.Style
}

// newStyles binds styles to w. Colors are only emitted when w is a terminal
// and color is enabled.
func newStyles(w io.Writer, color bool) styles {
	if !color {
		w = io.Discard
	}
	r := lipgloss.NewRenderer(w)
	return styles{
		file:    r.NewStyle().Bold(true),
		err:     r.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		warn:    r.NewStyle().Foreground(lipgloss.Color("11")),
		ok:      r.NewStyle().Foreground(lipgloss.Color("10")),
		section: r.NewStyle().Underline(true),
	}
}

// NewReporter creates a new reporter
func NewReporter(output io.Writer, opts Options) *Reporter {
	return &Reporter{
		output: output,
		opts:   opts,
		styles: newStyles(output, opts.Color),
	}
}

// Report outputs the results of every file
func (r *Reporter) Report(files []FileReport) error {
	if r.opts.JSON {
		return r.reportJSON(files)
	}
	return r.reportConsole(files)
}

func (r *Reporter) reportConsole(files []FileReport) error {
	var all []diag.Diagnostic
	for _, f := range files {
		fmt.Fprintf(r.output, "\n%s\n", r.styles.file.Render(f.Name+":"))

		if r.opts.Tokens {
			fmt.Fprintf(r.output, "%s\n%s", r.styles.section.Render("Tokens"), TokenReport(f.Result.Tokens))
		}
		if r.opts.Symbols {
			fmt.Fprint(r.output, SymbolReport(f.Result.Symbols()))
		}

		ds := f.Result.Diagnostics
		all = append(all, ds...)
		if len(ds) == 0 {
			fmt.Fprintf(r.output, "  %s %s\n", r.styles.ok.Render("[OK]"), SuccessMessage)
			continue
		}
		for _, d := range ds {
			icon := r.styles.err.Render("[ERROR]")
			if d.Severity == diag.Warning {
				icon = r.styles.warn.Render("[WARN]") + " "
			}
			fmt.Fprintf(r.output, "  %s %s\n", icon, d)
		}
	}

	s := summarize(files, all)
	_, err := fmt.Fprintf(r.output, "\nSummary: %d file(s), %d error(s), %d warning(s)\n", s.Files, s.Errors, s.Warnings)
	return err
}

type jsonDiagnostic struct {
	diag.Diagnostic
	Text string `json:"text"`
}

type jsonFile struct {
	File        string                 `json:"file"`
	Aborted     bool                   `json:"aborted"`
	Diagnostics []jsonDiagnostic       `json:"diagnostics"`
	Tokens      []lexer.Token          `json:"tokens,omitempty"`
	Symbols     []*symtab.VariableInfo `json:"symbols,omitempty"`
}

func (r *Reporter) reportJSON(files []FileReport) error {
	output := struct {
		Files   []jsonFile `json:"files"`
		Summary Summary    `json:"summary"`
	}{
		Files: []jsonFile{},
	}

	var all []diag.Diagnostic
	for _, f := range files {
		jf := jsonFile{
			File:        f.Name,
			Aborted:     f.Result.Aborted,
			Diagnostics: []jsonDiagnostic{},
		}
		for _, d := range f.Result.Diagnostics {
			jf.Diagnostics = append(jf.Diagnostics, jsonDiagnostic{Diagnostic: d, Text: d.String()})
		}
		if r.opts.Tokens {
			jf.Tokens = f.Result.Tokens
		}
		if r.opts.Symbols {
			jf.Symbols = f.Result.Symbols()
		}
		all = append(all, f.Result.Diagnostics...)
		output.Files = append(output.Files, jf)
	}
	output.Summary = summarize(files, all)

	encoder := json.NewEncoder(r.output)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

// Summary holds aggregate information about the analysis
type Summary struct {
	Files       int `json:"files"`
	TotalIssues int `json:"total_issues"`
	Errors      int `json:"errors"`
	Warnings    int `json:"warnings"`
}

func summarize(files []FileReport, ds []diag.Diagnostic) Summary {
	return Summary{
		Files:       len(files),
		TotalIssues: len(ds),
		Errors:      diag.Count(ds, diag.Error),
		Warnings:    diag.Count(ds, diag.Warning),
	}
}

// TokenReport renders the token report: one "[CATEGORY]: lexeme (Line n)"
// line per token.
func TokenReport(tokens []lexer.Token) string {
	return lexer.Render(tokens)
}

// SymbolReport renders the fixed-width symbol table.
func SymbolReport(syms []*symtab.VariableInfo) string {
	var sb strings.Builder
	rule := strings.Repeat("-", 40) + "\n"
	sb.WriteString("SYMBOL TABLE:\n")
	sb.WriteString(rule)
	fmt.Fprintf(&sb, "%-15s | %-10s | %-10s\n", "IDENTIFIER", "TYPE", "INITIALIZED")
	sb.WriteString(rule)
	for _, v := range syms {
		initialized := "No"
		if v.Initialized {
			initialized = "Yes"
		}
		fmt.Fprintf(&sb, "%-15s | %-10s | %-10s\n", v.Name, v.Type, initialized)
	}
	return sb.String()
}

// DiagnosticReport renders diagnostics one per line in detection order.
func DiagnosticReport(ds []diag.Diagnostic) string {
	return diag.Render(ds)
}
