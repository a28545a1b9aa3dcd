// Package analyzer runs one complete check of a source text: comment
// stripping, tokenizing, the per-line rules and the structural checks on
// main.
package analyzer

import (
	"strings"

	"syntaxcheck/internal/comments"
	"syntaxcheck/internal/diag"
	"syntaxcheck/internal/lexer"
	"syntaxcheck/internal/rules"
	"syntaxcheck/internal/symtab"
)

// Options tunes an analysis run.
type Options struct {
	// RequireMain reports a program without any main function.
	RequireMain bool
	// ReportRedeclarations warns when a name is declared twice in one scope.
	ReportRedeclarations bool
}

// Result holds everything one run produced.
type Result struct {
	Tokens []lexer.Token
	// Globals holds names declared outside main.
	Globals *symtab.Scope
	// Main holds names declared in main's body. It is nil when main has no
	// well-formed body.
	Main        *symtab.Scope
	Diagnostics []diag.Diagnostic
	// Aborted is set when an unterminated block comment stopped the run.
	Aborted bool
}

// Symbols returns the symbol table entries, globals first.
func (r *Result) Symbols() []*symtab.VariableInfo {
	if r.Main == nil {
		return r.Globals.Variables()
	}
	syms := make([]*symtab.VariableInfo, 0, r.Globals.Len()+r.Main.Len())
	syms = append(syms, r.Globals.Variables()...)
	return append(syms, r.Main.Variables()...)
}

// HasErrors reports whether any Error diagnostic was produced.
func (r *Result) HasErrors() bool {
	return diag.Count(r.Diagnostics, diag.Error) > 0
}

// Analyzer checks source texts. It keeps no state between runs and is safe
// for concurrent use.
type Analyzer struct {
	opts Options
}

// NewAnalyzer creates a new analyzer
func NewAnalyzer(opts Options) *Analyzer {
	return &Analyzer{opts: opts}
}

// Analyze performs one full run over src.
func (a *Analyzer) Analyze(src string) *Result {
	s := newSession(a.opts)
	return s.run(src)
}

// session is the state of a single run.
type session struct {
	opts    Options
	globals *symtab.Scope
	diags   diag.List
}

func newSession(opts Options) *session {
	return &session{
		opts:    opts,
		globals: symtab.NewScope("global", nil),
	}
}

func (s *session) run(src string) *Result {
	res := &Result{Globals: s.globals}

	stripped, err := comments.Strip(src)
	if err != nil {
		res.Diagnostics = stripped.Diagnostics
		res.Aborted = true
		return res
	}
	s.diags.Add(stripped.Diagnostics...)
	text := stripped.Text

	res.Tokens = lexer.Tokenize(text)

	ruleOpts := rules.Options{ReportRedeclarations: s.opts.ReportRedeclarations}
	structural, body := checkMain(text, s.opts.RequireMain)

	// Rule 1: every line outside main's body goes through the top-level rules
	top := rules.TopLevel(ruleOpts)
	for i, line := range strings.Split(outsideBody(text, body), "\n") {
		s.diags.Add(top.Run(strings.TrimSpace(line), i+1, s.globals)...)
	}

	// Rule 2: structural findings about main
	s.diags.Add(structural...)

	// Rule 3: main's body gets its own scope and the main-only rules
	if body != nil {
		res.Main = symtab.NewScope("main", s.globals)
		mainRules := rules.MainBody(ruleOpts)
		first := 1 + strings.Count(text[:body.start], "\n")
		for i, line := range strings.Split(text[body.start:body.end], "\n") {
			s.diags.Add(mainRules.Run(strings.TrimSpace(line), first+i, res.Main)...)
		}
	}

	// Rule 4: declared but never initialized
	for _, v := range s.globals.Uninitialized() {
		d := diag.Program(diag.Warning, "Variable '%s' is declared but never initialized.", v.Name)
		d.Line = v.Line
		s.diags.Add(d)
	}
	if res.Main != nil {
		for _, v := range res.Main.Uninitialized() {
			d := diag.Warnf(v.Line, "Variable '%s' is declared but never initialized.", v.Name)
			d.Origin = diag.OriginMainFunction
			s.diags.Add(d)
		}
	}

	res.Diagnostics = s.diags.Items()
	return res
}

// outsideBody blanks main's body, keeping its newlines so line numbers hold.
func outsideBody(text string, body *span) string {
	if body == nil {
		return text
	}
	inner := text[body.start:body.end]
	blank := strings.Repeat("\n", strings.Count(inner, "\n"))
	return text[:body.start] + blank + text[body.end:]
}

// Analyze is a convenience function to run a single analysis
func Analyze(src string, opts Options) *Result {
	return NewAnalyzer(opts).Analyze(src)
}
