// Package rules holds the per-line heuristics of the checker. Each rule looks
// at one trimmed, comment-free source line together with the scope it is
// declared in and returns what it found.
package rules

import (
	"syntaxcheck/internal/diag"
	"syntaxcheck/internal/symtab"
)

// Rule checks a single source line.
type Rule interface {
	Check(line string, num int, scope *symtab.Scope) []diag.Diagnostic
}

// RuleFunc adapts a plain function to the Rule interface.
type RuleFunc func(line string, num int, scope *symtab.Scope) []diag.Diagnostic

// Check calls f.
func (f RuleFunc) Check(line string, num int, scope *symtab.Scope) []diag.Diagnostic {
	return f(line, num, scope)
}

// Tracker is a stateful rule that must see every line, including lines a
// halting stage suppressed.
type Tracker interface {
	Track(line string)
}

// Stage is a named rule in a pipeline. When HaltOnFinding is set and the
// rule reports anything, the remaining stages skip that line.
type Stage struct {
	Name          string
	Rule          Rule
	HaltOnFinding bool
}

// Pipeline runs stages in order over each line it is given. Later stages
// see the scope updates made by earlier ones.
type Pipeline struct {
	stages []Stage
}

// NewPipeline creates a pipeline from ordered stages.
func NewPipeline(stages ...Stage) *Pipeline {
	return &Pipeline{stages: stages}
}

// Run checks one line. Blank lines are skipped. Stages after a halt only
// get to update their state.
func (p *Pipeline) Run(line string, num int, scope *symtab.Scope) []diag.Diagnostic {
	if isBlank(line) {
		return nil
	}

	var out []diag.Diagnostic
	halted := false
	for _, s := range p.stages {
		if halted {
			if tr, ok := s.Rule.(Tracker); ok {
				tr.Track(line)
			}
			continue
		}
		found := s.Rule.Check(line, num, scope)
		out = append(out, found...)
		halted = s.HaltOnFinding && len(found) > 0
	}
	return out
}

// Options tunes which optional findings the pipelines report.
type Options struct {
	// ReportRedeclarations warns when a name is declared twice in one scope.
	ReportRedeclarations bool
}

// TopLevel builds the pipeline applied to lines outside the body of main.
func TopLevel(opts Options) *Pipeline {
	return NewPipeline(common(opts, diag.OriginLine)...)
}

// MainBody builds the pipeline applied to the lines of main's body. It adds
// the operator, stray character and if/else structure checks.
func MainBody(opts Options) *Pipeline {
	stages := common(opts, diag.OriginMainLine)
	stages = append(stages,
		Stage{Name: "operators", Rule: RuleFunc(CheckOperators)},
		Stage{Name: "syntax", Rule: RuleFunc(CheckStrayCharacters)},
		Stage{Name: "if-else", Rule: RuleFunc(CheckIfElse)},
	)
	return NewPipeline(stages...)
}

func common(opts Options, elseOrigin diag.Origin) []Stage {
	return []Stage{
		{Name: "multiple-types", Rule: RuleFunc(CheckMultipleTypes), HaltOnFinding: true},
		{Name: "string-arithmetic", Rule: RuleFunc(CheckStringArithmetic)},
		{Name: "dangling-else", Rule: &ElseTracker{Origin: elseOrigin}},
		{Name: "keyword-case", Rule: RuleFunc(CheckKeywordCase)},
		{Name: "semicolon", Rule: RuleFunc(CheckSemicolon)},
		{Name: "empty-init", Rule: RuleFunc(CheckEmptyInit)},
		{Name: "undeclared", Rule: RuleFunc(CheckUndeclared)},
		{Name: "declarations", Rule: &Declarations{ReportRedeclarations: opts.ReportRedeclarations}},
		{Name: "assignment", Rule: RuleFunc(CheckAssignment)},
	}
}
