package rules

import (
	"regexp"
	"strings"

	"syntaxcheck/internal/diag"
	"syntaxcheck/internal/symtab"
	"syntaxcheck/internal/types"
)

var (
	tripleIncDec     = regexp.MustCompile(`\+\+\+|---`)
	mixedIncDec      = regexp.MustCompile(`\+\+--|--\+\+`)
	unaryMinusChain  = regexp.MustCompile(`=\s*-\s*-\s*-\s*-`)
	pointerMix       = regexp.MustCompile(`\*&|&\*`)
	doubledArith     = regexp.MustCompile(`\*\*|/\*|/\+|\+/|\+-|-\+`)
	postIncDec       = regexp.MustCompile(`([A-Za-z_][A-Za-z0-9_]*)\s*(?:\+\+|--)`)
	preIncDec        = regexp.MustCompile(`(?:\+\+|--)\s*([A-Za-z_][A-Za-z0-9_]*)`)
	incDecWithTarget = regexp.MustCompile(`^(?:\+\+|--)\s*[A-Za-z_]`)
	incDecAlone      = regexp.MustCompile(`(?:\+\+|--)\s*;`)
	forHeader        = regexp.MustCompile(`\bfor\s*\(`)
	danglingOperator = regexp.MustCompile(`[A-Za-z_][A-Za-z0-9_]*\s*([-+*/&|^%])\s*;`)
)

// CheckOperators flags suspicious operator sequences and validates the
// targets of increment and decrement operators.
func CheckOperators(line string, num int, scope *symtab.Scope) []diag.Diagnostic {
	text := MaskLiterals(line)
	var out []diag.Diagnostic

	if tripleIncDec.MatchString(text) {
		out = append(out, diag.Errorf(num, "Syntax error - invalid multiple increment/decrement operators."))
	}
	if mixedIncDec.MatchString(text) {
		out = append(out, diag.Warnf(num, "Confusing operator sequence detected (++-- or --++). This may lead to unexpected behavior."))
	}
	if unaryMinusChain.MatchString(text) {
		out = append(out, diag.Warnf(num, "Misleading sequence of unary minus operators. This could be parsed incorrectly."))
	}
	if pointerMix.MatchString(text) {
		out = append(out, diag.Warnf(num, "Potentially invalid operator combination (*& or &*)."))
	}
	if doubledArith.MatchString(text) {
		out = append(out, diag.Errorf(num, "Invalid or confusing consecutive arithmetic operators detected."))
	}

	out = append(out, checkIncDecTargets(text, num, scope)...)

	if m := danglingOperator.FindStringSubmatch(text); m != nil {
		out = append(out, diag.Errorf(num, "Incomplete expression with dangling operator '%s'.", m[1]))
	}
	return out
}

func checkIncDecTargets(text string, num int, scope *symtab.Scope) []diag.Diagnostic {
	var targets []string
	for _, m := range postIncDec.FindAllStringSubmatch(text, -1) {
		targets = append(targets, m[1])
	}
	for _, m := range preIncDec.FindAllStringSubmatch(text, -1) {
		targets = append(targets, m[1])
	}

	var out []diag.Diagnostic
	seen := make(map[string]bool)
	found := false
	for _, name := range targets {
		if IsReserved(name) {
			continue
		}
		found = true
		if seen[name] {
			continue
		}
		seen[name] = true

		info := scope.Lookup(name)
		if info == nil {
			out = append(out, diag.Errorf(num, "Variable '%s' used with increment/decrement operator before declaration.", name))
			continue
		}
		if !info.Initialized {
			out = append(out, diag.Errorf(num, "Variable '%s' used with increment/decrement operator before initialization.", name))
			scope.MarkInitialized(name)
		}
		if !types.IsNumeric(info.Type) {
			out = append(out, diag.Errorf(num, "Increment/decrement operator used on non-numeric type '%s'.", info.Type))
		}
	}

	if found || !strings.Contains(text, "++") && !strings.Contains(text, "--") || forHeader.MatchString(text) {
		return out
	}

	trimmed := strings.TrimSpace(text)
	switch {
	case strings.HasPrefix(trimmed, "++") || strings.HasPrefix(trimmed, "--"):
		if !incDecWithTarget.MatchString(trimmed) {
			out = append(out, diag.Errorf(num, "Increment/decrement operator missing a variable."))
		}
	case incDecAlone.MatchString(text):
		out = append(out, diag.Warnf(num, "Potentially invalid increment/decrement operation."))
	}
	return out
}
