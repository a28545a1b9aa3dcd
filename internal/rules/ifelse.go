package rules

import (
	"regexp"
	"strings"

	"syntaxcheck/internal/diag"
	"syntaxcheck/internal/symtab"
)

var (
	ifCond         = regexp.MustCompile(`^if\s*\(.*\)`)
	ifSingleStmt   = regexp.MustCompile(`^if\s*\(.*\)\s*[^;{]+;\s*$`)
	elseIfCond     = regexp.MustCompile(`^else\s+if\s*\(.*\)`)
	elseIfSingle   = regexp.MustCompile(`^else\s+if\s*\(.*\)\s*[^;{]+;\s*$`)
	bareElse       = regexp.MustCompile(`^else\s*\{?\s*$`)
	singleLineElse = regexp.MustCompile(`^else\s+[^;{]+;\s*$`)
	ifNoParens     = regexp.MustCompile(`^if\s+[^(]`)
	objectAccess   = regexp.MustCompile(`\b([A-Za-z_][A-Za-z0-9_]*)\s*(?:\.|->)\s*[A-Za-z_]`)
)

// CheckIfElse validates if, else if and else headers: the condition must be
// present and use declared, initialized variables, and the body should be
// braced.
func CheckIfElse(line string, num int, scope *symtab.Scope) []diag.Diagnostic {
	text, _ := trimLeadingBraces(MaskLiterals(line))
	text = strings.TrimSpace(text)

	var out []diag.Diagnostic
	switch {
	case ifCond.MatchString(text):
		out = append(out, checkHeader(text, num, scope, ifSingleStmt, "if")...)
	case elseIfCond.MatchString(text):
		out = append(out, checkHeader(text, num, scope, elseIfSingle, "else-if")...)
	case bareElse.MatchString(text):
		if !strings.Contains(text, "{") {
			out = append(out, diag.Warnf(num, "Warning - Missing opening brace in else statement."))
		}
	case singleLineElse.MatchString(text):
		out = append(out, diag.Warnf(num, "Single-line else statement detected without braces."))
	case ifNoParens.MatchString(text):
		out = append(out, diag.Errorf(num, "Syntax error - 'if' missing parentheses."))
	}
	return out
}

func checkHeader(text string, num int, scope *symtab.Scope, single *regexp.Regexp, kind string) []diag.Diagnostic {
	condition := parenContent(text)
	out := CheckCondition(condition, num, scope)

	if strings.TrimSpace(condition) == "" {
		out = append(out, diag.Errorf(num, "Error - Empty condition in %s statement.", kind))
	}
	if !strings.Contains(text, "{") && !single.MatchString(text) {
		out = append(out, diag.Warnf(num, "Warning - Missing opening brace in %s statement.", kind))
	}
	return out
}

// CheckCondition checks every variable and object a condition reads.
// Function names and member names are not variables.
func CheckCondition(condition string, num int, scope *symtab.Scope) []diag.Diagnostic {
	text := MaskLiterals(condition)

	objects := make(map[string]bool)
	for _, m := range objectAccess.FindAllStringSubmatch(text, -1) {
		objects[m[1]] = true
	}

	var out []diag.Diagnostic
	seen := make(map[string]bool)
	masked := maskMembers(text)
	for _, loc := range identPattern.FindAllStringIndex(masked, -1) {
		name := masked[loc[0]:loc[1]]
		if seen[name] || IsReserved(name) || libraryNames[name] || isCall(text, loc[1]) {
			continue
		}
		seen[name] = true

		kind := "variable"
		if objects[name] {
			kind = "object"
		}
		info := scope.Lookup(name)
		switch {
		case info == nil:
			out = append(out, diag.Errorf(num, "Condition uses undeclared %s '%s'.", kind, name))
		case !info.Initialized:
			out = append(out, diag.Warnf(num, "Condition uses uninitialized %s '%s'.", kind, name))
		}
	}
	return out
}

// isCall reports whether the identifier ending at end is followed by '('.
func isCall(text string, end int) bool {
	rest := strings.TrimLeft(text[end:], " \t")
	return strings.HasPrefix(rest, "(")
}

// parenContent returns the text inside the first balanced pair of
// parentheses, or everything after an unbalanced '('.
func parenContent(text string) string {
	open := strings.IndexByte(text, '(')
	if open < 0 {
		return ""
	}
	depth := 0
	for i := open; i < len(text); i++ {
		switch text[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return text[open+1 : i]
			}
		}
	}
	return text[open+1:]
}
