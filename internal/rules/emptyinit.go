package rules

import (
	"regexp"

	"syntaxcheck/internal/diag"
	"syntaxcheck/internal/symtab"
)

var emptyInit = regexp.MustCompile(`=\s*;`)

// CheckEmptyInit flags "x = ;" where the right-hand side is missing.
func CheckEmptyInit(line string, num int, _ *symtab.Scope) []diag.Diagnostic {
	if !emptyInit.MatchString(MaskLiterals(line)) {
		return nil
	}
	return []diag.Diagnostic{diag.Errorf(num, "Syntax error - empty initialization or assignment (missing right-hand side).")}
}
