package rules

import (
	"regexp"

	"syntaxcheck/internal/diag"
	"syntaxcheck/internal/symtab"
	"syntaxcheck/internal/types"
)

var (
	binaryOperation = regexp.MustCompile(`\b([A-Za-z_][A-Za-z0-9_]*)\b\s*([-+*/])\s*(\b[A-Za-z_][A-Za-z0-9_]*\b|\d+(?:\.\d+)?)`)
	numericLiteral  = regexp.MustCompile(`^-?\d+(?:\.\d+)?$`)
)

// CheckStringArithmetic flags arithmetic between a string variable and a
// numeric literal or numeric variable.
func CheckStringArithmetic(line string, num int, scope *symtab.Scope) []diag.Diagnostic {
	var out []diag.Diagnostic
	for _, m := range binaryOperation.FindAllStringSubmatch(MaskLiterals(line), -1) {
		left, op, right := m[1], m[2], m[3]
		if isStringVar(left, scope) && isNumericOperand(right, scope) {
			out = append(out, diag.Errorf(num, "Error - Invalid arithmetic operation: string %s numeric value is not allowed.", op))
		}
		if isStringVar(right, scope) && isNumericOperand(left, scope) {
			out = append(out, diag.Errorf(num, "Error - Invalid arithmetic operation: numeric value %s string is not allowed.", op))
		}
	}
	return out
}

func isStringVar(name string, scope *symtab.Scope) bool {
	info := scope.Lookup(name)
	return info != nil && info.Type == "string"
}

func isNumericOperand(operand string, scope *symtab.Scope) bool {
	if numericLiteral.MatchString(operand) {
		return true
	}
	info := scope.Lookup(operand)
	return info != nil && types.IsNumeric(info.Type)
}
