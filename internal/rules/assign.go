package rules

import (
	"regexp"
	"strings"

	"syntaxcheck/internal/diag"
	"syntaxcheck/internal/symtab"
	"syntaxcheck/internal/types"
)

// assignStatement matches "name op value;". Longer operators come first.
var assignStatement = regexp.MustCompile(`^\s*([A-Za-z_][A-Za-z0-9_]*)\s*(<<=|>>=|\+=|-=|\*=|/=|%=|&=|\^=|\|=|=)\s*(.+);\s*$`)

type assignment struct {
	Name  string
	Op    string
	Value string
}

// parseAssignment recognizes an assignment statement. Comparisons such as
// "x == y;" are not assignments, but "x = = y;" is a malformed one.
func parseAssignment(stmt string) (assignment, bool) {
	idx := assignStatement.FindStringSubmatchIndex(MaskLiterals(stmt))
	if idx == nil {
		return assignment{}, false
	}
	a := assignment{
		Name:  stmt[idx[2]:idx[3]],
		Op:    stmt[idx[4]:idx[5]],
		Value: strings.TrimSpace(stmt[idx[6]:idx[7]]),
	}
	if IsReserved(a.Name) {
		return assignment{}, false
	}
	if a.Op == "=" && stmt[idx[5]] == '=' {
		return assignment{}, false
	}
	return a, true
}

// assignmentTargets returns the names assigned to on a line.
func assignmentTargets(line string) map[string]bool {
	targets := make(map[string]bool)
	for _, stmt := range SplitStatements(line) {
		if a, ok := parseAssignment(stmt); ok {
			targets[a.Name] = true
		}
	}
	return targets
}

// CheckAssignment validates assignments to existing variables and marks
// them initialized.
func CheckAssignment(line string, num int, scope *symtab.Scope) []diag.Diagnostic {
	var out []diag.Diagnostic
	for _, stmt := range SplitStatements(line) {
		a, ok := parseAssignment(stmt)
		if !ok {
			continue
		}

		info := scope.Lookup(a.Name)
		if info == nil {
			out = append(out, diag.Errorf(num, "Variable '%s' used before declaration.", a.Name))
			continue
		}

		if a.Op != "=" && !info.Initialized {
			out = append(out, diag.Errorf(num, "Variable '%s' used in %s before initialization.", a.Name, a.Op))
		}
		if !strings.HasPrefix(a.Value, "=") && hasNestedAssignment(a.Value) {
			out = append(out, diag.Warnf(num, "Complex nested assignment detected. This may lead to confusion: %s", a.Value))
		}
		if a.Value != "" && !types.IsValidValue(info.Type, a.Value, scope) {
			out = append(out, diag.Errorf(num, "Invalid value for variable of type %s.", info.Type))
		}
		scope.MarkInitialized(a.Name)
	}
	return out
}

// hasNestedAssignment reports whether value contains an assignment operator
// outside literals. Comparisons do not count.
func hasNestedAssignment(value string) bool {
	v := MaskLiterals(value)
	for i := 0; i < len(v); i++ {
		if v[i] != '=' {
			continue
		}
		if i+1 < len(v) && v[i+1] == '=' {
			i++
			continue
		}
		if i > 0 && strings.IndexByte("=!<>", v[i-1]) >= 0 && !isShiftAssign(v, i) {
			continue
		}
		return true
	}
	return false
}

// isShiftAssign reports whether the '=' at i ends "<<=" or ">>=".
func isShiftAssign(v string, i int) bool {
	return i >= 2 && (v[i-2:i] == "<<" || v[i-2:i] == ">>")
}
