package rules

import (
	"regexp"

	"syntaxcheck/internal/diag"
	"syntaxcheck/internal/symtab"
)

var (
	typeLeadingLine = regexp.MustCompile(`^\s*(?:int|float|double|char|bool|long|short|unsigned|signed|string|void|auto|size_t|const|static)\b`)
	conditionLine   = regexp.MustCompile(`^\s*(?:if|else)\b`)
)

// CheckUndeclared flags identifiers that are neither declared nor reserved.
// Lines that start with a type or an if/else header are left to the rules
// that understand them, as are the targets of assignments.
func CheckUndeclared(line string, num int, scope *symtab.Scope) []diag.Diagnostic {
	trimmed, _ := trimLeadingBraces(line)
	if typeLeadingLine.MatchString(trimmed) || conditionLine.MatchString(trimmed) || isPreprocessor(trimmed) {
		return nil
	}

	skip := DeclaredNames(line)
	for name := range assignmentTargets(line) {
		skip[name] = true
	}

	var out []diag.Diagnostic
	seen := make(map[string]bool)
	text := maskMembers(MaskLiterals(line))
	for _, ident := range identPattern.FindAllString(text, -1) {
		if seen[ident] || skip[ident] || IsReserved(ident) || libraryNames[ident] {
			continue
		}
		seen[ident] = true
		if scope.Lookup(ident) == nil {
			out = append(out, diag.Errorf(num, "Identifier '%s' used without declaration.", ident))
		}
	}
	return out
}

func isPreprocessor(line string) bool {
	return len(line) > 0 && line[0] == '#'
}
