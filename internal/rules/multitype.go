package rules

import (
	"regexp"
	"strings"

	"syntaxcheck/internal/diag"
	"syntaxcheck/internal/symtab"
)

var typeWord = regexp.MustCompile(`\b(?:int|float|double|char|bool|long|short|unsigned|signed|string|void|auto|size_t)\b`)

// allowedPairs are the two-keyword types that are a single type.
var allowedPairs = map[[2]string]bool{
	{"long", "long"}:      true,
	{"unsigned", "int"}:   true,
	{"unsigned", "short"}: true,
	{"unsigned", "long"}:  true,
}

// CheckMultipleTypes flags a statement that mixes several type keywords, as
// in "int float x;". Keywords inside parentheses (parameters, casts, for
// headers) are ignored. A one-line body such as "void f() { int x; }" is not
// checked.
func CheckMultipleTypes(line string, num int, _ *symtab.Scope) []diag.Diagnostic {
	if isPreprocessor(line) || strings.Contains(line, "{") && strings.Contains(line, "}") {
		return nil
	}

	for _, stmt := range SplitStatements(line) {
		found := topLevelTypes(stmt)
		if len(found) < 2 {
			continue
		}
		if len(found) == 2 && allowedPairs[[2]string{found[0], found[1]}] {
			continue
		}
		return []diag.Diagnostic{
			diag.Errorf(num, "Error - Multiple data types in single declaration: %s", strings.Join(found, ", ")),
		}
	}
	return nil
}

// topLevelTypes returns the type keywords of stmt outside parentheses, in
// source order.
func topLevelTypes(stmt string) []string {
	masked := MaskLiterals(stmt)
	depthAt := make([]int, len(masked)+1)
	depth := 0
	for i := 0; i < len(masked); i++ {
		depthAt[i] = depth
		switch masked[i] {
		case '(':
			depth++
		case ')':
			if depth > 0 {
				depth--
			}
		}
	}

	var found []string
	for _, loc := range typeWord.FindAllStringIndex(masked, -1) {
		if depthAt[loc[0]] == 0 {
			found = append(found, masked[loc[0]:loc[1]])
		}
	}
	return found
}
