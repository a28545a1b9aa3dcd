package rules

import (
	"regexp"
	"strings"

	"syntaxcheck/internal/diag"
	"syntaxcheck/internal/symtab"
)

var (
	functionHeader = regexp.MustCompile(`\b[A-Za-z_][A-Za-z0-9_]*\s*\(.*\)\s*(?:\{.*)?$`)
	blockHeader    = regexp.MustCompile(`^(?:if|else|while|for|do)\b`)
)

// CheckSemicolon flags statements that do not end with ';'. Preprocessor
// lines, block headers, function signatures and lines ending a brace are
// exempt.
func CheckSemicolon(line string, num int, _ *symtab.Scope) []diag.Diagnostic {
	text := strings.TrimSpace(MaskLiterals(line))
	switch {
	case text == "", isPreprocessor(text):
		return nil
	case strings.HasSuffix(text, "{"), strings.HasSuffix(text, "}"):
		return nil
	case blockHeader.MatchString(text):
		return nil
	case functionHeader.MatchString(text):
		return nil
	case strings.HasSuffix(text, ";"):
		return nil
	}
	return []diag.Diagnostic{diag.Errorf(num, "Error - Missing semicolon.")}
}
