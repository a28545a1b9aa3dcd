package analyzer

import (
	"regexp"
	"strings"

	"syntaxcheck/internal/diag"
	"syntaxcheck/internal/rules"
)

var (
	mainHeader    = regexp.MustCompile(`\b(?:int|void)\s+main\s*\([^)]*\)`)
	malformedMain = regexp.MustCompile(`\bmain\s*\)\s*\(|\bmain\s*[^(]*\(|\bmain\s*\([^)]*[^)]$`)
	mainWord      = regexp.MustCompile(`\bmain\b`)
)

// span is a byte range of the source text.
type span struct {
	start, end int
}

// checkMain validates the main function of text. It returns the structural
// findings and, when main has a complete body, the span between its braces.
func checkMain(text string, requireMain bool) ([]diag.Diagnostic, *span) {
	masked := maskLines(text)

	headers := mainHeader.FindAllStringIndex(masked, -1)
	switch {
	case len(headers) > 1:
		return []diag.Diagnostic{
			diag.Program(diag.Error, "Multiple main functions detected. A C++ program can have only one main function."),
		}, nil
	case len(headers) == 0:
		return missingMain(masked, requireMain), nil
	}

	open := headers[0][1]
	for open < len(masked) && isSpace(masked[open]) {
		open++
	}
	if open == len(masked) || masked[open] != '{' {
		return []diag.Diagnostic{diag.Program(diag.Error, "Missing opening brace '{' for main function.")}, nil
	}

	depth := 1
	for i := open + 1; i < len(masked); i++ {
		switch masked[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return nil, &span{start: open + 1, end: i}
			}
		}
	}
	return []diag.Diagnostic{diag.Program(diag.Error, "Missing closing brace '}' for main function.")}, nil
}

func missingMain(masked string, requireMain bool) []diag.Diagnostic {
	switch {
	case malformedMain.MatchString(masked):
		return []diag.Diagnostic{diag.Program(diag.Error, "Invalid main function syntax. Correct syntax is: int main() or int main(int argc, char* argv[])")}
	case mainWord.MatchString(masked):
		return []diag.Diagnostic{diag.Program(diag.Error, "'main' keyword found but not properly declared as a function. Use: int main() { ... }")}
	case requireMain:
		return []diag.Diagnostic{diag.Program(diag.Error, "No main() function found.")}
	}
	return nil
}

// maskLines blanks literal contents line by line so braces and the word
// main inside strings are ignored. Offsets are unchanged.
func maskLines(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = rules.MaskLiterals(line)
	}
	return strings.Join(lines, "\n")
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}
