package rules

import (
	"regexp"
	"slices"
	"strings"
)

// reserved are the words that can never name a variable.
var reserved = []string{
	"bool", "break", "case", "catch", "char", "class", "const", "continue",
	"do", "double", "else", "enum", "false", "float", "for", "if", "int",
	"long", "namespace", "return", "short", "static", "string", "struct",
	"switch", "throw", "true", "try", "unsigned", "using", "void", "while",
}

// IsReserved reports whether word is a reserved keyword.
func IsReserved(word string) bool {
	_, ok := slices.BinarySearch(reserved, word)
	return ok
}

// libraryNames are identifiers from the standard library headers that the
// checker accepts without a declaration.
var libraryNames = map[string]bool{
	"main": true, "std": true, "cout": true, "cin": true, "cerr": true,
	"endl": true, "printf": true, "scanf": true, "NULL": true, "nullptr": true,
}

var (
	identPattern = regexp.MustCompile(`\b[A-Za-z_][A-Za-z0-9_]*\b`)
	validName    = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
	memberAccess = regexp.MustCompile(`(?:\.|->)\s*[A-Za-z_][A-Za-z0-9_]*`)
)

// MaskLiterals blanks the contents of string and char literals with spaces
// and keeps the quotes, so column positions are preserved.
func MaskLiterals(line string) string {
	b := []byte(line)
	var quote byte
	for i := 0; i < len(b); i++ {
		c := b[i]
		switch {
		case quote == 0:
			if c == '"' || c == '\'' {
				quote = c
			}
		case c == '\\' && i+1 < len(b):
			b[i] = ' '
			i++
			b[i] = ' '
		case c == quote:
			quote = 0
		default:
			b[i] = ' '
		}
	}
	return string(b)
}

// maskMembers blanks member names that follow '.' or '->'.
func maskMembers(line string) string {
	return memberAccess.ReplaceAllStringFunc(line, func(m string) string {
		return strings.Repeat(" ", len(m))
	})
}

// SplitStatements splits line on ';' outside parentheses and literals.
// Every piece but possibly the last keeps its terminating ';'.
func SplitStatements(line string) []string {
	masked := MaskLiterals(line)
	var out []string
	depth, start := 0, 0
	for i := 0; i < len(masked); i++ {
		switch masked[i] {
		case '(':
			depth++
		case ')':
			if depth > 0 {
				depth--
			}
		case ';':
			if depth == 0 {
				out = append(out, line[start:i+1])
				start = i + 1
			}
		}
	}
	if rest := line[start:]; !isBlank(rest) {
		out = append(out, rest)
	}
	return out
}

// splitTopLevel splits s on sep outside parentheses and literals.
func splitTopLevel(s string, sep byte) []string {
	masked := MaskLiterals(s)
	var out []string
	depth, start := 0, 0
	for i := 0; i < len(masked); i++ {
		switch masked[i] {
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			if depth > 0 {
				depth--
			}
		case sep:
			if depth == 0 {
				out = append(out, s[start:i])
				start = i + 1
			}
		}
	}
	return append(out, s[start:])
}

// trimLeadingBraces drops closing braces that start a line ("} else {")
// and returns how many were dropped.
func trimLeadingBraces(line string) (string, int) {
	rest := strings.TrimLeft(line, "} \t")
	return rest, strings.Count(line[:len(line)-len(rest)], "}")
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func isWordByte(c byte) bool {
	return c == '_' || c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}
