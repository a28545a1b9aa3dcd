package rules

import (
	"regexp"
	"strings"

	"syntaxcheck/internal/diag"
	"syntaxcheck/internal/symtab"
)

// Role is a syntactic role a punctuation character may play.
type Role string

const (
	RoleOperator     Role = "operator"
	RoleConditional  Role = "conditional"
	RolePreprocessor Role = "preprocessor"
	RoleStringizing  Role = "stringizing"
	RoleReference    Role = "reference"
	RoleAddress      Role = "address"
	RolePointer      Role = "pointer"
	RoleGrouping     Role = "grouping"
	RoleAssignment   Role = "assignment"
	RoleComparison   Role = "comparison"
	RoleIncrement    Role = "increment"
	RoleNegative     Role = "negative"
	RoleLabel        Role = "label"
	RoleScope        Role = "scope"
	RoleTernary      Role = "ternary"
	RoleForeach      Role = "foreach"
	RoleStatementEnd Role = "statement_end"
	RoleBlock        Role = "block"
	RoleArray        Role = "array"
	RoleStream       Role = "stream"
	RoleSeparator    Role = "separator"
	RoleMember       Role = "member"
	RoleDecimal      Role = "decimal"
	RoleEscape       Role = "escape"
	RoleDestructor   Role = "destructor"
)

// CharRule describes where a punctuation character may appear.
type CharRule struct {
	Roles []Role
	// Operand requires the character to touch an operand, a space, a quote or
	// a backslash on at least one side.
	Operand bool
}

// CharTable maps punctuation to its valid contexts. A character listed with
// no roles is never valid outside literals.
var CharTable = map[byte]CharRule{
	'!':  {Roles: []Role{RoleOperator, RoleConditional}, Operand: true},
	'@':  {},
	'#':  {Roles: []Role{RolePreprocessor, RoleStringizing}, Operand: true},
	'$':  {},
	'`':  {},
	'%':  {Roles: []Role{RoleOperator}, Operand: true},
	'^':  {Roles: []Role{RoleOperator}, Operand: true},
	'&':  {Roles: []Role{RoleOperator, RoleReference, RoleAddress}, Operand: true},
	'*':  {Roles: []Role{RoleOperator, RolePointer}, Operand: true},
	'+':  {Roles: []Role{RoleOperator, RoleIncrement}, Operand: true},
	'-':  {Roles: []Role{RoleOperator, RoleIncrement, RoleNegative}, Operand: true},
	'|':  {Roles: []Role{RoleOperator}, Operand: true},
	'~':  {Roles: []Role{RoleOperator, RoleDestructor}, Operand: true},
	'[':  {Roles: []Role{RoleArray}, Operand: true},
	']':  {Roles: []Role{RoleArray}, Operand: true},
	'(':  {Roles: []Role{RoleGrouping}},
	')':  {Roles: []Role{RoleGrouping}},
	'=':  {Roles: []Role{RoleAssignment, RoleComparison}},
	':':  {Roles: []Role{RoleLabel, RoleScope, RoleTernary, RoleForeach}},
	';':  {Roles: []Role{RoleStatementEnd}},
	'{':  {Roles: []Role{RoleBlock}},
	'}':  {Roles: []Role{RoleBlock}},
	'<':  {Roles: []Role{RoleComparison, RoleStream}},
	'>':  {Roles: []Role{RoleComparison, RoleStream}},
	'?':  {Roles: []Role{RoleTernary}},
	',':  {Roles: []Role{RoleSeparator}},
	'.':  {Roles: []Role{RoleMember, RoleDecimal}},
	'/':  {Roles: []Role{RoleOperator}},
	'\\': {Roles: []Role{RoleEscape}},
}

var (
	rangeFor   = regexp.MustCompile(`\bfor\s*\(.*:.*\)`)
	labelLine  = regexp.MustCompile(`^\s*(?:[A-Za-z_][A-Za-z0-9_]*|case\b.*|default)\s*:\s*$`)
	defineLine = regexp.MustCompile(`^\s*#\s*define\b`)
)

// CheckStrayCharacters flags punctuation outside the contexts CharTable
// allows. Literal contents are ignored.
func CheckStrayCharacters(line string, num int, _ *symtab.Scope) []diag.Diagnostic {
	text := MaskLiterals(line)
	var out []diag.Diagnostic

	if strings.Contains(text, ":") && !colonAllowed(text) {
		out = append(out, diag.Errorf(num, "Unexpected colon detected. Check syntax."))
	}

	reported := make(map[byte]bool)
	for i := 0; i < len(text); i++ {
		c := text[i]
		if r, ok := CharTable[c]; ok && len(r.Roles) == 0 && !reported[c] {
			reported[c] = true
			out = append(out, diag.Errorf(num, "Unexpected '%c' symbol detected. This is not standard C++ syntax.", c))
		}
	}

	if c, ok := firstStray(text); ok {
		out = append(out, diag.Errorf(num, "Unexpected stray character '%c' detected. Check syntax.", c))
	}
	if seq, ok := firstInvalidRun(text); ok {
		out = append(out, diag.Errorf(num, "Invalid sequence of special characters '%s' detected. Check syntax.", seq))
	}

	preprocessor := isPreprocessor(strings.TrimSpace(text))
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '!':
			if i < len(text)-1 && !validBangContext(text, i) {
				out = append(out, diag.Errorf(num, "Unexpected '!' symbol in this context. Check syntax."))
			}
		case '#':
			if !preprocessor && i > 0 && !defineLine.MatchString(text) {
				out = append(out, diag.Errorf(num, "Unexpected '#' symbol outside preprocessor directive. Check syntax."))
			}
		}
	}
	return out
}

// colonAllowed accepts scope resolution, the ternary operator, range-for
// headers and labels.
func colonAllowed(text string) bool {
	if rangeFor.MatchString(text) || labelLine.MatchString(text) {
		return true
	}
	rest := strings.ReplaceAll(text, "::", "  ")
	if !strings.Contains(rest, ":") {
		return true
	}
	return strings.Contains(rest, "?") && strings.Index(rest, "?") < strings.Index(rest, ":")
}

// firstStray finds the first operand-bound character that touches neither
// an operand nor whitespace. '+' and '-' inside "++" or "--" are skipped, as
// is a '!' that starts a negation.
func firstStray(text string) (byte, bool) {
	for i := 0; i < len(text); i++ {
		c := text[i]
		if r, ok := CharTable[c]; !ok || !r.Operand {
			continue
		}
		if (c == '+' || c == '-') && (i > 0 && text[i-1] == c || i+1 < len(text) && text[i+1] == c) {
			continue
		}
		if c == '!' && i+1 < len(text) && validBangContext(text, i) {
			continue
		}
		if i > 0 && touchesOperand(text[i-1]) {
			continue
		}
		if i+1 < len(text) && touchesOperand(text[i+1]) {
			continue
		}
		return c, true
	}
	return 0, false
}

func touchesOperand(c byte) bool {
	return isWordByte(c) || c == ' ' || c == '\t' || c == '"' || c == '\'' || c == '\\'
}

const runChars = "#%^&*+-"
const runNeighbors = "=<>!&|+-"

// firstInvalidRun finds the first run of three or more identical characters
// from runChars that is not part of a longer operator.
func firstInvalidRun(text string) (string, bool) {
	for i := 0; i < len(text); {
		c := text[i]
		j := i
		for j < len(text) && text[j] == c {
			j++
		}
		if j-i >= 3 && strings.IndexByte(runChars, c) >= 0 {
			before := i == 0 || strings.IndexByte(runNeighbors, text[i-1]) < 0
			after := j == len(text) || strings.IndexByte(runNeighbors, text[j]) < 0
			if before && after {
				return text[i:j], true
			}
		}
		i = j
	}
	return "", false
}

func validBangContext(text string, i int) bool {
	next := text[i+1]
	return next == '=' || next == '(' || next == ' ' || isWordByte(next)
}
