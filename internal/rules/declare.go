package rules

import (
	"regexp"
	"strings"

	"syntaxcheck/internal/diag"
	"syntaxcheck/internal/symtab"
	"syntaxcheck/internal/types"
)

// declTypes is ordered so that two-word types win over their prefixes.
const declTypes = `long long|unsigned int|int|float|double|char|bool|long|short|string`

var (
	declStatement  = regexp.MustCompile(`^\s*(` + declTypes + `)\s+([^;]+);\s*$`)
	malformedDecl  = regexp.MustCompile(`^\s*(` + declTypes + `)\s*;\s*$`)
	forInitDecl    = regexp.MustCompile(`^\s*for\s*\(\s*(` + declTypes + `)\s+([^;]+);`)
	arraySuffix    = regexp.MustCompile(`^([A-Za-z_][A-Za-z0-9_]*)\s*\[[^\]]*\]$`)
	startsWithWord = regexp.MustCompile(`^[A-Za-z_]`)
)

// Declaration is one declared name and its optional initializer.
type Declaration struct {
	Type     string
	Name     string
	Value    string
	HasValue bool
}

// Statement is a declaration statement found on a line.
type Statement struct {
	Type  string
	Decls []Declaration
	// Malformed is set for a type followed directly by ';'.
	Malformed bool
}

// ParseDeclarations recognizes the declaration statements on a line: single
// ("int x = 1;"), multiple ("int a, b = 2;") and the init clause of a for
// header ("for (int i = 0; ...").
func ParseDeclarations(line string) []Statement {
	if m := submatches(forInitDecl, line); m != nil {
		return []Statement{parseDeclarators(m[1], m[2])}
	}

	var out []Statement
	for _, stmt := range SplitStatements(line) {
		if m := submatches(malformedDecl, stmt); m != nil {
			out = append(out, Statement{Type: m[1], Malformed: true})
			continue
		}
		m := submatches(declStatement, stmt)
		if m == nil || strings.Contains(m[2], "(") && !strings.Contains(m[2], "=") {
			// Function prototypes are not variables.
			continue
		}
		out = append(out, parseDeclarators(m[1], m[2]))
	}
	return out
}

// submatches matches re against s with literals masked and returns the
// groups cut from the unmasked text.
func submatches(re *regexp.Regexp, s string) []string {
	idx := re.FindStringSubmatchIndex(MaskLiterals(s))
	if idx == nil {
		return nil
	}
	groups := make([]string, len(idx)/2)
	for i := range groups {
		if idx[2*i] >= 0 {
			groups[i] = s[idx[2*i]:idx[2*i+1]]
		}
	}
	return groups
}

func parseDeclarators(typ, list string) Statement {
	st := Statement{Type: typ}
	for _, part := range splitTopLevel(list, ',') {
		d := Declaration{Type: typ}
		name, value, ok := strings.Cut(part, "=")
		d.Name = strings.TrimSpace(name)
		if m := arraySuffix.FindStringSubmatch(d.Name); m != nil {
			d.Name = m[1]
		}
		if ok {
			d.Value = strings.TrimSpace(value)
			d.HasValue = true
		}
		st.Decls = append(st.Decls, d)
	}
	return st
}

// DeclaredNames returns every name the line declares.
func DeclaredNames(line string) map[string]bool {
	names := make(map[string]bool)
	for _, st := range ParseDeclarations(line) {
		for _, d := range st.Decls {
			names[d.Name] = true
		}
	}
	return names
}

// ValidateName returns the finding for an unusable variable name, if any.
func ValidateName(name string, num int) (diag.Diagnostic, bool) {
	switch {
	case IsReserved(name):
		return diag.Errorf(num, "Cannot use reserved keyword '%s' as variable name.", name), false
	case !startsWithWord.MatchString(name):
		return diag.Errorf(num, "Variable name '%s' must begin with a letter or underscore.", name), false
	case !validName.MatchString(name):
		return diag.Errorf(num, "Variable name '%s' contains invalid characters. Only letters, digits, and underscores are allowed.", name), false
	}
	return diag.Diagnostic{}, true
}

// Declarations registers declared names in the scope and validates their
// initializers.
type Declarations struct {
	ReportRedeclarations bool
}

// Check implements Rule.
func (r *Declarations) Check(line string, num int, scope *symtab.Scope) []diag.Diagnostic {
	var out []diag.Diagnostic
	for _, st := range ParseDeclarations(line) {
		if st.Malformed {
			out = append(out, diag.Errorf(num, "Error - Declaration of '%s' without variable name.", st.Type))
			continue
		}
		for _, d := range st.Decls {
			if f, ok := ValidateName(d.Name, num); !ok {
				out = append(out, f)
				continue
			}

			if scope.LookupLocal(d.Name) != nil {
				if r.ReportRedeclarations {
					out = append(out, diag.Warnf(num, "Variable '%s' is already declared.", d.Name))
				}
				continue
			}

			// Values are checked before the name is visible, so "int x = x;" is invalid.
			if d.HasValue && d.Value != "" && !types.IsValidValue(d.Type, d.Value, scope) {
				out = append(out, diag.Errorf(num, "Invalid initialization value for variable '%s' of type %s.", d.Name, d.Type))
			}
			scope.Declare(d.Name, d.Type, d.HasValue, num)
		}
	}
	return out
}
