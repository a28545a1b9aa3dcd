package rules

import (
	"regexp"
	"sort"

	"syntaxcheck/internal/diag"
	"syntaxcheck/internal/symtab"
)

// keywordCase matches every reserved word regardless of case.
var keywordCase = buildKeywordCase()

func buildKeywordCase() map[string]*regexp.Regexp {
	m := make(map[string]*regexp.Regexp, len(reserved))
	for _, kw := range reserved {
		m[kw] = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(kw) + `\b`)
	}
	return m
}

// CheckKeywordCase flags reserved words written with the wrong case, such as
// "Int" or "IF". Findings are reported in column order.
func CheckKeywordCase(line string, num int, _ *symtab.Scope) []diag.Diagnostic {
	type hit struct {
		pos       int
		got, want string
	}

	text := MaskLiterals(line)
	var hits []hit
	for _, kw := range reserved {
		for _, loc := range keywordCase[kw].FindAllStringIndex(text, -1) {
			if got := text[loc[0]:loc[1]]; got != kw {
				hits = append(hits, hit{pos: loc[0], got: got, want: kw})
			}
		}
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].pos < hits[j].pos })

	out := make([]diag.Diagnostic, 0, len(hits))
	for _, h := range hits {
		out = append(out, diag.Errorf(num, "Incorrect keyword format -> '%s' should be '%s'", h.got, h.want))
	}
	return out
}
