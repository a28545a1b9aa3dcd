package rules

import (
	"regexp"
	"strings"

	"syntaxcheck/internal/diag"
	"syntaxcheck/internal/symtab"
)

var (
	elseLine = regexp.MustCompile(`^else\b`)
	ifHeader = regexp.MustCompile(`^(?:else\s+)?if\s*\(`)
)

// ElseTracker flags an 'else' that does not follow an if statement. It keeps
// state across the lines of one run: an else is expected right after a
// single-statement if body or after the brace that closes an if block.
type ElseTracker struct {
	// Origin selects how findings are rendered.
	Origin diag.Origin

	expecting bool
	armNext   bool
	depth     int
	ifDepths  []int
}

// Check implements Rule.
func (t *ElseTracker) Check(line string, num int, _ *symtab.Scope) []diag.Diagnostic {
	if !t.step(line) {
		return nil
	}
	d := diag.Errorf(num, "Error - 'else' without matching 'if'.")
	d.Origin = t.Origin
	return []diag.Diagnostic{d}
}

// Track implements Tracker. It follows the braces and if headers of a line
// whose findings were suppressed.
func (t *ElseTracker) Track(line string) {
	t.step(line)
}

// step advances the tracker over one line and reports whether the line is
// an else with no if to attach to.
func (t *ElseTracker) step(line string) bool {
	text := MaskLiterals(line)
	rest, closed := trimLeadingBraces(text)
	t.closeBlocks(closed)
	rest = strings.TrimSpace(rest)
	if rest == "" {
		return false
	}

	isElse := elseLine.MatchString(rest)
	unmatched := isElse && !t.expecting
	t.expecting = false

	bodyOfIf := t.armNext
	t.armNext = false
	opensBlock := strings.Contains(rest, "{")
	expectAfter := false

	switch {
	case ifHeader.MatchString(rest):
		switch {
		case opensBlock:
			t.ifDepths = append(t.ifDepths, t.depth)
		case strings.HasSuffix(rest, ";"):
			expectAfter = true
		default:
			t.armNext = true
		}
	case bodyOfIf && strings.HasPrefix(rest, "{"):
		t.ifDepths = append(t.ifDepths, t.depth)
	case bodyOfIf && !isElse:
		expectAfter = true
	}

	t.depth += strings.Count(rest, "{")
	t.closeBlocks(strings.Count(rest, "}"))
	if expectAfter {
		t.expecting = true
	}
	return unmatched
}

// closeBlocks applies n closing braces. Closing an if block makes an else
// legal on the next line.
func (t *ElseTracker) closeBlocks(n int) {
	t.depth = max(t.depth-n, 0)
	for len(t.ifDepths) > 0 && t.ifDepths[len(t.ifDepths)-1] >= t.depth {
		t.ifDepths = t.ifDepths[:len(t.ifDepths)-1]
		t.expecting = true
	}
}
