// Package diag holds the diagnostic model shared by every analysis stage.
package diag

import (
	"fmt"
	"strings"
)

// Severity is how confident a rule is that the input is invalid.
type Severity int

const (
	Error Severity = iota
	Warning
)

func (s Severity) String() string {
	switch s {
	case Error:
		return "error"
	case Warning:
		return "warning"
	default:
		return "unknown"
	}
}

// MarshalText lets JSON reports carry the severity as a word.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Origin selects the prefix a diagnostic is rendered with.
type Origin int

const (
	// OriginLine diagnostics render as "Line <n>: ...".
	OriginLine Origin = iota
	// OriginMainLine diagnostics render as "Main function line <n>: ...".
	OriginMainLine
	// OriginProgram diagnostics are whole-program findings: "Error: ...".
	OriginProgram
	// OriginMainFunction diagnostics concern the main body as a whole.
	OriginMainFunction
)

// Diagnostic is a severity-tagged, line-tagged message about a suspected defect.
// Line is 0 for whole-program findings.
type Diagnostic struct {
	Line     int      `json:"line"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
	Origin   Origin   `json:"-"`
}

// Errorf builds an Error diagnostic for a source line.
func Errorf(line int, format string, args ...any) Diagnostic {
	return Diagnostic{Line: line, Severity: Error, Message: fmt.Sprintf(format, args...)}
}

// Warnf builds a Warning diagnostic for a source line.
func Warnf(line int, format string, args ...any) Diagnostic {
	return Diagnostic{Line: line, Severity: Warning, Message: fmt.Sprintf(format, args...)}
}

// Program builds a whole-program diagnostic.
func Program(sev Severity, format string, args ...any) Diagnostic {
	return Diagnostic{Severity: sev, Message: fmt.Sprintf(format, args...), Origin: OriginProgram}
}

// String renders the diagnostic as one report line (without newline).
func (d Diagnostic) String() string {
	switch d.Origin {
	case OriginMainLine:
		return fmt.Sprintf("Main function line %d: %s", d.Line, d.Message)
	case OriginProgram:
		return severityWord(d.Severity) + ": " + d.Message
	case OriginMainFunction:
		return severityWord(d.Severity) + " in main function: " + d.Message
	default:
		return fmt.Sprintf("Line %d: %s", d.Line, d.Message)
	}
}

func severityWord(s Severity) string {
	if s == Warning {
		return "Warning"
	}
	return "Error"
}

// List is an append-only, order-preserving diagnostics sink.
type List struct {
	items []Diagnostic
}

// Add appends diagnostics in detection order.
func (l *List) Add(ds ...Diagnostic) {
	l.items = append(l.items, ds...)
}

// Items returns a copy of the collected diagnostics.
func (l *List) Items() []Diagnostic {
	out := make([]Diagnostic, len(l.items))
	copy(out, l.items)
	return out
}

// Count returns how many diagnostics carry the given severity.
func Count(ds []Diagnostic, sev Severity) int {
	n := 0
	for _, d := range ds {
		if d.Severity == sev {
			n++
		}
	}
	return n
}

// Render joins diagnostics into the diagnostics report text.
func Render(ds []Diagnostic) string {
	var sb strings.Builder
	for _, d := range ds {
		sb.WriteString(d.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
