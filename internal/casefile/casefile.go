// Package casefile reads checker test suites written in Markdown. Each case
// starts at a "Test: <name>" heading and holds one cpp input fence followed
// by assertion fences whose content is the exact expected report text.
package casefile

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// InputLanguage is the fence language of a case's source input.
const InputLanguage = "cpp"

// AssertionType names the report an assertion fence is compared against.
type AssertionType string

const (
	AssertDiagnostics AssertionType = "diagnostics"
	AssertTokens      AssertionType = "tokens"
	AssertSymbols     AssertionType = "symbols"
)

// OptionsLanguage is the fence language listing analyzer options, one per
// line.
const OptionsLanguage = "options"

// Assertion is one expected report.
type Assertion struct {
	Type    AssertionType
	Content string
	Line    int // Line of the fence in the Markdown file
}

// TestCase is a single case extracted from a suite.
type TestCase struct {
	Name       string
	Input      string
	Options    []string
	Assertions []Assertion
}

// HasOption reports whether the case enables the named option.
func (tc TestCase) HasOption(name string) bool {
	for _, o := range tc.Options {
		if o == name {
			return true
		}
	}
	return false
}

// Extract parses a Markdown suite and returns its cases in order.
func Extract(markdown string) ([]TestCase, error) {
	source := []byte(markdown)
	doc := goldmark.New().Parser().Parse(text.NewReader(source))

	var cases []TestCase
	var current *TestCase

	err := ast.Walk(doc, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch n := node.(type) {
		case *ast.Heading:
			heading := nodeText(n, source)
			if !strings.HasPrefix(heading, "Test: ") {
				return ast.WalkContinue, nil
			}
			if current != nil {
				if err := validate(current); err != nil {
					return ast.WalkStop, err
				}
				cases = append(cases, *current)
			}
			current = &TestCase{Name: strings.TrimPrefix(heading, "Test: ")}

		case *ast.FencedCodeBlock:
			language := string(n.Language(source))
			content := fenceContent(n, source)
			line := lineOf(n, source)

			if current == nil {
				if language != "" {
					return ast.WalkStop, fmt.Errorf("line %d: %s fence found outside of test case", line, language)
				}
				return ast.WalkContinue, nil
			}

			switch {
			case language == InputLanguage:
				if current.Input != "" {
					return ast.WalkStop, fmt.Errorf("line %d: multiple input fences in test '%s'", line, current.Name)
				}
				current.Input = content
			case language == OptionsLanguage:
				current.Options = append(current.Options, strings.Fields(content)...)
			case isAssertion(language):
				current.Assertions = append(current.Assertions, Assertion{
					Type:    AssertionType(language),
					Content: content,
					Line:    line,
				})
			case language != "":
				return ast.WalkStop, fmt.Errorf("line %d: unknown fence language '%s' in test '%s'", line, language, current.Name)
			}
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		return nil, fmt.Errorf("error walking markdown AST: %w", err)
	}

	if current != nil {
		if err := validate(current); err != nil {
			return nil, err
		}
		cases = append(cases, *current)
	}
	return cases, nil
}

func isAssertion(language string) bool {
	switch AssertionType(language) {
	case AssertDiagnostics, AssertTokens, AssertSymbols:
		return true
	}
	return false
}

// validate ensures a case has an input and at least one assertion.
func validate(tc *TestCase) error {
	if tc.Input == "" {
		return fmt.Errorf("test '%s' has no %s fence", tc.Name, InputLanguage)
	}
	if len(tc.Assertions) == 0 {
		return fmt.Errorf("test '%s' has no assertion fences", tc.Name)
	}
	return nil
}

// nodeText extracts the plain text of a node.
func nodeText(node ast.Node, source []byte) string {
	var buf bytes.Buffer
	ast.Walk(node, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if t, ok := n.(*ast.Text); ok && entering {
			buf.Write(t.Segment.Value(source))
		}
		return ast.WalkContinue, nil
	})
	return buf.String()
}

// fenceContent returns the raw lines of a fenced block.
func fenceContent(block *ast.FencedCodeBlock, source []byte) string {
	var buf bytes.Buffer
	lines := block.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		buf.Write(seg.Value(source))
	}
	return buf.String()
}

// lineOf returns the 1-based line a block's content starts on.
func lineOf(node ast.Node, source []byte) int {
	if node.Lines().Len() == 0 {
		return 1
	}
	start := node.Lines().At(0).Start
	return 1 + bytes.Count(source[:min(start, len(source))], []byte("\n"))
}
