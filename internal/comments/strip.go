// Package comments removes C++ line and block comments from source text
// while keeping line numbering stable.
package comments

import (
	"errors"
	"strings"

	"syntaxcheck/internal/diag"
)

// ErrUnterminatedComment means a block comment ran to end of input.
// Line numbers past the opener cannot be trusted, so analysis must stop.
var ErrUnterminatedComment = errors.New("unterminated multi-line comment")

type state int

const (
	normal state = iota
	lineComment
	blockComment
	stringLit
	charLit
)

// Result is the stripped text plus the non-fatal comment diagnostics.
type Result struct {
	Text        string
	Diagnostics []diag.Diagnostic
}

// Strip scans src once, left to right. Comment spans are dropped; newlines
// inside them are kept as bare newlines. Quoted literals are copied through
// untouched so "//" inside a string is not a comment.
//
// On an unterminated block comment Strip returns ErrUnterminatedComment and a
// Result holding exactly one diagnostic.
func Strip(src string) (Result, error) {
	var (
		out       strings.Builder
		diags     []diag.Diagnostic
		st        = normal
		line      = 1
		startLine = 0
	)
	out.Grow(len(src))

	for i := 0; i < len(src); i++ {
		ch := src[i]
		next := byte(0)
		if i+1 < len(src) {
			next = src[i+1]
		}

		switch st {
		case blockComment:
			if ch == '*' && next == '/' {
				st = normal
				i++
				continue
			}
			if ch == '/' && next == '*' {
				diags = append(diags, diag.Errorf(line, "Error - Nested comments are not allowed in C++."))
				i++
				continue
			}
			if ch == '\n' {
				out.WriteByte('\n')
				line++
			}
			continue

		case lineComment:
			if ch == '\n' {
				out.WriteByte('\n')
				line++
				st = normal
			}
			continue

		case stringLit, charLit:
			out.WriteByte(ch)
			quote := byte('"')
			if st == charLit {
				quote = '\''
			}
			switch ch {
			case '\\':
				if next != 0 && next != '\n' {
					out.WriteByte(next)
					i++
				}
			case quote:
				st = normal
			case '\n':
				// Literals do not span lines; recover at the newline.
				line++
				st = normal
			}
			continue
		}

		switch {
		case ch == '/' && next == '*':
			st = blockComment
			startLine = line
			i++
		case ch == '/' && next == '/':
			st = lineComment
			i++
		case ch == '"':
			st = stringLit
			out.WriteByte(ch)
		case ch == '\'':
			st = charLit
			out.WriteByte(ch)
		default:
			if ch == '\n' {
				line++
			}
			out.WriteByte(ch)
		}
	}

	if st == blockComment {
		d := diag.Program(diag.Error, "Unterminated multi-line comment starting at line %d", startLine)
		return Result{Diagnostics: []diag.Diagnostic{d}}, ErrUnterminatedComment
	}

	return Result{Text: out.String(), Diagnostics: diags}, nil
}
