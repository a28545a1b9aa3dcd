// Package lexer tokenizes comment-stripped C++-like source with a regex rule
// table and classifies each token for the token report.
package lexer

import (
	"iter"
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
)

// rules are tried in order at each position. Their first characters are
// disjoint and keywords are word-bounded, so the first match is also the
// longest one.
var rules = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Keyword", Pattern: `\b(?:int|float|double|char|string|void|bool|long|short|unsigned|if|else|for|while|do|break|continue|return)\b`},
	{Name: "Operator", Pattern: `[-+*/%<>=!&|]{1,2}`},
	{Name: "Number", Pattern: `\d+(?:\.\d+)?`},
	{Name: "Char", Pattern: `'[^']'`},
	{Name: "String", Pattern: `"[^"]*"`},
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
	{Name: "Separator", Pattern: `[{}();,]`},
	{Name: "Whitespace", Pattern: `\s+`},
	{Name: "Unknown", Pattern: `[^\s\w{}();,+\-*/%<>=!&|'"]+|\S`},
})

var whitespace = rules.Symbols()["Whitespace"]

// Lexer pulls tokens from one source text. It is single-use.
type Lexer struct {
	lex  lexer.Lexer
	done bool
}

// New creates a lexer over comment-stripped source.
func New(src string) *Lexer {
	l := &Lexer{}
	lex, err := rules.LexString("", src)
	if err != nil {
		l.done = true
		return l
	}
	l.lex = lex
	return l
}

// Next returns the next token. ok is false once the input is exhausted.
func (l *Lexer) Next() (tok Token, ok bool) {
	for !l.done {
		t, err := l.lex.Next()
		if err != nil || t.EOF() {
			l.done = true
			break
		}
		if t.Type == whitespace {
			continue
		}
		return Token{
			Lexeme:   t.Value,
			Line:     t.Pos.Line,
			Category: Classify(t.Value),
		}, true
	}
	return Token{}, false
}

// Scan returns the lazy token sequence for src. Newlines only advance the
// line counter; they never appear as tokens.
func Scan(src string) iter.Seq[Token] {
	return func(yield func(Token) bool) {
		l := New(src)
		for {
			tok, ok := l.Next()
			if !ok || !yield(tok) {
				return
			}
		}
	}
}

// Tokenize collects the whole token sequence.
func Tokenize(src string) []Token {
	var tokens []Token
	for tok := range Scan(src) {
		tokens = append(tokens, tok)
	}
	return tokens
}

// Render joins tokens into the token report text.
func Render(tokens []Token) string {
	var sb strings.Builder
	for _, t := range tokens {
		sb.WriteString(t.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
