package lexer

import (
	"testing"

	"github.com/nalgeon/be"
)

func TestTokenize_Declaration(t *testing.T) {
	got := Tokenize("int x = 5;")
	want := []Token{
		{Lexeme: "int", Line: 1, Category: Declaration},
		{Lexeme: "x", Line: 1, Category: Identifier},
		{Lexeme: "=", Line: 1, Category: AssignmentOperator},
		{Lexeme: "5", Line: 1, Category: Number},
		{Lexeme: ";", Line: 1, Category: Separator},
	}
	be.Equal(t, got, want)
}

func TestTokenize_LineTracking(t *testing.T) {
	got := Tokenize("int a;\n\n  a = 1;\n")
	be.Equal(t, len(got), 7)
	be.Equal(t, got[0].Line, 1)
	be.Equal(t, got[2].Line, 1)
	be.Equal(t, got[3].Lexeme, "a")
	be.Equal(t, got[3].Line, 3)
	be.Equal(t, got[6].Line, 3)
}

func TestTokenize_Categories(t *testing.T) {
	tests := []struct {
		src  string
		want []Category
	}{
		{"if else", []Category{Conditional, Conditional}},
		{"for while do", []Category{Loop, Loop, Loop}},
		{"break continue return", []Category{Control, Control, Control}},
		{"== != < > <= >=", []Category{RelationalOperator, RelationalOperator, RelationalOperator,
			RelationalOperator, RelationalOperator, RelationalOperator}},
		{"+ - * / %", []Category{ArithmeticOperator, ArithmeticOperator, ArithmeticOperator,
			ArithmeticOperator, ArithmeticOperator}},
		{"&& || ++ += !", []Category{LogicalOperator, LogicalOperator, Operator, Operator, Operator}},
		{"3.14 'c' \"hi there\"", []Category{Number, CharLiteral, StringLiteral}},
		{"{ } ( ) ; ,", []Category{Separator, Separator, Separator, Separator, Separator, Separator}},
		{"integer doit _x9", []Category{Identifier, Identifier, Identifier}},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			var got []Category
			for _, tok := range Tokenize(tt.src) {
				got = append(got, tok.Category)
			}
			be.Equal(t, got, tt.want)
		})
	}
}

func TestTokenize_Unknown(t *testing.T) {
	got := Tokenize("x @@ y # [")
	be.Equal(t, len(got), 5)
	be.Equal(t, got[1], Token{Lexeme: "@@", Line: 1, Category: Unknown})
	be.Equal(t, got[3].Lexeme, "#")
	be.Equal(t, got[3].Category, Unknown)
	be.Equal(t, got[4].Category, Unknown)
}

func TestTokenize_OperatorClusterIsGreedy(t *testing.T) {
	got := Tokenize("a<=b")
	be.Equal(t, len(got), 3)
	be.Equal(t, got[1].Lexeme, "<=")
	be.Equal(t, got[1].Category, RelationalOperator)
}

func TestTokenize_UnterminatedQuote(t *testing.T) {
	got := Tokenize(`s = "abc`)
	be.Equal(t, got[2], Token{Lexeme: `"`, Line: 1, Category: Unknown})
	be.Equal(t, got[3].Lexeme, "abc")
}

func TestScan_StopsEarly(t *testing.T) {
	n := 0
	for range Scan("a b c d") {
		n++
		if n == 2 {
			break
		}
	}
	be.Equal(t, n, 2)
}

func TestClassify(t *testing.T) {
	tests := []struct {
		lexeme string
		want   Category
	}{
		{"string", Declaration},
		{"=", AssignmentOperator},
		{"=-", Operator},
		{"42", Number},
		{"'ab'", Unknown},
		{"main", Identifier},
		{"$", Unknown},
	}
	for _, tt := range tests {
		t.Run(tt.lexeme, func(t *testing.T) {
			be.Equal(t, Classify(tt.lexeme), tt.want)
		})
	}
}

func TestRender(t *testing.T) {
	got := Render(Tokenize("int x;\nx = 1;"))
	want := "[DECLARATION]: int (Line 1)\n" +
		"[IDENTIFIER]: x (Line 1)\n" +
		"[SEPARATOR]: ; (Line 1)\n" +
		"[IDENTIFIER]: x (Line 2)\n" +
		"[ASSIGNMENT_OPERATOR]: = (Line 2)\n" +
		"[NUMBER]: 1 (Line 2)\n" +
		"[SEPARATOR]: ; (Line 2)\n"
	be.Equal(t, got, want)
}
