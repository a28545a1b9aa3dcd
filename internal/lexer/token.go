package lexer

import (
	"fmt"
	"regexp"
)

// Category classifies a token for the token report.
type Category int

const (
	Declaration Category = iota
	Conditional
	Loop
	Control
	RelationalOperator
	ArithmeticOperator
	AssignmentOperator
	LogicalOperator
	Operator
	Number
	CharLiteral
	StringLiteral
	Identifier
	Separator
	Unknown
)

func (c Category) String() string {
	switch c {
	case Declaration:
		return "DECLARATION"
	case Conditional:
		return "CONDITIONAL"
	case Loop:
		return "LOOP"
	case Control:
		return "CONTROL"
	case RelationalOperator:
		return "RELATIONAL_OPERATOR"
	case ArithmeticOperator:
		return "ARITHMETIC_OPERATOR"
	case AssignmentOperator:
		return "ASSIGNMENT_OPERATOR"
	case LogicalOperator:
		return "LOGICAL_OPERATOR"
	case Operator:
		return "OPERATOR"
	case Number:
		return "NUMBER"
	case CharLiteral:
		return "CHAR_LITERAL"
	case StringLiteral:
		return "STRING_LITERAL"
	case Identifier:
		return "IDENTIFIER"
	case Separator:
		return "SEPARATOR"
	default:
		return "UNKNOWN"
	}
}

// MarshalText lets JSON reports carry the category name.
func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// Token is a classified lexical unit with its 1-based source line.
type Token struct {
	Lexeme   string   `json:"lexeme"`
	Line     int      `json:"line"`
	Category Category `json:"category"`
}

// String renders the token as a token-report line.
func (t Token) String() string {
	return fmt.Sprintf("[%s]: %s (Line %d)", t.Category, t.Lexeme, t.Line)
}

var keywordCategories = map[string]Category{
	"int": Declaration, "float": Declaration, "double": Declaration, "char": Declaration,
	"string": Declaration, "void": Declaration, "bool": Declaration, "long": Declaration,
	"short": Declaration, "unsigned": Declaration,
	"if": Conditional, "else": Conditional,
	"for": Loop, "while": Loop, "do": Loop,
	"break": Control, "continue": Control, "return": Control,
}

var (
	operatorShape   = regexp.MustCompile(`^[-+*/%<>=!&|]{1,2}$`)
	numberShape     = regexp.MustCompile(`^\d+(\.\d+)?$`)
	charShape       = regexp.MustCompile(`^'[^']'$`)
	stringShape     = regexp.MustCompile(`^"[^"]*"$`)
	identifierShape = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)
	separatorShape  = regexp.MustCompile(`^[{}();,]$`)
)

// Classify assigns a category using the fixed decision order: keyword
// subsets, operator clusters, literal shapes, identifier, separator.
func Classify(lexeme string) Category {
	if c, ok := keywordCategories[lexeme]; ok {
		return c
	}

	if operatorShape.MatchString(lexeme) {
		switch lexeme {
		case "==", "!=", "<", ">", "<=", ">=":
			return RelationalOperator
		case "+", "-", "*", "/", "%":
			return ArithmeticOperator
		case "=":
			return AssignmentOperator
		case "&&", "||":
			return LogicalOperator
		default:
			return Operator
		}
	}

	switch {
	case numberShape.MatchString(lexeme):
		return Number
	case charShape.MatchString(lexeme):
		return CharLiteral
	case stringShape.MatchString(lexeme):
		return StringLiteral
	case identifierShape.MatchString(lexeme):
		return Identifier
	case separatorShape.MatchString(lexeme):
		return Separator
	}
	return Unknown
}
