// Package types validates assignment and initialization values against the
// declared type of a variable.
package types

import (
	"regexp"
	"strings"

	"syntaxcheck/internal/symtab"
)

var (
	integerValue  = regexp.MustCompile(`^-?\d+$`)
	longLongValue = regexp.MustCompile(`^-?\d+[lL]?$`)
	floatValue    = regexp.MustCompile(`^-?\d+(\.\d+)?([eE][+-]?\d+)?[fF]?$`)
	charValue     = regexp.MustCompile(`^'.'$`)
	stringValue   = regexp.MustCompile(`^".*"$`)
)

// widening lists, per target type, the source types whose values it accepts.
var widening = map[string][]string{
	"double":       {"int", "float", "long", "short", "long long", "unsigned int"},
	"float":        {"int", "short", "long", "unsigned int"},
	"long long":    {"int", "short", "long", "unsigned int"},
	"long":         {"int", "short", "unsigned int"},
	"int":          {"short"},
	"unsigned int": {"short"},
	"bool":         {"int", "short", "long", "long long", "unsigned int"},
	"string":       {"char"},
}

var numeric = map[string]bool{
	"int": true, "float": true, "double": true, "long": true, "short": true,
	"long long": true, "unsigned int": true, "unsigned": true,
	"unsigned short": true, "unsigned long": true,
}

// IsNumeric reports whether typ takes part in arithmetic and
// increment/decrement.
func IsNumeric(typ string) bool {
	return numeric[typ]
}

// IsTypeCompatible reports whether a variable of type source may be assigned
// to one of type target. Numeric sources never convert to string.
func IsTypeCompatible(target, source string) bool {
	if target == source {
		return true
	}
	for _, t := range widening[target] {
		if t == source {
			return true
		}
	}
	return false
}

// IsValidValue reports whether value may initialize or be assigned to a
// variable of type typ. Variables named by value are resolved in scope and
// must be initialized. Expressions containing an arithmetic operator are
// accepted without evaluation.
func IsValidValue(typ, value string, scope *symtab.Scope) bool {
	value = strings.TrimSpace(value)
	if value == "" {
		return false
	}

	if scope != nil {
		if info := scope.Lookup(value); info != nil {
			if !info.Initialized {
				return false
			}
			return IsTypeCompatible(typ, info.Type)
		}
	}

	if strings.ContainsAny(value, "+-*/%") {
		return true
	}

	switch typ {
	case "int", "long", "short", "unsigned int":
		return integerValue.MatchString(value)
	case "long long":
		return longLongValue.MatchString(value)
	case "float", "double":
		return floatValue.MatchString(value)
	case "char":
		return charValue.MatchString(value)
	case "bool":
		return value == "true" || value == "false" || value == "0" || value == "1"
	case "string":
		return stringValue.MatchString(value)
	default:
		return false
	}
}
