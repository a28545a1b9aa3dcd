// Package symtab tracks declared variables, their types and whether they
// have been initialized.
package symtab

import (
	"errors"
	"fmt"
)

// ErrAlreadyDeclared is returned by Declare for a name already present in
// the same scope.
var ErrAlreadyDeclared = errors.New("already declared")

// VariableInfo is one symbol table entry.
type VariableInfo struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Initialized bool   `json:"initialized"`
	Line        int    `json:"line"`
}

// Scope maps identifiers to VariableInfo. Entries keep their insertion
// order so reports are stable across runs. Lookups fall back to Parent.
type Scope struct {
	Name   string
	Parent *Scope

	vars  map[string]*VariableInfo
	order []string
}

// NewScope creates an empty scope nested in parent (nil for the global scope).
func NewScope(name string, parent *Scope) *Scope {
	return &Scope{
		Name:   name,
		Parent: parent,
		vars:   make(map[string]*VariableInfo),
	}
}

// Declare adds name to this scope. A name already declared here is left
// untouched and ErrAlreadyDeclared is returned; shadowing a parent's entry
// is allowed.
func (s *Scope) Declare(name, typ string, initialized bool, line int) (*VariableInfo, error) {
	if existing, ok := s.vars[name]; ok {
		return existing, fmt.Errorf("variable '%s' %w at line %d", name, ErrAlreadyDeclared, existing.Line)
	}
	info := &VariableInfo{Name: name, Type: typ, Initialized: initialized, Line: line}
	s.vars[name] = info
	s.order = append(s.order, name)
	return info, nil
}

// Lookup finds name in this scope or the nearest enclosing one.
func (s *Scope) Lookup(name string) *VariableInfo {
	for sc := s; sc != nil; sc = sc.Parent {
		if info, ok := sc.vars[name]; ok {
			return info
		}
	}
	return nil
}

// LookupLocal finds name in this scope only.
func (s *Scope) LookupLocal(name string) *VariableInfo {
	return s.vars[name]
}

// MarkInitialized flips the visible entry for name to initialized.
// It reports false when name is not declared.
func (s *Scope) MarkInitialized(name string) bool {
	info := s.Lookup(name)
	if info == nil {
		return false
	}
	info.Initialized = true
	return true
}

// Variables returns this scope's entries in declaration order.
func (s *Scope) Variables() []*VariableInfo {
	out := make([]*VariableInfo, 0, len(s.order))
	for _, name := range s.order {
		out = append(out, s.vars[name])
	}
	return out
}

// Uninitialized returns this scope's entries that were never initialized.
func (s *Scope) Uninitialized() []*VariableInfo {
	var out []*VariableInfo
	for _, info := range s.Variables() {
		if !info.Initialized {
			out = append(out, info)
		}
	}
	return out
}

// Len returns the number of entries declared in this scope.
func (s *Scope) Len() int {
	return len(s.order)
}
