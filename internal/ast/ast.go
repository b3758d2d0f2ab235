// Package ast defines Coal's abstract syntax tree as a closed set of
// variants, each carrying a source span, suited to Coal's flat grammar.
package ast

import "github.com/MineChook/Coal/internal/report"

// Node is the common interface every AST node implements.
type Node interface {
	Span() report.Span
}

// Base is embedded by every concrete node to supply Span().
type Base struct {
	span report.Span
}

// NewBase wraps a span for embedding in a concrete node.
func NewBase(span report.Span) Base {
	return Base{span: span}
}

func (b Base) Span() report.Span {
	return b.span
}

// Program is the root of the AST: an ordered list of function declarations.
type Program struct {
	Decls []*FnDecl
}

// TypeRef names a type annotation written in source. Coal has no
// user-defined types, so only the five built-in names are valid, but the
// parser accepts any identifier here and does not validate membership in
// that set — the analyzer rejects any other name.
type TypeRef struct {
	Base
	Name string
}
