package typing

import "github.com/MineChook/Coal/internal/ast"

// localKey identifies a local variable within an enclosing function, the
// second of the TypeTable's two maps.
type localKey struct {
	Func string
	Name string
}

// Table is the read-only, analyzer-produced map from every expression node
// (keyed by pointer identity) to its resolved type, the declared type of
// every (function, variable) name pair, and the declared type of every
// individual VarDecl node (also keyed by pointer identity). It is built
// once by walk.Analyze and never mutated again; the emitter only reads it.
type Table struct {
	exprs  map[ast.Expr]NamedType
	locals map[localKey]NamedType
	decls  map[*ast.VarDecl]NamedType
}

// NewTable creates an empty, writable Table. Only the walk package should
// call this; everyone else receives a *Table as a finished, read-only
// value.
func NewTable() *Table {
	return &Table{
		exprs:  make(map[ast.Expr]NamedType),
		locals: make(map[localKey]NamedType),
		decls:  make(map[*ast.VarDecl]NamedType),
	}
}

// SetExpr records e's resolved type. Called exactly once per expression
// node during analysis.
func (t *Table) SetExpr(e ast.Expr, typ NamedType) {
	t.exprs[e] = typ
}

// Expr returns the resolved type of e and whether it was present. ok is
// true for every expression in a successfully analyzed program; the
// emitter treats ok == false as an internal error.
func (t *Table) Expr(e ast.Expr) (NamedType, bool) {
	typ, ok := t.exprs[e]
	return typ, ok
}

// SetLocal records the declared type of variable name within fn. When name
// is shadowed by a nested redeclaration, the later SetLocal call overwrites
// the earlier one — Local(fn, name) only ever reports the declaration
// analyzed most recently, whatever its scope depth. Callers that need the type of a
// specific declaration, regardless of shadowing, should use SetDecl/Decl
// instead.
func (t *Table) SetLocal(fn, name string, typ NamedType) {
	t.locals[localKey{fn, name}] = typ
}

// Local returns the declared type most recently recorded for name within
// fn. See SetLocal's shadowing caveat.
func (t *Table) Local(fn, name string) (NamedType, bool) {
	typ, ok := t.locals[localKey{fn, name}]
	return typ, ok
}

// SetDecl records the declared type of one specific VarDecl node, keyed by
// pointer identity like SetExpr. Unlike SetLocal/Local, this stays correct
// under shadowing: two VarDecl nodes for the same name in nested scopes
// get distinct entries even if they declare different types.
func (t *Table) SetDecl(decl *ast.VarDecl, typ NamedType) {
	t.decls[decl] = typ
}

// Decl returns the declared type of decl.
func (t *Table) Decl(decl *ast.VarDecl) (NamedType, bool) {
	typ, ok := t.decls[decl]
	return typ, ok
}
