// Package walk implements Coal's type analyzer: it resolves the type of
// every expression and local variable, enforces scoping and typing rules,
// and produces a read-only typing.Table. It never mutates the AST,
// using a scope-stack struct with lookup/define/pushScope/popScope
// helpers and a panic-based error convention, suited to Coal's simpler,
// parameterless functions.
package walk

import (
	"github.com/MineChook/Coal/internal/ast"
	"github.com/MineChook/Coal/internal/report"
	"github.com/MineChook/Coal/internal/typing"
)

// fnSig records a declared function's name for the pre-pass symbol table;
// Coal functions have no parameters or meaningful return types to track
//, so the signature is just a
// presence marker today.
type fnSig struct {
	Name string
}

// Analyzer walks a Program and builds its typing.Table.
type Analyzer struct {
	file string
	fns  map[string]fnSig

	curFn  string
	scopes []map[string]localInfo

	table *typing.Table
}

// localInfo is what the scope stack remembers about a declared local: its
// type, for resolving identifier expressions, and whether it is const, for
// rejecting reassignment.
type localInfo struct {
	Type    typing.NamedType
	IsConst bool
}

// Analyze type-checks prog and returns its TypeTable, or a diagnostic if
// analysis failed. The returned table is nil on failure; callers should
// treat a non-nil diagnostic as reason to abort before using the table.
func Analyze(file string, prog *ast.Program) (table *typing.Table, diag *report.Diagnostic) {
	diag = report.Run(func() {
		a := &Analyzer{
			file:  file,
			fns:   make(map[string]fnSig),
			table: typing.NewTable(),
		}
		a.run(prog)
		table = a.table
	})
	return
}

func (a *Analyzer) run(prog *ast.Program) {
	// Pre-pass: collect all function declarations into the global table
	// before walking any body, rejecting duplicate names. Calls are not
	// resolved against this table: walkCall accepts only print/println.
	for _, fn := range prog.Decls {
		if _, ok := a.fns[fn.Name]; ok {
			a.error(fn.Span(), report.CodeRedeclaredVariable, "function '%s' is already declared", fn.Name)
		}
		a.fns[fn.Name] = fnSig{Name: fn.Name}
	}

	for _, fn := range prog.Decls {
		a.walkFn(fn)
	}
}

func (a *Analyzer) walkFn(fn *ast.FnDecl) {
	a.curFn = fn.Name
	a.pushScope()
	defer a.popScope()

	a.walkBlock(fn.Body)
}

func (a *Analyzer) walkBlock(block *ast.Block) {
	a.pushScope()
	defer a.popScope()

	for _, stmt := range block.Stmts {
		a.walkStmt(stmt)
	}
}

// -----------------------------------------------------------------------------
// Scope stack: inner scopes shadow outer ones.

func (a *Analyzer) pushScope() {
	a.scopes = append(a.scopes, make(map[string]localInfo))
}

func (a *Analyzer) popScope() {
	a.scopes = a.scopes[:len(a.scopes)-1]
}

func (a *Analyzer) declareLocal(span report.Span, name string, typ typing.NamedType, isConst bool) {
	cur := a.scopes[len(a.scopes)-1]
	if _, ok := cur[name]; ok {
		a.error(span, report.CodeRedeclaredVariable, "variable '%s' is already declared in this scope", name)
	}

	cur[name] = localInfo{Type: typ, IsConst: isConst}
	a.table.SetLocal(a.curFn, name, typ)
}

func (a *Analyzer) lookup(span report.Span, name string) localInfo {
	for i := len(a.scopes) - 1; i >= 0; i-- {
		if info, ok := a.scopes[i][name]; ok {
			return info
		}
	}

	a.error(span, report.CodeUndefinedVariable, "undefined variable '%s'", name)
	return localInfo{} // unreachable
}

// -----------------------------------------------------------------------------

func (a *Analyzer) error(span report.Span, code report.Code, format string, args ...interface{}) {
	report.Raise(a.file, &span, code, format, args...)
}
