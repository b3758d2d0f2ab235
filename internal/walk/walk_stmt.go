package walk

import (
	"github.com/MineChook/Coal/internal/ast"
	"github.com/MineChook/Coal/internal/report"
	"github.com/MineChook/Coal/internal/typing"
)

func (a *Analyzer) walkStmt(stmt ast.Stmt) {
	switch s := stmt.(type) {
	case *ast.VarDecl:
		a.walkVarDecl(s)
	case *ast.Assign:
		a.walkAssign(s)
	case *ast.ExprStmt:
		a.walkExpr(s.Expr)
	case *ast.IfStmt:
		a.walkIfStmt(s)
	case *ast.WhileStmt:
		a.walkWhileStmt(s)
	default:
		report.Internal(a.file, spanPtr(stmt.Span()), "unhandled statement kind %T", stmt)
	}
}

// walkVarDecl type-checks a variable declaration: an explicit type
// annotation and an initializer must agree when both are present; either
// one alone suffices to fix the variable's type; a const always needs an
// initializer since it can never be assigned later.
func (a *Analyzer) walkVarDecl(decl *ast.VarDecl) {
	var annotType typing.NamedType
	var hasAnnot bool
	if decl.AnnotatedType != nil {
		t, ok := typing.FromName(decl.AnnotatedType.Name)
		if !ok {
			a.error(decl.AnnotatedType.Span(), report.CodeInvalidType, "unknown type '%s'", decl.AnnotatedType.Name)
		}
		annotType, hasAnnot = t, true
	}

	var initType typing.NamedType
	var hasInit bool
	if decl.Init != nil {
		initType = a.walkExpr(decl.Init)
		hasInit = true
	}

	if decl.IsConst && !hasInit {
		a.error(decl.Span(), report.CodeConstNeedsInit, "const '%s' must be initialized at declaration", decl.Name)
	}

	var declared typing.NamedType
	switch {
	case hasAnnot && hasInit:
		if annotType != initType {
			a.error(decl.Span(), report.CodeTypeMismatch, "variable '%s' annotated as %s but initialized with %s", decl.Name, annotType.Name(), initType.Name())
		}
		declared = annotType
	case hasAnnot:
		declared = annotType
	case hasInit:
		declared = initType
	default:
		a.error(decl.Span(), report.CodeVarNeedsType, "variable '%s' needs a type annotation or an initializer", decl.Name)
	}

	a.declareLocal(decl.Span(), decl.Name, declared, decl.IsConst)
	a.table.SetDecl(decl, declared)
}

// walkAssign type-checks an assignment to an already-declared variable,
// rejecting assignments to const bindings and to mismatched types.
func (a *Analyzer) walkAssign(assign *ast.Assign) {
	info := a.lookup(assign.Span(), assign.Name)

	if info.IsConst {
		a.error(assign.Span(), report.CodeAssignToConst, "cannot assign to const '%s'", assign.Name)
	}

	rhsType := a.walkExpr(assign.Value)
	if rhsType != info.Type {
		a.error(assign.Span(), report.CodeTypeMismatch, "cannot assign %s to variable '%s' of type %s", rhsType.Name(), assign.Name, info.Type.Name())
	}
}

func (a *Analyzer) walkIfStmt(stmt *ast.IfStmt) {
	for _, branch := range stmt.Branches {
		condType := a.walkExpr(branch.Cond)
		if condType != typing.Bool {
			a.error(branch.Cond.Span(), report.CodeNonBoolCondition, "if condition must be bool, got %s", condType.Name())
		}
		a.walkBlock(branch.Body)
	}

	if stmt.ElseBranch != nil {
		a.walkBlock(stmt.ElseBranch)
	}
}

func (a *Analyzer) walkWhileStmt(stmt *ast.WhileStmt) {
	condType := a.walkExpr(stmt.Cond)
	if condType != typing.Bool {
		a.error(stmt.Cond.Span(), report.CodeNonBoolCondition, "while condition must be bool, got %s", condType.Name())
	}
	a.walkBlock(stmt.Body)
}

// spanPtr is a small helper so Internal (which wants *report.Span) can be
// called with a value returned from Span().
func spanPtr(s report.Span) *report.Span {
	return &s
}
