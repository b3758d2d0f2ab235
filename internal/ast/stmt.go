package ast

// Stmt is the interface implemented by every statement variant.
type Stmt interface {
	Node
	stmtNode()
}

// VarDecl declares a local variable, optionally const, with an optional
// type annotation and/or initializer.
type VarDecl struct {
	Base
	Name          string
	AnnotatedType *TypeRef
	Init          Expr
	IsConst       bool
}

func (*VarDecl) stmtNode() {}

// Assign assigns a new value to an already-declared variable. `a += e` is
// desugared by the parser into Assign{Name: a, Value: Binary{Add, Ident{a},
// e}} before it ever reaches the analyzer.
type Assign struct {
	Base
	Name  string
	Value Expr
}

func (*Assign) stmtNode() {}

// ExprStmt is an expression evaluated for its side effects (e.g. a
// print/println call).
type ExprStmt struct {
	Base
	Expr Expr
}

func (*ExprStmt) stmtNode() {}

// IfBranch is a single `if`/`elif` condition-body pair.
type IfBranch struct {
	Cond Expr
	Body *Block
}

// IfStmt is an if/elif*/else? chain.
type IfStmt struct {
	Base
	Branches   []IfBranch
	ElseBranch *Block
}

func (*IfStmt) stmtNode() {}

// WhileStmt is a pre-tested loop.
type WhileStmt struct {
	Base
	Cond Expr
	Body *Block
}

func (*WhileStmt) stmtNode() {}
