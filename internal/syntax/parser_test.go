package syntax

import (
	"testing"

	"github.com/MineChook/Coal/internal/ast"
)

func mustParse(t *testing.T, src string) *ast.Program {
	t.Helper()
	prog, diag := Parse("test.coal", src)
	if diag != nil {
		t.Fatalf("unexpected parse error: %s", diag.Message)
	}
	return prog
}

func TestParseMinimalFunction(t *testing.T) {
	prog := mustParse(t, "fn main() { }")
	if len(prog.Decls) != 1 {
		t.Fatalf("got %d decls, want 1", len(prog.Decls))
	}
	if prog.Decls[0].Name != "main" {
		t.Fatalf("got name %q", prog.Decls[0].Name)
	}
}

func TestParseVarDecl(t *testing.T) {
	prog := mustParse(t, "fn main() { var x: int = 1 const y = 2.0 }")
	stmts := prog.Decls[0].Body.Stmts
	if len(stmts) != 2 {
		t.Fatalf("got %d stmts, want 2", len(stmts))
	}

	x, ok := stmts[0].(*ast.VarDecl)
	if !ok || x.Name != "x" || x.AnnotatedType == nil || x.AnnotatedType.Name != "int" {
		t.Fatalf("bad var decl: %+v", stmts[0])
	}

	y, ok := stmts[1].(*ast.VarDecl)
	if !ok || !y.IsConst || y.AnnotatedType != nil {
		t.Fatalf("bad const decl: %+v", stmts[1])
	}
}

// TestParsePrecedence checks that `1 + 2 * 3` parses as `1 + (2 * 3)`,
// i.e. '*' binds tighter than '+' — the root node must be the '+'.
func TestParsePrecedence(t *testing.T) {
	prog := mustParse(t, "fn main() { println(1 + 2 * 3) }")
	call := exprStmtExpr(t, prog).(*ast.Call)
	root, ok := call.Args[0].(*ast.Binary)
	if !ok || root.Op != ast.Add {
		t.Fatalf("root should be '+', got %+v", call.Args[0])
	}
	rhs, ok := root.Right.(*ast.Binary)
	if !ok || rhs.Op != ast.Mul {
		t.Fatalf("right child should be '*', got %+v", root.Right)
	}
}

// TestParseLeftAssociativity checks `1 - 2 - 3` parses as `(1 - 2) - 3`.
func TestParseLeftAssociativity(t *testing.T) {
	prog := mustParse(t, "fn main() { println(1 - 2 - 3) }")
	call := exprStmtExpr(t, prog).(*ast.Call)
	root, ok := call.Args[0].(*ast.Binary)
	if !ok || root.Op != ast.Sub {
		t.Fatalf("root should be '-', got %+v", call.Args[0])
	}
	if _, ok := root.Left.(*ast.Binary); !ok {
		t.Fatalf("left child should be a binary ('1 - 2'), got %+v", root.Left)
	}
	if _, ok := root.Right.(*ast.IntLit); !ok {
		t.Fatalf("right child should be the literal 3, got %+v", root.Right)
	}
}

func TestParseMethodCallChain(t *testing.T) {
	prog := mustParse(t, `fn main() { println(x.toString().toInt()) }`)
	call := exprStmtExpr(t, prog).(*ast.Call)
	outer, ok := call.Args[0].(*ast.MethodCall)
	if !ok || outer.Method != "toInt" {
		t.Fatalf("outer call should be toInt, got %+v", call.Args[0])
	}
	inner, ok := outer.Receiver.(*ast.MethodCall)
	if !ok || inner.Method != "toString" {
		t.Fatalf("inner call should be toString, got %+v", outer.Receiver)
	}
}

func TestParseIfElifElse(t *testing.T) {
	prog := mustParse(t, `fn main() {
		if (true) { } elif (false) { } else { }
	}`)
	ifStmt := prog.Decls[0].Body.Stmts[0].(*ast.IfStmt)
	if len(ifStmt.Branches) != 2 {
		t.Fatalf("got %d branches, want 2", len(ifStmt.Branches))
	}
	if ifStmt.ElseBranch == nil {
		t.Fatal("expected an else branch")
	}
}

func TestParsePlusEqDesugars(t *testing.T) {
	prog := mustParse(t, `fn main() { var x = 1 x += 2 }`)
	assign := prog.Decls[0].Body.Stmts[1].(*ast.Assign)
	bin, ok := assign.Value.(*ast.Binary)
	if !ok || bin.Op != ast.Add {
		t.Fatalf("x += 2 should desugar to a '+' binary, got %+v", assign.Value)
	}
	ident, ok := bin.Left.(*ast.Ident)
	if !ok || ident.Name != "x" {
		t.Fatalf("left operand should be x, got %+v", bin.Left)
	}
}

func exprStmtExpr(t *testing.T, prog *ast.Program) ast.Expr {
	t.Helper()
	es, ok := prog.Decls[0].Body.Stmts[0].(*ast.ExprStmt)
	if !ok {
		t.Fatalf("expected an ExprStmt, got %+v", prog.Decls[0].Body.Stmts[0])
	}
	return es.Expr
}
