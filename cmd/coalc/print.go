package main

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"os"
	"strings"

	"github.com/MineChook/Coal/internal/ast"
	"github.com/MineChook/Coal/internal/syntax"
)

// emitTokens lexes the source file and prints its token stream, one
// token per line, without ever invoking the parser — a debugging
// collaborator kept outside the core pipeline.
func emitTokens(path string) {
	toks, ok := lexTokens(path)
	if !ok {
		return
	}
	for _, tok := range toks {
		fmt.Printf("%-4d:%-3d %-16s %q\n", tok.Span.Line, tok.Span.Col, tok.Kind, tok.Lexeme)
	}
}

// jsonToken is emit-json-tokens' wire shape: the token kind rendered as
// its name rather than its numeric value, so the output is readable
// without cross-referencing the Kind enum.
type jsonToken struct {
	Kind   string `json:"kind"`
	Lexeme string `json:"lexeme"`
	Line   int    `json:"line"`
	Col    int    `json:"col"`
}

// emitJSONTokens lexes the source file and prints its token stream as a
// JSON array, for tooling that wants structured output instead of the
// plain-text columns emitTokens prints.
func emitJSONTokens(path string) {
	toks, ok := lexTokens(path)
	if !ok {
		return
	}

	out := make([]jsonToken, len(toks))
	for i, tok := range toks {
		out[i] = jsonToken{Kind: tok.Kind.String(), Lexeme: tok.Lexeme, Line: tok.Span.Line, Col: tok.Span.Col}
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.Encode(out)
}

func lexTokens(path string) ([]*syntax.Token, bool) {
	src, err := ioutil.ReadFile(path)
	if err != nil {
		printErrorMessage("Source Error", err)
		return nil, false
	}

	lx := syntax.NewLexer(path, string(src))
	return lx.Tokenize(), true
}

// emitAST parses the source file and prints its AST as an indented tree.
func emitAST(path string) {
	src, err := ioutil.ReadFile(path)
	if err != nil {
		printErrorMessage("Source Error", err)
		return
	}

	prog, diag := syntax.Parse(path, string(src))
	if diag != nil {
		printDiagnostic(diag)
		return
	}

	for _, fn := range prog.Decls {
		printFnDecl(fn, 0)
	}
}

func indent(depth int) string { return strings.Repeat("  ", depth) }

func printFnDecl(fn *ast.FnDecl, depth int) {
	fmt.Printf("%sfn %s\n", indent(depth), fn.Name)
	printBlock(fn.Body, depth+1)
}

func printBlock(b *ast.Block, depth int) {
	for _, s := range b.Stmts {
		printStmt(s, depth)
	}
}

func printStmt(s ast.Stmt, depth int) {
	pre := indent(depth)
	switch n := s.(type) {
	case *ast.VarDecl:
		kind := "var"
		if n.IsConst {
			kind = "const"
		}
		fmt.Printf("%s%s %s\n", pre, kind, n.Name)
		if n.Init != nil {
			printExpr(n.Init, depth+1)
		}
	case *ast.Assign:
		fmt.Printf("%sassign %s\n", pre, n.Name)
		printExpr(n.Value, depth+1)
	case *ast.ExprStmt:
		fmt.Printf("%sexpr\n", pre)
		printExpr(n.Expr, depth+1)
	case *ast.IfStmt:
		fmt.Printf("%sif\n", pre)
		for _, branch := range n.Branches {
			fmt.Printf("%s  branch\n", pre)
			printExpr(branch.Cond, depth+2)
			printBlock(branch.Body, depth+2)
		}
		if n.ElseBranch != nil {
			fmt.Printf("%s  else\n", pre)
			printBlock(n.ElseBranch, depth+2)
		}
	case *ast.WhileStmt:
		fmt.Printf("%swhile\n", pre)
		printExpr(n.Cond, depth+1)
		printBlock(n.Body, depth+1)
	}
}

func printExpr(e ast.Expr, depth int) {
	pre := indent(depth)
	switch n := e.(type) {
	case *ast.IntLit:
		fmt.Printf("%sint %d\n", pre, n.Value)
	case *ast.FloatLit:
		fmt.Printf("%sfloat %g\n", pre, n.Value)
	case *ast.BoolLit:
		fmt.Printf("%sbool %v\n", pre, n.Value)
	case *ast.CharLit:
		fmt.Printf("%schar %q\n", pre, n.Value)
	case *ast.StringLit:
		fmt.Printf("%sstring %q\n", pre, n.Value)
	case *ast.Ident:
		fmt.Printf("%sident %s\n", pre, n.Name)
	case *ast.Unary:
		fmt.Printf("%sunary !\n", pre)
		printExpr(n.Expr, depth+1)
	case *ast.Binary:
		fmt.Printf("%sbinary %s\n", pre, n.Op)
		printExpr(n.Left, depth+1)
		printExpr(n.Right, depth+1)
	case *ast.Call:
		fmt.Printf("%scall %s\n", pre, n.Callee)
		for _, a := range n.Args {
			printExpr(a, depth+1)
		}
	case *ast.MethodCall:
		fmt.Printf("%smethod .%s\n", pre, n.Method)
		printExpr(n.Receiver, depth+1)
	}
}
