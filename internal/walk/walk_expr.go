package walk

import (
	"github.com/MineChook/Coal/internal/ast"
	"github.com/MineChook/Coal/internal/report"
	"github.com/MineChook/Coal/internal/typing"
)

// isPrintable reports whether t is a type print/println accept.
func isPrintable(t typing.NamedType) bool {
	switch t {
	case typing.Int, typing.Float, typing.Bool, typing.Char, typing.String:
		return true
	default:
		return false
	}
}

// walkExpr resolves e's type, records it in the TypeTable, and returns it.
// Every expression node reached during analysis gets an entry, so a
// successfully analyzed program's table always has one for every node.
func (a *Analyzer) walkExpr(e ast.Expr) typing.NamedType {
	typ := a.resolveExpr(e)
	a.table.SetExpr(e, typ)
	return typ
}

func (a *Analyzer) resolveExpr(e ast.Expr) typing.NamedType {
	switch n := e.(type) {
	case *ast.IntLit:
		return typing.Int
	case *ast.FloatLit:
		return typing.Float
	case *ast.BoolLit:
		return typing.Bool
	case *ast.CharLit:
		return typing.Char
	case *ast.StringLit:
		return typing.String
	case *ast.Ident:
		return a.lookup(n.Span(), n.Name).Type
	case *ast.Unary:
		return a.walkUnary(n)
	case *ast.Binary:
		return a.walkBinary(n)
	case *ast.Call:
		return a.walkCall(n)
	case *ast.MethodCall:
		return a.walkMethodCall(n)
	default:
		report.Internal(a.file, spanPtr(e.Span()), "unhandled expression kind %T", e)
		return 0
	}
}

func (a *Analyzer) walkUnary(n *ast.Unary) typing.NamedType {
	operand := a.walkExpr(n.Expr)
	if operand != typing.Bool {
		a.error(n.Span(), report.CodeNotConditionBool, "'!' requires a bool operand, got %s", operand.Name())
	}
	return typing.Bool
}

func (a *Analyzer) walkBinary(n *ast.Binary) typing.NamedType {
	left := a.walkExpr(n.Left)
	right := a.walkExpr(n.Right)

	switch n.Op {
	case ast.And, ast.Or:
		if left != typing.Bool || right != typing.Bool {
			a.error(n.Span(), report.CodeLogicNeedsBool, "'%s' requires bool operands, got %s and %s", n.Op, left.Name(), right.Name())
		}
		return typing.Bool

	case ast.Eq, ast.Ne:
		if left != right {
			a.error(n.Span(), report.CodeCompareTypeMismatch, "cannot compare %s and %s", left.Name(), right.Name())
		}
		return typing.Bool

	case ast.Lt, ast.Le, ast.Gt, ast.Ge:
		if left != right {
			a.error(n.Span(), report.CodeCompareTypeMismatch, "cannot compare %s and %s", left.Name(), right.Name())
		}
		if !left.IsOrdered() {
			a.error(n.Span(), report.CodeRelopTypeInvalid, "'%s' is not defined for %s", n.Op, left.Name())
		}
		return typing.Bool

	case ast.Add:
		if left == typing.String || right == typing.String {
			if left != typing.String || right != typing.String {
				a.error(n.Span(), report.CodeStringsOnlyAdd, "'+' on a string requires both operands to be string")
			}
			return typing.String
		}
		return a.walkArith(n, left, right)

	default: // Sub, Mul, Div, Mod, Pow
		if left == typing.String || right == typing.String {
			a.error(n.Span(), report.CodeStringsOnlyAdd, "strings only support '+'")
		}
		return a.walkArith(n, left, right)
	}
}

func (a *Analyzer) walkArith(n *ast.Binary, left, right typing.NamedType) typing.NamedType {
	if left != right {
		a.error(n.Span(), report.CodeTypeMismatch, "'%s' requires matching operand types, got %s and %s", n.Op, left.Name(), right.Name())
	}
	if !left.IsNumeric() {
		a.error(n.Span(), report.CodeTypeMismatch, "'%s' is not defined for %s", n.Op, left.Name())
	}
	if n.Op == ast.Mod && left != typing.Int {
		a.error(n.Span(), report.CodeTypeMismatch, "'%%' requires int operands, got %s", left.Name())
	}
	return left
}

func (a *Analyzer) walkCall(n *ast.Call) typing.NamedType {
	if n.Callee != "print" && n.Callee != "println" {
		a.error(n.Span(), report.CodeUnknownFunction, "unknown function '%s'", n.Callee)
	}

	if len(n.Args) != 1 {
		a.error(n.Span(), report.CodeArityMismatch, "'%s' takes exactly one argument, got %d", n.Callee, len(n.Args))
	}

	argType := a.walkExpr(n.Args[0])
	if !isPrintable(argType) {
		a.error(n.Span(), report.CodeUnsupportedPrint, "'%s' does not support printing a %s", n.Callee, argType.Name())
	}

	return typing.Int
}

func (a *Analyzer) walkMethodCall(n *ast.MethodCall) typing.NamedType {
	recvType := a.walkExpr(n.Receiver)

	if len(n.Args) != 0 {
		a.error(n.Span(), report.CodeArityMismatch, "method '%s' takes no arguments, got %d", n.Method, len(n.Args))
	}

	switch n.Method {
	case "toString":
		return typing.String
	case "toInt":
		return typing.Int
	case "toFloat":
		return typing.Float
	default:
		a.error(n.Span(), report.CodeUnknownMethod, "unknown method '%s' on %s", n.Method, recvType.Name())
		return 0
	}
}
