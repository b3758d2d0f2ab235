package generate

import (
	"github.com/MineChook/Coal/internal/ast"
	"github.com/MineChook/Coal/internal/report"
	"github.com/MineChook/Coal/internal/typing"
)

// lowerCall lowers a print/println builtin call to a printf invocation.
// The analyzer has already checked arity and argument printability, so
// this only has to pick the right format string and widen narrow
// argument types the way C varargs require.
func (e *emitter) lowerCall(n *ast.Call) value {
	arg := e.lowerExpr(n.Args[0])
	newline := n.Callee == "println"

	switch arg.Type {
	case typing.Int:
		e.printf(e.formatConst("%d", newline), "i32", arg.Text)
	case typing.Float:
		e.printf(e.formatConst("%f", newline), "double", arg.Text)
	case typing.Char, typing.Bool:
		e.printf(e.formatConst("%d", newline), "i32", e.widenToI32(arg))
	case typing.String:
		e.printf(e.formatConst("%s", newline), "ptr", e.stringPtr(arg))
	default:
		report.Internal(e.file, nil, "emitter: unprintable type reached lowerCall")
	}

	return value{Text: "0", Type: typing.Int}
}

// formatConst interns base (optionally with a trailing newline for
// println) and returns a ready-to-call ptr operand.
func (e *emitter) formatConst(base string, newline bool) string {
	s := base
	if newline {
		s += "\n"
	}
	entry := e.m.pool.intern(s)
	ptr := e.newTemp()
	e.write("%s = getelementptr inbounds [%d x i8], ptr %s, i32 0, i32 0", ptr, entry.Size, entry.Global)
	return ptr
}

func (e *emitter) printf(fmtPtr, argTy, argText string) {
	e.write("call i32 (ptr, ...) @printf(ptr %s, %s %s)", fmtPtr, argTy, argText)
}
