package generate

import (
	"github.com/MineChook/Coal/internal/ast"
	"github.com/MineChook/Coal/internal/report"
	"github.com/MineChook/Coal/internal/typing"
)

func (e *emitter) lowerMethodCall(n *ast.MethodCall) value {
	recv := e.lowerExpr(n.Receiver)
	switch n.Method {
	case "toString":
		return e.lowerToString(recv)
	case "toInt":
		return e.lowerToInt(recv)
	case "toFloat":
		return e.lowerToFloat(recv)
	default:
		report.Internal(e.file, nil, "emitter: unknown method '%s' reached lowerMethodCall", n.Method)
		return value{}
	}
}

// toStringBufSize is the fixed size of the stack buffer every toString
// conversion formats into, regardless of receiver type.
const toStringBufSize = 64

// snprintfToString formats v into a 64-byte stack buffer using fmtLiteral,
// returning the resulting string value. snprintf's return value (the
// number of bytes written, excluding the NUL) becomes the string's length
// field directly.
func (e *emitter) snprintfToString(fmtLiteral string, argTy, argText string) value {
	entry := e.m.pool.intern(fmtLiteral)
	fmtPtr := e.newTemp()
	e.write("%s = getelementptr inbounds [%d x i8], ptr %s, i32 0, i32 0", fmtPtr, entry.Size, entry.Global)

	buf := e.newTemp()
	e.write("%s = alloca [%d x i8]", buf, toStringBufSize)
	bufPtr := e.newTemp()
	e.write("%s = getelementptr inbounds [%d x i8], ptr %s, i32 0, i32 0", bufPtr, toStringBufSize, buf)

	lenVal := e.newTemp()
	e.write("%s = call i32 (ptr, i64, ptr, ...) @snprintf(ptr %s, i64 %d, ptr %s, %s %s)",
		lenVal, bufPtr, toStringBufSize, fmtPtr, argTy, argText)

	return e.buildStringAggregate(bufPtr, lenVal)
}

func (e *emitter) lowerToString(recv value) value {
	switch recv.Type {
	case typing.String:
		return recv
	case typing.Bool, typing.Char:
		return e.snprintfToString("%d", "i32", e.widenToI32(recv))
	case typing.Int:
		return e.snprintfToString("%d", "i32", recv.Text)
	case typing.Float:
		return e.snprintfToString("%f", "double", recv.Text)
	default:
		report.Internal(e.file, nil, "emitter: unhandled receiver type in toString")
		return value{}
	}
}

func (e *emitter) lowerToInt(recv value) value {
	switch recv.Type {
	case typing.Int:
		return recv
	case typing.Float:
		t := e.newTemp()
		e.write("%s = fptosi double %s to i32", t, recv.Text)
		return value{Text: t, Type: typing.Int}
	case typing.Char:
		t := e.newTemp()
		e.write("%s = zext i8 %s to i32", t, recv.Text)
		return value{Text: t, Type: typing.Int}
	case typing.Bool:
		t := e.newTemp()
		e.write("%s = zext i1 %s to i32", t, recv.Text)
		return value{Text: t, Type: typing.Int}
	case typing.String:
		ptr := e.stringPtr(recv)
		wide := e.newTemp()
		e.write("%s = call i64 @strtol(ptr %s, ptr null, i32 10)", wide, ptr)
		t := e.newTemp()
		e.write("%s = trunc i64 %s to i32", t, wide)
		return value{Text: t, Type: typing.Int}
	default:
		report.Internal(e.file, nil, "emitter: unhandled receiver type in toInt")
		return value{}
	}
}

func (e *emitter) lowerToFloat(recv value) value {
	switch recv.Type {
	case typing.Float:
		return recv
	case typing.Int:
		t := e.newTemp()
		e.write("%s = sitofp i32 %s to double", t, recv.Text)
		return value{Text: t, Type: typing.Float}
	case typing.Char:
		wide := e.newTemp()
		e.write("%s = zext i8 %s to i32", wide, recv.Text)
		t := e.newTemp()
		e.write("%s = sitofp i32 %s to double", t, wide)
		return value{Text: t, Type: typing.Float}
	case typing.Bool:
		wide := e.newTemp()
		e.write("%s = zext i1 %s to i32", wide, recv.Text)
		t := e.newTemp()
		e.write("%s = sitofp i32 %s to double", t, wide)
		return value{Text: t, Type: typing.Float}
	case typing.String:
		ptr := e.stringPtr(recv)
		t := e.newTemp()
		e.write("%s = call double @strtod(ptr %s, ptr null)", t, ptr)
		return value{Text: t, Type: typing.Float}
	default:
		report.Internal(e.file, nil, "emitter: unhandled receiver type in toFloat")
		return value{}
	}
}
