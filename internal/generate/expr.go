package generate

import (
	"strconv"

	"github.com/MineChook/Coal/internal/ast"
	"github.com/MineChook/Coal/internal/report"
	"github.com/MineChook/Coal/internal/typing"
)

func (e *emitter) lowerExpr(expr ast.Expr) value {
	switch n := expr.(type) {
	case *ast.IntLit:
		return value{Text: strconv.FormatInt(n.Value, 10), Type: typing.Int}
	case *ast.FloatLit:
		return value{Text: formatFloat(n.Value), Type: typing.Float}
	case *ast.BoolLit:
		if n.Value {
			return value{Text: "1", Type: typing.Bool}
		}
		return value{Text: "0", Type: typing.Bool}
	case *ast.CharLit:
		return value{Text: strconv.Itoa(int(n.Value)), Type: typing.Char}
	case *ast.StringLit:
		return e.lowerStringLit(n.Value)
	case *ast.Ident:
		return e.lowerIdent(n)
	case *ast.Unary:
		return e.lowerUnary(n)
	case *ast.Binary:
		return e.lowerBinary(n)
	case *ast.Call:
		return e.lowerCall(n)
	case *ast.MethodCall:
		return e.lowerMethodCall(n)
	default:
		report.Internal(e.file, nil, "emitter: unhandled expression kind %T", expr)
		return value{}
	}
}

// formatFloat renders a float64 as an LLVM double literal, which must
// always carry a decimal point or exponent.
func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	for _, c := range s {
		if c == '.' || c == 'e' || c == 'E' {
			return s
		}
	}
	return s + ".0"
}

func (e *emitter) lowerIdent(n *ast.Ident) value {
	lv := e.lookup(n.Name)
	t := e.newTemp()
	e.write("%s = load %s, ptr %s", t, irType(lv.Type), lv.Slot)
	return value{Text: t, Type: lv.Type}
}

// lowerStringLit interns the literal's bytes and packs a pointer-into-pool
// plus its UTF-8 length into the { ptr, i32 } aggregate every string value
// is carried as.
func (e *emitter) lowerStringLit(s string) value {
	entry := e.m.pool.intern(s)
	ptr := e.newTemp()
	e.write("%s = getelementptr inbounds [%d x i8], ptr %s, i32 0, i32 0", ptr, entry.Size, entry.Global)
	return e.buildStringAggregate(ptr, strconv.Itoa(len(s)))
}

// buildStringAggregate packs a pointer operand and a length operand
// (already-formatted IR text) into a fresh { ptr, i32 } SSA value via two
// insertvalue instructions from undef.
func (e *emitter) buildStringAggregate(ptr, length string) value {
	a0 := e.newTemp()
	e.write("%s = insertvalue { ptr, i32 } undef, ptr %s, 0", a0, ptr)
	a1 := e.newTemp()
	e.write("%s = insertvalue { ptr, i32 } %s, i32 %s, 1", a1, a0, length)
	return value{Text: a1, Type: typing.String}
}

// stringPtr and stringLen extract a string value's two fields back out of
// its aggregate register via extractvalue.
func (e *emitter) stringPtr(v value) string {
	t := e.newTemp()
	e.write("%s = extractvalue { ptr, i32 } %s, 0", t, v.Text)
	return t
}

func (e *emitter) stringLen(v value) string {
	t := e.newTemp()
	e.write("%s = extractvalue { ptr, i32 } %s, 1", t, v.Text)
	return t
}

func (e *emitter) lowerUnary(n *ast.Unary) value {
	operand := e.lowerExpr(n.Expr)
	t := e.newTemp()
	e.write("%s = xor i1 %s, true", t, operand.Text)
	return value{Text: t, Type: typing.Bool}
}

// widenToI32 zero-extends a bool or char operand to i32, for contexts that
// operate at integer width regardless of the narrower source type: printf
// formatting, toString's snprintf call, and char comparisons.
func (e *emitter) widenToI32(v value) string {
	if v.Type == typing.Int {
		return v.Text
	}
	t := e.newTemp()
	e.write("%s = zext %s %s to i32", t, irType(v.Type), v.Text)
	return t
}

func (e *emitter) lowerBinary(n *ast.Binary) value {
	switch n.Op {
	case ast.And, ast.Or:
		return e.lowerShortCircuit(n)
	case ast.Eq, ast.Ne, ast.Lt, ast.Le, ast.Gt, ast.Ge:
		return e.lowerCompare(n)
	case ast.Add:
		lt, _ := e.table.Expr(n.Left)
		if lt == typing.String {
			return e.lowerStringConcat(n)
		}
		return e.lowerArith(n)
	default:
		return e.lowerArith(n)
	}
}

func icmpOp(op ast.BinOp, signed bool) string {
	switch op {
	case ast.Eq:
		return "eq"
	case ast.Ne:
		return "ne"
	case ast.Lt:
		if signed {
			return "slt"
		}
		return "ult"
	case ast.Le:
		if signed {
			return "sle"
		}
		return "ule"
	case ast.Gt:
		if signed {
			return "sgt"
		}
		return "ugt"
	case ast.Ge:
		if signed {
			return "sge"
		}
		return "uge"
	}
	return "eq"
}

func fcmpOp(op ast.BinOp) string {
	switch op {
	case ast.Eq:
		return "oeq"
	case ast.Ne:
		return "one"
	case ast.Lt:
		return "olt"
	case ast.Le:
		return "ole"
	case ast.Gt:
		return "ogt"
	case ast.Ge:
		return "oge"
	}
	return "oeq"
}

// lowerCompare lowers ==, !=, <, <=, >, >=. Strings compare by identity of
// their pointer field. Everything else compares by
// value: icmp for int/bool/char (char widened to i32 first), fcmp for
// float.
func (e *emitter) lowerCompare(n *ast.Binary) value {
	lt, _ := e.table.Expr(n.Left)

	left := e.lowerExpr(n.Left)
	right := e.lowerExpr(n.Right)

	t := e.newTemp()
	switch lt {
	case typing.Float:
		e.write("%s = fcmp %s double %s, %s", t, fcmpOp(n.Op), left.Text, right.Text)
	case typing.String:
		lp, rp := e.stringPtr(left), e.stringPtr(right)
		e.write("%s = icmp %s ptr %s, %s", t, icmpOp(n.Op, false), lp, rp)
	case typing.Char:
		lw, rw := e.widenToI32(left), e.widenToI32(right)
		e.write("%s = icmp %s i32 %s, %s", t, icmpOp(n.Op, true), lw, rw)
	case typing.Bool:
		e.write("%s = icmp %s i1 %s, %s", t, icmpOp(n.Op, false), left.Text, right.Text)
	default: // Int
		e.write("%s = icmp %s i32 %s, %s", t, icmpOp(n.Op, true), left.Text, right.Text)
	}
	return value{Text: t, Type: typing.Bool}
}

func (e *emitter) lowerArith(n *ast.Binary) value {
	left := e.lowerExpr(n.Left)
	right := e.lowerExpr(n.Right)

	if left.Type == typing.Float {
		return e.lowerFloatArith(n.Op, left, right)
	}
	return e.lowerIntArith(n.Op, left, right)
}

func (e *emitter) lowerIntArith(op ast.BinOp, left, right value) value {
	if op == ast.Pow {
		return e.lowerIntPow(left, right)
	}

	var instr string
	switch op {
	case ast.Add:
		instr = "add"
	case ast.Sub:
		instr = "sub"
	case ast.Mul:
		instr = "mul"
	case ast.Div:
		instr = "sdiv"
	case ast.Mod:
		instr = "srem"
	}
	t := e.newTemp()
	e.write("%s = %s i32 %s, %s", t, instr, left.Text, right.Text)
	return value{Text: t, Type: typing.Int}
}

func (e *emitter) lowerFloatArith(op ast.BinOp, left, right value) value {
	if op == ast.Pow {
		return e.lowerFloatPow(left, right)
	}

	var instr string
	switch op {
	case ast.Add:
		instr = "fadd"
	case ast.Sub:
		instr = "fsub"
	case ast.Mul:
		instr = "fmul"
	case ast.Div:
		instr = "fdiv"
	}
	t := e.newTemp()
	e.write("%s = %s double %s, %s", t, instr, left.Text, right.Text)
	return value{Text: t, Type: typing.Float}
}

// lowerIntPow widens both operands to double, calls the pow intrinsic,
// and truncates the result back to i32 — int has no native exponentiation
// instruction.
func (e *emitter) lowerIntPow(left, right value) value {
	lf := e.newTemp()
	e.write("%s = sitofp i32 %s to double", lf, left.Text)
	rf := e.newTemp()
	e.write("%s = sitofp i32 %s to double", rf, right.Text)
	res := e.newTemp()
	e.write("%s = call double @llvm.pow.f64(double %s, double %s)", res, lf, rf)
	t := e.newTemp()
	e.write("%s = fptosi double %s to i32", t, res)
	return value{Text: t, Type: typing.Int}
}

func (e *emitter) lowerFloatPow(left, right value) value {
	t := e.newTemp()
	e.write("%s = call double @llvm.pow.f64(double %s, double %s)", t, left.Text, right.Text)
	return value{Text: t, Type: typing.Float}
}

// lowerStringConcat allocates a new buffer sized to hold both operands,
// copies each one in with memcpy, and packs the result into a fresh
// string aggregate. The allocation is never freed — Coal
// programs are short-lived single-pass translations with no notion of
// string lifetime, so leaking the concatenation buffer until process exit
// is the simplest faithful lowering.
func (e *emitter) lowerStringConcat(n *ast.Binary) value {
	left := e.lowerExpr(n.Left)
	right := e.lowerExpr(n.Right)

	lp, ll := e.stringPtr(left), e.stringLen(left)
	rp, rl := e.stringPtr(right), e.stringLen(right)

	totalLen := e.newTemp()
	e.write("%s = add i32 %s, %s", totalLen, ll, rl)
	allocLen := e.newTemp()
	e.write("%s = add i32 %s, 1", allocLen, totalLen)
	allocLen64 := e.newTemp()
	e.write("%s = zext i32 %s to i64", allocLen64, allocLen)

	buf := e.newTemp()
	e.write("%s = call ptr @malloc(i64 %s)", buf, allocLen64)

	ll64 := e.newTemp()
	e.write("%s = zext i32 %s to i64", ll64, ll)
	e.write("call ptr @memcpy(ptr %s, ptr %s, i64 %s)", buf, lp, ll64)

	tail := e.newTemp()
	e.write("%s = getelementptr inbounds i8, ptr %s, i32 %s", tail, buf, ll)
	rl64 := e.newTemp()
	e.write("%s = zext i32 %s to i64", rl64, rl)
	e.write("call ptr @memcpy(ptr %s, ptr %s, i64 %s)", tail, rp, rl64)

	nulPos := e.newTemp()
	e.write("%s = getelementptr inbounds i8, ptr %s, i32 %s", nulPos, buf, totalLen)
	e.write("store i8 0, ptr %s", nulPos)

	return e.buildStringAggregate(buf, totalLen)
}
