package generate

import (
	"strings"
	"testing"

	"github.com/MineChook/Coal/internal/syntax"
	"github.com/MineChook/Coal/internal/walk"
)

// compileToIR runs the full pipeline and fails the test on any stage
// error, returning the emitted IR text.
func compileToIR(t *testing.T, src string) string {
	t.Helper()
	prog, diag := syntax.Parse("test.coal", src)
	if diag != nil {
		t.Fatalf("parse error: %s", diag.Message)
	}
	table, diag := walk.Analyze("test.coal", prog)
	if diag != nil {
		t.Fatalf("analysis error: %s", diag.Message)
	}
	ir, diag := Emit("test.coal", prog, table)
	if diag != nil {
		t.Fatalf("emit error: %s", diag.Message)
	}
	return ir
}

func TestEmitDeclaresExternsOnce(t *testing.T) {
	ir := compileToIR(t, `fn main() { println(1) }`)
	for _, want := range []string{
		"declare i32 @printf(ptr, ...)",
		"declare i32 @snprintf(ptr, i64, ptr, ...)",
		"declare ptr @malloc(i64)",
		"declare double @llvm.pow.f64(double, double)",
	} {
		if strings.Count(ir, want) != 1 {
			t.Errorf("expected exactly one %q, got %d", want, strings.Count(ir, want))
		}
	}
}

func TestEmitFunctionShape(t *testing.T) {
	ir := compileToIR(t, `fn main() { }`)
	if !strings.Contains(ir, "define i32 @main() {") {
		t.Fatalf("missing function header:\n%s", ir)
	}
	if !strings.Contains(ir, "entry:") {
		t.Fatalf("missing entry label:\n%s", ir)
	}
	if !strings.Contains(ir, "ret i32 0") {
		t.Fatalf("missing trailing return:\n%s", ir)
	}
}

func TestEmitVarDeclStoresAndMirrors(t *testing.T) {
	ir := compileToIR(t, `fn main() { var x: int = 42 }`)
	if !strings.Contains(ir, "%x = alloca i32") {
		t.Fatalf("missing alloca:\n%s", ir)
	}
	if !strings.Contains(ir, "store i32 42, ptr %x") {
		t.Fatalf("missing store to local:\n%s", ir)
	}
	if !strings.Contains(ir, "@__dbg_main_x = global i32 0") {
		t.Fatalf("missing debug mirror global:\n%s", ir)
	}
	if !strings.Contains(ir, "store i32 42, ptr @__dbg_main_x") {
		t.Fatalf("missing debug mirror store:\n%s", ir)
	}
}

func TestEmitStringLiteralInternsPoolEntry(t *testing.T) {
	ir := compileToIR(t, `fn main() { var s = "hi" }`)
	if !strings.Contains(ir, `@.str.0 = private unnamed_addr constant [3 x i8] c"hi\00"`) {
		t.Fatalf("missing interned string global:\n%s", ir)
	}
}

func TestEmitDuplicateStringLiteralsShareOnePoolEntry(t *testing.T) {
	ir := compileToIR(t, `fn main() { var a = "x" var b = "x" }`)
	if strings.Count(ir, `constant [2 x i8] c"x\00"`) != 1 {
		t.Fatalf("expected the duplicate literal to be deduplicated:\n%s", ir)
	}
}

func TestEmitIfElseHasThenElseEndBlocks(t *testing.T) {
	ir := compileToIR(t, `fn main() {
		if (true) { println(1) } else { println(2) }
	}`)
	for _, want := range []string{"if.then", "if.else", "if.end"} {
		if !strings.Contains(ir, want) {
			t.Errorf("missing block labeled %q:\n%s", want, ir)
		}
	}
}

func TestEmitWhileHasHeaderBodyEndBlocks(t *testing.T) {
	ir := compileToIR(t, `fn main() {
		var i = 0
		while (i < 3) { i += 1 }
	}`)
	for _, want := range []string{"while.header", "while.body", "while.end"} {
		if !strings.Contains(ir, want) {
			t.Errorf("missing block labeled %q:\n%s", want, ir)
		}
	}
	// The header must be reachable from both the preheader and the body's
	// backedge, so it is branched to twice.
	if strings.Count(ir, "br label %while.header0") != 2 {
		t.Errorf("expected two branches into the loop header:\n%s", ir)
	}
}

func TestEmitShortCircuitAndUsesPhi(t *testing.T) {
	ir := compileToIR(t, `fn main() { var x = true && false }`)
	if !strings.Contains(ir, "phi i1") {
		t.Fatalf("missing phi join for short-circuit '&&':\n%s", ir)
	}
	if !strings.Contains(ir, "sc.rhs0") {
		t.Fatalf("missing short-circuit rhs block:\n%s", ir)
	}
}

func TestEmitIntPowUsesPowIntrinsicAndTruncates(t *testing.T) {
	ir := compileToIR(t, `fn main() { var x = 2 ^ 10 }`)
	if !strings.Contains(ir, "call double @llvm.pow.f64") {
		t.Fatalf("missing pow intrinsic call:\n%s", ir)
	}
	if !strings.Contains(ir, "fptosi double") {
		t.Fatalf("missing truncation back to int:\n%s", ir)
	}
}

func TestEmitStringConcatUsesMallocAndMemcpy(t *testing.T) {
	ir := compileToIR(t, `fn main() { var s = "a" + "b" }`)
	if !strings.Contains(ir, "call ptr @malloc(") {
		t.Fatalf("missing malloc call:\n%s", ir)
	}
	if strings.Count(ir, "call ptr @memcpy(") != 2 {
		t.Fatalf("expected two memcpy calls (one per operand):\n%s", ir)
	}
}

func TestEmitShadowedLocalsGetDistinctSlots(t *testing.T) {
	ir := compileToIR(t, `fn main() {
		var x = 1
		if (true) {
			var x = 2
			println(x)
		}
		println(x)
	}`)
	if !strings.Contains(ir, "%x = alloca i32") {
		t.Fatalf("missing outer alloca:\n%s", ir)
	}
	if !strings.Contains(ir, "%x.1 = alloca i32") {
		t.Fatalf("missing disambiguated inner alloca:\n%s", ir)
	}
}

// TestEmitShadowedLocalsWithDifferentTypesKeepOwnAllocaType guards against
// a shadow that changes the variable's declared type corrupting the outer
// declaration's alloca — each VarDecl's type must come from that specific
// declaration, not from whatever type was last seen for the name.
func TestEmitShadowedLocalsWithDifferentTypesKeepOwnAllocaType(t *testing.T) {
	ir := compileToIR(t, `fn main() {
		var x: int = 1
		if (true) {
			var x: float = 2.0
			println(x)
		}
		println(x)
	}`)
	if !strings.Contains(ir, "%x = alloca i32") {
		t.Fatalf("expected the outer declaration to keep its own int alloca:\n%s", ir)
	}
	if !strings.Contains(ir, "%x.1 = alloca double") {
		t.Fatalf("expected the inner shadow to get its own float alloca:\n%s", ir)
	}
	if strings.Contains(ir, "%x = alloca double") {
		t.Fatalf("outer alloca must not be corrupted to the shadow's type:\n%s", ir)
	}
}

// TestEmitToStringUsesStackBufferAndSnprintf covers the int.toString()
// lowering: a fixed 64-byte stack buffer, not a heap allocation, formatted
// with snprintf.
func TestEmitToStringUsesStackBufferAndSnprintf(t *testing.T) {
	ir := compileToIR(t, `fn main() {
		var s: string = (3).toString()
		println(s)
	}`)
	if !strings.Contains(ir, "= alloca [64 x i8]") {
		t.Fatalf("expected a 64-byte stack buffer:\n%s", ir)
	}
	if !strings.Contains(ir, "call i32 (ptr, i64, ptr, ...) @snprintf(") {
		t.Fatalf("expected an snprintf call:\n%s", ir)
	}
	if strings.Contains(ir, "call ptr @malloc(i64 64)") || strings.Contains(ir, "call ptr @malloc(i64 16)") {
		t.Fatalf("toString must not heap-allocate its buffer:\n%s", ir)
	}
}

// TestEmitPrintCharAndBoolUseIntegerFormat covers print/println lowering
// for char and bool: both widen to i32 and print via "%d", never "%c" or
// "%s".
func TestEmitPrintCharAndBoolUseIntegerFormat(t *testing.T) {
	ir := compileToIR(t, `fn main() {
		var c: char = 'a'
		var b: bool = true
		println(c)
		println(b)
	}`)
	if !strings.Contains(ir, "zext i1") {
		t.Fatalf("expected bool to widen via zext i1 -> i32:\n%s", ir)
	}
	if !strings.Contains(ir, "zext i8") {
		t.Fatalf("expected char to widen via zext i8 -> i32:\n%s", ir)
	}
	if strings.Contains(ir, `"%c`) || strings.Contains(ir, "%c\\00") {
		t.Fatalf("char/bool print must not use %%c:\n%s", ir)
	}
	if strings.Contains(ir, "select i1") {
		t.Fatalf("bool print must not go through a select/string path:\n%s", ir)
	}
}

func TestEmitModuleHeaderHasSourceFilename(t *testing.T) {
	ir := compileToIR(t, `fn main() { println(1) }`)
	if !strings.Contains(ir, `source_filename = "test.coal"`) {
		t.Fatalf("missing source_filename in module header:\n%s", ir)
	}
}
