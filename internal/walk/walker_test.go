package walk

import (
	"testing"

	"github.com/MineChook/Coal/internal/report"
	"github.com/MineChook/Coal/internal/syntax"
	"github.com/MineChook/Coal/internal/typing"
)

// mustAnalyze parses and analyzes src, failing the test on either error.
func mustAnalyze(t *testing.T, src string) *typing.Table {
	t.Helper()
	prog, diag := syntax.Parse("test.coal", src)
	if diag != nil {
		t.Fatalf("unexpected parse error: %s", diag.Message)
	}
	table, diag := Analyze("test.coal", prog)
	if diag != nil {
		t.Fatalf("unexpected analysis error: %s", diag.Message)
	}
	return table
}

func analyzeErr(t *testing.T, src string) *report.Diagnostic {
	t.Helper()
	prog, diag := syntax.Parse("test.coal", src)
	if diag != nil {
		t.Fatalf("unexpected parse error: %s", diag.Message)
	}
	_, diag = Analyze("test.coal", prog)
	if diag == nil {
		t.Fatal("expected an analysis error, got none")
	}
	return diag
}

func TestAnalyzeValidProgram(t *testing.T) {
	table := mustAnalyze(t, `fn main() {
		var x: int = 1
		var y = x + 2
		println(y)
	}`)

	typ, ok := table.Local("main", "y")
	if !ok || typ != typing.Int {
		t.Fatalf("got %v, %v", typ, ok)
	}
}

func TestAnalyzeTypeMismatchOnDecl(t *testing.T) {
	diag := analyzeErr(t, `fn main() { var x: int = "hi" }`)
	if diag.Code != report.CodeTypeMismatch {
		t.Fatalf("got code %s", diag.Code)
	}
}

func TestAnalyzeUndefinedVariable(t *testing.T) {
	diag := analyzeErr(t, `fn main() { println(z) }`)
	if diag.Code != report.CodeUndefinedVariable {
		t.Fatalf("got code %s", diag.Code)
	}
}

func TestAnalyzeAssignToConst(t *testing.T) {
	diag := analyzeErr(t, `fn main() { const x = 1 x = 2 }`)
	if diag.Code != report.CodeAssignToConst {
		t.Fatalf("got code %s", diag.Code)
	}
}

func TestAnalyzeConstNeedsInit(t *testing.T) {
	diag := analyzeErr(t, `fn main() { const x: int }`)
	if diag.Code != report.CodeConstNeedsInit {
		t.Fatalf("got code %s", diag.Code)
	}
}

func TestAnalyzeStringConcatOnly(t *testing.T) {
	diag := analyzeErr(t, `fn main() { var x = "a" - "b" }`)
	if diag.Code != report.CodeStringsOnlyAdd {
		t.Fatalf("got code %s", diag.Code)
	}
}

func TestAnalyzeStringConcatAllowed(t *testing.T) {
	table := mustAnalyze(t, `fn main() { var x = "a" + "b" }`)
	typ, ok := table.Local("main", "x")
	if !ok || typ != typing.String {
		t.Fatalf("got %v, %v", typ, ok)
	}
}

func TestAnalyzeShadowingInNestedScope(t *testing.T) {
	table := mustAnalyze(t, `fn main() {
		var x = 1
		if (true) {
			var x = "inner"
			println(x)
		}
		println(x)
	}`)
	// The TypeTable's (fn, var) slot records the last declaration of x seen,
	// which is the inner, shadowing one.
	typ, ok := table.Local("main", "x")
	if !ok || typ != typing.String {
		t.Fatalf("got %v, %v", typ, ok)
	}
}

func TestAnalyzeWhileConditionMustBeBool(t *testing.T) {
	diag := analyzeErr(t, `fn main() { while (1) { } }`)
	if diag.Code != report.CodeNonBoolCondition {
		t.Fatalf("got code %s", diag.Code)
	}
}

func TestAnalyzeRelationalRequiresOrderedType(t *testing.T) {
	diag := analyzeErr(t, `fn main() { var x = true < false }`)
	if diag.Code != report.CodeRelopTypeInvalid {
		t.Fatalf("got code %s", diag.Code)
	}
}

func TestAnalyzeNestedShortCircuit(t *testing.T) {
	table := mustAnalyze(t, `fn main() {
		var i = 0
		while (i < 10 && (i == 0 || i == 5)) {
			i += 1
		}
	}`)
	typ, ok := table.Local("main", "i")
	if !ok || typ != typing.Int {
		t.Fatalf("got %v, %v", typ, ok)
	}
}

func TestAnalyzeMethodCallChain(t *testing.T) {
	table := mustAnalyze(t, `fn main() {
		var x = 5
		var s = x.toString().toInt().toFloat()
		println(s)
	}`)
	typ, ok := table.Local("main", "s")
	if !ok || typ != typing.Float {
		t.Fatalf("got %v, %v", typ, ok)
	}
}
