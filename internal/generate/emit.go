package generate

import (
	"fmt"
	"strings"

	"github.com/MineChook/Coal/internal/ast"
	"github.com/MineChook/Coal/internal/report"
	"github.com/MineChook/Coal/internal/typing"
)

// localVar is what the emitter's scope stack remembers about a declared
// variable: the alloca it lives in and its type.
type localVar struct {
	Slot string
	Type typing.NamedType
}

// value is the result of lowering an expression: an IR operand (a
// register name or a literal constant) together with its Coal type. A
// string value's Text is always the SSA register holding the full
// { ptr, i32 } aggregate, never a bare pointer.
type value struct {
	Text string
	Type typing.NamedType
}

// emitter lowers one function's body into a textual LLVM IR string. It
// keeps a per-function SSA register counter and a scope stack of
// declared locals, paralleling the analyzer's own scope stack.
type emitter struct {
	m      *module
	file   string
	table  *typing.Table
	fnName string

	ssa      int
	slotSeen map[string]int
	scopes   []map[string]localVar

	curLabel string
	body     strings.Builder
}

// Emit lowers a type-checked program into a complete LLVM IR text module,
// or returns a diagnostic if lowering hit an internal inconsistency (the
// only way Emit fails: a program that reached here already passed
// analysis, so there are no user-facing errors left to raise).
func Emit(file string, prog *ast.Program, table *typing.Table) (ir string, diag *report.Diagnostic) {
	diag = report.Run(func() {
		m := newModule(file)
		for _, fn := range prog.Decls {
			e := &emitter{
				m:        m,
				file:     file,
				table:    table,
				fnName:   fn.Name,
				slotSeen: make(map[string]int),
				curLabel: "entry",
			}
			e.pushScope()
			e.lowerBlock(fn.Body)
			e.popScope()
			m.funcs = append(m.funcs, e.render())
		}
		ir = m.render()
	})
	return
}

// render wraps the accumulated body in a function definition: entry
// label up front, an unconditional trailing "ret i32 0" closing whatever
// block is still open, since Coal functions have no explicit return
// statement and always report success to their caller.
func (e *emitter) render() string {
	var out strings.Builder
	fmt.Fprintf(&out, "define i32 @%s() {\nentry:\n", e.fnName)
	out.WriteString(e.body.String())
	out.WriteString("  ret i32 0\n}\n")
	return out.String()
}

func (e *emitter) newTemp() string {
	t := fmt.Sprintf("%%t%d", e.ssa)
	e.ssa++
	return t
}

func (e *emitter) write(format string, args ...interface{}) {
	fmt.Fprintf(&e.body, "  "+format+"\n", args...)
}

// openBlock writes a fresh basic-block label. It does not close the
// previous block's terminator itself — every call site is expected to
// have written a br/ret just before calling this.
func (e *emitter) openBlock(label string) {
	fmt.Fprintf(&e.body, "\n%s:\n", label)
	e.curLabel = label
}

func (e *emitter) pushScope() {
	e.scopes = append(e.scopes, make(map[string]localVar))
}

func (e *emitter) popScope() {
	e.scopes = e.scopes[:len(e.scopes)-1]
}

// declareSlot allocates storage for a newly declared local. A name
// already used earlier in this function (legal shadowing in a nested
// scope) gets a numeric suffix so its alloca name does not collide with
// the outer one still live in an enclosing scope — the same
// disambiguation LLVM's own printer performs on a duplicate name.
func (e *emitter) declareSlot(name string, typ typing.NamedType) string {
	n := e.slotSeen[name]
	e.slotSeen[name]++

	slot := "%" + name
	if n > 0 {
		slot = fmt.Sprintf("%%%s.%d", name, n)
	}

	e.scopes[len(e.scopes)-1][name] = localVar{Slot: slot, Type: typ}
	e.write("%s = alloca %s", slot, irType(typ))
	return slot
}

func (e *emitter) lookup(name string) localVar {
	for i := len(e.scopes) - 1; i >= 0; i-- {
		if lv, ok := e.scopes[i][name]; ok {
			return lv
		}
	}
	report.Internal(e.file, nil, "emitter: undeclared local '%s' survived analysis", name)
	return localVar{}
}

func (e *emitter) lowerBlock(b *ast.Block) {
	e.pushScope()
	defer e.popScope()
	for _, s := range b.Stmts {
		e.lowerStmt(s)
	}
}
