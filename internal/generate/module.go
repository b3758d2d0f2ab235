package generate

import "fmt"

// externs is the fixed set of C runtime and LLVM intrinsic declarations
// every Coal module needs: printf/println formatting, snprintf for
// toString, malloc/memcpy for string concatenation, strtol/strtod for
// toInt/toFloat, and the pow intrinsic for '^'.
const externs = `declare i32 @printf(ptr, ...)
declare i32 @snprintf(ptr, i64, ptr, ...)
declare ptr @malloc(i64)
declare ptr @memcpy(ptr, ptr, i64)
declare i64 @strtol(ptr, ptr, i32)
declare double @strtod(ptr, ptr)
declare double @llvm.pow.f64(double, double)
`

// module accumulates everything Emit needs to render one IR file: the
// shared string pool, the debug-mirror globals, the rendered function
// bodies, and the label counter shared across all functions.
type module struct {
	file     string
	pool     *stringPool
	labelNum int
	dbgSeen  map[string]bool
	dbgDecls []string
	funcs    []string
}

func newModule(file string) *module {
	return &module{
		file:    file,
		pool:    newStringPool(),
		dbgSeen: make(map[string]bool),
	}
}

// label returns a fresh, module-wide unique basic-block label built from
// prefix, which is at least as strong as the required per-function
// uniqueness.
func (m *module) label(prefix string) string {
	n := m.labelNum
	m.labelNum++
	return fmt.Sprintf("%s%d", prefix, n)
}

// dbgGlobal returns the name of the debug-mirror global for (fn, name),
// declaring it the first time this pair is requested. The mirror is keyed
// purely by (fn, name), so a variable shadowed by an inner redeclaration
// of the same name shares one mirror with the outer one, matching the
// TypeTable's own (fn, name) -> type granularity.
func (m *module) dbgGlobal(fn, name string, typ string, zero string) string {
	key := fn + "/" + name
	global := fmt.Sprintf("@__dbg_%s_%s", fn, name)
	if m.dbgSeen[key] {
		return global
	}
	m.dbgSeen[key] = true
	m.dbgDecls = append(m.dbgDecls, fmt.Sprintf("%s = global %s %s\n", global, typ, zero))
	return global
}

// render assembles the final IR text: header, externs, string pool,
// debug-mirror globals, then every function in declaration order.
func (m *module) render() string {
	out := fmt.Sprintf("; ModuleID = '%s'\nsource_filename = %q\n\n", m.file, m.file)
	out += externs
	out += "\n"
	out += m.pool.globals()
	if len(m.dbgDecls) > 0 {
		out += "\n"
		for _, d := range m.dbgDecls {
			out += d
		}
	}
	out += "\n"
	for _, f := range m.funcs {
		out += f
		out += "\n"
	}
	return out
}
