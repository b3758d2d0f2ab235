// Package generate lowers a type-checked Coal AST to textual LLVM IR. It is
// a stateful text builder (a module, a per-function register counter, a
// block cursor, local-scope maps) that writes IR as concatenated text
// rather than building an LLVM object model or binding to the real LLVM C
// API: see DESIGN.md for why github.com/llir/llvm was not wired in here.
package generate

import "github.com/MineChook/Coal/internal/typing"

// irType returns the LLVM IR spelling of a Coal type.
func irType(t typing.NamedType) string {
	switch t {
	case typing.Int:
		return "i32"
	case typing.Float:
		return "double"
	case typing.Bool:
		return "i1"
	case typing.Char:
		return "i8"
	case typing.String:
		return "{ ptr, i32 }"
	default:
		return "i32"
	}
}

// zeroValue returns the literal zero-initializer text for t, used both for
// uninitialized var declarations and for the debug-mirror globals'
// zero-initializer.
func zeroValue(t typing.NamedType) string {
	switch t {
	case typing.Int:
		return "0"
	case typing.Float:
		return "0.0"
	case typing.Bool:
		return "0"
	case typing.Char:
		return "0"
	case typing.String:
		return "{ ptr null, i32 0 }"
	default:
		return "0"
	}
}
