// Package typing defines Coal's closed set of named types and the
// TypeTable the analyzer produces. Coal has five primitive types with no
// unification needed.
package typing

// NamedType is one of Coal's five built-in, unparameterized types.
type NamedType int

const (
	Int NamedType = iota
	Float
	Bool
	Char
	String
)

// Name returns the source-level spelling of t, used both for annotation
// matching and diagnostic messages.
func (t NamedType) Name() string {
	switch t {
	case Int:
		return "int"
	case Float:
		return "float"
	case Bool:
		return "bool"
	case Char:
		return "char"
	case String:
		return "string"
	default:
		return "?"
	}
}

// FromName resolves a type annotation's spelling to a NamedType. ok is
// false for any identifier that is not one of Coal's five built-in type
// names.
func FromName(name string) (NamedType, bool) {
	switch name {
	case "int":
		return Int, true
	case "float":
		return Float, true
	case "bool":
		return Bool, true
	case "char":
		return Char, true
	case "string":
		return String, true
	default:
		return 0, false
	}
}

// IsNumeric reports whether t is int or float.
func (t NamedType) IsNumeric() bool {
	return t == Int || t == Float
}

// IsOrdered reports whether t supports <, <=, >, >=.
func (t NamedType) IsOrdered() bool {
	return t == Int || t == Float || t == Char
}
