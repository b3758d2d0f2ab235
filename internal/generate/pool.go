package generate

import "fmt"

// poolEntry is what the pool remembers about one interned byte string: its
// global name and its size including the trailing NUL.
type poolEntry struct {
	Global string
	Size   int
}

// stringPool deduplicates constant strings into module-level globals,
// named @.str.0, @.str.1, ... in first-use order. Both user string
// literals and the fixed printf/snprintf format strings share one pool,
// so a format string that happens to collide with a literal is emitted
// only once.
type stringPool struct {
	order   []string
	entries map[string]poolEntry
}

func newStringPool() *stringPool {
	return &stringPool{entries: make(map[string]poolEntry)}
}

// intern returns s's pool entry, creating one if this is its first use.
func (p *stringPool) intern(s string) poolEntry {
	if e, ok := p.entries[s]; ok {
		return e
	}
	e := poolEntry{
		Global: fmt.Sprintf("@.str.%d", len(p.order)),
		Size:   len(s) + 1, // + NUL
	}
	p.entries[s] = e
	p.order = append(p.order, s)
	return e
}

// globals renders every interned string as a private unnamed_addr constant
// global, in interning order.
func (p *stringPool) globals() string {
	var out string
	for _, s := range p.order {
		e := p.entries[s]
		out += fmt.Sprintf("%s = private unnamed_addr constant [%d x i8] c\"%s\\00\"\n",
			e.Global, e.Size, escapeString(s))
	}
	return out
}

// escapeString renders s the way LLVM's own IR printer does: printable
// ASCII other than '"' and '\' passes through, everything else becomes a
// \HH hex escape.
func escapeString(s string) string {
	var out []byte
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '"' || c == '\\':
			out = append(out, '\\', hexDigit(c>>4), hexDigit(c&0xf))
		case c >= 0x20 && c < 0x7f:
			out = append(out, c)
		default:
			out = append(out, '\\', hexDigit(c>>4), hexDigit(c&0xf))
		}
	}
	return string(out)
}

func hexDigit(b byte) byte {
	if b < 10 {
		return '0' + b
	}
	return 'A' + (b - 10)
}
