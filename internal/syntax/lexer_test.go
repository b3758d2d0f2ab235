package syntax

import "testing"

func lexKinds(t *testing.T, src string) []Kind {
	t.Helper()
	lx := NewLexer("test.coal", src)
	toks := lx.Tokenize()
	var kinds []Kind
	for _, tok := range toks {
		kinds = append(kinds, tok.Kind)
	}
	return kinds
}

func TestLexKeywordsAndIdents(t *testing.T) {
	kinds := lexKinds(t, "fn var const if elif else while foo")
	want := []Kind{TOK_FN, TOK_VAR, TOK_CONST, TOK_IF, TOK_ELIF, TOK_ELSE, TOK_WHILE, TOK_IDENT, TOK_EOF}
	if len(kinds) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(kinds), len(want), kinds)
	}
	for i, k := range want {
		if kinds[i] != k {
			t.Errorf("token %d: got %v, want %v", i, kinds[i], k)
		}
	}
}

func TestLexOperators(t *testing.T) {
	tests := []struct {
		src  string
		kind Kind
	}{
		{"==", TOK_EQ},
		{"!=", TOK_NEQ},
		{"!", TOK_NOT},
		{"+=", TOK_PLUSEQ},
		{"<=", TOK_LE},
		{">=", TOK_GE},
		{"&&", TOK_AND},
		{"||", TOK_OR},
		{"^", TOK_POW},
	}
	for _, tt := range tests {
		kinds := lexKinds(t, tt.src)
		if kinds[0] != tt.kind {
			t.Errorf("lexing %q: got %v, want %v", tt.src, kinds[0], tt.kind)
		}
	}
}

func TestLexIntLiteral(t *testing.T) {
	lx := NewLexer("test.coal", "42")
	toks := lx.Tokenize()
	if toks[0].Kind != TOK_INTLIT || toks[0].IntValue != 42 {
		t.Fatalf("got %+v", toks[0])
	}
}

func TestLexFloatLiteral(t *testing.T) {
	lx := NewLexer("test.coal", "3.14")
	toks := lx.Tokenize()
	if toks[0].Kind != TOK_FLOATLIT || toks[0].FloatValue != 3.14 {
		t.Fatalf("got %+v", toks[0])
	}
}

func TestLexStringLiteral(t *testing.T) {
	lx := NewLexer("test.coal", `"hello\nworld"`)
	toks := lx.Tokenize()
	if toks[0].Kind != TOK_STRINGLIT {
		t.Fatalf("got kind %v", toks[0].Kind)
	}
	if toks[0].StringValue != "hello\nworld" {
		t.Fatalf("got %q", toks[0].StringValue)
	}
}

func TestLexCharLiteral(t *testing.T) {
	lx := NewLexer("test.coal", `'a'`)
	toks := lx.Tokenize()
	if toks[0].Kind != TOK_CHARLIT || toks[0].CharValue != 'a' {
		t.Fatalf("got %+v", toks[0])
	}
}

func TestLexUnterminatedStringRaises(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected a panic from an unterminated string")
		}
	}()
	NewLexer("test.coal", `"unterminated`).Tokenize()
}
