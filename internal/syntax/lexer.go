package syntax

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/MineChook/Coal/internal/report"
)

// Lexer tokenizes a Coal source buffer. It holds the whole source in memory
// and advances a rune at a time through a peek/eat/skip trio, over an
// in-memory string rather than a bufio.Reader, since every token's span
// needs a byte offset for diagnostic rendering.
type Lexer struct {
	file   string
	src    string
	pos    int // current byte offset
	line   int // current 1-based line
	col    int // current 1-based column

	startPos            int
	startLine, startCol int

	buf strings.Builder
}

// NewLexer creates a lexer over src, labelled with file for diagnostics.
func NewLexer(file, src string) *Lexer {
	return &Lexer{
		file: file,
		src:  src,
		line: 1,
		col:  1,
	}
}

// Tokenize lexes the entire source buffer and returns the resulting token
// sequence, always terminated by an EOF token whose span ends at len(src).
func (l *Lexer) Tokenize() []*Token {
	var toks []*Token
	for {
		tok := l.next()
		toks = append(toks, tok)
		if tok.Kind == TOK_EOF {
			return toks
		}
	}
}

// next scans and returns the next token, skipping whitespace, comments, and
// tolerated semicolons.
func (l *Lexer) next() *Token {
	for {
		c, ok := l.peek()
		if !ok {
			return l.makeToken(TOK_EOF)
		}

		switch {
		case c == ' ' || c == '\t' || c == '\r' || c == '\n' || c == ';':
			l.skip()
		case c == '/' && l.peekAt(1) == '/':
			for {
				c, ok := l.peek()
				if !ok || c == '\n' {
					break
				}
				l.skip()
			}
		case c == '"':
			return l.lexString()
		case c == '\'':
			return l.lexChar()
		case isDigit(c):
			return l.lexNumber()
		case isIdentStart(c):
			return l.lexIdentOrKeyword()
		default:
			return l.lexOperator()
		}
	}
}

// -----------------------------------------------------------------------------

var symbolPatterns = map[string]Kind{
	"(":  TOK_LPAREN,
	")":  TOK_RPAREN,
	"{":  TOK_LBRACE,
	"}":  TOK_RBRACE,
	":":  TOK_COLON,
	",":  TOK_COMMA,
	"..": TOK_RANGE,
	".":  TOK_DOT,

	"=":  TOK_ASSIGN,
	"==": TOK_EQ,
	"!":  TOK_NOT,
	"!=": TOK_NEQ,
	"+=": TOK_PLUSEQ,
	"+":  TOK_PLUS,
	"-":  TOK_MINUS,
	"*":  TOK_STAR,
	"/":  TOK_DIV,
	"%":  TOK_MOD,
	"^":  TOK_POW,
	"<":  TOK_LT,
	"<=": TOK_LE,
	">":  TOK_GT,
	">=": TOK_GE,
	"&&": TOK_AND,
	"||": TOK_OR,
}

// lexOperator lexes punctuation and operators via one-character lookahead,
// preferring the longest match in symbolPatterns (e.g. "==" over "=").
func (l *Lexer) lexOperator() *Token {
	l.mark()
	c, _ := l.eat()

	two := string(c) + string(l.peekRune())
	if kind, ok := symbolPatterns[two]; ok {
		l.eat()
		return l.makeToken(kind)
	}

	if kind, ok := symbolPatterns[string(c)]; ok {
		return l.makeToken(kind)
	}

	if c == '&' || c == '|' {
		report.Raise(l.file, l.span(), report.CodeUnexpectedChar, "unexpected character '%c': Coal has no bitwise operators", c)
	}

	report.Raise(l.file, l.span(), report.CodeUnexpectedChar, "unexpected character '%c'", c)
	return nil // unreachable
}

// -----------------------------------------------------------------------------

func (l *Lexer) lexIdentOrKeyword() *Token {
	l.mark()
	l.eat()

	for {
		c, ok := l.peek()
		if !ok || !(isIdentStart(c) || isDigit(c)) {
			break
		}
		l.eat()
	}

	lexeme := l.buf.String()
	if kind, ok := keywords[lexeme]; ok {
		return l.makeToken(kind)
	}

	return l.makeToken(TOK_IDENT)
}

// -----------------------------------------------------------------------------

// lexNumber lexes an integer or float literal. Underscore separators are
// permitted anywhere digits are and are stripped before conversion; the
// literal is a float iff it is followed by '.' and at least one further
// digit.
func (l *Lexer) lexNumber() *Token {
	l.mark()

	readDigits := func() {
		for {
			c, ok := l.peek()
			if !ok {
				return
			}
			if isDigit(c) || c == '_' {
				l.eat()
				continue
			}
			return
		}
	}

	readDigits()

	isFloat := false
	if c, ok := l.peek(); ok && c == '.' {
		if nc, ok := l.peekRuneAt(1); ok && isDigit(nc) {
			isFloat = true
			l.eat() // '.'
			readDigits()
		}
	}

	lexeme := strings.ReplaceAll(l.buf.String(), "_", "")

	if isFloat {
		v, err := strconv.ParseFloat(lexeme, 64)
		if err != nil {
			report.Raise(l.file, l.span(), report.CodeUnexpectedChar, "malformed float literal: %s", lexeme)
		}
		tok := l.makeToken(TOK_FLOATLIT)
		tok.FloatValue = v
		return tok
	}

	v, err := strconv.ParseInt(lexeme, 10, 64)
	if err != nil {
		report.Raise(l.file, l.span(), report.CodeUnexpectedChar, "malformed int literal: %s", lexeme)
	}
	tok := l.makeToken(TOK_INTLIT)
	tok.IntValue = v
	return tok
}

// -----------------------------------------------------------------------------

func (l *Lexer) lexString() *Token {
	l.mark()
	l.skipRaw() // opening quote

	var decoded strings.Builder
	for {
		c, ok := l.peek()
		if !ok {
			report.Raise(l.file, l.span(), report.CodeUnterminatedString, "unterminated string literal")
		}

		switch c {
		case '"':
			l.skipRaw()
			tok := l.makeToken(TOK_STRINGLIT)
			tok.StringValue = decoded.String()
			return tok
		case '\n':
			report.Raise(l.file, l.span(), report.CodeUnterminatedString, "string literal cannot contain a literal newline")
		case '\\':
			l.skipRaw()
			decoded.WriteRune(l.eatEscape())
		default:
			r := l.eatRaw()
			decoded.WriteRune(r)
		}
	}
}

func (l *Lexer) lexChar() *Token {
	l.mark()
	l.skipRaw() // opening quote

	c, ok := l.peek()
	if !ok {
		report.Raise(l.file, l.span(), report.CodeUnterminatedChar, "unterminated char literal")
	}
	if c == '\'' {
		report.Raise(l.file, l.span(), report.CodeEmptyCharLiteral, "empty char literal")
	}
	if c == '\n' {
		report.Raise(l.file, l.span(), report.CodeUnterminatedChar, "char literal cannot contain a literal newline")
	}

	var value rune
	if c == '\\' {
		l.skipRaw()
		value = l.eatEscape()
	} else {
		value = l.eatRaw()
	}

	c, ok = l.peek()
	if !ok {
		report.Raise(l.file, l.span(), report.CodeUnterminatedChar, "unterminated char literal")
	}
	if c != '\'' {
		report.Raise(l.file, l.span(), report.CodeUnterminatedChar, "char literal may contain only one character")
	}
	l.skipRaw()

	tok := l.makeToken(TOK_CHARLIT)
	tok.CharValue = value
	return tok
}

// eatEscape consumes and decodes a single escape sequence, assuming the
// leading backslash has already been skipped.
func (l *Lexer) eatEscape() rune {
	c, ok := l.peek()
	if !ok {
		report.Raise(l.file, l.span(), report.CodeUnknownEscape, "expected escape sequence, got end of file")
	}

	switch c {
	case '"':
		l.skipRaw()
		return '"'
	case '\\':
		l.skipRaw()
		return '\\'
	case 'n':
		l.skipRaw()
		return '\n'
	case 't':
		l.skipRaw()
		return '\t'
	case 'r':
		l.skipRaw()
		return '\r'
	case '\'':
		l.skipRaw()
		return '\''
	default:
		report.Raise(l.file, l.span(), report.CodeUnknownEscape, "unknown escape sequence '\\%c'", c)
		return 0
	}
}

// -----------------------------------------------------------------------------

// mark records the current position as the start of the token being built
// and resets the accumulation buffer.
func (l *Lexer) mark() {
	l.startPos, l.startLine, l.startCol = l.pos, l.line, l.col
	l.buf.Reset()
}

// span returns the span from the last mark to the current position.
func (l *Lexer) span() *report.Span {
	return &report.Span{
		Start: l.startPos,
		End:   l.pos,
		Line:  l.startLine,
		Col:   l.startCol,
	}
}

// makeToken finalizes the token currently being built.
func (l *Lexer) makeToken(kind Kind) *Token {
	if kind == TOK_EOF {
		return &Token{Kind: TOK_EOF, Span: report.Span{Start: len(l.src), End: len(l.src), Line: l.line, Col: l.col}}
	}

	return &Token{
		Kind:   kind,
		Lexeme: l.src[l.startPos:l.pos],
		Span:   *l.span(),
	}
}

// -----------------------------------------------------------------------------
// Low-level rune cursor. eat and eatRaw write the consumed rune to the
// token accumulation buffer; skip and skipRaw do not (skipRaw is used for
// quotes/escapes whose surface form differs from the decoded payload).

func (l *Lexer) peek() (rune, bool) {
	if l.pos >= len(l.src) {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(l.src[l.pos:])
	return r, true
}

func (l *Lexer) peekRune() rune {
	r, ok := l.peek()
	if !ok {
		return 0
	}
	return r
}

// peekAt returns the rune n runes ahead (0 = current).
func (l *Lexer) peekAt(n int) rune {
	pos := l.pos
	var r rune
	for i := 0; i <= n; i++ {
		if pos >= len(l.src) {
			return 0
		}
		var size int
		r, size = utf8.DecodeRuneInString(l.src[pos:])
		pos += size
	}
	return r
}

func (l *Lexer) peekRuneAt(n int) (rune, bool) {
	pos := l.pos
	var r rune
	for i := 0; i <= n; i++ {
		if pos >= len(l.src) {
			return 0, false
		}
		var size int
		r, size = utf8.DecodeRuneInString(l.src[pos:])
		pos += size
	}
	return r, true
}

// advance moves the cursor forward one rune, updating line/col bookkeeping.
func (l *Lexer) advance() rune {
	r, size := utf8.DecodeRuneInString(l.src[l.pos:])
	l.pos += size

	if r == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}

	return r
}

// eat advances and appends the consumed rune to the token buffer.
func (l *Lexer) eat() (rune, bool) {
	if l.pos >= len(l.src) {
		return 0, false
	}
	r := l.advance()
	l.buf.WriteRune(r)
	return r, true
}

// eatRaw advances, appends to the buffer, and returns the rune (used where
// the caller wants the value rather than a boolean).
func (l *Lexer) eatRaw() rune {
	r := l.advance()
	l.buf.WriteRune(r)
	return r
}

// skip advances without writing to the token buffer (whitespace/comments).
func (l *Lexer) skip() {
	l.advance()
}

// skipRaw advances without writing to the buffer but still counts as part
// of the token's span (quotes, escape backslashes).
func (l *Lexer) skipRaw() {
	l.advance()
}

// -----------------------------------------------------------------------------

func isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

func isIdentStart(c rune) bool {
	return unicode.IsLetter(c) || c == '_'
}
