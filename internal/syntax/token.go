package syntax

import "github.com/MineChook/Coal/internal/report"

// Kind enumerates the closed set of token kinds the lexer can produce.
type Kind int

const (
	// Keywords.
	TOK_FN Kind = iota
	TOK_VAR
	TOK_CONST
	TOK_TRUE
	TOK_FALSE
	TOK_INT
	TOK_FLOAT
	TOK_BOOL
	TOK_CHAR
	TOK_STRING
	TOK_IF
	TOK_ELIF
	TOK_ELSE
	TOK_WHILE

	// Literal kinds.
	TOK_INTLIT
	TOK_FLOATLIT
	TOK_CHARLIT
	TOK_STRINGLIT
	TOK_IDENT

	// Punctuation.
	TOK_LPAREN
	TOK_RPAREN
	TOK_LBRACE
	TOK_RBRACE
	TOK_COLON
	TOK_COMMA
	TOK_DOT
	TOK_RANGE // ".."
	TOK_SEMI

	// Operators.
	TOK_ASSIGN
	TOK_EQ
	TOK_NOT
	TOK_NEQ
	TOK_PLUSEQ
	TOK_PLUS
	TOK_MINUS
	TOK_STAR
	TOK_DIV
	TOK_MOD
	TOK_POW
	TOK_LT
	TOK_LE
	TOK_GT
	TOK_GE
	TOK_AND
	TOK_OR

	TOK_EOF
)

// keywords maps the closed keyword vocabulary to its token kind.
var keywords = map[string]Kind{
	"fn":     TOK_FN,
	"var":    TOK_VAR,
	"const":  TOK_CONST,
	"true":   TOK_TRUE,
	"false":  TOK_FALSE,
	"int":    TOK_INT,
	"float":  TOK_FLOAT,
	"bool":   TOK_BOOL,
	"char":   TOK_CHAR,
	"string": TOK_STRING,
	"if":     TOK_IF,
	"elif":   TOK_ELIF,
	"else":   TOK_ELSE,
	"while":  TOK_WHILE,
}

// String returns a human-readable name for a token kind, used only for
// diagnostic messages.
func (k Kind) String() string {
	switch k {
	case TOK_FN:
		return "fn"
	case TOK_VAR:
		return "var"
	case TOK_CONST:
		return "const"
	case TOK_TRUE:
		return "true"
	case TOK_FALSE:
		return "false"
	case TOK_INT:
		return "int"
	case TOK_FLOAT:
		return "float"
	case TOK_BOOL:
		return "bool"
	case TOK_CHAR:
		return "char"
	case TOK_STRING:
		return "string"
	case TOK_IF:
		return "if"
	case TOK_ELIF:
		return "elif"
	case TOK_ELSE:
		return "else"
	case TOK_WHILE:
		return "while"
	case TOK_INTLIT:
		return "int literal"
	case TOK_FLOATLIT:
		return "float literal"
	case TOK_CHARLIT:
		return "char literal"
	case TOK_STRINGLIT:
		return "string literal"
	case TOK_IDENT:
		return "identifier"
	case TOK_LPAREN:
		return "("
	case TOK_RPAREN:
		return ")"
	case TOK_LBRACE:
		return "{"
	case TOK_RBRACE:
		return "}"
	case TOK_COLON:
		return ":"
	case TOK_COMMA:
		return ","
	case TOK_DOT:
		return "."
	case TOK_RANGE:
		return ".."
	case TOK_SEMI:
		return ";"
	case TOK_ASSIGN:
		return "="
	case TOK_EQ:
		return "=="
	case TOK_NOT:
		return "!"
	case TOK_NEQ:
		return "!="
	case TOK_PLUSEQ:
		return "+="
	case TOK_PLUS:
		return "+"
	case TOK_MINUS:
		return "-"
	case TOK_STAR:
		return "*"
	case TOK_DIV:
		return "/"
	case TOK_MOD:
		return "%"
	case TOK_POW:
		return "^"
	case TOK_LT:
		return "<"
	case TOK_LE:
		return "<="
	case TOK_GT:
		return ">"
	case TOK_GE:
		return ">="
	case TOK_AND:
		return "&&"
	case TOK_OR:
		return "||"
	default:
		return "EOF"
	}
}

// Token represents a single lexical token with its source span and an
// optional decoded payload. At most one of IntValue/FloatValue/CharValue/
// StringValue is meaningful, depending on Kind.
type Token struct {
	Kind    Kind
	Lexeme  string
	Span    report.Span

	IntValue    int64
	FloatValue  float64
	CharValue   rune
	StringValue string
}
