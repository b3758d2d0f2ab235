package syntax

import (
	"github.com/MineChook/Coal/internal/ast"
	"github.com/MineChook/Coal/internal/report"
)

// Parser builds a Program AST from a token sequence using recursive descent
// with Pratt-style precedence climbing for expressions: a token cursor
// with one- and two-token lookahead, no backtracking across statements.
type Parser struct {
	file string
	toks []*Token
	pos  int
}

// NewParser creates a parser over an already-lexed token sequence.
func NewParser(file string, toks []*Token) *Parser {
	return &Parser{file: file, toks: toks}
}

// Parse parses a full program. Any syntax or lexical error aborts via
// report.Raise/Internal and is recovered by report.Run at the call site.
func Parse(file, src string) (prog *ast.Program, diag *report.Diagnostic) {
	diag = report.Run(func() {
		lx := NewLexer(file, src)
		toks := lx.Tokenize()
		p := NewParser(file, toks)
		prog = p.parseProgram()
	})
	return
}

// -----------------------------------------------------------------------------
// Token cursor.

func (p *Parser) cur() *Token {
	return p.toks[p.pos]
}

func (p *Parser) peekKind(n int) Kind {
	idx := p.pos + n
	if idx >= len(p.toks) {
		return TOK_EOF
	}
	return p.toks[idx].Kind
}

func (p *Parser) advance() *Token {
	tok := p.toks[p.pos]
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return tok
}

func (p *Parser) got(kind Kind) bool {
	return p.cur().Kind == kind
}

// expect asserts the current token is of kind, reports CodeExpectedToken if
// not, and always advances past it.
func (p *Parser) expect(kind Kind) *Token {
	tok := p.cur()
	if tok.Kind != kind {
		report.Raise(p.file, &tok.Span, report.CodeExpectedToken,
			"expected %s, got %s", kind, tok.Kind)
	}
	return p.advance()
}

// -----------------------------------------------------------------------------

// program := fnDecl*
func (p *Parser) parseProgram() *ast.Program {
	var decls []*ast.FnDecl
	for !p.got(TOK_EOF) {
		decls = append(decls, p.parseFnDecl())
	}
	return &ast.Program{Decls: decls}
}

// fnDecl := 'fn' IDENT '(' ')' (':' typeRef)? block
func (p *Parser) parseFnDecl() *ast.FnDecl {
	start := p.expect(TOK_FN)
	name := p.expect(TOK_IDENT)
	p.expect(TOK_LPAREN)
	p.expect(TOK_RPAREN)

	var retType *ast.TypeRef
	if p.got(TOK_COLON) {
		p.advance()
		retType = p.parseTypeRef()
	}

	body := p.parseBlock()

	return &ast.FnDecl{
		Base:       ast.NewBase(start.Span.Merge(body.Span())),
		Name:       name.Lexeme,
		ReturnType: retType,
		Body:       body,
	}
}

// typeRef := 'int' | 'float' | 'bool' | 'char' | 'string' | IDENT
func (p *Parser) parseTypeRef() *ast.TypeRef {
	tok := p.cur()
	switch tok.Kind {
	case TOK_INT, TOK_FLOAT, TOK_BOOL, TOK_CHAR, TOK_STRING, TOK_IDENT:
		p.advance()
		return &ast.TypeRef{Base: ast.NewBase(tok.Span), Name: tok.Lexeme}
	default:
		report.Raise(p.file, &tok.Span, report.CodeExpectedToken, "expected a type name, got %s", tok.Kind)
		return nil
	}
}

// block := '{' stmt* '}'
func (p *Parser) parseBlock() *ast.Block {
	start := p.expect(TOK_LBRACE)

	var stmts []ast.Stmt
	for !p.got(TOK_RBRACE) {
		stmts = append(stmts, p.parseStmt())
	}

	end := p.expect(TOK_RBRACE)

	return &ast.Block{
		Base:  ast.NewBase(start.Span.Merge(end.Span)),
		Stmts: stmts,
	}
}

// stmt := varDecl | ifStmt | whileStmt | assignStmt | exprStmt
func (p *Parser) parseStmt() ast.Stmt {
	switch {
	case p.got(TOK_VAR) || p.got(TOK_CONST):
		return p.parseVarDecl()
	case p.got(TOK_IF):
		return p.parseIfStmt()
	case p.got(TOK_WHILE):
		return p.parseWhileStmt()
	case p.got(TOK_IDENT) && (p.peekKind(1) == TOK_ASSIGN || p.peekKind(1) == TOK_PLUSEQ):
		return p.parseAssignStmt()
	default:
		return p.parseExprStmt()
	}
}

// varDecl := ('var' | 'const') IDENT (':' typeRef)? ('=' expr)?
func (p *Parser) parseVarDecl() *ast.VarDecl {
	kw := p.advance()
	isConst := kw.Kind == TOK_CONST

	name := p.expect(TOK_IDENT)

	var typeRef *ast.TypeRef
	if p.got(TOK_COLON) {
		p.advance()
		typeRef = p.parseTypeRef()
	}

	var init ast.Expr
	end := name.Span
	if p.got(TOK_ASSIGN) {
		p.advance()
		init = p.parseExpr()
		end = init.Span()
	}

	if typeRef == nil && init == nil {
		report.Raise(p.file, &name.Span, report.CodeVarNeedsType, "variable '%s' needs a type annotation or an initializer", name.Lexeme)
	}

	return &ast.VarDecl{
		Base:          ast.NewBase(kw.Span.Merge(end)),
		Name:          name.Lexeme,
		AnnotatedType: typeRef,
		Init:          init,
		IsConst:       isConst,
	}
}

// assignStmt := IDENT ('=' | '+=') expr
func (p *Parser) parseAssignStmt() *ast.Assign {
	name := p.expect(TOK_IDENT)
	op := p.advance()

	rhs := p.parseExpr()

	value := rhs
	if op.Kind == TOK_PLUSEQ {
		// Desugar `a += e` into `a = a + e`, synthesizing a Binary node that
		// spans the same source text as the original += expression.
		ident := &ast.Ident{Base: ast.NewBase(name.Span), Name: name.Lexeme}
		value = &ast.Binary{
			Base:  ast.NewBase(name.Span.Merge(rhs.Span())),
			Op:    ast.Add,
			Left:  ident,
			Right: rhs,
		}
	}

	return &ast.Assign{
		Base:  ast.NewBase(name.Span.Merge(rhs.Span())),
		Name:  name.Lexeme,
		Value: value,
	}
}

// exprStmt := expr
func (p *Parser) parseExprStmt() *ast.ExprStmt {
	expr := p.parseExpr()
	return &ast.ExprStmt{Base: ast.NewBase(expr.Span()), Expr: expr}
}

// ifStmt := 'if' '(' expr ')' block ('elif' '(' expr ')' block)* ('else' block)?
func (p *Parser) parseIfStmt() *ast.IfStmt {
	start := p.expect(TOK_IF)
	branches := []ast.IfBranch{p.parseCondBranch()}

	for p.got(TOK_ELIF) {
		p.advance()
		branches = append(branches, p.parseCondBranch())
	}

	var elseBranch *ast.Block
	end := branches[len(branches)-1].Body.Span()
	if p.got(TOK_ELSE) {
		p.advance()
		elseBranch = p.parseBlock()
		end = elseBranch.Span()
	}

	return &ast.IfStmt{
		Base:       ast.NewBase(start.Span.Merge(end)),
		Branches:   branches,
		ElseBranch: elseBranch,
	}
}

func (p *Parser) parseCondBranch() ast.IfBranch {
	p.expect(TOK_LPAREN)
	cond := p.parseExpr()
	p.expect(TOK_RPAREN)
	body := p.parseBlock()
	return ast.IfBranch{Cond: cond, Body: body}
}

// whileStmt := 'while' '(' expr ')' block
func (p *Parser) parseWhileStmt() *ast.WhileStmt {
	start := p.expect(TOK_WHILE)
	p.expect(TOK_LPAREN)
	cond := p.parseExpr()
	p.expect(TOK_RPAREN)
	body := p.parseBlock()

	return &ast.WhileStmt{
		Base: ast.NewBase(start.Span.Merge(body.Span())),
		Cond: cond,
		Body: body,
	}
}
