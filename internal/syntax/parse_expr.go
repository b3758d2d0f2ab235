package syntax

import (
	"github.com/MineChook/Coal/internal/ast"
	"github.com/MineChook/Coal/internal/report"
)

// precOf returns the binding power of a binary operator token, or -1 if
// tok does not begin a binary operator. Higher binds tighter.
func precOf(kind Kind) int {
	switch kind {
	case TOK_OR:
		return 10
	case TOK_AND:
		return 20
	case TOK_EQ, TOK_NEQ:
		return 30
	case TOK_LT, TOK_LE, TOK_GT, TOK_GE:
		return 40
	case TOK_PLUS, TOK_MINUS:
		return 50
	case TOK_STAR, TOK_DIV, TOK_MOD:
		return 60
	case TOK_POW:
		return 70
	default:
		return -1
	}
}

func binOpOf(kind Kind) ast.BinOp {
	switch kind {
	case TOK_PLUS:
		return ast.Add
	case TOK_MINUS:
		return ast.Sub
	case TOK_STAR:
		return ast.Mul
	case TOK_DIV:
		return ast.Div
	case TOK_MOD:
		return ast.Mod
	case TOK_POW:
		return ast.Pow
	case TOK_EQ:
		return ast.Eq
	case TOK_NEQ:
		return ast.Ne
	case TOK_LT:
		return ast.Lt
	case TOK_LE:
		return ast.Le
	case TOK_GT:
		return ast.Gt
	case TOK_GE:
		return ast.Ge
	case TOK_AND:
		return ast.And
	case TOK_OR:
		return ast.Or
	default:
		return ast.Add // unreachable: only called after precOf confirms kind is a binary operator
	}
}

// expr := binary(minPrec=0)
func (p *Parser) parseExpr() ast.Expr {
	return p.parseBinary(0)
}

// binary(p) implements iterative precedence climbing: all Coal binary
// operators are left-associative, so a new right-hand side
// is only folded into a deeper parse when the following operator strictly
// outbinds the current one.
func (p *Parser) parseBinary(minPrec int) ast.Expr {
	lhs := p.parseUnary()

	for {
		prec := precOf(p.cur().Kind)
		if prec < 0 || prec <= minPrec {
			return lhs
		}

		opTok := p.advance()
		rhs := p.parseBinary(prec)

		lhs = &ast.Binary{
			Base:  ast.NewBase(lhs.Span().Merge(rhs.Span())),
			Op:    binOpOf(opTok.Kind),
			Left:  lhs,
			Right: rhs,
		}
	}
}

// unary := '!' unary | postfix
func (p *Parser) parseUnary() ast.Expr {
	if p.got(TOK_NOT) {
		tok := p.advance()
		operand := p.parseUnary()
		return &ast.Unary{
			Base: ast.NewBase(tok.Span.Merge(operand.Span())),
			Op:   ast.Not,
			Expr: operand,
		}
	}

	return p.parsePostfix()
}

// postfix := primary ('.' IDENT '(' arglist? ')')*
func (p *Parser) parsePostfix() ast.Expr {
	expr := p.parsePrimary()

	for p.got(TOK_DOT) {
		p.advance()
		method := p.expect(TOK_IDENT)
		p.expect(TOK_LPAREN)

		var args []ast.Expr
		if !p.got(TOK_RPAREN) {
			args = p.parseArgList()
		}
		end := p.expect(TOK_RPAREN)

		expr = &ast.MethodCall{
			Base:     ast.NewBase(expr.Span().Merge(end.Span)),
			Receiver: expr,
			Method:   method.Lexeme,
			Args:     args,
		}
	}

	return expr
}

func (p *Parser) parseArgList() []ast.Expr {
	var args []ast.Expr
	args = append(args, p.parseExpr())
	for p.got(TOK_COMMA) {
		p.advance()
		args = append(args, p.parseExpr())
	}
	return args
}

// primary := literal | IDENT ('(' arglist? ')')? | '(' expr ')'
func (p *Parser) parsePrimary() ast.Expr {
	tok := p.cur()

	switch tok.Kind {
	case TOK_INTLIT:
		p.advance()
		return &ast.IntLit{Base: ast.NewBase(tok.Span), Value: tok.IntValue}
	case TOK_FLOATLIT:
		p.advance()
		return &ast.FloatLit{Base: ast.NewBase(tok.Span), Value: tok.FloatValue}
	case TOK_TRUE:
		p.advance()
		return &ast.BoolLit{Base: ast.NewBase(tok.Span), Value: true}
	case TOK_FALSE:
		p.advance()
		return &ast.BoolLit{Base: ast.NewBase(tok.Span), Value: false}
	case TOK_CHARLIT:
		p.advance()
		return &ast.CharLit{Base: ast.NewBase(tok.Span), Value: tok.CharValue}
	case TOK_STRINGLIT:
		p.advance()
		return &ast.StringLit{Base: ast.NewBase(tok.Span), Value: tok.StringValue}
	case TOK_IDENT:
		p.advance()
		if p.got(TOK_LPAREN) {
			p.advance()
			var args []ast.Expr
			if !p.got(TOK_RPAREN) {
				args = p.parseArgList()
			}
			end := p.expect(TOK_RPAREN)
			return &ast.Call{
				Base:   ast.NewBase(tok.Span.Merge(end.Span)),
				Callee: tok.Lexeme,
				Args:   args,
			}
		}
		return &ast.Ident{Base: ast.NewBase(tok.Span), Name: tok.Lexeme}
	case TOK_LPAREN:
		p.advance()
		inner := p.parseExpr()
		end := p.expect(TOK_RPAREN)
		// Parenthesized sub-expressions adopt the span covering the outer
		// parentheses, overriding the inner node's own span.
		reSpan(inner, tok.Span.Merge(end.Span))
		return inner
	default:
		report.Raise(p.file, &tok.Span, report.CodeExpectedExpr, "expected an expression, got %s", tok.Kind)
		return nil
	}
}

// reSpan widens e's span in place to cover its enclosing parentheses. Every
// Expr variant embeds ast.Base by value behind a pointer receiver, so this
// is a direct field assignment per concrete type rather than a rebuild.
func reSpan(e ast.Expr, span report.Span) {
	switch n := e.(type) {
	case *ast.IntLit:
		n.Base = ast.NewBase(span)
	case *ast.FloatLit:
		n.Base = ast.NewBase(span)
	case *ast.BoolLit:
		n.Base = ast.NewBase(span)
	case *ast.CharLit:
		n.Base = ast.NewBase(span)
	case *ast.StringLit:
		n.Base = ast.NewBase(span)
	case *ast.Ident:
		n.Base = ast.NewBase(span)
	case *ast.Unary:
		n.Base = ast.NewBase(span)
	case *ast.Binary:
		n.Base = ast.NewBase(span)
	case *ast.Call:
		n.Base = ast.NewBase(span)
	case *ast.MethodCall:
		n.Base = ast.NewBase(span)
	}
}
