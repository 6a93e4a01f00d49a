package parser

import (
	"github.com/veltlang/velt/internal/ast"
	"github.com/veltlang/velt/internal/diagnostics"
	"github.com/veltlang/velt/internal/token"
)

// parsePattern parses one pattern of a match arm:
//
//	_                      wildcard
//	x, mut x               binding
//	1, "yes", -2           literal
//	Some(p), Option.None   constructor
//	(p, q)                 tuple
func (p *Parser) parsePattern() ast.Pattern {
	switch p.curToken.Type {
	case token.IDENT_LOWER:
		if p.curToken.Lexeme == "_" {
			return &ast.WildcardPattern{Token: p.curToken}
		}
		return &ast.IdentifierPattern{Token: p.curToken, Value: p.curToken.Lexeme}
	case token.MUT:
		if !p.expectPeek(token.IDENT_LOWER) {
			return nil
		}
		return &ast.IdentifierPattern{Token: p.curToken, Value: p.curToken.Lexeme, Mutable: true}
	case token.INT, token.STRING:
		return &ast.LiteralPattern{Token: p.curToken, Value: p.curToken.Lexeme}
	case token.MINUS:
		minus := p.curToken
		if !p.expectPeek(token.INT) {
			return nil
		}
		return &ast.LiteralPattern{Token: minus, Value: "-" + p.curToken.Lexeme}
	case token.IDENT_UPPER:
		return p.parseConstructorPattern()
	case token.LPAREN:
		return p.parseTuplePattern()
	default:
		p.addError(diagnostics.NewError(
			diagnostics.ErrP001,
			p.curToken,
			"expected pattern, got "+string(p.curToken.Type),
		))
		return nil
	}
}

func (p *Parser) parseConstructorPattern() ast.Pattern {
	pat := &ast.ConstructorPattern{
		Token: p.curToken,
		Name:  &ast.Identifier{Token: p.curToken, Value: p.curToken.Lexeme},
	}
	if p.peekTokenIs(token.DOT) {
		p.nextToken()
		if !p.expectPeek(token.IDENT_UPPER) {
			return nil
		}
		pat.Name.Module = pat.Name.Value
		pat.Name.Value = p.curToken.Lexeme
	}

	if !p.peekTokenIs(token.LPAREN) {
		return pat
	}
	p.nextToken() // '('
	for !p.peekTokenIs(token.RPAREN) {
		p.nextToken()
		el := p.parsePattern()
		if el == nil {
			return nil
		}
		pat.Elements = append(pat.Elements, el)
		if p.peekTokenIs(token.COMMA) {
			p.nextToken()
		}
	}
	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	return pat
}

func (p *Parser) parseTuplePattern() ast.Pattern {
	pat := &ast.TuplePattern{Token: p.curToken}
	for !p.peekTokenIs(token.RPAREN) {
		p.nextToken()
		el := p.parsePattern()
		if el == nil {
			return nil
		}
		pat.Elements = append(pat.Elements, el)
		if p.peekTokenIs(token.COMMA) {
			p.nextToken()
		}
	}
	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	return pat
}
