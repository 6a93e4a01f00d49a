package parser

import (
	"math/big"

	"github.com/veltlang/velt/internal/ast"
	"github.com/veltlang/velt/internal/config"
	"github.com/veltlang/velt/internal/diagnostics"
	"github.com/veltlang/velt/internal/token"
)

func (p *Parser) parseExpression(precedence int) ast.Expression {
	p.depth++
	defer func() { p.depth-- }()

	if p.depth > config.MaxRecursionDepth {
		p.addError(diagnostics.NewError(
			diagnostics.ErrP004,
			p.curToken,
			"expression too complex",
		))
		p.skipToStatementBoundary()
		return nil
	}

	prefix := p.prefixParseFns[p.curToken.Type]
	if prefix == nil {
		p.noPrefixParseFnError(p.curToken.Type)
		return nil
	}
	leftExp := prefix()

	for leftExp != nil && !p.peekTokenIs(token.NEWLINE) && precedence < p.peekPrecedence() {
		infix := p.infixParseFns[p.peekToken.Type]
		if infix == nil {
			return leftExp
		}
		p.nextToken()
		leftExp = infix(leftExp)
	}

	return leftExp
}

// parseIdentifier also handles qualified constructor names: Mod.Name.
func (p *Parser) parseIdentifier() ast.Expression {
	ident := &ast.Identifier{Token: p.curToken, Value: p.curToken.Lexeme}
	if p.curTokenIs(token.IDENT_UPPER) && p.peekTokenIs(token.DOT) {
		p.nextToken() // '.'
		if !p.expectPeek(token.IDENT_UPPER) {
			return nil
		}
		ident.Module = ident.Value
		ident.Value = p.curToken.Lexeme
	}
	return ident
}

func (p *Parser) parseIntegerLiteral() ast.Expression {
	lit := &ast.IntegerLiteral{Token: p.curToken}
	value, ok := new(big.Int).SetString(p.curToken.Lexeme, 10)
	if !ok {
		p.addError(diagnostics.NewError(
			diagnostics.ErrP001,
			p.curToken,
			"invalid integer literal "+p.curToken.Lexeme,
		))
		return nil
	}
	lit.Value = value
	return lit
}

func (p *Parser) parseStringLiteral() ast.Expression {
	return &ast.StringLiteral{Token: p.curToken, Value: p.curToken.Lexeme}
}

func (p *Parser) parsePrefixExpression() ast.Expression {
	expression := &ast.PrefixExpression{
		Token:    p.curToken,
		Operator: p.curToken.Lexeme,
	}
	p.nextToken()
	expression.Right = p.parseExpression(PREFIX)
	if expression.Right == nil {
		return nil
	}
	return expression
}

func (p *Parser) parseInfixExpression(left ast.Expression) ast.Expression {
	expression := &ast.InfixExpression{
		Token:    p.curToken,
		Operator: p.curToken.Lexeme,
		Left:     left,
	}
	precedence := p.curPrecedence()
	p.nextToken()
	expression.Right = p.parseExpression(precedence)
	if expression.Right == nil {
		return nil
	}
	return expression
}

// parseGroupedOrTuple disambiguates (expr) from (a, b, ...).
func (p *Parser) parseGroupedOrTuple() ast.Expression {
	lparen := p.curToken
	p.nextToken()

	first := p.parseExpression(LOWEST)
	if first == nil {
		return nil
	}
	if p.peekTokenIs(token.RPAREN) {
		p.nextToken()
		return first
	}

	tuple := &ast.TupleExpression{Token: lparen, Elements: []ast.Expression{first}}
	for p.peekTokenIs(token.COMMA) {
		p.nextToken() // ','
		p.nextToken()
		el := p.parseExpression(LOWEST)
		if el == nil {
			return nil
		}
		tuple.Elements = append(tuple.Elements, el)
	}
	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	return tuple
}

func (p *Parser) parseCallExpression(fn ast.Expression) ast.Expression {
	call := &ast.CallExpression{Token: p.curToken, Function: fn}
	for !p.peekTokenIs(token.RPAREN) {
		p.nextToken()
		arg := p.parseExpression(LOWEST)
		if arg == nil {
			return nil
		}
		call.Arguments = append(call.Arguments, arg)
		if p.peekTokenIs(token.COMMA) {
			p.nextToken()
		}
	}
	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	return call
}

// parseBlockExpression parses { stmt* } with newline-separated statements.
func (p *Parser) parseBlockExpression() ast.Expression {
	block := &ast.BlockExpression{Token: p.curToken}

	for !p.peekTokenIs(token.RBRACE) && !p.peekTokenIs(token.EOF) {
		if p.peekTokenIs(token.NEWLINE) {
			p.nextToken()
			continue
		}
		p.nextToken()
		stmt := p.parseBlockStatement()
		if stmt != nil {
			block.Statements = append(block.Statements, stmt)
		} else {
			p.skipToStatementBoundary()
		}
	}

	if !p.expectPeek(token.RBRACE) {
		return nil
	}
	return block
}

func (p *Parser) parseMatchExpression() ast.Expression {
	me := &ast.MatchExpression{Token: p.curToken}

	p.nextToken() // consume 'match'
	me.Expression = p.parseExpression(LOWEST)
	if me.Expression == nil {
		return nil
	}

	if !p.expectPeek(token.LBRACE) {
		return nil
	}

	for !p.peekTokenIs(token.RBRACE) && !p.peekTokenIs(token.EOF) {
		// Skip newlines between arms.
		if p.peekTokenIs(token.NEWLINE) {
			p.nextToken()
			continue
		}

		p.nextToken()
		arm := p.parseMatchArm()
		if arm != nil {
			me.Arms = append(me.Arms, arm)
		} else {
			p.skipToStatementBoundary()
		}

		if p.peekTokenIs(token.COMMA) {
			p.nextToken()
		}
	}

	if !p.expectPeek(token.RBRACE) {
		return nil
	}
	return me
}

func (p *Parser) parseMatchArm() *ast.MatchArm {
	pattern := p.parsePattern()
	if pattern == nil {
		return nil
	}
	if !p.expectPeek(token.ARROW) {
		return nil
	}
	p.nextToken()
	expr := p.parseExpression(LOWEST)
	if expr == nil {
		return nil
	}
	return &ast.MatchArm{Pattern: pattern, Expression: expr}
}
