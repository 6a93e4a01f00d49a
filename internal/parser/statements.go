package parser

import (
	"github.com/veltlang/velt/internal/ast"
	"github.com/veltlang/velt/internal/diagnostics"
	"github.com/veltlang/velt/internal/token"
)

func (p *Parser) parseModuleStatement() *ast.ModuleStatement {
	stmt := &ast.ModuleStatement{Token: p.curToken}
	if !p.expectPeek(token.IDENT_UPPER) {
		return nil
	}
	stmt.Name = &ast.Identifier{Token: p.curToken, Value: p.curToken.Lexeme}
	p.nextToken()
	return stmt
}

func (p *Parser) parseTopLevelStatement() ast.Statement {
	switch p.curToken.Type {
	case token.ENUM:
		return p.parseEnumDeclaration()
	case token.FN:
		return p.parseFunctionStatement()
	default:
		p.addError(diagnostics.NewError(
			diagnostics.ErrP003,
			p.curToken,
			"expected enum or fn declaration, got "+string(p.curToken.Type),
		))
		return nil
	}
}

// parseEnumDeclaration parses: enum Option { Some(Int), None }
// Variants may be separated by commas, newlines or both.
func (p *Parser) parseEnumDeclaration() ast.Statement {
	decl := &ast.EnumDeclaration{Token: p.curToken}

	if !p.expectPeek(token.IDENT_UPPER) {
		return nil
	}
	decl.Name = &ast.Identifier{Token: p.curToken, Value: p.curToken.Lexeme}

	if !p.expectPeek(token.LBRACE) {
		return nil
	}

	for !p.peekTokenIs(token.RBRACE) && !p.peekTokenIs(token.EOF) {
		if p.peekTokenIs(token.NEWLINE) || p.peekTokenIs(token.COMMA) {
			p.nextToken()
			continue
		}
		if !p.expectPeek(token.IDENT_UPPER) {
			return nil
		}
		variant := p.parseVariantDeclaration()
		if variant == nil {
			return nil
		}
		decl.Variants = append(decl.Variants, variant)
	}

	if !p.expectPeek(token.RBRACE) {
		return nil
	}
	return decl
}

func (p *Parser) parseVariantDeclaration() *ast.VariantDeclaration {
	variant := &ast.VariantDeclaration{
		Token: p.curToken,
		Name:  &ast.Identifier{Token: p.curToken, Value: p.curToken.Lexeme},
	}
	if !p.peekTokenIs(token.LPAREN) {
		return variant
	}
	p.nextToken() // '('
	for !p.peekTokenIs(token.RPAREN) {
		p.nextToken()
		typ := p.parseType()
		if typ == nil {
			return nil
		}
		variant.Parameters = append(variant.Parameters, typ)
		if p.peekTokenIs(token.COMMA) {
			p.nextToken()
		}
	}
	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	return variant
}

// parseFunctionStatement parses: fn name(a: T, b: U) -> R { ... }
func (p *Parser) parseFunctionStatement() ast.Statement {
	stmt := &ast.FunctionStatement{Token: p.curToken}

	if !p.expectPeek(token.IDENT_LOWER) {
		return nil
	}
	stmt.Name = &ast.Identifier{Token: p.curToken, Value: p.curToken.Lexeme}

	if !p.expectPeek(token.LPAREN) {
		return nil
	}
	for !p.peekTokenIs(token.RPAREN) {
		if !p.expectPeek(token.IDENT_LOWER) {
			return nil
		}
		param := &ast.Parameter{
			Token: p.curToken,
			Name:  &ast.Identifier{Token: p.curToken, Value: p.curToken.Lexeme},
		}
		if !p.expectPeek(token.COLON) {
			return nil
		}
		p.nextToken()
		param.Type = p.parseType()
		if param.Type == nil {
			return nil
		}
		stmt.Parameters = append(stmt.Parameters, param)
		if p.peekTokenIs(token.COMMA) {
			p.nextToken()
		}
	}
	if !p.expectPeek(token.RPAREN) {
		return nil
	}

	if p.peekTokenIs(token.ARROW) {
		p.nextToken()
		p.nextToken()
		stmt.ReturnType = p.parseType()
		if stmt.ReturnType == nil {
			return nil
		}
	}

	if !p.expectPeek(token.LBRACE) {
		return nil
	}
	body, ok := p.parseBlockExpression().(*ast.BlockExpression)
	if !ok {
		return nil
	}
	stmt.Body = body
	return stmt
}

// parseType parses a type annotation: a named type or a tuple type.
func (p *Parser) parseType() ast.Type {
	switch p.curToken.Type {
	case token.IDENT_UPPER:
		return &ast.NamedType{
			Token: p.curToken,
			Name:  &ast.Identifier{Token: p.curToken, Value: p.curToken.Lexeme},
		}
	case token.LPAREN:
		tt := &ast.TupleType{Token: p.curToken}
		for !p.peekTokenIs(token.RPAREN) {
			p.nextToken()
			el := p.parseType()
			if el == nil {
				return nil
			}
			tt.Types = append(tt.Types, el)
			if p.peekTokenIs(token.COMMA) {
				p.nextToken()
			}
		}
		if !p.expectPeek(token.RPAREN) {
			return nil
		}
		return tt
	default:
		p.addError(diagnostics.NewError(
			diagnostics.ErrP001,
			p.curToken,
			"expected type, got "+string(p.curToken.Type),
		))
		return nil
	}
}

// parseBlockStatement parses one statement inside a block.
func (p *Parser) parseBlockStatement() ast.Statement {
	switch p.curToken.Type {
	case token.LET:
		return p.parseLetStatement()
	case token.RETURN:
		return p.parseReturnStatement()
	default:
		stmt := &ast.ExpressionStatement{Token: p.curToken}
		stmt.Expression = p.parseExpression(LOWEST)
		if stmt.Expression == nil {
			return nil
		}
		return stmt
	}
}

func (p *Parser) parseLetStatement() ast.Statement {
	stmt := &ast.LetStatement{Token: p.curToken}

	if p.peekTokenIs(token.MUT) {
		p.nextToken()
		stmt.Mutable = true
	}
	if !p.expectPeek(token.IDENT_LOWER) {
		return nil
	}
	stmt.Name = &ast.Identifier{Token: p.curToken, Value: p.curToken.Lexeme}

	if !p.expectPeek(token.ASSIGN) {
		return nil
	}
	p.nextToken()
	stmt.Value = p.parseExpression(LOWEST)
	if stmt.Value == nil {
		return nil
	}
	return stmt
}

func (p *Parser) parseReturnStatement() ast.Statement {
	stmt := &ast.ReturnStatement{Token: p.curToken}
	p.nextToken()
	stmt.Value = p.parseExpression(LOWEST)
	if stmt.Value == nil {
		return nil
	}
	return stmt
}
