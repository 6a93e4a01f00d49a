package parser

import (
	"github.com/veltlang/velt/internal/ast"
	"github.com/veltlang/velt/internal/diagnostics"
	"github.com/veltlang/velt/internal/pipeline"
	"github.com/veltlang/velt/internal/token"
)

// Operator precedence levels, lowest first.
const (
	LOWEST = iota
	OR_PREC
	AND_PREC
	EQUALS
	LESSGREATER
	SUM
	PRODUCT
	PREFIX
	CALL
)

var precedences = map[token.TokenType]int{
	token.OR:       OR_PREC,
	token.AND:      AND_PREC,
	token.EQ:       EQUALS,
	token.NOT_EQ:   EQUALS,
	token.LT:       LESSGREATER,
	token.GT:       LESSGREATER,
	token.LT_EQ:    LESSGREATER,
	token.GT_EQ:    LESSGREATER,
	token.PLUS:     SUM,
	token.MINUS:    SUM,
	token.ASTERISK: PRODUCT,
	token.SLASH:    PRODUCT,
	token.PERCENT:  PRODUCT,
	token.LPAREN:   CALL,
}

type (
	prefixParseFn func() ast.Expression
	infixParseFn  func(ast.Expression) ast.Expression
)

type Parser struct {
	stream []token.Token
	pos    int

	curToken  token.Token
	peekToken token.Token

	ctx   *pipeline.PipelineContext
	depth int

	prefixParseFns map[token.TokenType]prefixParseFn
	infixParseFns  map[token.TokenType]infixParseFn
}

func New(stream []token.Token, ctx *pipeline.PipelineContext) *Parser {
	p := &Parser{stream: stream, ctx: ctx}

	p.prefixParseFns = map[token.TokenType]prefixParseFn{
		token.IDENT_LOWER: p.parseIdentifier,
		token.IDENT_UPPER: p.parseIdentifier,
		token.INT:         p.parseIntegerLiteral,
		token.STRING:      p.parseStringLiteral,
		token.LPAREN:      p.parseGroupedOrTuple,
		token.LBRACE:      p.parseBlockExpression,
		token.MATCH:       p.parseMatchExpression,
		token.MINUS:       p.parsePrefixExpression,
		token.BANG:        p.parsePrefixExpression,
	}
	p.infixParseFns = map[token.TokenType]infixParseFn{
		token.PLUS:     p.parseInfixExpression,
		token.MINUS:    p.parseInfixExpression,
		token.ASTERISK: p.parseInfixExpression,
		token.SLASH:    p.parseInfixExpression,
		token.PERCENT:  p.parseInfixExpression,
		token.EQ:       p.parseInfixExpression,
		token.NOT_EQ:   p.parseInfixExpression,
		token.LT:       p.parseInfixExpression,
		token.GT:       p.parseInfixExpression,
		token.LT_EQ:    p.parseInfixExpression,
		token.GT_EQ:    p.parseInfixExpression,
		token.AND:      p.parseInfixExpression,
		token.OR:       p.parseInfixExpression,
		token.LPAREN:   p.parseCallExpression,
	}

	// Prime curToken and peekToken.
	p.nextToken()
	p.nextToken()
	return p
}

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	if p.pos < len(p.stream) {
		p.peekToken = p.stream[p.pos]
		p.pos++
	} else {
		p.peekToken = token.Token{Type: token.EOF}
	}
}

func (p *Parser) curTokenIs(t token.TokenType) bool  { return p.curToken.Type == t }
func (p *Parser) peekTokenIs(t token.TokenType) bool { return p.peekToken.Type == t }

func (p *Parser) expectPeek(t token.TokenType) bool {
	if p.peekTokenIs(t) {
		p.nextToken()
		return true
	}
	p.addError(diagnostics.NewError(
		diagnostics.ErrP001,
		p.peekToken,
		"expected "+string(t)+", got "+string(p.peekToken.Type),
	))
	return false
}

func (p *Parser) curPrecedence() int {
	if prec, ok := precedences[p.curToken.Type]; ok {
		return prec
	}
	return LOWEST
}

func (p *Parser) peekPrecedence() int {
	if prec, ok := precedences[p.peekToken.Type]; ok {
		return prec
	}
	return LOWEST
}

func (p *Parser) addError(err *diagnostics.DiagnosticError) {
	p.ctx.AddError(err)
}

func (p *Parser) noPrefixParseFnError(t token.TokenType) {
	p.addError(diagnostics.NewError(
		diagnostics.ErrP002,
		p.curToken,
		"unexpected "+string(t),
	))
}

// skipNewlines advances past any run of NEWLINE tokens.
func (p *Parser) skipNewlines() {
	for p.curTokenIs(token.NEWLINE) {
		p.nextToken()
	}
}

// skipToStatementBoundary recovers from a parse error by advancing to the
// next newline or closing brace.
func (p *Parser) skipToStatementBoundary() {
	for !p.curTokenIs(token.NEWLINE) &&
		!p.curTokenIs(token.RBRACE) &&
		!p.curTokenIs(token.EOF) {
		p.nextToken()
	}
}

// ParseProgram parses one source file.
func (p *Parser) ParseProgram() *ast.Program {
	program := &ast.Program{}

	p.skipNewlines()
	if p.curTokenIs(token.MODULE) {
		program.Module = p.parseModuleStatement()
	} else {
		p.addError(diagnostics.NewError(
			diagnostics.ErrP003,
			p.curToken,
			"source file must start with a module declaration",
		))
	}

	for !p.curTokenIs(token.EOF) {
		p.skipNewlines()
		if p.curTokenIs(token.EOF) {
			break
		}
		stmt := p.parseTopLevelStatement()
		if stmt != nil {
			program.Statements = append(program.Statements, stmt)
		} else {
			p.skipToStatementBoundary()
		}
		p.nextToken()
	}

	return program
}
