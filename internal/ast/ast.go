package ast

import (
	"github.com/veltlang/velt/internal/token"
)

// Node is the base interface of every AST node.
type Node interface {
	TokenLiteral() string
	GetToken() token.Token
	Accept(v Visitor)
}

// Statement is a top-level or block-level statement.
type Statement interface {
	Node
	statementNode()
}

// Expression produces a value.
type Expression interface {
	Node
	expressionNode()
}

// Pattern is one node of the pattern grammar used by match arms.
type Pattern interface {
	Node
	patternNode()
}

// Type is a type annotation node.
type Type interface {
	Node
	typeNode()
}

// Visitor visits every concrete node kind. Consumers that only care about
// a few kinds embed BaseVisitor.
type Visitor interface {
	VisitProgram(n *Program)
	VisitModuleStatement(n *ModuleStatement)
	VisitEnumDeclaration(n *EnumDeclaration)
	VisitFunctionStatement(n *FunctionStatement)
	VisitLetStatement(n *LetStatement)
	VisitReturnStatement(n *ReturnStatement)
	VisitExpressionStatement(n *ExpressionStatement)

	VisitIdentifier(n *Identifier)
	VisitIntegerLiteral(n *IntegerLiteral)
	VisitStringLiteral(n *StringLiteral)
	VisitTupleExpression(n *TupleExpression)
	VisitCallExpression(n *CallExpression)
	VisitPrefixExpression(n *PrefixExpression)
	VisitInfixExpression(n *InfixExpression)
	VisitBlockExpression(n *BlockExpression)
	VisitMatchExpression(n *MatchExpression)

	VisitWildcardPattern(n *WildcardPattern)
	VisitLiteralPattern(n *LiteralPattern)
	VisitIdentifierPattern(n *IdentifierPattern)
	VisitConstructorPattern(n *ConstructorPattern)
	VisitTuplePattern(n *TuplePattern)

	VisitNamedType(n *NamedType)
	VisitTupleType(n *TupleType)
}

// Program is the root node of one source file.
type Program struct {
	File       string
	Module     *ModuleStatement
	Statements []Statement
}

func (p *Program) TokenLiteral() string {
	if p.Module != nil {
		return p.Module.TokenLiteral()
	}
	return ""
}

func (p *Program) GetToken() token.Token {
	if p.Module != nil {
		return p.Module.Token
	}
	return token.Token{}
}

func (p *Program) Accept(v Visitor) { v.VisitProgram(p) }
