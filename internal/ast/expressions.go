package ast

import (
	"math/big"

	"github.com/veltlang/velt/internal/token"
)

// Identifier refers to a value, or, with a Module qualifier, to a
// constructor/name in another module (e.g. Option.Some).
type Identifier struct {
	Token  token.Token
	Value  string
	Module string // optional qualifier, "" when bare
}

func (i *Identifier) Accept(v Visitor)      { v.VisitIdentifier(i) }
func (i *Identifier) expressionNode()       {}
func (i *Identifier) TokenLiteral() string  { return i.Token.Lexeme }
func (i *Identifier) GetToken() token.Token { return i.Token }

// Full returns the identifier as written, including the qualifier.
func (i *Identifier) Full() string {
	if i.Module != "" {
		return i.Module + "." + i.Value
	}
	return i.Value
}

// IntegerLiteral: 42
type IntegerLiteral struct {
	Token token.Token
	Value *big.Int
}

func (il *IntegerLiteral) Accept(v Visitor)      { v.VisitIntegerLiteral(il) }
func (il *IntegerLiteral) expressionNode()       {}
func (il *IntegerLiteral) TokenLiteral() string  { return il.Token.Lexeme }
func (il *IntegerLiteral) GetToken() token.Token { return il.Token }

// StringLiteral: "hello"
type StringLiteral struct {
	Token token.Token
	Value string
}

func (sl *StringLiteral) Accept(v Visitor)      { v.VisitStringLiteral(sl) }
func (sl *StringLiteral) expressionNode()       {}
func (sl *StringLiteral) TokenLiteral() string  { return sl.Token.Lexeme }
func (sl *StringLiteral) GetToken() token.Token { return sl.Token }

// TupleExpression: (a, b, c)
type TupleExpression struct {
	Token    token.Token // '('
	Elements []Expression
}

func (te *TupleExpression) Accept(v Visitor)      { v.VisitTupleExpression(te) }
func (te *TupleExpression) expressionNode()       {}
func (te *TupleExpression) TokenLiteral() string  { return te.Token.Lexeme }
func (te *TupleExpression) GetToken() token.Token { return te.Token }

// CallExpression: f(a, b) or Some(1)
type CallExpression struct {
	Token     token.Token // '('
	Function  Expression
	Arguments []Expression
}

func (ce *CallExpression) Accept(v Visitor)      { v.VisitCallExpression(ce) }
func (ce *CallExpression) expressionNode()       {}
func (ce *CallExpression) TokenLiteral() string  { return ce.Token.Lexeme }
func (ce *CallExpression) GetToken() token.Token { return ce.Token }

// PrefixExpression: !x, -x
type PrefixExpression struct {
	Token    token.Token
	Operator string
	Right    Expression
}

func (pe *PrefixExpression) Accept(v Visitor)      { v.VisitPrefixExpression(pe) }
func (pe *PrefixExpression) expressionNode()       {}
func (pe *PrefixExpression) TokenLiteral() string  { return pe.Token.Lexeme }
func (pe *PrefixExpression) GetToken() token.Token { return pe.Token }

// InfixExpression: a + b, a == b
type InfixExpression struct {
	Token    token.Token
	Operator string
	Left     Expression
	Right    Expression
}

func (ie *InfixExpression) Accept(v Visitor)      { v.VisitInfixExpression(ie) }
func (ie *InfixExpression) expressionNode()       {}
func (ie *InfixExpression) TokenLiteral() string  { return ie.Token.Lexeme }
func (ie *InfixExpression) GetToken() token.Token { return ie.Token }

// BlockExpression is a brace-delimited statement list; the last
// expression statement is the block's value.
type BlockExpression struct {
	Token      token.Token // '{'
	Statements []Statement
}

func (be *BlockExpression) Accept(v Visitor)      { v.VisitBlockExpression(be) }
func (be *BlockExpression) expressionNode()       {}
func (be *BlockExpression) TokenLiteral() string  { return be.Token.Lexeme }
func (be *BlockExpression) GetToken() token.Token { return be.Token }

// MatchArm represents a single case in a match expression.
type MatchArm struct {
	Pattern    Pattern
	Expression Expression
}

// MatchExpression represents a match expression.
// match <Expression> { <MatchArms> }
type MatchExpression struct {
	Token      token.Token // 'match'
	Expression Expression
	Arms       []*MatchArm
}

func (me *MatchExpression) Accept(v Visitor)      { v.VisitMatchExpression(me) }
func (me *MatchExpression) expressionNode()       {}
func (me *MatchExpression) TokenLiteral() string  { return me.Token.Lexeme }
func (me *MatchExpression) GetToken() token.Token { return me.Token }
