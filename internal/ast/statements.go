package ast

import (
	"github.com/veltlang/velt/internal/token"
)

// ModuleStatement names the module a file belongs to: module Main
type ModuleStatement struct {
	Token token.Token // 'module'
	Name  *Identifier
}

func (ms *ModuleStatement) Accept(v Visitor)      { v.VisitModuleStatement(ms) }
func (ms *ModuleStatement) statementNode()        {}
func (ms *ModuleStatement) TokenLiteral() string  { return ms.Token.Lexeme }
func (ms *ModuleStatement) GetToken() token.Token { return ms.Token }

// VariantDeclaration is one case of an enum definition.
// E.g. 'Some(Int)' or 'None'.
type VariantDeclaration struct {
	Token      token.Token // the variant's IDENT_UPPER
	Name       *Identifier
	Parameters []Type
}

func (vd *VariantDeclaration) TokenLiteral() string  { return vd.Token.Lexeme }
func (vd *VariantDeclaration) GetToken() token.Token { return vd.Token }

// EnumDeclaration defines an enum type with its variants in source order.
// enum Option { Some(Int), None }
type EnumDeclaration struct {
	Token    token.Token // 'enum'
	Name     *Identifier
	Variants []*VariantDeclaration
}

func (ed *EnumDeclaration) Accept(v Visitor)      { v.VisitEnumDeclaration(ed) }
func (ed *EnumDeclaration) statementNode()        {}
func (ed *EnumDeclaration) TokenLiteral() string  { return ed.Token.Lexeme }
func (ed *EnumDeclaration) GetToken() token.Token { return ed.Token }

// Parameter is a typed function parameter.
type Parameter struct {
	Token token.Token
	Name  *Identifier
	Type  Type
}

// FunctionStatement defines a named function.
// fn classify(o: Option) -> Int { ... }
type FunctionStatement struct {
	Token      token.Token // 'fn'
	Name       *Identifier
	Parameters []*Parameter
	ReturnType Type
	Body       *BlockExpression
}

func (fs *FunctionStatement) Accept(v Visitor)      { v.VisitFunctionStatement(fs) }
func (fs *FunctionStatement) statementNode()        {}
func (fs *FunctionStatement) TokenLiteral() string  { return fs.Token.Lexeme }
func (fs *FunctionStatement) GetToken() token.Token { return fs.Token }

// LetStatement binds a value inside a block: let x = expr
type LetStatement struct {
	Token   token.Token // 'let'
	Name    *Identifier
	Mutable bool
	Value   Expression
}

func (ls *LetStatement) Accept(v Visitor)      { v.VisitLetStatement(ls) }
func (ls *LetStatement) statementNode()        {}
func (ls *LetStatement) TokenLiteral() string  { return ls.Token.Lexeme }
func (ls *LetStatement) GetToken() token.Token { return ls.Token }

// ReturnStatement returns early from a function body.
type ReturnStatement struct {
	Token token.Token // 'return'
	Value Expression
}

func (rs *ReturnStatement) Accept(v Visitor)      { v.VisitReturnStatement(rs) }
func (rs *ReturnStatement) statementNode()        {}
func (rs *ReturnStatement) TokenLiteral() string  { return rs.Token.Lexeme }
func (rs *ReturnStatement) GetToken() token.Token { return rs.Token }

// ExpressionStatement wraps an expression used in statement position.
type ExpressionStatement struct {
	Token      token.Token
	Expression Expression
}

func (es *ExpressionStatement) Accept(v Visitor)      { v.VisitExpressionStatement(es) }
func (es *ExpressionStatement) statementNode()        {}
func (es *ExpressionStatement) TokenLiteral() string  { return es.Token.Lexeme }
func (es *ExpressionStatement) GetToken() token.Token { return es.Token }

// --- Type annotations ---

// NamedType is a simple named type like 'Int' or 'Option'.
type NamedType struct {
	Token token.Token
	Name  *Identifier
}

func (nt *NamedType) Accept(v Visitor)      { v.VisitNamedType(nt) }
func (nt *NamedType) typeNode()             {}
func (nt *NamedType) TokenLiteral() string  { return nt.Token.Lexeme }
func (nt *NamedType) GetToken() token.Token { return nt.Token }

// TupleType is a tuple type like (Int, String).
type TupleType struct {
	Token token.Token // '('
	Types []Type
}

func (tt *TupleType) Accept(v Visitor)      { v.VisitTupleType(tt) }
func (tt *TupleType) typeNode()             {}
func (tt *TupleType) TokenLiteral() string  { return tt.Token.Lexeme }
func (tt *TupleType) GetToken() token.Token { return tt.Token }
