package ast

import (
	"strings"

	"github.com/veltlang/velt/internal/token"
)

// WildcardPattern: _
type WildcardPattern struct {
	Token token.Token
}

func (p *WildcardPattern) Accept(v Visitor)      { v.VisitWildcardPattern(p) }
func (p *WildcardPattern) patternNode()          {}
func (p *WildcardPattern) TokenLiteral() string  { return p.Token.Lexeme }
func (p *WildcardPattern) GetToken() token.Token { return p.Token }

// LiteralPattern: 1, "yes". The token type tells integers and strings
// apart; Value holds the canonical literal text.
type LiteralPattern struct {
	Token token.Token
	Value string
}

func (p *LiteralPattern) Accept(v Visitor)      { v.VisitLiteralPattern(p) }
func (p *LiteralPattern) patternNode()          {}
func (p *LiteralPattern) TokenLiteral() string  { return p.Token.Lexeme }
func (p *LiteralPattern) GetToken() token.Token { return p.Token }

// IsString reports whether this literal is a string literal.
func (p *LiteralPattern) IsString() bool { return p.Token.Type == token.STRING }

// IdentifierPattern binds the matched value to a name: x, mut x
type IdentifierPattern struct {
	Token   token.Token
	Value   string
	Mutable bool
}

func (p *IdentifierPattern) Accept(v Visitor)      { v.VisitIdentifierPattern(p) }
func (p *IdentifierPattern) patternNode()          {}
func (p *IdentifierPattern) TokenLiteral() string  { return p.Token.Lexeme }
func (p *IdentifierPattern) GetToken() token.Token { return p.Token }

// ConstructorPattern: Some(x), Option.None
type ConstructorPattern struct {
	Token    token.Token // constructor name token
	Name     *Identifier
	Elements []Pattern
}

func (p *ConstructorPattern) Accept(v Visitor)      { v.VisitConstructorPattern(p) }
func (p *ConstructorPattern) patternNode()          {}
func (p *ConstructorPattern) TokenLiteral() string  { return p.Token.Lexeme }
func (p *ConstructorPattern) GetToken() token.Token { return p.Token }

// TuplePattern: (x, y, _)
type TuplePattern struct {
	Token    token.Token // '('
	Elements []Pattern
}

func (p *TuplePattern) Accept(v Visitor)      { v.VisitTuplePattern(p) }
func (p *TuplePattern) patternNode()          {}
func (p *TuplePattern) TokenLiteral() string  { return p.Token.Lexeme }
func (p *TuplePattern) GetToken() token.Token { return p.Token }

// PatternString renders a pattern back to source-like text. Used by
// match diagnostics to show which shapes are not covered.
func PatternString(p Pattern) string {
	switch pat := p.(type) {
	case *WildcardPattern:
		return "_"
	case *IdentifierPattern:
		if pat.Mutable {
			return "mut " + pat.Value
		}
		return pat.Value
	case *LiteralPattern:
		if pat.IsString() {
			return "\"" + pat.Value + "\""
		}
		return pat.Value
	case *ConstructorPattern:
		if len(pat.Elements) == 0 {
			return pat.Name.Full()
		}
		parts := make([]string, len(pat.Elements))
		for i, el := range pat.Elements {
			parts[i] = PatternString(el)
		}
		return pat.Name.Full() + "(" + strings.Join(parts, ", ") + ")"
	case *TuplePattern:
		parts := make([]string, len(pat.Elements))
		for i, el := range pat.Elements {
			parts[i] = PatternString(el)
		}
		return "(" + strings.Join(parts, ", ") + ")"
	default:
		return "<pattern>"
	}
}
