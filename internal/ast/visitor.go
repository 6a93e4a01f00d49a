package ast

// BaseVisitor provides no-op implementations of every Visitor method so
// passes only override the node kinds they care about.
type BaseVisitor struct{}

func (BaseVisitor) VisitProgram(n *Program)                         {}
func (BaseVisitor) VisitModuleStatement(n *ModuleStatement)         {}
func (BaseVisitor) VisitEnumDeclaration(n *EnumDeclaration)         {}
func (BaseVisitor) VisitFunctionStatement(n *FunctionStatement)     {}
func (BaseVisitor) VisitLetStatement(n *LetStatement)               {}
func (BaseVisitor) VisitReturnStatement(n *ReturnStatement)         {}
func (BaseVisitor) VisitExpressionStatement(n *ExpressionStatement) {}
func (BaseVisitor) VisitIdentifier(n *Identifier)                   {}
func (BaseVisitor) VisitIntegerLiteral(n *IntegerLiteral)           {}
func (BaseVisitor) VisitStringLiteral(n *StringLiteral)             {}
func (BaseVisitor) VisitTupleExpression(n *TupleExpression)         {}
func (BaseVisitor) VisitCallExpression(n *CallExpression)           {}
func (BaseVisitor) VisitPrefixExpression(n *PrefixExpression)       {}
func (BaseVisitor) VisitInfixExpression(n *InfixExpression)         {}
func (BaseVisitor) VisitBlockExpression(n *BlockExpression)         {}
func (BaseVisitor) VisitMatchExpression(n *MatchExpression)         {}
func (BaseVisitor) VisitWildcardPattern(n *WildcardPattern)         {}
func (BaseVisitor) VisitLiteralPattern(n *LiteralPattern)           {}
func (BaseVisitor) VisitIdentifierPattern(n *IdentifierPattern)     {}
func (BaseVisitor) VisitConstructorPattern(n *ConstructorPattern)   {}
func (BaseVisitor) VisitTuplePattern(n *TuplePattern)               {}
func (BaseVisitor) VisitNamedType(n *NamedType)                     {}
func (BaseVisitor) VisitTupleType(n *TupleType)                     {}
