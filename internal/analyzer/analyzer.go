package analyzer

import (
	"github.com/veltlang/velt/internal/ast"
	"github.com/veltlang/velt/internal/diagnostics"
	"github.com/veltlang/velt/internal/hir"
	"github.com/veltlang/velt/internal/pipeline"
	"github.com/veltlang/velt/internal/symbols"
)

// scope is one lexical binding frame. Lookup walks outward to the
// enclosing frames; match arms and blocks get child frames so their
// bindings never leak.
type scope struct {
	parent *scope
	vars   map[string]hir.ValueID
}

func newScope(parent *scope) *scope {
	return &scope{parent: parent, vars: make(map[string]hir.ValueID)}
}

func (s *scope) define(name string, v hir.ValueID) {
	s.vars[name] = v
}

func (s *scope) lookup(name string) (hir.ValueID, bool) {
	for cur := s; cur != nil; cur = cur.parent {
		if v, ok := cur.vars[name]; ok {
			return v, true
		}
	}
	return hir.NoValue, false
}

// Analyzer resolves names against the declaration table and lowers
// function bodies to HIR. It runs in two passes: collect declarations,
// freeze the table, then lower every function.
type Analyzer struct {
	ctx    *pipeline.PipelineContext
	table  *symbols.Table
	module *hir.Module
	fb     *hir.FunctionBuilder
}

func New(ctx *pipeline.PipelineContext) *Analyzer {
	return &Analyzer{ctx: ctx}
}

func (a *Analyzer) addError(err *diagnostics.DiagnosticError) {
	a.ctx.AddError(err)
}

// declCollector registers enum and function declarations. Only the
// declaration kinds matter here; everything else keeps the BaseVisitor
// no-ops.
type declCollector struct {
	ast.BaseVisitor
	an *Analyzer
}

func (c *declCollector) VisitProgram(n *ast.Program) {
	for _, stmt := range n.Statements {
		stmt.Accept(c)
	}
}

func (c *declCollector) VisitEnumDeclaration(n *ast.EnumDeclaration) {
	variants := make([]symbols.VariantDef, len(n.Variants))
	for i, v := range n.Variants {
		variants[i] = symbols.VariantDef{Name: v.Name.Value, Arity: len(v.Parameters)}
	}
	if _, err := c.an.table.DefineEnum(n.Name.Value, variants); err != nil {
		c.an.addError(diagnostics.NewError(diagnostics.ErrA002, n.Token, err.Error()))
	}
}

func (c *declCollector) VisitFunctionStatement(n *ast.FunctionStatement) {
	if _, err := c.an.table.DefineFunction(n.Name.Value, len(n.Parameters)); err != nil {
		c.an.addError(diagnostics.NewError(diagnostics.ErrA002, n.Token, err.Error()))
	}
}

// Analyze runs both passes over one file.
func (a *Analyzer) Analyze(program *ast.Program) {
	moduleName := "Main"
	if program.Module != nil && program.Module.Name != nil {
		moduleName = program.Module.Name.Value
	}
	a.table = symbols.NewTable(moduleName)
	program.Accept(&declCollector{an: a})
	a.table.Freeze()

	a.module = &hir.Module{Name: moduleName}
	for _, stmt := range program.Statements {
		fn, ok := stmt.(*ast.FunctionStatement)
		if !ok {
			continue
		}
		a.module.Functions = append(a.module.Functions, a.lowerFunction(fn))
	}
}

func (a *Analyzer) lowerFunction(fn *ast.FunctionStatement) *hir.Function {
	params := make([]string, len(fn.Parameters))
	for i, p := range fn.Parameters {
		params[i] = p.Name.Value
	}
	a.fb = hir.NewFunctionBuilder(a.table.Module+"."+fn.Name.Value, params)

	env := newScope(nil)
	for _, p := range fn.Parameters {
		if v, ok := a.fb.ParamValue(p.Name.Value); ok {
			env.define(p.Name.Value, v)
		}
	}

	result, ok := a.lowerBlock(fn.Body, env)
	if !ok {
		result = a.fb.EmitUnit()
	}
	a.fb.Terminate(&hir.Return{Value: result})
	return a.fb.Function()
}

// lowerBlock lowers a statement list; the last expression statement is
// the block's value. Statements after a return are unreachable and are
// not lowered.
func (a *Analyzer) lowerBlock(block *ast.BlockExpression, env *scope) (hir.ValueID, bool) {
	inner := newScope(env)
	last := hir.NoValue
	for _, stmt := range block.Statements {
		switch s := stmt.(type) {
		case *ast.LetStatement:
			value, ok := a.lowerExpression(s.Value, inner)
			if !ok {
				return hir.NoValue, false
			}
			inner.define(s.Name.Value, a.fb.EmitBind(s.Name.Value, value))
			last = hir.NoValue
		case *ast.ReturnStatement:
			value := a.fb.EmitUnit()
			if s.Value != nil {
				v, ok := a.lowerExpression(s.Value, inner)
				if !ok {
					return hir.NoValue, false
				}
				value = v
			}
			a.fb.Terminate(&hir.Return{Value: value})
			return a.fb.EmitUnit(), true
		case *ast.ExpressionStatement:
			value, ok := a.lowerExpression(s.Expression, inner)
			if !ok {
				return hir.NoValue, false
			}
			last = value
		}
	}
	if last == hir.NoValue {
		last = a.fb.EmitUnit()
	}
	return last, true
}

func (a *Analyzer) lowerExpression(expr ast.Expression, env *scope) (hir.ValueID, bool) {
	switch e := expr.(type) {
	case *ast.Identifier:
		return a.lowerIdentifier(e, env)

	case *ast.IntegerLiteral:
		return a.fb.EmitIntConst(e.Value.String()), true

	case *ast.StringLiteral:
		return a.fb.EmitStrConst(e.Value), true

	case *ast.TupleExpression:
		if len(e.Elements) == 0 {
			return a.fb.EmitUnit(), true
		}
		elements := make([]hir.ValueID, len(e.Elements))
		for i, el := range e.Elements {
			v, ok := a.lowerExpression(el, env)
			if !ok {
				return hir.NoValue, false
			}
			elements[i] = v
		}
		return a.fb.EmitTuple(elements), true

	case *ast.CallExpression:
		return a.lowerCall(e, env)

	case *ast.PrefixExpression:
		operand, ok := a.lowerExpression(e.Right, env)
		if !ok {
			return hir.NoValue, false
		}
		return a.fb.EmitUnary(e.Operator, operand), true

	case *ast.InfixExpression:
		lhs, ok := a.lowerExpression(e.Left, env)
		if !ok {
			return hir.NoValue, false
		}
		rhs, ok := a.lowerExpression(e.Right, env)
		if !ok {
			return hir.NoValue, false
		}
		return a.fb.EmitBinary(e.Operator, lhs, rhs), true

	case *ast.BlockExpression:
		return a.lowerBlock(e, env)

	case *ast.MatchExpression:
		scrutinee, ok := a.lowerExpression(e.Expression, env)
		if !ok {
			return hir.NoValue, false
		}
		return newMatchCompiler(a, e).compile(scrutinee, env)

	default:
		a.addError(diagnostics.NewError(diagnostics.ErrA001, expr.GetToken(), "unsupported expression"))
		return hir.NoValue, false
	}
}

// lowerIdentifier resolves a bare name: local variables shadow nothing
// at this level, and an uppercase name in value position is a nullary
// constructor reference.
func (a *Analyzer) lowerIdentifier(e *ast.Identifier, env *scope) (hir.ValueID, bool) {
	if isUpperName(e.Value) || e.Module != "" {
		qualified, err := a.table.ResolveConstructor(e.Module, e.Value)
		if err != nil {
			a.addError(diagnostics.NewError(diagnostics.ErrA003, e.Token, err.Error()))
			return hir.NoValue, false
		}
		if arity, _ := a.table.ArityOf(qualified); arity != 0 {
			a.addError(diagnostics.NewError(diagnostics.ErrA004, e.Token,
				qualified+" requires a payload"))
			return hir.NoValue, false
		}
		return a.fb.EmitMakeVariant(qualified, nil), true
	}
	if v, ok := env.lookup(e.Value); ok {
		return v, true
	}
	a.addError(diagnostics.NewError(diagnostics.ErrA001, e.Token, e.Value+" is not defined"))
	return hir.NoValue, false
}

func (a *Analyzer) lowerCall(e *ast.CallExpression, env *scope) (hir.ValueID, bool) {
	args := make([]hir.ValueID, len(e.Arguments))
	for i, arg := range e.Arguments {
		v, ok := a.lowerExpression(arg, env)
		if !ok {
			return hir.NoValue, false
		}
		args[i] = v
	}

	callee, ok := e.Function.(*ast.Identifier)
	if !ok {
		a.addError(diagnostics.NewError(diagnostics.ErrA001, e.Token, "call target is not a name"))
		return hir.NoValue, false
	}

	if isUpperName(callee.Value) || callee.Module != "" {
		qualified, err := a.table.ResolveConstructor(callee.Module, callee.Value)
		if err != nil {
			a.addError(diagnostics.NewError(diagnostics.ErrA003, callee.Token, err.Error()))
			return hir.NoValue, false
		}
		arity, _ := a.table.ArityOf(qualified)
		if arity != len(args) {
			a.addError(diagnostics.NewError(diagnostics.ErrA004, callee.Token,
				qualified+" payload arity mismatch"))
			return hir.NoValue, false
		}
		// Multi-field payloads are grouped into a single tuple value.
		payload := args
		if len(args) > 1 {
			payload = []hir.ValueID{a.fb.EmitTuple(args)}
		}
		return a.fb.EmitMakeVariant(qualified, payload), true
	}

	if _, defined := a.table.Function(callee.Value); !defined {
		if _, local := env.lookup(callee.Value); !local {
			a.addError(diagnostics.NewError(diagnostics.ErrA001, callee.Token,
				callee.Value+" is not defined"))
			return hir.NoValue, false
		}
	}
	return a.fb.EmitCall(callee.Value, args), true
}

func isUpperName(name string) bool {
	return len(name) > 0 && name[0] >= 'A' && name[0] <= 'Z'
}
