package analyzer

import (
	"github.com/veltlang/velt/internal/ast"
	"github.com/veltlang/velt/internal/diagnostics"
	"github.com/veltlang/velt/internal/hir"
	"github.com/veltlang/velt/internal/symbols"
)

// matchCompiler compiles one match expression: it canonicalizes the arm
// patterns, extracts decision paths and bindings, synthesizes alternative
// shapes, infers the shape table, builds the decision tree, resolves a
// winner per terminal and finally lowers the tree into switch blocks.
// One instance per match expression; it owns its working set and is
// discarded when compile returns.
type matchCompiler struct {
	an    *Analyzer
	table *symbols.Table
	fb    *hir.FunctionBuilder
	expr  *ast.MatchExpression

	failed bool
}

func newMatchCompiler(an *Analyzer, expr *ast.MatchExpression) *matchCompiler {
	return &matchCompiler{an: an, table: an.table, fb: an.fb, expr: expr}
}

func (mc *matchCompiler) addError(err *diagnostics.DiagnosticError) {
	mc.an.addError(err)
	mc.failed = true
}

// compile turns the match expression into decision blocks appended to the
// enclosing function and returns the value of the merge block's phi.
// scrutinee is the already-lowered value being inspected.
func (mc *matchCompiler) compile(scrutinee hir.ValueID, env *scope) (hir.ValueID, bool) {
	// A match with no arms covers nothing.
	if len(mc.expr.Arms) == 0 {
		mc.addError(diagnostics.NewError(diagnostics.ErrM001, mc.expr.Token, "_ is not covered"))
		return hir.NoValue, false
	}

	matches := mc.buildWorkingSet()
	if mc.failed {
		return hir.NoValue, false
	}

	shapes, err := inferShapes(matches)
	if err != nil {
		mc.addError(diagnostics.NewError(diagnostics.ErrI001, mc.expr.Token, err.Error()))
		return hir.NoValue, false
	}

	root, err := mc.buildNode([]*dataPath{rootData}, decisionPath{}, shapes, matches)
	if err != nil {
		mc.addError(diagnostics.NewError(diagnostics.ErrI003, mc.expr.Token, err.Error()))
		return hir.NoValue, false
	}

	if !mc.resolveWinners(root, matches) {
		return hir.NoValue, false
	}
	mc.reportCoverage(root)

	merge := mc.fb.NewBlock()
	var incoming []hir.Incoming
	values := map[string]hir.ValueID{rootData.key(): scrutinee}
	mc.emitNode(root, values, env, merge, &incoming)

	mc.fb.SetBlock(merge)
	if len(incoming) == 0 {
		return mc.fb.EmitUnit(), !mc.failed
	}
	return mc.fb.EmitPhi(incoming), !mc.failed
}

// buildWorkingSet produces one entry per user arm plus one per
// synthesized alternative, in arm order.
func (mc *matchCompiler) buildWorkingSet() []*matchEntry {
	var matches []*matchEntry
	for i, arm := range mc.expr.Arms {
		canonical, ok := mc.canonicalizePattern(arm.Pattern)
		if !ok {
			continue
		}
		decision, binds := mc.extractDecisions(canonical, rootData, decisionPath{}, matchBindings{})
		matches = append(matches, &matchEntry{
			kind:     userDefinedMatch,
			index:    i,
			pattern:  canonical,
			decision: decision,
			binds:    binds,
		})
		for _, choice := range mc.generateChoices(canonical) {
			altDecision, altBinds := mc.extractDecisions(choice, rootData, decisionPath{}, matchBindings{})
			matches = append(matches, &matchEntry{
				kind:     alternativeMatch,
				pattern:  choice,
				decision: altDecision,
				binds:    altBinds,
			})
		}
	}
	return matches
}

// resolveWinners fills in every terminal's winner. A terminal nothing
// covers means the tree and the working set disagree, which is a defect
// in this compiler, not in the source program.
func (mc *matchCompiler) resolveWinners(root decisionNode, matches []*matchEntry) bool {
	ok := true
	walkTerminals(root, func(end *endNode) {
		end.winner = resolveWinner(end.decision, matches)
		if end.winner == nil && ok {
			mc.addError(diagnostics.NewError(
				diagnostics.ErrI002,
				mc.expr.Token,
				"no match covers decision path "+end.decision.String(),
			))
			ok = false
		}
	})
	return ok
}

// reportCoverage raises the per-expression pattern diagnostics: a
// terminal won by a synthesized alternative means no user arm handles
// that shape, and a user arm that wins no terminal is unreachable.
func (mc *matchCompiler) reportCoverage(root decisionNode) {
	covered := make([]bool, len(mc.expr.Arms))
	seenMissing := make(map[string]bool)
	walkTerminals(root, func(end *endNode) {
		if end.winner.kind == userDefinedMatch {
			covered[end.winner.index] = true
			return
		}
		shape := ast.PatternString(end.winner.pattern)
		if seenMissing[shape] {
			return
		}
		seenMissing[shape] = true
		mc.addError(diagnostics.NewError(
			diagnostics.ErrM001,
			mc.expr.Token,
			shape+" is not covered",
		))
	})
	for i, arm := range mc.expr.Arms {
		if covered[i] {
			continue
		}
		mc.addError(diagnostics.NewError(
			diagnostics.ErrM002,
			arm.Pattern.GetToken(),
			ast.PatternString(arm.Pattern)+" is never reached",
		))
	}
}

// emitNode lowers one decision node into blocks. values maps data-path
// positions to the instructions that materialized them along the current
// tree path; each switch case gets its own copy so sibling cases cannot
// observe values projected in another branch.
func (mc *matchCompiler) emitNode(
	node decisionNode,
	values map[string]hir.ValueID,
	env *scope,
	merge *hir.Block,
	incoming *[]hir.Incoming,
) {
	switch n := node.(type) {
	case *tupleNode:
		tuple := values[n.at.key()]
		for i := 0; i < n.arity; i++ {
			values[fieldAt(n.at, i).key()] = mc.fb.EmitField(tuple, i)
		}
		mc.emitNode(n.next, values, env, merge, incoming)

	case *switchNode:
		value := values[n.at.key()]
		if n.enum != "" {
			mc.emitEnumSwitch(n, value, values, env, merge, incoming)
		} else {
			mc.emitLiteralSwitch(n, value, values, env, merge, incoming)
		}

	case *endNode:
		mc.emitTerminal(n, values, env, merge, incoming)
	}
}

func (mc *matchCompiler) emitEnumSwitch(
	n *switchNode,
	value hir.ValueID,
	values map[string]hir.ValueID,
	env *scope,
	merge *hir.Block,
	incoming *[]hir.Incoming,
) {
	term := &hir.EnumSwitch{Value: value, Enum: n.enum}
	blocks := make([]*hir.Block, len(n.cases))
	for i, c := range n.cases {
		blocks[i] = mc.fb.NewBlock()
		term.Cases = append(term.Cases, hir.SwitchCase{Variant: c.value, Target: blocks[i].ID})
	}
	mc.fb.Terminate(term)
	for i, c := range n.cases {
		mc.fb.SetBlock(blocks[i])
		caseValues := cloneValues(values)
		if arity, _ := mc.table.ArityOf(c.value); arity > 0 {
			payload := mc.fb.EmitPayload(value, c.value)
			caseValues[variantAt(n.at, c.value, n.enum).key()] = payload
		}
		mc.emitNode(c.node, caseValues, env, merge, incoming)
	}
}

func (mc *matchCompiler) emitLiteralSwitch(
	n *switchNode,
	value hir.ValueID,
	values map[string]hir.ValueID,
	env *scope,
	merge *hir.Block,
	incoming *[]hir.Incoming,
) {
	term := &hir.LiteralSwitch{Value: value, IsStr: n.isStr}
	blocks := make([]*hir.Block, len(n.cases))
	for i, c := range n.cases {
		blocks[i] = mc.fb.NewBlock()
		if c.kind == defaultCase {
			term.Default = blocks[i].ID
		} else {
			term.Cases = append(term.Cases, hir.LiteralCase{Value: c.value, Target: blocks[i].ID})
		}
	}
	mc.fb.Terminate(term)
	for i, c := range n.cases {
		mc.fb.SetBlock(blocks[i])
		mc.emitNode(c.node, cloneValues(values), env, merge, incoming)
	}
}

// emitTerminal binds the winning arm's variables, lowers its body and
// jumps to the merge block. Terminals won by a synthesized alternative
// have no user body; they feed unit into the merge so the block graph
// stays well formed while the missing-pattern diagnostic aborts the run.
func (mc *matchCompiler) emitTerminal(
	n *endNode,
	values map[string]hir.ValueID,
	env *scope,
	merge *hir.Block,
	incoming *[]hir.Incoming,
) {
	if n.winner == nil || n.winner.kind == alternativeMatch {
		unit := mc.fb.EmitUnit()
		mc.fb.Terminate(&hir.Jump{Target: merge.ID})
		*incoming = append(*incoming, hir.Incoming{Block: mc.fb.CurrentBlock().ID, Value: unit})
		return
	}

	arm := mc.expr.Arms[n.winner.index]
	armScope := newScope(env)
	for _, bv := range n.winner.binds.vars {
		position := bv.at.steps[bv.at.len()-1]
		value, ok := values[position.key()]
		if !ok {
			value = mc.fb.EmitUnit()
		}
		armScope.define(bv.name, mc.fb.EmitBind(bv.name, value))
	}

	result, ok := mc.an.lowerExpression(arm.Expression, armScope)
	if !ok {
		result = mc.fb.EmitUnit()
	}
	mc.fb.Terminate(&hir.Jump{Target: merge.ID})
	*incoming = append(*incoming, hir.Incoming{Block: mc.fb.CurrentBlock().ID, Value: result})
}

func cloneValues(values map[string]hir.ValueID) map[string]hir.ValueID {
	out := make(map[string]hir.ValueID, len(values))
	for k, v := range values {
		out[k] = v
	}
	return out
}
