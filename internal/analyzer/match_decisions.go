package analyzer

import (
	"strconv"

	"github.com/veltlang/velt/internal/ast"
	"github.com/veltlang/velt/internal/diagnostics"
)

// matchKind tells user-written branches apart from synthesized ones.
type matchKind int

const (
	userDefinedMatch matchKind = iota
	alternativeMatch
)

// boundVar records one variable bound by a pattern, keyed by the decision
// prefix in force at the moment of binding.
type boundVar struct {
	at      decisionPath // prefix plus the bound position as its last step
	name    string
	mutable bool
}

// matchBindings is ordered by insertion; a variable name may appear at
// most once per pattern.
type matchBindings struct {
	vars []boundVar
}

func (b *matchBindings) insert(at decisionPath, name string, mutable bool) bool {
	for _, v := range b.vars {
		if v.name == name {
			return false
		}
	}
	b.vars = append(b.vars, boundVar{at: at, name: name, mutable: mutable})
	return true
}

// matchEntry is one entry of the working set: a user branch or a
// synthesized alternative, with its extracted decision path and bindings.
type matchEntry struct {
	kind     matchKind
	index    int // source-order rank for user branches
	pattern  ast.Pattern
	decision decisionPath
	binds    matchBindings
}

// canonicalizePattern rewrites constructor names to fully qualified
// variant names and checks payload arity against the declaration.
// Binding, literal and wildcard patterns pass through structurally
// unchanged. Resolution failures surface as diagnostics on the pattern's
// token.
func (mc *matchCompiler) canonicalizePattern(pattern ast.Pattern) (ast.Pattern, bool) {
	switch pat := pattern.(type) {
	case *ast.ConstructorPattern:
		qualified, err := mc.table.ResolveConstructor(pat.Name.Module, pat.Name.Value)
		if err != nil {
			mc.addError(diagnostics.NewError(diagnostics.ErrA003, pat.Token, err.Error()))
			return nil, false
		}
		arity, _ := mc.table.ArityOf(qualified)
		if len(pat.Elements) != arity {
			mc.addError(diagnostics.NewError(
				diagnostics.ErrA004,
				pat.Token,
				qualified+" expects "+strconv.Itoa(arity)+" argument(s), got "+strconv.Itoa(len(pat.Elements)),
			))
			return nil, false
		}
		elements := make([]ast.Pattern, len(pat.Elements))
		for i, el := range pat.Elements {
			sub, ok := mc.canonicalizePattern(el)
			if !ok {
				return nil, false
			}
			elements[i] = sub
		}
		return &ast.ConstructorPattern{
			Token:    pat.Token,
			Name:     &ast.Identifier{Token: pat.Name.Token, Value: qualified},
			Elements: elements,
		}, true
	case *ast.TuplePattern:
		elements := make([]ast.Pattern, len(pat.Elements))
		for i, el := range pat.Elements {
			sub, ok := mc.canonicalizePattern(el)
			if !ok {
				return nil, false
			}
			elements[i] = sub
		}
		return &ast.TuplePattern{Token: pat.Token, Elements: elements}, true
	default:
		// Bind, literal and wildcard patterns are already canonical.
		return pattern, true
	}
}

// extractDecisions walks one canonical pattern and accumulates the
// decision path that characterizes it, together with the variables it
// binds. parent is the position the pattern constrains.
func (mc *matchCompiler) extractDecisions(
	pattern ast.Pattern,
	parent *dataPath,
	decision decisionPath,
	binds matchBindings,
) (decisionPath, matchBindings) {
	switch pat := pattern.(type) {
	case *ast.ConstructorPattern:
		name := pat.Name.Value
		enumName, ok := mc.table.EnumOf(name)
		if !ok {
			// Non-enum nominal match. The canonicalizer rejects these
			// before extraction, but the path algebra keeps the case so
			// the working set stays well formed if one slips through.
			return decision.add(classAt(parent, name)), binds
		}
		path := variantAt(parent, name, enumName)
		decision = decision.add(path)
		// A variant carries a single payload value; multi-argument
		// constructors group their fields into an implicit tuple.
		if len(pat.Elements) == 1 {
			decision, binds = mc.extractDecisions(pat.Elements[0], path, decision, binds)
		} else if len(pat.Elements) > 1 {
			decision = decision.add(tupleOf(path, len(pat.Elements)))
			for i, el := range pat.Elements {
				decision, binds = mc.extractDecisions(el, fieldAt(path, i), decision, binds)
			}
		}
		return decision, binds
	case *ast.IdentifierPattern:
		if !binds.insert(decision.add(parent), pat.Value, pat.Mutable) {
			mc.addError(diagnostics.NewError(
				diagnostics.ErrA005,
				pat.Token,
				pat.Value+" is bound more than once in this pattern",
			))
		}
		return decision.add(wildcardAt(parent)), binds
	case *ast.TuplePattern:
		decision = decision.add(tupleOf(parent, len(pat.Elements)))
		for i, el := range pat.Elements {
			decision, binds = mc.extractDecisions(el, fieldAt(parent, i), decision, binds)
		}
		return decision, binds
	case *ast.LiteralPattern:
		if pat.IsString() {
			return decision.add(strEq(parent, pat.Value)), binds
		}
		return decision.add(intEq(parent, pat.Value)), binds
	case *ast.WildcardPattern:
		return decision.add(wildcardAt(parent)), binds
	default:
		return decision, binds
	}
}
