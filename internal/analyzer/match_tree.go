package analyzer

import (
	"fmt"
	"sort"
)

// The compiled decision automaton. Evaluating it against a runtime value
// picks exactly one case at every switch, passes through every tuple
// decomposition unconditionally, and reaches exactly one terminal.
type decisionNode interface {
	node()
}

// tupleNode projects all fields of the tuple at a position and continues;
// tuple decomposition never branches.
type tupleNode struct {
	at    *dataPath
	arity int
	next  decisionNode
}

type caseKind int

const (
	variantCase caseKind = iota
	intCase
	strCase
	defaultCase
)

type switchCaseNode struct {
	kind  caseKind
	value string // qualified variant name or literal text
	node  decisionNode
}

// switchNode branches on the value at a position: over the closed set of
// an enum's variants, or over an open literal domain with a default.
type switchNode struct {
	at    *dataPath
	enum  string // enum switches only
	isStr bool   // literal switches only
	cases []switchCaseNode
}

// endNode is a terminal; winner is filled in by the resolver afterwards.
type endNode struct {
	decision decisionPath
	winner   *matchEntry
}

func (*tupleNode) node()  {}
func (*switchNode) node() {}
func (*endNode) node()    {}

// buildNode consumes pending positions one at a time, branching on the
// shape inferred for the head position. Enum switches enumerate every
// variant in declaration order with no default; literal switches carry
// the distinct literals the match set tests next at this point, plus a
// mandatory default. Positions with no inferred shape carry no further
// structural information and are dropped.
func (mc *matchCompiler) buildNode(
	pending []*dataPath,
	current decisionPath,
	shapes *shapeTable,
	matches []*matchEntry,
) (decisionNode, error) {
	if len(pending) == 0 {
		return &endNode{decision: current}, nil
	}
	head := pending[0]
	rest := pending[1:]

	sh, ok := shapes.lookup(head)
	if !ok {
		if len(rest) == 0 {
			return &endNode{decision: current}, nil
		}
		return mc.buildNode(rest, current, shapes, matches)
	}

	switch sh.kind {
	case enumShape:
		variants := mc.table.VariantsOf(sh.name)
		if len(variants) == 0 {
			return nil, fmt.Errorf("enum %s has no variants", sh.name)
		}
		sw := &switchNode{at: head, enum: sh.name}
		for _, variant := range variants {
			casePath := variantAt(head, variant, sh.name)
			casePending := make([]*dataPath, 0, len(rest)+1)
			casePending = append(casePending, casePath)
			casePending = append(casePending, rest...)
			node, err := mc.buildNode(casePending, current.add(casePath), shapes, matches)
			if err != nil {
				return nil, err
			}
			sw.cases = append(sw.cases, switchCaseNode{kind: variantCase, value: variant, node: node})
		}
		return sw, nil

	case tupleShape:
		next := current.add(tupleOf(head, sh.arity))
		fieldPending := make([]*dataPath, 0, len(rest)+sh.arity)
		for i := 0; i < sh.arity; i++ {
			fieldPending = append(fieldPending, fieldAt(head, i))
		}
		fieldPending = append(fieldPending, rest...)
		node, err := mc.buildNode(fieldPending, next, shapes, matches)
		if err != nil {
			return nil, err
		}
		return &tupleNode{at: head, arity: sh.arity, next: node}, nil

	case intShape, strShape:
		isStr := sh.kind == strShape
		sw := &switchNode{at: head, isStr: isStr}
		literalKind := intCase
		if isStr {
			literalKind = strCase
		}
		for _, value := range collectLiterals(matches, current, isStr) {
			casePath := intEq(head, value)
			if isStr {
				casePath = strEq(head, value)
			}
			casePending := make([]*dataPath, 0, len(rest)+1)
			casePending = append(casePending, casePath)
			casePending = append(casePending, rest...)
			node, err := mc.buildNode(casePending, current.add(casePath), shapes, matches)
			if err != nil {
				return nil, err
			}
			sw.cases = append(sw.cases, switchCaseNode{kind: literalKind, value: value, node: node})
		}
		defaultPath := wildcardAt(head)
		defaultPending := make([]*dataPath, 0, len(rest)+1)
		defaultPending = append(defaultPending, defaultPath)
		defaultPending = append(defaultPending, rest...)
		node, err := mc.buildNode(defaultPending, current.add(defaultPath), shapes, matches)
		if err != nil {
			return nil, err
		}
		sw.cases = append(sw.cases, switchCaseNode{kind: defaultCase, node: node})
		return sw, nil

	case classShape:
		return nil, fmt.Errorf("class shape %s at %s", sh.name, head)

	default:
		return nil, fmt.Errorf("unknown shape at %s", head)
	}
}

// collectLiterals gathers the distinct literal values that appear as the
// immediate next decision among all matches whose decision path extends
// the current prefix. Sorted for deterministic case order.
func collectLiterals(matches []*matchEntry, current decisionPath, isStr bool) []string {
	want := intLiteralPath
	if isStr {
		want = strLiteralPath
	}
	seen := make(map[string]bool)
	var values []string
	for _, m := range matches {
		if !m.decision.hasPrefix(current) || m.decision.len() <= current.len() {
			continue
		}
		step := m.decision.steps[current.len()]
		if step.kind != want || seen[step.literal] {
			continue
		}
		seen[step.literal] = true
		values = append(values, step.literal)
	}
	sort.Strings(values)
	return values
}
