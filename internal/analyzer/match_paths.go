package analyzer

import (
	"fmt"
	"strings"
)

// A dataPath names one position inside the scrutinee, reached from the
// root by a chain of structural decisions. Paths are immutable; building
// a child never mutates the parent.
type pathKind int

const (
	rootPath pathKind = iota
	tuplePath            // the value at parent is a tuple of arity N
	tupleIndexPath       // field Index of the tuple at parent
	variantPath          // the value at parent carries this variant tag
	intLiteralPath       // the integer at parent equals Literal
	strLiteralPath       // the string at parent equals Literal
	classPath            // non-enum nominal match (unsupported downstream)
	wildcardPath         // the value at parent is unconstrained
)

type dataPath struct {
	kind    pathKind
	parent  *dataPath
	name    string // qualified variant or class name
	enum    string // qualified enum name (variantPath only)
	index   int
	arity   int
	literal string
}

var rootData = &dataPath{kind: rootPath}

func tupleOf(parent *dataPath, arity int) *dataPath {
	return &dataPath{kind: tuplePath, parent: parent, arity: arity}
}

func fieldAt(parent *dataPath, index int) *dataPath {
	return &dataPath{kind: tupleIndexPath, parent: parent, index: index}
}

func variantAt(parent *dataPath, variant, enum string) *dataPath {
	return &dataPath{kind: variantPath, parent: parent, name: variant, enum: enum}
}

func intEq(parent *dataPath, literal string) *dataPath {
	return &dataPath{kind: intLiteralPath, parent: parent, literal: literal}
}

func strEq(parent *dataPath, literal string) *dataPath {
	return &dataPath{kind: strLiteralPath, parent: parent, literal: literal}
}

func classAt(parent *dataPath, name string) *dataPath {
	return &dataPath{kind: classPath, parent: parent, name: name}
}

func wildcardAt(parent *dataPath) *dataPath {
	return &dataPath{kind: wildcardPath, parent: parent}
}

// getParent returns the path one structural step up; the root is its own
// parent.
func (p *dataPath) getParent() *dataPath {
	if p.kind == rootPath {
		return p
	}
	return p.parent
}

// isDescendantOf reports whether parent appears in p's parent chain.
func (p *dataPath) isDescendantOf(parent *dataPath) bool {
	cur := p.getParent()
	for {
		if cur.equal(parent) {
			return true
		}
		if cur.kind == rootPath {
			return false
		}
		cur = cur.getParent()
	}
}

func (p *dataPath) equal(o *dataPath) bool {
	if p == o {
		return true
	}
	if p == nil || o == nil || p.kind != o.kind {
		return false
	}
	if p.kind == rootPath {
		return true
	}
	if p.name != o.name || p.enum != o.enum ||
		p.index != o.index || p.arity != o.arity || p.literal != o.literal {
		return false
	}
	return p.parent.equal(o.parent)
}

// compare defines a total order: by kind, then by parent, then by the
// kind's own fields. Used to keep case and table orderings deterministic.
func (p *dataPath) compare(o *dataPath) int {
	if p == o {
		return 0
	}
	if p.kind != o.kind {
		if p.kind < o.kind {
			return -1
		}
		return 1
	}
	if p.kind == rootPath {
		return 0
	}
	if c := p.parent.compare(o.parent); c != 0 {
		return c
	}
	if c := strings.Compare(p.name, o.name); c != 0 {
		return c
	}
	if c := strings.Compare(p.enum, o.enum); c != 0 {
		return c
	}
	if p.index != o.index {
		if p.index < o.index {
			return -1
		}
		return 1
	}
	if p.arity != o.arity {
		if p.arity < o.arity {
			return -1
		}
		return 1
	}
	return strings.Compare(p.literal, o.literal)
}

// key is an injective text encoding used to key maps with paths.
func (p *dataPath) key() string {
	switch p.kind {
	case rootPath:
		return "R"
	case tuplePath:
		return fmt.Sprintf("%s/T%d", p.parent.key(), p.arity)
	case tupleIndexPath:
		return fmt.Sprintf("%s.t%d", p.parent.key(), p.index)
	case variantPath:
		return fmt.Sprintf("%s.v{%s}", p.parent.key(), p.name)
	case intLiteralPath:
		return fmt.Sprintf("%s[i:%s]", p.parent.key(), p.literal)
	case strLiteralPath:
		return fmt.Sprintf("%s[s:%s]", p.parent.key(), p.literal)
	case classPath:
		return fmt.Sprintf("%s.c{%s}", p.parent.key(), p.name)
	case wildcardPath:
		return p.parent.key() + "._"
	default:
		return "?"
	}
}

// String renders the path for diagnostics and debug output.
func (p *dataPath) String() string {
	switch p.kind {
	case rootPath:
		return "Root"
	case tuplePath:
		return fmt.Sprintf("%s/tuple%d", p.parent, p.arity)
	case tupleIndexPath:
		return fmt.Sprintf("%s.t%d", p.parent, p.index)
	case variantPath:
		return fmt.Sprintf("%s.%s", p.parent, p.name)
	case intLiteralPath:
		return fmt.Sprintf("%s[int:%s]", p.parent, p.literal)
	case strLiteralPath:
		return fmt.Sprintf("%s[str:%q]", p.parent, p.literal)
	case classPath:
		return fmt.Sprintf("%s.%s", p.parent, p.name)
	case wildcardPath:
		return p.parent.String() + "._"
	default:
		return "?"
	}
}

// A decisionPath is the ordered sequence of structural assertions that
// must all hold for one pattern to apply. Two paths reaching the same
// final position through different assertion orders are distinct.
type decisionPath struct {
	steps []*dataPath
}

// add returns a copy with one more step; the receiver is not mutated.
func (d decisionPath) add(step *dataPath) decisionPath {
	steps := make([]*dataPath, len(d.steps), len(d.steps)+1)
	copy(steps, d.steps)
	return decisionPath{steps: append(steps, step)}
}

func (d decisionPath) len() int { return len(d.steps) }

// hasPrefix reports whether prefix is a step-wise prefix of d.
func (d decisionPath) hasPrefix(prefix decisionPath) bool {
	if len(prefix.steps) > len(d.steps) {
		return false
	}
	for i, step := range prefix.steps {
		if !d.steps[i].equal(step) {
			return false
		}
	}
	return true
}

func (d decisionPath) key() string {
	parts := make([]string, len(d.steps))
	for i, s := range d.steps {
		parts[i] = s.key()
	}
	return strings.Join(parts, ";")
}

func (d decisionPath) String() string {
	parts := make([]string, len(d.steps))
	for i, s := range d.steps {
		parts[i] = s.String()
	}
	return strings.Join(parts, " -> ")
}
