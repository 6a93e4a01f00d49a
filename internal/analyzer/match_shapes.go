package analyzer

import (
	"fmt"
)

// shapeKind classifies what occupies a data-path position across the
// whole match set.
type shapeKind int

const (
	enumShape shapeKind = iota
	tupleShape
	intShape
	strShape
	classShape
)

type shape struct {
	kind  shapeKind
	name  string // qualified enum or class name
	arity int    // tupleShape only
}

func (s shape) String() string {
	switch s.kind {
	case enumShape:
		return fmt.Sprintf("Enum(%s)", s.name)
	case tupleShape:
		return fmt.Sprintf("Tuple(%d)", s.arity)
	case intShape:
		return "Integer"
	case strShape:
		return "String"
	case classShape:
		return fmt.Sprintf("Class(%s)", s.name)
	default:
		return "?"
	}
}

type shapeEntry struct {
	path *dataPath
	sh   shape
}

// shapeTable maps parent positions to their inferred shapes. Built once
// per match expression; read-only afterwards.
type shapeTable struct {
	entries map[string]shapeEntry // keyed by dataPath.key()
}

func (t *shapeTable) lookup(path *dataPath) (shape, bool) {
	e, ok := t.entries[path.key()]
	return e.sh, ok
}

// inferShapes scans every decision step of every match and classifies
// each parent position by the decision kind that constrains it. A
// position inferred as two different shapes means an ill-typed pattern
// survived earlier passes; that is a compiler defect, not a user error.
func inferShapes(matches []*matchEntry) (*shapeTable, error) {
	table := &shapeTable{entries: make(map[string]shapeEntry)}

	record := func(parent *dataPath, sh shape) error {
		key := parent.key()
		if existing, ok := table.entries[key]; ok {
			if existing.sh != sh {
				return fmt.Errorf("position %s inferred as both %s and %s",
					parent, existing.sh, sh)
			}
			return nil
		}
		table.entries[key] = shapeEntry{path: parent, sh: sh}
		return nil
	}

	for _, m := range matches {
		for _, step := range m.decision.steps {
			var err error
			switch step.kind {
			case tuplePath:
				err = record(step.parent, shape{kind: tupleShape, arity: step.arity})
			case variantPath:
				err = record(step.parent, shape{kind: enumShape, name: step.enum})
			case intLiteralPath:
				err = record(step.parent, shape{kind: intShape})
			case strLiteralPath:
				err = record(step.parent, shape{kind: strShape})
			case classPath:
				err = record(step.parent, shape{kind: classShape, name: step.name})
			case rootPath, tupleIndexPath, wildcardPath:
				// No shape contribution.
			}
			if err != nil {
				return nil, err
			}
		}
	}
	return table, nil
}
