package analyzer

import (
	"testing"
)

func TestDataPathDescendants(t *testing.T) {
	variant := variantAt(rootData, "Main.Option.Some", "Main.Option")
	field := fieldAt(variant, 0)
	literal := intEq(field, "0")

	if !variant.isDescendantOf(rootData) {
		t.Errorf("variant should descend from root")
	}
	if !literal.isDescendantOf(variant) {
		t.Errorf("descendant relation should be transitive")
	}
	if !literal.isDescendantOf(field) {
		t.Errorf("literal should descend from its field")
	}
	if rootData.isDescendantOf(variant) {
		t.Errorf("root descends from nothing")
	}
	if field.isDescendantOf(fieldAt(variant, 1)) {
		t.Errorf("sibling fields are not related")
	}
}

func TestDataPathEquality(t *testing.T) {
	a := variantAt(rootData, "Main.Option.Some", "Main.Option")
	b := variantAt(rootData, "Main.Option.Some", "Main.Option")
	c := variantAt(rootData, "Main.Option.None", "Main.Option")

	if !a.equal(b) {
		t.Errorf("structurally identical paths must be equal")
	}
	if a.equal(c) {
		t.Errorf("different variants must not be equal")
	}
	if a.key() != b.key() {
		t.Errorf("equal paths must share a key: %q vs %q", a.key(), b.key())
	}
	if a.key() == c.key() {
		t.Errorf("distinct paths must have distinct keys: %q", a.key())
	}
	if a.compare(c) == 0 {
		t.Errorf("compare must order distinct paths")
	}
	if a.compare(b) != 0 {
		t.Errorf("compare must treat equal paths as equal")
	}
}

func TestDecisionPathAddIsCopyOnWrite(t *testing.T) {
	base := decisionPath{}.add(tupleOf(rootData, 2))
	left := base.add(fieldAt(rootData, 0))
	right := base.add(fieldAt(rootData, 1))

	if base.len() != 1 {
		t.Errorf("add must not mutate the receiver, len = %d", base.len())
	}
	if !left.hasPrefix(base) || !right.hasPrefix(base) {
		t.Errorf("extensions must keep the shared prefix")
	}
	if left.hasPrefix(right) {
		t.Errorf("diverging paths are not prefixes of each other")
	}
}

func TestConsumeLeadingWildcard(t *testing.T) {
	variant := variantAt(rootData, "Main.Option.Some", "Main.Option")
	terminal := []*dataPath{variant, intEq(variant, "0")}

	// A wildcard at the root accounts for every structural descendant.
	rest := consumeLeading(wildcardAt(rootData), terminal)
	if len(rest) != 0 {
		t.Errorf("root wildcard should consume the whole terminal, %d left", len(rest))
	}

	// A wildcard below the variant only accounts for steps under it.
	rest = consumeLeading(wildcardAt(variant), terminal)
	if len(rest) != 2 {
		t.Errorf("variant-level wildcard must not consume the variant step itself, %d left", len(rest))
	}
}
