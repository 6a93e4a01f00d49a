package symbols

import (
	"fmt"
)

// ResolveConstructor turns a surface constructor reference into a fully
// qualified variant name. The reference is either bare ("Some") or
// qualified by its enum ("Option.Some"). It reports "not a constructor"
// when no variant matches, and an ambiguity error when a bare name is
// declared by several enums.
func (t *Table) ResolveConstructor(qualifier, name string) (string, error) {
	if qualifier != "" {
		enumName := t.Module + "." + qualifier
		if _, ok := t.enums[enumName]; !ok {
			return "", fmt.Errorf("%s is not an enum", qualifier)
		}
		qv := enumName + "." + name
		if _, ok := t.variantEnum[qv]; !ok {
			return "", fmt.Errorf("%s.%s is not a constructor", qualifier, name)
		}
		return qv, nil
	}

	candidates := t.bySimpleName[name]
	switch len(candidates) {
	case 0:
		return "", fmt.Errorf("%s is not a constructor", name)
	case 1:
		return candidates[0], nil
	default:
		return "", fmt.Errorf("%s is ambiguous: declared by %d enums, qualify it", name, len(candidates))
	}
}
