package analyzer

import (
	"github.com/veltlang/velt/internal/ast"
	"github.com/veltlang/velt/internal/token"
)

// generateChoices synthesizes the sibling patterns "nearby" one canonical
// pattern: the other variants of the same enum, plus each sub-pattern
// position's own choices spliced back in with every other position held
// at wildcard. The result makes the decision tree total
// over the scrutinee's shape without enumerating cross-position products.
// The original pattern itself is never among the choices.
func (mc *matchCompiler) generateChoices(pattern ast.Pattern) []ast.Pattern {
	wildcard := func(tok token.Token) ast.Pattern {
		return &ast.WildcardPattern{Token: tok}
	}

	switch pat := pattern.(type) {
	case *ast.ConstructorPattern:
		name := pat.Name.Value
		enumName, ok := mc.table.EnumOf(name)
		if !ok {
			return nil
		}
		var result []ast.Pattern
		for _, variant := range mc.table.VariantsOf(enumName) {
			if variant == name {
				continue
			}
			arity, _ := mc.table.ArityOf(variant)
			args := make([]ast.Pattern, arity)
			for i := range args {
				args[i] = wildcard(pat.Token)
			}
			result = append(result, &ast.ConstructorPattern{
				Token:    pat.Token,
				Name:     &ast.Identifier{Token: pat.Name.Token, Value: variant},
				Elements: args,
			})
		}
		for index, arg := range pat.Elements {
			for _, choice := range mc.generateChoices(arg) {
				spliced := make([]ast.Pattern, len(pat.Elements))
				copy(spliced, pat.Elements[:index])
				spliced[index] = choice
				for i := index + 1; i < len(pat.Elements); i++ {
					spliced[i] = wildcard(pat.Token)
				}
				result = append(result, &ast.ConstructorPattern{
					Token:    pat.Token,
					Name:     &ast.Identifier{Token: pat.Name.Token, Value: name},
					Elements: spliced,
				})
			}
		}
		return result
	case *ast.TuplePattern:
		var result []ast.Pattern
		for index, arg := range pat.Elements {
			for _, choice := range mc.generateChoices(arg) {
				spliced := make([]ast.Pattern, len(pat.Elements))
				copy(spliced, pat.Elements[:index])
				spliced[index] = choice
				for i := index + 1; i < len(pat.Elements); i++ {
					spliced[i] = wildcard(pat.Token)
				}
				result = append(result, &ast.TuplePattern{Token: pat.Token, Elements: spliced})
			}
		}
		return result
	case *ast.LiteralPattern:
		// The infinite domain of non-matching literals collapses into a
		// single wildcard choice.
		return []ast.Pattern{wildcard(pat.Token)}
	default:
		// Bind and wildcard patterns already cover everything.
		return nil
	}
}
