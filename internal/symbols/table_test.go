package symbols

import (
	"testing"
)

func optionTable(t *testing.T) *Table {
	t.Helper()
	table := NewTable("Main")
	_, err := table.DefineEnum("Option", []VariantDef{
		{Name: "Some", Arity: 1},
		{Name: "None", Arity: 0},
	})
	if err != nil {
		t.Fatalf("DefineEnum: %v", err)
	}
	return table
}

func TestVariantsInDeclarationOrder(t *testing.T) {
	table := optionTable(t)
	variants := table.VariantsOf("Main.Option")
	if len(variants) != 2 {
		t.Fatalf("expected 2 variants, got %d", len(variants))
	}
	if variants[0] != "Main.Option.Some" || variants[1] != "Main.Option.None" {
		t.Errorf("wrong order: %v", variants)
	}
}

func TestEnumAndArityLookups(t *testing.T) {
	table := optionTable(t)
	if e, ok := table.EnumOf("Main.Option.Some"); !ok || e != "Main.Option" {
		t.Errorf("EnumOf = %q, %v", e, ok)
	}
	if a, ok := table.ArityOf("Main.Option.Some"); !ok || a != 1 {
		t.Errorf("ArityOf(Some) = %d, %v", a, ok)
	}
	if a, ok := table.ArityOf("Main.Option.None"); !ok || a != 0 {
		t.Errorf("ArityOf(None) = %d, %v", a, ok)
	}
}

func TestResolveConstructorBare(t *testing.T) {
	table := optionTable(t)
	qv, err := table.ResolveConstructor("", "Some")
	if err != nil {
		t.Fatalf("ResolveConstructor: %v", err)
	}
	if qv != "Main.Option.Some" {
		t.Errorf("wrong qualified name: %s", qv)
	}
}

func TestResolveConstructorQualified(t *testing.T) {
	table := optionTable(t)
	qv, err := table.ResolveConstructor("Option", "None")
	if err != nil {
		t.Fatalf("ResolveConstructor: %v", err)
	}
	if qv != "Main.Option.None" {
		t.Errorf("wrong qualified name: %s", qv)
	}
}

func TestResolveConstructorUnknown(t *testing.T) {
	table := optionTable(t)
	if _, err := table.ResolveConstructor("", "Missing"); err == nil {
		t.Errorf("expected a resolution error")
	}
	if _, err := table.ResolveConstructor("Missing", "Some"); err == nil {
		t.Errorf("expected an unknown-enum error")
	}
}

func TestResolveConstructorAmbiguous(t *testing.T) {
	table := optionTable(t)
	if _, err := table.DefineEnum("Fallback", []VariantDef{{Name: "None", Arity: 0}}); err != nil {
		t.Fatalf("DefineEnum: %v", err)
	}
	if _, err := table.ResolveConstructor("", "None"); err == nil {
		t.Errorf("expected an ambiguity error")
	}
	qv, err := table.ResolveConstructor("Fallback", "None")
	if err != nil {
		t.Fatalf("qualified resolution should disambiguate: %v", err)
	}
	if qv != "Main.Fallback.None" {
		t.Errorf("wrong qualified name: %s", qv)
	}
}

func TestDuplicateDefinitions(t *testing.T) {
	table := optionTable(t)
	if _, err := table.DefineEnum("Option", nil); err == nil {
		t.Errorf("expected duplicate enum error")
	}
	if _, err := table.DefineEnum("Bad", []VariantDef{{Name: "X"}, {Name: "X"}}); err == nil {
		t.Errorf("expected duplicate variant error")
	}
}

func TestFrozenTableRejectsDefinitions(t *testing.T) {
	table := optionTable(t)
	table.Freeze()
	if _, err := table.DefineEnum("Late", nil); err == nil {
		t.Errorf("expected frozen table to reject definitions")
	}
	if _, err := table.DefineFunction("late", 0); err == nil {
		t.Errorf("expected frozen table to reject functions")
	}
}
