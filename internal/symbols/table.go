package symbols

import (
	"fmt"
)

// VariantDef is one declared case of an enum, in source order.
type VariantDef struct {
	Name  string // simple name, e.g. "Some"
	Arity int    // declared payload arity
}

// EnumDef is a declared enum type.
type EnumDef struct {
	Name     string // qualified name, e.g. "Main.Option"
	Module   string
	Variants []VariantDef
}

// FuncDef is a declared top-level function.
type FuncDef struct {
	Name  string
	Arity int
}

// Table is the frozen symbol table the analyzer builds from declarations
// before resolving any function body. It is never mutated during match
// compilation; concurrent readers are safe once Freeze has been called.
type Table struct {
	Module string

	enums     map[string]*EnumDef // by qualified enum name
	enumOrder []string

	variantEnum  map[string]string   // qualified variant -> qualified enum
	variantArity map[string]int      // qualified variant -> arity
	bySimpleName map[string][]string // simple variant name -> qualified variants

	funcs map[string]*FuncDef

	frozen bool
}

func NewTable(module string) *Table {
	return &Table{
		Module:       module,
		enums:        make(map[string]*EnumDef),
		variantEnum:  make(map[string]string),
		variantArity: make(map[string]int),
		bySimpleName: make(map[string][]string),
		funcs:        make(map[string]*FuncDef),
	}
}

// DefineEnum registers an enum and all of its variants. It reports an
// error for duplicate enum or variant names.
func (t *Table) DefineEnum(name string, variants []VariantDef) (*EnumDef, error) {
	if t.frozen {
		return nil, fmt.Errorf("symbol table is frozen")
	}
	qualified := t.Module + "." + name
	if _, exists := t.enums[qualified]; exists {
		return nil, fmt.Errorf("enum %s is already defined", name)
	}
	def := &EnumDef{Name: qualified, Module: t.Module, Variants: variants}
	seen := make(map[string]bool)
	for _, v := range variants {
		if seen[v.Name] {
			return nil, fmt.Errorf("variant %s is declared twice in enum %s", v.Name, name)
		}
		seen[v.Name] = true
		qv := qualified + "." + v.Name
		t.variantEnum[qv] = qualified
		t.variantArity[qv] = v.Arity
		t.bySimpleName[v.Name] = append(t.bySimpleName[v.Name], qv)
	}
	t.enums[qualified] = def
	t.enumOrder = append(t.enumOrder, qualified)
	return def, nil
}

// DefineFunction registers a top-level function.
func (t *Table) DefineFunction(name string, arity int) (*FuncDef, error) {
	if t.frozen {
		return nil, fmt.Errorf("symbol table is frozen")
	}
	if _, exists := t.funcs[name]; exists {
		return nil, fmt.Errorf("function %s is already defined", name)
	}
	def := &FuncDef{Name: name, Arity: arity}
	t.funcs[name] = def
	return def, nil
}

// Freeze marks the table read-only. Match compilation requires a frozen
// table so parallel compilation of functions stays race-free.
func (t *Table) Freeze() { t.frozen = true }

// Enum returns the enum definition for a qualified enum name.
func (t *Table) Enum(name string) (*EnumDef, bool) {
	def, ok := t.enums[name]
	return def, ok
}

// Enums returns all enums in declaration order.
func (t *Table) Enums() []*EnumDef {
	out := make([]*EnumDef, 0, len(t.enumOrder))
	for _, name := range t.enumOrder {
		out = append(out, t.enums[name])
	}
	return out
}

// VariantsOf returns the qualified variant names of an enum in source
// declaration order.
func (t *Table) VariantsOf(enumName string) []string {
	def, ok := t.enums[enumName]
	if !ok {
		return nil
	}
	out := make([]string, len(def.Variants))
	for i, v := range def.Variants {
		out[i] = def.Name + "." + v.Name
	}
	return out
}

// EnumOf returns the qualified enum name a qualified variant belongs to.
func (t *Table) EnumOf(variant string) (string, bool) {
	e, ok := t.variantEnum[variant]
	return e, ok
}

// ArityOf returns the declared payload arity of a qualified variant.
func (t *Table) ArityOf(variant string) (int, bool) {
	a, ok := t.variantArity[variant]
	return a, ok
}

// Function returns a registered function definition.
func (t *Table) Function(name string) (*FuncDef, bool) {
	def, ok := t.funcs[name]
	return def, ok
}
