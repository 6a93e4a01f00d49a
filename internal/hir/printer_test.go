package hir

import (
	"strings"
	"testing"
)

func TestBuilderAssignsSequentialValues(t *testing.T) {
	fb := NewFunctionBuilder("Main.f", []string{"x", "y"})
	x, ok := fb.ParamValue("x")
	if !ok || x != ValueID(0) {
		t.Errorf("param x = v%d, %v", x, ok)
	}
	y, _ := fb.ParamValue("y")
	if y != ValueID(1) {
		t.Errorf("param y = v%d", y)
	}
	sum := fb.EmitBinary("+", x, y)
	if sum != ValueID(2) {
		t.Errorf("first instruction = v%d", sum)
	}
	if _, ok := fb.ParamValue("z"); ok {
		t.Errorf("unknown param must not resolve")
	}
}

func TestTerminateFirstWriteWins(t *testing.T) {
	fb := NewFunctionBuilder("Main.f", nil)
	fb.Terminate(&Return{Value: fb.EmitUnit()})
	fb.Terminate(&Jump{Target: 1})
	if _, ok := fb.Function().Entry().Term.(*Return); !ok {
		t.Errorf("second terminator overwrote the first: %T", fb.Function().Entry().Term)
	}
}

func TestPrintModule(t *testing.T) {
	fb := NewFunctionBuilder("Main.pick", []string{"o"})
	o, _ := fb.ParamValue("o")

	someBlk := fb.NewBlock()
	noneBlk := fb.NewBlock()
	merge := fb.NewBlock()
	fb.Terminate(&EnumSwitch{Value: o, Enum: "Main.Option", Cases: []SwitchCase{
		{Variant: "Main.Option.Some", Target: someBlk.ID},
		{Variant: "Main.Option.None", Target: noneBlk.ID},
	}})

	fb.SetBlock(someBlk)
	payload := fb.EmitPayload(o, "Main.Option.Some")
	fb.Terminate(&Jump{Target: merge.ID})

	fb.SetBlock(noneBlk)
	zero := fb.EmitIntConst("0")
	fb.Terminate(&Jump{Target: merge.ID})

	fb.SetBlock(merge)
	result := fb.EmitPhi([]Incoming{
		{Block: someBlk.ID, Value: payload},
		{Block: noneBlk.ID, Value: zero},
	})
	fb.Terminate(&Return{Value: result})

	text := Print(&Module{Name: "Main", Functions: []*Function{fb.Function()}})

	for _, want := range []string{
		"module Main",
		"fn Main.pick(o=v0)",
		"enumswitch v0 [Main.Option.Some->b1 Main.Option.None->b2]",
		"payload v0 as Main.Option.Some",
		"int 0",
		"phi b1:v1 b2:v2",
		"return v3",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("missing %q in:\n%s", want, text)
		}
	}
}

func TestPrintIsDeterministic(t *testing.T) {
	build := func() string {
		fb := NewFunctionBuilder("Main.f", []string{"n"})
		n, _ := fb.ParamValue("n")
		fb.Terminate(&LiteralSwitch{Value: n, Cases: []LiteralCase{{Value: "0", Target: 0}}, Default: 0})
		return Print(&Module{Name: "Main", Functions: []*Function{fb.Function()}})
	}
	if build() != build() {
		t.Errorf("identical modules must print identically")
	}
}
