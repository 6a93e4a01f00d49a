package analyzer

import (
	"strings"
	"testing"

	"github.com/veltlang/velt/internal/diagnostics"
	"github.com/veltlang/velt/internal/hir"
)

func TestMatchEnumExhaustive(t *testing.T) {
	input := `module Main

enum Option { Some(Int), None }

fn classify(o: Option) -> Int {
	match o {
		Some(x) -> x
		None -> 0
	}
}
`
	text := hirText(t, input)
	if !strings.Contains(text, "enumswitch") {
		t.Fatalf("expected an enum switch, got:\n%s", text)
	}
	if !strings.Contains(text, "Main.Option.Some->") || !strings.Contains(text, "Main.Option.None->") {
		t.Errorf("expected one case per variant, got:\n%s", text)
	}
	if !strings.Contains(text, "bind x") {
		t.Errorf("expected payload binding for x, got:\n%s", text)
	}
	if !strings.Contains(text, "phi") {
		t.Errorf("expected a merge phi, got:\n%s", text)
	}
}

// Enums are closed: a switch always enumerates every declared variant,
// and a variant no arm handles surfaces as a missing-pattern diagnostic.
func TestMatchEnumClosure(t *testing.T) {
	input := `module Main

enum Color { Red, Green, Blue }

fn f(c: Color) -> Int {
	match c {
		Red -> 0
		Green -> 1
	}
}
`
	e := expectErrorCode(t, input, diagnostics.ErrM001)
	if !strings.Contains(e.Error(), "Blue") {
		t.Errorf("expected the uncovered variant to be named, got: %s", e.Error())
	}
}

// Lower-index arms win among covering arms, so a later, more specific
// arm that a wildcard arm shadows is unreachable.
func TestMatchFirstArmWins(t *testing.T) {
	input := `module Main

enum Option { Some(Int), None }

fn f(o: Option) -> Int {
	match o {
		Some(_) -> 1
		Some(0) -> 2
		None -> 3
	}
}
`
	e := expectErrorCode(t, input, diagnostics.ErrM002)
	if !strings.Contains(e.Error(), "Some(0)") {
		t.Errorf("expected the shadowed arm in the message, got: %s", e.Error())
	}
}

func TestMatchRedundantAfterWildcard(t *testing.T) {
	input := `module Main

fn f(n: Int) -> Int {
	match n {
		_ -> 0
		5 -> 1
	}
}
`
	expectErrorCode(t, input, diagnostics.ErrM002)
}

// Tuple decomposition is unconditional: no switch is emitted for the
// tuple itself, only field projections.
func TestMatchTupleDecompose(t *testing.T) {
	input := `module Main

fn first(p: (Int, Int)) -> Int {
	match p {
		(a, b) -> a
	}
}
`
	text := hirText(t, input)
	if strings.Contains(text, "switch") {
		t.Errorf("tuple decomposition must not branch, got:\n%s", text)
	}
	if !strings.Contains(text, "field") {
		t.Errorf("expected field projections, got:\n%s", text)
	}
	if !strings.Contains(text, "bind a") || !strings.Contains(text, "bind b") {
		t.Errorf("expected bindings for both fields, got:\n%s", text)
	}
}

// Literal domains are open: the switch carries the tested literals plus
// a default, even when the source has a wildcard arm.
func TestMatchIntegerLiteralsGetDefault(t *testing.T) {
	input := `module Main

fn f(n: Int) -> Int {
	match n {
		0 -> 10
		1 -> 11
		_ -> 12
	}
}
`
	text := hirText(t, input)
	if !strings.Contains(text, "intswitch") {
		t.Fatalf("expected an integer switch, got:\n%s", text)
	}
	if !strings.Contains(text, "0->") || !strings.Contains(text, "1->") {
		t.Errorf("expected cases for 0 and 1, got:\n%s", text)
	}
	if !strings.Contains(text, "default->") {
		t.Errorf("expected a default case, got:\n%s", text)
	}
}

func TestMatchIntegerNonExhaustive(t *testing.T) {
	input := `module Main

fn f(n: Int) -> Int {
	match n {
		0 -> 10
	}
}
`
	expectErrorCode(t, input, diagnostics.ErrM001)
}

func TestMatchStringLiterals(t *testing.T) {
	input := `module Main

fn f(s: String) -> Int {
	match s {
		"yes" -> 1
		"no" -> 0
		_ -> 2
	}
}
`
	text := hirText(t, input)
	if !strings.Contains(text, "strswitch") {
		t.Fatalf("expected a string switch, got:\n%s", text)
	}
	if !strings.Contains(text, "yes->") || !strings.Contains(text, "no->") {
		t.Errorf("expected cases for both strings, got:\n%s", text)
	}
}

// Nested literal patterns inside a variant payload: the generated
// alternatives must make the inner literal switch total as well.
func TestMatchNestedPatterns(t *testing.T) {
	input := `module Main

enum Option { Some(Int), None }

fn f(o: Option) -> Int {
	match o {
		Some(0) -> 1
		Some(x) -> x
		None -> 0
	}
}
`
	text := hirText(t, input)
	if !strings.Contains(text, "enumswitch") || !strings.Contains(text, "intswitch") {
		t.Errorf("expected both switch kinds, got:\n%s", text)
	}
}

func TestMatchNestedNonExhaustive(t *testing.T) {
	input := `module Main

enum Option { Some(Int), None }

fn f(o: Option) -> Int {
	match o {
		Some(0) -> 1
		None -> 0
	}
}
`
	e := expectErrorCode(t, input, diagnostics.ErrM001)
	if !strings.Contains(e.Error(), "Some") {
		t.Errorf("expected the open payload shape in the message, got: %s", e.Error())
	}
}

func TestMatchQualifiedConstructor(t *testing.T) {
	input := `module Main

enum Option { Some(Int), None }

fn f(o: Option) -> Int {
	match o {
		Option.Some(x) -> x
		Option.None -> 0
	}
}
`
	expectNoErrors(t, input)
}

func TestMatchUnknownConstructor(t *testing.T) {
	input := `module Main

enum Option { Some(Int), None }

fn f(o: Option) -> Int {
	match o {
		Missing -> 0
		_ -> 1
	}
}
`
	e := expectErrorCode(t, input, diagnostics.ErrA003)
	if !strings.Contains(e.Error(), "Missing") {
		t.Errorf("expected the unresolved name, got: %s", e.Error())
	}
}

func TestMatchConstructorArity(t *testing.T) {
	input := `module Main

enum Option { Some(Int), None }

fn f(o: Option) -> Int {
	match o {
		Some(a, b) -> a
		None -> 0
	}
}
`
	expectErrorCode(t, input, diagnostics.ErrA004)
}

func TestMatchDuplicateBinding(t *testing.T) {
	input := `module Main

enum Pair { Two(Int, Int) }

fn f(p: Pair) -> Int {
	match p {
		Two(x, x) -> x
	}
}
`
	expectErrorCode(t, input, diagnostics.ErrA005)
}

// The same name bound by different arms is fine; each arm gets its own
// scope.
func TestMatchSiblingArmBindingsDoNotCollide(t *testing.T) {
	input := `module Main

enum Either { Left(Int), Right(Int) }

fn f(e: Either) -> Int {
	match e {
		Left(v) -> v
		Right(v) -> v + 1
	}
}
`
	expectNoErrors(t, input)
}

// Multi-field payloads group into one tuple value; binding every field
// and matching literals inside them must both work.
func TestMatchMultiFieldPayload(t *testing.T) {
	input := `module Main

enum Shape { Rect(Int, Int), Dot }

fn area(s: Shape) -> Int {
	match s {
		Rect(w, h) -> w * h
		Dot -> 0
	}
}
`
	text := hirText(t, input)
	if !strings.Contains(text, "payload") {
		t.Errorf("expected a payload projection, got:\n%s", text)
	}
	if !strings.Contains(text, "bind w") || !strings.Contains(text, "bind h") {
		t.Errorf("expected bindings for both fields, got:\n%s", text)
	}
}

func TestMatchWildcardOnEnum(t *testing.T) {
	input := `module Main

enum Color { Red, Green, Blue }

fn f(c: Color) -> Int {
	match c {
		Red -> 0
		_ -> 1
	}
}
`
	text := hirText(t, input)
	// Still one case per variant: the wildcard arm wins the Green and
	// Blue terminals.
	for _, variant := range []string{"Red", "Green", "Blue"} {
		if !strings.Contains(text, "Main.Color."+variant+"->") {
			t.Errorf("expected a case for %s, got:\n%s", variant, text)
		}
	}
}

func TestMatchResultFeedsMerge(t *testing.T) {
	input := `module Main

enum Option { Some(Int), None }

fn f(o: Option) -> Int {
	let r = match o {
		Some(x) -> x
		None -> 0
	}
	r
}
`
	module := expectNoErrors(t, input)
	fn := module.Functions[0]
	var phis int
	for _, blk := range fn.Blocks {
		for _, in := range blk.Instrs {
			if in.Op == hir.OpPhi {
				phis++
				if len(in.Incoming) != 2 {
					t.Errorf("expected 2 incoming edges, got %d", len(in.Incoming))
				}
			}
		}
	}
	if phis != 1 {
		t.Errorf("expected exactly one merge phi, got %d", phis)
	}
}

func TestMatchNoArms(t *testing.T) {
	input := `module Main

fn f(n: Int) -> Int {
	match n {
	}
}
`
	e := expectErrorCode(t, input, diagnostics.ErrM001)
	if !strings.Contains(e.Error(), "_ is not covered") {
		t.Errorf("expected an empty match to report nothing covered, got: %s", e.Error())
	}
}

// Every switch case chain rejoins one merge block, and the merge block
// carries the match result.
func TestMatchCaseBlocksConvergeOnMerge(t *testing.T) {
	input := `module Main

enum Option { Some(Int), None }

fn f(o: Option) -> Int {
	match o {
		Some(x) -> x
		None -> 0
	}
}
`
	module := expectNoErrors(t, input)
	fn := module.Functions[0]

	var sw *hir.EnumSwitch
	for _, blk := range fn.Blocks {
		if s, ok := blk.Term.(*hir.EnumSwitch); ok {
			sw = s
		}
	}
	if sw == nil {
		t.Fatalf("expected an enum switch terminator")
	}

	merge := hir.BlockID(-1)
	for _, c := range sw.Cases {
		blk := fn.Block(c.Target)
		if blk == nil {
			t.Fatalf("case %s targets a missing block b%d", c.Variant, c.Target)
		}
		j, ok := blk.Term.(*hir.Jump)
		if !ok {
			t.Fatalf("case block b%d does not end in a jump", blk.ID)
		}
		if merge == hir.BlockID(-1) {
			merge = j.Target
		} else if j.Target != merge {
			t.Errorf("case block b%d jumps to b%d, want b%d", blk.ID, j.Target, merge)
		}
	}

	mb := fn.Block(merge)
	if mb == nil {
		t.Fatalf("merge block b%d is missing", merge)
	}
	found := false
	for _, in := range mb.Instrs {
		if in.Op == hir.OpPhi {
			found = true
		}
	}
	if !found {
		t.Errorf("expected the merge block to carry the result phi")
	}
}

// A literal column is switched independently under each prefix: a string
// literal tested under a wildcard in the first column is not re-tested
// under a sibling integer case, so (0, "c") routes to the final wildcard
// arm rather than the earlier (_, "c") arm.
func TestMatchLiteralColumnsRouteByPrefix(t *testing.T) {
	input := `module Main

fn f(p: (Int, String)) -> Int {
	match p {
		(0, "a") -> 1
		(_, "c") -> 2
		_ -> 3
	}
}
`
	text := hirText(t, input)
	var caseZeroSwitch string
	for _, line := range strings.Split(text, "\n") {
		if strings.Contains(line, "strswitch") && strings.Contains(line, `"a"->`) {
			caseZeroSwitch = line
		}
	}
	if caseZeroSwitch == "" {
		t.Fatalf("expected a string switch under the 0 case, got:\n%s", text)
	}
	if strings.Contains(caseZeroSwitch, `"c"`) {
		t.Errorf("expected the 0-case switch to only test \"a\", got: %s", caseZeroSwitch)
	}
	if count := strings.Count(text, `"c"->`); count != 1 {
		t.Errorf("expected exactly one switch to test \"c\", got %d in:\n%s", count, text)
	}
}
