package backend

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/veltlang/velt/internal/diagnostics"
	"github.com/veltlang/velt/internal/hir"
	"github.com/veltlang/velt/internal/pipeline"
	"github.com/veltlang/velt/internal/token"
)

func testModule() *hir.Module {
	fb := hir.NewFunctionBuilder("Main.answer", nil)
	fb.Terminate(&hir.Return{Value: fb.EmitIntConst("42")})
	return &hir.Module{Name: "Main", Functions: []*hir.Function{fb.Function()}}
}

func TestBackendWritesArtifact(t *testing.T) {
	out := t.TempDir()
	ctx := pipeline.NewPipelineContext("module Main\n")
	ctx.FilePath = "main.vt"
	ctx.HirModule = testModule()

	ctx = NewBackendProcessor(out).Process(ctx)
	if ctx.HasErrors() {
		t.Fatalf("unexpected errors: %v", ctx.Errors[0])
	}

	data, err := os.ReadFile(filepath.Join(out, "main.hir"))
	if err != nil {
		t.Fatalf("artifact not written: %v", err)
	}
	text := string(data)
	if !strings.Contains(text, "module Main") || !strings.Contains(text, "fn Main.answer") {
		t.Errorf("unexpected artifact contents:\n%s", text)
	}
}

func TestBackendSkipsOnErrors(t *testing.T) {
	out := t.TempDir()
	ctx := pipeline.NewPipelineContext("module Main\n")
	ctx.FilePath = "main.vt"
	ctx.HirModule = testModule()
	ctx.AddError(diagnostics.NewError(diagnostics.ErrA001, token.Token{}, "x is not defined"))

	NewBackendProcessor(out).Process(ctx)

	if _, err := os.Stat(filepath.Join(out, "main.hir")); err == nil {
		t.Errorf("artifact must not be written when diagnostics exist")
	}
}

func TestBackendCacheHitSkipsRewrite(t *testing.T) {
	out := t.TempDir()
	run := func() {
		ctx := pipeline.NewPipelineContext("module Main\n")
		ctx.FilePath = "main.vt"
		ctx.HirModule = testModule()
		ctx = NewBackendProcessor(out).Process(ctx)
		if ctx.HasErrors() {
			t.Fatalf("unexpected errors: %v", ctx.Errors[0])
		}
	}

	run()
	artifact := filepath.Join(out, "main.hir")
	first, err := os.Stat(artifact)
	if err != nil {
		t.Fatalf("artifact not written: %v", err)
	}

	run()
	second, err := os.Stat(artifact)
	if err != nil {
		t.Fatalf("artifact disappeared: %v", err)
	}
	if !second.ModTime().Equal(first.ModTime()) {
		t.Errorf("cache hit must not rewrite the artifact")
	}
}
