package pipeline

import (
	"github.com/veltlang/velt/internal/ast"
	"github.com/veltlang/velt/internal/diagnostics"
	"github.com/veltlang/velt/internal/hir"
	"github.com/veltlang/velt/internal/symbols"
	"github.com/veltlang/velt/internal/token"
)

// Processor is one pipeline stage. A processor reads what earlier stages
// produced, fills in its own output and appends diagnostics; it never
// panics on missing input.
type Processor interface {
	Process(ctx *PipelineContext) *PipelineContext
}

// PipelineContext carries everything one compilation unit accumulates as
// it flows through the stages.
type PipelineContext struct {
	Source   string
	FilePath string

	TokenStream []token.Token
	AstRoot     *ast.Program
	Symbols     *symbols.Table
	HirModule   *hir.Module

	Errors []*diagnostics.DiagnosticError
}

func NewPipelineContext(source string) *PipelineContext {
	return &PipelineContext{Source: source}
}

// AddError appends a diagnostic, stamping the context's file path on it.
func (ctx *PipelineContext) AddError(err *diagnostics.DiagnosticError) {
	if err.File == "" {
		err.File = ctx.FilePath
	}
	ctx.Errors = append(ctx.Errors, err)
}

// HasErrors reports whether any stage produced diagnostics.
func (ctx *PipelineContext) HasErrors() bool {
	return len(ctx.Errors) > 0
}
