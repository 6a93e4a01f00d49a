package parser

import (
	"github.com/veltlang/velt/internal/diagnostics"
	"github.com/veltlang/velt/internal/pipeline"
	"github.com/veltlang/velt/internal/token"
)

type ParserProcessor struct{}

func (pp *ParserProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.TokenStream == nil {
		// This case should not be hit if the lexer runs first, but as a safeguard:
		ctx.AddError(diagnostics.NewError(diagnostics.ErrP001, token.Token{}, "parser: token stream is nil"))
		return ctx
	}

	p := New(ctx.TokenStream, ctx)
	ctx.AstRoot = p.ParseProgram()
	if ctx.AstRoot != nil {
		ctx.AstRoot.File = ctx.FilePath
	}

	// Ensure all errors carry the file path.
	for _, err := range ctx.Errors {
		if err.File == "" {
			err.File = ctx.FilePath
		}
	}

	return ctx
}
