package lexer

import (
	"github.com/veltlang/velt/internal/diagnostics"
	"github.com/veltlang/velt/internal/pipeline"
	"github.com/veltlang/velt/internal/token"
)

type LexerProcessor struct{}

func (lp *LexerProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	l := New(ctx.Source)
	stream := l.Tokenize()

	for _, tok := range stream {
		if tok.Type == token.ILLEGAL {
			if tok.Literal == nil {
				ctx.AddError(diagnostics.NewError(diagnostics.ErrL002, tok))
			} else {
				ctx.AddError(diagnostics.NewError(diagnostics.ErrL001, tok, tok.Lexeme))
			}
		}
	}

	ctx.TokenStream = stream
	return ctx
}
