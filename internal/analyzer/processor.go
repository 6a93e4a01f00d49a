package analyzer

import (
	"github.com/veltlang/velt/internal/pipeline"
)

// AnalyzerProcessor is the pipeline stage that resolves declarations and
// lowers the AST to HIR.
type AnalyzerProcessor struct{}

func NewAnalyzerProcessor() *AnalyzerProcessor {
	return &AnalyzerProcessor{}
}

func (p *AnalyzerProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.AstRoot == nil {
		return ctx
	}
	an := New(ctx)
	an.Analyze(ctx.AstRoot)
	ctx.Symbols = an.table
	ctx.HirModule = an.module
	return ctx
}
