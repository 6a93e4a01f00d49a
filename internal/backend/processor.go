package backend

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/veltlang/velt/internal/config"
	"github.com/veltlang/velt/internal/diagnostics"
	"github.com/veltlang/velt/internal/hir"
	"github.com/veltlang/velt/internal/pipeline"
	"github.com/veltlang/velt/internal/token"
)

// BackendProcessor writes the compiled module's HIR artifact into the
// output directory and records it in the build cache. It runs last and
// does nothing when an earlier stage produced diagnostics.
type BackendProcessor struct {
	OutputDir string
	session   string
}

// NewBackendProcessor creates a backend stage. Every processor instance
// gets its own build session id; cache rows record which session last
// produced each artifact.
func NewBackendProcessor(outputDir string) *BackendProcessor {
	return &BackendProcessor{
		OutputDir: outputDir,
		session:   uuid.NewString(),
	}
}

func (p *BackendProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.HasErrors() || ctx.HirModule == nil {
		return ctx
	}

	artifact := p.artifactPath(ctx.FilePath)
	sourceHash := HashSource(ctx.Source)

	if err := os.MkdirAll(p.OutputDir, 0o755); err != nil {
		ctx.AddError(diagnostics.NewError(diagnostics.ErrB002, token.Token{}, err.Error()))
		return ctx
	}
	cache, err := OpenCache(filepath.Join(p.OutputDir, config.CacheFileName))
	if err != nil {
		ctx.AddError(diagnostics.NewError(diagnostics.ErrB001, token.Token{}, err.Error()))
		return ctx
	}
	defer cache.Close()

	fresh, err := cache.IsFresh(sourceHash, artifact)
	if err != nil {
		ctx.AddError(diagnostics.NewError(diagnostics.ErrB001, token.Token{}, err.Error()))
		return ctx
	}
	if fresh {
		if _, statErr := os.Stat(artifact); statErr == nil {
			return ctx
		}
	}

	if err := p.writeArtifact(artifact, ctx.HirModule); err != nil {
		ctx.AddError(diagnostics.NewError(diagnostics.ErrB002, token.Token{}, err.Error()))
		return ctx
	}
	if err := cache.Record(sourceHash, ctx.FilePath, artifact, p.session); err != nil {
		ctx.AddError(diagnostics.NewError(diagnostics.ErrB001, token.Token{}, err.Error()))
	}
	return ctx
}

func (p *BackendProcessor) artifactPath(sourcePath string) string {
	base := filepath.Base(sourcePath)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	if base == "" || base == "." {
		base = "out"
	}
	return filepath.Join(p.OutputDir, base+".hir")
}

func (p *BackendProcessor) writeArtifact(path string, module *hir.Module) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(hir.Print(module)), 0o644)
}
