package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/veltlang/velt/internal/analyzer"
	"github.com/veltlang/velt/internal/backend"
	"github.com/veltlang/velt/internal/diagnostics"
	"github.com/veltlang/velt/internal/lexer"
	"github.com/veltlang/velt/internal/modules"
	"github.com/veltlang/velt/internal/parser"
	"github.com/veltlang/velt/internal/pipeline"
	"github.com/veltlang/velt/internal/token"
)

// compileFile runs one source file through the pipeline stages and
// reports its diagnostics. extra stages (the backend) run after analysis.
func compileFile(path string, reporter *diagnostics.Reporter, extra ...pipeline.Processor) []*diagnostics.DiagnosticError {
	source, err := modules.LoadSource(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return []*diagnostics.DiagnosticError{
			diagnostics.NewError(diagnostics.ErrB003, token.Token{}, err.Error()),
		}
	}

	stages := []pipeline.Processor{
		&lexer.LexerProcessor{},
		&parser.ParserProcessor{},
		analyzer.NewAnalyzerProcessor(),
	}
	stages = append(stages, extra...)

	ctx := pipeline.NewPipelineContext(source)
	ctx.FilePath = path
	ctx = pipeline.New(stages...).Run(ctx)

	if ctx.HasErrors() {
		reporter.Report(ctx.Errors)
	}
	return ctx.Errors
}

// exitCode folds per-file diagnostics into a process exit code: 0 for a
// clean run, 1 for source errors, 2 when a failed run produced only
// internal diagnostics.
func exitCode(runs [][]*diagnostics.DiagnosticError) int {
	code := 0
	for _, errs := range runs {
		if len(errs) == 0 {
			continue
		}
		if !diagnostics.HasUserErrors(errs) {
			return 2
		}
		code = 1
	}
	return code
}

// Check compiles sources without producing artifacts and returns a
// process exit code.
func Check(paths []string) int {
	reporter := diagnostics.NewStderrReporter()
	var runs [][]*diagnostics.DiagnosticError
	for _, path := range expandPaths(paths) {
		runs = append(runs, compileFile(path, reporter))
	}
	return exitCode(runs)
}

// Build compiles sources and writes HIR artifacts plus the incremental
// cache into outputDir. An empty outputDir uses the manifest's output
// directory when building a project, or "build" for loose files.
func Build(paths []string, outputDir string) int {
	reporter := diagnostics.NewStderrReporter()
	var runs [][]*diagnostics.DiagnosticError
	for _, path := range expandPaths(paths) {
		dir := outputDir
		if dir == "" {
			dir = outputDirFor(path)
		}
		be := backend.NewBackendProcessor(dir)
		runs = append(runs, compileFile(path, reporter, be))
	}
	return exitCode(runs)
}

// expandPaths turns each argument into concrete source files: a file
// stays as-is, a directory with a manifest contributes its project
// sources, any other directory is scanned for sources directly.
func expandPaths(paths []string) []string {
	var out []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			continue
		}
		if !info.IsDir() {
			out = append(out, path)
			continue
		}
		root := path
		if manifest, err := modules.LoadManifest(path); err == nil {
			root = manifest.SrcDir()
		}
		sources, err := modules.DiscoverSources(root)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			continue
		}
		if len(sources) == 0 {
			fmt.Fprintf(os.Stderr, "error: no source files under %s\n", root)
			continue
		}
		out = append(out, sources...)
	}
	return out
}

// outputDirFor resolves the artifact directory for one source file,
// honoring a project manifest above it when present.
func outputDirFor(path string) string {
	dir := filepath.Dir(path)
	for {
		if manifest, err := modules.LoadManifest(dir); err == nil {
			return manifest.OutputDir()
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "build"
		}
		dir = parent
	}
}
