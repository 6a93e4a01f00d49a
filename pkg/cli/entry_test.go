package cli

import (
	"testing"

	"github.com/veltlang/velt/internal/diagnostics"
	"github.com/veltlang/velt/internal/token"
)

func diag(code diagnostics.ErrorCode) *diagnostics.DiagnosticError {
	return diagnostics.NewError(code, token.Token{}, "boom")
}

func TestExitCodeCleanRun(t *testing.T) {
	runs := [][]*diagnostics.DiagnosticError{nil, {}}
	if got := exitCode(runs); got != 0 {
		t.Errorf("expected exit 0, got %d", got)
	}
}

func TestExitCodeSourceErrors(t *testing.T) {
	runs := [][]*diagnostics.DiagnosticError{
		nil,
		{diag(diagnostics.ErrM001)},
	}
	if got := exitCode(runs); got != 1 {
		t.Errorf("expected exit 1, got %d", got)
	}
}

func TestExitCodeInternalOnlyRun(t *testing.T) {
	runs := [][]*diagnostics.DiagnosticError{
		{diag(diagnostics.ErrM002)},
		{diag(diagnostics.ErrI002)},
	}
	if got := exitCode(runs); got != 2 {
		t.Errorf("expected exit 2 for an internal-only failure, got %d", got)
	}
}

func TestExitCodeMixedDiagnosticsInOneRun(t *testing.T) {
	runs := [][]*diagnostics.DiagnosticError{
		{diag(diagnostics.ErrI001), diag(diagnostics.ErrA001)},
	}
	if got := exitCode(runs); got != 1 {
		t.Errorf("expected exit 1 when a run also has source errors, got %d", got)
	}
}
