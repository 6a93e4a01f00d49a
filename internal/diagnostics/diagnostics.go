package diagnostics

import (
	"fmt"
	"strings"

	"github.com/veltlang/velt/internal/token"
)

// DiagnosticError is the single error currency of the pipeline. Every
// stage appends them to the pipeline context instead of aborting, so a
// run surfaces as many diagnostics as possible.
type DiagnosticError struct {
	Code    ErrorCode
	Token   token.Token
	File    string
	Message string
}

func NewError(code ErrorCode, tok token.Token, args ...string) *DiagnosticError {
	msg := messages[code]
	if len(args) > 0 {
		msg = msg + ": " + strings.Join(args, ": ")
	}
	return &DiagnosticError{
		Code:    code,
		Token:   tok,
		Message: msg,
	}
}

func (e *DiagnosticError) Error() string {
	pos := ""
	if e.Token.Line > 0 {
		pos = fmt.Sprintf("%d:%d ", e.Token.Line, e.Token.Column)
	}
	if e.File != "" {
		return fmt.Sprintf("%s:%s[%s] %s", e.File, pos, e.Code, e.Message)
	}
	return fmt.Sprintf("%s[%s] %s", pos, e.Code, e.Message)
}

// IsInternal reports whether this diagnostic marks a compiler defect.
func (e *DiagnosticError) IsInternal() bool {
	return e.Code.IsInternal()
}

// HasUserErrors reports whether errs contains at least one non-internal
// diagnostic.
func HasUserErrors(errs []*DiagnosticError) bool {
	for _, e := range errs {
		if !e.IsInternal() {
			return true
		}
	}
	return false
}
