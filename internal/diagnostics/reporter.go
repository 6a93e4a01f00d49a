package diagnostics

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

const (
	colorReset = "\033[0m"
	colorRed   = "\033[31m"
	colorBold  = "\033[1m"
)

// Reporter prints diagnostics in compiler style (file:line:col [CODE] msg),
// with colors when the destination is a terminal.
type Reporter struct {
	out   io.Writer
	color bool
}

func NewReporter(out io.Writer) *Reporter {
	color := false
	if f, ok := out.(*os.File); ok {
		color = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return &Reporter{out: out, color: color}
}

// NewStderrReporter is the reporter used by the CLI.
func NewStderrReporter() *Reporter {
	return NewReporter(os.Stderr)
}

func (r *Reporter) Report(errs []*DiagnosticError) {
	for _, e := range errs {
		r.reportOne(e)
	}
	if n := len(errs); n > 0 {
		fmt.Fprintf(r.out, "%d error(s) found\n", n)
	}
}

func (r *Reporter) reportOne(e *DiagnosticError) {
	label := "error"
	color := colorRed
	if e.IsInternal() {
		label = "internal error"
		color = colorBold + colorRed
	}
	if r.color {
		fmt.Fprintf(r.out, "%s%s:%s %s\n", color, label, colorReset, e.Error())
		return
	}
	fmt.Fprintf(r.out, "%s: %s\n", label, e.Error())
}
