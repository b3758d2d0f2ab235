package report

import "fmt"

// Diagnostic is the structured value the core hands to its collaborators: a
// severity, a stable code, the file it occurred in, the span of source text
// it concerns, its already-formatted message, and any notes. Diagnostic
// deliberately has no Render method — turning this into
// a human-readable string is the CLI collaborator's job.
type Diagnostic struct {
	Severity Severity
	Code     Code
	File     string
	Span     *Span
	Message  string
	Notes    []string
}

func (d *Diagnostic) Error() string {
	return d.Message
}

// Raise constructs a Diagnostic and panics with it. Every pipeline stage
// (lexer, parser, analyzer, emitter) calls Raise to abort on its first
// error; the entry point for each stage recovers the panic with Run.
// This keeps the deeply recursive parser and analyzer from threading an
// error return through every call.
func Raise(file string, span *Span, code Code, format string, args ...interface{}) {
	panic(&Diagnostic{
		Severity: SeverityError,
		Code:     code,
		File:     file,
		Span:     span,
		Message:  fmt.Sprintf(format, args...),
	})
}

// Internal raises an Internal diagnostic: these indicate a compiler bug, not
// a user error, and are always produced with CodeInternal regardless of the
// stage that detects the inconsistency.
func Internal(file string, span *Span, format string, args ...interface{}) {
	panic(&Diagnostic{
		Severity: SeverityError,
		Code:     CodeInternal,
		File:     file,
		Span:     span,
		Message:  fmt.Sprintf(format, args...),
	})
}

// Run executes stage and recovers any Diagnostic panic raised by Raise or
// Internal during it, returning that diagnostic instead of letting it
// unwind further. A non-Diagnostic panic (a real bug) is re-raised. Each
// stage entry point (syntax.Parse, walk.Analyze, generate.Emit) wraps its
// work in Run, and the pipeline driver aborts on the first non-nil
// diagnostic, so a failure in any stage stops the later ones from running
// on an inconsistent input.
func Run(stage func()) (diag *Diagnostic) {
	defer func() {
		if r := recover(); r != nil {
			if d, ok := r.(*Diagnostic); ok {
				diag = d
				return
			}

			panic(r)
		}
	}()

	stage()
	return nil
}
