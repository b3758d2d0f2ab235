package report

import "sync"

// Enumeration of log levels a Reporter can be configured with. The core
// never reads these; the CLI collaborator stores the selected level on its
// Reporter, and no output is filtered by it.
const (
	LogLevelSilent = iota
	LogLevelError
	LogLevelWarn
	LogLevelVerbose
)

// Reporter accumulates warnings emitted during a compilation run and tracks
// whether any error has been seen. It is safe for concurrent use, even
// though a single compile run is itself strictly single-threaded — this
// guards the shared instance if the CLI is ever extended to drive
// multiple files at once.
type Reporter struct {
	m        sync.Mutex
	LogLevel int
	warnings []*Diagnostic
	errSeen  bool
}

// NewReporter creates a Reporter at the given log level.
func NewReporter(logLevel int) *Reporter {
	return &Reporter{LogLevel: logLevel}
}

// Error records a diagnostic as an error having been seen.
func (r *Reporter) Error(d *Diagnostic) {
	r.m.Lock()
	defer r.m.Unlock()

	r.errSeen = true
}

// Warn records a warning diagnostic for later display.
func (r *Reporter) Warn(d *Diagnostic) {
	r.m.Lock()
	defer r.m.Unlock()

	r.warnings = append(r.warnings, d)
}

// Warnings returns all warnings recorded so far, in emission order.
func (r *Reporter) Warnings() []*Diagnostic {
	r.m.Lock()
	defer r.m.Unlock()

	return append([]*Diagnostic(nil), r.warnings...)
}

// AnyErrors reports whether Error has been called at least once.
func (r *Reporter) AnyErrors() bool {
	r.m.Lock()
	defer r.m.Unlock()

	return r.errSeen
}
