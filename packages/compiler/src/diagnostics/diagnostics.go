package diagnostics

import (
	"errors"
	"fmt"
	"log"

	"github.com/hashicorp/go-multierror"
)

// Severity classifies a compilation message.
type Severity int

const (
	SeverityIgnored Severity = iota
	SeverityWarning
	SeverityError
	SeverityInternalProblem
)

func (s Severity) String() string {
	switch s {
	case SeverityIgnored:
		return "ignored"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	case SeverityInternalProblem:
		return "internal problem"
	}
	return "unknown"
}

// IsFatal reports whether the severity counts as a problem for exit-code and
// strict-mode purposes.
func (s Severity) IsFatal() bool {
	return s >= SeverityError
}

// CompilationMessage is one diagnostic produced during compilation.
type CompilationMessage struct {
	Severity Severity
	Code     string
	Message  string
}

func (m CompilationMessage) String() string {
	if m.Code == "" {
		return fmt.Sprintf("%s: %s", m.Severity, m.Message)
	}
	return fmt.Sprintf("%s: %s [%s]", m.Severity, m.Message, m.Code)
}

// ErrorHandler receives every reported message when the caller supplies one.
type ErrorHandler func(CompilationMessage)

// ErrStopOnError is returned by Report in strict mode when a fatal message
// arrives, so the caller can abandon the compilation at the first failure.
var ErrStopOnError = errors.New("diagnostics: compilation stopped on first error")

// Reporter applies the two-mode reporting policy: messages always reach the
// caller's handler when one is set, and reach the logger only when console
// reporting is enabled. Fatal messages accumulate as problems; in strict mode
// the first fatal message also aborts via ErrStopOnError.
type Reporter struct {
	handler        ErrorHandler
	logger         *log.Logger
	reportMessages bool
	stopOnError    bool
	problems       *multierror.Error
}

// NewReporter creates a reporter. logger may be nil when reportMessages is
// false.
func NewReporter(handler ErrorHandler, logger *log.Logger, reportMessages, stopOnError bool) *Reporter {
	return &Reporter{
		handler:        handler,
		logger:         logger,
		reportMessages: reportMessages,
		stopOnError:    stopOnError,
	}
}

// Report delivers one message according to the policy. It returns a non-nil
// error only for fatal messages in strict mode.
func (r *Reporter) Report(msg CompilationMessage) error {
	if msg.Severity == SeverityIgnored {
		return nil
	}
	if r.handler != nil {
		r.handler(msg)
	}
	if r.reportMessages && r.logger != nil {
		r.logger.Print(msg.String())
	}
	if msg.Severity.IsFatal() {
		r.problems = multierror.Append(r.problems, errors.New(msg.String()))
		if r.stopOnError {
			return fmt.Errorf("%w: %s", ErrStopOnError, msg.Message)
		}
	}
	return nil
}

// Problems returns the accumulated fatal messages as a single error, or nil
// when none were reported.
func (r *Reporter) Problems() error {
	return r.problems.ErrorOrNil()
}

// HasProblems reports whether any fatal message was reported.
func (r *Reporter) HasProblems() bool {
	return r.problems.ErrorOrNil() != nil
}
