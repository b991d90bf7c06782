package diagnostics_test

import (
	"bytes"
	"errors"
	"log"
	"strings"
	"testing"

	"fec-go/packages/compiler/src/diagnostics"
)

func TestReport(t *testing.T) {
	t.Run("should deliver every message to the handler", func(t *testing.T) {
		var seen []diagnostics.CompilationMessage
		r := diagnostics.NewReporter(func(m diagnostics.CompilationMessage) {
			seen = append(seen, m)
		}, nil, false, false)

		if err := r.Report(diagnostics.CompilationMessage{Severity: diagnostics.SeverityWarning, Message: "w"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := r.Report(diagnostics.CompilationMessage{Severity: diagnostics.SeverityError, Message: "e"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(seen) != 2 {
			t.Errorf("Expected 2 messages through the handler, got %d", len(seen))
		}
	})

	t.Run("should not touch the console when reporting is disabled", func(t *testing.T) {
		var buf bytes.Buffer
		logger := log.New(&buf, "", 0)
		r := diagnostics.NewReporter(func(diagnostics.CompilationMessage) {}, logger, false, false)

		_ = r.Report(diagnostics.CompilationMessage{Severity: diagnostics.SeverityError, Message: "quiet"})
		if buf.Len() != 0 {
			t.Errorf("Expected no console output, got %q", buf.String())
		}
	})

	t.Run("should log to the console when reporting is enabled", func(t *testing.T) {
		var buf bytes.Buffer
		logger := log.New(&buf, "", 0)
		r := diagnostics.NewReporter(nil, logger, true, false)

		_ = r.Report(diagnostics.CompilationMessage{Severity: diagnostics.SeverityWarning, Message: "loud", Code: "W001"})
		if !strings.Contains(buf.String(), "warning: loud [W001]") {
			t.Errorf("Expected console output to contain the message, got %q", buf.String())
		}
	})

	t.Run("should drop ignored messages entirely", func(t *testing.T) {
		calls := 0
		r := diagnostics.NewReporter(func(diagnostics.CompilationMessage) { calls++ }, nil, false, false)

		_ = r.Report(diagnostics.CompilationMessage{Severity: diagnostics.SeverityIgnored, Message: "nothing"})
		if calls != 0 {
			t.Errorf("Expected ignored message to be dropped, handler ran %d times", calls)
		}
	})

	t.Run("should stop on the first fatal message in strict mode", func(t *testing.T) {
		r := diagnostics.NewReporter(nil, nil, false, true)

		if err := r.Report(diagnostics.CompilationMessage{Severity: diagnostics.SeverityWarning, Message: "w"}); err != nil {
			t.Fatalf("warnings must not stop the compilation: %v", err)
		}
		err := r.Report(diagnostics.CompilationMessage{Severity: diagnostics.SeverityError, Message: "boom"})
		if !errors.Is(err, diagnostics.ErrStopOnError) {
			t.Errorf("Expected ErrStopOnError, got %v", err)
		}
	})
}

func TestProblems(t *testing.T) {
	t.Run("should accumulate fatal messages only", func(t *testing.T) {
		r := diagnostics.NewReporter(nil, nil, false, false)

		_ = r.Report(diagnostics.CompilationMessage{Severity: diagnostics.SeverityWarning, Message: "w"})
		if r.HasProblems() {
			t.Error("Expected no problems after a warning")
		}

		_ = r.Report(diagnostics.CompilationMessage{Severity: diagnostics.SeverityError, Message: "first"})
		_ = r.Report(diagnostics.CompilationMessage{Severity: diagnostics.SeverityInternalProblem, Message: "second"})
		if !r.HasProblems() {
			t.Fatal("Expected problems after fatal messages")
		}
		text := r.Problems().Error()
		if !strings.Contains(text, "first") || !strings.Contains(text, "second") {
			t.Errorf("Expected both fatal messages in the batch, got %q", text)
		}
	})
}
