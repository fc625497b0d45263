package check

import (
	"time"

	"git.home.luguber.info/inful/doccheck/internal/diag"
	"git.home.luguber.info/inful/doccheck/internal/extract"
)

// Status classifies the outcome of processing one block.
type Status int

const (
	// StatusSkipped marks a block tagged with the skip modifier. Intentional, not an error.
	StatusSkipped Status = iota
	// StatusPassed marks a checked block the compiler accepted.
	StatusPassed
	// StatusDirectiveError marks malformed hidden-region nesting. The compiler is never invoked.
	StatusDirectiveError
	// StatusCompileFailure marks a compiler rejection with parseable diagnostics.
	StatusCompileFailure
	// StatusUnknownFailure marks a compiler rejection whose output could not be parsed.
	StatusUnknownFailure
	// StatusTimeoutFailure marks an invocation that exceeded its time budget.
	StatusTimeoutFailure
)

// String returns the machine-readable status name.
func (s Status) String() string {
	switch s {
	case StatusSkipped:
		return "skipped"
	case StatusPassed:
		return "passed"
	case StatusDirectiveError:
		return "directive_error"
	case StatusCompileFailure:
		return "compile_failure"
	case StatusUnknownFailure:
		return "unknown_failure"
	case StatusTimeoutFailure:
		return "timeout_failure"
	default:
		return "unknown"
	}
}

// Failed reports whether the status counts against the run's exit code.
func (s Status) Failed() bool {
	switch s {
	case StatusDirectiveError, StatusCompileFailure, StatusUnknownFailure, StatusTimeoutFailure:
		return true
	default:
		return false
	}
}

// MarshalText lets Status serialize as its name in JSON reports.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// BlockResult is the outcome of one processed block.
type BlockResult struct {
	Block       extract.CodeBlock        `json:"block"`
	Status      Status                   `json:"status"`
	Diagnostics []diag.RemappedDiagnostic `json:"diagnostics,omitempty"`
	// RawOutput carries the compiler's verbatim output for unknown failures,
	// so nothing is silently dropped.
	RawOutput string `json:"raw_output,omitempty"`
}

// RunSummary accumulates results across all blocks of one run, in scan order.
type RunSummary struct {
	RunID                string        `json:"run_id"`
	StartedAt            time.Time     `json:"started_at"`
	Duration             time.Duration `json:"duration_ns"`
	TotalBlocksFound     int           `json:"total_blocks_found"`
	Skipped              int           `json:"skipped"`
	Checked              int           `json:"checked"`
	Passed               int           `json:"passed"`
	Failed               int           `json:"failed"`
	Results              []BlockResult `json:"results"`
	InfrastructureErrors []string      `json:"infrastructure_errors,omitempty"`
}

// Add folds one block result into the counters. Skipped blocks count toward
// the total but never toward checked, passed, or failed.
func (s *RunSummary) Add(r BlockResult) {
	s.Results = append(s.Results, r)
	s.TotalBlocksFound++
	if r.Status == StatusSkipped {
		s.Skipped++
		return
	}
	s.Checked++
	if r.Status == StatusPassed {
		s.Passed++
	}
	if r.Status.Failed() {
		s.Failed++
	}
}

// AddInfrastructureError records a harness-level failure. Any such error
// forces a nonzero exit regardless of per-block outcomes.
func (s *RunSummary) AddInfrastructureError(msg string) {
	s.InfrastructureErrors = append(s.InfrastructureErrors, msg)
}

// ExitCode is 0 only when no block failed and no infrastructure error occurred.
func (s *RunSummary) ExitCode() int {
	if s.Failed > 0 || len(s.InfrastructureErrors) > 0 {
		return 1
	}
	return 0
}

// FailingResults returns results that count against the exit code, in scan order.
func (s *RunSummary) FailingResults() []BlockResult {
	var failing []BlockResult
	for _, r := range s.Results {
		if r.Status.Failed() {
			failing = append(failing, r)
		}
	}
	return failing
}
