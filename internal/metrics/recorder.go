// Package metrics defines observability hooks for check runs. The one-shot
// CLI uses the noop recorder; watch mode wires the Prometheus implementation.
package metrics

import "time"

// Recorder defines hooks recorded during a check run. Implementations may
// forward to Prometheus or stay silent (NoopRecorder).
type Recorder interface {
	ObserveRunDuration(d time.Duration)
	IncBlockStatus(status string)
	IncRunOutcome(outcome string) // outcome: pass|fail|infrastructure|canceled
	SetWorkers(n int)
}

// NoopRecorder is a Recorder that does nothing (default when metrics not configured).
type NoopRecorder struct{}

func (NoopRecorder) ObserveRunDuration(time.Duration) {}
func (NoopRecorder) IncBlockStatus(string)            {}
func (NoopRecorder) IncRunOutcome(string)             {}
func (NoopRecorder) SetWorkers(int)                   {}
