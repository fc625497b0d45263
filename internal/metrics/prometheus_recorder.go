package metrics

import (
	"sync"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	once        sync.Once
	runDuration prom.Histogram
	blockStatus *prom.CounterVec
	runOutcome  *prom.CounterVec
	workers     prom.Gauge
}

// NewPrometheusRecorder constructs and registers Prometheus metrics (idempotent).
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{}
	pr.once.Do(func() {
		pr.runDuration = prom.NewHistogram(prom.HistogramOpts{
			Namespace: "doccheck",
			Name:      "run_duration_seconds",
			Help:      "Total duration of one full check run",
			Buckets:   prom.DefBuckets,
		})
		pr.blockStatus = prom.NewCounterVec(prom.CounterOpts{
			Namespace: "doccheck",
			Name:      "block_results_total",
			Help:      "Block results by status",
		}, []string{"status"})
		pr.runOutcome = prom.NewCounterVec(prom.CounterOpts{
			Namespace: "doccheck",
			Name:      "run_outcomes_total",
			Help:      "Run outcomes by final status",
		}, []string{"outcome"})
		pr.workers = prom.NewGauge(prom.GaugeOpts{
			Namespace: "doccheck",
			Name:      "check_workers",
			Help:      "Configured concurrent compiler invocations",
		})
		reg.MustRegister(pr.runDuration, pr.blockStatus, pr.runOutcome, pr.workers)
	})
	return pr
}

func (pr *PrometheusRecorder) ObserveRunDuration(d time.Duration) {
	pr.runDuration.Observe(d.Seconds())
}

func (pr *PrometheusRecorder) IncBlockStatus(status string) {
	pr.blockStatus.WithLabelValues(status).Inc()
}

func (pr *PrometheusRecorder) IncRunOutcome(outcome string) {
	pr.runOutcome.WithLabelValues(outcome).Inc()
}

func (pr *PrometheusRecorder) SetWorkers(n int) {
	pr.workers.Set(float64(n))
}
