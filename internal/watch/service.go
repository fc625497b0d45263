package watch

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"

	"git.home.luguber.info/inful/doccheck/internal/check"
	"git.home.luguber.info/inful/doccheck/internal/config"
	dcerrors "git.home.luguber.info/inful/doccheck/internal/errors"
	"git.home.luguber.info/inful/doccheck/internal/history"
	"git.home.luguber.info/inful/doccheck/internal/logfields"
	"git.home.luguber.info/inful/doccheck/internal/metrics"
)

// Service ties watch mode together: filesystem triggers, scheduled triggers,
// check runs, history recording, metrics, and optional publishing.
type Service struct {
	cfg       *config.Config
	runner    *check.Runner
	store     *history.Store
	publisher Publisher
	registry  *prom.Registry
}

// NewService wires a watch service from configuration.
func NewService(cfg *config.Config) (*Service, error) {
	registry := prom.NewRegistry()
	recorder := metrics.NewPrometheusRecorder(registry)

	store, err := history.Open(cfg.Watch.HistoryDB)
	if err != nil {
		return nil, dcerrors.WatchSetup(err)
	}

	var publisher Publisher = NoopPublisher{}
	if cfg.Watch.NATS.URL != "" {
		publisher, err = NewNATSPublisher(cfg.Watch.NATS.URL, cfg.Watch.NATS.Subject)
		if err != nil {
			_ = store.Close()
			return nil, dcerrors.WatchSetup(err)
		}
	}

	return &Service{
		cfg:       cfg,
		runner:    check.NewRunner(cfg).WithRecorder(recorder),
		store:     store,
		publisher: publisher,
		registry:  registry,
	}, nil
}

// Run blocks until the context is cancelled. An initial full check runs
// immediately; afterwards filesystem changes and the periodic schedule both
// trigger full rescans (never incremental).
func (s *Service) Run(ctx context.Context) error {
	defer s.publisher.Close()
	defer func() { _ = s.store.Close() }()

	watcher, err := NewContentWatcher(s.cfg.Content.Root, s.cfg.Watch.Debounce.Std())
	if err != nil {
		return dcerrors.WatchSetup(err)
	}
	go watcher.Start(ctx)

	triggers := make(chan struct{}, 1)
	fire := func() {
		select {
		case triggers <- struct{}{}:
		default:
		}
	}

	if interval := s.cfg.Watch.Interval.Std(); interval > 0 {
		scheduler, err := NewScheduler()
		if err != nil {
			return dcerrors.WatchSetup(err)
		}
		if _, err := scheduler.SchedulePeriodicCheck(interval, fire); err != nil {
			return dcerrors.WatchSetup(err)
		}
		scheduler.Start()
		defer func() { _ = scheduler.Stop() }()
	}

	s.serveMetrics(ctx)

	slog.Info("Watch mode started",
		logfields.File(s.cfg.Content.Root),
		slog.String("metrics_addr", s.cfg.Watch.MetricsAddr))

	// Initial run, then triggered runs.
	s.runOnce(ctx)
	for {
		select {
		case <-ctx.Done():
			slog.Info("Watch mode stopping")
			return nil
		case <-watcher.Triggers():
			s.runOnce(ctx)
		case <-triggers:
			s.runOnce(ctx)
		}
	}
}

// runOnce performs one full check run. Failures inside a run are reported and
// absorbed: watch mode keeps watching, only cancellation stops it.
func (s *Service) runOnce(ctx context.Context) {
	summary, err := s.runner.Run(ctx)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		slog.Error("Check run failed", logfields.Error(err))
		return
	}

	if err := s.store.RecordRun(ctx, summary); err != nil {
		slog.Warn("Failed to record run history", logfields.Error(dcerrors.HistoryStore("record", err)))
	}
	if err := s.publisher.PublishRun(summary); err != nil {
		slog.Warn("Failed to publish run summary", logfields.Error(err))
	}
}

// serveMetrics exposes the Prometheus endpoint for the lifetime of the context.
func (s *Service) serveMetrics(ctx context.Context) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.HTTPHandler(s.registry))

	server := &http.Server{
		Addr:              s.cfg.Watch.MetricsAddr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Warn("Metrics server stopped", logfields.Error(err))
		}
	}()
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()
}
