package watch

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/nats-io/nats.go"

	"git.home.luguber.info/inful/doccheck/internal/check"
	"git.home.luguber.info/inful/doccheck/internal/logfields"
)

// Publisher forwards run summaries to interested subscribers.
type Publisher interface {
	PublishRun(summary *check.RunSummary) error
	Close()
}

// NATSPublisher publishes run summaries as JSON to a NATS subject, letting
// dashboards or notification bots react to documentation breakage.
type NATSPublisher struct {
	conn    *nats.Conn
	subject string
}

// NewNATSPublisher connects to the given NATS URL.
func NewNATSPublisher(url, subject string) (*NATSPublisher, error) {
	conn, err := nats.Connect(url, nats.Name("doccheck"))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}
	slog.Info("NATS publisher connected", slog.String("url", url), slog.String("subject", subject))
	return &NATSPublisher{conn: conn, subject: subject}, nil
}

// PublishRun sends one summary. Counts only; per-block results stay local.
func (p *NATSPublisher) PublishRun(summary *check.RunSummary) error {
	payload, err := json.Marshal(map[string]any{
		"run_id":    summary.RunID,
		"started":   summary.StartedAt,
		"total":     summary.TotalBlocksFound,
		"skipped":   summary.Skipped,
		"checked":   summary.Checked,
		"passed":    summary.Passed,
		"failed":    summary.Failed,
		"exit_code": summary.ExitCode(),
	})
	if err != nil {
		return fmt.Errorf("marshal run summary: %w", err)
	}
	if err := p.conn.Publish(p.subject, payload); err != nil {
		return fmt.Errorf("publish run summary: %w", err)
	}
	slog.Debug("Published run summary", logfields.RunID(summary.RunID), slog.String("subject", p.subject))
	return nil
}

// Close drains and closes the connection.
func (p *NATSPublisher) Close() {
	_ = p.conn.Drain()
}

// NoopPublisher is used when publishing is not configured.
type NoopPublisher struct{}

func (NoopPublisher) PublishRun(*check.RunSummary) error { return nil }
func (NoopPublisher) Close()                             {}
