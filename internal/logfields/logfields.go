package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyRunID      = "run_id"
	KeyStage      = "stage"
	KeyFile       = "file"
	KeyLine       = "line"
	KeyBlocks     = "blocks"
	KeyStatus     = "status"
	KeyDurationMS = "duration_ms"
	KeyWorkers    = "workers"
	KeyCompiler   = "compiler"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func RunID(id string) slog.Attr       { return slog.String(KeyRunID, id) }
func Stage(name string) slog.Attr     { return slog.String(KeyStage, name) }
func File(path string) slog.Attr      { return slog.String(KeyFile, path) }
func Line(n int) slog.Attr            { return slog.Int(KeyLine, n) }
func Blocks(n int) slog.Attr          { return slog.Int(KeyBlocks, n) }
func Status(s string) slog.Attr       { return slog.String(KeyStatus, s) }
func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDurationMS, ms) }
func Workers(n int) slog.Attr         { return slog.Int(KeyWorkers, n) }
func Compiler(path string) slog.Attr  { return slog.String(KeyCompiler, path) }

func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
