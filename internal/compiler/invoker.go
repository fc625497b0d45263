// Package compiler drives the external compiler binary over a process
// boundary. The Invoker interface is deliberately narrow so diagnostic
// parsing and scheduling can evolve without touching process handling.
package compiler

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	dcerrors "git.home.luguber.info/inful/doccheck/internal/errors"
	"git.home.luguber.info/inful/doccheck/internal/logfields"
)

// Result captures one compiler invocation against a synthetic unit.
type Result struct {
	ExitCode int
	Output   string // combined stdout+stderr, verbatim
	TimedOut bool
}

// Invoker submits a synthetic unit to the compiler's check mode.
type Invoker interface {
	Invoke(ctx context.Context, unitText string) (Result, error)
}

// ExecInvoker runs the configured compiler binary as a subprocess.
type ExecInvoker struct {
	path     string
	checkArg string
	ext      string // temp file extension, usually the language tag
	timeout  time.Duration
}

// NewExecInvoker creates an invoker for `<path> <checkArg> <unitfile>` with a
// per-invocation time budget.
func NewExecInvoker(path, checkArg, ext string, timeout time.Duration) *ExecInvoker {
	return &ExecInvoker{path: path, checkArg: checkArg, ext: ext, timeout: timeout}
}

// Invoke writes the unit to a uniquely named temporary file, runs the
// compiler against it, and captures combined output. The temporary file is
// removed on every exit path. Exceeding the time budget kills the subprocess
// and reports TimedOut instead of hanging the run.
func (e *ExecInvoker) Invoke(ctx context.Context, unitText string) (Result, error) {
	unitPath := filepath.Join(os.TempDir(), "doccheck-"+uuid.NewString()+"."+e.ext)
	if err := os.WriteFile(unitPath, []byte(unitText), 0o600); err != nil {
		return Result{}, dcerrors.UnitWrite(unitPath, err)
	}
	defer func() {
		if err := os.Remove(unitPath); err != nil {
			slog.Warn("Failed to remove synthetic unit file", logfields.File(unitPath), logfields.Error(err))
		}
	}()

	runCtx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	cmd := exec.CommandContext(runCtx, e.path, e.checkArg, unitPath)
	cmd.WaitDelay = 2 * time.Second // force-kill grace after cancellation
	output, runErr := cmd.CombinedOutput()

	// Run-level cancellation wins over per-invocation timeout.
	if ctx.Err() != nil {
		return Result{}, ctx.Err()
	}
	if errors.Is(runCtx.Err(), context.DeadlineExceeded) {
		return Result{Output: string(output), TimedOut: true}, nil
	}

	if runErr == nil {
		return Result{ExitCode: 0, Output: string(output)}, nil
	}
	var exitErr *exec.ExitError
	if errors.As(runErr, &exitErr) {
		return Result{ExitCode: exitErr.ExitCode(), Output: string(output)}, nil
	}
	// The binary never ran (missing, not executable, ...). That is a harness
	// problem, not a snippet failure.
	return Result{}, dcerrors.CompilerStart(e.path, runErr)
}
