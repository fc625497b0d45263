package check

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"git.home.luguber.info/inful/doccheck/internal/boilerplate"
	"git.home.luguber.info/inful/doccheck/internal/compiler"
	"git.home.luguber.info/inful/doccheck/internal/config"
	"git.home.luguber.info/inful/doccheck/internal/diag"
	"git.home.luguber.info/inful/doccheck/internal/directive"
	"git.home.luguber.info/inful/doccheck/internal/extract"
	"git.home.luguber.info/inful/doccheck/internal/logfields"
	"git.home.luguber.info/inful/doccheck/internal/metrics"
	"git.home.luguber.info/inful/doccheck/internal/scan"
)

// Runner drives one full check run: scan, extract, then per-block
// validate/inject/invoke/remap on a bounded worker pool.
type Runner struct {
	cfg      *config.Config
	invoker  compiler.Invoker
	recorder metrics.Recorder
}

// NewRunner creates a runner for the given configuration with the default
// exec-based compiler invoker.
func NewRunner(cfg *config.Config) *Runner {
	return &Runner{
		cfg: cfg,
		invoker: compiler.NewExecInvoker(
			cfg.Compiler.Path,
			cfg.Compiler.CheckArg,
			cfg.Language.Tag,
			cfg.Compiler.Timeout.Std(),
		),
		recorder: metrics.NoopRecorder{},
	}
}

// WithInvoker allows injecting a custom compiler invoker (for testing).
func (r *Runner) WithInvoker(inv compiler.Invoker) *Runner {
	r.invoker = inv
	return r
}

// WithRecorder allows injecting a metrics recorder (watch mode).
func (r *Runner) WithRecorder(rec metrics.Recorder) *Runner {
	r.recorder = rec
	return r
}

// Run performs a full rescan and check of the content root. Every invocation
// starts from scratch; there is no caching across runs.
//
// Fatal errors (unreadable root or boilerplate) abort before any block is
// processed. A cancelled run returns the context error and no summary: an
// interrupted run reports as incomplete, never as a clean pass/fail.
func (r *Runner) Run(ctx context.Context) (*RunSummary, error) {
	runID := uuid.NewString()
	started := time.Now()
	slog.Info("Starting check run",
		logfields.RunID(runID),
		logfields.File(r.cfg.Content.Root),
		logfields.Compiler(r.cfg.Compiler.Path))

	files, err := scan.NewScanner(r.cfg.Content.Root, r.cfg.Content.Extension).Scan()
	if err != nil {
		return nil, err
	}

	unit, err := boilerplate.Load(r.cfg.Boilerplate.Path)
	if err != nil {
		return nil, err
	}

	extractor := extract.NewExtractor(r.cfg.Language.Tag, r.cfg.Language.SkipModifier)
	var blocks []extract.CodeBlock
	for _, file := range files {
		fileBlocks, err := extractor.ExtractFile(file)
		if err != nil {
			return nil, fmt.Errorf("extracting %s: %w", file, err)
		}
		blocks = append(blocks, fileBlocks...)
	}
	slog.Debug("Extraction complete",
		logfields.RunID(runID),
		logfields.Stage("extract"),
		logfields.Blocks(len(blocks)))

	results, infraErrs, err := r.checkBlocks(ctx, unit, blocks)
	if err != nil {
		return nil, err
	}

	summary := &RunSummary{RunID: runID, StartedAt: started}
	for _, res := range results {
		summary.Add(res)
		r.recorder.IncBlockStatus(res.Status.String())
	}
	for _, msg := range infraErrs {
		summary.AddInfrastructureError(msg)
	}
	summary.Duration = time.Since(started)

	r.recorder.ObserveRunDuration(summary.Duration)
	outcome := "pass"
	switch {
	case len(summary.InfrastructureErrors) > 0:
		outcome = "infrastructure"
	case summary.Failed > 0:
		outcome = "fail"
	}
	r.recorder.IncRunOutcome(outcome)

	slog.Info("Check run finished",
		logfields.RunID(runID),
		logfields.Blocks(summary.TotalBlocksFound),
		logfields.Status(outcome),
		logfields.DurationMS(float64(summary.Duration.Milliseconds())))
	return summary, nil
}

// checkBlocks fans blocks out to a bounded worker pool. Results are collected
// by block ordinal so the report always follows scan order, regardless of
// worker scheduling.
func (r *Runner) checkBlocks(ctx context.Context, unit *boilerplate.Unit, blocks []extract.CodeBlock) ([]BlockResult, []string, error) {
	validator := directive.NewValidator(directive.Markers{
		Start:        r.cfg.Language.HiddenStart,
		End:          r.cfg.Language.HiddenEnd,
		CommentToken: r.cfg.Language.CommentToken,
	})
	injector := boilerplate.NewInjector(unit, r.cfg.Language.CommentToken)
	remapper := diag.NewRemapper(unit.LineCount)

	concurrency := r.cfg.Check.Workers
	if concurrency > len(blocks) {
		concurrency = len(blocks)
	}
	if concurrency < 1 {
		concurrency = 1
	}
	r.recorder.SetWorkers(concurrency)
	slog.Debug("Dispatching blocks",
		logfields.Stage("check"),
		logfields.Workers(concurrency),
		logfields.Blocks(len(blocks)))

	type task struct {
		idx   int
		block extract.CodeBlock
	}
	tasks := make(chan task)
	results := make([]BlockResult, len(blocks))
	var infraErrs []string
	var wg sync.WaitGroup
	var mu sync.Mutex

	worker := func() {
		defer wg.Done()
		for t := range tasks {
			select {
			case <-ctx.Done():
				return
			default:
			}
			res, infra := r.checkOne(ctx, validator, injector, remapper, t.block)
			mu.Lock()
			results[t.idx] = res
			infraErrs = append(infraErrs, infra...)
			mu.Unlock()
		}
	}

	wg.Add(concurrency)
	for range concurrency {
		go worker()
	}
	for i, b := range blocks {
		select {
		case <-ctx.Done():
			close(tasks)
			wg.Wait()
			return nil, nil, ctx.Err()
		case tasks <- task{idx: i, block: b}:
		}
	}
	close(tasks)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	return results, infraErrs, nil
}

// checkOne processes a single block end-to-end. Returned infrastructure
// messages indicate the harness itself is broken (boilerplate diagnostics,
// unrunnable compiler) and are reported separately from block failures.
func (r *Runner) checkOne(
	ctx context.Context,
	validator *directive.Validator,
	injector *boilerplate.Injector,
	remapper *diag.Remapper,
	block extract.CodeBlock,
) (BlockResult, []string) {
	if !block.Checked {
		return BlockResult{Block: block, Status: StatusSkipped}, nil
	}

	if viol := validator.Validate(block.RawText); viol != nil {
		return BlockResult{
			Block:  block,
			Status: StatusDirectiveError,
			Diagnostics: []diag.RemappedDiagnostic{{
				SourceFile: block.SourceFile,
				Line:       block.StartLine + viol.Line - 1,
				Col:        1,
				Message:    viol.Message,
			}},
		}, nil
	}

	res, err := r.invoker.Invoke(ctx, injector.Build(block))
	if err != nil {
		if ctx.Err() != nil {
			// Cancellation surfaces through checkBlocks; the placeholder
			// result is discarded with the whole run.
			return BlockResult{Block: block, Status: StatusUnknownFailure}, nil
		}
		return BlockResult{Block: block, Status: StatusUnknownFailure, RawOutput: err.Error()},
			[]string{fmt.Sprintf("compiler invocation failed for %s:%d: %v", block.SourceFile, block.StartLine, err)}
	}

	switch {
	case res.TimedOut:
		return BlockResult{Block: block, Status: StatusTimeoutFailure, RawOutput: res.Output}, nil
	case res.ExitCode == 0:
		return BlockResult{Block: block, Status: StatusPassed}, nil
	}

	parsed := diag.Parse(res.Output)
	if len(parsed) == 0 {
		return BlockResult{Block: block, Status: StatusUnknownFailure, RawOutput: res.Output}, nil
	}

	var remapped []diag.RemappedDiagnostic
	var infra []string
	for _, d := range parsed {
		rd, err := remapper.Remap(d, block)
		if err != nil {
			slog.Debug("Diagnostic resolved into boilerplate",
				logfields.File(block.SourceFile),
				logfields.Line(block.StartLine),
				logfields.Error(err))
			infra = append(infra, err.Error())
			continue
		}
		remapped = append(remapped, rd)
	}
	return BlockResult{Block: block, Status: StatusCompileFailure, Diagnostics: remapped}, infra
}
