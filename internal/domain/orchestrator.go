package domain

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/mouse-blink/gofixer/internal/domain/rules"
	"github.com/mouse-blink/gofixer/internal/logging"
	m "github.com/mouse-blink/gofixer/internal/model"
)

const tracerName = "github.com/mouse-blink/gofixer/internal/domain"

// Observer is notified after every processed unit. Errors and panics raised
// by an observer are discarded.
type Observer interface {
	UnitProcessed(status m.Status) error
}

// RunArgs describes one run over a set of files.
type RunArgs struct {
	RunID    string
	Rules    rules.Set
	Files    []m.File
	DryRun   bool
	Diff     m.DiffMode
	Threads  int
	Observer Observer
}

// Orchestrator drives the pipeline over many units and aggregates a report.
type Orchestrator interface {
	Run(ctx context.Context, args RunArgs) (*m.RunReport, error)
}

// PipelineFactory builds a pipeline rendering diffs in the given mode. Each
// worker calls it once, so pipelines never share a parse cache.
type PipelineFactory func(diff m.DiffMode) Pipeline

type orchestrator struct {
	newPipeline PipelineFactory
	tracer      trace.Tracer
	log         *zap.Logger
}

// NewOrchestrator creates an Orchestrator.
func NewOrchestrator(newPipeline PipelineFactory, logger *zap.Logger) Orchestrator {
	return &orchestrator{
		newPipeline: newPipeline,
		tracer:      otel.Tracer(tracerName),
		log:         logging.OrNop(logger),
	}
}

type unitResult struct {
	outcome m.Outcome
	elapsed time.Duration
	done    bool
}

// Run processes args.Files and returns the report in discovery order. A
// fatal error stops the run; the report then lists only the units that
// completed before it and is returned along with the error.
func (o *orchestrator) Run(ctx context.Context, args RunArgs) (*m.RunReport, error) {
	start := time.Now()

	files := make([]m.File, 0, len(args.Files))
	for _, file := range args.Files {
		if file.Placeholder() {
			continue
		}

		files = append(files, file)
	}

	threads := args.Threads
	if threads <= 0 {
		threads = 1
	}

	if threads > len(files) {
		threads = len(files)
	}

	results := make([]unitResult, len(files))
	notify := newNotifier(args.Observer, o.log)

	var err error
	if threads <= 1 {
		err = o.runSequential(ctx, args, files, results, notify)
	} else {
		err = o.runParallel(ctx, args, files, results, notify, threads)
	}

	report := m.NewRunReport(args.RunID, args.DryRun)
	for i, res := range results {
		if res.done {
			report.Record(files[i].Path, res.outcome, res.elapsed)
		}
	}

	report.Elapsed = time.Since(start)

	return report, err
}

func (o *orchestrator) runSequential(ctx context.Context, args RunArgs, files []m.File, results []unitResult, notify *notifier) error {
	pipe := o.newPipeline(args.Diff)

	for i, file := range files {
		if err := ctx.Err(); err != nil {
			return err
		}

		res, err := o.processUnit(ctx, pipe, args, file)
		if err != nil {
			return err
		}

		results[i] = res
		notify.unitProcessed(res.outcome.Status)
	}

	return nil
}

func (o *orchestrator) runParallel(ctx context.Context, args RunArgs, files []m.File, results []unitResult, notify *notifier, threads int) error {
	g, gctx := errgroup.WithContext(ctx)
	jobs := make(chan int)

	g.Go(func() error {
		defer close(jobs)

		for i := range files {
			select {
			case jobs <- i:
			case <-gctx.Done():
				return gctx.Err()
			}
		}

		return nil
	})

	for range threads {
		g.Go(func() error {
			pipe := o.newPipeline(args.Diff)

			for i := range jobs {
				if err := gctx.Err(); err != nil {
					return err
				}

				res, err := o.processUnit(gctx, pipe, args, files[i])
				if err != nil {
					return err
				}

				results[i] = res
				notify.unitProcessed(res.outcome.Status)
			}

			return nil
		})
	}

	return g.Wait()
}

func (o *orchestrator) processUnit(ctx context.Context, pipe Pipeline, args RunArgs, file m.File) (unitResult, error) {
	_, span := o.tracer.Start(ctx, "gofixer.unit", trace.WithAttributes(
		attribute.String("gofixer.path", string(file.Path)),
		attribute.Bool("gofixer.dry_run", args.DryRun),
	))
	defer span.End()

	started := time.Now()
	outcome, err := pipe.Process(args.Rules, file, args.DryRun)
	elapsed := time.Since(started)

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		o.log.Error("unit failed fatally", zap.String("path", string(file.Path)), zap.Error(err))

		return unitResult{}, fmt.Errorf("process %s: %w", file.Path, err)
	}

	span.SetAttributes(attribute.String("gofixer.status", outcome.Status.String()))

	if outcome.IsError() {
		span.SetStatus(codes.Error, outcome.Message())
	}

	return unitResult{outcome: outcome, elapsed: elapsed, done: true}, nil
}

// notifier serializes observer calls and shields the run from them.
type notifier struct {
	mu       sync.Mutex
	observer Observer
	log      *zap.Logger
}

func newNotifier(observer Observer, log *zap.Logger) *notifier {
	return &notifier{observer: observer, log: log}
}

func (n *notifier) unitProcessed(status m.Status) {
	if n.observer == nil {
		return
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	defer func() {
		if r := recover(); r != nil {
			n.log.Warn("observer panicked", zap.Any("panic", r))
		}
	}()

	if err := n.observer.UnitProcessed(status); err != nil {
		n.log.Debug("observer failed", zap.Error(err))
	}
}
