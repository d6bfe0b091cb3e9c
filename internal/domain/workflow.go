package domain

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mouse-blink/gofixer/internal/adapter"
	"github.com/mouse-blink/gofixer/internal/controller"
	"github.com/mouse-blink/gofixer/internal/domain/rules"
	"github.com/mouse-blink/gofixer/internal/logging"
	m "github.com/mouse-blink/gofixer/internal/model"
)

// FixArgs contains the arguments of a fix run.
type FixArgs struct {
	Paths   []m.Path
	Exclude []string
	Rules   []string
	DryRun  bool
	Diff    m.DiffMode
	// UseCache enables the result cache stored at CacheFile.
	UseCache       bool
	CacheFile      m.Path
	Threads        int
	Validator      string
	TokenizerGuard bool
	// MetricsFile receives the run metrics in Prometheus text format when set.
	MetricsFile m.Path
}

// Workflow defines the fixer operations exposed to the CLI.
type Workflow interface {
	Fix(ctx context.Context, args FixArgs) (*m.RunReport, error)
	ListRules() error
	ClearCache(path m.Path) error
}

type workflow struct {
	fsAdapter adapter.SourceFSAdapter
	registry  *rules.Registry
	ui        controller.UI
	metrics   adapter.Metrics
	log       *zap.Logger
	newRunID  func() string
}

// NewWorkflow creates a new Workflow instance with the provided adapters.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	registry *rules.Registry,
	ui controller.UI,
	metrics adapter.Metrics,
	logger *zap.Logger,
) Workflow {
	if metrics == nil {
		metrics = adapter.NullMetrics{}
	}

	return &workflow{
		fsAdapter: fsAdapter,
		registry:  registry,
		ui:        ui,
		metrics:   metrics,
		log:       logging.OrNop(logger),
		newRunID:  uuid.NewString,
	}
}

// Fix discovers the units under args.Paths and fixes them.
func (w *workflow) Fix(ctx context.Context, args FixArgs) (*m.RunReport, error) {
	set, err := w.registry.Resolve(args.Rules)
	if err != nil {
		return nil, err
	}

	validator, err := adapter.NewValidator(args.Validator)
	if err != nil {
		return nil, err
	}

	files, err := w.fsAdapter.Get(args.Paths, args.Exclude)
	if err != nil {
		return nil, fmt.Errorf("discover sources: %w", err)
	}

	cache, err := w.openCache(args)
	if err != nil {
		return nil, err
	}

	runID := w.newRunID()
	log := logging.WithRun(w.log, runID, args.DryRun)

	if err := w.ui.Start(controller.WithFixMode()); err != nil {
		return nil, fmt.Errorf("start ui: %w", err)
	}

	w.ui.DisplayRunInfo(m.RunInfo{
		RunID:   runID,
		Units:   len(files),
		Threads: args.Threads,
		DryRun:  args.DryRun,
		Rules:   set.Names(),
	})

	orch := NewOrchestrator(func(diff m.DiffMode) Pipeline {
		return NewPipeline(PipelineConfig{
			FS:             w.fsAdapter,
			Validator:      validator,
			Cache:          cache,
			Differ:         adapter.NewDiffer(diff),
			TokenizerGuard: args.TokenizerGuard,
			Logger:         log,
		})
	}, log)

	// A fatal error still yields the units completed before it; they may
	// already be rewritten on disk, so they are flushed and reported.
	report, runErr := orch.Run(ctx, RunArgs{
		RunID:    runID,
		Rules:    set,
		Files:    files,
		DryRun:   args.DryRun,
		Diff:     args.Diff,
		Threads:  args.Threads,
		Observer: w.ui,
	})
	if report == nil {
		w.ui.Close()
		w.ui.Wait()

		return nil, runErr
	}

	if !args.DryRun {
		if err := cache.Flush(); err != nil {
			log.Warn("cache flush failed", zap.Error(err))
		}
	}

	if err := w.recordMetrics(report, args.MetricsFile); err != nil {
		log.Warn("metrics export failed", zap.Error(err))
	}

	displayErr := w.ui.DisplayReport(report)
	w.ui.Close()
	w.ui.Wait()

	log.Info("run finished",
		zap.Int("units", report.Total()),
		zap.Int("changed", len(report.Changed)),
		zap.Int("errors", len(report.Errors)),
		zap.Duration("elapsed", report.Elapsed),
	)

	if runErr != nil {
		log.Error("run stopped", zap.Error(runErr))
		return report, runErr
	}

	if displayErr != nil {
		return report, fmt.Errorf("display report: %w", displayErr)
	}

	if report.HasErrors() {
		return report, ErrUnitsFailed
	}

	return report, nil
}

func (w *workflow) openCache(args FixArgs) (adapter.CacheStore, error) {
	if !args.UseCache {
		return adapter.NullCacheStore{}, nil
	}

	store, err := adapter.OpenFileCacheStore(args.CacheFile)
	if err != nil {
		return nil, fmt.Errorf("open cache: %w", err)
	}

	return store, nil
}

func (w *workflow) recordMetrics(report *m.RunReport, path m.Path) error {
	w.metrics.ObserveReport(report)

	if path == "" {
		return nil
	}

	return w.metrics.WriteTextfile(path)
}

// ListRules displays every registered rule.
func (w *workflow) ListRules() error {
	if err := w.ui.Start(controller.WithRulesMode()); err != nil {
		return fmt.Errorf("start ui: %w", err)
	}

	err := w.ui.DisplayRules(w.registry.All().Infos())
	w.ui.Close()
	w.ui.Wait()

	return err
}

// ClearCache removes the cache file at path.
func (w *workflow) ClearCache(path m.Path) error {
	if path == "" {
		return errors.New("cache file path is empty")
	}

	if err := w.fsAdapter.RemoveFile(path); err != nil {
		return fmt.Errorf("clear cache: %w", err)
	}

	w.log.Info("cache cleared", zap.String("path", string(path)))

	return nil
}
