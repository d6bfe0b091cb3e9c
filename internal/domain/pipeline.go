package domain

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/mouse-blink/gofixer/internal/adapter"
	"github.com/mouse-blink/gofixer/internal/domain/rules"
	"github.com/mouse-blink/gofixer/internal/logging"
	m "github.com/mouse-blink/gofixer/internal/model"
	"github.com/mouse-blink/gofixer/internal/tokens"
)

// Pipeline fixes a single unit.
type Pipeline interface {
	// Process runs the rule set over file. Per-unit failures are reported in
	// the outcome; the error is reserved for failures wrapping ErrFatalIO.
	Process(set rules.Set, file m.File, dryRun bool) (m.Outcome, error)
}

// PipelineConfig holds the collaborators of a pipeline. Nil collaborators
// fall back to their null variants.
type PipelineConfig struct {
	FS        adapter.SourceFSAdapter
	Validator adapter.Validator
	Cache     adapter.CacheStore
	Differ    adapter.Differ
	// TokenizerGuard skips units that trip the tokenizer hazard check.
	TokenizerGuard bool
	Logger         *zap.Logger
}

type pipeline struct {
	fs             adapter.SourceFSAdapter
	validator      adapter.Validator
	cache          adapter.CacheStore
	differ         adapter.Differ
	parseCache     *tokens.Cache
	tokenizerGuard bool
	log            *zap.Logger
}

// NewPipeline creates a Pipeline owning its own parse cache.
func NewPipeline(cfg PipelineConfig) Pipeline {
	p := &pipeline{
		fs:             cfg.FS,
		validator:      cfg.Validator,
		cache:          cfg.Cache,
		differ:         cfg.Differ,
		parseCache:     tokens.NewCache(),
		tokenizerGuard: cfg.TokenizerGuard,
		log:            logging.OrNop(cfg.Logger),
	}

	if p.validator == nil {
		p.validator = adapter.NullValidator{}
	}

	if p.cache == nil {
		p.cache = adapter.NullCacheStore{}
	}

	if p.differ == nil {
		p.differ = adapter.NullDiffer{}
	}

	return p
}

func (p *pipeline) Process(set rules.Set, file m.File, dryRun bool) (m.Outcome, error) {
	log := p.log.With(zap.String("path", string(file.Path)))

	content, err := p.fs.ReadFile(file.FullPath)
	if err != nil {
		return m.Outcome{}, fmt.Errorf("read %s: %w: %w", file.Path, ErrFatalIO, err)
	}

	unit := m.Unit{File: file, Text: string(content)}
	signature := set.Signature()

	if outcome, done := p.guard(log, unit, signature); done {
		return outcome, nil
	}

	p.parseCache.Reset()
	stream := p.parseCache.Parse(unit.Text)
	before := stream.Fingerprint()

	applied, diag := p.applyRules(log, activeRules(set, fileIgnoreRule(stream)), file, stream)
	if diag != nil {
		log.Debug("rule failed", zap.String("error", diag.Error()))
		return m.RuntimeFailure(diag), nil
	}

	if len(applied) == 0 {
		log.Debug("no rule applied")
		return m.NoChanges(), nil
	}

	newText := stream.Text()
	if stream.Fingerprint() == before {
		log.Debug("rules reverted each other", zap.Strings("rules", applied))
		return m.NoChanges(), nil
	}

	if err := p.validator.Check(file.Path, newText); err != nil {
		diag := toDiagnostic(err)
		log.Debug("fixed text is invalid", zap.String("error", diag.Error()))

		return m.InvalidAfterFixing(diag), nil
	}

	if !dryRun {
		if err := p.fs.WriteFile(file.FullPath, []byte(newText)); err != nil {
			return m.Outcome{}, fmt.Errorf("write %s: %w: %w", file.Path, ErrFatalIO, err)
		}

		if err := p.cache.MarkUpToDate(file.Path, tokens.Fingerprint(newText), signature); err != nil {
			log.Warn("cache update failed", zap.Error(err))
		}
	}

	log.Debug("fixed", zap.Strings("rules", applied), zap.Bool("dry_run", dryRun))

	return m.Fixed(applied).WithDiff(p.differ.Diff(unit.Text, newText)), nil
}

// guard runs the cheap checks that avoid tokenizing the unit.
func (p *pipeline) guard(log *zap.Logger, unit m.Unit, signature string) (m.Outcome, bool) {
	if unit.Text == "" {
		log.Debug("skipped", zap.String("reason", m.ReasonNoContent))
		return m.Skipped(m.ReasonNoContent), true
	}

	if p.cache.IsUpToDate(unit.File.Path, tokens.Fingerprint(unit.Text), signature) {
		log.Debug("skipped", zap.String("reason", "cached"))
		return m.Skipped(m.ReasonNoChanges), true
	}

	if p.tokenizerGuard {
		if hazard, found := tokenizerHazard(unit.Text); found {
			log.Debug("skipped", zap.String("reason", hazard))
			return m.Skipped(m.ReasonNoChanges), true
		}
	}

	if err := p.validator.Check(unit.File.Path, unit.Text); err != nil {
		diag := toDiagnostic(err)
		log.Debug("invalid source", zap.String("error", diag.Error()))

		return m.InvalidSource(diag), true
	}

	return m.Outcome{}, false
}

func (p *pipeline) applyRules(log *zap.Logger, set rules.Set, file m.File, stream *tokens.Stream) ([]string, *m.Diagnostic) {
	var applied []string

	for _, rule := range set {
		if !rule.Supports(file) || !rule.IsCandidate(stream) {
			continue
		}

		if err := runRule(rule, file, stream); err != nil {
			return nil, &m.Diagnostic{Message: fmt.Sprintf("%s: %v", rule.Name(), err)}
		}

		if stream.Changed() {
			stream.ClearEmpty()
			stream.ClearChanged()

			applied = append(applied, rule.Name())
			log.Debug("rule applied", zap.String("rule", rule.Name()))
		}
	}

	return applied, nil
}

// runRule converts a panicking rule into an error.
func runRule(rule rules.Rule, file m.File, stream *tokens.Stream) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()

	return rule.Fix(file, stream)
}

func toDiagnostic(err error) *m.Diagnostic {
	var diag *m.Diagnostic
	if errors.As(err, &diag) {
		return diag
	}

	return &m.Diagnostic{Message: err.Error()}
}
