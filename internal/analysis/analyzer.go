package analysis

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/styleadvisor/styleadvisor/internal/catalog"
	"github.com/styleadvisor/styleadvisor/internal/models"
	"github.com/styleadvisor/styleadvisor/internal/providers"
)

// DefaultTimeout bounds a single provider call
const DefaultTimeout = 30 * time.Second

// State is a step of one analysis, used in debug logs
type State string

const (
	StateIdle        State = "idle"
	StateRequesting  State = "requesting"
	StateReplied     State = "replied"
	StateFailed      State = "failed"
	StateNormalizing State = "normalizing"
	StateDone        State = "done"
)

// Recorder receives analysis observations, typically for metrics
type Recorder interface {
	ObserveAnalysis(domain, provider, outcome string, elapsed time.Duration)
	ObserveCatalogMismatch(domain, field string)
}

type nopRecorder struct{}

func (nopRecorder) ObserveAnalysis(string, string, string, time.Duration) {}
func (nopRecorder) ObserveCatalogMismatch(string, string)                 {}

// Result is the outcome of one analysis. Exactly one of Beard or Lipstick is set
// for a supported domain; Failure is set when the default record stands in.
type Result struct {
	Domain   catalog.Domain         `json:"domain"`
	Beard    *models.BeardResult    `json:"beard,omitempty"`
	Lipstick *models.LipstickResult `json:"lipstick,omitempty"`
	Failure  *Failure               `json:"-"`
	Replaced []string               `json:"-"`
}

// Record returns the normalized record for the result's domain
func (r Result) Record() any {
	switch {
	case r.Beard != nil:
		return r.Beard
	case r.Lipstick != nil:
		return r.Lipstick
	default:
		return nil
	}
}

// Fallback reports whether the default record was used
func (r Result) Fallback() bool {
	return r.Failure != nil
}

// Outcome is "ok" or the failure reason
func (r Result) Outcome() string {
	if r.Failure == nil {
		return "ok"
	}
	return string(r.Failure.Reason)
}

// Message returns the transient error text for reported failures, or ""
func (r Result) Message() string {
	if r.Failure == nil || !r.Failure.Reported() {
		return ""
	}
	return r.Failure.Message()
}

// Analyzer runs the build, send, normalize pipeline. It holds no per-call state.
type Analyzer struct {
	provider     providers.Provider
	timeout      time.Duration
	reporter     Reporter
	recorder     Recorder
	logger       *slog.Logger
	failureLevel slog.Level
}

// Option configures an Analyzer
type Option func(*Analyzer)

// WithTimeout sets the deadline for the provider call
func WithTimeout(d time.Duration) Option {
	return func(a *Analyzer) {
		if d > 0 {
			a.timeout = d
		}
	}
}

// WithReporter sets the error channel
func WithReporter(r Reporter) Option {
	return func(a *Analyzer) {
		if r != nil {
			a.reporter = r
		}
	}
}

// WithRecorder sets the observation sink
func WithRecorder(r Recorder) Option {
	return func(a *Analyzer) {
		if r != nil {
			a.recorder = r
		}
	}
}

// WithLogger sets the logger, slog.Default() otherwise
func WithLogger(l *slog.Logger) Option {
	return func(a *Analyzer) {
		a.logger = l
	}
}

// WithFailureLogLevel sets the level of the provider failure log line.
// Lower it when the reporter already writes to the same terminal.
func WithFailureLogLevel(level slog.Level) Option {
	return func(a *Analyzer) {
		a.failureLevel = level
	}
}

// New returns an Analyzer sending requests to provider
func New(provider providers.Provider, opts ...Option) *Analyzer {
	a := &Analyzer{
		provider: provider,
		timeout:      DefaultTimeout,
		reporter:     LogReporter{},
		recorder:     nopRecorder{},
		failureLevel: slog.LevelError,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Analyze runs one analysis and always returns a populated record for a supported domain.
// Provider failures are reported once on the error channel; unparseable replies are not.
func (a *Analyzer) Analyze(ctx context.Context, image []byte, domain catalog.Domain) Result {
	start := time.Now()
	logger := a.logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("domain", domain, "provider", a.provider.Name())

	if !domain.Valid() {
		return Result{Domain: domain, Failure: &Failure{Reason: ReasonUnsupportedDomain, Err: fmt.Errorf("unsupported domain %q", domain)}}
	}

	req := BuildRequest(image, domain)
	logger.Debug("Analysis state", "state", StateRequesting, "image_bytes", len(image), "max_tokens", req.MaxTokens)

	var result Result
	reply, err := a.complete(ctx, req)
	if err != nil {
		failure := classify(err)
		logger.Debug("Analysis state", "state", StateFailed, "reason", failure.Reason)
		logger.Log(ctx, a.failureLevel, "Analysis request failed", "reason", failure.Reason, "err", err)
		a.reporter.Report(ctx, failure.Message())
		result = fallback(domain, failure)
	} else {
		logger.Debug("Analysis state", "state", StateReplied, "reply_length", len(reply))
		logger.Debug("Analysis state", "state", StateNormalizing)
		result = normalize(domain, reply)
		if result.Failure != nil {
			logger.Warn("Unparseable analysis reply, using default record", "err", result.Failure.Err)
		}
		for _, field := range result.Replaced {
			logger.Warn("Reply value outside catalog, using default", "field", field)
			a.recorder.ObserveCatalogMismatch(string(domain), field)
		}
	}

	elapsed := time.Since(start)
	a.recorder.ObserveAnalysis(string(domain), a.provider.Name(), result.Outcome(), elapsed)
	logger.Debug("Analysis state", "state", StateDone)
	logger.Info("Analysis complete", "outcome", result.Outcome(), "duration", elapsed)

	return result
}

type completion struct {
	reply string
	err   error
}

// complete calls the provider once and stops waiting when the deadline passes,
// even if the provider does not honor ctx.
func (a *Analyzer) complete(ctx context.Context, req providers.Request) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	done := make(chan completion, 1)
	go func() {
		reply, err := a.provider.Complete(ctx, req)
		done <- completion{reply: reply, err: err}
	}()

	select {
	case c := <-done:
		return c.reply, c.err
	case <-ctx.Done():
		return "", fmt.Errorf("%s did not reply in time: %w", a.provider.Name(), ctx.Err())
	}
}

func fallback(domain catalog.Domain, failure *Failure) Result {
	result := Result{Domain: domain, Failure: failure}
	switch domain {
	case catalog.Beard:
		rec := DefaultBeard()
		result.Beard = &rec
	case catalog.Lipstick:
		rec := DefaultLipstick()
		result.Lipstick = &rec
	}
	return result
}

func normalize(domain catalog.Domain, reply string) Result {
	result := Result{Domain: domain}
	var diag Diagnosis
	switch domain {
	case catalog.Beard:
		rec, d := NormalizeBeard(reply)
		result.Beard, diag = &rec, d
	case catalog.Lipstick:
		rec, d := NormalizeLipstick(reply)
		result.Lipstick, diag = &rec, d
	}
	result.Failure = diag.Failure
	result.Replaced = diag.Replaced
	return result
}
