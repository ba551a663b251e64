package pipeline

import (
	"log/slog"
	"time"

	"github.com/nibzard/awesome-agentic-patterns/pkg/emit"
	"github.com/nibzard/awesome-agentic-patterns/pkg/freshness"
	"github.com/nibzard/awesome-agentic-patterns/pkg/schema"
)

// options holds the internal configuration for a pipeline run.
type options struct {
	logger       *slog.Logger
	strict       bool
	checkContent bool
	warnDangling bool
	contract     schema.Contract
	history      freshness.HistoryProvider
	newDays      int
	updatedDays  int
	clock        func() time.Time
	template     string
	exclude      []string
	site         emit.Site
	feedSize     int
}

// Option defines a functional option for configuring a pipeline.
type Option func(*options)

func defaultOptions() *options {
	return &options{
		contract:    schema.DefaultContract(),
		newDays:     freshness.DefaultNewDays,
		updatedDays: freshness.DefaultUpdatedDays,
		feedSize:    emit.DefaultFeedSize,
	}
}

// WithLogger sets the logger for the run.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithStrict escalates accumulated validation errors to a run failure.
func WithStrict(strict bool) Option {
	return func(o *options) { o.strict = strict }
}

// WithCheckContent enables body-content diagnostics.
func WithCheckContent(check bool) Option {
	return func(o *options) { o.checkContent = check }
}

// WithDanglingWarnings surfaces dropped cross-references as warnings instead
// of discarding them silently.
func WithDanglingWarnings(warn bool) Option {
	return func(o *options) { o.warnDangling = warn }
}

// WithContract injects the validation contract.
func WithContract(c schema.Contract) Option {
	return func(o *options) { o.contract = c }
}

// WithHistory injects a history provider (e.g. a fake for tests). The default
// is git history with a filesystem fallback.
func WithHistory(h freshness.HistoryProvider) Option {
	return func(o *options) { o.history = h }
}

// WithThresholds sets the freshness day-count thresholds.
func WithThresholds(newDays, updatedDays int) Option {
	return func(o *options) {
		o.newDays = newDays
		o.updatedDays = updatedDays
	}
}

// WithClock overrides the classifier clock. Useful for deterministic tests.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.clock = now }
}

// WithTemplate overrides the reserved template file name.
func WithTemplate(name string) Option {
	return func(o *options) { o.template = name }
}

// WithExcludes adds glob patterns excluded from enumeration.
func WithExcludes(patterns ...string) Option {
	return func(o *options) { o.exclude = append(o.exclude, patterns...) }
}

// WithSite sets the published-site description used by the emitters.
func WithSite(site emit.Site) Option {
	return func(o *options) { o.site = site }
}

// WithFeedSize caps the number of records in the syndication feed.
func WithFeedSize(n int) Option {
	return func(o *options) { o.feedSize = n }
}
