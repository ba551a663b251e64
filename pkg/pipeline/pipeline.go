// Package pipeline wires the build stages together: enumerate, parse, derive,
// validate, resolve the graph, classify freshness, and emit artifacts. Each
// stage is a pure function over explicit inputs; this package only sequences
// them and accumulates the diagnostics report.
package pipeline

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/nibzard/awesome-agentic-patterns/pkg/catalog"
	"github.com/nibzard/awesome-agentic-patterns/pkg/core"
	"github.com/nibzard/awesome-agentic-patterns/pkg/emit"
	"github.com/nibzard/awesome-agentic-patterns/pkg/freshness"
	"github.com/nibzard/awesome-agentic-patterns/pkg/git"
	"github.com/nibzard/awesome-agentic-patterns/pkg/graph"
	"github.com/nibzard/awesome-agentic-patterns/pkg/schema"
)

// Pipeline is one configured build over a source directory.
type Pipeline struct {
	dir  string
	opts *options
}

// Result is the outcome of a run: the validated record set, the resolved
// graph, freshness labels keyed by source path, and every diagnostic
// collected along the way.
type Result struct {
	Patterns []core.Pattern
	Graph    core.Graph
	Labels   map[string]core.FreshnessLabel
	Report   core.Report
}

// New creates a pipeline over the given records directory.
func New(dir string, opts ...Option) *Pipeline {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return &Pipeline{dir: dir, opts: o}
}

// Run executes every stage except emission. The only error it returns wraps
// core.ErrFatalEnumeration; all other problems land on the report.
func (p *Pipeline) Run(ctx context.Context) (*Result, error) {
	result := &Result{Labels: map[string]core.FreshnessLabel{}}

	paths, err := catalog.Scan(p.dir, catalog.ScanConfig{
		Template: p.opts.template,
		Exclude:  p.opts.exclude,
	})
	if err != nil {
		return nil, err
	}
	p.logf("scanned source directory", "dir", p.dir, "files", len(paths))

	// Parse and derive. A malformed file is excluded from everything
	// downstream but does not abort the run.
	var kept []string
	for _, path := range paths {
		pattern, err := catalog.Load(path)
		if err != nil {
			result.Report.Errorf(filepath.Base(path), "", "parse failed: %v", err)
			continue
		}
		result.Patterns = append(result.Patterns, pattern)
		kept = append(kept, path)
	}

	validator := schema.New(p.opts.contract)
	validator.CheckContent = p.opts.checkContent
	result.Report.Merge(validator.ValidateSet(result.Patterns))

	builder := &graph.Builder{WarnDangling: p.opts.warnDangling}
	result.Graph = builder.Build(result.Patterns, &result.Report)

	classifier := p.classifier()
	result.Labels = classifier.LabelAll(ctx, kept, &result.Report)

	return result, nil
}

// Build runs the pipeline and emits every artifact into outDir. Artifact
// failures are reported, not returned; the error is non-nil only for fatal
// enumeration or, in strict mode, accumulated validation errors.
func (p *Pipeline) Build(ctx context.Context, outDir string) (*Result, error) {
	result, err := p.Run(ctx)
	if err != nil {
		return nil, err
	}

	emitter := emit.New(outDir, p.opts.logger)
	emitter.FeedSize = p.opts.feedSize
	emitter.EmitAll(emit.Snapshot{
		Patterns: result.Patterns,
		Graph:    result.Graph,
		Labels:   result.Labels,
		Site:     p.opts.site,
	}, &result.Report)

	if p.opts.strict && result.Report.HasErrors() {
		return result, fmt.Errorf("%w: %d error(s)", core.ErrValidationFailed, len(result.Report.Errors()))
	}
	return result, nil
}

// classifier assembles the freshness classifier, defaulting to git history
// with filesystem fallback when no provider was injected.
func (p *Pipeline) classifier() *freshness.Classifier {
	history := p.opts.history
	if history == nil {
		if git.IsInstalled() {
			client := git.NewClient(p.dir, p.opts.logger)
			if client.IsRepo() {
				history = freshness.NewGitHistory(client)
			}
		}
		if history == nil {
			history = freshness.FSHistory{}
		}
	}

	c := freshness.NewClassifier(history)
	c.NewDays = p.opts.newDays
	c.UpdatedDays = p.opts.updatedDays
	c.Now = p.opts.clock
	return c
}

func (p *Pipeline) logf(msg string, args ...any) {
	if p.opts.logger != nil {
		p.opts.logger.Debug(msg, args...)
	}
}
