// Package emit renders the fully-derived record set into every output
// artifact: the JSON index, per-record JSON, the reference graph, the LLM
// text dumps, the sitemap, and the syndication feed. All artifacts are
// produced from one in-memory snapshot so they stay consistent with each
// other.
package emit

import (
	"log/slog"
	"path/filepath"
	"sort"

	"github.com/nibzard/awesome-agentic-patterns/pkg/core"
)

// Output file names.
const (
	IndexFile    = "patterns.json"
	GraphFile    = "graph.json"
	LLMIndexFile = "llms.txt"
	LLMFullFile  = "llms-full.txt"
	SitemapFile  = "sitemap.xml"
	FeedFile     = "feed.xml"

	// PerRecordDir holds one <slug>.json per record.
	PerRecordDir = "patterns"
)

// DefaultFeedSize is how many records the syndication feed carries.
const DefaultFeedSize = 20

// Site describes the published site the artifacts point into.
type Site struct {
	// BaseURL is the site origin, without a trailing slash.
	BaseURL string
	// Title and Description feed the syndication feed header.
	Title       string
	Description string
	// StaticRoutes are site paths (e.g. "/", "/about/") included in the
	// sitemap in addition to the per-record routes.
	StaticRoutes []string
}

// PatternURL returns the canonical URL for a record slug.
func (s Site) PatternURL(slug string) string {
	return s.BaseURL + "/patterns/" + slug + "/"
}

// Snapshot is the consistent view every artifact is generated from.
type Snapshot struct {
	Patterns []core.Pattern
	Graph    core.Graph
	// Labels maps source paths to freshness labels. Only the rendered index
	// consumes them; the machine-readable JSON does not.
	Labels map[string]core.FreshnessLabel
	Site   Site
}

// Emitter writes all artifacts under OutDir.
type Emitter struct {
	OutDir   string
	FeedSize int
	Logger   *slog.Logger
}

// New creates an emitter for the given output directory.
func New(outDir string, logger *slog.Logger) *Emitter {
	return &Emitter{OutDir: outDir, FeedSize: DefaultFeedSize, Logger: logger}
}

// EmitAll attempts every artifact. A failed artifact is recorded on report
// and does not stop the others.
func (e *Emitter) EmitAll(snap Snapshot, report *core.Report) {
	artifacts := []struct {
		name string
		fn   func(Snapshot) error
	}{
		{IndexFile, e.EmitIndex},
		{PerRecordDir, e.EmitPerRecord},
		{GraphFile, e.EmitGraph},
		{LLMIndexFile, e.EmitLLMIndex},
		{LLMFullFile, e.EmitLLMFull},
		{SitemapFile, e.EmitSitemap},
		{FeedFile, e.EmitFeed},
	}

	for _, a := range artifacts {
		if err := a.fn(snap); err != nil {
			report.Errorf(a.name, "", "emit failed: %v", err)
			continue
		}
		if e.Logger != nil {
			e.Logger.Debug("artifact written", "name", a.name)
		}
	}
}

func (e *Emitter) path(name string) string {
	return filepath.Join(e.OutDir, name)
}

// byUpdatedDesc returns the records sorted by updated_at descending, slug
// ascending as the tiebreak so the order is total.
func byUpdatedDesc(patterns []core.Pattern) []core.Pattern {
	sorted := make([]core.Pattern, len(patterns))
	copy(sorted, patterns)
	sort.SliceStable(sorted, func(i, j int) bool {
		ti, tj := sorted[i].UpdatedTime(), sorted[j].UpdatedTime()
		if !ti.Equal(tj) {
			return ti.After(tj)
		}
		return sorted[i].Slug < sorted[j].Slug
	})
	return sorted
}
