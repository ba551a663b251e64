package emit

import (
	"encoding/json"
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nibzard/awesome-agentic-patterns/pkg/core"
)

func testSite() Site {
	return Site{
		BaseURL:      "https://example.com",
		Title:        "Test Catalogue",
		Description:  "Patterns for testing.",
		StaticRoutes: []string{"/", "/patterns/"},
	}
}

func testPatterns(n int) []core.Pattern {
	var out []core.Pattern
	for i := 0; i < n; i++ {
		out = append(out, core.Pattern{
			ID:        fmt.Sprintf("pattern-%02d", i),
			Slug:      fmt.Sprintf("pattern-%02d", i),
			Title:     fmt.Sprintf("Pattern %02d", i),
			Status:    "emerging",
			Category:  "Feedback Loops",
			Authors:   []string{"Ada"},
			Source:    "https://example.com/src",
			Tags:      []string{"test"},
			Summary:   fmt.Sprintf("Summary %02d.", i),
			UpdatedAt: fmt.Sprintf("2026-07-%02d", i+1),
			Body:      fmt.Sprintf("## Problem\n\nBody %02d.", i),
		})
	}
	return out
}

func snapshot(n int) Snapshot {
	return Snapshot{
		Patterns: testPatterns(n),
		Graph:    core.Graph{Nodes: []core.Node{}, Edges: []core.Edge{}},
		Site:     testSite(),
	}
}

func TestEmitAllWritesEveryArtifact(t *testing.T) {
	dir := t.TempDir()
	e := New(dir, nil)

	var report core.Report
	e.EmitAll(snapshot(3), &report)
	require.False(t, report.HasErrors(), "emit diagnostics: %v", report.Issues)

	for _, name := range []string{IndexFile, GraphFile, LLMIndexFile, LLMFullFile, SitemapFile, FeedFile} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, name)
	}
	for i := 0; i < 3; i++ {
		_, err := os.Stat(filepath.Join(dir, PerRecordDir, fmt.Sprintf("pattern-%02d.json", i)))
		assert.NoError(t, err)
	}
}

func TestSitemapMatchesIndex(t *testing.T) {
	dir := t.TempDir()
	e := New(dir, nil)

	var report core.Report
	e.EmitAll(snapshot(5), &report)
	require.False(t, report.HasErrors())

	// Slugs in the index artifact.
	var index []core.Pattern
	data, err := os.ReadFile(filepath.Join(dir, IndexFile))
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &index))

	indexSlugs := map[string]bool{}
	for _, p := range index {
		indexSlugs[p.Slug] = true
	}

	// Slugs in the sitemap artifact.
	var set urlSet
	data, err = os.ReadFile(filepath.Join(dir, SitemapFile))
	require.NoError(t, err)
	require.NoError(t, xml.Unmarshal(data, &set))

	sitemapSlugs := map[string]bool{}
	for _, u := range set.URLs {
		if !strings.HasPrefix(u.Loc, "https://example.com/patterns/") {
			continue
		}
		slug := strings.TrimSuffix(strings.TrimPrefix(u.Loc, "https://example.com/patterns/"), "/")
		if slug == "" {
			continue // the /patterns/ static route
		}
		sitemapSlugs[slug] = true
	}

	assert.Equal(t, indexSlugs, sitemapSlugs)
}

func TestFeedCapAndOrder(t *testing.T) {
	dir := t.TempDir()
	e := New(dir, nil)
	e.FeedSize = 4

	require.NoError(t, e.EmitFeed(snapshot(10)))

	data, err := os.ReadFile(filepath.Join(dir, FeedFile))
	require.NoError(t, err)
	rss := string(data)

	assert.Equal(t, 4, strings.Count(rss, "<item>"))

	// Newest first: pattern-09 has the latest updated_at.
	first := strings.Index(rss, "Pattern 09")
	second := strings.Index(rss, "Pattern 08")
	require.Positive(t, first)
	require.Positive(t, second)
	assert.Less(t, first, second)
	assert.NotContains(t, rss, "Pattern 05", "older records fall off the feed")
}

func TestLLMArtifacts(t *testing.T) {
	dir := t.TempDir()
	e := New(dir, nil)
	snap := snapshot(2)

	require.NoError(t, e.EmitLLMIndex(snap))
	require.NoError(t, e.EmitLLMFull(snap))

	idx, err := os.ReadFile(filepath.Join(dir, LLMIndexFile))
	require.NoError(t, err)
	assert.Contains(t, string(idx), "## pattern-00")
	assert.Contains(t, string(idx), "Summary: Summary 00.")
	assert.Contains(t, string(idx), "URL: https://example.com/patterns/pattern-00/")

	full, err := os.ReadFile(filepath.Join(dir, LLMFullFile))
	require.NoError(t, err)
	assert.Contains(t, string(full), "# Pattern 01")
	assert.Contains(t, string(full), "Status: emerging")
	assert.Contains(t, string(full), "Body 01.")
	assert.Contains(t, string(full), "\n---\n", "records are separated by rule lines")
}

func TestPerRecordCarriesBody(t *testing.T) {
	dir := t.TempDir()
	e := New(dir, nil)

	require.NoError(t, e.EmitPerRecord(snapshot(1)))

	data, err := os.ReadFile(filepath.Join(dir, PerRecordDir, "pattern-00.json"))
	require.NoError(t, err)

	var view map[string]any
	require.NoError(t, json.Unmarshal(data, &view))
	assert.Equal(t, "## Problem\n\nBody 00.", view["body"])
	assert.Equal(t, "https://example.com/patterns/pattern-00/", view["url"])
}

func TestEmitIdempotent(t *testing.T) {
	dir := t.TempDir()
	e := New(dir, nil)
	snap := snapshot(3)

	var report core.Report
	e.EmitAll(snap, &report)
	first := readAll(t, dir)
	e.EmitAll(snap, &report)
	second := readAll(t, dir)

	assert.Equal(t, first, second, "re-emitting an unchanged snapshot must be byte-identical")
}

func readAll(t *testing.T, dir string) map[string]string {
	t.Helper()
	out := map[string]string{}
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return err
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		rel, _ := filepath.Rel(dir, path)
		out[rel] = string(data)
		return nil
	})
	require.NoError(t, err)
	return out
}
