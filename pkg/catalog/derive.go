package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/nibzard/awesome-agentic-patterns/pkg/core"
)

// ProblemHeading is the section every pattern is expected to open with. The
// deriver mines it for the summary and the excerpt.
const ProblemHeading = "Problem"

var (
	kebabStripRe    = regexp.MustCompile(`[^a-z0-9 _-]+`)
	kebabSeparateRe = regexp.MustCompile(`[ _]+`)
	kebabCollapseRe = regexp.MustCompile(`-{2,}`)

	inlineCodeRe = regexp.MustCompile("`([^`]*)`")
	linkRe       = regexp.MustCompile(`\[([^\]]*)\]\([^)]*\)`)
	emphasisRe   = regexp.MustCompile(`[*_]{1,3}([^*_]+)[*_]{1,3}`)
)

// Kebab converts a title to its canonical identifier form: lowercase,
// special characters stripped, word separators collapsed to single hyphens.
func Kebab(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	s = kebabStripRe.ReplaceAllString(s, "")
	s = kebabSeparateRe.ReplaceAllString(s, "-")
	s = kebabCollapseRe.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// Derive builds a fully-populated Pattern from a parsed record. Missing
// fields are filled with deterministic fallbacks:
//
//   - id: kebab-cased title
//   - slug: the filename without extension
//   - summary: first sentence of the "Problem" section, markup stripped
//   - updated_at: the file's modification date (UTC)
//   - excerpt: the "Problem" section with its heading re-attached
//
// Derive never mutates the input record. Given unchanged input and unchanged
// filesystem metadata it is idempotent.
func Derive(path string, raw *RawRecord) core.Pattern {
	md := raw.Metadata

	p := core.Pattern{
		Title:         stringField(md, "title"),
		Status:        stringField(md, "status"),
		Authors:       stringList(md, "authors"),
		Category:      stringField(md, "category"),
		Source:        stringField(md, "source"),
		Tags:          stringList(md, "tags"),
		Summary:       stringField(md, "summary"),
		Maturity:      stringField(md, "maturity"),
		Complexity:    stringField(md, "complexity"),
		Effort:        stringField(md, "effort"),
		Impact:        stringField(md, "impact"),
		Signals:       stringList(md, "signals"),
		AntiSignals:   stringList(md, "anti_signals"),
		Prerequisites: stringList(md, "prerequisites"),
		Related:       stringList(md, "related"),
		AntiPatterns:  stringList(md, "anti_patterns"),
		DomainTags:    stringList(md, "domain_tags"),
		UpdatedAt:     dateField(md, "updated_at"),
		Body:          raw.Body,
		Path:          filepath.Base(path),
		Raw:           md,
	}

	p.ID = stringField(md, "id")
	if p.ID == "" {
		p.ID = Kebab(p.Title)
	}

	p.Slug = stringField(md, "slug")
	if p.Slug == "" {
		p.Slug = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	problem, ok := Section(raw.Body, ProblemHeading)
	if ok {
		p.Excerpt = "## " + ProblemHeading + "\n\n" + problem
		if p.Summary == "" {
			p.Summary = FirstSentence(problem)
		}
	}

	if p.UpdatedAt == "" {
		if info, err := os.Stat(path); err == nil {
			p.UpdatedAt = info.ModTime().UTC().Format("2006-01-02")
		}
	}

	return p
}

// FirstSentence strips Markdown markup and code fences from text and returns
// its first sentence.
func FirstSentence(text string) string {
	plain := StripMarkup(text)
	plain = strings.Join(strings.Fields(plain), " ")
	if plain == "" {
		return ""
	}

	for i, r := range plain {
		if r != '.' && r != '!' && r != '?' {
			continue
		}
		if r == '.' {
			// A period inside "2.5" does not end a sentence.
			if i+1 < len(plain) && plain[i+1] != ' ' {
				continue
			}
			// Nor does the trailing period of a dotted abbreviation ("e.g.").
			word := plain[strings.LastIndexByte(plain[:i], ' ')+1 : i]
			if strings.ContainsRune(word, '.') {
				continue
			}
		}
		return plain[:i+1]
	}
	return plain
}

// StripMarkup removes code fences, inline code markers, links, emphasis, and
// heading markers, keeping the readable text.
func StripMarkup(text string) string {
	var kept []string
	inFence := false
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "```") {
			inFence = !inFence
			continue
		}
		if inFence {
			continue
		}
		trimmed = strings.TrimLeft(trimmed, "#")
		kept = append(kept, trimmed)
	}

	s := strings.Join(kept, "\n")
	s = inlineCodeRe.ReplaceAllString(s, "$1")
	s = linkRe.ReplaceAllString(s, "$1")
	s = emphasisRe.ReplaceAllString(s, "$1")
	return strings.TrimSpace(s)
}

// stringField reads a scalar metadata value as a string.
func stringField(md core.Metadata, key string) string {
	v, ok := md[key]
	if !ok || v == nil {
		return ""
	}
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	default:
		return strings.TrimSpace(fmt.Sprintf("%v", t))
	}
}

// dateField reads a metadata value that YAML may have decoded as a string or
// a time.Time, normalised to YYYY-MM-DD.
func dateField(md core.Metadata, key string) string {
	v, ok := md[key]
	if !ok || v == nil {
		return ""
	}
	switch t := v.(type) {
	case time.Time:
		return t.UTC().Format("2006-01-02")
	case string:
		return strings.TrimSpace(t)
	default:
		return strings.TrimSpace(fmt.Sprintf("%v", t))
	}
}

// stringList reads a metadata value as a list of strings. YAML hands lists
// back as []interface{}; a bare scalar is treated as a one-element list.
func stringList(md core.Metadata, key string) []string {
	v, ok := md[key]
	if !ok || v == nil {
		return nil
	}
	var out []string
	switch t := v.(type) {
	case []any:
		for _, item := range t {
			if s := strings.TrimSpace(fmt.Sprintf("%v", item)); s != "" {
				out = append(out, s)
			}
		}
	case []string:
		for _, s := range t {
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
		}
	case string:
		if s := strings.TrimSpace(t); s != "" {
			out = append(out, s)
		}
	}
	return out
}
