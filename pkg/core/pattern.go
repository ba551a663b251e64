package core

import "time"

// Metadata represents the flexible key-value pairs parsed from frontmatter.
type Metadata map[string]any

// Pattern is the central entity of the domain.
// It represents one catalogued entry: a block of metadata plus a Markdown body.
// A Pattern is constructed once per build run and is immutable afterwards.
type Pattern struct {
	// ID is the stable identifier. Derived from Title when not explicit.
	ID string `json:"id" yaml:"id"`
	// Slug is the URL path segment. Derived from the filename when not explicit.
	Slug string `json:"slug" yaml:"slug"`

	Title    string   `json:"title" yaml:"title"`
	Status   string   `json:"status" yaml:"status"`
	Authors  []string `json:"authors" yaml:"authors"`
	Category string   `json:"category" yaml:"category"`
	Source   string   `json:"source" yaml:"source"`
	Tags     []string `json:"tags" yaml:"tags"`

	Summary    string `json:"summary,omitempty" yaml:"summary,omitempty"`
	Maturity   string `json:"maturity,omitempty" yaml:"maturity,omitempty"`
	Complexity string `json:"complexity,omitempty" yaml:"complexity,omitempty"`
	Effort     string `json:"effort,omitempty" yaml:"effort,omitempty"`
	Impact     string `json:"impact,omitempty" yaml:"impact,omitempty"`

	Signals       []string `json:"signals,omitempty" yaml:"signals,omitempty"`
	AntiSignals   []string `json:"anti_signals,omitempty" yaml:"anti_signals,omitempty"`
	Prerequisites []string `json:"prerequisites,omitempty" yaml:"prerequisites,omitempty"`
	Related       []string `json:"related,omitempty" yaml:"related,omitempty"`
	AntiPatterns  []string `json:"anti_patterns,omitempty" yaml:"anti_patterns,omitempty"`
	DomainTags    []string `json:"domain_tags,omitempty" yaml:"domain_tags,omitempty"`

	// UpdatedAt is a calendar date (YYYY-MM-DD). Derived from the file's
	// modification time when not explicit.
	UpdatedAt string `json:"updated_at" yaml:"updated_at"`

	// Excerpt is the "Problem" section re-attached with its heading, or "".
	Excerpt string `json:"excerpt" yaml:"excerpt"`

	// Body is the full Markdown body. Excluded from the index artifact.
	Body string `json:"-" yaml:"-"`

	// Path is the source file the pattern was read from, relative to the
	// catalogue root.
	Path string `json:"-" yaml:"-"`

	// Raw keeps the parsed frontmatter as-is so emitters and validators can
	// see fields the typed projection does not model.
	Raw Metadata `json:"-" yaml:"-"`
}

// UpdatedTime parses UpdatedAt as a UTC date. The zero time is returned when
// the field is empty or malformed.
func (p Pattern) UpdatedTime() time.Time {
	t, err := time.ParseInLocation("2006-01-02", p.UpdatedAt, time.UTC)
	if err != nil {
		return time.Time{}
	}
	return t
}
