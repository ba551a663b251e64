package catalog

import (
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantBody string
		wantKey  string
		wantVal  string
		wantErr  bool
	}{
		{
			name: "Basic Frontmatter",
			input: `---
title: Reflection Loop
---
## Problem

Agents forget.`,
			wantBody: "## Problem\n\nAgents forget.",
			wantKey:  "title",
			wantVal:  "Reflection Loop",
		},
		{
			name:    "No Frontmatter",
			input:   `# Just Markdown`,
			wantErr: true,
		},
		{
			name:    "Empty File",
			input:   ``,
			wantErr: true,
		},
		{
			name: "Invalid YAML",
			input: `---
key: : value
---
Content`,
			wantErr: true,
		},
		{
			name: "Unclosed Frontmatter",
			input: `---
title: Unclosed
Content`,
			wantErr: true,
		},
		{
			name: "Rule Line In Body",
			input: `---
title: Rules
---
Before

---

After`,
			wantBody: "Before\n\n---\n\nAfter",
			wantKey:  "title",
			wantVal:  "Rules",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, err := Parse(strings.NewReader(tt.input))
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got record %+v", rec)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := strings.TrimRight(rec.Body, "\n"); got != tt.wantBody {
				t.Errorf("body = %q, want %q", got, tt.wantBody)
			}
			if tt.wantKey != "" {
				if got := rec.Metadata[tt.wantKey]; got != tt.wantVal {
					t.Errorf("metadata[%s] = %v, want %q", tt.wantKey, got, tt.wantVal)
				}
			}
		})
	}
}

func TestSection(t *testing.T) {
	body := `Intro text.

## Problem

First paragraph.

Second paragraph.

## Solution

Do the thing.

### Detail

Nested heading stays inside Solution.`

	tests := []struct {
		name    string
		heading string
		want    string
		found   bool
	}{
		{
			name:    "Problem Section",
			heading: "Problem",
			want:    "First paragraph.\n\nSecond paragraph.",
			found:   true,
		},
		{
			name:    "Case Insensitive",
			heading: "pRoBlEm",
			want:    "First paragraph.\n\nSecond paragraph.",
			found:   true,
		},
		{
			name:    "Runs To End Of File",
			heading: "Solution",
			want:    "Do the thing.\n\n### Detail\n\nNested heading stays inside Solution.",
			found:   true,
		},
		{
			name:    "Missing Section",
			heading: "Trade-offs",
			found:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := Section(body, tt.heading)
			if found != tt.found {
				t.Fatalf("found = %v, want %v", found, tt.found)
			}
			if got != tt.want {
				t.Errorf("section = %q, want %q", got, tt.want)
			}
		})
	}
}
