package emit

import (
	"fmt"
	"strings"
)

// EmitLLMIndex writes llms.txt: one heading block per record with slug,
// title, one-line summary, and canonical URL.
func (e *Emitter) EmitLLMIndex(snap Snapshot) error {
	var sb strings.Builder

	sb.WriteString("# ")
	sb.WriteString(snap.Site.Title)
	sb.WriteString("\n\n")
	if snap.Site.Description != "" {
		sb.WriteString(snap.Site.Description)
		sb.WriteString("\n\n")
	}

	for _, p := range snap.Patterns {
		fmt.Fprintf(&sb, "## %s\n", p.Slug)
		fmt.Fprintf(&sb, "Title: %s\n", p.Title)
		if p.Summary != "" {
			fmt.Fprintf(&sb, "Summary: %s\n", p.Summary)
		}
		fmt.Fprintf(&sb, "URL: %s\n\n", snap.Site.PatternURL(p.Slug))
	}

	return writeFileAtomic(e.path(LLMIndexFile), []byte(sb.String()), 0644)
}

// EmitLLMFull writes llms-full.txt: one section per record with the key
// metadata and the full body, separated by rule lines.
func (e *Emitter) EmitLLMFull(snap Snapshot) error {
	var sb strings.Builder

	for i, p := range snap.Patterns {
		if i > 0 {
			sb.WriteString("\n---\n\n")
		}
		fmt.Fprintf(&sb, "# %s\n\n", p.Title)
		fmt.Fprintf(&sb, "Status: %s\n", p.Status)
		fmt.Fprintf(&sb, "Category: %s\n", p.Category)
		fmt.Fprintf(&sb, "Authors: %s\n", strings.Join(p.Authors, ", "))
		fmt.Fprintf(&sb, "Source: %s\n\n", p.Source)
		sb.WriteString(strings.TrimSpace(p.Body))
		sb.WriteString("\n")
	}

	return writeFileAtomic(e.path(LLMFullFile), []byte(sb.String()), 0644)
}
