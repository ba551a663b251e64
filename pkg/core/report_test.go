package core

import (
	"strings"
	"testing"
)

func TestReportGrouping(t *testing.T) {
	var r Report
	r.Errorf("b.md", "title", "required field is missing")
	r.Warnf("a.md", "summary", "recommended field is missing")
	r.Errorf("a.md", "status", "invalid value x")

	if !r.HasErrors() {
		t.Fatal("expected errors")
	}
	if len(r.Errors()) != 2 {
		t.Errorf("errors = %d, want 2", len(r.Errors()))
	}
	if len(r.Warnings()) != 1 {
		t.Errorf("warnings = %d, want 1", len(r.Warnings()))
	}

	summary := r.Summary()
	if !strings.Contains(summary, "2 error(s), 1 warning(s)") {
		t.Errorf("summary missing count line:\n%s", summary)
	}
	// Errors are listed before warnings, files sorted within a group.
	errIdx := strings.Index(summary, "Errors:")
	warnIdx := strings.Index(summary, "Warnings:")
	if errIdx < 0 || warnIdx < 0 || errIdx > warnIdx {
		t.Errorf("groups out of order:\n%s", summary)
	}
	aIdx := strings.Index(summary, "a.md: status")
	bIdx := strings.Index(summary, "b.md: title")
	if aIdx < 0 || bIdx < 0 || aIdx > bIdx {
		t.Errorf("errors not sorted by file:\n%s", summary)
	}
}

func TestReportMerge(t *testing.T) {
	var a, b Report
	a.Errorf("x.md", "", "parse failed")
	b.Warnf("y.md", "", "empty body")

	a.Merge(b)
	if len(a.Issues) != 2 {
		t.Errorf("issues = %d, want 2", len(a.Issues))
	}
}

func TestIssueString(t *testing.T) {
	withField := ValidationIssue{Severity: SeverityError, File: "f.md", Field: "title", Message: "missing"}
	if got := withField.String(); got != "[error] f.md: title: missing" {
		t.Errorf("String = %q", got)
	}
	noField := ValidationIssue{Severity: SeverityWarning, File: "f.md", Message: "empty body"}
	if got := noField.String(); got != "[warning] f.md: empty body" {
		t.Errorf("String = %q", got)
	}
}
