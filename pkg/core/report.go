package core

import (
	"fmt"
	"sort"
	"strings"
)

// Severity classifies a diagnostic.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// ValidationIssue is one diagnostic tied to a file and (optionally) a field.
// Issues are reporting artifacts only; they are never persisted into output.
type ValidationIssue struct {
	Severity Severity
	File     string
	Field    string
	Message  string
}

func (i ValidationIssue) String() string {
	if i.Field == "" {
		return fmt.Sprintf("[%s] %s: %s", i.Severity, i.File, i.Message)
	}
	return fmt.Sprintf("[%s] %s: %s: %s", i.Severity, i.File, i.Field, i.Message)
}

// Report accumulates diagnostics across a whole run. All per-file problems
// land here; only enumeration failure aborts a run early.
type Report struct {
	Issues []ValidationIssue
}

// Add appends an issue.
func (r *Report) Add(issue ValidationIssue) {
	r.Issues = append(r.Issues, issue)
}

// Errorf records an error-severity issue.
func (r *Report) Errorf(file, field, format string, args ...any) {
	r.Add(ValidationIssue{Severity: SeverityError, File: file, Field: field, Message: fmt.Sprintf(format, args...)})
}

// Warnf records a warning-severity issue.
func (r *Report) Warnf(file, field, format string, args ...any) {
	r.Add(ValidationIssue{Severity: SeverityWarning, File: file, Field: field, Message: fmt.Sprintf(format, args...)})
}

// Merge appends all issues from another report.
func (r *Report) Merge(other Report) {
	r.Issues = append(r.Issues, other.Issues...)
}

// Errors returns only the error-severity issues.
func (r *Report) Errors() []ValidationIssue {
	return r.filter(SeverityError)
}

// Warnings returns only the warning-severity issues.
func (r *Report) Warnings() []ValidationIssue {
	return r.filter(SeverityWarning)
}

func (r *Report) filter(sev Severity) []ValidationIssue {
	var out []ValidationIssue
	for _, i := range r.Issues {
		if i.Severity == sev {
			out = append(out, i)
		}
	}
	return out
}

// HasErrors reports whether any error-severity issue was recorded.
func (r *Report) HasErrors() bool {
	return len(r.Errors()) > 0
}

// Summary renders the human-readable report: issues grouped by severity,
// each with file and field context, followed by a count line.
func (r *Report) Summary() string {
	var sb strings.Builder

	groups := []struct {
		label  string
		issues []ValidationIssue
	}{
		{"Errors", r.Errors()},
		{"Warnings", r.Warnings()},
	}

	for _, g := range groups {
		if len(g.issues) == 0 {
			continue
		}
		sorted := make([]ValidationIssue, len(g.issues))
		copy(sorted, g.issues)
		sort.SliceStable(sorted, func(i, j int) bool {
			if sorted[i].File != sorted[j].File {
				return sorted[i].File < sorted[j].File
			}
			return sorted[i].Field < sorted[j].Field
		})
		sb.WriteString(g.label)
		sb.WriteString(":\n")
		for _, issue := range sorted {
			sb.WriteString("  ")
			sb.WriteString(issue.String())
			sb.WriteString("\n")
		}
	}

	sb.WriteString(fmt.Sprintf("%d error(s), %d warning(s)\n", len(r.Errors()), len(r.Warnings())))
	return sb.String()
}
