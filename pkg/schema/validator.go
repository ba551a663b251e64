package schema

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/nibzard/awesome-agentic-patterns/pkg/catalog"
	"github.com/nibzard/awesome-agentic-patterns/pkg/core"
)

// Validator checks records against a Contract. It never mutates a record and
// never filters one out: callers decide what error-severity issues mean.
type Validator struct {
	Contract Contract

	// CheckContent enables body diagnostics: empty body and a missing
	// "Problem" section are reported as warnings.
	CheckContent bool
}

// New returns a Validator over the given contract.
func New(contract Contract) *Validator {
	return &Validator{Contract: contract}
}

// ValidateRecord produces the diagnostics for a single record.
func (v *Validator) ValidateRecord(p core.Pattern) []core.ValidationIssue {
	var issues []core.ValidationIssue

	for _, field := range v.Contract.Required {
		if fieldEmpty(p.Raw, field) {
			issues = append(issues, core.ValidationIssue{
				Severity: core.SeverityError,
				File:     p.Path,
				Field:    field,
				Message:  "required field is missing",
			})
		}
	}

	for _, field := range v.Contract.Recommended {
		if fieldEmpty(p.Raw, field) {
			issues = append(issues, core.ValidationIssue{
				Severity: core.SeverityWarning,
				File:     p.Path,
				Field:    field,
				Message:  "recommended field is missing",
			})
		}
	}

	if p.Status != "" {
		if err := validation.Validate(p.Status, validation.In(toAny(v.Contract.StatusValues)...)); err != nil {
			issues = append(issues, core.ValidationIssue{
				Severity: core.SeverityError,
				File:     p.Path,
				Field:    "status",
				Message:  "invalid value " + strings.TrimSpace(p.Status),
			})
		}
	}

	if p.Category != "" {
		if err := validation.Validate(p.Category, validation.In(toAny(v.Contract.CategoryValues)...)); err != nil {
			issues = append(issues, core.ValidationIssue{
				Severity: core.SeverityError,
				File:     p.Path,
				Field:    "category",
				Message:  "invalid value " + strings.TrimSpace(p.Category),
			})
		}
	}

	if v.CheckContent {
		if strings.TrimSpace(p.Body) == "" {
			issues = append(issues, core.ValidationIssue{
				Severity: core.SeverityWarning,
				File:     p.Path,
				Message:  "body is empty",
			})
		} else if _, ok := catalog.Section(p.Body, catalog.ProblemHeading); !ok {
			issues = append(issues, core.ValidationIssue{
				Severity: core.SeverityWarning,
				Message:  "missing \"Problem\" section",
				File:     p.Path,
			})
		}
	}

	return issues
}

// ValidateSet runs per-record validation over a whole record set and adds the
// set-level checks, currently duplicate-id detection: two distinct titles may
// normalise to one kebab-case id, and that collision must surface as a
// build-time error instead of a silent overwrite.
func (v *Validator) ValidateSet(patterns []core.Pattern) core.Report {
	var report core.Report

	seen := make(map[string]string, len(patterns))
	for _, p := range patterns {
		for _, issue := range v.ValidateRecord(p) {
			report.Add(issue)
		}

		if p.ID == "" {
			continue
		}
		if first, dup := seen[p.ID]; dup {
			report.Errorf(p.Path, "id", "duplicate id %q (already derived for %s)", p.ID, first)
			continue
		}
		seen[p.ID] = p.Path
	}

	return report
}

// fieldEmpty reports whether a frontmatter field is absent or holds no
// usable value.
func fieldEmpty(md core.Metadata, field string) bool {
	v, ok := md[field]
	if !ok || v == nil {
		return true
	}
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t) == ""
	case []any:
		return len(t) == 0
	case []string:
		return len(t) == 0
	default:
		return false
	}
}

func toAny(values []string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
