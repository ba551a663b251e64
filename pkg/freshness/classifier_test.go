package freshness

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/nibzard/awesome-agentic-patterns/pkg/core"
)

// fakeHistory serves canned timestamps per path.
type fakeHistory struct {
	entries map[string][2]time.Time
	errs    map[string]error
}

func (f *fakeHistory) Timestamps(path string) (time.Time, time.Time, bool, error) {
	if err, ok := f.errs[path]; ok {
		return time.Time{}, time.Time{}, false, err
	}
	e, ok := f.entries[path]
	if !ok {
		return time.Time{}, time.Time{}, false, nil
	}
	return e[0], e[1], true, nil
}

var now = time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

func daysAgo(n int) time.Time { return now.AddDate(0, 0, -n) }

func TestClassify(t *testing.T) {
	tests := []struct {
		name      string
		birth     time.Time
		lastTouch time.Time
		want      core.FreshnessLabel
	}{
		{
			name:      "Born 3 Days Ago Is New",
			birth:     daysAgo(3),
			lastTouch: daysAgo(1),
			want:      core.FreshnessNew,
		},
		{
			name:      "Touched 10 Days Ago Is Updated",
			birth:     daysAgo(30),
			lastTouch: daysAgo(10),
			want:      core.FreshnessUpdated,
		},
		{
			name:      "Stale Has No Label",
			birth:     daysAgo(30),
			lastTouch: daysAgo(30),
			want:      core.FreshnessNone,
		},
		{
			name:      "New Wins Over Updated",
			birth:     daysAgo(2),
			lastTouch: daysAgo(2),
			want:      core.FreshnessNew,
		},
		{
			name:      "Boundary At New Threshold",
			birth:     daysAgo(7),
			lastTouch: daysAgo(7),
			want:      core.FreshnessNew,
		},
		{
			name:      "Boundary At Updated Threshold",
			birth:     daysAgo(100),
			lastTouch: daysAgo(14),
			want:      core.FreshnessUpdated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(now, tt.birth, tt.lastTouch, 7, 14)
			if got != tt.want {
				t.Errorf("Classify = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestClassifierLabel(t *testing.T) {
	history := &fakeHistory{
		entries: map[string][2]time.Time{
			"fresh.md": {daysAgo(3), daysAgo(1)},
		},
	}

	c := NewClassifier(history)
	c.Now = func() time.Time { return now }

	label, err := c.Label("fresh.md")
	if err != nil {
		t.Fatal(err)
	}
	if label != core.FreshnessNew {
		t.Errorf("label = %q, want NEW", label)
	}

	// No history and no error means no label.
	label, err = c.Label("unknown.md")
	if err != nil {
		t.Fatal(err)
	}
	if label != core.FreshnessNone {
		t.Errorf("label = %q, want none", label)
	}
}

func TestClassifierDeterministic(t *testing.T) {
	history := &fakeHistory{
		entries: map[string][2]time.Time{
			"p.md": {daysAgo(30), daysAgo(10)},
		},
	}
	c := NewClassifier(history)
	c.Now = func() time.Time { return now }

	first, _ := c.Label("p.md")
	second, _ := c.Label("p.md")
	if first != second {
		t.Errorf("labels differ across runs: %q vs %q", first, second)
	}
}

func TestLabelAll(t *testing.T) {
	history := &fakeHistory{
		entries: map[string][2]time.Time{
			"new.md":     {daysAgo(3), daysAgo(1)},
			"updated.md": {daysAgo(30), daysAgo(10)},
			"stale.md":   {daysAgo(90), daysAgo(60)},
		},
		errs: map[string]error{
			"broken.md": errors.New("boom"),
		},
	}

	c := NewClassifier(history)
	c.Now = func() time.Time { return now }

	var report core.Report
	labels := c.LabelAll(context.Background(),
		[]string{"new.md", "updated.md", "stale.md", "broken.md"}, &report)

	if labels["new.md"] != core.FreshnessNew {
		t.Errorf("new.md = %q", labels["new.md"])
	}
	if labels["updated.md"] != core.FreshnessUpdated {
		t.Errorf("updated.md = %q", labels["updated.md"])
	}
	if _, ok := labels["stale.md"]; ok {
		t.Error("stale.md should carry no label")
	}
	if _, ok := labels["broken.md"]; ok {
		t.Error("broken.md should carry no label")
	}

	warnings := report.Warnings()
	if len(warnings) != 1 || warnings[0].File != "broken.md" {
		t.Errorf("want one warning for broken.md, got %v", warnings)
	}
}
