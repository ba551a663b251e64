package freshness

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/nibzard/awesome-agentic-patterns/pkg/core"
)

// Default thresholds, in days.
const (
	DefaultNewDays     = 7
	DefaultUpdatedDays = 14
)

// Classifier assigns freshness labels using a two-threshold rule:
//
//	age ≤ NewDays            -> NEW
//	staleness ≤ UpdatedDays  -> UPDATED
//	otherwise                -> no label
//
// NEW takes precedence when both would hold. NewDays must be smaller than
// UpdatedDays for the labels to be meaningful.
type Classifier struct {
	History     HistoryProvider
	NewDays     int
	UpdatedDays int

	// Now overrides the clock. Nil means time.Now.
	Now func() time.Time
}

// NewClassifier creates a classifier with the default thresholds.
func NewClassifier(history HistoryProvider) *Classifier {
	return &Classifier{
		History:     history,
		NewDays:     DefaultNewDays,
		UpdatedDays: DefaultUpdatedDays,
	}
}

func (c *Classifier) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}

// Label computes a file's freshness label. The result is a pure function of
// the provider's two dates, the thresholds, and the clock.
func (c *Classifier) Label(path string) (core.FreshnessLabel, error) {
	birth, lastTouch, ok, err := c.History.Timestamps(path)
	if err != nil {
		return core.FreshnessNone, fmt.Errorf("history for %s: %w", path, err)
	}
	if !ok {
		return core.FreshnessNone, nil
	}
	return Classify(c.now(), birth, lastTouch, c.NewDays, c.UpdatedDays), nil
}

// Classify applies the two-threshold rule to a pair of dates.
func Classify(now, birth, lastTouch time.Time, newDays, updatedDays int) core.FreshnessLabel {
	ageDays := int(now.Sub(birth).Hours() / 24)
	stalenessDays := int(now.Sub(lastTouch).Hours() / 24)

	switch {
	case ageDays <= newDays:
		return core.FreshnessNew
	case stalenessDays <= updatedDays:
		return core.FreshnessUpdated
	default:
		return core.FreshnessNone
	}
}

// LabelAll labels every path, querying history concurrently with a bounded
// worker count. Results are written by index, so the output order matches the
// input regardless of scheduling. A failed query surfaces as a per-file
// diagnostic on report, not a run failure.
func (c *Classifier) LabelAll(ctx context.Context, paths []string, report *core.Report) map[string]core.FreshnessLabel {
	labels := make([]core.FreshnessLabel, len(paths))
	errs := make([]error, len(paths))

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, path := range paths {
		g.Go(func() error {
			labels[i], errs[i] = c.Label(path)
			return nil
		})
	}
	_ = g.Wait()

	out := make(map[string]core.FreshnessLabel, len(paths))
	for i, path := range paths {
		if errs[i] != nil {
			if report != nil {
				report.Warnf(path, "", "freshness query failed: %v", errs[i])
			}
			continue
		}
		if labels[i] != core.FreshnessNone {
			out[path] = labels[i]
		}
	}
	return out
}
