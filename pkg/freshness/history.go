// Package freshness labels patterns NEW or UPDATED from their
// version-control history and a pair of day-count thresholds.
package freshness

import (
	"os"
	"time"

	"github.com/nibzard/awesome-agentic-patterns/pkg/git"
)

// HistoryProvider answers the two timestamp questions the classifier asks
// about a file. Isolating the version-control dependency behind this
// interface keeps the classifier testable with a fake provider.
type HistoryProvider interface {
	// Timestamps returns a file's birth and last-touch times. ok is false
	// when no history exists for the file.
	Timestamps(path string) (birth, lastTouch time.Time, ok bool, err error)
}

// GitHistory reads timestamps from git commit history, falling back to the
// filesystem modification time for files without history.
type GitHistory struct {
	Client *git.Client
}

// NewGitHistory creates a provider over the given git client.
func NewGitHistory(client *git.Client) *GitHistory {
	return &GitHistory{Client: client}
}

func (h *GitHistory) Timestamps(path string) (time.Time, time.Time, bool, error) {
	birth, lastTouch, ok, err := h.Client.Timestamps(path)
	if err == nil && ok {
		return birth, lastTouch, true, nil
	}
	// No commits touching the file, or the query itself failed: history is
	// unavailable, so the modification time stands in for both dates.
	return fsTimestamps(path)
}

// FSHistory derives both timestamps from the filesystem modification time.
// Used when the catalogue is not a git checkout at all.
type FSHistory struct{}

func (FSHistory) Timestamps(path string) (time.Time, time.Time, bool, error) {
	return fsTimestamps(path)
}

func fsTimestamps(path string) (time.Time, time.Time, bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}, time.Time{}, false, err
	}
	mt := info.ModTime()
	return mt, mt, true, nil
}
