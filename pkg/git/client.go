// Package git shells out to the git binary to answer the one question the
// build pipeline has for version control: when was a file born, and when was
// it last touched.
package git

import (
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
	"time"
)

// Client wraps git command execution rooted at a working directory.
type Client struct {
	WorkDir string
	Logger  *slog.Logger
}

// NewClient creates a git client for the given working directory.
func NewClient(workDir string, logger *slog.Logger) *Client {
	return &Client{WorkDir: workDir, Logger: logger}
}

// IsInstalled reports whether a git binary is available on PATH.
func IsInstalled() bool {
	_, err := exec.LookPath("git")
	return err == nil
}

// Run executes a raw git command in the working directory.
func (c *Client) Run(args ...string) (string, error) {
	if c.Logger != nil {
		c.Logger.Debug("executing git", "args", args, "dir", c.WorkDir)
	}

	cmd := exec.Command("git", args...)
	cmd.Dir = c.WorkDir

	out, err := cmd.CombinedOutput()
	output := string(out)

	if err != nil {
		return output, fmt.Errorf("git %s failed: %w\nOutput: %s", args[0], err, output)
	}

	return strings.TrimSpace(output), nil
}

// IsRepo reports whether the working directory is inside a git work tree.
func (c *Client) IsRepo() bool {
	out, err := c.Run("rev-parse", "--is-inside-work-tree")
	return err == nil && out == "true"
}

// Timestamps returns the author dates of the earliest and the most recent
// commits touching path, in one log invocation. ok is false when the file has
// no history (untracked or never committed).
func (c *Client) Timestamps(path string) (birth, lastTouch time.Time, ok bool, err error) {
	out, err := c.Run("log", "--follow", "--format=%aI", "--", path)
	if err != nil {
		return time.Time{}, time.Time{}, false, err
	}
	if out == "" {
		return time.Time{}, time.Time{}, false, nil
	}

	lines := strings.Split(out, "\n")

	// git log is newest first.
	lastTouch, err = time.Parse(time.RFC3339, strings.TrimSpace(lines[0]))
	if err != nil {
		return time.Time{}, time.Time{}, false, fmt.Errorf("parse last-touch date: %w", err)
	}
	birth, err = time.Parse(time.RFC3339, strings.TrimSpace(lines[len(lines)-1]))
	if err != nil {
		return time.Time{}, time.Time{}, false, fmt.Errorf("parse birth date: %w", err)
	}

	return birth, lastTouch, true, nil
}
