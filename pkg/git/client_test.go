package git

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// initRepo creates a throwaway repository with identity configured so
// commits work in bare CI environments.
func initRepo(t *testing.T) *Client {
	t.Helper()
	if !IsInstalled() {
		t.Skip("git binary not available")
	}

	dir := t.TempDir()
	c := NewClient(dir, nil)

	if _, err := c.Run("init"); err != nil {
		t.Fatal(err)
	}
	if _, err := c.Run("config", "user.name", "test"); err != nil {
		t.Fatal(err)
	}
	if _, err := c.Run("config", "user.email", "test@example.com"); err != nil {
		t.Fatal(err)
	}
	return c
}

func commitFile(t *testing.T, c *Client, name, content, msg string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(c.WorkDir, name), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := c.Run("add", name); err != nil {
		t.Fatal(err)
	}
	if _, err := c.Run("commit", "-m", msg); err != nil {
		t.Fatal(err)
	}
}

func TestIsRepo(t *testing.T) {
	c := initRepo(t)
	if !c.IsRepo() {
		t.Error("expected an initialised repository")
	}
}

func TestTimestamps(t *testing.T) {
	c := initRepo(t)

	commitFile(t, c, "a.md", "one\n", "add a")
	commitFile(t, c, "a.md", "two\n", "touch a")

	birth, lastTouch, ok, err := c.Timestamps("a.md")
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("expected history for a committed file")
	}
	if birth.After(lastTouch) {
		t.Errorf("birth %v after last touch %v", birth, lastTouch)
	}
	if time.Since(lastTouch) > time.Hour {
		t.Errorf("last touch unexpectedly old: %v", lastTouch)
	}
}

func TestTimestampsNoHistory(t *testing.T) {
	c := initRepo(t)
	commitFile(t, c, "other.md", "x\n", "seed history")

	// Present on disk, never committed.
	if err := os.WriteFile(filepath.Join(c.WorkDir, "untracked.md"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	_, _, ok, err := c.Timestamps("untracked.md")
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Error("untracked file should have no history")
	}
}
