// Package catalog reads the pattern source directory: it enumerates record
// files, splits frontmatter from body, and derives the fields the catalogue
// needs but authors are allowed to omit.
package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/nibzard/awesome-agentic-patterns/pkg/core"
)

const (
	// Extension is the record file extension the catalogue recognises.
	Extension = ".md"

	// TemplateFile is the reserved file new patterns are copied from. It is
	// never treated as a record.
	TemplateFile = "pattern-template.md"
)

// ScanConfig tunes enumeration.
type ScanConfig struct {
	// Template overrides the reserved template file name. Empty means
	// TemplateFile.
	Template string
	// Exclude holds doublestar glob patterns matched against the path
	// relative to the scanned directory.
	Exclude []string
}

// Scan lists the candidate record files in dir, sorted by path. The reserved
// template file and any excluded paths are skipped. A directory that does not
// exist or cannot be read is fatal for the whole run: the returned error
// wraps core.ErrFatalEnumeration.
func Scan(dir string, cfg ScanConfig) ([]string, error) {
	template := cfg.Template
	if template == "" {
		template = TemplateFile
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", core.ErrFatalEnumeration, dir, err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasSuffix(name, Extension) {
			continue
		}
		if name == template {
			continue
		}
		if excluded(name, cfg.Exclude) {
			continue
		}
		paths = append(paths, filepath.Join(dir, name))
	}

	sort.Strings(paths)
	return paths, nil
}

func excluded(rel string, patterns []string) bool {
	for _, p := range patterns {
		if ok, err := doublestar.Match(p, rel); err == nil && ok {
			return true
		}
	}
	return false
}
