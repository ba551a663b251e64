package catalog

import (
	"fmt"
	"os"

	"github.com/nibzard/awesome-agentic-patterns/pkg/core"
)

// Load reads, parses, and derives one record file.
func Load(path string) (core.Pattern, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return core.Pattern{}, fmt.Errorf("read %s: %w", path, err)
	}
	raw, err := ParseBytes(data)
	if err != nil {
		return core.Pattern{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return Derive(path, raw), nil
}
