package catalog

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/nibzard/awesome-agentic-patterns/pkg/core"
)

// RawRecord is the parser output: the frontmatter map and the Markdown body,
// before any derivation has happened.
type RawRecord struct {
	Metadata core.Metadata
	Body     string
}

// Parse reads a stream and splits it into a frontmatter map and a body.
// The metadata block must open the file with a --- fence and close with
// another. A record without frontmatter is a parse error here: every
// catalogue entry carries metadata, unlike free-form notes.
func Parse(r io.Reader) (*RawRecord, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return ParseBytes(data)
}

// ParseBytes is Parse over a byte slice.
func ParseBytes(data []byte) (*RawRecord, error) {
	if !bytes.HasPrefix(data, []byte("---\n")) && !bytes.HasPrefix(data, []byte("---\r\n")) {
		return nil, errors.New("missing frontmatter block")
	}

	rest := data[3:]
	parts := bytes.SplitN(rest, []byte("\n---"), 2)
	if len(parts) == 1 {
		return nil, errors.New("frontmatter started but no closing delimiter found")
	}

	rec := &RawRecord{Metadata: make(core.Metadata)}
	if err := yaml.Unmarshal(parts[0], &rec.Metadata); err != nil {
		return nil, fmt.Errorf("failed to parse frontmatter: %w", err)
	}

	body := string(parts[1])
	// Drop the remainder of the fence line, then the newline that follows it.
	if i := strings.Index(body, "\n"); i >= 0 {
		body = body[i+1:]
	} else {
		body = ""
	}
	rec.Body = body

	return rec, nil
}

// Section extracts a ##-level section from a Markdown body by heading text,
// matched case-insensitively. It returns the section body up to the next
// ##-level heading or end of input, without the heading line, and whether the
// section was found.
func Section(body, heading string) (string, bool) {
	lines := strings.Split(body, "\n")
	want := strings.ToLower(strings.TrimSpace(heading))

	start := -1
	for i, line := range lines {
		if !strings.HasPrefix(line, "## ") {
			continue
		}
		if strings.ToLower(strings.TrimSpace(strings.TrimPrefix(line, "## "))) == want {
			start = i + 1
			break
		}
	}
	if start < 0 {
		return "", false
	}

	end := len(lines)
	for i := start; i < len(lines); i++ {
		if strings.HasPrefix(lines[i], "## ") {
			end = i
			break
		}
	}

	return strings.TrimSpace(strings.Join(lines[start:end], "\n")), true
}
