package emit

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/nibzard/awesome-agentic-patterns/pkg/core"
)

// recordView is the per-record artifact: the index entry plus the body.
type recordView struct {
	core.Pattern
	Body string `json:"body"`
	URL  string `json:"url"`
}

// EmitIndex writes the searchable index: one metadata object per record,
// bodies excluded.
func (e *Emitter) EmitIndex(snap Snapshot) error {
	data, err := marshalIndent(snap.Patterns)
	if err != nil {
		return err
	}
	return writeFileAtomic(e.path(IndexFile), data, 0644)
}

// EmitPerRecord writes one JSON object per record, addressable by slug,
// identical to the index entry but carrying the full body.
func (e *Emitter) EmitPerRecord(snap Snapshot) error {
	var firstErr error
	for _, p := range snap.Patterns {
		view := recordView{Pattern: p, Body: p.Body, URL: snap.Site.PatternURL(p.Slug)}
		data, err := marshalIndent(view)
		if err == nil {
			err = writeFileAtomic(filepath.Join(e.OutDir, PerRecordDir, p.Slug+".json"), data, 0644)
		}
		if err != nil && firstErr == nil {
			firstErr = fmt.Errorf("record %s: %w", p.Slug, err)
		}
	}
	return firstErr
}

// EmitGraph writes the resolved cross-reference graph.
func (e *Emitter) EmitGraph(snap Snapshot) error {
	data, err := marshalIndent(snap.Graph)
	if err != nil {
		return err
	}
	return writeFileAtomic(e.path(GraphFile), data, 0644)
}

func marshalIndent(v any) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}
