// Package graph resolves the symbolic cross-references between patterns into
// a node/edge graph.
package graph

import (
	"github.com/nibzard/awesome-agentic-patterns/pkg/core"
)

// Builder turns a record set into a core.Graph. A node exists for every
// record; an edge exists only when both ends do. References to unknown ids
// are dropped, which is deliberate: authors link ahead to patterns that do
// not exist yet, and the catalogue still has to build.
type Builder struct {
	// WarnDangling surfaces dropped references on the report instead of
	// discarding them silently.
	WarnDangling bool
}

// Build resolves the record set into a graph. Dropped references are recorded
// on report (as warnings) only when WarnDangling is set; report may be nil
// otherwise.
func (b *Builder) Build(patterns []core.Pattern, report *core.Report) core.Graph {
	index := make(map[string]core.Pattern, len(patterns))
	for _, p := range patterns {
		if _, dup := index[p.ID]; dup {
			// Duplicate ids are reported by the validator; keep the first so
			// the graph stays deterministic.
			continue
		}
		index[p.ID] = p
	}

	g := core.Graph{
		Nodes: make([]core.Node, 0, len(index)),
		Edges: []core.Edge{},
	}

	for _, p := range patterns {
		if index[p.ID].Path != p.Path {
			continue
		}
		g.Nodes = append(g.Nodes, core.Node{
			ID:       p.ID,
			Slug:     p.Slug,
			Title:    p.Title,
			Status:   p.Status,
			Category: p.Category,
			Tags:     p.Tags,
		})

		b.appendEdges(&g, index, p, p.Related, core.EdgeRelated, report)
		b.appendEdges(&g, index, p, p.AntiPatterns, core.EdgeAntiPattern, report)
	}

	return g
}

func (b *Builder) appendEdges(g *core.Graph, index map[string]core.Pattern, from core.Pattern, refs []string, typ core.EdgeType, report *core.Report) {
	for _, ref := range refs {
		if _, ok := index[ref]; !ok {
			if b.WarnDangling && report != nil {
				report.Warnf(from.Path, fieldFor(typ), "reference to unknown id %q dropped", ref)
			}
			continue
		}
		if ref == from.ID {
			continue
		}
		g.Edges = append(g.Edges, core.Edge{Source: from.ID, Target: ref, Type: typ})
	}
}

func fieldFor(typ core.EdgeType) string {
	if typ == core.EdgeAntiPattern {
		return "anti_patterns"
	}
	return "related"
}
