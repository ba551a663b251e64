package core

// EdgeType tags a graph edge with the relationship it encodes.
type EdgeType string

const (
	EdgeRelated     EdgeType = "related"
	EdgeAntiPattern EdgeType = "anti-pattern"
)

// Node is a reduced projection of a Pattern: everything a consumer needs to
// render the reference graph, minus the body text.
type Node struct {
	ID       string   `json:"id"`
	Slug     string   `json:"slug"`
	Title    string   `json:"title"`
	Status   string   `json:"status"`
	Category string   `json:"category"`
	Tags     []string `json:"tags"`
}

// Edge is a directed, typed link from the declaring pattern to the referenced
// one. Both endpoints are guaranteed to exist in the node set.
type Edge struct {
	Source string   `json:"source"`
	Target string   `json:"target"`
	Type   EdgeType `json:"type"`
}

// Graph is the resolved cross-reference graph over one record set.
type Graph struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// HasNode reports whether an id is present in the node set.
func (g Graph) HasNode(id string) bool {
	for _, n := range g.Nodes {
		if n.ID == id {
			return true
		}
	}
	return false
}
