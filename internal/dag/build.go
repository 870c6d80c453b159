package dag

import (
	"context"

	"github.com/vk/skilltreego/internal/catalog"
	"github.com/vk/skilltreego/internal/ctxlog"
)

// Build constructs the prerequisite graph for a loaded catalog.
//
// It is a pure, error-free transform: one node per skill, one edge per
// prerequisite reference that resolves to a skill in the catalog. References
// to unknown ids and self-references produce no edge here; detecting them is
// the validator's job. Build never mutates the catalog.
func Build(ctx context.Context, cat *catalog.Catalog) *Graph {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Build: Starting graph construction.")

	graph := New()

	// First pass: create all nodes.
	for _, id := range cat.Order {
		graph.AddNode(id)
	}
	logger.Debug("Build: Node creation complete.", "node_count", graph.Len())

	// Second pass: link resolvable prerequisite references.
	skipped := 0
	for _, id := range cat.Order {
		for _, prereq := range cat.Skills[id].Prerequisites {
			if prereq == id || !graph.Has(prereq) {
				skipped++
				continue
			}
			// Both endpoints exist and differ, so AddEdge cannot fail.
			_ = graph.AddEdge(prereq, id)
		}
	}
	logger.Debug("Build: Edge linking complete.", "edge_count", graph.EdgeCount(), "unresolved_refs", skipped)

	return graph
}
