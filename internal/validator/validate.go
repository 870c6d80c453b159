package validator

import (
	"context"
	"sort"

	"github.com/vk/skilltreego/internal/catalog"
	"github.com/vk/skilltreego/internal/ctxlog"
	"github.com/vk/skilltreego/internal/dag"
)

// Validate runs all structural checks over a graph and the catalog it was
// built from. It is pure and side-effect-free, and it always returns a
// report rather than an error; an empty report means the catalog is
// well-formed.
func Validate(ctx context.Context, g *dag.Graph, cat *catalog.Catalog) *Report {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Validate: Starting structural checks.", "nodes", g.Len(), "edges", g.EdgeCount())

	report := &Report{}

	checkCycles(g, cat, report)
	checkMissingPrerequisites(cat, report)
	checkOrphans(g, report)
	checkDuplicates(cat, report)

	logger.Debug("Validate: Structural checks complete.",
		"cycles", len(report.Cycles),
		"missing_prerequisites", len(report.MissingPrerequisites),
		"orphans", len(report.Orphans),
		"duplicate_ids", len(report.DuplicateIDs),
	)
	return report
}

// checkCycles records self-referencing skills and all simple cycles in the
// graph, up to MaxCycles.
//
// Self-references never become graph edges, so they are read back from the
// catalog: a skill listing itself is a cycle of length one.
func checkCycles(g *dag.Graph, cat *catalog.Catalog, report *Report) {
	for _, id := range cat.Order {
		for _, prereq := range cat.Skills[id].Prerequisites {
			if prereq == id {
				report.Cycles = append(report.Cycles, []string{id})
				break
			}
		}
	}

	cycles, truncated := enumerateCycles(g, MaxCycles-len(report.Cycles))
	report.Cycles = append(report.Cycles, cycles...)
	report.CyclesTruncated = truncated
}

// checkMissingPrerequisites records every reference to an id absent from the
// catalog, in catalog declaration order.
func checkMissingPrerequisites(cat *catalog.Catalog, report *Report) {
	for _, id := range cat.Order {
		for _, prereq := range cat.Skills[id].Prerequisites {
			if _, ok := cat.Skills[prereq]; !ok {
				report.MissingPrerequisites = append(report.MissingPrerequisites, MissingRef{
					SkillID:        id,
					PrerequisiteID: prereq,
				})
			}
		}
	}

	sort.Slice(report.MissingPrerequisites, func(i, j int) bool {
		a, b := report.MissingPrerequisites[i], report.MissingPrerequisites[j]
		if a.SkillID != b.SkillID {
			return a.SkillID < b.SkillID
		}
		return a.PrerequisiteID < b.PrerequisiteID
	})
}

// checkOrphans records every node not reachable from a root by directed
// traversal. Traversal starts from every zero-in-degree node; with cycles in
// the graph, a cycle with no external root has no reachable entry point and
// all of its members are reported as orphaned.
func checkOrphans(g *dag.Graph, report *Report) {
	reachable := make(map[string]bool)
	queue := g.Roots()
	for _, root := range queue {
		reachable[root] = true
	}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		successors, _ := g.Dependents(cur)
		for _, next := range successors {
			if !reachable[next] {
				reachable[next] = true
				queue = append(queue, next)
			}
		}
	}

	for _, id := range g.IDs() {
		if !reachable[id] {
			report.Orphans = append(report.Orphans, id)
		}
	}
}

// checkDuplicates re-surfaces load-time id collisions, sorted for stable
// output. The catalog records collisions regardless of which duplicate
// policy resolved them.
func checkDuplicates(cat *catalog.Catalog, report *Report) {
	if len(cat.Duplicates) == 0 {
		return
	}
	report.DuplicateIDs = append(report.DuplicateIDs, cat.Duplicates...)
	sort.Strings(report.DuplicateIDs)
}
