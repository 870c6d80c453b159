package analyzer

import (
	"context"
	"sort"

	"github.com/vk/skilltreego/internal/catalog"
	"github.com/vk/skilltreego/internal/ctxlog"
	"github.com/vk/skilltreego/internal/dag"
)

// TopN is the number of entries kept in each ranking.
const TopN = 10

// LevelStats aggregates the skills sharing one declared level tag.
type LevelStats struct {
	Count   int
	TotalXP int
}

// RankedSkill is one entry of a ranking.
type RankedSkill struct {
	ID    string
	Name  string
	Count int
}

// Result is the aggregate output of one analysis pass. It is created fresh
// per invocation and never persisted by the engine.
type Result struct {
	TotalSkills int
	TotalEdges  int
	TotalXP     int

	// Roots are skills with no prerequisites; Leaves are skills nothing
	// depends on. Both sorted ascending.
	Roots  []string
	Leaves []string

	// CriticalPathLength is the longest path in the graph, in edge count.
	CriticalPathLength int

	// Layers maps each skill to the longest path length ending at it from
	// any root. Roots are layer 0. On cyclic input, nodes inside cycles are
	// assigned layer -1.
	Layers map[string]int

	// Cyclic is true when the graph is not a DAG, in which case the layer
	// and critical-path figures cover only the acyclic portion.
	Cyclic bool

	// LevelBreakdown tallies skills by their declared level tag. The tag is
	// independent of the computed layer.
	LevelBreakdown map[string]LevelStats

	// TopByPrerequisites ranks skills by declared prerequisite count,
	// TopByDependents by how many skills directly depend on them. Ties are
	// broken by id ascending; zero-count skills are omitted.
	TopByPrerequisites []RankedSkill
	TopByDependents    []RankedSkill
}

// Analyze computes analytics over a prerequisite graph and its catalog. It
// is pure: repeated calls over the same snapshot yield identical results.
func Analyze(ctx context.Context, g *dag.Graph, cat *catalog.Catalog) *Result {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Analyze: Starting analysis pass.", "nodes", g.Len(), "edges", g.EdgeCount())

	result := &Result{
		TotalSkills:    g.Len(),
		TotalEdges:     g.EdgeCount(),
		Roots:          g.Roots(),
		Leaves:         g.Leaves(),
		Layers:         make(map[string]int, g.Len()),
		LevelBreakdown: make(map[string]LevelStats),
	}

	computeLayers(g, result)
	tallyLevels(cat, result)
	rank(g, cat, result)

	logger.Debug("Analyze: Analysis pass complete.",
		"critical_path", result.CriticalPathLength, "cyclic", result.Cyclic)
	return result
}

// computeLayers runs the standard DAG longest-path dynamic program over a
// topological order: each node's layer is one more than the deepest of its
// predecessors, roots sit at zero, and the critical path is the maximum
// layer reached. Nodes missing from the topological order are caught in a
// cycle; they are marked with layer -1 and flip the Cyclic flag.
func computeLayers(g *dag.Graph, result *Result) {
	order, acyclic := g.TopoOrder()
	result.Cyclic = !acyclic

	for _, id := range order {
		layer := 0
		preds, _ := g.Dependencies(id)
		for _, pred := range preds {
			if depth, ok := result.Layers[pred]; ok && depth+1 > layer {
				layer = depth + 1
			}
		}
		result.Layers[id] = layer
		if layer > result.CriticalPathLength {
			result.CriticalPathLength = layer
		}
	}

	if result.Cyclic {
		for _, id := range g.IDs() {
			if _, ok := result.Layers[id]; !ok {
				result.Layers[id] = -1
			}
		}
	}
}

// tallyLevels groups skills by declared level tag, summing counts and XP.
func tallyLevels(cat *catalog.Catalog, result *Result) {
	for _, id := range cat.Order {
		skill := cat.Skills[id]
		stats := result.LevelBreakdown[skill.Level]
		stats.Count++
		stats.TotalXP += skill.XP
		result.LevelBreakdown[skill.Level] = stats
		result.TotalXP += skill.XP
	}
}

// rank fills both top-N rankings: declared prerequisite count as a
// complexity proxy, out-degree as an importance proxy.
func rank(g *dag.Graph, cat *catalog.Catalog, result *Result) {
	var byPrereqs, byDependents []RankedSkill
	for _, id := range cat.Order {
		skill := cat.Skills[id]
		if n := len(skill.Prerequisites); n > 0 {
			byPrereqs = append(byPrereqs, RankedSkill{ID: id, Name: skill.Name, Count: n})
		}
		if n := g.OutDegree(id); n > 0 {
			byDependents = append(byDependents, RankedSkill{ID: id, Name: skill.Name, Count: n})
		}
	}

	result.TopByPrerequisites = topN(byPrereqs)
	result.TopByDependents = topN(byDependents)
}

// topN sorts a ranking by count descending, id ascending on ties, and trims
// it to TopN entries.
func topN(ranked []RankedSkill) []RankedSkill {
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].ID < ranked[j].ID
	})
	if len(ranked) > TopN {
		ranked = ranked[:TopN]
	}
	return ranked
}
