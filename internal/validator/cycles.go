package validator

import "github.com/vk/skilltreego/internal/dag"

// MaxCycles caps simple-cycle enumeration. Cycle counts grow exponentially
// on dense graphs, so enumeration stops once this many cycles are collected
// and the report is flagged as truncated.
const MaxCycles = 25

// enumerateCycles lists the simple cycles of the graph, at most max of them.
//
// For each start node in ascending order it runs a DFS restricted to nodes
// that sort after the start, recording a cycle whenever an edge closes back
// to the start. Restricting the search this way yields each cycle exactly
// once, already rotated so its smallest id comes first. The scheme is a
// simplification of Johnson's algorithm that trades his blocking bookkeeping
// for the hard cap, which suits catalogs of at most a few hundred skills.
func enumerateCycles(g *dag.Graph, max int) ([][]string, bool) {
	ids := g.IDs()
	rank := make(map[string]int, len(ids))
	for i, id := range ids {
		rank[id] = i
	}

	var cycles [][]string
	truncated := false

	for i, start := range ids {
		if truncated {
			break
		}

		var path []string
		onPath := make(map[string]bool)

		var visit func(cur string)
		visit = func(cur string) {
			if truncated {
				return
			}
			path = append(path, cur)
			onPath[cur] = true

			successors, _ := g.Dependents(cur)
			for _, next := range successors {
				if rank[next] < i {
					continue
				}
				if next == start {
					if len(cycles) >= max {
						truncated = true
						break
					}
					cycle := make([]string, len(path))
					copy(cycle, path)
					cycles = append(cycles, cycle)
					continue
				}
				if !onPath[next] {
					visit(next)
				}
			}

			path = path[:len(path)-1]
			delete(onPath, cur)
		}

		visit(start)
	}

	return cycles, truncated
}
