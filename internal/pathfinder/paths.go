package pathfinder

import (
	"context"
	"sort"

	"github.com/vk/skilltreego/internal/ctxlog"
	"github.com/vk/skilltreego/internal/dag"
)

// DefaultMaxPaths caps simple-path enumeration when Options leaves MaxPaths
// unset. Path counts grow exponentially on dense graphs.
const DefaultMaxPaths = 1000

// Options bounds a path enumeration.
type Options struct {
	// MaxPaths caps the number of paths collected; 0 means DefaultMaxPaths.
	MaxPaths int
}

// AllSimplePaths enumerates every simple path (no repeated node) from start
// to end, following prerequisite edges forward. Paths come back sorted
// lexicographically. The second return value is true when enumeration
// stopped at the cap. Unknown or unreachable endpoints yield a nil slice,
// not an error.
func AllSimplePaths(ctx context.Context, g *dag.Graph, start, end string, opts Options) ([][]string, bool) {
	logger := ctxlog.FromContext(ctx)

	if !g.Has(start) || !g.Has(end) {
		logger.Debug("AllSimplePaths: Endpoint not in graph.", "start", start, "end", end)
		return nil, false
	}

	max := opts.MaxPaths
	if max <= 0 {
		max = DefaultMaxPaths
	}

	var paths [][]string
	truncated := false
	path := []string{start}
	onPath := map[string]bool{start: true}

	var visit func(cur string)
	visit = func(cur string) {
		if truncated {
			return
		}
		if cur == end {
			if len(paths) >= max {
				truncated = true
				return
			}
			found := make([]string, len(path))
			copy(found, path)
			paths = append(paths, found)
			return
		}
		successors, _ := g.Dependents(cur)
		for _, next := range successors {
			if onPath[next] {
				continue
			}
			path = append(path, next)
			onPath[next] = true
			visit(next)
			path = path[:len(path)-1]
			delete(onPath, next)
		}
	}
	visit(start)

	sort.Slice(paths, func(i, j int) bool { return lessPath(paths[i], paths[j]) })
	logger.Debug("AllSimplePaths: Enumeration complete.",
		"start", start, "end", end, "paths", len(paths), "truncated", truncated)
	return paths, truncated
}

// ImmediatePrerequisites returns the direct predecessors of a skill, sorted
// ascending. Unknown ids yield an empty set.
func ImmediatePrerequisites(g *dag.Graph, id string) []string {
	deps, ok := g.Dependencies(id)
	if !ok {
		return nil
	}
	return deps
}

// AllPrerequisites returns the full transitive closure of a skill's
// ancestors: every skill that must be completed, directly or indirectly,
// before it. Computed by reverse traversal from the skill. Sorted ascending;
// unknown ids yield an empty set.
func AllPrerequisites(g *dag.Graph, id string) []string {
	return closure(g, id, func(cur string) []string {
		deps, _ := g.Dependencies(cur)
		return deps
	})
}

// AllDependents returns the full transitive closure of a skill's
// descendants: every skill that directly or indirectly requires it. Sorted
// ascending; unknown ids yield an empty set.
func AllDependents(g *dag.Graph, id string) []string {
	return closure(g, id, func(cur string) []string {
		dependents, _ := g.Dependents(cur)
		return dependents
	})
}

// closure walks the graph from id following neighbors and collects every
// node reached, excluding id itself.
func closure(g *dag.Graph, id string, neighbors func(string) []string) []string {
	if !g.Has(id) {
		return nil
	}

	seen := map[string]bool{id: true}
	queue := []string{id}
	var reached []string

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, next := range neighbors(cur) {
			if seen[next] {
				continue
			}
			seen[next] = true
			reached = append(reached, next)
			queue = append(queue, next)
		}
	}

	sort.Strings(reached)
	return reached
}

// lessPath orders two paths lexicographically, shorter prefix first.
func lessPath(a, b []string) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}
