package dag

import (
	"fmt"
	"sort"
)

// New creates and returns an initialized, empty Graph.
func New() *Graph {
	return &Graph{
		nodes: make(map[string]*node),
	}
}

// AddNode adds a new node with the given ID to the graph. If a node with
// the same ID already exists, the function does nothing.
func (g *Graph) AddNode(id string) {
	g.mutex.Lock()
	defer g.mutex.Unlock()

	if _, ok := g.nodes[id]; ok {
		return
	}

	g.nodes[id] = &node{
		id:         id,
		deps:       make(map[string]*node),
		dependents: make(map[string]*node),
	}
}

// AddEdge creates a directed edge from the `fromID` node to the `toID` node,
// meaning `toID` has a prerequisite on `fromID`. An error is returned if
// either node does not exist or if the edge would create a self-reference.
func (g *Graph) AddEdge(fromID, toID string) error {
	if fromID == toID {
		return fmt.Errorf("self-referential edge not allowed: %s -> %s", fromID, fromID)
	}

	g.mutex.Lock()
	defer g.mutex.Unlock()

	fromNode, ok := g.nodes[fromID]
	if !ok {
		return fmt.Errorf("source node not found: %s", fromID)
	}

	toNode, ok := g.nodes[toID]
	if !ok {
		return fmt.Errorf("destination node not found: %s", toID)
	}

	toNode.deps[fromID] = fromNode
	fromNode.dependents[toID] = toNode

	return nil
}

// Has reports whether a node with the given ID exists.
func (g *Graph) Has(id string) bool {
	g.mutex.RLock()
	defer g.mutex.RUnlock()

	_, ok := g.nodes[id]
	return ok
}

// Len returns the number of nodes in the graph.
func (g *Graph) Len() int {
	g.mutex.RLock()
	defer g.mutex.RUnlock()

	return len(g.nodes)
}

// EdgeCount returns the total number of directed edges in the graph.
func (g *Graph) EdgeCount() int {
	g.mutex.RLock()
	defer g.mutex.RUnlock()

	count := 0
	for _, n := range g.nodes {
		count += len(n.dependents)
	}
	return count
}

// IDs returns all node IDs in ascending order.
func (g *Graph) IDs() []string {
	g.mutex.RLock()
	defer g.mutex.RUnlock()

	ids := make([]string, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Dependencies returns the IDs of the direct predecessors of the given node,
// in ascending order. The second return value is false if the node does not
// exist.
func (g *Graph) Dependencies(id string) ([]string, bool) {
	g.mutex.RLock()
	defer g.mutex.RUnlock()

	n, ok := g.nodes[id]
	if !ok {
		return nil, false
	}
	return sortedKeys(n.deps), true
}

// Dependents returns the IDs of the direct successors of the given node, in
// ascending order. The second return value is false if the node does not
// exist.
func (g *Graph) Dependents(id string) ([]string, bool) {
	g.mutex.RLock()
	defer g.mutex.RUnlock()

	n, ok := g.nodes[id]
	if !ok {
		return nil, false
	}
	return sortedKeys(n.dependents), true
}

// InDegree returns the number of direct predecessors of the given node, or
// -1 if the node does not exist.
func (g *Graph) InDegree(id string) int {
	g.mutex.RLock()
	defer g.mutex.RUnlock()

	n, ok := g.nodes[id]
	if !ok {
		return -1
	}
	return len(n.deps)
}

// OutDegree returns the number of direct successors of the given node, or
// -1 if the node does not exist.
func (g *Graph) OutDegree(id string) int {
	g.mutex.RLock()
	defer g.mutex.RUnlock()

	n, ok := g.nodes[id]
	if !ok {
		return -1
	}
	return len(n.dependents)
}

// Roots returns the IDs of all nodes with no predecessors, in ascending
// order.
func (g *Graph) Roots() []string {
	g.mutex.RLock()
	defer g.mutex.RUnlock()

	var roots []string
	for id, n := range g.nodes {
		if len(n.deps) == 0 {
			roots = append(roots, id)
		}
	}
	sort.Strings(roots)
	return roots
}

// Leaves returns the IDs of all nodes with no successors, in ascending
// order.
func (g *Graph) Leaves() []string {
	g.mutex.RLock()
	defer g.mutex.RUnlock()

	var leaves []string
	for id, n := range g.nodes {
		if len(n.dependents) == 0 {
			leaves = append(leaves, id)
		}
	}
	sort.Strings(leaves)
	return leaves
}

// TopoOrder returns the node IDs in a topological order computed with Kahn's
// algorithm. Nodes that become ready in the same wave are emitted in
// ascending ID order, so the result is deterministic. The second return
// value is false when the graph contains a cycle; in that case only the
// nodes outside the cyclic portion appear in the returned slice.
func (g *Graph) TopoOrder() ([]string, bool) {
	g.mutex.RLock()
	defer g.mutex.RUnlock()

	inDeg := make(map[string]int, len(g.nodes))
	for id, n := range g.nodes {
		inDeg[id] = len(n.deps)
	}

	var queue []string
	for id, deg := range inDeg {
		if deg == 0 {
			queue = append(queue, id)
		}
	}
	sort.Strings(queue)

	order := make([]string, 0, len(g.nodes))
	for len(queue) > 0 {
		var next []string
		for _, id := range queue {
			order = append(order, id)
			for depID := range g.nodes[id].dependents {
				inDeg[depID]--
				if inDeg[depID] == 0 {
					next = append(next, depID)
				}
			}
		}
		sort.Strings(next)
		queue = next
	}

	return order, len(order) == len(g.nodes)
}

// sortedKeys returns the keys of a node set in ascending order. Callers must
// hold the graph lock.
func sortedKeys(set map[string]*node) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
