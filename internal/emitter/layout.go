package emitter

import (
	"encoding/json"
	"fmt"
	"io"
	"math"

	"github.com/vk/skilltreego/internal/analyzer"
	"github.com/vk/skilltreego/internal/dag"
)

// LayoutMode selects the placement strategy for graph export.
type LayoutMode string

const (
	// LayoutHierarchical places nodes on their topological layer, with the
	// x offset counting siblings already placed at the same layer.
	LayoutHierarchical LayoutMode = "hierarchical"
	// LayoutForce places nodes with a deterministic force-directed
	// simulation seeded on a circle in id order.
	LayoutForce LayoutMode = "force"
)

// ParseLayoutMode converts a CLI spelling into a LayoutMode.
func ParseLayoutMode(s string) (LayoutMode, error) {
	switch LayoutMode(s) {
	case LayoutHierarchical:
		return LayoutHierarchical, nil
	case LayoutForce:
		return LayoutForce, nil
	default:
		return "", fmt.Errorf("invalid layout %q: must be 'hierarchical' or 'force'", s)
	}
}

// NodePosition is the exported placement of one skill.
type NodePosition struct {
	Layer        int      `json:"layer"`
	X            float64  `json:"x"`
	Y            float64  `json:"y"`
	Predecessors []string `json:"predecessors"`
	Successors   []string `json:"successors"`
}

// forceIterations fixes the simulation length so repeated runs are
// byte-identical.
const forceIterations = 200

// Layout computes a position for every node of the graph. The Layer field
// always carries the topological depth from the analysis result, whichever
// placement mode is chosen.
func Layout(result *analyzer.Result, g *dag.Graph, mode LayoutMode) map[string]NodePosition {
	positions := make(map[string]NodePosition, g.Len())

	var place map[string][2]float64
	switch mode {
	case LayoutForce:
		place = forcePlacement(g)
	default:
		place = hierarchicalPlacement(result, g)
	}

	for _, id := range g.IDs() {
		preds, _ := g.Dependencies(id)
		succs, _ := g.Dependents(id)
		if preds == nil {
			preds = []string{}
		}
		if succs == nil {
			succs = []string{}
		}
		xy := place[id]
		positions[id] = NodePosition{
			Layer:        result.Layers[id],
			X:            round2(xy[0]),
			Y:            round2(xy[1]),
			Predecessors: preds,
			Successors:   succs,
		}
	}
	return positions
}

// hierarchicalPlacement assigns y from the topological layer and x by
// counting siblings already placed at that layer, in id order. Nodes inside
// cycles (layer -1) line up on their own row above the roots.
func hierarchicalPlacement(result *analyzer.Result, g *dag.Graph) map[string][2]float64 {
	place := make(map[string][2]float64, g.Len())
	placedAtLayer := make(map[int]int)

	for _, id := range g.IDs() {
		layer := result.Layers[id]
		x := placedAtLayer[layer]
		placedAtLayer[layer]++
		place[id] = [2]float64{float64(x), float64(layer)}
	}
	return place
}

// forcePlacement runs a small spring-embedder: repulsion between every pair,
// attraction along edges, a fixed iteration count, and no randomness. Nodes
// start on a circle in id order so the result is reproducible.
func forcePlacement(g *dag.Graph) map[string][2]float64 {
	ids := g.IDs()
	n := len(ids)
	place := make(map[string][2]float64, n)
	if n == 0 {
		return place
	}

	radius := float64(n)
	pos := make([][2]float64, n)
	for i := range ids {
		angle := 2 * math.Pi * float64(i) / float64(n)
		pos[i] = [2]float64{radius * math.Cos(angle), radius * math.Sin(angle)}
	}

	index := make(map[string]int, n)
	for i, id := range ids {
		index[id] = i
	}

	// Ideal edge length for the spring model.
	k := math.Sqrt((radius * radius) / float64(n))
	disp := make([][2]float64, n)

	for iter := 0; iter < forceIterations; iter++ {
		for i := range disp {
			disp[i] = [2]float64{}
		}

		// Repulsion between all pairs.
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				dx, dy := pos[i][0]-pos[j][0], pos[i][1]-pos[j][1]
				dist := math.Hypot(dx, dy)
				if dist < 1e-9 {
					dist = 1e-9
				}
				f := (k * k) / dist
				ux, uy := dx/dist, dy/dist
				disp[i][0] += ux * f
				disp[i][1] += uy * f
				disp[j][0] -= ux * f
				disp[j][1] -= uy * f
			}
		}

		// Attraction along edges.
		for i, id := range ids {
			succs, _ := g.Dependents(id)
			for _, succ := range succs {
				j := index[succ]
				dx, dy := pos[i][0]-pos[j][0], pos[i][1]-pos[j][1]
				dist := math.Hypot(dx, dy)
				if dist < 1e-9 {
					continue
				}
				f := (dist * dist) / k
				ux, uy := dx/dist, dy/dist
				disp[i][0] -= ux * f
				disp[i][1] -= uy * f
				disp[j][0] += ux * f
				disp[j][1] += uy * f
			}
		}

		// Cooling schedule limits movement as iterations progress.
		temp := radius / 10 * (1 - float64(iter)/float64(forceIterations))
		for i := range pos {
			dist := math.Hypot(disp[i][0], disp[i][1])
			if dist < 1e-9 {
				continue
			}
			step := math.Min(dist, temp)
			pos[i][0] += disp[i][0] / dist * step
			pos[i][1] += disp[i][1] / dist * step
		}
	}

	for i, id := range ids {
		place[id] = pos[i]
	}
	return place
}

// layoutDocument is the on-disk shape of a layout export.
type layoutDocument struct {
	Layout LayoutMode              `json:"layout"`
	Nodes  map[string]NodePosition `json:"nodes"`
}

// WriteLayout serializes the layout as indented JSON. Map keys marshal in
// sorted order, so the output is stable across runs.
func WriteLayout(w io.Writer, mode LayoutMode, positions map[string]NodePosition) error {
	doc := layoutDocument{Layout: mode, Nodes: positions}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

// round2 rounds to two decimals to keep the export readable and stable.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
