package emitter

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/skilltreego/internal/analyzer"
	"github.com/vk/skilltreego/internal/catalog"
	"github.com/vk/skilltreego/internal/dag"
)

// diamondFixture returns the analyzed A -> {B, C} -> D graph.
func diamondFixture(t *testing.T) (*analyzer.Result, *dag.Graph, *catalog.Catalog) {
	t.Helper()
	cat := &catalog.Catalog{Skills: map[string]*catalog.Skill{
		"A": {ID: "A", Name: "Basics", Level: "foundational", XP: 10},
		"B": {ID: "B", Name: "Branch B", Level: "core", XP: 20, Prerequisites: []string{"A"}},
		"C": {ID: "C", Name: "Branch C", Level: "core", XP: 20, Prerequisites: []string{"A"}},
		"D": {ID: "D", Name: "Capstone", Level: "expert", XP: 50, Prerequisites: []string{"B", "C"}},
	}, Order: []string{"A", "B", "C", "D"}}
	ctx := context.Background()
	g := dag.Build(ctx, cat)
	return analyzer.Analyze(ctx, g, cat), g, cat
}

func TestParseLayoutMode(t *testing.T) {
	mode, err := ParseLayoutMode("hierarchical")
	require.NoError(t, err)
	assert.Equal(t, LayoutHierarchical, mode)

	mode, err = ParseLayoutMode("force")
	require.NoError(t, err)
	assert.Equal(t, LayoutForce, mode)

	_, err = ParseLayoutMode("circular")
	assert.ErrorContains(t, err, "invalid layout")
}

func TestHierarchicalLayout(t *testing.T) {
	result, g, _ := diamondFixture(t)
	positions := Layout(result, g, LayoutHierarchical)
	require.Len(t, positions, 4)

	a := positions["A"]
	assert.Equal(t, 0, a.Layer)
	assert.Equal(t, 0.0, a.X)
	assert.Empty(t, a.Predecessors)
	assert.Equal(t, []string{"B", "C"}, a.Successors)

	// B and C share layer 1; x offsets count siblings in id order.
	b, c := positions["B"], positions["C"]
	assert.Equal(t, 1, b.Layer)
	assert.Equal(t, 1, c.Layer)
	assert.Equal(t, 0.0, b.X)
	assert.Equal(t, 1.0, c.X)

	d := positions["D"]
	assert.Equal(t, 2, d.Layer)
	assert.Equal(t, []string{"B", "C"}, d.Predecessors)
	assert.Empty(t, d.Successors)
}

func TestForceLayoutIsDeterministic(t *testing.T) {
	result, g, _ := diamondFixture(t)

	first := Layout(result, g, LayoutForce)
	second := Layout(result, g, LayoutForce)
	assert.Equal(t, first, second)

	// Layer still carries the topological depth in force mode.
	assert.Equal(t, 2, first["D"].Layer)

	// Distinct nodes land on distinct positions.
	seen := make(map[[2]float64]string)
	for id, pos := range first {
		key := [2]float64{pos.X, pos.Y}
		prev, clash := seen[key]
		assert.False(t, clash, "nodes %s and %s share a position", prev, id)
		seen[key] = id
	}
}

func TestWriteLayout(t *testing.T) {
	result, g, _ := diamondFixture(t)
	positions := Layout(result, g, LayoutHierarchical)

	var buf bytes.Buffer
	require.NoError(t, WriteLayout(&buf, LayoutHierarchical, positions))

	var doc struct {
		Layout string                  `json:"layout"`
		Nodes  map[string]NodePosition `json:"nodes"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, "hierarchical", doc.Layout)
	require.Len(t, doc.Nodes, 4)
	assert.Equal(t, []string{"B", "C"}, doc.Nodes["D"].Predecessors)

	// Stable output across runs.
	var again bytes.Buffer
	require.NoError(t, WriteLayout(&again, LayoutHierarchical, Layout(result, g, LayoutHierarchical)))
	assert.Equal(t, buf.String(), again.String())
}
