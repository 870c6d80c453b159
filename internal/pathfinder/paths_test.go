package pathfinder

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/skilltreego/internal/catalog"
	"github.com/vk/skilltreego/internal/dag"
)

// chain builds the graph a -> b -> c -> d.
func chain(t *testing.T) *dag.Graph {
	t.Helper()
	cat := &catalog.Catalog{Skills: map[string]*catalog.Skill{
		"a": {ID: "a", Name: "A"},
		"b": {ID: "b", Name: "B", Prerequisites: []string{"a"}},
		"c": {ID: "c", Name: "C", Prerequisites: []string{"b"}},
		"d": {ID: "d", Name: "D", Prerequisites: []string{"c"}},
	}, Order: []string{"a", "b", "c", "d"}}
	return dag.Build(context.Background(), cat)
}

// diamond builds A -> {B, C} -> D.
func diamond(t *testing.T) *dag.Graph {
	t.Helper()
	cat := &catalog.Catalog{Skills: map[string]*catalog.Skill{
		"A": {ID: "A", Name: "A"},
		"B": {ID: "B", Name: "B", Prerequisites: []string{"A"}},
		"C": {ID: "C", Name: "C", Prerequisites: []string{"A"}},
		"D": {ID: "D", Name: "D", Prerequisites: []string{"B", "C"}},
	}, Order: []string{"A", "B", "C", "D"}}
	return dag.Build(context.Background(), cat)
}

func TestAllSimplePaths(t *testing.T) {
	ctx := context.Background()

	t.Run("diamond has exactly two paths", func(t *testing.T) {
		paths, truncated := AllSimplePaths(ctx, diamond(t), "A", "D", Options{})
		assert.False(t, truncated)
		assert.Equal(t, [][]string{
			{"A", "B", "D"},
			{"A", "C", "D"},
		}, paths)
	})

	t.Run("unknown endpoints yield empty result", func(t *testing.T) {
		g := chain(t)
		paths, truncated := AllSimplePaths(ctx, g, "ghost", "d", Options{})
		assert.Nil(t, paths)
		assert.False(t, truncated)

		paths, _ = AllSimplePaths(ctx, g, "a", "ghost", Options{})
		assert.Nil(t, paths)
	})

	t.Run("unreachable endpoints yield empty result", func(t *testing.T) {
		paths, truncated := AllSimplePaths(ctx, chain(t), "d", "a", Options{})
		assert.Empty(t, paths)
		assert.False(t, truncated)
	})

	t.Run("cap truncates enumeration", func(t *testing.T) {
		paths, truncated := AllSimplePaths(ctx, diamond(t), "A", "D", Options{MaxPaths: 1})
		assert.Len(t, paths, 1)
		assert.True(t, truncated)
	})
}

func TestImmediatePrerequisites(t *testing.T) {
	g := chain(t)
	assert.Equal(t, []string{"b"}, ImmediatePrerequisites(g, "c"), "direct predecessors only")
	assert.Empty(t, ImmediatePrerequisites(g, "a"))
	assert.Nil(t, ImmediatePrerequisites(g, "ghost"))
}

func TestAllPrerequisites(t *testing.T) {
	g := chain(t)
	assert.Equal(t, []string{"a", "b", "c"}, AllPrerequisites(g, "d"))
	assert.Empty(t, AllPrerequisites(g, "a"))
	assert.Nil(t, AllPrerequisites(g, "ghost"))

	require.Equal(t, []string{"A"}, AllPrerequisites(diamond(t), "B"))
	assert.Equal(t, []string{"A", "B", "C"}, AllPrerequisites(diamond(t), "D"))
}

func TestAllDependents(t *testing.T) {
	g := chain(t)
	assert.Equal(t, []string{"b", "c", "d"}, AllDependents(g, "a"))
	assert.Empty(t, AllDependents(g, "d"))
	assert.Nil(t, AllDependents(g, "ghost"))
}
