package dag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	g := New()
	require.NotNil(t, g)
	assert.NotNil(t, g.nodes)
	assert.Empty(t, g.nodes)
}

func TestAddNode(t *testing.T) {
	g := New()

	g.AddNode("a")
	assert.Equal(t, 1, g.Len())
	assert.True(t, g.Has("a"))

	g.AddNode("a") // Test idempotency
	assert.Equal(t, 1, g.Len())

	g.AddNode("b")
	assert.Equal(t, 2, g.Len())
	assert.True(t, g.Has("b"))
	assert.False(t, g.Has("c"))
}

func TestAddEdge(t *testing.T) {
	t.Run("success case", func(t *testing.T) {
		g := New()
		g.AddNode("a")
		g.AddNode("b")

		err := g.AddEdge("a", "b") // b depends on a
		require.NoError(t, err)

		deps, ok := g.Dependencies("b")
		require.True(t, ok)
		assert.Equal(t, []string{"a"}, deps)

		dependents, ok := g.Dependents("a")
		require.True(t, ok)
		assert.Equal(t, []string{"b"}, dependents)

		assert.Equal(t, 1, g.EdgeCount())
	})

	t.Run("error cases", func(t *testing.T) {
		g := New()
		g.AddNode("a")
		g.AddNode("b")

		err := g.AddEdge("dne", "a")
		assert.ErrorContains(t, err, "source node not found")

		err = g.AddEdge("a", "dne")
		assert.ErrorContains(t, err, "destination node not found")

		err = g.AddEdge("a", "a")
		assert.ErrorContains(t, err, "self-referential edge")
	})

	t.Run("duplicate edge is idempotent", func(t *testing.T) {
		g := New()
		g.AddNode("a")
		g.AddNode("b")
		require.NoError(t, g.AddEdge("a", "b"))
		require.NoError(t, g.AddEdge("a", "b"))
		assert.Equal(t, 1, g.EdgeCount())
	})
}

func TestDegreesAndSets(t *testing.T) {
	// a -> b -> d, a -> c -> d
	g := New()
	for _, id := range []string{"a", "b", "c", "d"} {
		g.AddNode(id)
	}
	require.NoError(t, g.AddEdge("a", "b"))
	require.NoError(t, g.AddEdge("a", "c"))
	require.NoError(t, g.AddEdge("b", "d"))
	require.NoError(t, g.AddEdge("c", "d"))

	assert.Equal(t, []string{"a"}, g.Roots())
	assert.Equal(t, []string{"d"}, g.Leaves())
	assert.Equal(t, 0, g.InDegree("a"))
	assert.Equal(t, 2, g.InDegree("d"))
	assert.Equal(t, 2, g.OutDegree("a"))
	assert.Equal(t, 0, g.OutDegree("d"))
	assert.Equal(t, -1, g.InDegree("dne"))
	assert.Equal(t, -1, g.OutDegree("dne"))
	assert.Equal(t, []string{"a", "b", "c", "d"}, g.IDs())

	deps, ok := g.Dependencies("d")
	require.True(t, ok)
	assert.Equal(t, []string{"b", "c"}, deps)

	_, ok = g.Dependencies("dne")
	assert.False(t, ok)
}

func TestTopoOrder(t *testing.T) {
	t.Run("empty graph", func(t *testing.T) {
		g := New()
		order, acyclic := g.TopoOrder()
		assert.True(t, acyclic)
		assert.Empty(t, order)
	})

	t.Run("valid dag yields deterministic order", func(t *testing.T) {
		g := New()
		for _, id := range []string{"d", "c", "b", "a"} {
			g.AddNode(id)
		}
		require.NoError(t, g.AddEdge("a", "b"))
		require.NoError(t, g.AddEdge("a", "c"))
		require.NoError(t, g.AddEdge("b", "d"))
		require.NoError(t, g.AddEdge("c", "d"))

		order, acyclic := g.TopoOrder()
		assert.True(t, acyclic)
		assert.Equal(t, []string{"a", "b", "c", "d"}, order)
	})

	t.Run("cycle is flagged", func(t *testing.T) {
		g := New()
		g.AddNode("a")
		g.AddNode("b")
		g.AddNode("c")
		require.NoError(t, g.AddEdge("a", "b"))
		require.NoError(t, g.AddEdge("b", "c"))
		require.NoError(t, g.AddEdge("c", "b"))

		order, acyclic := g.TopoOrder()
		assert.False(t, acyclic)
		assert.Equal(t, []string{"a"}, order)
	})
}
