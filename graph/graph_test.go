package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/fastvc/graph"
)

// TestNew_Errors verifies that malformed edge lists are rejected.
func TestNew_Errors(t *testing.T) {
	_, err := graph.New(-1, nil)
	require.ErrorIs(t, err, graph.ErrNegativeOrder)

	_, err = graph.New(3, []graph.Edge{{U: 1, V: 2}, {U: 2, V: 2}})
	require.ErrorIs(t, err, graph.ErrSelfLoop)

	_, err = graph.New(3, []graph.Edge{{U: 0, V: 2}})
	require.ErrorIs(t, err, graph.ErrVertexOutOfRange)

	_, err = graph.New(3, []graph.Edge{{U: 1, V: 4}})
	require.ErrorIs(t, err, graph.ErrVertexOutOfRange)
}

// TestNew_Triangle checks degrees and adjacency order on a triangle.
func TestNew_Triangle(t *testing.T) {
	g, err := graph.New(3, []graph.Edge{{U: 1, V: 2}, {U: 2, V: 3}, {U: 1, V: 3}})
	require.NoError(t, err)

	assert.Equal(t, 3, g.NumVertices())
	assert.Equal(t, 3, g.NumEdges())
	for v := 1; v <= 3; v++ {
		assert.Equal(t, 2, g.Degree(v), "degree of %d", v)
	}
	// Runs follow edge-input order.
	assert.Equal(t, []graph.Adj{{Edge: 0, Vertex: 2}, {Edge: 2, Vertex: 3}}, g.Neighbors(1))
	assert.Equal(t, []graph.Adj{{Edge: 0, Vertex: 1}, {Edge: 1, Vertex: 3}}, g.Neighbors(2))
	assert.Equal(t, []graph.Adj{{Edge: 1, Vertex: 2}, {Edge: 2, Vertex: 1}}, g.Neighbors(3))
	assert.Equal(t, 2, g.MaxDegree())
}

// TestNew_IsolatedAndCopy covers isolated vertices and input immutability.
func TestNew_IsolatedAndCopy(t *testing.T) {
	edges := []graph.Edge{{U: 1, V: 3}}
	g, err := graph.New(4, edges)
	require.NoError(t, err)

	edges[0] = graph.Edge{U: 2, V: 4}
	assert.Equal(t, graph.Edge{U: 1, V: 3}, g.Edge(0), "graph must own its edge list")
	assert.Equal(t, 0, g.Degree(2))
	assert.Equal(t, 0, g.Degree(4))
	assert.Empty(t, g.Neighbors(4))

	out := g.Edges()
	out[0].U = 4
	assert.Equal(t, 1, g.Edge(0).U, "Edges must return a copy")
}

// TestNew_Empty covers the zero-vertex graph.
func TestNew_Empty(t *testing.T) {
	g, err := graph.New(0, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, g.NumVertices())
	assert.Equal(t, 0, g.NumEdges())
	assert.Equal(t, 0, g.MaxDegree())
}

// TestEdge_Other covers the endpoint helper.
func TestEdge_Other(t *testing.T) {
	e := graph.Edge{U: 5, V: 9}
	assert.Equal(t, 9, e.Other(5))
	assert.Equal(t, 5, e.Other(9))
}

// TestFromGonum renumbers sparse gonum ids densely and deterministically.
func TestFromGonum(t *testing.T) {
	src := simple.NewUndirectedGraph()
	src.SetEdge(src.NewEdge(simple.Node(40), simple.Node(10)))
	src.SetEdge(src.NewEdge(simple.Node(10), simple.Node(20)))
	src.SetEdge(src.NewEdge(simple.Node(20), simple.Node(40)))
	src.AddNode(simple.Node(99))

	g, ids, err := graph.FromGonum(src)
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 10, 20, 40, 99}, ids)
	assert.Equal(t, 4, g.NumVertices())
	assert.Equal(t, []graph.Edge{{U: 1, V: 2}, {U: 1, V: 3}, {U: 2, V: 3}}, g.Edges())
	assert.Equal(t, 0, g.Degree(4))

	_, _, err = graph.FromGonum(nil)
	require.ErrorIs(t, err, graph.ErrGraphNil)
}
