// SPDX-License-Identifier: MIT
package digraph_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucasccalmon/TrabalhoGrafos/digraph"
)

func TestAddArcAndRead(t *testing.T) {
	g := digraph.New(3)
	require.NoError(t, g.AddArc(0, 1, 2.5))
	require.NoError(t, g.AddArc(0, 2, 0))
	require.NoError(t, g.AddArc(0, 1, 1)) // parallel arc kept
	require.NoError(t, g.AddArc(2, 2, 4)) // self-loop kept

	assert.Equal(t, 3, g.Order())
	assert.Equal(t, 4, g.Size())
	assert.Equal(t, []digraph.Arc{{To: 1, Weight: 2.5}, {To: 2, Weight: 0}, {To: 1, Weight: 1}}, g.Arcs(0))
	assert.Nil(t, g.Arcs(1))
	assert.Nil(t, g.Arcs(7))
	require.NoError(t, g.Validate())
}

func TestAddArcRejects(t *testing.T) {
	g := digraph.New(2)
	cases := []struct {
		name     string
		from, to int
		w        float64
		want     error
	}{
		{"from out of range", -1, 0, 1, digraph.ErrVertexOutOfRange},
		{"to out of range", 0, 2, 1, digraph.ErrVertexOutOfRange},
		{"negative", 0, 1, -0.5, digraph.ErrNegativeWeight},
		{"nan", 0, 1, math.NaN(), digraph.ErrInvalidWeight},
		{"inf", 0, 1, math.Inf(1), digraph.ErrInvalidWeight},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.ErrorIs(t, g.AddArc(tc.from, tc.to, tc.w), tc.want)
		})
	}
	assert.Zero(t, g.Size())
}

func TestAddVertices(t *testing.T) {
	g := digraph.New(-4)
	assert.Zero(t, g.Order())
	assert.Equal(t, 0, g.AddVertex())
	assert.Equal(t, 1, g.AddVertices(3))
	assert.Equal(t, 4, g.Order())
	assert.True(t, g.HasVertex(3))
	assert.False(t, g.HasVertex(4))
}

func TestFromAdjacency(t *testing.T) {
	g, err := digraph.FromAdjacency([][]digraph.Arc{
		{{To: 1, Weight: 1}},
		{{To: 0, Weight: 2}},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, g.Size())

	_, err = digraph.FromAdjacency([][]digraph.Arc{{{To: 0, Weight: -1}}})
	require.ErrorIs(t, err, digraph.ErrNegativeWeight)

	_, err = digraph.FromAdjacency([][]digraph.Arc{{{To: 3, Weight: 1}}})
	require.ErrorIs(t, err, digraph.ErrVertexOutOfRange)
}
