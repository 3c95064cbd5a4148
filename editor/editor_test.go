// SPDX-License-Identifier: MIT
//
// File: editor_test.go
// Role: tests for mode transitions, click semantics and weight parsing.

package editor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathboard/core"
	"github.com/katalvlaran/pathboard/editor"
)

func TestController_IdleIgnoresClicks(t *testing.T) {
	g := core.NewGraph()
	c := editor.New(g)

	out, err := c.Click(10, 10)
	require.NoError(t, err)
	require.Equal(t, editor.Ignored, out.Kind)
	require.Zero(t, g.NodeCount())
}

func TestController_AddingNodeRepeats(t *testing.T) {
	g := core.NewGraph()
	c := editor.New(g)
	c.SetMode(editor.AddingNode)

	for i := 0; i < 3; i++ {
		out, err := c.Click(float64(i)*100, 50)
		require.NoError(t, err)
		require.Equal(t, editor.NodeAdded, out.Kind)
		require.Equal(t, i, out.Node.ID)
	}
	require.Equal(t, editor.AddingNode, c.Mode())
	require.Equal(t, 3, g.NodeCount())
}

func TestController_AddingEdgeSelectsPair(t *testing.T) {
	g := core.NewGraph()
	g.AddNode(0, 0)
	g.AddNode(100, 0)
	g.AddNode(200, 0)

	c := editor.New(g)
	c.SetMode(editor.AddingEdge)
	c.SetWeight(7)

	out, err := c.Click(500, 500) // empty canvas
	require.NoError(t, err)
	require.Equal(t, editor.Ignored, out.Kind)

	out, err = c.Click(101, 2)
	require.NoError(t, err)
	require.Equal(t, editor.NodeSelected, out.Kind)
	require.Equal(t, []int{1}, c.Pending())

	out, err = c.Click(3, -4)
	require.NoError(t, err)
	require.Equal(t, editor.EdgeAdded, out.Kind)
	require.Equal(t, core.Edge{From: 1, To: 0, Weight: 7}, *out.Edge)
	require.Empty(t, c.Pending())
	require.Equal(t, editor.AddingEdge, c.Mode())
}

func TestController_DuplicateEdgeClearsBuffer(t *testing.T) {
	g := core.NewGraph()
	g.AddNode(0, 0)
	g.AddNode(100, 0)
	_, err := g.AddEdge(0, 1, 4)
	require.NoError(t, err)

	c := editor.New(g)
	c.SetMode(editor.AddingEdge)
	_, _ = c.Click(100, 0)
	out, err := c.Click(0, 0)
	require.ErrorIs(t, err, core.ErrDuplicateEdge)
	require.Equal(t, editor.Ignored, out.Kind)
	require.Empty(t, c.Pending())

	e, _ := g.EdgeBetween(0, 1)
	require.Equal(t, int64(4), e.Weight)
}

func TestController_SameNodeTwice(t *testing.T) {
	g := core.NewGraph()
	g.AddNode(0, 0)
	c := editor.New(g)
	c.SetMode(editor.AddingEdge)

	_, _ = c.Click(0, 0)
	_, err := c.Click(1, 1)
	require.ErrorIs(t, err, core.ErrLoopNotAllowed)
	require.Empty(t, c.Pending())
	require.Zero(t, g.EdgeCount())
}

func TestController_SetModeClearsPending(t *testing.T) {
	g := core.NewGraph()
	g.AddNode(0, 0)
	c := editor.New(g)
	c.SetMode(editor.AddingEdge)
	_, _ = c.Click(0, 0)
	require.Len(t, c.Pending(), 1)

	c.SetMode(editor.AddingEdge)
	require.Empty(t, c.Pending())
}

func TestController_Reset(t *testing.T) {
	g := core.NewGraph()
	g.AddNode(0, 0)
	c := editor.New(g)
	c.SetMode(editor.AddingEdge)
	_, _ = c.Click(0, 0)

	c.Reset()
	require.Equal(t, editor.Idle, c.Mode())
	require.Empty(t, c.Pending())
}

func TestController_SetWeightNonPositive(t *testing.T) {
	c := editor.New(core.NewGraph())
	c.SetWeight(0)
	require.Equal(t, editor.DefaultWeight, c.Weight())
	c.SetWeight(-4)
	require.Equal(t, editor.DefaultWeight, c.Weight())
	c.SetWeight(9)
	require.Equal(t, int64(9), c.Weight())
}

func TestParseWeight(t *testing.T) {
	cases := map[string]int64{
		"":                     1,
		"abc":                  1,
		"0":                    1,
		"-5":                   1,
		"5":                    5,
		" 12 ":                 12,
		"12abc":                12,
		"+3":                   3,
		"3.9":                  3,
		"007":                  7,
		"1e3":                  1,
		"99999999999999999999": 1,
	}
	for raw, want := range cases {
		assert.Equal(t, want, editor.ParseWeight(raw), "ParseWeight(%q)", raw)
	}
}

func TestParseMode(t *testing.T) {
	m, err := editor.ParseMode("add-node")
	require.NoError(t, err)
	require.Equal(t, editor.AddingNode, m)

	m, err = editor.ParseMode("ADD_EDGE")
	require.NoError(t, err)
	require.Equal(t, editor.AddingEdge, m)

	_, err = editor.ParseMode("delete")
	require.ErrorIs(t, err, editor.ErrUnknownMode)

	var mm editor.Mode
	require.NoError(t, mm.UnmarshalText([]byte("edge")))
	require.Equal(t, editor.AddingEdge, mm)
}
