// SPDX-License-Identifier: MIT
//
// File: report_test.go
// Role: tests for golden text reports.

package dijkstra_test

import (
	"encoding/json"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathboard/dijkstra"
)

func TestResult_WriteText_Golden(t *testing.T) {
	g := buildGraph(t, 5,
		edgeSpec{0, 1, 4}, edgeSpec{1, 2, 1}, edgeSpec{0, 2, 10}, edgeSpec{2, 3, 7},
	)
	res, err := dijkstra.Compute(g, 0)
	require.NoError(t, err)

	gd := goldie.New(t)
	gd.Assert(t, "report_mixed", []byte(res.String()))
}

func TestResult_WriteText_SingleUnreachable_Golden(t *testing.T) {
	res, err := dijkstra.Compute(buildGraph(t, 2), 1)
	require.NoError(t, err)

	gd := goldie.New(t)
	gd.Assert(t, "report_disjoint", []byte(res.String()))
}

func TestEntry_MarshalJSON(t *testing.T) {
	res, err := dijkstra.Compute(buildGraph(t, 2, edgeSpec{0, 1, 3}), 0)
	require.NoError(t, err)
	raw, err := json.Marshal(res)
	require.NoError(t, err)
	require.JSONEq(t, `{"start":0,"entries":[
		{"node":0,"distance":0,"reachable":true,"path":[0]},
		{"node":1,"distance":3,"reachable":true,"path":[0,1]}
	]}`, string(raw))

	res, err = dijkstra.Compute(buildGraph(t, 2), 0)
	require.NoError(t, err)
	raw, err = json.Marshal(res.Entries[1])
	require.NoError(t, err)
	require.JSONEq(t, `{"node":1,"distance":null,"reachable":false}`, string(raw))
}

func TestFormatPath(t *testing.T) {
	require.Equal(t, "0 → 4 → 2", dijkstra.FormatPath([]int{0, 4, 2}))
	require.Equal(t, "", dijkstra.FormatPath(nil))
}
