package payback_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/payback"
)

func TestPrintSolution_Format(t *testing.T) {
	b, err := payback.NewBalancesFromMap(map[string]int64{"A": -3, "B": 3})
	require.NoError(t, err)
	s := payback.Solution{Edges: []payback.Edge{{From: "A", To: "B", Weight: 3}}}

	var sb strings.Builder
	require.NoError(t, payback.PrintSolution(&sb, b, s))
	require.Equal(t, "\"A\" to \"B\": 3.0\n", sb.String())
}

func TestPrintSolution_Empty(t *testing.T) {
	b, err := payback.NewBalancesFromSequence(nil)
	require.NoError(t, err)

	var sb strings.Builder
	require.NoError(t, payback.PrintSolution(&sb, b, payback.Solution{}))
	require.Empty(t, sb.String())
}

func TestSolutionToDOT_ContainsEveryEdge(t *testing.T) {
	b, err := payback.NewBalancesFromMap(map[string]int64{"A": -3, "B": -1, "C": 4})
	require.NoError(t, err)
	s := payback.Solution{Edges: []payback.Edge{
		{From: "A", To: "C", Weight: 3},
		{From: "B", To: "C", Weight: 1},
	}}

	dot := payback.SolutionToDOT(b, s)
	require.True(t, strings.HasPrefix(dot, "digraph {\n"))
	require.True(t, strings.HasSuffix(dot, "}\n"))
	require.Equal(t, 2, strings.Count(dot, "->"))
	require.Contains(t, dot, `"A" -> "C" [label="3"];`)
	require.Contains(t, dot, `"B" -> "C" [label="1"];`)
}

func TestSolutionToDOT_Empty(t *testing.T) {
	b, err := payback.NewBalancesFromSequence(nil)
	require.NoError(t, err)
	require.Equal(t, "digraph {\n}\n", payback.SolutionToDOT(b, payback.Solution{}))
}
