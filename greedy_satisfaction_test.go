package payback_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/payback"
)

func TestGreedySatisfaction_Empty(t *testing.T) {
	b, err := payback.NewBalancesFromSequence(nil)
	require.NoError(t, err)

	s, err := payback.GreedySatisfaction(b)
	require.NoError(t, err)
	require.Empty(t, s.Edges)
}

func TestGreedySatisfaction_ValidatesAndMinimizesTotalWeight(t *testing.T) {
	b, err := payback.NewBalancesFromMap(map[string]int64{
		"A": -5, "B": -3, "C": 4, "D": 4,
	})
	require.NoError(t, err)

	s, err := payback.GreedySatisfaction(b)
	require.NoError(t, err)
	require.NoError(t, s.Validate(b))
	require.LessOrEqual(t, len(s.Edges), b.Len()-1)

	var wantTotal int64
	for i := 0; i < b.Len(); i++ {
		if v := b.Balance(i); v > 0 {
			wantTotal += v
		}
	}
	require.Equal(t, wantTotal, s.TotalWeight())
}

func TestGreedySatisfaction_NoSelfLoops(t *testing.T) {
	b, err := payback.NewBalancesFromMap(map[string]int64{
		"A": -10, "B": -2, "C": 6, "D": 6,
	})
	require.NoError(t, err)

	s, err := payback.GreedySatisfaction(b)
	require.NoError(t, err)
	for _, e := range s.Edges {
		require.NotEqual(t, e.From, e.To)
	}
}

func TestGreedySatisfaction_TieBreaksByFirstOccurrence(t *testing.T) {
	b, err := payback.NewBalances([]payback.BalancePair{
		{ID: "A", Balance: -5},
		{ID: "B", Balance: -5},
		{ID: "C", Balance: 5},
		{ID: "D", Balance: 5},
	})
	require.NoError(t, err)

	s, err := payback.GreedySatisfaction(b)
	require.NoError(t, err)
	require.NotEmpty(t, s.Edges)
	require.Equal(t, "A", s.Edges[0].From)
	require.Equal(t, "C", s.Edges[0].To)
}

func TestGreedySatisfaction_SingleEdge(t *testing.T) {
	b, err := payback.NewBalancesFromMap(map[string]int64{"A": -7, "B": 7})
	require.NoError(t, err)

	s, err := payback.GreedySatisfaction(b)
	require.NoError(t, err)
	require.Equal(t, []payback.Edge{{From: "A", To: "B", Weight: 7}}, s.Edges)
}
