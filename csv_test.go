package payback_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/payback"
)

func TestDecodeCSV_NodeSchema(t *testing.T) {
	nodes, edges, err := payback.DecodeCSV(strings.NewReader("A,-2\nB,-1\nC,1\nD,2\n"))
	require.NoError(t, err)
	require.Empty(t, edges)
	require.Equal(t, []payback.NodeRecord{
		{Name: "A", Weight: -2},
		{Name: "B", Weight: -1},
		{Name: "C", Weight: 1},
		{Name: "D", Weight: 2},
	}, nodes)
}

func TestDecodeCSV_EdgeSchema(t *testing.T) {
	nodes, edges, err := payback.DecodeCSV(strings.NewReader("A,C,1\nA,D,1\nB,D,1\n"))
	require.NoError(t, err)
	require.Empty(t, nodes)
	require.Len(t, edges, 3)
	require.Equal(t, payback.EdgeRecord{From: "A", To: "C", Weight: 1}, edges[0])
}

func TestDecodeCSV_SkipsBlankLines(t *testing.T) {
	nodes, _, err := payback.DecodeCSV(strings.NewReader("A,-1\n\nB,1\n"))
	require.NoError(t, err)
	require.Len(t, nodes, 2)
}

func TestDecodeCSV_RejectsMixedSchema(t *testing.T) {
	_, _, err := payback.DecodeCSV(strings.NewReader("A,-1\nB,C,1\n"))
	require.Error(t, err)
	require.True(t, errors.Is(err, payback.ErrInvalidInput))
}

func TestDecodeCSV_RejectsBadColumnCount(t *testing.T) {
	_, _, err := payback.DecodeCSV(strings.NewReader("A,B,C,D\n"))
	require.Error(t, err)
	require.True(t, errors.Is(err, payback.ErrInvalidInput))
}

func TestDecodeCSV_RejectsNonNumericWeight(t *testing.T) {
	_, _, err := payback.DecodeCSV(strings.NewReader("A,not-a-number\n"))
	require.Error(t, err)
	require.True(t, errors.Is(err, payback.ErrInvalidInput))
}

func TestDecodeCSV_RejectsEmptyIdentifier(t *testing.T) {
	_, _, err := payback.DecodeCSV(strings.NewReader(",-1\nB,1\n"))
	require.Error(t, err)
	require.True(t, errors.Is(err, payback.ErrInvalidInput))
}

func TestDecodeCSV_AcceptsExplicitZeroBalance(t *testing.T) {
	nodes, _, err := payback.DecodeCSV(strings.NewReader("A,-1\nX,0\nB,1\n"))
	require.NoError(t, err)
	require.Equal(t, []payback.NodeRecord{
		{Name: "A", Weight: -1},
		{Name: "X", Weight: 0},
		{Name: "B", Weight: 1},
	}, nodes)
}

func TestBalancesFromCSV_DropsExplicitZeroBalance(t *testing.T) {
	b, err := payback.BalancesFromCSV(strings.NewReader("A,-1\nX,0\nB,1\n"))
	require.NoError(t, err)
	require.Equal(t, 2, b.Len())
	_, ok := b.IndexOf("X")
	require.False(t, ok)
}

func TestBalancesFromCSV_NodeSchema(t *testing.T) {
	b, err := payback.BalancesFromCSV(strings.NewReader("A,-2\nB,-1\nC,1\nD,2\n"))
	require.NoError(t, err)
	require.Equal(t, 4, b.Len())
}

func TestBalancesFromCSV_EdgeSchema(t *testing.T) {
	b, err := payback.BalancesFromCSV(strings.NewReader("A,C,1\nA,D,1\nB,D,1\n"))
	require.NoError(t, err)
	require.Equal(t, 4, b.Len())
}

func TestBalancesFromCSV_Empty(t *testing.T) {
	b, err := payback.BalancesFromCSV(strings.NewReader(""))
	require.NoError(t, err)
	require.Equal(t, 0, b.Len())
}
