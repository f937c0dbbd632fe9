package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetNewBoardDropsToLowestEmptyCell(t *testing.T) {
	b := NewBoard(7, 6)

	b1 := b.GetNewBoard(3, 1)
	require.Equal(t, Player1, b1.At(5, 3), "piece should land on the bottom row")

	b2 := b1.GetNewBoard(3, 2)
	require.Equal(t, Player2, b2.At(4, 3), "piece should stack on top of the first")
	require.Equal(t, Player1, b2.At(5, 3))
}

func TestGetNewBoardDoesNotMutateReceiver(t *testing.T) {
	b := NewBoard(7, 6)
	b1 := b.GetNewBoard(0, 1)

	require.Equal(t, Empty, b.At(5, 0), "original board should be untouched")
	require.Equal(t, Player1, b1.At(5, 0))

	// Siblings expanded from the same parent must not see each other's moves
	b2 := b.GetNewBoard(1, 2)
	require.Equal(t, Empty, b2.At(5, 0))
	require.Equal(t, Empty, b1.At(5, 1))
}

func TestIsValid(t *testing.T) {
	b := NewBoard(2, 2)

	require.True(t, b.IsValid(0))
	require.True(t, b.IsValid(1))
	require.False(t, b.IsValid(-1), "out of range column")
	require.False(t, b.IsValid(2), "out of range column")

	b = b.GetNewBoard(0, 1).GetNewBoard(0, 2)
	require.False(t, b.IsValid(0), "full column")
	require.True(t, b.IsValid(1))
}

func TestHasMove(t *testing.T) {
	b := NewBoard(2, 1)
	require.True(t, b.HasMove())

	b = b.GetNewBoard(0, 1)
	require.True(t, b.HasMove())

	b = b.GetNewBoard(1, 2)
	require.False(t, b.HasMove())
}

func TestGetNewBoardPanicsOnFullColumn(t *testing.T) {
	b := NewBoard(2, 1).GetNewBoard(0, 1)
	require.Panics(t, func() { b.GetNewBoard(0, 2) })
}

func TestOpponent(t *testing.T) {
	require.Equal(t, 2, Opponent(1))
	require.Equal(t, 1, Opponent(2))
}
