package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"connectn/game"
	"connectn/searcher"
)

// scripted plays a fixed sequence of columns, then gives up.
type scripted struct {
	moves []int
}

func (s *scripted) FindMove(b *game.Board) int {
	if len(s.moves) == 0 {
		return searcher.NoMove
	}
	column := s.moves[0]
	s.moves = s.moves[1:]
	return column
}

func TestRunDetectsWin(t *testing.T) {
	p1 := &scripted{moves: []int{0, 0, 0}}
	p2 := &scripted{moves: []int{1, 1}}
	e := LocalEngine(p1, p2, 4, 4, 3)

	winner := e.Run()

	require.Equal(t, game.Player1, winner, "three stacked pieces win at N=3")
	require.Equal(t, game.Player1, e.Board.At(1, 0))
}

func TestRunDetectsDraw(t *testing.T) {
	p1 := &scripted{moves: []int{0, 1}}
	p2 := &scripted{moves: []int{0, 1}}
	e := LocalEngine(p1, p2, 2, 2, 3)

	require.Equal(t, game.Empty, e.Run(), "full board without a winner is a draw")
	require.False(t, e.Board.HasMove())
}

func TestRunTreatsNoMoveAsDraw(t *testing.T) {
	e := LocalEngine(&scripted{}, &scripted{}, 4, 4, 3)
	require.Equal(t, game.Empty, e.Run())
}

func TestRunForfeitsOnIllegalMove(t *testing.T) {
	p1 := &scripted{moves: []int{9}}
	e := LocalEngine(p1, &scripted{}, 2, 2, 3)
	require.Equal(t, game.Player2, e.Run(), "illegal column forfeits to the opponent")
}

func TestRunWithSearchPlayers(t *testing.T) {
	p1 := searcher.NewMinimax(1, 3, 3, game.NewStreak(3))
	p2 := searcher.NewAlphaBeta(2, 3, 3, game.NewStreak(3))
	e := LocalEngine(p1, p2, 4, 4, 3)

	// Two competent searches always finish a 4x4 N=3 game one way or the
	// other; the loop must terminate.
	winner := e.Run()
	require.Contains(t, []game.Cell{game.Empty, game.Player1, game.Player2}, winner)
}
