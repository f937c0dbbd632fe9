package searcher

import (
	"testing"

	"github.com/stretchr/testify/require"

	"connectn/game"
)

// flatHeuristic scores every position 0 and never reports a winner, which
// makes tie-breaking behavior observable.
type flatHeuristic struct {
	evals int
}

func (f *flatHeuristic) Evaluate(player int, b *game.Board) int {
	f.evals++
	return 0
}

func (f *flatHeuristic) Winning(b *game.Board, n int) game.Cell { return game.Empty }

func (f *flatHeuristic) EvalCount() int { return f.evals }

func (f *flatHeuristic) ResetEvalCount() { f.evals = 0 }

// winInOneBoard is one move away from a player 1 win at column 3, while
// player 2 threatens a vertical win at column 6.
func winInOneBoard() *game.Board {
	b := game.NewBoard(7, 6)
	for _, column := range []int{0, 1, 2} {
		b = b.GetNewBoard(column, 1)
		b = b.GetNewBoard(6, 2)
	}
	return b
}

// fullBoard fills a 2x2 board with no three in a row possible.
func fullBoard() *game.Board {
	b := game.NewBoard(2, 2)
	b = b.GetNewBoard(0, 1)
	b = b.GetNewBoard(0, 2)
	b = b.GetNewBoard(1, 1)
	b = b.GetNewBoard(1, 2)
	return b
}

func TestMinimaxFindsImmediateWin(t *testing.T) {
	b := winInOneBoard()
	for depth := 1; depth <= 4; depth++ {
		p := NewMinimax(1, 4, depth, game.NewStreak(4))
		require.Equal(t, 3, p.FindMove(b), "depth %d should take the winning column", depth)
	}
}

func TestMinimaxNoLegalMove(t *testing.T) {
	p := NewMinimax(1, 3, 3, game.NewStreak(3))
	require.Equal(t, NoMove, p.FindMove(fullBoard()))
}

func TestMinimaxFirstSeenColumnWinsTies(t *testing.T) {
	p := NewMinimax(1, 4, 2, &flatHeuristic{})
	require.Equal(t, 0, p.FindMove(game.NewBoard(4, 3)),
		"equal values must not replace the incumbent column")
}

func TestMinimaxDepthZeroEvaluatesDirectly(t *testing.T) {
	b := winInOneBoard()
	h := game.NewStreak(4)
	s := &minimaxSearch{player: 1, opponent: 2, n: 4, heuristic: h}

	value := s.search(b, 0, true)

	require.Equal(t, game.NewStreak(4).Evaluate(1, b), value,
		"depth 0 must return the direct heuristic evaluation")
	require.Equal(t, 1, h.EvalCount(), "no expansion beyond the root evaluation")
}

func TestMinimaxEvaluationCountGrowsWithDepth(t *testing.T) {
	b := game.NewBoard(5, 4)
	previous := 0
	for depth := 1; depth <= 3; depth++ {
		h := game.NewStreak(3)
		NewMinimax(1, 3, depth, h).FindMove(b)
		require.Greater(t, h.EvalCount(), previous)
		previous = h.EvalCount()
	}
}
