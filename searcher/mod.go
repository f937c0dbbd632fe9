package searcher

import (
	"math"

	"connectn/game"
)

// NoMove is returned by a search when the root position has no legal column.
const NoMove = -1

const (
	posInfinity = math.MaxInt
	negInfinity = math.MinInt
)

// Player picks a column to play on the given board. FindMove returns a
// zero-indexed column, or NoMove when the board is full.
type Player interface {
	FindMove(b *game.Board) int
}

// terminal reports whether expansion stops at this node: somebody has n in a
// row, the depth budget is exhausted, or the board is full. Checked once per
// recursive call before any descent.
func terminal(h game.Heuristic, b *game.Board, n, depth int) bool {
	if h.Winning(b, n) != game.Empty || depth <= 0 {
		return true
	}
	return !b.HasMove()
}
