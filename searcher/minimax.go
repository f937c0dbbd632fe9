package searcher

import "connectn/game"

// Minimax explores the full game tree to a fixed depth with no pruning.
// Every legal child at every ply is visited, which makes its evaluation
// counts the baseline that AlphaBeta is measured against.
type Minimax struct {
	player    int
	n         int
	depth     int
	heuristic game.Heuristic
}

// NewMinimax returns a minimax player. player must be 1 or 2, n is the
// in-a-row length required to win, depth the fixed search depth. The
// heuristic is shared with the caller, not owned.
func NewMinimax(player, n, depth int, heuristic game.Heuristic) *Minimax {
	return &Minimax{player: player, n: n, depth: depth, heuristic: heuristic}
}

// minimaxSearch carries the parameters that stay fixed across one decision.
type minimaxSearch struct {
	player    int
	opponent  int
	n         int
	heuristic game.Heuristic
}

// FindMove evaluates every root-legal column and returns the first one
// achieving the maximal value, or NoMove if no column is legal.
func (m *Minimax) FindMove(b *game.Board) int {
	s := &minimaxSearch{
		player:    m.player,
		opponent:  game.Opponent(m.player),
		n:         m.n,
		heuristic: m.heuristic,
	}

	bestValue, bestColumn := negInfinity, NoMove
	for column := 0; column < b.Width(); column++ {
		if !b.IsValid(column) {
			continue
		}
		// The next ply after our root move belongs to the opponent.
		value := s.search(b.GetNewBoard(column, m.player), m.depth-1, false)
		if value > bestValue {
			bestValue, bestColumn = value, column
		}
	}
	return bestColumn
}

// search returns the minimax value of b. Leaf values are always scored from
// the root decision-maker's perspective; the maximizing flag only tracks
// whose turn it is at this ply.
func (s *minimaxSearch) search(b *game.Board, depth int, maximizing bool) int {
	if terminal(s.heuristic, b, s.n, depth) {
		return s.heuristic.Evaluate(s.player, b)
	}

	if maximizing {
		best := negInfinity
		for column := 0; column < b.Width(); column++ {
			if b.IsValid(column) {
				best = max(best, s.search(b.GetNewBoard(column, s.player), depth-1, false))
			}
		}
		return best
	}

	best := posInfinity
	for column := 0; column < b.Width(); column++ {
		if b.IsValid(column) {
			best = min(best, s.search(b.GetNewBoard(column, s.opponent), depth-1, true))
		}
	}
	return best
}
