package searcher

import "connectn/game"

// AlphaBeta is Minimax augmented with an alpha/beta bound pair that prunes
// branches proven irrelevant to the final decision. It always returns the
// same column and value as Minimax for the same inputs; only the number of
// leaf evaluations differs.
type AlphaBeta struct {
	player    int
	n         int
	depth     int
	heuristic game.Heuristic
}

func NewAlphaBeta(player, n, depth int, heuristic game.Heuristic) *AlphaBeta {
	return &AlphaBeta{player: player, n: n, depth: depth, heuristic: heuristic}
}

type alphaBetaSearch struct {
	player    int
	opponent  int
	n         int
	heuristic game.Heuristic
}

// FindMove mirrors Minimax's root loop but threads a running alpha across
// root siblings, so an early strong root move narrows the window for later
// ones. Ties keep the first column seen. Returns NoMove on a full board.
func (p *AlphaBeta) FindMove(b *game.Board) int {
	s := &alphaBetaSearch{
		player:    p.player,
		opponent:  game.Opponent(p.player),
		n:         p.n,
		heuristic: p.heuristic,
	}

	bestValue, bestColumn := negInfinity, NoMove
	alpha, beta := negInfinity, posInfinity
	for column := 0; column < b.Width(); column++ {
		if !b.IsValid(column) {
			continue
		}
		value := s.search(b.GetNewBoard(column, p.player), p.depth-1, alpha, beta, false)
		if value > bestValue {
			bestValue, bestColumn = value, column
		}
		alpha = max(alpha, bestValue)
	}
	return bestColumn
}

// search returns the minimax value of b within the (alpha, beta) window.
// alpha is the best value the maximizing side can already guarantee, beta
// the best for the minimizing side; once alpha >= beta the remaining
// siblings at this node cannot influence the decision and are skipped.
func (s *alphaBetaSearch) search(b *game.Board, depth, alpha, beta int, maximizing bool) int {
	if terminal(s.heuristic, b, s.n, depth) {
		return s.heuristic.Evaluate(s.player, b)
	}

	if maximizing {
		value := negInfinity
		for column := 0; column < b.Width(); column++ {
			if !b.IsValid(column) {
				continue
			}
			value = max(value, s.search(b.GetNewBoard(column, s.player), depth-1, alpha, beta, false))
			alpha = max(alpha, value)
			if alpha >= beta { // beta cutoff
				break
			}
		}
		return value
	}

	value := posInfinity
	for column := 0; column < b.Width(); column++ {
		if !b.IsValid(column) {
			continue
		}
		value = min(value, s.search(b.GetNewBoard(column, s.opponent), depth-1, alpha, beta, true))
		beta = min(beta, value)
		if alpha >= beta { // alpha cutoff
			break
		}
	}
	return value
}
