package game

// WinScore is the evaluation of a won position. It dominates any sum of
// window scores a non-won position can reach, and stays far inside the
// integer bounds the searches use for their pseudo-infinities.
const WinScore = 1_000_000

// Heuristic judges board positions statically. Implementations own the
// evaluation counter: every Evaluate call increments it exactly once, so the
// count reflects the number of leaf evaluations a search performed.
type Heuristic interface {
	// Evaluate returns a signed score for the board from player's
	// perspective; higher is better for that player.
	Evaluate(player int, b *Board) int
	// Winning returns which player has n in a row, or Empty if neither.
	Winning(b *Board, n int) Cell
	EvalCount() int
	ResetEvalCount()
}

// directions for run scanning: right, down, down-right, down-left.
var directions = [4][2]int{{0, 1}, {1, 0}, {1, 1}, {1, -1}}

// Streak scores positions by counting open runs: every n-length window
// occupied by only one side contributes the square of that side's piece
// count. A finished game evaluates to +-WinScore.
type Streak struct {
	n     int
	evals int
}

func NewStreak(n int) *Streak {
	if n < 2 {
		panic("win length must be at least 2")
	}
	return &Streak{n: n}
}

func (s *Streak) EvalCount() int { return s.evals }

func (s *Streak) ResetEvalCount() { s.evals = 0 }

func (s *Streak) Winning(b *Board, n int) Cell {
	for row := 0; row < b.Height(); row++ {
		for column := 0; column < b.Width(); column++ {
			owner := b.At(row, column)
			if owner == Empty {
				continue
			}
			for _, d := range directions {
				if s.runLength(b, row, column, d[0], d[1], owner) >= n {
					return owner
				}
			}
		}
	}
	return Empty
}

func (s *Streak) runLength(b *Board, row, column, dr, dc int, owner Cell) int {
	length := 0
	for row >= 0 && row < b.Height() && column >= 0 && column < b.Width() &&
		b.At(row, column) == owner {
		length++
		row += dr
		column += dc
	}
	return length
}

func (s *Streak) Evaluate(player int, b *Board) int {
	s.evals++

	switch s.Winning(b, s.n) {
	case Cell(player):
		return WinScore
	case Cell(Opponent(player)):
		return -WinScore
	}

	score := 0
	for row := 0; row < b.Height(); row++ {
		for column := 0; column < b.Width(); column++ {
			for _, d := range directions {
				score += s.scoreWindow(b, row, column, d[0], d[1], Cell(player))
			}
		}
	}
	return score
}

// scoreWindow rates the n-cell window starting at (row,column): a window
// holding pieces of only one side is worth the square of the piece count,
// signed from player's point of view. Mixed or out-of-bounds windows score 0.
func (s *Streak) scoreWindow(b *Board, row, column, dr, dc int, player Cell) int {
	endRow := row + (s.n-1)*dr
	endColumn := column + (s.n-1)*dc
	if endRow < 0 || endRow >= b.Height() || endColumn < 0 || endColumn >= b.Width() {
		return 0
	}

	mine, theirs := 0, 0
	for i := 0; i < s.n; i++ {
		switch b.At(row+i*dr, column+i*dc) {
		case player:
			mine++
		case Empty:
		default:
			theirs++
		}
	}
	if mine > 0 && theirs > 0 {
		return 0
	}
	return mine*mine - theirs*theirs
}
