package engine

import (
	"github.com/rs/zerolog/log"

	"connectn/game"
	"connectn/searcher"
)

// Engine runs a local game between two players on a shared board.
type Engine struct {
	Board     *game.Board
	Heuristic game.Heuristic
	N         int
	players   [2]searcher.Player
}

// LocalEngine sets up a fresh game. players[0] moves first as player 1.
func LocalEngine(p1, p2 searcher.Player, width, height, n int) *Engine {
	return &Engine{
		Board:     game.NewBoard(width, height),
		Heuristic: game.NewStreak(n),
		N:         n,
		players:   [2]searcher.Player{p1, p2},
	}
}

// Run executes the game loop until a win or a draw and returns the winning
// cell, or game.Empty for a draw.
func (e *Engine) Run() game.Cell {
	current := 1
	turn := 1
	for {
		if winner := e.Heuristic.Winning(e.Board, e.N); winner != game.Empty {
			log.Info().Int("turns", turn-1).Stringer("winner", winner).Msg("game over")
			return winner
		}
		if !e.Board.HasMove() {
			log.Info().Int("turns", turn-1).Msg("game drawn, board full")
			return game.Empty
		}

		column := e.players[current-1].FindMove(e.Board)
		if column == searcher.NoMove {
			log.Warn().Int("player", current).Msg("player found no move, game drawn")
			return game.Empty
		}
		if !e.Board.IsValid(column) {
			// A search never returns an illegal column; only a broken
			// player implementation can get here.
			log.Error().Int("player", current).Int("column", column).Msg("illegal move forfeits the game")
			return game.Cell(game.Opponent(current))
		}

		e.Board = e.Board.GetNewBoard(column, current)
		log.Info().Int("turn", turn).Int("player", current).Int("column", column).Msg("move played")

		current = game.Opponent(current)
		turn++
	}
}
