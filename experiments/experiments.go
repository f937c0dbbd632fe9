package experiments

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"connectn/experiments/metrics"
	"connectn/game"
	"connectn/searcher"
)

const (
	NumSeeds     = 10 // Boards measured per configuration
	PrefillPlies = 6  // Random moves played before each measurement
)

type boardConfig struct {
	width  int
	height int
	n      int
}

var boardConfigs = []boardConfig{
	{width: 7, height: 6, n: 4},
	{width: 5, height: 4, n: 3},
	{width: 6, height: 5, n: 4},
}

var depths = []int{1, 2, 3, 4, 5}

// RunPruningExperiment measures minimax against alpha-beta on the same
// pre-filled boards and stores the per-decision records as CSV. Returns the
// path of the records file for the analysis step.
func RunPruningExperiment() (string, error) {
	log.Info().Msg("starting pruning experiment...")

	records := []metrics.DecisionRecord{}
	for ci, config := range boardConfigs {
		log.Info().
			Msgf("starting board %d of %d: %dx%d N=%d...",
				ci+1, len(boardConfigs), config.width, config.height, config.n)

		for _, depth := range depths {
			for seed := 0; seed < NumSeeds; seed++ {
				board := randomMidgame(config.width, config.height, config.n, PrefillPlies, uint64(seed))
				records = append(records, measureDecision(board, config.n, depth, seed))
			}
		}
	}

	log.Info().Msgf("completed pruning experiment with %d records", len(records))

	writer, err := metrics.NewWriter("minimax_vs_alphabeta")
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}
	path, err := writer.WriteDecisionRecords(records)
	if err != nil {
		return "", fmt.Errorf("failed to store decision records: %w", err)
	}
	log.Info().Msgf("stored decision records at %s", path)

	return path, nil
}

// randomMidgame plays up to plies random legal moves from an empty board,
// alternating players and stopping early on a win, so measurements run on
// realistic midgame positions instead of the empty board every time.
func randomMidgame(width, height, n, plies int, seed uint64) *game.Board {
	rng := rand.New(rand.NewSource(seed))
	heuristic := game.NewStreak(n)

	board := game.NewBoard(width, height)
	current := 1
	for i := 0; i < plies; i++ {
		legal := []int{}
		for c := 0; c < board.Width(); c++ {
			if board.IsValid(c) {
				legal = append(legal, c)
			}
		}
		if len(legal) == 0 {
			break
		}
		board = board.GetNewBoard(legal[rng.Intn(len(legal))], current)
		if heuristic.Winning(board, n) != game.Empty {
			break
		}
		current = game.Opponent(current)
	}
	return board
}

// measureDecision runs both searches once on the same board, each with a
// fresh heuristic so the evaluation counts stay independent.
func measureDecision(board *game.Board, n, depth, seed int) metrics.DecisionRecord {
	minimaxHeuristic := game.NewStreak(n)
	alphaBetaHeuristic := game.NewStreak(n)

	minimax := searcher.NewMinimax(1, n, depth, minimaxHeuristic)
	alphaBeta := searcher.NewAlphaBeta(1, n, depth, alphaBetaHeuristic)

	minimaxHeuristic.ResetEvalCount()
	start := time.Now()
	colMinimax := minimax.FindMove(board)
	minimaxTime := time.Since(start)

	alphaBetaHeuristic.ResetEvalCount()
	start = time.Now()
	colAlphaBeta := alphaBeta.FindMove(board)
	alphaBetaTime := time.Since(start)

	return metrics.DecisionRecord{
		Width:           board.Width(),
		Height:          board.Height(),
		N:               n,
		Depth:           depth,
		Seed:            seed,
		ColMinimax:      colMinimax,
		ColAlphaBeta:    colAlphaBeta,
		NodesMinimax:    minimaxHeuristic.EvalCount(),
		NodesAlphaBeta:  alphaBetaHeuristic.EvalCount(),
		TimeMinimaxNs:   minimaxTime.Nanoseconds(),
		TimeAlphaBetaNs: alphaBetaTime.Nanoseconds(),
	}
}
