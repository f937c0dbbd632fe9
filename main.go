package main

import (
	"flag"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"connectn/engine"
	"connectn/experiments"
	"connectn/game"
	"connectn/player"
	"connectn/searcher"
)

func main() {
	mode := flag.String("mode", "play", "play, watch, experiment, or analyze")
	width := flag.Int("width", 7, "Board width")
	height := flag.Int("height", 6, "Board height")
	n := flag.Int("n", 4, "Pieces in a row required to win")
	depth := flag.Int("depth", 5, "Search depth for the computer players")
	csvPath := flag.String("csv", "", "Decision records CSV to analyze")
	chartDir := flag.String("charts", "charts", "Output directory for analysis charts")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	switch *mode {
	case "play":
		runGame(player.NewHuman(1), alphaBetaPlayer(2, *n, *depth), *width, *height, *n)
	case "watch":
		runGame(minimaxPlayer(1, *n, *depth), alphaBetaPlayer(2, *n, *depth), *width, *height, *n)
	case "experiment":
		path, err := experiments.RunPruningExperiment()
		if err != nil {
			log.Fatal().Err(err).Msg("experiment failed")
		}
		err = experiments.Analyze(path, *chartDir)
		if err != nil {
			log.Fatal().Err(err).Msg("analysis failed")
		}
	case "analyze":
		if *csvPath == "" {
			log.Fatal().Msg("analyze mode requires -csv")
		}
		err := experiments.Analyze(*csvPath, *chartDir)
		if err != nil {
			log.Fatal().Err(err).Msg("analysis failed")
		}
	default:
		log.Fatal().Msgf("unknown mode %q", *mode)
	}
}

func runGame(p1, p2 searcher.Player, width, height, n int) {
	e := engine.LocalEngine(p1, p2, width, height, n)
	winner := e.Run()
	os.Stdout.WriteString(e.Board.String())
	if winner == game.Empty {
		log.Info().Msg("the game is a draw")
	} else {
		log.Info().Msgf("player %s wins", winner)
	}
}

func minimaxPlayer(id, n, depth int) *searcher.Minimax {
	return searcher.NewMinimax(id, n, depth, game.NewStreak(n))
}

func alphaBetaPlayer(id, n, depth int) *searcher.AlphaBeta {
	return searcher.NewAlphaBeta(id, n, depth, game.NewStreak(n))
}
