package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"logicgames/engine"
	"logicgames/experiments"
	"logicgames/experiments/metrics"
	"logicgames/meta"
)

func main() {
	gameName := flag.String("game", "tictactoe", "Game to play: tictactoe or grundy")
	games := flag.Int("games", meta.GAMES, "Number of games per matchup")
	depth := flag.Int("depth", meta.DEPTH, "Search depth of depth-limited agents")
	heap := flag.Int("heap", 10, "Starting heap of Grundy's game")
	workers := flag.Int("workers", meta.WORKERS, "Number of games played concurrently")
	maxTurns := flag.Int("max-turns", meta.MAX_TURNS, "Turns after which a game is abandoned")
	seed := flag.Uint64("seed", 1, "Seed of the random players")
	out := flag.String("out", "", "Directory to write game and move records to (none if empty)")
	debug := flag.Bool("debug", false, "Log every turn and search")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var results []experiments.Result
	var err error
	switch *gameName {
	case "tictactoe":
		results, err = experiments.Run(ctx, experiments.TicTacToeMatchups(*games, *depth, *seed), *workers, engine.WithMaxTurns(*maxTurns))
	case "grundy":
		results, err = experiments.Run(ctx, experiments.GrundyMatchups(*heap, *games, *seed), *workers, engine.WithMaxTurns(*maxTurns))
	default:
		log.Fatal().Str("game", *gameName).Msg("unknown game")
	}
	if err != nil {
		log.Fatal().Err(err).Msg("experiment failed")
	}

	for _, s := range experiments.Summarize(results) {
		fmt.Printf("%-24s games=%d wins=%v draws=%d abandoned=%d moves=%d duration=%v\n",
			s.Matchup, s.Games, s.Wins, s.Draws, s.Abandoned, s.Moves, s.Duration)
	}
	for _, t := range experiments.MeasureThroughput(results) {
		fmt.Printf("%-24s searches=%d expansions=%d nodes=%d cutoffs=%d nodes/s=%.0f\n",
			t.Algorithm, t.Searches, t.Expansions, t.Nodes, t.Cutoffs, t.NodesPerSecond)
	}

	if *out != "" {
		if err := writeRecords(*out, *gameName, results); err != nil {
			log.Fatal().Err(err).Msg("failed to write records")
		}
	}
}

func writeRecords(dir, experiment string, results []experiments.Result) error {
	writer, err := metrics.NewWriter(dir, experiment)
	if err != nil {
		return err
	}
	games, moves := experiments.Records(results)
	if err := writer.WriteGameRecords(games); err != nil {
		return err
	}
	if err := writer.WriteMoveRecords(moves); err != nil {
		return err
	}
	log.Info().Str("dir", writer.Dir()).Int("games", len(games)).Int("moves", len(moves)).Msg("stored records")
	return nil
}
