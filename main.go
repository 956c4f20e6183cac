package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"dama/config"
	"dama/experiments"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	path := flag.String("config", "", "Path to a YAML config file; the environment is used when empty")
	flag.Parse()

	cfg := config.MustLoad(*path)

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		panic(fmt.Errorf("invalid log level: %w", err))
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})

	table, err := cfg.Table()
	if err != nil {
		panic(err)
	}
	settings := experiments.Settings{
		OutputDir:       cfg.Experiment.OutputDir,
		GamesPerMatchUp: cfg.Experiment.GamesPerMatchUp,
		MaxTurns:        cfg.Experiment.MaxTurns,
		OpeningPlies:    cfg.Experiment.OpeningPlies,
		Seed:            cfg.Experiment.Seed,
		Table:           table,
	}

	switch cfg.Experiment.Name {
	case "ladder":
		_, err = experiments.RunLadder(settings)
	case "throughput":
		_, err = experiments.RunThroughputExperiment(settings)
	default:
		err = fmt.Errorf("unknown experiment %q", cfg.Experiment.Name)
	}
	if err != nil {
		panic(fmt.Sprintf("experiment failed: %v", err))
	}
}
