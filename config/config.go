package config

import (
	"fmt"

	"dama/game"
	"dama/searcher"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel   string     `yaml:"log-level" env:"DAMA_LOG_LEVEL" env-default:"info"`
	Experiment Experiment `yaml:"experiment"`
	Levels     Levels     `yaml:"levels"`
}

type Experiment struct {
	Name            string `yaml:"name" env:"DAMA_EXPERIMENT" env-default:"ladder"`
	OutputDir       string `yaml:"output-dir" env:"DAMA_OUTPUT_DIR" env-default:"experiments/results"`
	GamesPerMatchUp int    `yaml:"games-per-matchup" env:"DAMA_GAMES_PER_MATCHUP" env-default:"10"`
	MaxTurns        int    `yaml:"max-turns" env:"DAMA_MAX_TURNS" env-default:"300"`
	OpeningPlies    int    `yaml:"opening-plies" env:"DAMA_OPENING_PLIES" env-default:"4"`
	Seed            uint64 `yaml:"seed" env:"DAMA_SEED" env-default:"1"`
}

// Levels overrides the built-in difficulty table. Anything left out keeps
// its built-in value.
type Levels struct {
	Easy        Level `yaml:"easy" env-prefix:"DAMA_EASY_"`
	Medium      Level `yaml:"medium" env-prefix:"DAMA_MEDIUM_"`
	Hard        Level `yaml:"hard" env-prefix:"DAMA_HARD_"`
	Grandmaster Level `yaml:"grandmaster" env-prefix:"DAMA_GRANDMASTER_"`
}

type Level struct {
	Depth   int     `yaml:"depth" env:"DEPTH"`
	Weights Weights `yaml:"weights" env-prefix:"WEIGHT_"`
}

type Weights struct {
	Man           int `yaml:"man" env:"MAN"`
	King          int `yaml:"king" env:"KING"`
	Advancement   int `yaml:"advancement" env:"ADVANCEMENT"`
	PromotionZone int `yaml:"promotion-zone" env:"PROMOTION_ZONE"`
	KingCentre    int `yaml:"king-centre" env:"KING_CENTRE"`
	Mobility      int `yaml:"mobility" env:"MOBILITY"`
}

// Load reads the YAML file at path, or only the environment when path is
// empty. Environment variables override the file.
func Load(path string) (*Config, error) {
	config := withDefaultLevels()

	var err error
	if path == "" {
		err = cleanenv.ReadEnv(config)
	} else {
		err = cleanenv.ReadConfig(path, config)
	}
	if err != nil {
		return nil, fmt.Errorf("unable to load config: %w", err)
	}

	if _, err := config.Table(); err != nil {
		return nil, fmt.Errorf("invalid levels: %w", err)
	}
	return config, nil
}

// MustLoad - load all configurations, panicking on failure.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}
	return config
}

// Table returns the configured difficulty table.
func (c *Config) Table() (searcher.Table, error) {
	table := searcher.Table{
		searcher.Easy:        c.Levels.Easy.level(),
		searcher.Medium:      c.Levels.Medium.level(),
		searcher.Hard:        c.Levels.Hard.level(),
		searcher.Grandmaster: c.Levels.Grandmaster.level(),
	}
	if err := table.Validate(); err != nil {
		return nil, err
	}
	return table, nil
}

func withDefaultLevels() *Config {
	defaults := searcher.DefaultTable()
	return &Config{
		Levels: Levels{
			Easy:        fromLevel(defaults[searcher.Easy]),
			Medium:      fromLevel(defaults[searcher.Medium]),
			Hard:        fromLevel(defaults[searcher.Hard]),
			Grandmaster: fromLevel(defaults[searcher.Grandmaster]),
		},
	}
}

func fromLevel(l searcher.Level) Level {
	return Level{
		Depth:   l.Depth,
		Weights: Weights(l.Weights),
	}
}

func (l Level) level() searcher.Level {
	return searcher.Level{
		Depth:   l.Depth,
		Weights: game.Weights(l.Weights),
	}
}
