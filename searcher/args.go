package searcher

import (
	"fmt"

	"dama/game"
)

// Tunables for the minimax search, one row per difficulty.

// Level is what a difficulty means to the searcher.
type Level struct {
	Depth   int // Plies searched
	Weights game.Weights
}

type Table map[Difficulty]Level

var baseWeights = game.Weights{
	Man:           100,
	King:          300,
	Advancement:   2,
	PromotionZone: 20,
	KingCentre:    5,
	Mobility:      5,
}

// DefaultTable returns a fresh copy of the built-in difficulty table.
func DefaultTable() Table {
	easy := baseWeights
	easy.Mobility = 0

	return Table{
		Easy:        {Depth: 2, Weights: easy},
		Medium:      {Depth: 3, Weights: baseWeights},
		Hard:        {Depth: 5, Weights: baseWeights},
		Grandmaster: {Depth: 7, Weights: baseWeights},
	}
}

// Level returns the tunables of d.
func (t Table) Level(d Difficulty) (Level, error) {
	level, ok := t[d]
	if !ok {
		return Level{}, fmt.Errorf("%w: %s", ErrUnknownDifficulty, d)
	}
	return level, nil
}

// Validate checks that every difficulty is present with a positive depth and
// that depths strictly increase from Easy to Grandmaster.
func (t Table) Validate() error {
	prev := 0
	for _, d := range Difficulties {
		level, err := t.Level(d)
		if err != nil {
			return err
		}
		if level.Depth <= prev {
			return fmt.Errorf("%w: %s has depth %d after %d", ErrInconsistentLevels, d, level.Depth, prev)
		}
		prev = level.Depth
	}
	return nil
}
