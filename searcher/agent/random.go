package agent

import (
	"fmt"
	"time"

	"dama/experiments/metrics"
	"dama/game"
	"dama/searcher"

	"golang.org/x/exp/rand"
)

const RandomDifficulty = "random"

type randomAgent struct {
	rng *rand.Rand
}

// NewRandomAgent returns an agent that picks uniformly among the legal moves.
// Agents with the same seed play the same moves.
func NewRandomAgent(seed uint64) Agent {
	return &randomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *randomAgent) FindMove(state *game.GameState) (game.Move, metrics.SearchMetric, error) {
	start := time.Now()
	moves := state.LegalMoves()
	if len(moves) == 0 {
		return game.Move{}, metrics.SearchMetric{}, fmt.Errorf("%w: %s to move", searcher.ErrNoLegalMove, state.Turn)
	}
	move := moves[a.rng.Intn(len(moves))]
	return move, metrics.SearchMetric{Difficulty: RandomDifficulty, Duration: time.Since(start)}, nil
}
