package agent

import (
	"dama/experiments/metrics"
	"dama/game"
	"dama/searcher"
)

type evaluationAgent struct {
	minimax    *searcher.Minimax
	difficulty searcher.Difficulty
}

// NewEvaluationAgent returns an agent that plays the minimax choice at the
// given difficulty.
func NewEvaluationAgent(minimax *searcher.Minimax, difficulty searcher.Difficulty) Agent {
	return evaluationAgent{minimax: minimax, difficulty: difficulty}
}

func (a evaluationAgent) FindMove(state *game.GameState) (game.Move, metrics.SearchMetric, error) {
	result, metric, err := a.minimax.Search(state, a.difficulty)
	if err != nil {
		return game.Move{}, metric, err
	}
	return result.Move, metric, nil
}
